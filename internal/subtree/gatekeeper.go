package subtree

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/gitstu/gitstu/internal/config"
	"github.com/gitstu/gitstu/internal/ui"
)

// Gatekeeper folds a resolved target back into its entry after a successful sync.
type Gatekeeper struct {
	Prompter ui.Prompter
	Logger   *log.Logger

	// ConfirmGatesWrite lets a declined or failed confirmation keep the
	// stored value. When false the resolved value is written whatever the
	// answer, which is how gitstu has always behaved.
	ConfirmGatesWrite bool
}

// Persisted reports which fields MaybePersist wrote.
type Persisted struct {
	Branch bool
	Remote bool
}

// Any reports whether anything was written.
func (p Persisted) Any() bool {
	return p.Branch || p.Remote
}

// MaybePersist compares target with entry and, for each field that is unset
// or different, asks for confirmation and updates entry.
func (g *Gatekeeper) MaybePersist(entry *config.SubtreeEntry, target Target) Persisted {
	var persisted Persisted

	if entry.Branch == "" || entry.Branch != target.Branch {
		if g.confirm(fmt.Sprintf("Save branch %q to %s?", target.Branch, config.FileName), "branch", entry.Name) {
			entry.Branch = target.Branch
			persisted.Branch = true
		}
	}

	if !entry.HasRemote() || *entry.Remote != target.Remote {
		if g.confirm(fmt.Sprintf("Save remote %q to %s?", target.Remote.String(), config.FileName), "remote", entry.Name) {
			remote := target.Remote
			entry.Remote = &remote
			persisted.Remote = true
		}
	}

	return persisted
}

// confirm asks label and reports whether the write goes ahead.
func (g *Gatekeeper) confirm(label, field, name string) bool {
	ok, err := g.Prompter.Confirm(label)
	if err != nil {
		g.logger().Warn("unable to read confirmation", "subtree", name, "field", field, "err", err)
		ok = false
	}
	if !g.ConfirmGatesWrite {
		return true
	}
	if !ok {
		g.logger().Info("keeping stored value", "subtree", name, "field", field)
	}
	return ok
}

func (g *Gatekeeper) logger() *log.Logger {
	return loggerOr(g.Logger)
}

func loggerOr(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}
