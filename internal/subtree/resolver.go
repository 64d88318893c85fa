package subtree

import (
	"fmt"

	"github.com/gitstu/gitstu/internal/config"
	"github.com/gitstu/gitstu/internal/ui"
)

// Resolver computes the effective target of an entry. It only prompts when
// neither an override nor a persisted value exists.
type Resolver struct {
	Prompter ui.Prompter
}

// Resolve applies override, then persisted value, then prompt, separately for
// the branch and the remote. A prompt failure is returned as is: without a
// value there is nothing to sync against.
func (r *Resolver) Resolve(entry config.SubtreeEntry, branchOverride, remoteOverride string) (Target, error) {
	var target Target

	switch {
	case branchOverride != "":
		target.Branch = branchOverride
	case entry.Branch != "":
		target.Branch = entry.Branch
	default:
		branch, err := r.Prompter.Input(fmt.Sprintf("branch for %s", entry.Name), config.DefaultBranch)
		if err != nil {
			return target, fmt.Errorf("resolving branch for %s: %w", entry.Name, err)
		}
		target.Branch = branch
	}

	switch {
	case remoteOverride != "" && !entry.Remote.Names(remoteOverride):
		target.Remote = config.Remote{Alias: remoteOverride}
	case entry.HasRemote():
		target.Remote = *entry.Remote
	default:
		remote, err := promptRemote(entry.Name, r.Prompter)
		if err != nil {
			return target, fmt.Errorf("resolving remote for %s: %w", entry.Name, err)
		}
		target.Remote = remote
	}

	return target, nil
}
