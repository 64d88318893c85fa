package subtree

import (
	"fmt"

	"github.com/gitstu/gitstu/internal/config"
	gserrors "github.com/gitstu/gitstu/internal/errors"
	"github.com/gitstu/gitstu/internal/ui"
)

// Select returns copies of the entries spec refers to. Under add, an unknown
// name is registered on the spot from overrides and prompts; the new entry is
// appended to reg before it is returned.
func Select(reg *config.Registry, spec TargetSpec, cmd Command, overrides Overrides, prompter ui.Prompter) ([]config.SubtreeEntry, error) {
	switch spec.kind {
	case specAll:
		return append([]config.SubtreeEntry(nil), reg.Subtrees...), nil

	case specAllWithBranch:
		var selected []config.SubtreeEntry
		for _, entry := range reg.Subtrees {
			if entry.Branch != "" && entry.Branch == spec.branch {
				selected = append(selected, entry)
			}
		}
		return selected, nil
	}

	if entry := reg.Find(spec.name); entry != nil {
		return []config.SubtreeEntry{*entry}, nil
	}

	if cmd != CommandAdd {
		return nil, gserrors.NewSubtreeNotRegisteredError(spec.name)
	}

	entry, err := newEntry(spec.name, cmd, overrides, prompter)
	if err != nil {
		return nil, fmt.Errorf("defining subtree %s: %w", spec.name, err)
	}
	reg.Append(entry)
	return []config.SubtreeEntry{entry}, nil
}

func newEntry(name string, cmd Command, overrides Overrides, prompter ui.Prompter) (config.SubtreeEntry, error) {
	entry := config.SubtreeEntry{Name: name, Prefix: overrides.Prefix}

	if entry.Prefix == "" {
		prefix, err := prompter.Input("prefix", name)
		if err != nil {
			return entry, err
		}
		entry.Prefix = prefix
	}

	entry.Branch = overrides.BranchFor(cmd)
	if entry.Branch == "" {
		branch, err := prompter.Input("branch", config.DefaultBranch)
		if err != nil {
			return entry, err
		}
		entry.Branch = branch
	}

	if overrides.Remote != "" {
		entry.Remote = &config.Remote{Alias: overrides.Remote}
		return entry, nil
	}

	remote, err := promptRemote(name, prompter)
	if err != nil {
		return entry, err
	}
	entry.Remote = &remote
	return entry, nil
}

// promptRemote asks for the url and then the alias, suggesting the subtree name.
func promptRemote(name string, prompter ui.Prompter) (config.Remote, error) {
	url, err := prompter.Input("remote url", "")
	if err != nil {
		return config.Remote{}, err
	}
	alias, err := prompter.Input("remote alias", name)
	if err != nil {
		return config.Remote{}, err
	}
	return config.Remote{URL: url, Alias: alias}, nil
}
