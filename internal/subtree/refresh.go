package subtree

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/gitstu/gitstu/internal/config"
	"github.com/gitstu/gitstu/internal/exec"
	"github.com/gitstu/gitstu/internal/git"
	"github.com/gitstu/gitstu/internal/ui"
)

// RemoteInfo is what refresh learned about one entry's remote.
type RemoteInfo struct {
	Name     string
	Remote   string
	Status   git.RemoteStatus
	Branches []string
}

// HasBranch reports whether branch was seen on the remote.
func (i RemoteInfo) HasBranch(branch string) bool {
	return slices.Contains(i.Branches, branch)
}

// Refresher fetches the remotes of registered subtrees so that custom mode
// can address <remote>/<branch> refs.
type Refresher struct {
	Root     string
	Executor *exec.CommandExecutor
	Logger   *log.Logger
}

// Refresh fetches each distinct remote once, stopping at the first failure.
func (r *Refresher) Refresh(ctx context.Context, reg *config.Registry) ([]RemoteInfo, error) {
	fetched := make(map[string][]string)
	var infos []RemoteInfo

	for _, entry := range reg.Subtrees {
		if !entry.HasRemote() {
			loggerOr(r.Logger).Info("skipping subtree without remote", "subtree", entry.Name)
			continue
		}

		remote := *entry.Remote
		target := remote.Target()
		status, err := git.EnsureRemote(r.Root, remote)
		if err != nil {
			return infos, fmt.Errorf("refreshing %s: %w", entry.Name, err)
		}
		if status == git.RemoteCreated {
			ui.PrintSuccess(fmt.Sprintf("Added git remote %s (%s)", target, remote.URL))
		}

		branches, seen := fetched[target]
		if !seen {
			branches, err = r.fetch(ctx, target, status)
			if err != nil {
				return infos, fmt.Errorf("refreshing %s: %w", entry.Name, err)
			}
			fetched[target] = branches
		}

		info := RemoteInfo{Name: entry.Name, Remote: target, Status: status, Branches: branches}
		if entry.Branch != "" && status != git.RemoteIsLocation && !info.HasBranch(entry.Branch) {
			loggerOr(r.Logger).Warn("branch not found on remote", "subtree", entry.Name, "branch", entry.Branch, "remote", target)
		}
		infos = append(infos, info)
	}

	return infos, nil
}

func (r *Refresher) fetch(ctx context.Context, target string, status git.RemoteStatus) ([]string, error) {
	command := git.FetchCommand(target)
	ui.PrintCommand(command.String())

	err := ui.RunWithSpinner(ctx, "Fetching "+target, func(ctx context.Context) error {
		_, err := r.Executor.Run(ctx, r.Root, git.Binary, command.Args)
		return err
	})
	if err != nil {
		return nil, err
	}

	// A fetch from a bare URL leaves no remote-tracking branches behind.
	if status == git.RemoteIsLocation {
		return nil, nil
	}
	return git.RemoteBranches(r.Root, target)
}
