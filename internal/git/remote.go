package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/gitstu/gitstu/internal/config"
)

// RemoteStatus describes what EnsureRemote found or did.
type RemoteStatus int

const (
	// RemoteExists means a git remote with the alias is already configured.
	RemoteExists RemoteStatus = iota
	// RemoteCreated means the remote was added from the registry URL.
	RemoteCreated
	// RemoteIsLocation means the registry names a URL or path, no git remote is needed.
	RemoteIsLocation
)

func (s RemoteStatus) String() string {
	switch s {
	case RemoteExists:
		return "exists"
	case RemoteCreated:
		return "created"
	case RemoteIsLocation:
		return "location"
	default:
		return "unknown"
	}
}

// EnsureRemote makes sure the host repository at root can resolve
// remote.Target(). A missing alias is created when the registry knows its URL.
func EnsureRemote(root string, remote config.Remote) (RemoteStatus, error) {
	target := remote.Target()
	if IsLocation(target) && (remote.URL == "" || remote.URL == target) {
		return RemoteIsLocation, nil
	}

	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return RemoteExists, fmt.Errorf("opening repository: %w", err)
	}

	if _, err := repo.Remote(target); err == nil {
		return RemoteExists, nil
	} else if !errors.Is(err, gogit.ErrRemoteNotFound) {
		return RemoteExists, fmt.Errorf("looking up remote %s: %w", target, err)
	}

	if remote.URL == "" || remote.URL == target {
		return RemoteExists, fmt.Errorf("git remote %q is not configured and .gitstu has no url for it", target)
	}

	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: target,
		URLs: []string{remote.URL},
	})
	if err != nil {
		return RemoteExists, fmt.Errorf("creating remote %s: %w", target, err)
	}
	return RemoteCreated, nil
}

// RemoteBranches lists the remote-tracking branches known locally for alias.
func RemoteBranches(root, alias string) ([]string, error) {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	refs, err := repo.References()
	if err != nil {
		return nil, fmt.Errorf("listing references: %w", err)
	}
	defer refs.Close()

	prefix := "refs/remotes/" + alias + "/"
	var branches []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if !strings.HasPrefix(name, prefix) || ref.Type() == plumbing.SymbolicReference {
			return nil
		}
		branch := strings.TrimPrefix(name, prefix)
		if branch != "HEAD" {
			branches = append(branches, branch)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing references: %w", err)
	}

	sort.Strings(branches)
	return branches, nil
}

// IsLocation reports whether s is a URL or path rather than a remote alias.
func IsLocation(s string) bool {
	return strings.Contains(s, "://") ||
		strings.HasPrefix(s, "git@") ||
		strings.HasSuffix(s, ".git") ||
		filepath.IsAbs(s)
}
