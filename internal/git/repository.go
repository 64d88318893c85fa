// Package git locates the host repository and inspects its remotes with
// go-git. Subtree content is moved by the git executable, see Command.
package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	gserrors "github.com/gitstu/gitstu/internal/errors"
)

// RepositoryRoot returns the top-level working directory of the repository
// containing dir.
func RepositoryRoot(dir string) (string, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", fmt.Errorf("unable to locate git root from %s (ensure you are within a git repository): %w", absPath, gserrors.ErrNoGitRoot)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return "", fmt.Errorf("%s is a bare repository: %w", absPath, gserrors.ErrNoGitRoot)
		}
		return "", fmt.Errorf("opening worktree: %v: %w", err, gserrors.ErrNoGitRoot)
	}

	return worktree.Filesystem.Root(), nil
}
