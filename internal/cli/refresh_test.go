package cli

import (
	"context"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitstu/gitstu/internal/git"
	"github.com/gitstu/gitstu/internal/subtree"
)

func TestRunRefresh(t *testing.T) {
	project := newTestProject(t, `{"subtrees": [
		{"name": "lib", "prefix": "vendor/lib", "branch": "main", "remote": "origin-lib"},
		{"name": "ui", "prefix": "web/ui", "remote": {"url": "https://example.com/ui.git", "alias": "ui"}}
	]}`)

	repo, err := gogit.PlainOpen(project.Root)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{Name: "origin-lib", URLs: []string{"https://example.com/lib.git"}})
	require.NoError(t, err)

	infos, err := runRefresh(context.Background(), project.ProjectContext)
	require.NoError(t, err)

	assert.Equal(t, []string{"git fetch origin-lib", "git fetch ui"}, project.Mock.CommandLines())
	require.Len(t, infos, 2)
	assert.Equal(t, git.RemoteCreated, infos[1].Status)
	assert.Contains(t, project.Output.String(), "refresh complete for 2 subtrees")
}

func TestDescribeRemote(t *testing.T) {
	assert.Equal(t, "lib: origin-lib [develop, main]",
		describeRemote(subtree.RemoteInfo{Name: "lib", Remote: "origin-lib", Branches: []string{"develop", "main"}}))
	assert.Equal(t, "lib: origin-lib has no branches",
		describeRemote(subtree.RemoteInfo{Name: "lib", Remote: "origin-lib"}))
	assert.Equal(t, "lib: fetched https://example.com/lib.git",
		describeRemote(subtree.RemoteInfo{Name: "lib", Remote: "https://example.com/lib.git", Status: git.RemoteIsLocation}))
}
