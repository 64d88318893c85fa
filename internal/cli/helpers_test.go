package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"

	"github.com/gitstu/gitstu/internal/config"
	"github.com/gitstu/gitstu/internal/exec"
	"github.com/gitstu/gitstu/internal/logging"
	"github.com/gitstu/gitstu/internal/ui"
)

type testProject struct {
	*ProjectContext
	Mock     *exec.MockCommander
	Prompter *ui.ScriptedPrompter
	Output   *bytes.Buffer
}

// newTestProject initialises a repository with an optional .gitstu and a
// ProjectContext whose git calls and prompts are scripted.
func newTestProject(t *testing.T, registry string) *testProject {
	t.Helper()
	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	if registry != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(registry), 0644))
	}

	var out bytes.Buffer
	previous := ui.Output
	ui.Output = &out
	t.Cleanup(func() { ui.Output = previous })

	mock := exec.NewMockCommander()
	prompter := ui.NewScriptedPrompter()

	return &testProject{
		ProjectContext: &ProjectContext{
			CWD:          dir,
			Root:         dir,
			RegistryPath: config.Path(dir),
			Settings:     &config.Settings{},
			Logger:       logging.Discard(),
			Prompter:     prompter,
			Executor:     exec.NewCommandExecutor(mock),
		},
		Mock:     mock,
		Prompter: prompter,
		Output:   &out,
	}
}

func (p *testProject) registryContent(t *testing.T) string {
	t.Helper()
	content, err := os.ReadFile(p.RegistryPath)
	require.NoError(t, err)
	return string(content)
}
