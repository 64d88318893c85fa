package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gitstu/gitstu/internal/config"
	"github.com/gitstu/gitstu/internal/exec"
	"github.com/gitstu/gitstu/internal/git"
	"github.com/gitstu/gitstu/internal/logging"
	"github.com/gitstu/gitstu/internal/subtree"
	"github.com/gitstu/gitstu/internal/ui"
)

// ProjectContext is everything a command needs about the repository it runs in.
type ProjectContext struct {
	CWD          string
	Root         string
	RegistryPath string
	Settings     *config.Settings

	Logger   *log.Logger
	Prompter ui.Prompter
	Executor *exec.CommandExecutor

	closer io.Closer
}

// OpenProjectFromCWD resolves the repository around the working directory and
// the settings given to cmd.
func OpenProjectFromCWD(cmd *cobra.Command) (*ProjectContext, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	settings, err := config.LoadSettings(cmd.Flags())
	if err != nil {
		return nil, err
	}

	return OpenProject(cwd, settings)
}

// OpenProject creates a ProjectContext for the repository containing cwd.
func OpenProject(cwd string, settings *config.Settings) (*ProjectContext, error) {
	root, err := git.RepositoryRoot(cwd)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(settings)
	if err != nil {
		return nil, err
	}

	logger.Debug("opened repository", "root", root)

	return &ProjectContext{
		CWD:          cwd,
		Root:         root,
		RegistryPath: config.Path(root),
		Settings:     settings,
		Logger:       logger,
		Prompter:     ui.NewFormPrompter(settings.NonInteractive),
		Executor:     exec.DefaultExecutor,
		closer:       closer,
	}, nil
}

// Close releases the log file, if any.
func (pc *ProjectContext) Close() error {
	if pc.closer == nil {
		return nil
	}
	return pc.closer.Close()
}

// LoadRegistry reads .gitstu from the repository root.
func (pc *ProjectContext) LoadRegistry() (*config.Registry, error) {
	return config.Load(pc.RegistryPath)
}

// SaveRegistry writes .gitstu back to the repository root.
func (pc *ProjectContext) SaveRegistry(reg *config.Registry) error {
	if err := config.Save(pc.RegistryPath, reg); err != nil {
		return err
	}
	pc.Logger.Debug("registry saved", "path", pc.RegistryPath)
	return nil
}

// Engine returns a sync engine bound to this repository.
func (pc *ProjectContext) Engine() *subtree.Engine {
	return &subtree.Engine{
		Root:              pc.Root,
		Prompter:          pc.Prompter,
		Executor:          pc.Executor,
		Logger:            pc.Logger,
		ConfirmGatesWrite: pc.Settings.ConfirmGatesWrite,
	}
}

// Refresher returns a remote refresher bound to this repository.
func (pc *ProjectContext) Refresher() *subtree.Refresher {
	return &subtree.Refresher{
		Root:     pc.Root,
		Executor: pc.Executor,
		Logger:   pc.Logger,
	}
}
