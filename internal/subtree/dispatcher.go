package subtree

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/gitstu/gitstu/internal/config"
	"github.com/gitstu/gitstu/internal/exec"
	"github.com/gitstu/gitstu/internal/git"
	"github.com/gitstu/gitstu/internal/ui"
)

// Strategy builds the git command that performs cmd for one entry.
type Strategy interface {
	Command(cmd Command, entry config.SubtreeEntry, target Target, squash bool) git.Command
}

// StrategyFor returns the integration strategy of a registry mode.
func StrategyFor(mode config.Mode) Strategy {
	if mode.Effective() == config.ModeCustom {
		return customStrategy{}
	}
	return standardStrategy{}
}

// standardStrategy keeps upstream history with git subtree.
type standardStrategy struct{}

func (standardStrategy) Command(cmd Command, entry config.SubtreeEntry, target Target, squash bool) git.Command {
	args := []string{"subtree", string(cmd), "--prefix=" + entry.Prefix, target.Remote.Target(), target.Branch}
	if squash && cmd != CommandPush {
		args = append(args, "--squash")
	}
	return git.NewCommand(args...)
}

// customStrategy imports the upstream tree only: read-tree to add, a
// subtree-scoped merge preferring upstream to pull.
type customStrategy struct{}

func (customStrategy) Command(cmd Command, entry config.SubtreeEntry, target Target, squash bool) git.Command {
	ref := target.Remote.Target() + "/" + target.Branch
	prefix := strings.TrimSuffix(entry.Prefix, "/") + "/"

	switch cmd {
	case CommandAdd:
		return git.NewCommand("read-tree", "--prefix="+prefix, "-u", ref)
	case CommandPull:
		args := []string{"merge", "-X", "subtree=" + prefix, "-X", "theirs", ref}
		if squash {
			args = append(args, "--squash")
		}
		return git.NewCommand(args...)
	default:
		return standardStrategy{}.Command(cmd, entry, target, false)
	}
}

// Dispatcher runs strategy commands in the repository root.
type Dispatcher struct {
	Strategy Strategy
	Executor *exec.CommandExecutor
	Root     string
	Logger   *log.Logger
}

// Dispatch builds and runs the command for entry, blocking until git exits.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command, entry config.SubtreeEntry, target Target, squash bool) error {
	command := d.Strategy.Command(cmd, entry, target, squash)

	loggerOr(d.Logger).Info(actionLabel(cmd), "subtree", entry.Name, "branch", target.Branch, "remote", target.Remote.Target())
	ui.PrintCommand(command.String())

	_, err := d.Executor.RunStreaming(ctx, d.Root, ui.Output, git.Binary, command.Args)
	return err
}

func actionLabel(cmd Command) string {
	switch cmd {
	case CommandAdd:
		return "adding subtree"
	case CommandPull:
		return "pulling subtree"
	case CommandPush:
		return "pushing subtree"
	default:
		return string(cmd)
	}
}
