package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	gserrors "github.com/gitstu/gitstu/internal/errors"
	"github.com/gitstu/gitstu/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "gitstu",
	Short: "Helper utility for working with git subtrees",
	Long: `gitstu keeps a .gitstu registry of the subtrees vendored into a repository
and runs the git commands that add, pull and push them by name.

Define a subtree once with "gitstu add NAME", then sync it with
"gitstu pull NAME" or "gitstu push NAME", or every subtree at once with --all.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and reports a failure on stderr. The error is
// returned so the caller can map it to an exit code.
func Execute() error {
	err := rootCmd.Execute()
	switch {
	case err == nil:
	case ui.IsAbort(err):
		ui.PrintWarn("Aborted")
	default:
		ui.PrintError(err, hintFor(err))
	}
	return err
}

// hintFor suggests the next step for errors the user can fix.
func hintFor(err error) string {
	var notRegistered *gserrors.SubtreeNotRegisteredError
	switch {
	case errors.As(err, &notRegistered):
		return notRegistered.Hint()
	case errors.Is(err, gserrors.ErrConfigNotFound):
		return "to create one: gitstu init"
	case errors.Is(err, gserrors.ErrNoGitRoot):
		return "run gitstu from inside a git repository"
	case errors.Is(err, gserrors.ErrInvalidInvocation):
		return "see gitstu --help for usage"
	case errors.Is(err, gserrors.ErrPromptFailed):
		return "pass the missing values as flags when not running in a terminal"
	default:
		return ""
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("remote", "r", "", "Sets the remote to use")
	flags.StringP("prefix", "p", "", "Sets the prefix to use")
	flags.StringP("branch", "b", "", "Sets the branch to use")
	flags.BoolP("squash", "s", false, "Squashes commits")
	flags.BoolP("all", "a", false, "Runs command against all subtrees")
	flags.StringP("with-branch", "w", "", "Only run against subtrees on this branch (requires --all)")
	flags.Bool("verbose", false, "Enable verbose output")
	flags.Bool("confirm-gates-write", false, "Only save resolved values to .gitstu when confirmed")
	flags.Bool("non-interactive", false, "Fail instead of prompting for missing values")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", gserrors.ErrInvalidInvocation, err)
	})
}
