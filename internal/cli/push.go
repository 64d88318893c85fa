package cli

import (
	"github.com/spf13/cobra"

	"github.com/gitstu/gitstu/internal/subtree"
)

var pushCmd = &cobra.Command{
	Use:   "push SUBTREE [BRANCH]",
	Short: "Pushes a subtree to a remote",
	Long: `Pushes the commits touching a subtree back to its remote with
git subtree push.

Arguments:
  SUBTREE  Name of a registered subtree
  BRANCH   Branch to push to (defaults to the stored branch)

Pushing with --to-branch or --all never changes what .gitstu stores.

Examples:
  gitstu push lib
  gitstu push lib --to-branch feature/fix
  gitstu push --all`,
	Args: cobra.ArbitraryArgs,
	RunE: newSyncRunE(subtree.CommandPush),
}

func init() {
	rootCmd.AddCommand(pushCmd)

	pushCmd.Flags().StringP("to-branch", "t", "", "Branch to push to without saving it")
}
