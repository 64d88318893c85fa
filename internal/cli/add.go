package cli

import (
	"github.com/spf13/cobra"

	"github.com/gitstu/gitstu/internal/subtree"
)

var addCmd = &cobra.Command{
	Use:   "add SUBTREE [BRANCH]",
	Short: "Define a new subtree configuration",
	Long: `Adds a subtree to the repository with git subtree add (or git read-tree
in custom mode).

Arguments:
  SUBTREE  Name of the subtree. Unknown names are defined on the spot: the
           prefix, branch and remote come from flags or are prompted for.
  BRANCH   Branch to add from (defaults to the stored branch)

Examples:
  gitstu add lib --prefix vendor/lib --remote lib main
  gitstu add lib                  # prompt for prefix, branch and remote
  gitstu add --all                # re-add every registered subtree`,
	Args: cobra.ArbitraryArgs,
	RunE: newSyncRunE(subtree.CommandAdd),
}

func init() {
	rootCmd.AddCommand(addCmd)
}
