package cli

import (
	"github.com/spf13/cobra"

	"github.com/gitstu/gitstu/internal/subtree"
)

var pullCmd = &cobra.Command{
	Use:   "pull SUBTREE [BRANCH]",
	Short: "Pulls a subtree from a remote",
	Long: `Pulls upstream changes into a subtree with git subtree pull (or a
subtree-scoped merge in custom mode).

Arguments:
  SUBTREE  Name of a registered subtree
  BRANCH   Branch to pull from (defaults to the stored branch)

A branch or remote that had to be resolved is saved to .gitstu afterwards.

Examples:
  gitstu pull lib
  gitstu pull lib develop
  gitstu pull --all --with-branch main`,
	Args: cobra.ArbitraryArgs,
	RunE: newSyncRunE(subtree.CommandPull),
}

func init() {
	rootCmd.AddCommand(pullCmd)

	pullCmd.Flags().StringP("to-branch", "t", "", "Branch to pull from this time only")
}
