package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitstu/gitstu/internal/git"
	"github.com/gitstu/gitstu/internal/subtree"
	"github.com/gitstu/gitstu/internal/ui"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Retrieves remote branch information",
	Long: `Fetches the remote of every registered subtree so its branches are
available locally. A git remote is created for any alias that .gitstu
knows the url of but the repository does not.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pc, err := OpenProjectFromCWD(cmd)
		if err != nil {
			return err
		}
		defer pc.Close()

		_, err = runRefresh(cmd.Context(), pc)
		return err
	},
}

func runRefresh(ctx context.Context, pc *ProjectContext) ([]subtree.RemoteInfo, error) {
	reg, err := pc.LoadRegistry()
	if err != nil {
		return nil, err
	}

	infos, err := pc.Refresher().Refresh(ctx, reg)
	if err != nil {
		return infos, err
	}

	for _, info := range infos {
		ui.PrintInfo(describeRemote(info))
	}
	ui.PrintDone(fmt.Sprintf("refresh complete for %s", pluralSubtrees(len(infos))))
	return infos, nil
}

func describeRemote(info subtree.RemoteInfo) string {
	if info.Status == git.RemoteIsLocation {
		return fmt.Sprintf("%s: fetched %s", info.Name, info.Remote)
	}
	if len(info.Branches) == 0 {
		return fmt.Sprintf("%s: %s has no branches", info.Name, info.Remote)
	}
	return fmt.Sprintf("%s: %s [%s]", info.Name, info.Remote, strings.Join(info.Branches, ", "))
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
