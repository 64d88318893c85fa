package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitstu/gitstu/internal/config"
	"github.com/gitstu/gitstu/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates a .gitstu for this repository",
	Long: `Creates an empty .gitstu registry at the root of the current git repository.

An existing .gitstu is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pc, err := OpenProjectFromCWD(cmd)
		if err != nil {
			return err
		}
		defer pc.Close()

		return runInit(pc)
	},
}

func runInit(pc *ProjectContext) error {
	if _, err := config.Init(pc.RegistryPath); err != nil {
		return err
	}

	pc.Logger.Debug("registry created", "path", pc.RegistryPath)
	ui.PrintSuccess(fmt.Sprintf("Created %s", pc.RegistryPath))
	ui.PrintInfo("Define a subtree with: gitstu add NAME")
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
