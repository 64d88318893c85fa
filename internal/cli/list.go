package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gitstu/gitstu/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the registered subtrees",
	Long: `Prints every subtree in .gitstu with its prefix, branch and remote.

Use --yaml for output that scripts can parse.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pc, err := OpenProjectFromCWD(cmd)
		if err != nil {
			return err
		}
		defer pc.Close()

		reg, err := pc.LoadRegistry()
		if err != nil {
			return err
		}

		if mustGetBool(cmd, "yaml") {
			return writeListYAML(cmd.OutOrStdout(), reg)
		}
		return writeListTable(cmd.OutOrStdout(), reg)
	},
}

type listView struct {
	Mode     config.Mode `yaml:"mode"`
	Squash   bool        `yaml:"squash"`
	Subtrees []listEntry `yaml:"subtrees"`
}

type listEntry struct {
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix"`
	Branch string `yaml:"branch,omitempty"`
	Remote string `yaml:"remote,omitempty"`
	URL    string `yaml:"url,omitempty"`
}

func newListView(reg *config.Registry) listView {
	view := listView{
		Mode:     reg.Mode.Effective(),
		Squash:   reg.SquashDefault(),
		Subtrees: make([]listEntry, 0, len(reg.Subtrees)),
	}
	for _, entry := range reg.Subtrees {
		item := listEntry{Name: entry.Name, Prefix: entry.Prefix, Branch: entry.Branch}
		if entry.HasRemote() {
			item.Remote = entry.Remote.Target()
			if entry.Remote.URL != item.Remote {
				item.URL = entry.Remote.URL
			}
		}
		view.Subtrees = append(view.Subtrees, item)
	}
	return view
}

func writeListYAML(w io.Writer, reg *config.Registry) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newListView(reg)); err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	return encoder.Close()
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func writeListTable(w io.Writer, reg *config.Registry) error {
	view := newListView(reg)
	if len(view.Subtrees) == 0 {
		_, err := fmt.Fprintf(w, "No subtrees in %s\n", config.FileName)
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "PREFIX", "BRANCH", "REMOTE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, entry := range view.Subtrees {
		remote := entry.Remote
		if entry.URL != "" {
			remote = fmt.Sprintf("%s (%s)", entry.Remote, entry.URL)
		}
		t.Row(entry.Name, entry.Prefix, entry.Branch, remote)
	}

	_, err := fmt.Fprintf(w, "%s\nmode: %s, squash: %t\n", t.Render(), view.Mode, view.Squash)
	return err
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("yaml", false, "Print the registry as YAML")
}
