package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	doneStyle    = lipgloss.NewStyle().Bold(true)
	commandStyle = lipgloss.NewStyle().Faint(true)
)

// Output is where status lines are written. Tests may replace it.
var Output io.Writer = os.Stdout

func PrintSuccess(msg string) {
	fmt.Fprintln(Output, successStyle.Render("✓ "+msg))
}

func PrintInfo(msg string) {
	fmt.Fprintln(Output, infoStyle.Render("• "+msg))
}

func PrintWarn(msg string) {
	fmt.Fprintln(Output, warnStyle.Render("! "+msg))
}

func PrintDone(msg string) {
	fmt.Fprintln(Output, doneStyle.Render(msg))
}

// PrintCommand echoes a git command line before it runs.
func PrintCommand(cmd string) {
	fmt.Fprintln(Output, commandStyle.Render("$ "+cmd))
}

// PrintError writes an error and an optional hint to stderr.
func PrintError(err error, hint string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
	if hint != "" {
		fmt.Fprintln(os.Stderr, infoStyle.Render("  "+hint))
	}
}
