package cli

import "github.com/spf13/cobra"

// mustGetString reads a string flag registered on cmd or one of its parents.
func mustGetString(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	return value
}

// mustGetBool reads a bool flag registered on cmd or one of its parents.
func mustGetBool(cmd *cobra.Command, name string) bool {
	value, _ := cmd.Flags().GetBool(name)
	return value
}
