package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/checkmatch-dev/checkmatch/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "checkmatch",
		Short:   "Update vendor names in payment exports by check number",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newColumnsCommand())
	rootCmd.AddCommand(newUpdateCommand())

	return rootCmd
}
