package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/checkmatch-dev/checkmatch/internal/config"
	"github.com/checkmatch-dev/checkmatch/internal/model"
	"github.com/checkmatch-dev/checkmatch/internal/tabfile"
)

func newColumnsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "columns <file>",
		Short: "Show a file's columns and the detected check/vendor columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			return runColumns(cmd.OutOrStdout(), args[0], cfg.Columns)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigFile, "config file")

	return cmd
}

func runColumns(stdout io.Writer, path string, columns config.ColumnsConfig) error {
	table, err := tabfile.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Columns in %s:\n", path)
	for _, col := range table.Columns {
		fmt.Fprintf(stdout, "  %s\n", col)
	}

	r := newResolver(columns)
	for _, role := range model.Roles {
		if col, ok := r.Suggest(table.Columns, role); ok {
			fmt.Fprintf(stdout, "Detected %s column: %s\n", role, col)
		} else {
			fmt.Fprintf(stdout, "Detected %s column: (none)\n", role)
		}
	}
	return nil
}
