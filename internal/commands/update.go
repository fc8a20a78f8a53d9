package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/checkmatch-dev/checkmatch/internal/checkkey"
	"github.com/checkmatch-dev/checkmatch/internal/config"
	"github.com/checkmatch-dev/checkmatch/internal/match"
	"github.com/checkmatch-dev/checkmatch/internal/model"
	"github.com/checkmatch-dev/checkmatch/internal/resolver"
	"github.com/checkmatch-dev/checkmatch/internal/runlog"
	"github.com/checkmatch-dev/checkmatch/internal/tabfile"
)

// defaultConfigFile is picked up from the working directory when present.
const defaultConfigFile = "checkmatch.yaml"

type updateParams struct {
	targetPath string
	refPaths   []string
	outPath    string

	targetMapping model.Mapping // flag overrides; blank roles are auto-detected
	refMapping    model.Mapping

	options         checkkey.Options
	columns         config.ColumnsConfig
	unmatchedSuffix string
	backupSuffix    string
	writeUnmatched  bool
	writeBackup     bool
}

func newUpdateCommand() *cobra.Command {
	var refs []string
	var out string
	var configPath string
	var targetCheck, targetVendor, refCheck, refVendor string
	var trimSpaces, stringifyNumeric, stripDotZero, extractDigits bool
	var writeUnmatched, writeBackup bool

	cmd := &cobra.Command{
		Use:   "update <target-file>",
		Short: "Rewrite vendor names in a target export by check number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}

			p := updateParams{
				targetPath:      args[0],
				refPaths:        refs,
				outPath:         out,
				targetMapping:   model.Mapping{CheckNumber: targetCheck, VendorName: targetVendor},
				refMapping:      model.Mapping{CheckNumber: refCheck, VendorName: refVendor},
				options:         cfg.Matching.Options(),
				columns:         cfg.Columns,
				unmatchedSuffix: cfg.Output.UnmatchedSuffix,
				backupSuffix:    cfg.Output.BackupSuffix,
				writeUnmatched:  cfg.Output.WriteUnmatched,
				writeBackup:     cfg.Output.WriteBackup,
			}

			// Flags beat config, but only when actually set.
			if cmd.Flags().Changed("trim-spaces") {
				p.options.TrimSpaces = trimSpaces
			}
			if cmd.Flags().Changed("stringify-numeric") {
				p.options.StringifyNumeric = stringifyNumeric
			}
			if cmd.Flags().Changed("strip-dot-zero") {
				p.options.StripTrailingDotZero = stripDotZero
			}
			if cmd.Flags().Changed("extract-digits") {
				p.options.ExtractDigitsFromText = extractDigits
			}
			if cmd.Flags().Changed("unmatched") {
				p.writeUnmatched = writeUnmatched
			}
			if cmd.Flags().Changed("backup") {
				p.writeBackup = writeBackup
			}
			if p.outPath == "" {
				p.outPath = tabfile.SiblingPath(p.targetPath, cfg.Output.UpdatedSuffix)
			}

			return runUpdate(cmd.OutOrStdout(), cmd.ErrOrStderr(), p)
		},
	}

	cmd.Flags().StringArrayVar(&refs, "ref", nil, "reference file with check numbers and vendor names (repeatable)")
	_ = cmd.MarkFlagRequired("ref")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: <target>_Updated)")
	cmd.Flags().StringVar(&configPath, "config", defaultConfigFile, "config file")
	cmd.Flags().StringVar(&targetCheck, "target-check", "", "check-number column in the target file")
	cmd.Flags().StringVar(&targetVendor, "target-vendor", "", "vendor column to update in the target file")
	cmd.Flags().StringVar(&refCheck, "ref-check", "", "check-number column in the reference file")
	cmd.Flags().StringVar(&refVendor, "ref-vendor", "", "vendor-name column in the reference file")
	cmd.Flags().BoolVar(&trimSpaces, "trim-spaces", true, "trim whitespace around check numbers")
	cmd.Flags().BoolVar(&stringifyNumeric, "stringify-numeric", true, "render numeric cells exactly (101.0 matches 101)")
	cmd.Flags().BoolVar(&stripDotZero, "strip-dot-zero", true, "strip a trailing .0 from check numbers")
	cmd.Flags().BoolVar(&extractDigits, "extract-digits", true, "extract digits from text like 'Check 101'")
	cmd.Flags().BoolVar(&writeUnmatched, "unmatched", true, "write an unmatched-rows report")
	cmd.Flags().BoolVar(&writeBackup, "backup", true, "write a backup copy of the target file")

	return cmd
}

// loadConfig reads an explicit config path, or the default file when it
// exists, falling back to built-in defaults.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, err
}

func runUpdate(stdout, stderr io.Writer, p updateParams) error {
	target, err := tabfile.ReadFile(p.targetPath)
	if err != nil {
		return fmt.Errorf("reading target: %w", err)
	}

	reference, err := tabfile.ReadAll(p.refPaths)
	if err != nil {
		return fmt.Errorf("reading reference: %w", err)
	}
	if len(reference.Rows) == 0 {
		fmt.Fprintln(stderr, "warning: reference file has no rows; nothing will match")
	}

	r := newResolver(p.columns)
	targetMapping, err := resolveMapping(r, "target", target, p.targetMapping,
		"--target-check", "--target-vendor")
	if err != nil {
		return err
	}
	refMapping, err := resolveMapping(r, "reference", reference, p.refMapping,
		"--ref-check", "--ref-vendor")
	if err != nil {
		return err
	}

	result, err := match.Reconcile(target, reference, targetMapping, refMapping, p.options)
	if err != nil {
		return err
	}

	var backupPath string
	if p.writeBackup {
		backupPath, err = tabfile.Backup(p.targetPath, p.backupSuffix)
		if err != nil {
			return fmt.Errorf("backing up target: %w", err)
		}
	}

	if err := tabfile.WriteFile(p.outPath, result.Updated); err != nil {
		return fmt.Errorf("writing updated file: %w", err)
	}

	var unmatchedPath string
	if p.writeUnmatched && len(result.Unmatched.Rows) > 0 {
		// The report carries just the columns someone chasing down
		// unmatched checks needs.
		report := result.Unmatched.Select(targetMapping.CheckNumber, targetMapping.VendorName)
		unmatchedPath = tabfile.SiblingPath(p.outPath, p.unmatchedSuffix)
		if err := tabfile.WriteFile(unmatchedPath, report); err != nil {
			return fmt.Errorf("writing unmatched report: %w", err)
		}
	}

	s := result.Summary
	fmt.Fprintln(stdout, "Update complete.")
	fmt.Fprintf(stdout, "Total rows in target file: %d\n", s.TotalRows)
	fmt.Fprintf(stdout, "Total check rows matched: %d\n", s.MatchedRows)
	fmt.Fprintf(stdout, "Total unmatched rows: %d\n", s.UnmatchedRows)
	fmt.Fprintf(stdout, "Total vendor names replaced: %d\n", s.VendorNamesReplaced)
	fmt.Fprintf(stdout, "Rows skipped due to blank/invalid check number: %d\n", s.SkippedRows)
	if len(result.Duplicates) > 0 {
		fmt.Fprintf(stderr, "Warning: %d duplicate check number(s) in reference file. First match was used.\n", len(result.Duplicates))
	}

	fmt.Fprintf(stdout, "Saved updated file: %s\n", p.outPath)
	if backupPath != "" {
		fmt.Fprintf(stdout, "Saved backup of original target file: %s\n", backupPath)
	}
	if unmatchedPath != "" {
		fmt.Fprintf(stdout, "Saved unmatched report: %s\n", unmatchedPath)
	}

	entry := runlog.New(filepath.Base(p.targetPath), s)
	if err := runlog.Append(filepath.Dir(p.outPath), []runlog.Entry{entry}); err != nil {
		fmt.Fprintf(stderr, "warning: failed to write run log: %v\n", err)
	}

	return nil
}

// newResolver builds a resolver carrying any config-supplied aliases.
func newResolver(columns config.ColumnsConfig) *resolver.Resolver {
	r := resolver.New()
	r.AddAliases(model.RoleCheckNumber, columns.CheckAliases...)
	r.AddAliases(model.RoleVendorName, columns.VendorAliases...)
	return r
}

// resolveMapping fills blank roles from header suggestions and validates
// the result against the table.
func resolveMapping(r *resolver.Resolver, tableName string, table *model.Table, mapping model.Mapping, checkFlag, vendorFlag string) (model.Mapping, error) {
	flags := map[model.ColumnRole]string{
		model.RoleCheckNumber: checkFlag,
		model.RoleVendorName:  vendorFlag,
	}
	for _, role := range model.Roles {
		if mapping.Column(role) != "" {
			continue
		}
		col, ok := r.Suggest(table.Columns, role)
		if !ok {
			return model.Mapping{}, fmt.Errorf("cannot detect the %s column in the %s file; pass %s", role, tableName, flags[role])
		}
		mapping = mapping.WithColumn(role, col)
	}

	if err := resolver.Validate(tableName, mapping, table); err != nil {
		return model.Mapping{}, err
	}
	return mapping, nil
}
