package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/newspipe/internal/docfile"
	"github.com/pdiddy/newspipe/internal/emit"
	"github.com/pdiddy/newspipe/internal/pipeline"
	"github.com/pdiddy/newspipe/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process a directory of leveled articles into the record set",
	Long: `Run scans the input directory for leveled article documents, parses
each one, merges the reading levels of each article, and writes the record
set to the output file. Files without a level token, with unreadable
containers, or with empty text are skipped with a diagnostic; only a
missing input directory aborts the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := runConfig(cmd)

		summary, records, err := pipeline.Run(cmd.Context(), docfile.Extractor{}, cfg, os.Stderr)
		if err != nil {
			return err
		}

		if err := emit.WriteFile(records, cfg.Emit.Format, cfg.Emit.OutputPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %d records to %s\n", len(records), cfg.Emit.OutputPath)

		if cfg.Emit.DatabasePath != "" {
			store, err := emit.OpenStore(cfg.Emit.DatabasePath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Put(cmd.Context(), records); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "stored %d records in %s\n", len(records), cfg.Emit.DatabasePath)
		}

		if summary.HasFailures() {
			fmt.Fprintf(os.Stderr, "warning: %d file(s) failed extraction\n", summary.Failed)
		}
		return nil
	},
}

// runConfig resolves the pipeline configuration: flags win over config
// file values, defaults fill the rest.
func runConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.PipelineConfig{
		Scan: types.ScanConfig{
			InputDir:  viper.GetString("scan.input_dir"),
			Extension: viper.GetString("scan.extension"),
		},
		Emit: types.EmitConfig{
			Format:       types.OutputFormat(viper.GetString("emit.format")),
			OutputPath:   viper.GetString("emit.output_path"),
			DatabasePath: viper.GetString("emit.database_path"),
		},
	}

	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.Scan.InputDir = v
	}
	if v, _ := cmd.Flags().GetString("extension"); v != "" {
		cfg.Scan.Extension = v
	}
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.Emit.Format = types.OutputFormat(v)
	}
	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.Emit.OutputPath = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.Emit.DatabasePath = v
	}

	return cfg.WithDefaults()
}

func init() {
	runCmd.Flags().String("input", "", "directory holding the leveled article documents")
	runCmd.Flags().String("extension", "", "input file extension filter (default .docx)")
	runCmd.Flags().String("format", "", "output format: js, json, or yaml (default js)")
	runCmd.Flags().String("out", "", "output file path (default newsData.js)")
	runCmd.Flags().String("db", "", "also store records in this SQLite database")

	rootCmd.AddCommand(runCmd)
}
