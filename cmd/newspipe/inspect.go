package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/newspipe/internal/docfile"
	"github.com/pdiddy/newspipe/internal/scan"
	"github.com/pdiddy/newspipe/internal/segment"
	"github.com/pdiddy/newspipe/pkg/types"
)

// inspection is the YAML shape printed for one document.
type inspection struct {
	Filename string                   `yaml:"filename"`
	Slug     string                   `yaml:"slug"`
	Parse    types.ParsedLevelContent `yaml:"parse"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Show the parse of a single document",
	Long: `Inspect extracts and segments one document and prints the resulting
parse as YAML: slug, headline, article text, instruction, questions, and
writing prompt. Useful for checking how the section heuristics split a
particular file before running the full batch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		name, ok := scan.Parse(filepath.Base(path))
		if !ok {
			return fmt.Errorf("%s: filename carries no level token", path)
		}
		if !name.Level.Valid() {
			return fmt.Errorf("%s: level %d outside recognized range", path, name.Level)
		}

		text, err := docfile.Extractor{}.Extract(path)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(inspection{
			Filename: filepath.Base(path),
			Slug:     name.Slug,
			Parse:    segment.Segment(text, name.Level),
		})
		if err != nil {
			return fmt.Errorf("marshaling parse: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
