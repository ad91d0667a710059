package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/newspipe/internal/emit"
)

var queryCmd = &cobra.Command{
	Use:   "query TERMS...",
	Short: "Full-text search over a stored record database",
	Long: `Query runs an FTS5 search over the headlines, article texts, and
questions of records previously stored with run --db, printing the id,
slug, and headline of each hit.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		limit, _ := cmd.Flags().GetInt("max-results")

		store, err := emit.OpenStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		hits, err := store.Search(cmd.Context(), strings.Join(args, " "), limit)
		if err != nil {
			return err
		}

		for _, h := range hits {
			fmt.Printf("%s\t%s\t%s\n", h.ID, h.Slug, h.Headline)
		}
		fmt.Printf("\n%d result(s)\n", len(hits))
		return nil
	},
}

func init() {
	queryCmd.Flags().String("db", "newspipe.db", "SQLite database written by run --db")
	queryCmd.Flags().Int("max-results", 20, "maximum number of query results")

	rootCmd.AddCommand(queryCmd)
}
