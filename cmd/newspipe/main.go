// Package main is the entry point for the newspipe CLI, which normalizes
// directories of leveled educational-article documents into one queryable
// record per article.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the newspipe CLI.
var rootCmd = &cobra.Command{
	Use:   "newspipe",
	Short: "Normalize leveled news articles into a merged record set",
	Long: `newspipe reads a directory of leveled article documents, splits each
document into headline, body, homework instruction, questions, and (for the
advanced level) a writing prompt, and merges all reading levels of the same
article into one fixed-schema record.

The run subcommand executes the full batch; inspect shows the parse of a
single document; query searches a previously written record database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./newspipe.yaml or ~/.config/newspipe/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("newspipe")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "newspipe"))
		}
	}

	viper.SetEnvPrefix("NEWSPIPE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
