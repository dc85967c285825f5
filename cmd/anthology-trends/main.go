// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the anthology-trends CLI.
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

// rootCmd is the base command for the anthology-trends CLI.
var rootCmd = &cobra.Command{
	Use:   "anthology-trends",
	Short: "Track code availability of papers on the ACL Anthology",
	Long: `anthology-trends scrapes per-conference-per-year listing pages from the
ACL Anthology, records for each paper whether a released-code link is
present, and reports the share of papers with code as a table and a line
chart.

Each stage is a subcommand: collect scrapes listing pages into a CSV table,
report aggregates the table and renders the trend chart, and archive
accumulates collected records in a local SQLite database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./anthology-trends.yaml or ~/.config/anthology-trends/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("anthology-trends")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "anthology-trends"))
		}
	}

	viper.SetEnvPrefix("ANTHOLOGY_TRENDS")
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
