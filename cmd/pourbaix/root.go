package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/elchem/pourbaix/internal/config"
	"github.com/elchem/pourbaix/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "pourbaix",
	Short: "Pourbaix generates potential-pH stability diagrams",
	Long: `Pourbaix loads thermodynamic entry sets for chemical elements,
computes the stable species across a pH/potential window and renders
the result as a labeled PNG diagram.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().String("entries-dir", "", "Directory containing the per-element entry files")
	rootCmd.PersistentFlags().String("output-dir", "", "Directory receiving the rendered diagrams")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// setup loads the configuration and applies the persistent flag
// overrides. Every command goes through here.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags().Changed("config"))
	if err != nil {
		return cfg, nil, err
	}

	if cmd.Flags().Changed("entries-dir") {
		cfg.EntriesDir, _ = cmd.Flags().GetString("entries-dir")
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir, _ = cmd.Flags().GetString("output-dir")
	}

	level, _ := cmd.Flags().GetString("log-level")
	return cfg, logging.New(logging.ParseLevel(level)), nil
}

// pickElements resolves the element list: command arguments win,
// otherwise the configuration file supplies them.
func pickElements(args []string, cfg config.Config) []string {
	if len(args) > 0 {
		return args
	}
	return cfg.Elements
}
