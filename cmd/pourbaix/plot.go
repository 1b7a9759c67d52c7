package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elchem/pourbaix/internal/cli"
)

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot [elements...]",
	Short: "Render Pourbaix diagrams for the given elements",
	Long: `Loads the stored entry set of each element, computes its stability
diagram and writes one PNG per element into the output directory.
With --combine all elements are pooled into a single diagram.

Elements can be passed as arguments or listed in the configuration
file; a failing element is reported and the batch continues.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		combine, _ := cmd.Flags().GetBool("combine")
		resolution, _ := cmd.Flags().GetInt("resolution")
		concentration, _ := cmd.Flags().GetFloat64("concentration")
		if !cmd.Flags().Changed("resolution") {
			resolution = cfg.Resolution
		}
		if !cmd.Flags().Changed("concentration") {
			concentration = cfg.Concentration
		}

		opts := cli.RunOptions{
			Elements:      pickElements(args, cfg),
			EntriesDir:    cfg.EntriesDir,
			OutputDir:     cfg.OutputDir,
			Limits:        cfg.Limits,
			Resolution:    resolution,
			Concentration: concentration,
			Combine:       combine,
		}

		if err := cli.RunBatch(cmd.Context(), opts, logger); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().Bool("combine", false, "Pool all elements into a single diagram")
	plotCmd.Flags().IntP("resolution", "r", 0, "Grid cells per axis (default 280)")
	plotCmd.Flags().Float64("concentration", 0, "Ion concentration in mol/l for dissolved species")

	// Make 'plot' the default if no command is provided.
	rootCmd.Run = plotCmd.Run
}
