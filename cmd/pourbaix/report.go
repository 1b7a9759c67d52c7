package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elchem/pourbaix/internal/cli"
	"github.com/elchem/pourbaix/internal/presentation/tui"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [elements...]",
	Short: "Print a terminal summary of an element's stability diagram",
	Long: `Computes the stability diagram for the given elements and prints a
styled summary to the terminal: the stable species, their share of
the pH/potential window, and the species stable under a few landmark
conditions. Nothing is written to disk.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		elements := pickElements(args, cfg)
		if len(elements) == 0 {
			fmt.Println("Error: no elements requested: pass symbols as arguments or list them in the configuration file")
			os.Exit(1)
		}

		opts := cli.RunOptions{
			Elements:      elements,
			EntriesDir:    cfg.EntriesDir,
			Limits:        cfg.Limits,
			Resolution:    cfg.Resolution,
			Concentration: cfg.Concentration,
		}
		gen, err := cli.NewGenerator(opts, logger)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		diagram, err := gen.Diagram(cmd.Context(), elements)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		tui.PrintBanner()
		fmt.Print(tui.Render(tui.BuildReport(elements, diagram)))
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
