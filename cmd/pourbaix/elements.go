package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elchem/pourbaix/pkg/adapters/fsstore"
)

// elementsCmd represents the elements command
var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the elements with a stored entry set",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, err := setup(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		store := fsstore.New(cfg.EntriesDir, fsstore.WithLogger(logger))
		symbols, err := store.ListElements(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if len(symbols) == 0 {
			fmt.Printf("No entry sets in %s. Run 'pourbaix fetch' first.\n", cfg.EntriesDir)
			return
		}
		for _, symbol := range symbols {
			fmt.Println(symbol)
		}
	},
}

func init() {
	rootCmd.AddCommand(elementsCmd)
}
