package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elchem/pourbaix"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pourbaix",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pourbaix version %s\n", strings.TrimSpace(pourbaix.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
