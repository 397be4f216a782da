package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "obracalc",
	Short: "ObraCalc command line: catalog, calculator and maintenance tools",
}

// Execute runs the root command after applying registered extensions.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
