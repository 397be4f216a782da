package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"obracalc.GO/config"
	importService "obracalc.GO/service/importer"
)

var (
	importFile         string
	importCategoryType string
)

var importCmd = &cobra.Command{
	Use:   "catalog:import",
	Short: "Import products, consumption rates and specs from CSV",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(importFile)
		if err != nil {
			fmt.Printf("Failed to open CSV: %v\n", err)
			return
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		res, err := importService.ImportCatalog(db, f, importService.ImportOptions{
			CategoryType: importCategoryType,
		})
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}

		fmt.Printf(`
=== Import Report ===
CSV rows:       %d
Created:        %d
Updated:        %d
Skipped:        %d
Rates:          %d
Specs:          %d
Total time:     %s
  - Processing: %s
=====================
`, res.TotalRows, res.Created, res.Updated, res.Skipped,
			res.Rates, res.Specs,
			res.TotalTime.Round(time.Millisecond),
			res.ProcessTime.Round(time.Millisecond))
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().StringVar(&importCategoryType, "category-type", "", "Type stored on categories created during the import")
	rootCmd.AddCommand(importCmd)
}
