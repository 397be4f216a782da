package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"obracalc.GO/calc"
	"obracalc.GO/catalog"
	"obracalc.GO/config"
	"obracalc.GO/service/estimate"
)

var (
	calcProduct     string
	calcArea        string
	calcLinear      bool
	calcThickness   float64
	calcConsumption float64
)

var calcCmd = &cobra.Command{
	Use:   "calc:run",
	Short: "Compute the required material quantity for a product and area",
	Run: func(cmd *cobra.Command, args []string) {
		var store *catalog.Store
		if db, err := config.NewDB(); err == nil {
			store = catalog.NewStore(db)
		} else {
			store = catalog.NewStaticStore()
		}

		req := estimate.Request{
			ProductID:   calcProduct,
			Area:        calcArea,
			Mode:        calc.ModeArea,
			Thickness:   calcThickness,
			Consumption: calcConsumption,
		}
		if calcLinear {
			req.Mode = calc.ModeLinear
		}

		res, _, err := estimate.Quote(store, req)
		if err != nil {
			fmt.Printf("Calculation failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf(`
=== %s ===
Área:        %.2f m²
Consumo:     %.3f %s
Quantidade:  %.2f kg
Embalagem:   %d × %s
============
`, res.ProductName, res.Area, res.ConsumptionRate, res.ConsumptionUnit,
			res.RequiredKg, res.PackageCount, res.Packaging)
	},
}

func init() {
	calcCmd.Flags().StringVarP(&calcProduct, "product", "p", "", "Product ID (required)")
	calcCmd.MarkFlagRequired("product")
	calcCmd.Flags().StringVarP(&calcArea, "area", "a", "", "Area in m², or length in m with --linear (required)")
	calcCmd.MarkFlagRequired("area")
	calcCmd.Flags().BoolVar(&calcLinear, "linear", false, "Treat the area value as a linear run in metres")
	calcCmd.Flags().Float64Var(&calcThickness, "thickness", 0, "Override application thickness in mm")
	calcCmd.Flags().Float64Var(&calcConsumption, "consumption", 0, "Override consumption in kg/m²")
	rootCmd.AddCommand(calcCmd)
}
