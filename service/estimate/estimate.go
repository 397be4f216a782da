// Package estimate resolves a quantity-calculation request against the
// catalog: it finds the product and its consumption defaults, then runs the
// pure calculator.
package estimate

import (
	"errors"

	"obracalc.GO/calc"
	"obracalc.GO/catalog"
)

var (
	ErrProductNotFound = errors.New("produto não encontrado")
	ErrNoRate          = errors.New("produto sem consumo cadastrado")
)

// Request carries the user-facing calculation inputs. Area is raw text.
// Thickness (mm) and Consumption (kg/m²) are optional overrides; zero
// means absent.
type Request struct {
	ProductID   string    `json:"productId"`
	Area        string    `json:"area"`
	Mode        calc.Mode `json:"mode"`
	Thickness   float64   `json:"thickness,omitempty"`
	Consumption float64   `json:"consumption,omitempty"`
}

// Quote computes the required quantity for a request. The catalog rate is
// the base; the product's application spec supplies the default thickness
// used for thickness-ratio scaling.
func Quote(store *catalog.Store, req Request) (calc.Result, catalog.Product, error) {
	product, ok := store.GetByID(req.ProductID)
	if !ok {
		return calc.Result{}, catalog.Product{}, ErrProductNotFound
	}
	rate, ok := store.GetConsumptionRate(req.ProductID)
	if !ok && req.Consumption <= 0 {
		return calc.Result{}, product, ErrNoRate
	}

	mode := req.Mode
	if mode == "" {
		mode = calc.ModeArea
	}

	in := calc.Input{
		ProductName:         product.Name,
		Area:                req.Area,
		Mode:                mode,
		BaseRate:            rate.Value,
		RateUnit:            rate.Unit,
		Thickness:           req.Thickness,
		ConsumptionOverride: req.Consumption,
	}
	if in.RateUnit == "" {
		in.RateUnit = "kg/m²"
	}
	if product.Specifications != nil {
		in.DefaultThickness = product.Specifications.Thickness
	}

	res, err := calc.Compute(in)
	if err != nil {
		return calc.Result{}, product, err
	}
	return res, product, nil
}
