// Package models holds the GraphQL view types, mapped from the catalog and
// calculator types so schema nullability stays explicit.
package models

import (
	gql "github.com/graph-gophers/graphql-go"

	"obracalc.GO/calc"
	"obracalc.GO/catalog"
)

type Product struct {
	ID             gql.ID
	Name           string
	Category       string
	Description    string
	ImageURL       string
	TechnicalSheet string
	Components     []Component
	Specifications *Specifications
}

type Component struct {
	Name           string
	Description    string
	SpecificWeight float64
	Parts          []Part
}

type Part struct {
	Name   string
	Weight float64
	Ratio  float64
}

type Specifications struct {
	Thickness   float64
	Consumption float64
	Yield       float64
}

type ConsumptionRate struct {
	ProductID  gql.ID
	Unit       string
	Value      float64
	Conditions string
}

type CalcResult struct {
	ProductName     string
	Area            float64
	Mode            string
	ConsumptionRate float64
	ConsumptionUnit string
	RequiredKg      float64
	Packaging       string
	PackageCount    int32
}

// FromProduct maps a catalog product to its GraphQL view.
func FromProduct(p catalog.Product) *Product {
	out := &Product{
		ID:             gql.ID(p.ID),
		Name:           p.Name,
		Category:       p.Category,
		Description:    p.Description,
		ImageURL:       p.ImageURL,
		TechnicalSheet: p.TechnicalSheet,
		Components:     make([]Component, 0, len(p.Components)),
	}
	for _, c := range p.Components {
		mc := Component{
			Name:           c.Name,
			Description:    c.Description,
			SpecificWeight: c.SpecificWeight,
			Parts:          make([]Part, 0, len(c.Parts)),
		}
		for _, pt := range c.Parts {
			mc.Parts = append(mc.Parts, Part{Name: pt.Name, Weight: pt.Weight, Ratio: pt.Ratio})
		}
		out.Components = append(out.Components, mc)
	}
	if p.Specifications != nil {
		out.Specifications = &Specifications{
			Thickness:   p.Specifications.Thickness,
			Consumption: p.Specifications.Consumption,
			Yield:       p.Specifications.Yield,
		}
	}
	return out
}

// FromProducts maps a product slice.
func FromProducts(products []catalog.Product) []*Product {
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

// FromRate maps a consumption rate.
func FromRate(r catalog.ConsumptionRate) *ConsumptionRate {
	return &ConsumptionRate{
		ProductID:  gql.ID(r.ProductID),
		Unit:       r.Unit,
		Value:      r.Value,
		Conditions: r.Conditions,
	}
}

// FromResult maps a calculator result.
func FromResult(r calc.Result) *CalcResult {
	return &CalcResult{
		ProductName:     r.ProductName,
		Area:            r.Area,
		Mode:            string(r.Mode),
		ConsumptionRate: r.ConsumptionRate,
		ConsumptionUnit: r.ConsumptionUnit,
		RequiredKg:      r.RequiredKg,
		Packaging:       r.Packaging,
		PackageCount:    int32(r.PackageCount),
	}
}
