package estimate

import (
	"errors"
	"testing"

	"obracalc.GO/calc"
	"obracalc.GO/catalog"
)

func staticStore() *catalog.Store {
	return catalog.NewStaticStore()
}

func TestQuote_AreaMode(t *testing.T) {
	// product 2 (254 Platinum) has a 5 kg/m² static rate
	res, product, err := Quote(staticStore(), Request{ProductID: "2", Area: "10", Mode: calc.ModeArea})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if product.Name != "254 Platinum" {
		t.Errorf("product = %q", product.Name)
	}
	if res.RequiredKg != 50 || res.PackageCount != 3 {
		t.Errorf("result = %v kg / %d bags, want 50 / 3", res.RequiredKg, res.PackageCount)
	}
}

func TestQuote_ProductNotFound(t *testing.T) {
	_, _, err := Quote(staticStore(), Request{ProductID: "999", Area: "10"})
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestQuote_InvalidArea(t *testing.T) {
	_, _, err := Quote(staticStore(), Request{ProductID: "2", Area: ""})
	if !errors.Is(err, calc.ErrInvalidArea) {
		t.Errorf("err = %v, want ErrInvalidArea", err)
	}
}

func TestQuote_ConsumptionOverride(t *testing.T) {
	res, _, err := Quote(staticStore(), Request{ProductID: "2", Area: "10", Consumption: 2})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if res.RequiredKg != 20 {
		t.Errorf("RequiredKg = %v, want 20 (override replaces base rate)", res.RequiredKg)
	}
}

func TestQuote_DefaultsModeToArea(t *testing.T) {
	res, _, err := Quote(staticStore(), Request{ProductID: "2", Area: "2"})
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if res.Mode != calc.ModeArea {
		t.Errorf("Mode = %q, want area", res.Mode)
	}
}
