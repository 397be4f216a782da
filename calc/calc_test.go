package calc

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestCompute_AreaMode(t *testing.T) {
	res, err := Compute(Input{
		ProductName: "254 Platinum",
		Area:        "10",
		Mode:        ModeArea,
		BaseRate:    5,
		RateUnit:    "kg/m²",
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.RequiredKg != 50 {
		t.Errorf("RequiredKg = %v, want 50", res.RequiredKg)
	}
	if res.PackageCount != 3 {
		t.Errorf("PackageCount = %d, want 3", res.PackageCount)
	}
	if res.Packaging != "Saco 20kg" {
		t.Errorf("Packaging = %q", res.Packaging)
	}
}

func TestCompute_LinearMode(t *testing.T) {
	res, err := Compute(Input{
		Area:     "5",
		Mode:     ModeLinear,
		BaseRate: 3.5,
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// driver = 5 × 0.1 = 0.5 → 0.5 × 3.5 = 1.75 kg
	if math.Abs(res.RequiredKg-1.75) > 1e-9 {
		t.Errorf("RequiredKg = %v, want 1.75", res.RequiredKg)
	}
	if res.PackageCount != 1 {
		t.Errorf("PackageCount = %d, want 1", res.PackageCount)
	}
}

func TestCompute_InvalidArea(t *testing.T) {
	for _, raw := range []string{"", "abc", "-3", "0", "  "} {
		_, err := Compute(Input{Area: raw, Mode: ModeArea, BaseRate: 5})
		if !errors.Is(err, ErrInvalidArea) {
			t.Errorf("Compute(area=%q) err = %v, want ErrInvalidArea", raw, err)
		}
	}
}

func TestCompute_CommaDecimal(t *testing.T) {
	res, err := Compute(Input{Area: "2,5", Mode: ModeArea, BaseRate: 2})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.Area != 2.5 {
		t.Errorf("Area = %v, want 2.5", res.Area)
	}
}

func TestCompute_MissingRate(t *testing.T) {
	_, err := Compute(Input{Area: "10", Mode: ModeArea})
	if !errors.Is(err, ErrInvalidRate) {
		t.Errorf("err = %v, want ErrInvalidRate", err)
	}
}

func TestEffectiveRate_ConsumptionOverride(t *testing.T) {
	// Override replaces the base rate entirely
	rate := EffectiveRate(Input{BaseRate: 5, ConsumptionOverride: 2})
	if rate != 2 {
		t.Errorf("EffectiveRate = %v, want 2", rate)
	}
}

func TestEffectiveRate_ThicknessScaling(t *testing.T) {
	// 10mm over a 5mm default doubles the rate
	rate := EffectiveRate(Input{BaseRate: 5, DefaultThickness: 5, Thickness: 10})
	if rate != 10 {
		t.Errorf("EffectiveRate = %v, want 10", rate)
	}
	// Thickness without a catalog default is ignored
	rate = EffectiveRate(Input{BaseRate: 5, Thickness: 10})
	if rate != 5 {
		t.Errorf("EffectiveRate without default = %v, want 5", rate)
	}
}

func TestEffectiveRate_BothAxes(t *testing.T) {
	// Independent multipliers: override replaces, thickness ratio scales it
	rate := EffectiveRate(Input{BaseRate: 5, ConsumptionOverride: 4, DefaultThickness: 2, Thickness: 3})
	if rate != 6 {
		t.Errorf("EffectiveRate = %v, want 6", rate)
	}
}

func TestPackages(t *testing.T) {
	cases := []struct {
		kg   float64
		want int
	}{
		{0, 0},
		{-1, 0},
		{0.01, 1},
		{20, 1},
		{20.01, 2},
		{50, 3},
	}
	for _, c := range cases {
		if got := Packages(c.kg); got != c.want {
			t.Errorf("Packages(%v) = %d, want %d", c.kg, got, c.want)
		}
	}
}

func TestCompute_ProportionalMass(t *testing.T) {
	// requiredMass = area × rate in area mode for positive inputs
	for _, area := range []float64{0.5, 1, 7.25, 100} {
		for _, rate := range []float64{0.5, 1.2, 5} {
			res, err := Compute(Input{Area: formatFloat(area), Mode: ModeArea, BaseRate: rate})
			if err != nil {
				t.Fatalf("Compute(%v, %v): %v", area, rate, err)
			}
			if math.Abs(res.RequiredKg-area*rate) > 1e-9 {
				t.Errorf("RequiredKg(%v, %v) = %v, want %v", area, rate, res.RequiredKg, area*rate)
			}
		}
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
