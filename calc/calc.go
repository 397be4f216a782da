// Package calc computes required material quantities from area/length,
// consumption rate and optional technical adjustments. Pure functions, no
// stored state.
package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Mode selects how the user-entered measure drives the quantity.
type Mode string

const (
	// ModeArea: the measure is an area in m².
	ModeArea Mode = "area"
	// ModeLinear: the measure is a length in m; quantity is driven by
	// length × LinearWidth.
	ModeLinear Mode = "linear"
)

const (
	// LinearWidth is the assumed bead/strip width in meters for linear
	// applications (10 cm). Not user-configurable.
	LinearWidth = 0.1

	// PackageSizeKg is the only packaging unit offered.
	PackageSizeKg = 20.0
	// PackageLabel names that unit for display.
	PackageLabel = "Saco 20kg"
)

var (
	// ErrInvalidArea rejects empty, non-numeric or non-positive measures.
	ErrInvalidArea = errors.New("área inválida")
	// ErrInvalidRate rejects a missing or non-positive consumption rate.
	ErrInvalidRate = errors.New("consumo inválido")
)

// Input carries one calculation request. Area is the raw user text;
// Thickness and ConsumptionOverride are optional (zero = absent) and act as
// independent multipliers on the base rate, combined multiplicatively.
type Input struct {
	ProductName string
	Area        string // raw user input, m² (area mode) or m (linear mode)
	Mode        Mode
	BaseRate    float64 // catalog consumption rate, kg/m²
	RateUnit    string

	DefaultThickness    float64 // catalog default thickness, mm
	Thickness           float64 // user override thickness, mm
	ConsumptionOverride float64 // replaces BaseRate when > 0
}

// Result is one computed quantity line.
type Result struct {
	ProductName     string  `json:"productName"`
	Area            float64 `json:"area"`
	Mode            Mode    `json:"mode"`
	ConsumptionRate float64 `json:"consumptionRate"`
	ConsumptionUnit string  `json:"consumptionUnit"`
	RequiredKg      float64 `json:"requiredAmount"`
	Packaging       string  `json:"packaging"`
	PackageCount    int     `json:"packagingAmount"`
}

// ParseArea validates the raw measure text. Comma decimals are accepted.
func ParseArea(raw string) (float64, error) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return 0, ErrInvalidArea
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, ErrInvalidArea
	}
	return v, nil
}

// EffectiveRate resolves the consumption rate actually applied: the
// override replaces the base rate entirely; a thickness override scales the
// chosen rate by thickness/defaultThickness. Both adjustments are
// independent and multiply.
func EffectiveRate(in Input) float64 {
	rate := in.BaseRate
	if in.ConsumptionOverride > 0 {
		rate = in.ConsumptionOverride
	}
	if in.Thickness > 0 && in.DefaultThickness > 0 {
		rate *= in.Thickness / in.DefaultThickness
	}
	return rate
}

// Compute turns an Input into a Result. Validation failures return an error
// and no result; requiredKg of zero is a valid result with zero packages.
func Compute(in Input) (Result, error) {
	area, err := ParseArea(in.Area)
	if err != nil {
		return Result{}, err
	}

	rate := EffectiveRate(in)
	if rate <= 0 {
		return Result{}, ErrInvalidRate
	}

	driver := area
	if in.Mode == ModeLinear {
		driver = area * LinearWidth
	}

	requiredKg := driver * rate

	return Result{
		ProductName:     in.ProductName,
		Area:            area,
		Mode:            in.Mode,
		ConsumptionRate: rate,
		ConsumptionUnit: in.RateUnit,
		RequiredKg:      requiredKg,
		Packaging:       PackageLabel,
		PackageCount:    Packages(requiredKg),
	}, nil
}

// Packages rounds a required mass up to whole 20kg bags.
func Packages(requiredKg float64) int {
	if requiredKg <= 0 {
		return 0
	}
	return int(math.Ceil(requiredKg / PackageSizeKg))
}
