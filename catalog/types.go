package catalog

// Product is the catalog view of a construction-chemical product,
// independent of which backend (static or remote) supplied it.
type Product struct {
	ID             string          `json:"id" mapstructure:"id"`
	Name           string          `json:"name" mapstructure:"nome"`
	Category       string          `json:"category" mapstructure:"categoria"`
	Description    string          `json:"description" mapstructure:"descricao"`
	ImageURL       string          `json:"imageUrl" mapstructure:"imagem_url"`
	TechnicalSheet string          `json:"technicalSheet" mapstructure:"ficha_tecnica"`
	Components     []Component     `json:"components,omitempty" mapstructure:"componentes"`
	Specifications *Specifications `json:"specifications,omitempty" mapstructure:"especificacoes"`
}

// Component is a named sub-formulation (e.g. "Parte A" resin). Display
// only; the calculator never consumes components.
type Component struct {
	Name           string  `json:"name" mapstructure:"name"`
	Description    string  `json:"description" mapstructure:"description"`
	SpecificWeight float64 `json:"specificWeight" mapstructure:"specificWeight"` // kg/l
	Parts          []Part  `json:"parts,omitempty" mapstructure:"parts"`
}

// Part is a weight/ratio pair within a component.
type Part struct {
	Name   string  `json:"name" mapstructure:"name"`
	Weight float64 `json:"weight" mapstructure:"weight"` // kg
	Ratio  float64 `json:"ratio,omitempty" mapstructure:"ratio"`
}

// Specifications are remote-sourced technical defaults. Zero means absent.
type Specifications struct {
	Thickness   float64 `json:"thickness,omitempty" mapstructure:"espessura_mm"`
	Consumption float64 `json:"consumption,omitempty" mapstructure:"consumo_m2_kg"`
	Yield       float64 `json:"yield,omitempty" mapstructure:"rendimento_m2_kg"`
}

// ConsumptionRate is material mass per unit area under stated conditions.
type ConsumptionRate struct {
	ProductID  string  `json:"productId" mapstructure:"produto_id"`
	Unit       string  `json:"unit" mapstructure:"unidade"`
	Value      float64 `json:"value" mapstructure:"valor"`
	Conditions string  `json:"conditions" mapstructure:"condicoes"`
}
