package catalog

// Static catalog: the deterministic in-process product list. Always
// available; the store falls back to it whenever the remote backend is
// unconfigured, unreachable or empty.

var staticProducts = []Product{
	{
		ID:             "1",
		Name:           "4237 Aditivo para Argamassa",
		Category:       "Aditivos",
		Description:    "Aditivo látex para melhorar a aderência e flexibilidade das argamassas.",
		ImageURL:       "/placeholder.svg",
		TechnicalSheet: "Ficha técnica do 4237 Aditivo para Argamassa",
		Components: []Component{
			{Name: "4237 Aditivo Líquido", Description: "Aditivo látex para argamassas", SpecificWeight: 1.05},
		},
	},
	{
		ID:             "2",
		Name:           "254 Platinum",
		Category:       "Argamassas",
		Description:    "Argamassa colante de alto desempenho para porcelanatos e pedras naturais.",
		ImageURL:       "/placeholder.svg",
		TechnicalSheet: "Ficha técnica do 254 Platinum",
		Components: []Component{
			{Name: "254 Platinum Pó", Description: "Argamassa colante em pó", SpecificWeight: 1.3},
		},
	},
	{
		ID:             "3",
		Name:           "HYDRO BAN®",
		Category:       "Impermeabilizantes",
		Description:    "Membrana impermeabilizante de cura rápida para áreas úmidas.",
		ImageURL:       "/placeholder.svg",
		TechnicalSheet: "Ficha técnica do HYDRO BAN®",
		Components: []Component{
			{Name: "HYDRO BAN® Membrana", Description: "Membrana impermeabilizante líquida", SpecificWeight: 1.2},
		},
	},
	{
		ID:             "4",
		Name:           "SPECTRALOCK® PRO Premium",
		Category:       "Rejuntes",
		Description:    "Rejunte epóxi premium resistente a manchas e produtos químicos.",
		ImageURL:       "/placeholder.svg",
		TechnicalSheet: "Ficha técnica do SPECTRALOCK® PRO Premium",
		Components: []Component{
			{
				Name: "SPECTRALOCK® Parte A", Description: "Resina epóxi - parte A", SpecificWeight: 1.1,
				Parts: []Part{{Name: "Parte A", Weight: 0.8}},
			},
			{
				Name: "SPECTRALOCK® Parte B", Description: "Catalisador - parte B", SpecificWeight: 1.05,
				Parts: []Part{{Name: "Parte B", Weight: 0.2}},
			},
			{
				Name: "SPECTRALOCK® Agregado em Pó", Description: "Mistura de agregados coloridos", SpecificWeight: 1.4,
				Parts: []Part{{Name: "Pó Colorido", Weight: 3.0}},
			},
		},
	},
	{
		ID:             "5",
		Name:           "PERMACOLOR® Select",
		Category:       "Rejuntes",
		Description:    "Rejunte cimentício de alta performance com proteção antimicrobiana.",
		ImageURL:       "/placeholder.svg",
		TechnicalSheet: "Ficha técnica do PERMACOLOR® Select",
		Components: []Component{
			{Name: "PERMACOLOR® Base", Description: "Base cimentícia para rejunte", SpecificWeight: 1.3},
			{Name: "PERMACOLOR® Pigmento", Description: "Pigmento colorido para mistura", SpecificWeight: 0.9},
		},
	},
	{
		ID:             "6",
		Name:           "LATAPOXY® 300",
		Category:       "Adesivos",
		Description:    "Adesivo epóxi químicamente resistente para instalação de cerâmicas e pedras.",
		ImageURL:       "/placeholder.svg",
		TechnicalSheet: "Ficha técnica do LATAPOXY® 300",
		Components: []Component{
			{
				Name: "LATAPOXY® Parte A", Description: "Resina epóxi - parte A", SpecificWeight: 1.15,
				Parts: []Part{{Name: "Parte A", Weight: 1.0, Ratio: 1}},
			},
			{
				Name: "LATAPOXY® Parte B", Description: "Catalisador - parte B", SpecificWeight: 1.0,
				Parts: []Part{{Name: "Parte B", Weight: 0.2, Ratio: 0.2}},
			},
			{
				Name: "LATAPOXY® Parte C", Description: "Agregado em pó - parte C", SpecificWeight: 1.6,
				Parts: []Part{{Name: "Parte C", Weight: 2.8, Ratio: 2.8}},
			},
		},
	},
	{
		ID:             "7",
		Name:           "Especificação Membrana Poliuretano",
		Category:       "Especificações",
		Description:    "Sistema completo de impermeabilização com membrana de poliuretano Elastoguard Aqua e primer.",
		ImageURL:       "/placeholder.svg",
		TechnicalSheet: "Ficha técnica do Sistema Membrana de Poliuretano",
		Components: []Component{
			{
				Name: "Elastoguard Primer", Description: "Primer para preparo da superfície", SpecificWeight: 1.05,
				Parts: []Part{{Name: "Parte A", Weight: 4.0, Ratio: 4}, {Name: "Parte B", Weight: 1.0, Ratio: 1}},
			},
			{
				Name: "Elastoguard Aqua", Description: "Membrana de poliuretano impermeabilizante", SpecificWeight: 1.3,
				Parts: []Part{{Name: "Parte A", Weight: 20.0}, {Name: "Parte B", Weight: 4.0}},
			},
		},
	},
}

var staticRates = []ConsumptionRate{
	{ProductID: "1", Unit: "kg/m²", Value: 0.8, Conditions: "Para argamassas de assentamento de cerâmicas"},
	{ProductID: "2", Unit: "kg/m²", Value: 5, Conditions: "Com desempenadeira de 8mm x 8mm"},
	{ProductID: "3", Unit: "kg/m²", Value: 1.2, Conditions: "Por demão, mínimo 2 demãos"},
	{ProductID: "4", Unit: "kg/m²", Value: 0.6, Conditions: "Para juntas de 3mm (porcelanatos)"},
	{ProductID: "5", Unit: "kg/m²", Value: 0.5, Conditions: "Para juntas de 3mm (cerâmicas comuns)"},
	{ProductID: "6", Unit: "kg/m²", Value: 3.5, Conditions: "Com desempenadeira de 6mm x 6mm"},
	{ProductID: "7", Unit: "kg/m²", Value: 1.8, Conditions: "Aplicação total do sistema (primer + membrana)"},
}

// StaticProducts returns a copy of the built-in product list.
func StaticProducts() []Product {
	out := make([]Product, len(staticProducts))
	copy(out, staticProducts)
	return out
}

// StaticRates returns a copy of the built-in consumption-rate table.
func StaticRates() []ConsumptionRate {
	out := make([]ConsumptionRate, len(staticRates))
	copy(out, staticRates)
	return out
}
