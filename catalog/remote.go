package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"

	entity "obracalc.GO/model/entity"
	catalogRepo "obracalc.GO/model/repository/catalog"
)

// RemoteCatalog adapts the backend catalog schema (produtos /
// categorias_produtos / especificacoes_aplicacao / consumos) to catalog
// types. Network/DB failures surface as errors; the store decides the
// fallback.
type RemoteCatalog struct {
	repo *catalogRepo.CatalogRepository
}

func NewRemoteCatalog(db *gorm.DB) *RemoteCatalog {
	return &RemoteCatalog{repo: catalogRepo.NewCatalogRepository(db)}
}

// FetchProducts returns all remote products mapped to catalog.Product.
func (rc *RemoteCatalog) FetchProducts() ([]Product, error) {
	rows, err := rc.repo.FetchAll()
	if err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(rows))
	for i := range rows {
		p, err := rowToProduct(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("map produto %s: %w", rows[i].ID, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// FetchProduct returns one remote product, or (nil, nil) when not found.
func (rc *RemoteCatalog) FetchProduct(id string) (*Product, error) {
	row, err := rc.repo.FetchByID(id)
	if err != nil || row == nil {
		return nil, err
	}
	p, err := rowToProduct(row)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FetchCategories returns remote category names in table order.
func (rc *RemoteCatalog) FetchCategories() ([]string, error) {
	cats, err := rc.repo.FetchCategories()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names, nil
}

// FetchRates returns all remote consumption rates.
func (rc *RemoteCatalog) FetchRates() ([]ConsumptionRate, error) {
	rows, err := rc.repo.FetchRates()
	if err != nil {
		return nil, err
	}
	rates := make([]ConsumptionRate, 0, len(rows))
	for _, r := range rows {
		rates = append(rates, ConsumptionRate{
			ProductID:  r.ProductID,
			Unit:       r.Unit,
			Value:      r.Value,
			Conditions: r.Conditions,
		})
	}
	return rates, nil
}

// rowToProduct flattens an entity row into a map and decodes it via
// mapstructure with weak typing, the same path used for every backend row
// shape. Rows without a category fall back to "Sem categoria"; rows without
// a technical sheet get a generated one.
func rowToProduct(row *entity.Product) (Product, error) {
	flat := map[string]interface{}{
		"id":           row.ID,
		"nome":         row.Name,
		"descricao":    row.Description,
		"imagem_url":   row.ImageURL,
		"categoria":    "Sem categoria",
		"ficha_tecnica": fmt.Sprintf("Ficha técnica de %s", row.Name),
	}
	if row.Category != nil {
		flat["categoria"] = row.Category.Name
	}
	if row.ImageURL == "" {
		flat["imagem_url"] = "/placeholder.svg"
	}
	if len(row.Specifications) > 0 {
		spec := map[string]interface{}{}
		s := row.Specifications[0]
		if s.ThicknessMM != nil {
			spec["espessura_mm"] = *s.ThicknessMM
		}
		if s.Consumption != nil {
			spec["consumo_m2_kg"] = *s.Consumption
		}
		if s.Yield != nil {
			spec["rendimento_m2_kg"] = *s.Yield
		}
		if len(spec) > 0 {
			flat["especificacoes"] = spec
		}
	}
	if len(row.Components) > 0 {
		var comps []map[string]interface{}
		if err := json.Unmarshal(row.Components, &comps); err == nil {
			flat["componentes"] = comps
		}
	}

	var p Product
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &p,
		TagName:          "mapstructure",
		ZeroFields:       true,
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return Product{}, err
	}
	if err := dec.Decode(flat); err != nil {
		return Product{}, err
	}
	return p, nil
}
