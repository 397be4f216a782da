// Package importer loads catalog rows from CSV into the backend tables:
// products, categories, consumption rates and application specs.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	entity "obracalc.GO/model/entity"
	catalogRepo "obracalc.GO/model/repository/catalog"
)

// ImportOptions configures a catalog import run.
type ImportOptions struct {
	// CategoryType is stored on categories created during the run.
	CategoryType string
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	TotalRows   int           `json:"totalRows"`
	Created     int           `json:"created"`
	Updated     int           `json:"updated"`
	Skipped     int           `json:"skipped"`
	Rates       int           `json:"rates"`
	Specs       int           `json:"specs"`
	Warnings    []string      `json:"warnings,omitempty"`
	ProcessTime time.Duration `json:"processTime"`
	TotalTime   time.Duration `json:"totalTime"`
}

var knownColumns = map[string]bool{
	"id": true, "nome": true, "descricao": true, "categoria": true,
	"imagem_url": true, "unidade": true, "consumo": true, "condicoes": true,
	"espessura_mm": true, "consumo_m2_kg": true, "rendimento_m2_kg": true,
}

// ImportCatalog reads CSV data from r and upserts the rows. Products are
// keyed by the `id` column; a missing id gets a fresh uuid (always a create).
func ImportCatalog(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	startTotal := time.Now()

	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	colIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		colIndex[h] = i
	}
	if _, ok := colIndex["nome"]; !ok {
		return nil, fmt.Errorf("CSV must contain a 'nome' column")
	}

	result := &ImportResult{}
	for _, h := range headers {
		if !knownColumns[h] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("column %q: unknown, skipping", h))
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV rows: %w", err)
	}
	result.TotalRows = len(rows)

	repo := catalogRepo.NewCatalogRepository(db)
	categoryIDs := make(map[string]uint)

	startProcess := time.Now()
	for ri, row := range rows {
		field := func(name string) string {
			i, ok := colIndex[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		name := field("nome")
		if name == "" {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: empty 'nome', skipping", ri+2))
			continue
		}

		p := entity.Product{
			ID:          field("id"),
			Name:        name,
			Description: field("descricao"),
			ImageURL:    field("imagem_url"),
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}

		if cat := field("categoria"); cat != "" {
			id, ok := categoryIDs[cat]
			if !ok {
				id, err = repo.UpsertCategory(cat, opts.CategoryType)
				if err != nil {
					return nil, fmt.Errorf("row %d: upsert category: %w", ri+2, err)
				}
				categoryIDs[cat] = id
			}
			p.CategoryID = &id
		}

		created, err := repo.UpsertProduct(&p)
		if err != nil {
			return nil, fmt.Errorf("row %d: upsert product: %w", ri+2, err)
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}

		if raw := field("consumo"); raw != "" {
			value, err := parseNumber(raw)
			if err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: consumo %q: not a number", ri+2, raw))
			} else {
				rate := entity.ConsumptionRate{
					ProductID:  p.ID,
					Unit:       field("unidade"),
					Value:      value,
					Conditions: field("condicoes"),
				}
				if rate.Unit == "" {
					rate.Unit = "kg/m²"
				}
				if err := repo.ReplaceRate(&rate); err != nil {
					return nil, fmt.Errorf("row %d: replace rate: %w", ri+2, err)
				}
				result.Rates++
			}
		}

		spec := entity.ApplicationSpec{ProductID: p.ID}
		hasSpec := false
		for raw, dst := range map[string]**float64{
			"espessura_mm":     &spec.ThicknessMM,
			"consumo_m2_kg":    &spec.Consumption,
			"rendimento_m2_kg": &spec.Yield,
		} {
			v := field(raw)
			if v == "" {
				continue
			}
			n, err := parseNumber(v)
			if err != nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: %s %q: not a number", ri+2, raw, v))
				continue
			}
			*dst = &n
			hasSpec = true
		}
		if hasSpec {
			if err := repo.ReplaceSpec(&spec); err != nil {
				return nil, fmt.Errorf("row %d: replace spec: %w", ri+2, err)
			}
			result.Specs++
		}
	}

	result.ProcessTime = time.Since(startProcess)
	result.TotalTime = time.Since(startTotal)
	return result, nil
}

// parseNumber accepts both dot and comma decimal separators.
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
