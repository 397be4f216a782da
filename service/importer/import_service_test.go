package importer

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	entity "obracalc.GO/model/entity"
)

func importTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.ProductCategory{},
		&entity.Product{},
		&entity.ApplicationSpec{},
		&entity.ConsumptionRate{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestImport_NewProducts(t *testing.T) {
	db := importTestDB(t)

	csv := "id,nome,descricao,categoria,unidade,consumo,condicoes,espessura_mm\n" +
		"p1,Impermeabilizante X,Membrana líquida,Impermeabilizantes,kg/m²,\"1,2\",2 demãos,1\n" +
		"p2,Argamassa Y,Colante tipo ACIII,Argamassas,kg/m²,5,Desempenadeira 8mm,\n"

	res, err := ImportCatalog(db, strings.NewReader(csv), ImportOptions{CategoryType: "quimicos"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.TotalRows != 2 || res.Created != 2 || res.Updated != 0 {
		t.Errorf("counters = %+v, want 2 created", res)
	}
	if res.Rates != 2 {
		t.Errorf("rates = %d, want 2", res.Rates)
	}
	if res.Specs != 1 {
		t.Errorf("specs = %d, want 1", res.Specs)
	}

	var cats int64
	db.Model(&entity.ProductCategory{}).Count(&cats)
	if cats != 2 {
		t.Errorf("categories = %d, want 2", cats)
	}

	var rate entity.ConsumptionRate
	if err := db.Where("produto_id = ?", "p1").First(&rate).Error; err != nil {
		t.Fatalf("rate p1: %v", err)
	}
	if rate.Value != 1.2 {
		t.Errorf("rate value = %v, want 1.2 (comma decimal)", rate.Value)
	}
}

func TestImport_UpdateExisting(t *testing.T) {
	db := importTestDB(t)

	csv := "id,nome,consumo\np1,Produto A,2\n"
	if _, err := ImportCatalog(db, strings.NewReader(csv), ImportOptions{}); err != nil {
		t.Fatalf("first import: %v", err)
	}

	csv = "id,nome,consumo\np1,Produto A Renomeado,3\n"
	res, err := ImportCatalog(db, strings.NewReader(csv), ImportOptions{})
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if res.Created != 0 || res.Updated != 1 {
		t.Errorf("counters = created %d updated %d, want 0/1", res.Created, res.Updated)
	}

	var p entity.Product
	db.Where("id = ?", "p1").First(&p)
	if p.Name != "Produto A Renomeado" {
		t.Errorf("name = %q, not updated", p.Name)
	}

	// Rate replaced, not duplicated
	var rates int64
	db.Model(&entity.ConsumptionRate{}).Where("produto_id = ?", "p1").Count(&rates)
	if rates != 1 {
		t.Errorf("rates for p1 = %d, want 1", rates)
	}
}

func TestImport_SkipsAndWarnings(t *testing.T) {
	db := importTestDB(t)

	csv := "nome,consumo,cor\nProduto A,abc,azul\n,2,\n"
	res, err := ImportCatalog(db, strings.NewReader(csv), ImportOptions{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Skipped != 1 {
		t.Errorf("skipped = %d, want 1 (empty nome)", res.Skipped)
	}

	var sawUnknown, sawBadNumber bool
	for _, w := range res.Warnings {
		if strings.Contains(w, `"cor"`) {
			sawUnknown = true
		}
		if strings.Contains(w, "not a number") {
			sawBadNumber = true
		}
	}
	if !sawUnknown {
		t.Error("no warning for unknown column")
	}
	if !sawBadNumber {
		t.Error("no warning for non-numeric consumo")
	}
}

func TestImport_MissingNameColumn(t *testing.T) {
	db := importTestDB(t)

	if _, err := ImportCatalog(db, strings.NewReader("id,consumo\np1,2\n"), ImportOptions{}); err == nil {
		t.Error("expected error for CSV without nome column")
	}
}
