package catalog

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	entity "obracalc.GO/model/entity"
)

func remoteTestDB(t *testing.T) *gorm.DB {
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

// newRemoteStore builds a store over db with a clean cache; the catalog
// cache is process-wide, so tests flush it on the way in and out.
func newRemoteStore(t *testing.T, db *gorm.DB) *Store {
	t.Helper()
	s := NewStore(db)
	s.Invalidate()
	t.Cleanup(s.Invalidate)
	return s
}

func seedRemoteProduct(t *testing.T, db *gorm.DB) {
	t.Helper()
	cat := entity.ProductCategory{Name: "Selantes", Type: "quimicos"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	thickness := 2.0
	p := entity.Product{
		ID:          "r1",
		Name:        "Selante PU 40",
		Description: "Selante de poliuretano para juntas de movimentação.",
		CategoryID:  &cat.ID,
		Components:  datatypes.JSON([]byte(`[{"name":"Cartucho","description":"","specificWeight":1.2}]`)),
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	if err := db.Create(&entity.ApplicationSpec{ProductID: "r1", ThicknessMM: &thickness}).Error; err != nil {
		t.Fatalf("seed spec: %v", err)
	}
	if err := db.Create(&entity.ConsumptionRate{ProductID: "r1", Unit: "kg/m", Value: 0.9, Conditions: "junta 10x10mm"}).Error; err != nil {
		t.Fatalf("seed rate: %v", err)
	}
}

func TestStore_PrefersRemoteWhenPresent(t *testing.T) {
	db := remoteTestDB(t)
	seedRemoteProduct(t, db)
	s := newRemoteStore(t, db)

	all := s.GetAll()
	if len(all) != 1 || all[0].ID != "r1" {
		t.Fatalf("GetAll = %d products, want the single remote row", len(all))
	}

	p, ok := s.GetByID("r1")
	if !ok {
		t.Fatal("GetByID(r1) not found")
	}
	if p.Name != "Selante PU 40" || p.Category != "Selantes" {
		t.Errorf("mapped product = %+v", p)
	}
	if p.ImageURL != "/placeholder.svg" {
		t.Errorf("imageURL = %q, want placeholder for empty column", p.ImageURL)
	}
	if p.TechnicalSheet == "" {
		t.Error("technical sheet not generated")
	}
	if p.Specifications == nil || p.Specifications.Thickness != 2 {
		t.Errorf("specifications = %+v, want thickness 2", p.Specifications)
	}
	if len(p.Components) != 1 || p.Components[0].Name != "Cartucho" {
		t.Errorf("components = %+v", p.Components)
	}

	// Rates follow the product source; the static table is out
	rate, ok := s.GetConsumptionRate("r1")
	if !ok || rate.Value != 0.9 {
		t.Errorf("rate = %+v ok=%v, want remote 0.9", rate, ok)
	}
	if _, ok := s.GetConsumptionRate("2"); ok {
		t.Error("static rate served while the remote catalog is active")
	}

	// Static product ids are not visible either
	if _, ok := s.GetByID("2"); ok {
		t.Error("static product served while the remote catalog is active")
	}
}

func TestStore_ProductWithoutCategory(t *testing.T) {
	db := remoteTestDB(t)
	if err := db.Create(&entity.Product{ID: "r2", Name: "Produto Avulso"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := newRemoteStore(t, db)

	p, ok := s.GetByID("r2")
	if !ok {
		t.Fatal("GetByID(r2) not found")
	}
	if p.Category != "Sem categoria" {
		t.Errorf("category = %q, want Sem categoria", p.Category)
	}
}

func TestStore_EmptyRemoteFallsBackToStatic(t *testing.T) {
	db := remoteTestDB(t)
	s := newRemoteStore(t, db)

	all := s.GetAll()
	if len(all) != len(StaticProducts()) {
		t.Fatalf("GetAll = %d products, want the static list", len(all))
	}
	if _, ok := s.GetByID("2"); !ok {
		t.Error("static product 2 missing")
	}
	rate, ok := s.GetConsumptionRate("2")
	if !ok || rate.Value != 5 {
		t.Errorf("rate for 2 = %+v ok=%v, want static 5", rate, ok)
	}
}

func TestStore_RemoteFailureFallsBackToStatic(t *testing.T) {
	db := remoteTestDB(t)
	seedRemoteProduct(t, db)
	sqldb, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqldb.Close()
	s := newRemoteStore(t, db)

	all := s.GetAll()
	if len(all) != len(StaticProducts()) {
		t.Fatalf("GetAll = %d products, want the static list after fetch failure", len(all))
	}
	if _, ok := s.GetByID("2"); !ok {
		t.Error("static product 2 missing after fetch failure")
	}
	rate, ok := s.GetConsumptionRate("2")
	if !ok || rate.Value != 5 {
		t.Errorf("rate for 2 = %+v ok=%v, want static 5 after fetch failure", rate, ok)
	}
}

func TestStore_ServesCachedSnapshotUntilInvalidate(t *testing.T) {
	db := remoteTestDB(t)
	seedRemoteProduct(t, db)
	s := newRemoteStore(t, db)

	if got := len(s.GetAll()); got != 1 {
		t.Fatalf("first read = %d products", got)
	}

	// Row gone from the DB, snapshot still cached
	if err := db.Delete(&entity.Product{ID: "r1"}).Error; err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := s.GetByID("r1"); !ok {
		t.Error("cached remote product dropped before Invalidate")
	}

	s.Invalidate()
	if _, ok := s.GetByID("r1"); ok {
		t.Error("stale product survived Invalidate")
	}
	if got := len(s.GetAll()); got != len(StaticProducts()) {
		t.Errorf("post-invalidate read = %d products, want static list", got)
	}
}

func TestStaticStore_Basics(t *testing.T) {
	s := NewStaticStore()

	if _, ok := s.GetByID("nope"); ok {
		t.Error("unknown id found")
	}

	cats := s.GetCategories()
	seen := make(map[string]bool)
	for _, c := range cats {
		if seen[c] {
			t.Errorf("duplicate category %q", c)
		}
		seen[c] = true
	}
	if len(cats) == 0 || cats[0] != StaticProducts()[0].Category {
		t.Errorf("categories = %v, want first-seen order", cats)
	}

	byCat := s.GetByCategory("Rejuntes")
	if len(byCat) != 2 {
		t.Errorf("Rejuntes = %d products, want 2", len(byCat))
	}

	if got := s.Search(""); got != nil {
		t.Errorf("blank search = %v, want nil", got)
	}
}
