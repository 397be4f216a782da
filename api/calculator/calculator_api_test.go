package calculator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"obracalc.GO/api"
	"obracalc.GO/audit"
	"obracalc.GO/calc"
	"obracalc.GO/cart"
	"obracalc.GO/catalog"
	"obracalc.GO/core/auth"
	entity "obracalc.GO/model/entity"
)

func newServer(t *testing.T, db *gorm.DB) (*echo.Echo, *api.Deps) {
	t.Helper()
	deps := &api.Deps{
		DB:     db,
		Store:  catalog.NewStaticStore(),
		Carts:  cart.NewManager(cart.NewMemoryStorage()),
		Auth:   auth.NewService(nil),
		Mirror: audit.NewMirror(db),
	}
	e := echo.New()
	RegisterCalculatorRoutes(e.Group("/api"), deps)
	return e, deps
}

func postCalc(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/calc", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCalcAPI_AreaMode(t *testing.T) {
	e, _ := newServer(t, nil)

	rec := postCalc(e, `{"productId":"2","area":"10"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var res calc.Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.RequiredKg != 50 {
		t.Errorf("requiredKg = %v, want 50", res.RequiredKg)
	}
	if res.PackageCount != 3 {
		t.Errorf("packages = %d, want 3", res.PackageCount)
	}
}

func TestCalcAPI_InvalidArea(t *testing.T) {
	e, _ := newServer(t, nil)

	for _, area := range []string{"0", "-3", "abc", ""} {
		rec := postCalc(e, `{"productId":"2","area":"`+area+`"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("area %q: status = %d, want 400", area, rec.Code)
		}
	}
}

func TestCalcAPI_UnknownProduct(t *testing.T) {
	e, _ := newServer(t, nil)

	rec := postCalc(e, `{"productId":"nope","area":"10"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCalcAPI_MirrorsCalculation(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.CalculationLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	e, deps := newServer(t, db)

	rec := postCalc(e, `{"productId":"2","area":"10"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	deps.Mirror.Close()

	var count int64
	db.Model(&entity.CalculationLog{}).Count(&count)
	if count != 1 {
		t.Errorf("calculos rows = %d, want 1", count)
	}
	var row entity.CalculationLog
	db.First(&row)
	if row.RequiredKg != 50 || row.Packages != 3 {
		t.Errorf("row = %+v, want 50kg/3 packages", row)
	}
}
