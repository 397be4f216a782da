package orders

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
	"obracalc.GO/cart"
	"obracalc.GO/catalog"
	"obracalc.GO/core/auth"
	entity "obracalc.GO/model/entity"
)

func ordersTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newServer(t *testing.T, db *gorm.DB) (*echo.Echo, *api.Deps) {
	t.Helper()
	deps := &api.Deps{
		DB:     db,
		Store:  catalog.NewStaticStore(),
		Carts:  cart.NewManager(cart.NewMemoryStorage()),
		Auth:   auth.NewService(nil),
		Mirror: audit.NewMirror(nil),
	}
	e := echo.New()
	RegisterOrderRoutes(e.Group("/api"), deps)
	return e, deps
}

func sessionCookie(e *echo.Echo, deps *api.Deps, t *testing.T) (*http.Cookie, string) {
	t.Helper()
	// Mint a session id the way the middleware would
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "obracalc_sid" {
			return c, c.Value
		}
	}
	t.Fatal("session cookie not set")
	return nil, ""
}

func TestOrdersAPI_Submit(t *testing.T) {
	db := ordersTestDB(t)
	e, deps := newServer(t, db)
	cookie, sid := sessionCookie(e, deps, t)

	// Seed the session's cart
	deps.Carts.ForSession(sid).Add(cart.Item{ProductID: "2", ProductName: "254 Platinum", Quantity: 3, Area: 10, TotalAmount: 50})

	body := `{"nome":"João da Silva","email":"joao@example.com","telefone":"51999990000","observacoes":"entregar de manhã"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 1 {
		t.Errorf("pedidos rows = %d, want 1", count)
	}

	// Cart cleared after submission
	if deps.Carts.ForSession(sid).Len() != 0 {
		t.Error("cart not cleared after order")
	}
}

func TestOrdersAPI_Submit_EmptyCart(t *testing.T) {
	e, _ := newServer(t, ordersTestDB(t))

	body := `{"nome":"João","email":"joao@example.com","telefone":"519999"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestOrdersAPI_Submit_MissingContact(t *testing.T) {
	db := ordersTestDB(t)
	e, deps := newServer(t, db)
	cookie, sid := sessionCookie(e, deps, t)
	deps.Carts.ForSession(sid).Add(cart.Item{ProductID: "2", Quantity: 1})

	for _, body := range []string{
		`{"email":"a@b.c","telefone":"1"}`,
		`{"nome":"João","telefone":"1"}`,
		`{"nome":"João","email":"a@b.c"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestOrdersAPI_ListBySession(t *testing.T) {
	db := ordersTestDB(t)
	e, deps := newServer(t, db)
	cookie, sid := sessionCookie(e, deps, t)
	deps.Carts.ForSession(sid).Add(cart.Item{ProductID: "2", Quantity: 3})

	body := `{"nome":"João","email":"joao@example.com","telefone":"519999"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var orders []entity.Order
	if err := json.NewDecoder(rec.Body).Decode(&orders); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("orders = %d, want 1", len(orders))
	}
	if orders[0].Name != "João" {
		t.Errorf("name = %q, want João", orders[0].Name)
	}

	// Another session sees nothing
	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	orders = nil
	json.NewDecoder(rec.Body).Decode(&orders)
	if len(orders) != 0 {
		t.Errorf("foreign session sees %d orders, want 0", len(orders))
	}
}
