package auth

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
	coreAuth "obracalc.GO/core/auth"
	entity "obracalc.GO/model/entity"
)

func authTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.SessionToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newServer(t *testing.T) (*echo.Echo, *api.Deps) {
	t.Helper()
	db := authTestDB(t)
	svc := coreAuth.NewService(db)
	deps := &api.Deps{
		DB:     db,
		Store:  catalog.NewStaticStore(),
		Carts:  cart.NewManager(cart.NewMemoryStorage()),
		Auth:   svc,
		Mirror: audit.NewMirror(nil),
	}
	e := echo.New()
	e.Use(coreAuth.Middleware(svc))
	RegisterAuthRoutes(e.Group("/api"), deps)
	return e, deps
}

func doJSON(e *echo.Echo, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthAPI_RegisterLoginMe(t *testing.T) {
	e, _ := newServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"joao@example.com","senha":"segredo","nome":"João","estado":"RS","tipo_uso":"uso_consumo"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"JOAO@example.com","senha":"segredo"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d", rec.Code)
	}
	var me struct {
		Anonymous bool `json:"anonymous"`
		User      struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&me); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if me.Anonymous {
		t.Error("session anonymous after login")
	}
	if me.User.Email != "joao@example.com" {
		t.Errorf("email = %q, want joao@example.com", me.User.Email)
	}
}

func TestAuthAPI_LoginWrongPassword(t *testing.T) {
	e, _ := newServer(t)

	doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"joao@example.com","senha":"segredo","nome":"João"}`, nil)

	rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"joao@example.com","senha":"errada"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthAPI_RegisterDuplicate(t *testing.T) {
	e, _ := newServer(t)

	body := `{"email":"joao@example.com","senha":"segredo","nome":"João"}`
	doJSON(e, http.MethodPost, "/api/auth/register", body, nil)
	rec := doJSON(e, http.MethodPost, "/api/auth/register", body, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAuthAPI_Logout(t *testing.T) {
	e, _ := newServer(t)

	doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"joao@example.com","senha":"segredo","nome":"João"}`, nil)
	rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"joao@example.com","senha":"segredo"}`, nil)
	cookies := rec.Result().Cookies()

	rec = doJSON(e, http.MethodPost, "/api/auth/logout", "", cookies)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout status = %d", rec.Code)
	}

	// Token is revoked: me resolves anonymous
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	e.ServeHTTP(rec2, req)
	var me struct {
		Anonymous bool `json:"anonymous"`
	}
	json.NewDecoder(rec2.Body).Decode(&me)
	if !me.Anonymous {
		t.Error("session still authenticated after logout")
	}
}

func TestAuthAPI_ProtectedPathWithoutSession(t *testing.T) {
	e, _ := newServer(t)
	e.GET("/api/private", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/private", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
