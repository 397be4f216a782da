package auth

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	entity "obracalc.GO/model/entity"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.SessionToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testProfile() Profile {
	return Profile{
		Name:        "Maria Silva",
		Phone:       "51 99999-0000",
		SiteAddress: "Rua das Obras 100",
		UsageType:   "uso_consumo",
		State:       "RS",
	}
}

func TestRegister_Login_Logout(t *testing.T) {
	svc := NewService(testDB(t))

	u, err := svc.Register("maria@example.com", "segredo", testProfile())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == "" || u.Email != "maria@example.com" {
		t.Errorf("registered user = %+v", u)
	}
	if u.PasswordHash == "segredo" {
		t.Error("password must not be stored in the clear")
	}

	logged, token, err := svc.Login("maria@example.com", "segredo")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.ID != u.ID || token == "" {
		t.Errorf("Login = %+v, token %q", logged, token)
	}

	sess := svc.Current(token)
	if sess.Anonymous() || sess.User.ID != u.ID {
		t.Errorf("Current = %+v, want user %s", sess, u.ID)
	}

	if err := svc.Logout(token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if !svc.Current(token).Anonymous() {
		t.Error("session must be anonymous after logout")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewService(testDB(t))
	svc.Register("maria@example.com", "segredo", testProfile())

	if _, _, err := svc.Login("maria@example.com", "errada"); err == nil {
		t.Error("Login with wrong password must fail")
	}
	if _, _, err := svc.Login("ninguem@example.com", "x"); err == nil {
		t.Error("Login with unknown email must fail")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(testDB(t))
	if _, err := svc.Register("maria@example.com", "a", testProfile()); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register("maria@example.com", "b", testProfile()); err == nil {
		t.Error("duplicate email must fail")
	}
}

func TestRegister_EmailNormalized(t *testing.T) {
	svc := NewService(testDB(t))
	u, err := svc.Register("  Maria@Example.COM ", "segredo", testProfile())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Email != "maria@example.com" {
		t.Errorf("Email = %q, want normalized lower-case", u.Email)
	}
	if _, _, err := svc.Login("maria@example.com", "segredo"); err != nil {
		t.Errorf("Login with normalized email: %v", err)
	}
}

func TestDegrade_NoBackend(t *testing.T) {
	svc := NewService(nil)
	if svc.Enabled() {
		t.Error("Enabled must be false without a DB")
	}
	// permanently anonymous, never an error
	if !svc.Current("whatever").Anonymous() {
		t.Error("Current must be anonymous without a backend")
	}
	if _, _, err := svc.Login("a@b.c", "x"); err == nil {
		t.Error("Login must fail without a backend")
	}
	if err := svc.Logout("whatever"); err != nil {
		t.Errorf("Logout without backend must be a no-op, got %v", err)
	}
}

func TestCurrent_UnknownToken(t *testing.T) {
	svc := NewService(testDB(t))
	if !svc.Current("deadbeef").Anonymous() {
		t.Error("unknown token must resolve to anonymous")
	}
	if !svc.Current("").Anonymous() {
		t.Error("empty token must resolve to anonymous")
	}
}
