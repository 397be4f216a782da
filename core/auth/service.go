// Package auth provides the session/identity provider: DB-backed opaque
// session tokens over the usuarios table, with an explicit degrade to
// permanently-anonymous when no backend database is configured.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	entity "obracalc.GO/model/entity"
	authRepo "obracalc.GO/model/repository/auth"
)

// AuthError is the typed failure for login/register/logout.
type AuthError struct {
	Op      string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth %s: %s", e.Op, e.Message)
}

// Session is the resolved identity for a request. Loading distinguishes
// "not yet known" from "known absent"; by the time middleware has run it is
// always false.
type Session struct {
	User    *entity.User
	Loading bool
}

// Anonymous reports whether no user is attached.
func (s Session) Anonymous() bool {
	return s.User == nil
}

// Profile carries the registration form fields.
type Profile struct {
	Name            string `json:"nome"`
	Phone           string `json:"telefone"`
	SiteAddress     string `json:"endereco_obra"`
	UsageType       string `json:"tipo_uso"`
	ICMSContributor bool   `json:"contribuinte_icms"`
	State           string `json:"estado"`
}

// Service wraps the auth repository. A nil repo means no backend is
// configured: every session is Anonymous and login/register fail with a
// configuration error.
type Service struct {
	repo *authRepo.AuthRepository
}

// NewService builds the provider. db may be nil.
func NewService(db *gorm.DB) *Service {
	s := &Service{}
	if db != nil {
		s.repo = authRepo.NewAuthRepository(db)
	}
	return s
}

// Enabled reports whether a backend is configured.
func (s *Service) Enabled() bool {
	return s.repo != nil
}

// Login verifies credentials and returns the user plus a fresh session token.
func (s *Service) Login(email, password string) (*entity.User, string, error) {
	if s.repo == nil {
		return nil, "", &AuthError{Op: "login", Message: "backend não configurado"}
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", &AuthError{Op: "login", Message: "email e senha são obrigatórios"}
	}
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, "", &AuthError{Op: "login", Message: "falha ao consultar usuário"}
	}
	if u == nil || u.PasswordHash != hashPassword(password, u.PasswordSalt) {
		return nil, "", &AuthError{Op: "login", Message: "credenciais inválidas"}
	}
	token := newToken()
	if err := s.repo.CreateToken(&entity.SessionToken{Token: token, UserID: u.ID}); err != nil {
		return nil, "", &AuthError{Op: "login", Message: "falha ao criar sessão"}
	}
	return u, token, nil
}

// Register creates a user with the given profile and returns it.
func (s *Service) Register(email, password string, profile Profile) (*entity.User, error) {
	if s.repo == nil {
		return nil, &AuthError{Op: "register", Message: "backend não configurado"}
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" || profile.Name == "" {
		return nil, &AuthError{Op: "register", Message: "nome, email e senha são obrigatórios"}
	}
	if existing, err := s.repo.FindByEmail(email); err != nil {
		return nil, &AuthError{Op: "register", Message: "falha ao consultar usuário"}
	} else if existing != nil {
		return nil, &AuthError{Op: "register", Message: "email já cadastrado"}
	}
	salt := newSalt()
	u := &entity.User{
		ID:              uuid.NewString(),
		Name:            profile.Name,
		Email:           email,
		Phone:           profile.Phone,
		SiteAddress:     profile.SiteAddress,
		UsageType:       profile.UsageType,
		ICMSContributor: profile.ICMSContributor,
		State:           profile.State,
		PasswordHash:    hashPassword(password, salt),
		PasswordSalt:    salt,
	}
	if err := s.repo.CreateUser(u); err != nil {
		return nil, &AuthError{Op: "register", Message: "falha ao criar usuário"}
	}
	return u, nil
}

// Logout revokes a session token. Without a backend it is a no-op success.
func (s *Service) Logout(token string) error {
	if s.repo == nil || token == "" {
		return nil
	}
	if err := s.repo.RevokeToken(token); err != nil {
		return &AuthError{Op: "logout", Message: "falha ao revogar sessão"}
	}
	return nil
}

// Current resolves a token to its user. Unknown/revoked tokens and a
// missing backend resolve to Anonymous, never an error.
func (s *Service) Current(token string) Session {
	if s.repo == nil || token == "" {
		return Session{}
	}
	t, err := s.repo.FindActiveToken(token)
	if err != nil {
		return Session{}
	}
	u, err := s.repo.FindByID(t.UserID)
	if err != nil || u == nil {
		return Session{}
	}
	return Session{User: u}
}

func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + ":" + password))
	return hex.EncodeToString(sum[:])
}

func newToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func newSalt() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
