package auth

import (
	"errors"

	"gorm.io/gorm"

	entity "obracalc.GO/model/entity"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// FindByEmail returns a user by email, or (nil, nil) when absent.
func (r *AuthRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID returns a user by id, or (nil, nil) when absent.
func (r *AuthRepository) FindByID(id string) (*entity.User, error) {
	var u entity.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a new user row.
func (r *AuthRepository) CreateUser(u *entity.User) error {
	return r.db.Create(u).Error
}

// CreateToken inserts a session token row.
func (r *AuthRepository) CreateToken(t *entity.SessionToken) error {
	return r.db.Create(t).Error
}

// FindActiveToken returns a non-revoked session token by its token string.
func (r *AuthRepository) FindActiveToken(token string) (*entity.SessionToken, error) {
	var t entity.SessionToken
	err := r.db.Where("token = ? AND revogado = 0", token).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// RevokeToken marks a session token revoked. Revoking an unknown token is a no-op.
func (r *AuthRepository) RevokeToken(token string) error {
	return r.db.Model(&entity.SessionToken{}).Where("token = ?", token).Update("revogado", 1).Error
}
