package order

import (
	"gorm.io/gorm"

	entity "obracalc.GO/model/entity"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts an order request row.
func (r *OrderRepository) Create(o *entity.Order) error {
	return r.db.Create(o).Error
}

// FindBySession returns orders submitted under a session, newest first.
func (r *OrderRepository) FindBySession(sessionID string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Where("sessao_id = ?", sessionID).Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByUser returns orders submitted by an authenticated user, newest first.
func (r *OrderRepository) FindByUser(userID string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Where("usuario_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
