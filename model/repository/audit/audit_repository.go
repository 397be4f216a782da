package audit

import (
	"gorm.io/gorm"

	entity "obracalc.GO/model/entity"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// InsertCalculation appends a row to `calculos`.
func (r *AuditRepository) InsertCalculation(row *entity.CalculationLog) error {
	return r.db.Create(row).Error
}

// InsertCartAdd appends a row to `carrinho`.
func (r *AuditRepository) InsertCartAdd(row *entity.CartLog) error {
	return r.db.Create(row).Error
}
