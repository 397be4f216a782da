package entity

// ConsumptionRate represents the `consumos` table: material mass required
// per unit area under stated application conditions. One rate per product.
type ConsumptionRate struct {
	ID         uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID  string  `gorm:"column:produto_id;type:varchar(36);index" json:"produto_id"`
	Unit       string  `gorm:"column:unidade;type:varchar(32);not null" json:"unidade"`
	Value      float64 `gorm:"column:valor;type:decimal(8,3);not null" json:"valor"`
	Conditions string  `gorm:"column:condicoes;type:varchar(255)" json:"condicoes"`
}

func (ConsumptionRate) TableName() string {
	return "consumos"
}
