package entity

import (
	"time"

	"gorm.io/datatypes"
)

// CalculationLog represents the `calculos` audit table. Rows are mirrored
// best-effort after each quantity calculation; losing one never affects the
// user-facing result.
type CalculationLog struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      *string   `gorm:"column:usuario_id;type:varchar(36);index" json:"usuario_id,omitempty"`
	ProductID   string    `gorm:"column:produto_id;type:varchar(36);index" json:"produto_id"`
	ProductName string    `gorm:"column:produto_nome;type:varchar(255)" json:"produto_nome"`
	Area        float64   `gorm:"column:area;type:decimal(10,2)" json:"area"`
	Mode        string    `gorm:"column:modo;type:varchar(8)" json:"modo"`
	Rate        float64   `gorm:"column:consumo;type:decimal(8,3)" json:"consumo"`
	RequiredKg  float64   `gorm:"column:quantidade_kg;type:decimal(10,2)" json:"quantidade_kg"`
	Packages    int       `gorm:"column:embalagens" json:"embalagens"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CalculationLog) TableName() string {
	return "calculos"
}

// CartLog represents the `carrinho` audit table: one row per add-to-cart.
type CartLog struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      *string   `gorm:"column:usuario_id;type:varchar(36);index" json:"usuario_id,omitempty"`
	SessionID   string    `gorm:"column:sessao_id;type:varchar(64);index" json:"sessao_id"`
	ProductID   string    `gorm:"column:produto_id;type:varchar(36)" json:"produto_id"`
	ProductName string    `gorm:"column:produto_nome;type:varchar(255)" json:"produto_nome"`
	Quantity    int       `gorm:"column:quantidade" json:"quantidade"`
	Area        float64   `gorm:"column:area;type:decimal(10,2)" json:"area"`
	AreaName    string    `gorm:"column:area_nome;type:varchar(128)" json:"area_nome"`
	TotalKg     float64   `gorm:"column:total_kg;type:decimal(10,2)" json:"total_kg"`
	UnitPrice   float64   `gorm:"column:preco_unitario;type:decimal(10,2)" json:"preco_unitario"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CartLog) TableName() string {
	return "carrinho"
}

// Order represents the `pedidos` table: submitted order requests with the
// contact data and a snapshot of the cart items at submission time.
type Order struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SessionID string         `gorm:"column:sessao_id;type:varchar(64);index" json:"sessao_id"`
	UserID    *string        `gorm:"column:usuario_id;type:varchar(36);index" json:"usuario_id,omitempty"`
	Name      string         `gorm:"column:nome;type:varchar(255);not null" json:"nome"`
	Email     string         `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Phone     string         `gorm:"column:telefone;type:varchar(32);not null" json:"telefone"`
	Notes     string         `gorm:"column:observacoes;type:text" json:"observacoes"`
	Items     datatypes.JSON `gorm:"column:itens" json:"itens"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Order) TableName() string {
	return "pedidos"
}
