package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Product represents the `produtos` table of the backend catalog schema.
// Column names follow the backend (Portuguese) naming.
type Product struct {
	ID          string         `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Name        string         `gorm:"column:nome;type:varchar(255);not null" json:"nome"`
	Description string         `gorm:"column:descricao;type:text" json:"descricao"`
	CategoryID  *uint          `gorm:"column:categoria_id;index" json:"categoria_id,omitempty"`
	ImageURL    string         `gorm:"column:imagem_url;type:varchar(255)" json:"imagem_url"`
	Components  datatypes.JSON `gorm:"column:componentes" json:"componentes,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Category       *ProductCategory  `gorm:"foreignKey:CategoryID" json:"categorias_produtos,omitempty"`
	Specifications []ApplicationSpec `gorm:"foreignKey:ProductID" json:"especificacoes,omitempty"`
}

func (Product) TableName() string {
	return "produtos"
}

// ProductCategory represents the `categorias_produtos` table.
type ProductCategory struct {
	ID   uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:nome;type:varchar(128);not null;uniqueIndex" json:"nome"`
	Type string `gorm:"column:tipo;type:varchar(64)" json:"tipo"`
}

func (ProductCategory) TableName() string {
	return "categorias_produtos"
}

// ApplicationSpec represents the `especificacoes_aplicacao` table:
// per-product technical application defaults.
type ApplicationSpec struct {
	ID          uint     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID   string   `gorm:"column:produto_id;type:varchar(36);index" json:"produto_id"`
	ThicknessMM *float64 `gorm:"column:espessura_mm;type:decimal(8,2)" json:"espessura_mm,omitempty"`
	Consumption *float64 `gorm:"column:consumo_m2_kg;type:decimal(8,3)" json:"consumo_m2_kg,omitempty"`
	Yield       *float64 `gorm:"column:rendimento_m2_kg;type:decimal(8,3)" json:"rendimento_m2_kg,omitempty"`
}

func (ApplicationSpec) TableName() string {
	return "especificacoes_aplicacao"
}
