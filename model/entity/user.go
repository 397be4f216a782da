package entity

import "time"

// User represents the `usuarios` table. Profile fields mirror the backend
// registration form (estado restricted to the served states RS/SC/PR).
type User struct {
	ID             string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Name           string    `gorm:"column:nome;type:varchar(255);not null" json:"nome"`
	Email          string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone          string    `gorm:"column:telefone;type:varchar(32)" json:"telefone"`
	SiteAddress    string    `gorm:"column:endereco_obra;type:varchar(255)" json:"endereco_obra"`
	UsageType      string    `gorm:"column:tipo_uso;type:varchar(16)" json:"tipo_uso"` // uso_consumo | revenda
	ICMSContributor bool     `gorm:"column:contribuinte_icms" json:"contribuinte_icms"`
	State          string    `gorm:"column:estado;type:varchar(2)" json:"estado"` // RS | SC | PR
	PasswordHash   string    `gorm:"column:senha_hash;type:varchar(64);not null" json:"-"`
	PasswordSalt   string    `gorm:"column:senha_salt;type:varchar(32);not null" json:"-"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "usuarios"
}

// SessionToken represents the `sessoes` table: opaque DB-backed session
// tokens handed out at login.
type SessionToken struct {
	Token     string    `gorm:"column:token;primaryKey;type:varchar(64)" json:"-"`
	UserID    string    `gorm:"column:usuario_id;type:varchar(36);index;not null" json:"usuario_id"`
	Revoked   uint16    `gorm:"column:revogado;not null;default:0" json:"revogado"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SessionToken) TableName() string {
	return "sessoes"
}
