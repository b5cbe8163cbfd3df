package model

const RoleAdmin = "admin"

// Profile é mantido pelo serviço de autenticação externo; aqui só lemos
// o nome para preencher o pedido no checkout.
type Profile struct {
	UserID    string `gorm:"primaryKey;type:uuid" json:"id"`
	FullName  string `gorm:"type:varchar(100)" json:"full_name"`
	Email     string `gorm:"not null;type:varchar(100)" json:"email"`
	BaseModel
}

type UserRole struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string `gorm:"not null;type:uuid;uniqueIndex:idx_user_role" json:"user_id"`
	Role      string `gorm:"not null;type:varchar(30);uniqueIndex:idx_user_role" json:"role"`
	BaseModel
}

// UserIdentity é a identidade resolvida da sessão atual.
type UserIdentity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
