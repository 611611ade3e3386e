package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles conocidos por el sistema.
const (
	RolAdministrador = "administrador"
	RolUsuario       = "usuario"
)

// Usuario represents a system user. Contrasena always holds the bcrypt hash
// once the record leaves the service layer; plaintext never reaches storage.
type Usuario struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Nombre     string    `json:"nombre" gorm:"size:255;not null"`
	Correo     string    `json:"correo" gorm:"uniqueIndex;size:255;not null"`
	Contrasena string    `json:"contrasena" gorm:"size:255;not null"`
	Rol        string    `json:"rol" gorm:"size:50;default:'usuario'"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
