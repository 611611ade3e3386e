package model

// Credenciales is the transient login input pair. It is never persisted.
type Credenciales struct {
	User  string `json:"user" validate:"required,email"`
	Clave string `json:"clave" validate:"required"`
}
