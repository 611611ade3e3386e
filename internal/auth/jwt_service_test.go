package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"mascotafeliz/internal/model"
)

func TestNewTokenService_EmptySecret(t *testing.T) {
	svc, err := NewTokenService("")
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	assert.NoError(t, err)

	u := &model.Usuario{
		ID:     uuid.New(),
		Nombre: "Ana",
		Correo: "ana@x.com",
		Rol:    model.RolUsuario,
	}

	token, err := svc.Generate(u)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.ID)
	assert.Equal(t, u.Nombre, claims.Nombre)
	assert.Equal(t, u.Correo, claims.Correo)
	assert.Equal(t, u.Rol, claims.Rol)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestTokenService_ValidateRejectsWrongSecret(t *testing.T) {
	svc, err := NewTokenService("secret-a")
	assert.NoError(t, err)
	other, err := NewTokenService("secret-b")
	assert.NoError(t, err)

	token, err := svc.Generate(&model.Usuario{ID: uuid.New(), Correo: "ana@x.com"})
	assert.NoError(t, err)

	claims, err := other.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
