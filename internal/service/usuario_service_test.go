package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"mascotafeliz/internal/auth"
	"mascotafeliz/internal/cache"
	"mascotafeliz/internal/errors"
	"mascotafeliz/internal/model"
	"mascotafeliz/internal/notify"
	"mascotafeliz/internal/repository"
)

// MockNotifier records enqueued messages.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Enqueue(msg notify.Mensaje) {
	m.Called(msg)
}

// nilCache behaves like a permanent cache miss (the cache client fails safe
// on a nil receiver).
var nilCache *cache.Client

func strPtr(s string) *string { return &s }

func TestUsuarioService_Create_GeneratedClave(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	mockRepo.On("FindByCorreo", mock.Anything, "ana@x.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Usuario")).Return(nil)

	var sent notify.Mensaje
	mockNotifier := new(MockNotifier)
	mockNotifier.On("Enqueue", mock.AnythingOfType("notify.Mensaje")).Run(func(args mock.Arguments) {
		sent = args.Get(0).(notify.Mensaje)
	}).Return()

	svc := NewUsuarioService(mockRepo, nilCache, mockNotifier)

	u, err := svc.Create(context.Background(), "Ana", "ana@x.com", "", "")
	assert.NoError(t, err)
	assert.NotNil(t, u)
	assert.NotEmpty(t, u.Contrasena)
	assert.Equal(t, model.RolUsuario, u.Rol)

	// The notification carries the generated plaintext; the record carries
	// only its hash.
	assert.Equal(t, "ana@x.com", sent.Destino)
	assert.Equal(t, "credenciales de acceso al sistema", sent.Asunto)

	idx := strings.LastIndex(sent.Contenido, "la contraseña es ")
	assert.Greater(t, idx, 0)
	clave := sent.Contenido[idx+len("la contraseña es "):]
	assert.NotEmpty(t, clave)
	assert.NotEqual(t, u.Contrasena, clave)
	assert.NoError(t, auth.VerifyClave(u.Contrasena, clave))

	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestUsuarioService_Create_SuppliedClave(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	mockRepo.On("FindByCorreo", mock.Anything, "ana@x.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Usuario")).Return(nil)

	mockNotifier := new(MockNotifier)
	mockNotifier.On("Enqueue", mock.AnythingOfType("notify.Mensaje")).Return()

	svc := NewUsuarioService(mockRepo, nilCache, mockNotifier)

	u, err := svc.Create(context.Background(), "Ana", "ana@x.com", "secreta123", model.RolAdministrador)
	assert.NoError(t, err)
	assert.NotEqual(t, "secreta123", u.Contrasena)
	assert.NoError(t, auth.VerifyClave(u.Contrasena, "secreta123"))
	assert.Equal(t, model.RolAdministrador, u.Rol)

	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestUsuarioService_Create_CorreoEnUso(t *testing.T) {
	mockRepo := new(MockUsuarioRepository)
	mockRepo.On("FindByCorreo", mock.Anything, "ana@x.com").Return(&model.Usuario{Correo: "ana@x.com"}, nil)

	mockNotifier := new(MockNotifier)

	svc := NewUsuarioService(mockRepo, nilCache, mockNotifier)

	u, err := svc.Create(context.Background(), "Ana", "ana@x.com", "secreta123", "")
	assert.ErrorIs(t, err, errors.ErrCorreoEnUso)
	assert.Nil(t, u)

	mockRepo.AssertExpectations(t)
	mockNotifier.AssertNotCalled(t, "Enqueue", mock.Anything)
}

func TestUsuarioService_Update_ClaveHandling(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name          string
		cambios       UsuarioCambios
		wantUpdate    bool
		wantClaveCol  bool
		plaintext     string
	}{
		{
			name:       "omitted clave leaves hash untouched",
			cambios:    UsuarioCambios{Nombre: strPtr("Ana María")},
			wantUpdate: true,
		},
		{
			name:       "empty clave leaves hash untouched",
			cambios:    UsuarioCambios{Nombre: strPtr("Ana María"), Contrasena: strPtr("")},
			wantUpdate: true,
		},
		{
			name:         "non-empty clave is re-hashed",
			cambios:      UsuarioCambios{Contrasena: strPtr("nueva-clave")},
			wantUpdate:   true,
			wantClaveCol: true,
			plaintext:    "nueva-clave",
		},
		{
			name:    "no fields is a no-op",
			cambios: UsuarioCambios{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUsuarioRepository)
			mockRepo.On("FindByID", mock.Anything, id).Return(&model.Usuario{ID: id}, nil)

			var gotFields map[string]interface{}
			if tt.wantUpdate {
				mockRepo.On("UpdateByID", mock.Anything, id, mock.AnythingOfType("map[string]interface {}")).
					Run(func(args mock.Arguments) {
						gotFields = args.Get(2).(map[string]interface{})
					}).Return(nil)
			}

			svc := NewUsuarioService(mockRepo, nilCache, new(MockNotifier))

			err := svc.Update(context.Background(), id, tt.cambios)
			assert.NoError(t, err)

			if tt.wantClaveCol {
				hash, ok := gotFields["contrasena"].(string)
				assert.True(t, ok)
				assert.NotEqual(t, tt.plaintext, hash)
				assert.NoError(t, auth.VerifyClave(hash, tt.plaintext))
			} else if tt.wantUpdate {
				_, ok := gotFields["contrasena"]
				assert.False(t, ok)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUsuarioService_Replace_ClaveHandling(t *testing.T) {
	id := uuid.New()
	storedHash, err := auth.HashClave("vieja-clave")
	assert.NoError(t, err)

	tests := []struct {
		name       string
		contrasena string
		checkClave func(t *testing.T, got string)
	}{
		{
			name:       "empty clave keeps stored hash",
			contrasena: "",
			checkClave: func(t *testing.T, got string) {
				assert.Equal(t, storedHash, got)
			},
		},
		{
			name:       "non-empty clave is re-hashed",
			contrasena: "nueva-clave",
			checkClave: func(t *testing.T, got string) {
				assert.NotEqual(t, storedHash, got)
				assert.NotEqual(t, "nueva-clave", got)
				assert.NoError(t, auth.VerifyClave(got, "nueva-clave"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUsuarioRepository)
			mockRepo.On("FindByID", mock.Anything, id).Return(&model.Usuario{
				ID:         id,
				Contrasena: storedHash,
			}, nil)

			var replaced *model.Usuario
			mockRepo.On("ReplaceByID", mock.Anything, mock.AnythingOfType("*model.Usuario")).
				Run(func(args mock.Arguments) {
					replaced = args.Get(1).(*model.Usuario)
				}).Return(nil)

			svc := NewUsuarioService(mockRepo, nilCache, new(MockNotifier))

			err := svc.Replace(context.Background(), id, "Ana", "ana@x.com", tt.contrasena, model.RolUsuario)
			assert.NoError(t, err)
			assert.NotNil(t, replaced)
			assert.Equal(t, id, replaced.ID)
			tt.checkClave(t, replaced.Contrasena)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUsuarioService_Replace_NotFound(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockUsuarioRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUsuarioService(mockRepo, nilCache, new(MockNotifier))

	err := svc.Replace(context.Background(), id, "Ana", "ana@x.com", "", "")
	assert.ErrorIs(t, err, errors.ErrUsuarioNotFound)
	mockRepo.AssertExpectations(t)
}

func TestUsuarioService_UpdateAll(t *testing.T) {
	f := repository.UsuarioFilter{Rol: model.RolUsuario}

	mockRepo := new(MockUsuarioRepository)
	mockRepo.On("Find", mock.Anything, f).Return([]model.Usuario{
		{ID: uuid.New()},
		{ID: uuid.New()},
	}, nil)
	mockRepo.On("UpdateAll", mock.Anything, f, mock.AnythingOfType("map[string]interface {}")).
		Return(int64(2), nil)

	svc := NewUsuarioService(mockRepo, nilCache, new(MockNotifier))

	count, err := svc.UpdateAll(context.Background(), f, UsuarioCambios{Nombre: strPtr("Renombrado")})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	mockRepo.AssertExpectations(t)
}

func TestUsuarioService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("existing usuario", func(t *testing.T) {
		mockRepo := new(MockUsuarioRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.Usuario{ID: id}, nil)
		mockRepo.On("DeleteByID", mock.Anything, id).Return(nil)

		svc := NewUsuarioService(mockRepo, nilCache, new(MockNotifier))
		assert.NoError(t, svc.Delete(context.Background(), id))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing usuario", func(t *testing.T) {
		mockRepo := new(MockUsuarioRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUsuarioService(mockRepo, nilCache, new(MockNotifier))
		assert.ErrorIs(t, svc.Delete(context.Background(), id), errors.ErrUsuarioNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestUsuarioService_Get_NotFound(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockUsuarioRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUsuarioService(mockRepo, nilCache, new(MockNotifier))

	u, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, errors.ErrUsuarioNotFound)
	assert.Nil(t, u)
	mockRepo.AssertExpectations(t)
}
