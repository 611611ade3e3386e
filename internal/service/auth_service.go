package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mascotafeliz/internal/auth"
	"mascotafeliz/internal/errors"
	"mascotafeliz/internal/model"
	"mascotafeliz/internal/repository"
)

// AuthService handles credential identification.
type AuthService interface {
	// Identificar authenticates a usuario by correo and plaintext clave and
	// mints a token on success. A missing usuario and a wrong clave both
	// surface as ErrCredencialesInvalidas.
	Identificar(ctx context.Context, correo, clave string) (*model.Usuario, string, error)
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
	tokens      *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(usuarioRepo repository.UsuarioRepository, tokens *auth.TokenService) AuthService {
	return &authService{
		usuarioRepo: usuarioRepo,
		tokens:      tokens,
	}
}

// Identificar looks up the usuario by correo, verifies the clave against the
// stored hash and returns the usuario together with a signed token.
func (s *authService) Identificar(ctx context.Context, correo, clave string) (*model.Usuario, string, error) {
	u, err := s.usuarioRepo.FindByCorreo(ctx, correo)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", errors.ErrCredencialesInvalidas
		}
		return nil, "", fmt.Errorf("find usuario: %w", err)
	}

	if err := auth.VerifyClave(u.Contrasena, clave); err != nil {
		return nil, "", errors.ErrCredencialesInvalidas
	}

	token, err := s.tokens.Generate(u)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return u, token, nil
}
