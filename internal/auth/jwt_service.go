package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mascotafeliz/internal/model"
)

// TokenExpiry is the duration for which issued tokens are valid. Tokens are
// stateless; expiry lives inside the token and nothing is tracked server-side.
const TokenExpiry = 24 * time.Hour

// ErrMissingSecret is returned when a token service is built without a key.
var ErrMissingSecret = errors.New("jwt signing secret is empty")

// Claims carries the identity asserted by an issued token.
type Claims struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}

// TokenService mints and validates signed identity tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service. It fails when the secret is empty
// rather than silently producing tokens signed with a blank key.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// Generate mints a signed HS256 token for the given usuario.
func (s *TokenService) Generate(u *model.Usuario) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:     u.ID.String(),
		Nombre: u.Nombre,
		Correo: u.Correo,
		Rol:    u.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses a token string and returns its claims.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
