package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUsuarioNotFound is returned when a user record does not exist.
	ErrUsuarioNotFound = errors.New("usuario not found")
	// ErrCorreoEnUso is returned when the correo is already registered.
	ErrCorreoEnUso = errors.New("correo already in use")
	// ErrCredencialesInvalidas is returned on any identification failure.
	// The message is intentionally generic: callers must not learn whether
	// the correo existed or the clave was wrong.
	ErrCredencialesInvalidas = errors.New("datos inválidos")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUsuarioNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USUARIO_NOT_FOUND")
	case errors.Is(err, ErrCorreoEnUso):
		return NewHTTPError(http.StatusConflict, err.Error(), "CORREO_EN_USO")
	case errors.Is(err, ErrCredencialesInvalidas):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "CREDENCIALES_INVALIDAS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
