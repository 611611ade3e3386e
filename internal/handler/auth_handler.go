package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mascotafeliz/internal/errors"
	"mascotafeliz/internal/model"
	"mascotafeliz/internal/service"
)

// AuthHandler handles the identification endpoint.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// DatosUsuario is the public profile slice returned on identification.
type DatosUsuario struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
	Rol    string `json:"rol"`
}

// IdentificacionResponse carries the profile and the signed token.
type IdentificacionResponse struct {
	Datos DatosUsuario `json:"datos"`
	Tk    string       `json:"tk"`
}

// Identificar godoc
// @Summary Identify usuario and issue token
// @Tags auth
// @Accept json
// @Produce json
// @Param credenciales body model.Credenciales true "Login credentials"
// @Success 200 {object} IdentificacionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /identificarUsuario [post]
func (h *AuthHandler) Identificar(c echo.Context) error {
	var cred model.Credenciales
	if err := c.Bind(&cred); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&cred); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u, token, err := h.authService.Identificar(c.Request().Context(), cred.User, cred.Clave)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, IdentificacionResponse{
		Datos: DatosUsuario{
			ID:     u.ID.String(),
			Nombre: u.Nombre,
			Correo: u.Correo,
			Rol:    u.Rol,
		},
		Tk: token,
	})
}
