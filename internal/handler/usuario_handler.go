package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mascotafeliz/internal/errors"
	"mascotafeliz/internal/repository"
	"mascotafeliz/internal/service"
)

// UsuarioHandler bundles the usuario CRUD handlers.
type UsuarioHandler struct {
	svc service.UsuarioService
}

// NewUsuarioHandler creates a handler layer.
func NewUsuarioHandler(svc service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{svc: svc}
}

// CreateUsuarioRequest represents a new usuario. Contrasena is optional; when
// absent one is generated and mailed to the correo.
type CreateUsuarioRequest struct {
	Nombre     string `json:"nombre" validate:"required"`
	Correo     string `json:"correo" validate:"required,email"`
	Contrasena string `json:"contrasena"`
	Rol        string `json:"rol"`
}

// UpdateUsuarioRequest represents a partial update. Omitted fields are left
// untouched; an empty contrasena also leaves the stored hash untouched.
type UpdateUsuarioRequest struct {
	Nombre     *string `json:"nombre"`
	Correo     *string `json:"correo" validate:"omitempty,email"`
	Contrasena *string `json:"contrasena"`
	Rol        *string `json:"rol"`
}

// ReplaceUsuarioRequest represents a full replace.
type ReplaceUsuarioRequest struct {
	Nombre     string `json:"nombre" validate:"required"`
	Correo     string `json:"correo" validate:"required,email"`
	Contrasena string `json:"contrasena"`
	Rol        string `json:"rol"`
}

// CountResponse carries a record count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// Create godoc
// @Summary Create usuario
// @Tags usuarios
// @Accept json
// @Produce json
// @Param usuario body CreateUsuarioRequest true "New usuario"
// @Success 201 {object} model.Usuario
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /usuarios [post]
func (h *UsuarioHandler) Create(c echo.Context) error {
	var req CreateUsuarioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u, err := h.svc.Create(c.Request().Context(), req.Nombre, req.Correo, req.Contrasena, req.Rol)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, u)
}

// Find godoc
// @Summary List usuarios
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param nombre query string false "Filter by nombre"
// @Param correo query string false "Filter by correo"
// @Param rol query string false "Filter by rol"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} model.Usuario
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /usuarios [get]
func (h *UsuarioHandler) Find(c echo.Context) error {
	usuarios, err := h.svc.List(c.Request().Context(), filterFromQuery(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, usuarios)
}

// Count godoc
// @Summary Count usuarios
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param nombre query string false "Filter by nombre"
// @Param correo query string false "Filter by correo"
// @Param rol query string false "Filter by rol"
// @Success 200 {object} CountResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /usuarios/count [get]
func (h *UsuarioHandler) Count(c echo.Context) error {
	count, err := h.svc.Count(c.Request().Context(), filterFromQuery(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, CountResponse{Count: count})
}

// FindByID godoc
// @Summary Get usuario by id
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Param id path string true "Usuario ID"
// @Success 200 {object} model.Usuario
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [get]
func (h *UsuarioHandler) FindByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	u, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, u)
}

// UpdateAll godoc
// @Summary Partially update usuarios matching a filter
// @Tags usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param nombre query string false "Filter by nombre"
// @Param correo query string false "Filter by correo"
// @Param rol query string false "Filter by rol"
// @Param usuario body UpdateUsuarioRequest true "Fields to update"
// @Success 200 {object} CountResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /usuarios [patch]
func (h *UsuarioHandler) UpdateAll(c echo.Context) error {
	var req UpdateUsuarioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	count, err := h.svc.UpdateAll(c.Request().Context(), filterFromQuery(c), service.UsuarioCambios{
		Nombre:     req.Nombre,
		Correo:     req.Correo,
		Contrasena: req.Contrasena,
		Rol:        req.Rol,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, CountResponse{Count: count})
}

// UpdateByID godoc
// @Summary Partially update usuario
// @Tags usuarios
// @Accept json
// @Security BearerAuth
// @Param id path string true "Usuario ID"
// @Param usuario body UpdateUsuarioRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [patch]
func (h *UsuarioHandler) UpdateByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req UpdateUsuarioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.Update(c.Request().Context(), id, service.UsuarioCambios{
		Nombre:     req.Nombre,
		Correo:     req.Correo,
		Contrasena: req.Contrasena,
		Rol:        req.Rol,
	}); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// Replace godoc
// @Summary Replace usuario
// @Tags usuarios
// @Accept json
// @Param id path string true "Usuario ID"
// @Param usuario body ReplaceUsuarioRequest true "Full usuario"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [put]
func (h *UsuarioHandler) Replace(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req ReplaceUsuarioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.Replace(c.Request().Context(), id, req.Nombre, req.Correo, req.Contrasena, req.Rol); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteByID godoc
// @Summary Delete usuario
// @Tags usuarios
// @Security BearerAuth
// @Param id path string true "Usuario ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [delete]
func (h *UsuarioHandler) DeleteByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid usuario ID",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

func filterFromQuery(c echo.Context) repository.UsuarioFilter {
	f := repository.UsuarioFilter{
		Nombre: c.QueryParam("nombre"),
		Correo: c.QueryParam("correo"),
		Rol:    c.QueryParam("rol"),
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		f.Limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil {
		f.Offset = v
	}
	return f
}
