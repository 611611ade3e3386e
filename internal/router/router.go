package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"mascotafeliz/internal/auth"
	"mascotafeliz/internal/config"
	"mascotafeliz/internal/handler"
	"mascotafeliz/internal/model"
)

// Register wires routes and middleware. Identification, sign-up and full
// replace are public; every other usuario route requires a token whose rol
// claim is administrador.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	usuarioHandler *handler.UsuarioHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/identificarUsuario", authHandler.Identificar)
	e.POST("/usuarios", usuarioHandler.Create)
	e.PUT("/usuarios/:id", usuarioHandler.Replace)

	// Admin routes (JWT guard plus rol claim check)
	admin := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), requireAdministrador)

	admin.GET("/usuarios", usuarioHandler.Find)
	admin.GET("/usuarios/count", usuarioHandler.Count)
	admin.GET("/usuarios/:id", usuarioHandler.FindByID)
	admin.PATCH("/usuarios", usuarioHandler.UpdateAll)
	admin.PATCH("/usuarios/:id", usuarioHandler.UpdateByID)
	admin.DELETE("/usuarios/:id", usuarioHandler.DeleteByID)
}

// requireAdministrador checks the rol claim of the already-verified token.
func requireAdministrador(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, ok := token.Claims.(*auth.Claims)
		if !ok || claims.Rol != model.RolAdministrador {
			return echo.NewHTTPError(http.StatusForbidden, "rol administrador requerido")
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
