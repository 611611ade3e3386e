package main

import (
	"log"
	"net/http"

	_ "mascotafeliz/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mascotafeliz/internal/auth"
	"mascotafeliz/internal/cache"
	"mascotafeliz/internal/config"
	"mascotafeliz/internal/db"
	"mascotafeliz/internal/handler"
	"mascotafeliz/internal/model"
	"mascotafeliz/internal/notify"
	"mascotafeliz/internal/repository"
	"mascotafeliz/internal/router"
	"mascotafeliz/internal/service"
)

// @title Mascota Feliz Usuarios API
// @version 1.0
// @description Usuario CRUD with credential identification and JWT issuance.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("token service: %v (set JWT_SECRET)", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Usuario{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	dispatcher := notify.NewEmailDispatcher(cfg.NotificationsURL)
	defer dispatcher.Close()

	usuarioRepo := repository.NewUsuarioRepository(gormDB)

	authService := service.NewAuthService(usuarioRepo, tokens)
	usuarioService := service.NewUsuarioService(usuarioRepo, cacheClient, dispatcher)

	authHandler := handler.NewAuthHandler(authService)
	usuarioHandler := handler.NewUsuarioHandler(usuarioService)

	router.Register(e, cfg, authHandler, usuarioHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
