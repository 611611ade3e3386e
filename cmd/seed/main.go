package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"mascotafeliz/internal/auth"
	"mascotafeliz/internal/config"
	"mascotafeliz/internal/db"
	"mascotafeliz/internal/model"
	"mascotafeliz/internal/repository"
)

// Seeds the initial administrador so the guarded routes are reachable on a
// fresh database. Idempotent: an existing correo is left untouched.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Usuario{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	correo := getEnv("ADMIN_CORREO", "admin@mascotafeliz.com")
	nombre := getEnv("ADMIN_NOMBRE", "Administrador")

	usuarioRepo := repository.NewUsuarioRepository(gormDB)
	ctx := context.Background()

	if _, err := usuarioRepo.FindByCorreo(ctx, correo); err == nil {
		log.Printf("Administrador %s already exists, nothing to do", correo)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to check existing administrador: %v", err)
	}

	clave := os.Getenv("ADMIN_CLAVE")
	generated := false
	if clave == "" {
		clave, err = auth.GenerarClave()
		if err != nil {
			log.Fatalf("Failed to generate clave: %v", err)
		}
		generated = true
	}

	hash, err := auth.HashClave(clave)
	if err != nil {
		log.Fatalf("Failed to hash clave: %v", err)
	}

	u := &model.Usuario{
		Nombre:     nombre,
		Correo:     correo,
		Contrasena: hash,
		Rol:        model.RolAdministrador,
	}
	if err := usuarioRepo.Create(ctx, u); err != nil {
		log.Fatalf("Failed to create administrador: %v", err)
	}

	log.Printf("Administrador %s created (id %s)", correo, u.ID)
	if generated {
		// Printed once to stdout, never logged elsewhere.
		fmt.Printf("Generated clave for %s: %s\n", correo, clave)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
