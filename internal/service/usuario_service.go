package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mascotafeliz/internal/auth"
	"mascotafeliz/internal/cache"
	"mascotafeliz/internal/errors"
	"mascotafeliz/internal/model"
	"mascotafeliz/internal/notify"
	"mascotafeliz/internal/repository"
)

const usuarioCacheTTL = 5 * time.Minute

const asuntoCredenciales = "credenciales de acceso al sistema"

// UsuarioCambios lists the fields of a partial update. Nil pointers leave the
// stored value untouched. An empty Contrasena also leaves the stored hash
// untouched; a non-empty one is hashed before persistence.
type UsuarioCambios struct {
	Nombre     *string
	Correo     *string
	Contrasena *string
	Rol        *string
}

// UsuarioService exposes usuario CRUD with the password policy applied.
type UsuarioService interface {
	Create(ctx context.Context, nombre, correo, contrasena, rol string) (*model.Usuario, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	List(ctx context.Context, f repository.UsuarioFilter) ([]model.Usuario, error)
	Count(ctx context.Context, f repository.UsuarioFilter) (int64, error)
	Update(ctx context.Context, id uuid.UUID, cambios UsuarioCambios) error
	UpdateAll(ctx context.Context, f repository.UsuarioFilter, cambios UsuarioCambios) (int64, error)
	Replace(ctx context.Context, id uuid.UUID, nombre, correo, contrasena, rol string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type usuarioService struct {
	repo     repository.UsuarioRepository
	cache    *cache.Client
	notifier notify.Notifier
}

// NewUsuarioService builds a UsuarioService.
func NewUsuarioService(repo repository.UsuarioRepository, cache *cache.Client, notifier notify.Notifier) UsuarioService {
	return &usuarioService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
	}
}

func (s *usuarioService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("usuario:%s", id.String())
}

// Create persists a new usuario. An absent clave is generated; either way only
// the hash is stored and the plaintext goes out once through the notifier.
func (s *usuarioService) Create(ctx context.Context, nombre, correo, contrasena, rol string) (*model.Usuario, error) {
	existing, err := s.repo.FindByCorreo(ctx, correo)
	if err == nil && existing != nil {
		return nil, errors.ErrCorreoEnUso
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check correo: %w", err)
	}

	clave := contrasena
	if clave == "" {
		clave, err = auth.GenerarClave()
		if err != nil {
			return nil, err
		}
	}

	hash, err := auth.HashClave(clave)
	if err != nil {
		return nil, err
	}

	if rol == "" {
		rol = model.RolUsuario
	}

	u := &model.Usuario{
		Nombre:     nombre,
		Correo:     correo,
		Contrasena: hash,
		Rol:        rol,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create usuario: %w", err)
	}

	s.notifier.Enqueue(notify.Mensaje{
		Destino:   correo,
		Asunto:    asuntoCredenciales,
		Contenido: fmt.Sprintf("Hola %s, su usuario es %s y la contraseña es %s", nombre, correo, clave),
	})

	return u, nil
}

// Get retrieves a usuario by ID with caching.
func (s *usuarioService) Get(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Usuario
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUsuarioNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(u); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, usuarioCacheTTL)
	}
	return u, nil
}

func (s *usuarioService) List(ctx context.Context, f repository.UsuarioFilter) ([]model.Usuario, error) {
	return s.repo.Find(ctx, f)
}

func (s *usuarioService) Count(ctx context.Context, f repository.UsuarioFilter) (int64, error) {
	return s.repo.Count(ctx, f)
}

// Update applies a partial update by id.
func (s *usuarioService) Update(ctx context.Context, id uuid.UUID, cambios UsuarioCambios) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUsuarioNotFound
		}
		return err
	}

	fields, err := cambios.fields()
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.repo.UpdateByID(ctx, id, fields); err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// UpdateAll applies a partial update to every usuario matching the filter and
// returns the affected count.
func (s *usuarioService) UpdateAll(ctx context.Context, f repository.UsuarioFilter, cambios UsuarioCambios) (int64, error) {
	fields, err := cambios.fields()
	if err != nil {
		return 0, err
	}
	if len(fields) == 0 {
		return 0, nil
	}

	// Snapshot matching ids so their cache entries can be invalidated.
	matching, err := s.repo.Find(ctx, f)
	if err != nil {
		return 0, err
	}

	count, err := s.repo.UpdateAll(ctx, f, fields)
	if err != nil {
		return 0, fmt.Errorf("update usuarios: %w", err)
	}
	for i := range matching {
		_ = s.cache.Delete(ctx, s.cacheKey(matching[i].ID))
	}
	return count, nil
}

// Replace overwrites every field of the usuario. An empty contrasena keeps the
// stored hash; a non-empty one is hashed first.
func (s *usuarioService) Replace(ctx context.Context, id uuid.UUID, nombre, correo, contrasena, rol string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUsuarioNotFound
		}
		return err
	}

	hash := existing.Contrasena
	if contrasena != "" {
		hash, err = auth.HashClave(contrasena)
		if err != nil {
			return err
		}
	}

	if rol == "" {
		rol = model.RolUsuario
	}

	u := &model.Usuario{
		ID:         id,
		Nombre:     nombre,
		Correo:     correo,
		Contrasena: hash,
		Rol:        rol,
		CreatedAt:  existing.CreatedAt,
	}
	if err := s.repo.ReplaceByID(ctx, u); err != nil {
		return fmt.Errorf("replace usuario: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Delete removes a usuario by id.
func (s *usuarioService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUsuarioNotFound
		}
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// fields translates the cambios into a column map, hashing the clave when a
// non-empty one is supplied.
func (c UsuarioCambios) fields() (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if c.Nombre != nil {
		fields["nombre"] = *c.Nombre
	}
	if c.Correo != nil {
		fields["correo"] = *c.Correo
	}
	if c.Rol != nil {
		fields["rol"] = *c.Rol
	}
	if c.Contrasena != nil && *c.Contrasena != "" {
		hash, err := auth.HashClave(*c.Contrasena)
		if err != nil {
			return nil, err
		}
		fields["contrasena"] = hash
	}
	return fields, nil
}
