package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mascotafeliz/internal/model"
)

// UsuarioFilter narrows find, count and bulk update operations. Zero values
// mean "no restriction"; Limit/Offset only apply to Find.
type UsuarioFilter struct {
	Nombre string
	Correo string
	Rol    string
	Limit  int
	Offset int
}

// UsuarioRepository defines persistence operations for usuarios.
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	FindByCorreo(ctx context.Context, correo string) (*model.Usuario, error)
	Find(ctx context.Context, f UsuarioFilter) ([]model.Usuario, error)
	Count(ctx context.Context, f UsuarioFilter) (int64, error)
	UpdateByID(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	UpdateAll(ctx context.Context, f UsuarioFilter, fields map[string]interface{}) (int64, error)
	ReplaceByID(ctx context.Context, u *model.Usuario) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository builds a GORM-backed repository.
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepository) FindByCorreo(ctx context.Context, correo string) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).Where("correo = ?", correo).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepository) Find(ctx context.Context, f UsuarioFilter) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	q := applyFilter(r.db.WithContext(ctx), f)
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	if err := q.Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepository) Count(ctx context.Context, f UsuarioFilter) (int64, error) {
	var count int64
	q := applyFilter(r.db.WithContext(ctx).Model(&model.Usuario{}), f)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *usuarioRepository) UpdateByID(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *usuarioRepository) UpdateAll(ctx context.Context, f UsuarioFilter, fields map[string]interface{}) (int64, error) {
	q := applyFilter(r.db.WithContext(ctx).Model(&model.Usuario{}), f)
	res := q.Updates(fields)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *usuarioRepository) ReplaceByID(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Usuario{}).Error
}

func applyFilter(q *gorm.DB, f UsuarioFilter) *gorm.DB {
	if f.Nombre != "" {
		q = q.Where("nombre = ?", f.Nombre)
	}
	if f.Correo != "" {
		q = q.Where("correo = ?", f.Correo)
	}
	if f.Rol != "" {
		q = q.Where("rol = ?", f.Rol)
	}
	return q
}
