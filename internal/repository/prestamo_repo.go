package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/model"
)

// PrestamoRepository acceso a la colección de préstamos.
type PrestamoRepository interface {
	Create(ctx context.Context, prestamo *model.Prestamo) error
	ListAll(ctx context.Context) ([]model.Prestamo, error)
	Update(ctx context.Context, id string, campos map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type prestamoRepo struct {
	baseRepo
}

// NewPrestamoRepo crea una instancia de PrestamoRepository.
func NewPrestamoRepo(db *gorm.DB, logger *zap.Logger) PrestamoRepository {
	return &prestamoRepo{baseRepo{db: db, logger: logger}}
}

func (r *prestamoRepo) Create(ctx context.Context, prestamo *model.Prestamo) error {
	err := clasificarEscritura(r.db.WithContext(ctx).Create(prestamo).Error)
	r.traza("create", model.Prestamo{}.TableName(), err, zap.String("id", prestamo.ID))
	return err
}

func (r *prestamoRepo) ListAll(ctx context.Context) ([]model.Prestamo, error) {
	var prestamos []model.Prestamo
	err := clasificarLectura(r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&prestamos).Error)
	r.traza("list", model.Prestamo{}.TableName(), err, zap.Int("total", len(prestamos)))
	return prestamos, err
}

func (r *prestamoRepo) Update(ctx context.Context, id string, campos map[string]interface{}) error {
	err := clasificarEscritura(r.db.WithContext(ctx).
		Model(&model.Prestamo{}).
		Where("id = ?", id).
		Updates(campos).Error)
	r.traza("update", model.Prestamo{}.TableName(), err, zap.String("id", id))
	return err
}

func (r *prestamoRepo) Delete(ctx context.Context, id string) error {
	err := clasificarEscritura(r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Prestamo{}).Error)
	r.traza("delete", model.Prestamo{}.TableName(), err, zap.String("id", id))
	return err
}
