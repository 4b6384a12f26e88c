package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/model"
)

// AlistamientoRepository acceso a la colección de alistamiento.
type AlistamientoRepository interface {
	// Create persiste el registro; el almacén asigna id y created_at.
	Create(ctx context.Context, reg *model.Alistamiento) error
	// ListAll devuelve toda la colección ordenada por creación descendente.
	ListAll(ctx context.Context) ([]model.Alistamiento, error)
	// Update aplica una fusión parcial de campos sobre el registro.
	Update(ctx context.Context, id string, campos map[string]interface{}) error
	// Delete elimina el registro; borrar un id inexistente es éxito silencioso.
	Delete(ctx context.Context, id string) error
}

// alistamientoRepo implementación GORM de AlistamientoRepository.
type alistamientoRepo struct {
	baseRepo
}

// NewAlistamientoRepo crea una instancia de AlistamientoRepository.
func NewAlistamientoRepo(db *gorm.DB, logger *zap.Logger) AlistamientoRepository {
	return &alistamientoRepo{baseRepo{db: db, logger: logger}}
}

func (r *alistamientoRepo) Create(ctx context.Context, reg *model.Alistamiento) error {
	err := clasificarEscritura(r.db.WithContext(ctx).Create(reg).Error)
	r.traza("create", model.Alistamiento{}.TableName(), err, zap.String("id", reg.ID))
	return err
}

func (r *alistamientoRepo) ListAll(ctx context.Context) ([]model.Alistamiento, error) {
	var regs []model.Alistamiento
	err := clasificarLectura(r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&regs).Error)
	r.traza("list", model.Alistamiento{}.TableName(), err, zap.Int("total", len(regs)))
	return regs, err
}

func (r *alistamientoRepo) Update(ctx context.Context, id string, campos map[string]interface{}) error {
	err := clasificarEscritura(r.db.WithContext(ctx).
		Model(&model.Alistamiento{}).
		Where("id = ?", id).
		Updates(campos).Error)
	r.traza("update", model.Alistamiento{}.TableName(), err, zap.String("id", id))
	return err
}

func (r *alistamientoRepo) Delete(ctx context.Context, id string) error {
	err := clasificarEscritura(r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Alistamiento{}).Error)
	r.traza("delete", model.Alistamiento{}.TableName(), err, zap.String("id", id))
	return err
}
