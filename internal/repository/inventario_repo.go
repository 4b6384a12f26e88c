package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/model"
)

// InventarioRepository acceso a la colección de inventario.
type InventarioRepository interface {
	Create(ctx context.Context, item *model.InventarioItem) error
	ListAll(ctx context.Context) ([]model.InventarioItem, error)
	Update(ctx context.Context, id string, campos map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type inventarioRepo struct {
	baseRepo
}

// NewInventarioRepo crea una instancia de InventarioRepository.
func NewInventarioRepo(db *gorm.DB, logger *zap.Logger) InventarioRepository {
	return &inventarioRepo{baseRepo{db: db, logger: logger}}
}

func (r *inventarioRepo) Create(ctx context.Context, item *model.InventarioItem) error {
	err := clasificarEscritura(r.db.WithContext(ctx).Create(item).Error)
	r.traza("create", model.InventarioItem{}.TableName(), err, zap.String("id", item.ID))
	return err
}

func (r *inventarioRepo) ListAll(ctx context.Context) ([]model.InventarioItem, error) {
	var items []model.InventarioItem
	err := clasificarLectura(r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error)
	r.traza("list", model.InventarioItem{}.TableName(), err, zap.Int("total", len(items)))
	return items, err
}

func (r *inventarioRepo) Update(ctx context.Context, id string, campos map[string]interface{}) error {
	err := clasificarEscritura(r.db.WithContext(ctx).
		Model(&model.InventarioItem{}).
		Where("id = ?", id).
		Updates(campos).Error)
	r.traza("update", model.InventarioItem{}.TableName(), err, zap.String("id", id))
	return err
}

func (r *inventarioRepo) Delete(ctx context.Context, id string) error {
	err := clasificarEscritura(r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.InventarioItem{}).Error)
	r.traza("delete", model.InventarioItem{}.TableName(), err, zap.String("id", id))
	return err
}
