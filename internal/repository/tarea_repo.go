package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/model"
)

// TareaRepository acceso a la colección de tareas.
type TareaRepository interface {
	Create(ctx context.Context, tarea *model.Tarea) error
	ListAll(ctx context.Context) ([]model.Tarea, error)
	Update(ctx context.Context, id string, campos map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type tareaRepo struct {
	baseRepo
}

// NewTareaRepo crea una instancia de TareaRepository.
func NewTareaRepo(db *gorm.DB, logger *zap.Logger) TareaRepository {
	return &tareaRepo{baseRepo{db: db, logger: logger}}
}

func (r *tareaRepo) Create(ctx context.Context, tarea *model.Tarea) error {
	err := clasificarEscritura(r.db.WithContext(ctx).Create(tarea).Error)
	r.traza("create", model.Tarea{}.TableName(), err, zap.String("id", tarea.ID))
	return err
}

func (r *tareaRepo) ListAll(ctx context.Context) ([]model.Tarea, error) {
	var tareas []model.Tarea
	err := clasificarLectura(r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&tareas).Error)
	r.traza("list", model.Tarea{}.TableName(), err, zap.Int("total", len(tareas)))
	return tareas, err
}

func (r *tareaRepo) Update(ctx context.Context, id string, campos map[string]interface{}) error {
	err := clasificarEscritura(r.db.WithContext(ctx).
		Model(&model.Tarea{}).
		Where("id = ?", id).
		Updates(campos).Error)
	r.traza("update", model.Tarea{}.TableName(), err, zap.String("id", id))
	return err
}

func (r *tareaRepo) Delete(ctx context.Context, id string) error {
	err := clasificarEscritura(r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Tarea{}).Error)
	r.traza("delete", model.Tarea{}.TableName(), err, zap.String("id", id))
	return err
}
