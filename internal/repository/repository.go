package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repository punto de agregación de todos los repositorios de colección.
type Repository struct {
	Alistamiento AlistamientoRepository
	Tarea        TareaRepository
	Prestamo     PrestamoRepository
	Inventario   InventarioRepository
}

// NewRepository crea el agregado de repositorios.
func NewRepository(db *gorm.DB, logger *zap.Logger) *Repository {
	return &Repository{
		Alistamiento: NewAlistamientoRepo(db, logger),
		Tarea:        NewTareaRepo(db, logger),
		Prestamo:     NewPrestamoRepo(db, logger),
		Inventario:   NewInventarioRepo(db, logger),
	}
}

// baseRepo acceso compartido de los repositorios GORM.
// Cada operación emite una traza de diagnóstico de intento y resultado;
// la traza es visibilidad operacional, no parte del contrato funcional.
type baseRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

// traza registra el resultado de una operación contra una colección.
func (b *baseRepo) traza(op, tabla string, err error, campos ...zap.Field) {
	campos = append(campos, zap.String("op", op), zap.String("tabla", tabla))
	if err != nil {
		b.logger.Error("operación rechazada por el almacén", append(campos, zap.Error(err))...)
		return
	}
	b.logger.Debug("operación completada", campos...)
}
