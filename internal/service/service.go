package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/repository"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/trd"
)

// Service punto de agregación de todos los servicios.
type Service struct {
	Alistamiento AlistamientoService
	Seguimiento  SeguimientoService
	Inventario   InventarioService
	Export       ExportService
	Normatividad NormatividadService
}

// NewService crea el agregado de servicios.
func NewService(repo *repository.Repository, catalogo *trd.Catalogo, logger *zap.Logger) *Service {
	return &Service{
		Alistamiento: NewAlistamientoService(repo, catalogo, logger),
		Seguimiento:  NewSeguimientoService(repo, logger),
		Inventario:   NewInventarioService(repo, logger),
		Export:       NewExportService(repo, logger),
		Normatividad: NewNormatividadService(),
	}
}

// formatoMarcaTiempo formato con el que se serializan los created_at.
const formatoMarcaTiempo = "2006-01-02T15:04:05Z"

// formatoFecha formato de las fechas-como-cadena de los registros.
const formatoFecha = "2006-01-02"

// fechaHoy fecha actual en formato YYYY-MM-DD.
func fechaHoy() string {
	return time.Now().Format(formatoFecha)
}
