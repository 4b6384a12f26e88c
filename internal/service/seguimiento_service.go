package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/dto"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/model"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/repository"
)

// ── Errores del módulo de seguimiento ──

var (
	ErrEstadoTareaInvalido    = errors.New("estado de tarea no admitido")
	ErrEstadoPrestamoInvalido = errors.New("estado de préstamo no admitido")
)

// listaPersonal funcionarios a los que se prestan carpetas.
var listaPersonal = []string{
	"ANDRES LAMPREA",
	"LINDA KATHERINE",
	"MARITZA MACHADO",
	"KATHERIN CRUZ",
	"PAOLA OYOLA",
	"MANUELA GOMEZ",
	"JORGE ROJAS",
	"OTROS",
}

// SeguimientoService negocio de tareas y préstamos.
type SeguimientoService interface {
	CreateTarea(ctx context.Context, req *dto.CreateTareaRequest) (*dto.TareaResponse, error)
	ListTareas(ctx context.Context) ([]dto.TareaResponse, error)
	// UpdateEstadoTarea fija el estado; cualquier estado admitido puede
	// asignarse en cualquier momento, no hay transiciones vetadas.
	UpdateEstadoTarea(ctx context.Context, id string, estado string) error
	DeleteTarea(ctx context.Context, id string) error

	CreatePrestamo(ctx context.Context, req *dto.CreatePrestamoRequest) (*dto.PrestamoResponse, error)
	ListPrestamos(ctx context.Context) ([]dto.PrestamoResponse, error)
	UpdateEstadoPrestamo(ctx context.Context, id string, estado string) error
	DeletePrestamo(ctx context.Context, id string) error

	// CarpetasDisponibles identificadores de carpeta derivados del
	// alistamiento, para el selector del formulario de préstamo.
	CarpetasDisponibles(ctx context.Context) ([]string, error)
	// Personal lista fija de funcionarios.
	Personal() []string
	Resumen(ctx context.Context) (*dto.SeguimientoResumenResponse, error)
}

type seguimientoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSeguimientoService crea una instancia de SeguimientoService.
func NewSeguimientoService(repo *repository.Repository, logger *zap.Logger) SeguimientoService {
	return &seguimientoService{repo: repo, logger: logger}
}

// ────────────────────── Tareas ──────────────────────

func (s *seguimientoService) CreateTarea(ctx context.Context, req *dto.CreateTareaRequest) (*dto.TareaResponse, error) {
	tarea := &model.Tarea{
		Titulo: req.Titulo,
		Fecha:  req.Fecha,
		Estado: req.Estado,
	}
	if tarea.Fecha == "" {
		tarea.Fecha = fechaHoy()
	}
	if tarea.Estado == "" {
		tarea.Estado = model.TareaPendiente
	}

	if err := s.repo.Tarea.Create(ctx, tarea); err != nil {
		s.logger.Error("no se pudo guardar la tarea", zap.Error(err))
		return nil, err
	}

	resp := aTareaResponse(tarea)
	return &resp, nil
}

func (s *seguimientoService) ListTareas(ctx context.Context) ([]dto.TareaResponse, error) {
	tareas, err := s.repo.Tarea.ListAll(ctx)
	if err != nil {
		s.logger.Warn("fallo cargando tareas, se devuelve lista vacía", zap.Error(err))
		return []dto.TareaResponse{}, nil
	}

	result := make([]dto.TareaResponse, 0, len(tareas))
	for i := range tareas {
		result = append(result, aTareaResponse(&tareas[i]))
	}
	return result, nil
}

func (s *seguimientoService) UpdateEstadoTarea(ctx context.Context, id string, estado string) error {
	if !model.EstadoTareaValido(estado) {
		return ErrEstadoTareaInvalido
	}

	if err := s.repo.Tarea.Update(ctx, id, map[string]interface{}{"estado": estado}); err != nil {
		s.logger.Error("no se pudo actualizar el estado de la tarea", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *seguimientoService) DeleteTarea(ctx context.Context, id string) error {
	if err := s.repo.Tarea.Delete(ctx, id); err != nil {
		s.logger.Error("no se pudo eliminar la tarea", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Préstamos ──────────────────────

func (s *seguimientoService) CreatePrestamo(ctx context.Context, req *dto.CreatePrestamoRequest) (*dto.PrestamoResponse, error) {
	prestamo := &model.Prestamo{
		Persona:       req.Persona,
		Fecha:         req.Fecha,
		Carpeta:       req.Carpeta,
		Observaciones: req.Observaciones,
		Estado:        model.PrestamoPrestado,
	}
	if prestamo.Fecha == "" {
		prestamo.Fecha = fechaHoy()
	}

	if err := s.repo.Prestamo.Create(ctx, prestamo); err != nil {
		s.logger.Error("no se pudo guardar el préstamo", zap.Error(err))
		return nil, err
	}

	resp := aPrestamoResponse(prestamo)
	return &resp, nil
}

func (s *seguimientoService) ListPrestamos(ctx context.Context) ([]dto.PrestamoResponse, error) {
	prestamos, err := s.repo.Prestamo.ListAll(ctx)
	if err != nil {
		s.logger.Warn("fallo cargando préstamos, se devuelve lista vacía", zap.Error(err))
		return []dto.PrestamoResponse{}, nil
	}

	result := make([]dto.PrestamoResponse, 0, len(prestamos))
	for i := range prestamos {
		result = append(result, aPrestamoResponse(&prestamos[i]))
	}
	return result, nil
}

func (s *seguimientoService) UpdateEstadoPrestamo(ctx context.Context, id string, estado string) error {
	if !model.EstadoPrestamoValido(estado) {
		return ErrEstadoPrestamoInvalido
	}

	if err := s.repo.Prestamo.Update(ctx, id, map[string]interface{}{"estado": estado}); err != nil {
		s.logger.Error("no se pudo actualizar el estado del préstamo", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *seguimientoService) DeletePrestamo(ctx context.Context, id string) error {
	if err := s.repo.Prestamo.Delete(ctx, id); err != nil {
		s.logger.Error("no se pudo eliminar el préstamo", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Derivados ──────────────────────

// maxAsuntoCarpeta tope de caracteres del asunto dentro del identificador
// de carpeta mostrado en el selector.
const maxAsuntoCarpeta = 50

func (s *seguimientoService) CarpetasDisponibles(ctx context.Context) ([]string, error) {
	regs, err := s.repo.Alistamiento.ListAll(ctx)
	if err != nil {
		s.logger.Warn("fallo cargando alistamiento para carpetas, se devuelve lista vacía", zap.Error(err))
		return []string{}, nil
	}

	carpetas := make([]string, 0, len(regs))
	for _, reg := range regs {
		asunto := reg.Asunto
		if runas := []rune(asunto); len(runas) > maxAsuntoCarpeta {
			asunto = string(runas[:maxAsuntoCarpeta]) + "..."
		}
		carpetas = append(carpetas, reg.Subserie+" - "+asunto)
	}
	return carpetas, nil
}

func (s *seguimientoService) Personal() []string {
	return listaPersonal
}

func (s *seguimientoService) Resumen(ctx context.Context) (*dto.SeguimientoResumenResponse, error) {
	resumen := &dto.SeguimientoResumenResponse{}

	tareas, err := s.repo.Tarea.ListAll(ctx)
	if err != nil {
		s.logger.Warn("fallo cargando tareas para el resumen", zap.Error(err))
		tareas = nil
	}
	for _, t := range tareas {
		switch t.Estado {
		case model.TareaPendiente:
			resumen.TareasPendientes++
		case model.TareaEnProceso:
			resumen.TareasEnProceso++
		case model.TareaCompletado:
			resumen.TareasCompletadas++
		}
	}

	prestamos, err := s.repo.Prestamo.ListAll(ctx)
	if err != nil {
		s.logger.Warn("fallo cargando préstamos para el resumen", zap.Error(err))
		prestamos = nil
	}
	for _, p := range prestamos {
		if p.Estado == model.PrestamoPrestado {
			resumen.PrestamosActivos++
		}
	}

	return resumen, nil
}

func aTareaResponse(tarea *model.Tarea) dto.TareaResponse {
	return dto.TareaResponse{
		ID:        tarea.ID,
		Titulo:    tarea.Titulo,
		Fecha:     tarea.Fecha,
		Estado:    tarea.Estado,
		CreatedAt: tarea.CreatedAt.Format(formatoMarcaTiempo),
	}
}

func aPrestamoResponse(prestamo *model.Prestamo) dto.PrestamoResponse {
	return dto.PrestamoResponse{
		ID:            prestamo.ID,
		Persona:       prestamo.Persona,
		Fecha:         prestamo.Fecha,
		Carpeta:       prestamo.Carpeta,
		Observaciones: prestamo.Observaciones,
		Estado:        prestamo.Estado,
		CreatedAt:     prestamo.CreatedAt.Format(formatoMarcaTiempo),
	}
}
