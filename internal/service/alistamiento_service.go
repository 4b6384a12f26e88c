package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/dto"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/model"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/repository"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/trd"
)

// ── Errores del módulo de alistamiento ──

var (
	ErrRutaTRDInvalida = errors.New("la combinación código/serie/subserie no existe en la TRD")
	ErrSinCampos       = errors.New("la actualización no trae ningún campo")
)

// AlistamientoService negocio del módulo de alistamiento. También respalda
// el registro documental: esa vista lee esta misma colección.
type AlistamientoService interface {
	Create(ctx context.Context, req *dto.CreateAlistamientoRequest) (*dto.AlistamientoResponse, error)
	// List devuelve la colección completa por creación descendente, filtrada
	// por el término de búsqueda. Un fallo de lectura se colapsa a lista
	// vacía: el llamador no distingue "vacío" de "fallo" (ver traza warn).
	List(ctx context.Context, termino string) ([]dto.AlistamientoResponse, error)
	// UpdateCampos fusiona los indicadores presentes; no verifica que el
	// registro exista de antemano.
	UpdateCampos(ctx context.Context, id string, req *dto.UpdateCamposAlistamientoRequest) error
	Delete(ctx context.Context, id string) error
	Resumen(ctx context.Context) (*dto.ResumenAlistamientoResponse, error)
}

type alistamientoService struct {
	repo     *repository.Repository
	catalogo *trd.Catalogo
	logger   *zap.Logger
}

// NewAlistamientoService crea una instancia de AlistamientoService.
func NewAlistamientoService(repo *repository.Repository, catalogo *trd.Catalogo, logger *zap.Logger) AlistamientoService {
	return &alistamientoService{repo: repo, catalogo: catalogo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *alistamientoService) Create(ctx context.Context, req *dto.CreateAlistamientoRequest) (*dto.AlistamientoResponse, error) {
	// La ruta TRD se valida con la misma semántica del selector en cascada:
	// cada nivel debe pertenecer al anterior.
	sel := trd.NewSeleccion(s.catalogo)
	if !sel.SetCodigo(req.Codigo) || !sel.SetSerie(req.Serie) || !sel.SetSubserie(req.Subserie) {
		return nil, ErrRutaTRDInvalida
	}

	reg := &model.Alistamiento{
		Codigo:    req.Codigo,
		Serie:     req.Serie,
		Subserie:  req.Subserie,
		Asunto:    req.Asunto,
		Checklist: req.Checklist,
		Rotulado:  req.Rotulado,
		Foliada:   req.Foliada,
	}

	if err := s.repo.Alistamiento.Create(ctx, reg); err != nil {
		s.logger.Error("no se pudo guardar el alistamiento", zap.Error(err))
		return nil, err
	}

	resp := aAlistamientoResponse(reg)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *alistamientoService) List(ctx context.Context, termino string) ([]dto.AlistamientoResponse, error) {
	regs, err := s.repo.Alistamiento.ListAll(ctx)
	if err != nil {
		// Fallo de lectura colapsado a colección vacía; solo queda la traza.
		s.logger.Warn("fallo cargando alistamiento, se devuelve lista vacía", zap.Error(err))
		return []dto.AlistamientoResponse{}, nil
	}

	result := make([]dto.AlistamientoResponse, 0, len(regs))
	for i := range regs {
		if !coincideBusqueda(termino, regs[i].Codigo, regs[i].Serie, regs[i].Subserie, regs[i].Asunto) {
			continue
		}
		result = append(result, aAlistamientoResponse(&regs[i]))
	}
	return result, nil
}

// ────────────────────── UpdateCampos ──────────────────────

func (s *alistamientoService) UpdateCampos(ctx context.Context, id string, req *dto.UpdateCamposAlistamientoRequest) error {
	campos := map[string]interface{}{}
	if req.Checklist != nil {
		campos["checklist"] = *req.Checklist
	}
	if req.Rotulado != nil {
		campos["rotulado"] = *req.Rotulado
	}
	if req.Foliada != nil {
		campos["foliada"] = *req.Foliada
	}
	if len(campos) == 0 {
		return ErrSinCampos
	}

	if err := s.repo.Alistamiento.Update(ctx, id, campos); err != nil {
		s.logger.Error("no se pudo actualizar el alistamiento", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *alistamientoService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Alistamiento.Delete(ctx, id); err != nil {
		s.logger.Error("no se pudo eliminar el alistamiento", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Resumen ──────────────────────

func (s *alistamientoService) Resumen(ctx context.Context) (*dto.ResumenAlistamientoResponse, error) {
	regs, err := s.repo.Alistamiento.ListAll(ctx)
	if err != nil {
		s.logger.Warn("fallo cargando alistamiento para el resumen", zap.Error(err))
		return &dto.ResumenAlistamientoResponse{}, nil
	}

	resumen := &dto.ResumenAlistamientoResponse{Total: len(regs)}
	for _, r := range regs {
		if r.Checklist {
			resumen.ConChecklist++
		}
		if r.Rotulado {
			resumen.Rotulados++
		}
		if r.Foliada {
			resumen.Foliadas++
		}
	}
	return resumen, nil
}

func aAlistamientoResponse(reg *model.Alistamiento) dto.AlistamientoResponse {
	return dto.AlistamientoResponse{
		ID:        reg.ID,
		Codigo:    reg.Codigo,
		Serie:     reg.Serie,
		Subserie:  reg.Subserie,
		Asunto:    reg.Asunto,
		Checklist: reg.Checklist,
		Rotulado:  reg.Rotulado,
		Foliada:   reg.Foliada,
		CreatedAt: reg.CreatedAt.Format(formatoMarcaTiempo),
	}
}
