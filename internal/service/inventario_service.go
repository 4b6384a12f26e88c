package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/dto"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/model"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/repository"
)

// ── Errores del módulo de inventario ──

var (
	ErrImportSinFilas      = errors.New("el archivo Excel no trae filas de datos")
	ErrImportSinEncabezado = errors.New("el Excel no trae las columnas mínimas (Nombre Archivo / Ubicación)")
)

// maxFilasImport tope de filas por importación.
const maxFilasImport = 5000

// ErrImportDemasiadasFilas el archivo supera el tope de filas.
var ErrImportDemasiadasFilas = fmt.Errorf("la importación supera el límite de %d filas", maxFilasImport)

// InventarioService negocio del inventario físico.
type InventarioService interface {
	Create(ctx context.Context, req *dto.CreateInventarioRequest) (*dto.InventarioResponse, error)
	List(ctx context.Context, termino string) ([]dto.InventarioResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateInventarioRequest) error
	Delete(ctx context.Context, id string) error
	Resumen(ctx context.Context) (*dto.ResumenInventarioResponse, error)
	// ImportarExcel crea un ítem por cada fila válida, una a la vez (sin
	// lote). Las filas sin nombre de archivo o ubicación se omiten en
	// silencio. Un rechazo del almacén a mitad de camino aborta: lo ya
	// creado no se revierte.
	ImportarExcel(ctx context.Context, r io.Reader) (*dto.ImportInventarioResponse, error)
}

type inventarioService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInventarioService crea una instancia de InventarioService.
func NewInventarioService(repo *repository.Repository, logger *zap.Logger) InventarioService {
	return &inventarioService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *inventarioService) Create(ctx context.Context, req *dto.CreateInventarioRequest) (*dto.InventarioResponse, error) {
	item := &model.InventarioItem{
		NombreArchivo: req.NombreArchivo,
		Ubicacion:     req.Ubicacion,
		Caja:          req.Caja,
		Carpeta:       req.Carpeta,
		Descripcion:   req.Descripcion,
		FechaIngreso:  req.FechaIngreso,
	}
	if item.FechaIngreso == "" {
		item.FechaIngreso = fechaHoy()
	}

	if err := s.repo.Inventario.Create(ctx, item); err != nil {
		s.logger.Error("no se pudo guardar el ítem de inventario", zap.Error(err))
		return nil, err
	}

	resp := aInventarioResponse(item)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *inventarioService) List(ctx context.Context, termino string) ([]dto.InventarioResponse, error) {
	items, err := s.repo.Inventario.ListAll(ctx)
	if err != nil {
		s.logger.Warn("fallo cargando inventario, se devuelve lista vacía", zap.Error(err))
		return []dto.InventarioResponse{}, nil
	}

	result := make([]dto.InventarioResponse, 0, len(items))
	for i := range items {
		it := &items[i]
		if !coincideBusqueda(termino, it.NombreArchivo, it.Ubicacion, it.Caja, it.Carpeta, it.Descripcion, it.FechaIngreso) {
			continue
		}
		result = append(result, aInventarioResponse(it))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *inventarioService) Update(ctx context.Context, id string, req *dto.UpdateInventarioRequest) error {
	campos := map[string]interface{}{}
	if req.NombreArchivo != nil {
		campos["nombre_archivo"] = *req.NombreArchivo
	}
	if req.Ubicacion != nil {
		campos["ubicacion"] = *req.Ubicacion
	}
	if req.Caja != nil {
		campos["caja"] = *req.Caja
	}
	if req.Carpeta != nil {
		campos["carpeta"] = *req.Carpeta
	}
	if req.Descripcion != nil {
		campos["descripcion"] = *req.Descripcion
	}
	if req.FechaIngreso != nil {
		campos["fecha_ingreso"] = *req.FechaIngreso
	}
	if len(campos) == 0 {
		return ErrSinCampos
	}

	if err := s.repo.Inventario.Update(ctx, id, campos); err != nil {
		s.logger.Error("no se pudo actualizar el ítem de inventario", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *inventarioService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Inventario.Delete(ctx, id); err != nil {
		s.logger.Error("no se pudo eliminar el ítem de inventario", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Resumen ──────────────────────

func (s *inventarioService) Resumen(ctx context.Context) (*dto.ResumenInventarioResponse, error) {
	items, err := s.repo.Inventario.ListAll(ctx)
	if err != nil {
		s.logger.Warn("fallo cargando inventario para el resumen", zap.Error(err))
		return &dto.ResumenInventarioResponse{}, nil
	}

	ubicaciones := map[string]bool{}
	cajas := map[string]bool{}
	for _, it := range items {
		if it.Ubicacion != "" {
			ubicaciones[it.Ubicacion] = true
		}
		if it.Caja != "" {
			cajas[it.Caja] = true
		}
	}

	return &dto.ResumenInventarioResponse{
		Total:       len(items),
		Ubicaciones: len(ubicaciones),
		Cajas:       len(cajas),
	}, nil
}

// ═══════════════════════════════════════════════════════════
// ImportarExcel — carga masiva del inventario
// ═══════════════════════════════════════════════════════════
//
// Formato esperado: primera hoja, primera fila con encabezados. Se aceptan
// variantes por columna (con/sin tilde, con/sin guion bajo). Columnas
// obligatorias por fila: nombre de archivo y ubicación; el resto es opcional
// y la fecha de ingreso vacía se rellena con la fecha de hoy.

// sinonimosColumna variantes de encabezado aceptadas por campo.
var sinonimosColumna = map[string][]string{
	"nombre_archivo": {"nombre archivo", "nombre_archivo", "nombre"},
	"ubicacion":      {"ubicación", "ubicacion"},
	"caja":           {"caja"},
	"carpeta":        {"carpeta"},
	"descripcion":    {"descripción", "descripcion"},
	"fecha_ingreso":  {"fecha ingreso", "fecha", "fecha_ingreso"},
}

func (s *inventarioService) ImportarExcel(ctx context.Context, r io.Reader) (*dto.ImportInventarioResponse, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el archivo Excel: %w", err)
	}
	defer f.Close()

	hoja := f.GetSheetName(0)
	filas, err := f.GetRows(hoja)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la hoja de cálculo: %w", err)
	}

	if len(filas) < 2 {
		return nil, ErrImportSinFilas
	}
	if len(filas)-1 > maxFilasImport {
		return nil, ErrImportDemasiadasFilas
	}

	indice := indiceDeColumnas(filas[0])
	if indice["nombre_archivo"] < 0 || indice["ubicacion"] < 0 {
		return nil, ErrImportSinEncabezado
	}

	celda := func(fila []string, campo string) string {
		idx := indice[campo]
		if idx < 0 || idx >= len(fila) {
			return ""
		}
		return strings.TrimSpace(fila[idx])
	}

	resp := &dto.ImportInventarioResponse{}
	for _, fila := range filas[1:] {
		item := &model.InventarioItem{
			NombreArchivo: celda(fila, "nombre_archivo"),
			Ubicacion:     celda(fila, "ubicacion"),
			Caja:          celda(fila, "caja"),
			Carpeta:       celda(fila, "carpeta"),
			Descripcion:   celda(fila, "descripcion"),
			FechaIngreso:  celda(fila, "fecha_ingreso"),
		}

		// Fila sin los dos campos obligatorios: se omite en silencio
		if item.NombreArchivo == "" || item.Ubicacion == "" {
			resp.Omitidos++
			continue
		}
		if item.FechaIngreso == "" {
			item.FechaIngreso = fechaHoy()
		}

		if err := s.repo.Inventario.Create(ctx, item); err != nil {
			s.logger.Error("importación interrumpida por rechazo del almacén",
				zap.Int("creados", resp.Importados), zap.Error(err))
			return nil, err
		}
		resp.Importados++
	}

	s.logger.Info("importación de inventario completada",
		zap.Int("importados", resp.Importados),
		zap.Int("omitidos", resp.Omitidos),
	)
	return resp, nil
}

// indiceDeColumnas mapea cada campo a su columna según los sinónimos;
// -1 cuando el encabezado no aparece.
func indiceDeColumnas(encabezados []string) map[string]int {
	indice := map[string]int{}
	for campo := range sinonimosColumna {
		indice[campo] = -1
	}

	for col, encabezado := range encabezados {
		normalizado := strings.ToLower(strings.TrimSpace(encabezado))
		for campo, variantes := range sinonimosColumna {
			if indice[campo] >= 0 {
				continue
			}
			for _, v := range variantes {
				if normalizado == v {
					indice[campo] = col
					break
				}
			}
		}
	}
	return indice
}

func aInventarioResponse(item *model.InventarioItem) dto.InventarioResponse {
	return dto.InventarioResponse{
		ID:            item.ID,
		NombreArchivo: item.NombreArchivo,
		Ubicacion:     item.Ubicacion,
		Caja:          item.Caja,
		Carpeta:       item.Carpeta,
		Descripcion:   item.Descripcion,
		FechaIngreso:  item.FechaIngreso,
		CreatedAt:     item.CreatedAt.Format(formatoMarcaTiempo),
	}
}
