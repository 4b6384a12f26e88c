package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/repository"
)

// ── Errores del módulo de exportación ──

var ErrExportSinDatos = errors.New("no hay datos para exportar")

// Tipos MIME de los formatos de descarga.
const (
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeCSV  = "text/csv; charset=utf-8"
)

// Exportacion archivo listo para descargar. Descarga de un solo sentido:
// el llamador escribe el contenido en la respuesta y no verifica nada más.
type Exportacion struct {
	Contenido   *bytes.Buffer
	Nombre      string
	ContentType string
}

// ExportService generación de archivos de descarga.
//
// Formato principal: Excel (.xlsx). Si la generación del libro falla se
// degrada a CSV plano en lugar de fallar la descarga; el parámetro formato
// ("csv") permite pedir el plano directamente.
type ExportService interface {
	ExportDocumentos(ctx context.Context, termino, formato string) (*Exportacion, error)
	ExportInventario(ctx context.Context, termino, formato string) (*Exportacion, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService crea una instancia de ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── Documentos ──────────────────────

func (s *exportService) ExportDocumentos(ctx context.Context, termino, formato string) (*Exportacion, error) {
	regs, err := s.repo.Alistamiento.ListAll(ctx)
	if err != nil {
		s.logger.Warn("fallo cargando alistamiento para exportar", zap.Error(err))
		regs = nil
	}

	encabezados := []string{"Código", "Serie", "Subserie", "Asunto", "Checklist", "Rotulado", "Foliada", "Fecha"}
	var filas [][]string
	for _, reg := range regs {
		if !coincideBusqueda(termino, reg.Codigo, reg.Serie, reg.Subserie, reg.Asunto) {
			continue
		}
		filas = append(filas, []string{
			reg.Codigo,
			reg.Serie,
			reg.Subserie,
			reg.Asunto,
			siNo(reg.Checklist),
			siNo(reg.Rotulado),
			siNo(reg.Foliada),
			reg.CreatedAt.Format("02/01/2006"),
		})
	}

	return s.generar("documentos", formato, encabezados, filas)
}

// ────────────────────── Inventario ──────────────────────

func (s *exportService) ExportInventario(ctx context.Context, termino, formato string) (*Exportacion, error) {
	items, err := s.repo.Inventario.ListAll(ctx)
	if err != nil {
		s.logger.Warn("fallo cargando inventario para exportar", zap.Error(err))
		items = nil
	}

	encabezados := []string{"Nombre Archivo", "Ubicación", "Caja", "Carpeta", "Descripción", "Fecha Ingreso"}
	var filas [][]string
	for _, it := range items {
		if !coincideBusqueda(termino, it.NombreArchivo, it.Ubicacion, it.Caja, it.Carpeta, it.Descripcion, it.FechaIngreso) {
			continue
		}
		filas = append(filas, []string{
			it.NombreArchivo,
			it.Ubicacion,
			it.Caja,
			it.Carpeta,
			it.Descripcion,
			it.FechaIngreso,
		})
	}

	return s.generar("inventario", formato, encabezados, filas)
}

// ────────────────────── Generación ──────────────────────

// generar arma el archivo en el formato pedido. El nombre lleva sufijo de
// marca de tiempo para no pisar descargas anteriores.
func (s *exportService) generar(base, formato string, encabezados []string, filas [][]string) (*Exportacion, error) {
	if len(filas) == 0 {
		return nil, ErrExportSinDatos
	}

	marca := time.Now().UnixMilli()

	if formato != "csv" {
		buf, err := generarXLSX(encabezados, filas)
		if err == nil {
			return &Exportacion{
				Contenido:   buf,
				Nombre:      fmt.Sprintf("%s_%d.xlsx", base, marca),
				ContentType: MimeXLSX,
			}, nil
		}
		// Degradación: mejor un CSV plano que una descarga fallida
		s.logger.Warn("fallo generando XLSX, se degrada a CSV", zap.Error(err))
	}

	buf, err := generarCSV(encabezados, filas)
	if err != nil {
		return nil, err
	}
	return &Exportacion{
		Contenido:   buf,
		Nombre:      fmt.Sprintf("%s_%d.csv", base, marca),
		ContentType: MimeCSV,
	}, nil
}

func generarXLSX(encabezados []string, filas [][]string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const hoja = "Datos"
	if err := f.SetSheetName("Sheet1", hoja); err != nil {
		return nil, err
	}

	fila := make([]interface{}, len(encabezados))
	for i, h := range encabezados {
		fila[i] = h
	}
	if err := f.SetSheetRow(hoja, "A1", &fila); err != nil {
		return nil, err
	}

	for n, datos := range filas {
		fila = make([]interface{}, len(datos))
		for i, v := range datos {
			fila[i] = v
		}
		celda, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(hoja, celda, &fila); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

func generarCSV(encabezados []string, filas [][]string) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(encabezados); err != nil {
		return nil, err
	}
	for _, fila := range filas {
		if err := w.Write(fila); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf, nil
}

func siNo(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}
