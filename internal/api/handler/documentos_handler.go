package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/service"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/pkg/response"
)

// DocumentosHandler registro documental: lectura, búsqueda, eliminación y
// exportación sobre la colección de alistamiento. No crea registros; el alta
// pasa siempre por el módulo de alistamiento.
type DocumentosHandler struct {
	aliSvc    service.AlistamientoService
	exportSvc service.ExportService
}

// NewDocumentosHandler crea DocumentosHandler.
func NewDocumentosHandler(aliSvc service.AlistamientoService, exportSvc service.ExportService) *DocumentosHandler {
	return &DocumentosHandler{aliSvc: aliSvc, exportSvc: exportSvc}
}

// ListDocumentos lista del registro con búsqueda opcional
// GET /api/v1/documentos?q=
func (h *DocumentosHandler) ListDocumentos(c *gin.Context) {
	regs, err := h.aliSvc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": regs})
}

// DeleteDocumento elimina un registro del registro documental
// DELETE /api/v1/documentos/:id
func (h *DocumentosHandler) DeleteDocumento(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "el id no puede estar vacío")
		return
	}

	if err := h.aliSvc.Delete(c.Request.Context(), id); err != nil {
		handleStoreError(c, err)
		return
	}

	response.OK(c, gin.H{"id": id})
}

// ExportDocumentos descarga del registro filtrado
// GET /api/v1/documentos/export?q=&formato=
func (h *DocumentosHandler) ExportDocumentos(c *gin.Context) {
	exp, err := h.exportSvc.ExportDocumentos(c.Request.Context(), c.Query("q"), c.Query("formato"))
	if err != nil {
		handleExportError(c, err)
		return
	}

	escribirDescarga(c, exp)
}

// escribirDescarga encabezados de descarga de archivo.
// Compartido por las exportaciones de documentos e inventario.
func escribirDescarga(c *gin.Context, exp *service.Exportacion) {
	nombre := url.QueryEscape(exp.Nombre)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+nombre)
	c.Header("Content-Type", exp.ContentType)
	c.Data(http.StatusOK, exp.ContentType, exp.Contenido.Bytes())
}

func handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportSinDatos):
		response.NotFound(c, 15001, "no hay datos para exportar")
	default:
		response.InternalError(c)
	}
}
