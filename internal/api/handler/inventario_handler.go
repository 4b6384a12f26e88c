package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/dto"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/repository"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/service"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/pkg/response"
)

// InventarioHandler inventario físico del archivo.
type InventarioHandler struct {
	invSvc    service.InventarioService
	exportSvc service.ExportService
}

// NewInventarioHandler crea InventarioHandler.
func NewInventarioHandler(invSvc service.InventarioService, exportSvc service.ExportService) *InventarioHandler {
	return &InventarioHandler{invSvc: invSvc, exportSvc: exportSvc}
}

// CreateInventario alta manual de un ítem
// POST /api/v1/inventario
func (h *InventarioHandler) CreateInventario(c *gin.Context) {
	var req dto.CreateInventarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	item, err := h.invSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	response.Created(c, item)
}

// ListInventario lista con búsqueda opcional
// GET /api/v1/inventario?q=
func (h *InventarioHandler) ListInventario(c *gin.Context) {
	items, err := h.invSvc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// UpdateInventario actualización parcial de un ítem
// PUT /api/v1/inventario/:id
func (h *InventarioHandler) UpdateInventario(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "el id no puede estar vacío")
		return
	}

	var req dto.UpdateInventarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	if err := h.invSvc.Update(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, service.ErrSinCampos) {
			response.BadRequest(c, 14001, "no hay campos para actualizar")
			return
		}
		handleStoreError(c, err)
		return
	}

	response.OK(c, gin.H{"id": id})
}

// DeleteInventario elimina un ítem
// DELETE /api/v1/inventario/:id
func (h *InventarioHandler) DeleteInventario(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "el id no puede estar vacío")
		return
	}

	if err := h.invSvc.Delete(c.Request.Context(), id); err != nil {
		handleStoreError(c, err)
		return
	}

	response.OK(c, gin.H{"id": id})
}

// GetResumen estadísticas del inventario
// GET /api/v1/inventario/resumen
func (h *InventarioHandler) GetResumen(c *gin.Context) {
	resumen, err := h.invSvc.Resumen(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resumen)
}

// ImportInventario carga masiva desde un Excel subido por multipart
// POST /api/v1/inventario/import  (campo "file")
func (h *InventarioHandler) ImportInventario(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 14002, "adjunte el archivo Excel en el campo file")
		return
	}
	defer file.Close()

	resp, err := h.invSvc.ImportarExcel(c.Request.Context(), file)
	if err != nil {
		h.handleImportError(c, err)
		return
	}

	response.Created(c, resp)
}

// ExportInventario descarga del inventario filtrado
// GET /api/v1/inventario/export?q=&formato=
func (h *InventarioHandler) ExportInventario(c *gin.Context) {
	exp, err := h.exportSvc.ExportInventario(c.Request.Context(), c.Query("q"), c.Query("formato"))
	if err != nil {
		handleExportError(c, err)
		return
	}

	escribirDescarga(c, exp)
}

func (h *InventarioHandler) handleImportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrImportSinFilas):
		response.BadRequest(c, 14003, "el archivo no trae filas de datos")
	case errors.Is(err, service.ErrImportSinEncabezado):
		response.BadRequest(c, 14004, "faltan las columnas Nombre Archivo y Ubicación")
	case errors.Is(err, service.ErrImportDemasiadasFilas):
		response.BadRequest(c, 14005, "la importación supera el límite de filas")
	case errors.Is(err, repository.ErrColeccionInexistente),
		errors.Is(err, repository.ErrCredencialRechazada),
		errors.Is(err, repository.ErrPersistencia):
		handleStoreError(c, err)
	default:
		// Archivo ilegible o corrupto
		response.BadRequest(c, 14006, "el archivo Excel no se pudo leer")
	}
}
