package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/dto"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/service"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/pkg/response"
)

// SeguimientoHandler tareas y préstamos de carpetas.
type SeguimientoHandler struct {
	segSvc service.SeguimientoService
}

// NewSeguimientoHandler crea SeguimientoHandler.
func NewSeguimientoHandler(segSvc service.SeguimientoService) *SeguimientoHandler {
	return &SeguimientoHandler{segSvc: segSvc}
}

// ── Tareas ──

// CreateTarea crea una tarea de archivo
// POST /api/v1/tareas
func (h *SeguimientoHandler) CreateTarea(c *gin.Context) {
	var req dto.CreateTareaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	tarea, err := h.segSvc.CreateTarea(c.Request.Context(), &req)
	if err != nil {
		h.handleSeguimientoError(c, err)
		return
	}

	response.Created(c, tarea)
}

// ListTareas lista de tareas por creación descendente
// GET /api/v1/tareas
func (h *SeguimientoHandler) ListTareas(c *gin.Context) {
	tareas, err := h.segSvc.ListTareas(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": tareas})
}

// UpdateEstadoTarea fija el estado de una tarea
// PUT /api/v1/tareas/:id/estado
func (h *SeguimientoHandler) UpdateEstadoTarea(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "el id no puede estar vacío")
		return
	}

	var req dto.UpdateEstadoTareaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	if err := h.segSvc.UpdateEstadoTarea(c.Request.Context(), id, req.Estado); err != nil {
		h.handleSeguimientoError(c, err)
		return
	}

	response.OK(c, gin.H{"id": id, "estado": req.Estado})
}

// DeleteTarea elimina una tarea
// DELETE /api/v1/tareas/:id
func (h *SeguimientoHandler) DeleteTarea(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "el id no puede estar vacío")
		return
	}

	if err := h.segSvc.DeleteTarea(c.Request.Context(), id); err != nil {
		handleStoreError(c, err)
		return
	}

	response.OK(c, gin.H{"id": id})
}

// ── Préstamos ──

// CreatePrestamo registra la salida de una carpeta
// POST /api/v1/prestamos
func (h *SeguimientoHandler) CreatePrestamo(c *gin.Context) {
	var req dto.CreatePrestamoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	prestamo, err := h.segSvc.CreatePrestamo(c.Request.Context(), &req)
	if err != nil {
		h.handleSeguimientoError(c, err)
		return
	}

	response.Created(c, prestamo)
}

// ListPrestamos lista de préstamos por creación descendente
// GET /api/v1/prestamos
func (h *SeguimientoHandler) ListPrestamos(c *gin.Context) {
	prestamos, err := h.segSvc.ListPrestamos(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": prestamos})
}

// UpdateEstadoPrestamo marca el préstamo (p. ej. la devolución)
// PUT /api/v1/prestamos/:id/estado
func (h *SeguimientoHandler) UpdateEstadoPrestamo(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "el id no puede estar vacío")
		return
	}

	var req dto.UpdateEstadoPrestamoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	if err := h.segSvc.UpdateEstadoPrestamo(c.Request.Context(), id, req.Estado); err != nil {
		h.handleSeguimientoError(c, err)
		return
	}

	response.OK(c, gin.H{"id": id, "estado": req.Estado})
}

// DeletePrestamo elimina un préstamo
// DELETE /api/v1/prestamos/:id
func (h *SeguimientoHandler) DeletePrestamo(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "el id no puede estar vacío")
		return
	}

	if err := h.segSvc.DeletePrestamo(c.Request.Context(), id); err != nil {
		handleStoreError(c, err)
		return
	}

	response.OK(c, gin.H{"id": id})
}

// ── Apoyo al formulario ──

// ListCarpetas carpetas disponibles derivadas del alistamiento
// GET /api/v1/seguimiento/carpetas
func (h *SeguimientoHandler) ListCarpetas(c *gin.Context) {
	carpetas, err := h.segSvc.CarpetasDisponibles(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": carpetas})
}

// ListPersonal funcionarios de la dependencia
// GET /api/v1/seguimiento/personal
func (h *SeguimientoHandler) ListPersonal(c *gin.Context) {
	response.OK(c, gin.H{"list": h.segSvc.Personal()})
}

// GetResumen conteos de tareas y préstamos activos
// GET /api/v1/seguimiento/resumen
func (h *SeguimientoHandler) GetResumen(c *gin.Context) {
	resumen, err := h.segSvc.Resumen(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resumen)
}

func (h *SeguimientoHandler) handleSeguimientoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEstadoTareaInvalido):
		response.BadRequest(c, 13001, "estado de tarea no admitido")
	case errors.Is(err, service.ErrEstadoPrestamoInvalido):
		response.BadRequest(c, 13002, "estado de préstamo no admitido")
	default:
		handleStoreError(c, err)
	}
}
