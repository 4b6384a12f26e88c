package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/dto"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/repository"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/service"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/pkg/response"
)

// AlistamientoHandler módulo de alistamiento documental.
type AlistamientoHandler struct {
	aliSvc service.AlistamientoService
}

// NewAlistamientoHandler crea AlistamientoHandler.
func NewAlistamientoHandler(aliSvc service.AlistamientoService) *AlistamientoHandler {
	return &AlistamientoHandler{aliSvc: aliSvc}
}

// CreateAlistamiento registra el ingreso de un documento
// POST /api/v1/alistamiento
func (h *AlistamientoHandler) CreateAlistamiento(c *gin.Context) {
	var req dto.CreateAlistamientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	reg, err := h.aliSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAlistamientoError(c, err)
		return
	}

	response.Created(c, reg)
}

// ListAlistamiento lista con búsqueda opcional
// GET /api/v1/alistamiento?q=
func (h *AlistamientoHandler) ListAlistamiento(c *gin.Context) {
	regs, err := h.aliSvc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": regs})
}

// GetResumen estadísticas de la colección
// GET /api/v1/alistamiento/resumen
func (h *AlistamientoHandler) GetResumen(c *gin.Context) {
	resumen, err := h.aliSvc.Resumen(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resumen)
}

// UpdateCampos fusiona los indicadores de preparación presentes
// PUT /api/v1/alistamiento/:id/campos
func (h *AlistamientoHandler) UpdateCampos(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "el id no puede estar vacío")
		return
	}

	var req dto.UpdateCamposAlistamientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	if err := h.aliSvc.UpdateCampos(c.Request.Context(), id, &req); err != nil {
		h.handleAlistamientoError(c, err)
		return
	}

	response.OK(c, gin.H{"id": id})
}

// DeleteAlistamiento elimina un registro
// DELETE /api/v1/alistamiento/:id
func (h *AlistamientoHandler) DeleteAlistamiento(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "el id no puede estar vacío")
		return
	}

	if err := h.aliSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAlistamientoError(c, err)
		return
	}

	response.OK(c, gin.H{"id": id})
}

func (h *AlistamientoHandler) handleAlistamientoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRutaTRDInvalida):
		response.BadRequest(c, 11001, "la ruta TRD no existe en el catálogo")
	case errors.Is(err, service.ErrSinCampos):
		response.BadRequest(c, 11002, "no hay campos para actualizar")
	default:
		handleStoreError(c, err)
	}
}

// handleStoreError mapea la taxonomía de fallos del almacén a la respuesta.
// Compartido por todos los módulos que escriben colecciones.
func handleStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrColeccionInexistente):
		response.Error(c, http.StatusInternalServerError, 50001, "la colección no existe en el esquema")
	case errors.Is(err, repository.ErrCredencialRechazada):
		response.Error(c, http.StatusInternalServerError, 50002, "credenciales de base de datos rechazadas")
	case errors.Is(err, repository.ErrPersistencia):
		response.Error(c, http.StatusInternalServerError, 50003, "no se pudo guardar el cambio")
	case errors.Is(err, repository.ErrConsulta):
		response.Error(c, http.StatusInternalServerError, 50004, "no se pudo consultar la colección")
	default:
		response.InternalError(c)
	}
}
