package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/dto"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/service"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/pkg/response"
)

// NormatividadHandler asistente de consultas de normatividad archivística.
type NormatividadHandler struct {
	normSvc service.NormatividadService
}

// NewNormatividadHandler crea NormatividadHandler.
func NewNormatividadHandler(normSvc service.NormatividadService) *NormatividadHandler {
	return &NormatividadHandler{normSvc: normSvc}
}

// Consultar responde una pregunta en texto libre
// POST /api/v1/normatividad/consulta
func (h *NormatividadHandler) Consultar(c *gin.Context) {
	var req dto.ConsultaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	response.OK(c, h.normSvc.Responder(req.Mensaje))
}

// Sugerencias saludo inicial y preguntas sugeridas
// GET /api/v1/normatividad/sugerencias
func (h *NormatividadHandler) Sugerencias(c *gin.Context) {
	response.OK(c, h.normSvc.Sugerencias())
}
