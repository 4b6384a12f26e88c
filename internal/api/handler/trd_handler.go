package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/trd"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/pkg/response"
)

// TRDHandler consulta del catálogo de clasificación documental.
// El catálogo es inmutable: las consultas nunca fallan, un nivel
// desconocido devuelve la lista vacía.
type TRDHandler struct {
	catalogo *trd.Catalogo
}

// NewTRDHandler crea TRDHandler.
func NewTRDHandler(catalogo *trd.Catalogo) *TRDHandler {
	return &TRDHandler{catalogo: catalogo}
}

// ListCodigos códigos de primer nivel
// GET /api/v1/trd/codigos
func (h *TRDHandler) ListCodigos(c *gin.Context) {
	response.OK(c, gin.H{"list": h.catalogo.Codigos()})
}

// ListSeries series de un código
// GET /api/v1/trd/codigos/:id/series
func (h *TRDHandler) ListSeries(c *gin.Context) {
	response.OK(c, gin.H{"list": h.catalogo.SeriesOf(c.Param("id"))})
}

// ListSubseries subseries de una serie
// GET /api/v1/trd/codigos/:id/series/:serie/subseries
func (h *TRDHandler) ListSubseries(c *gin.Context) {
	response.OK(c, gin.H{"list": h.catalogo.SubseriesOf(c.Param("id"), c.Param("serie"))})
}
