package handler

import (
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/service"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/trd"
)

// Handler punto de agregación de todos los handlers HTTP.
type Handler struct {
	Sesion       *SesionHandler
	TRD          *TRDHandler
	Alistamiento *AlistamientoHandler
	Documentos   *DocumentosHandler
	Seguimiento  *SeguimientoHandler
	Inventario   *InventarioHandler
	Normatividad *NormatividadHandler
}

// NewHandler crea el agregado de handlers.
func NewHandler(svc *service.Service, catalogo *trd.Catalogo) *Handler {
	return &Handler{
		Sesion:       NewSesionHandler(),
		TRD:          NewTRDHandler(catalogo),
		Alistamiento: NewAlistamientoHandler(svc.Alistamiento),
		Documentos:   NewDocumentosHandler(svc.Alistamiento, svc.Export),
		Seguimiento:  NewSeguimientoHandler(svc.Seguimiento),
		Inventario:   NewInventarioHandler(svc.Inventario, svc.Export),
		Normatividad: NewNormatividadHandler(svc.Normatividad),
	}
}
