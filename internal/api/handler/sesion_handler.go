package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/dto"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/pkg/response"
)

// SesionHandler identidad decorativa de la interfaz.
// No hay autenticación: todo el que llega es el mismo perfil fijo.
type SesionHandler struct{}

// NewSesionHandler crea SesionHandler.
func NewSesionHandler() *SesionHandler {
	return &SesionHandler{}
}

// GetSesion perfil mostrado en la barra lateral
// GET /api/v1/sesion
func (h *SesionHandler) GetSesion(c *gin.Context) {
	response.OK(c, dto.SesionResponse{
		Nombre: "Administrador",
		Rol:    "Gestión Documental",
	})
}
