package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/config"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/api/handler"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/api/middleware"
)

// Setup inicializa y devuelve el motor de rutas de Gin.
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middleware global ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodySize))

	// ── Verificación de salud ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Identidad decorativa
		v1.GET("/sesion", h.Sesion.GetSesion)

		// Catálogo TRD
		trd := v1.Group("/trd")
		{
			trd.GET("/codigos", h.TRD.ListCodigos)
			trd.GET("/codigos/:id/series", h.TRD.ListSeries)
			trd.GET("/codigos/:id/series/:serie/subseries", h.TRD.ListSubseries)
		}

		// Alistamiento documental
		alistamiento := v1.Group("/alistamiento")
		{
			alistamiento.POST("", h.Alistamiento.CreateAlistamiento)
			alistamiento.GET("", h.Alistamiento.ListAlistamiento)
			alistamiento.GET("/resumen", h.Alistamiento.GetResumen)
			alistamiento.PUT("/:id/campos", h.Alistamiento.UpdateCampos)
			alistamiento.DELETE("/:id", h.Alistamiento.DeleteAlistamiento)
		}

		// Registro documental (lee la colección de alistamiento)
		documentos := v1.Group("/documentos")
		{
			documentos.GET("", h.Documentos.ListDocumentos)
			documentos.GET("/export", h.Documentos.ExportDocumentos)
			documentos.DELETE("/:id", h.Documentos.DeleteDocumento)
		}

		// Seguimiento: tareas
		tareas := v1.Group("/tareas")
		{
			tareas.POST("", h.Seguimiento.CreateTarea)
			tareas.GET("", h.Seguimiento.ListTareas)
			tareas.PUT("/:id/estado", h.Seguimiento.UpdateEstadoTarea)
			tareas.DELETE("/:id", h.Seguimiento.DeleteTarea)
		}

		// Seguimiento: préstamos
		prestamos := v1.Group("/prestamos")
		{
			prestamos.POST("", h.Seguimiento.CreatePrestamo)
			prestamos.GET("", h.Seguimiento.ListPrestamos)
			prestamos.PUT("/:id/estado", h.Seguimiento.UpdateEstadoPrestamo)
			prestamos.DELETE("/:id", h.Seguimiento.DeletePrestamo)
		}

		// Seguimiento: apoyo al formulario
		seguimiento := v1.Group("/seguimiento")
		{
			seguimiento.GET("/carpetas", h.Seguimiento.ListCarpetas)
			seguimiento.GET("/personal", h.Seguimiento.ListPersonal)
			seguimiento.GET("/resumen", h.Seguimiento.GetResumen)
		}

		// Inventario físico
		inventario := v1.Group("/inventario")
		{
			inventario.POST("", h.Inventario.CreateInventario)
			inventario.GET("", h.Inventario.ListInventario)
			inventario.GET("/resumen", h.Inventario.GetResumen)
			inventario.POST("/import", h.Inventario.ImportInventario)
			inventario.GET("/export", h.Inventario.ExportInventario)
			inventario.PUT("/:id", h.Inventario.UpdateInventario)
			inventario.DELETE("/:id", h.Inventario.DeleteInventario)
		}

		// Asistente de normatividad
		normatividad := v1.Group("/normatividad")
		{
			normatividad.POST("/consulta", h.Normatividad.Consultar)
			normatividad.GET("/sugerencias", h.Normatividad.Sugerencias)
		}
	}

	return r
}
