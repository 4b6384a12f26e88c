package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger registro estructurado de cada petición (con Zap).
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()
		ruta := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latencia := time.Since(inicio)
		estado := c.Writer.Status()

		campos := []zap.Field{
			zap.Int("status", estado),
			zap.String("method", c.Request.Method),
			zap.String("path", ruta),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", latencia),
		}

		if len(c.Errors) > 0 {
			campos = append(campos, zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()))
		}

		if estado >= 500 {
			logger.Error("fallo procesando la petición", campos...)
		} else if estado >= 400 {
			logger.Warn("error del cliente", campos...)
		} else {
			logger.Info("petición atendida", campos...)
		}
	}
}
