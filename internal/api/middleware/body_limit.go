package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/pkg/response"
)

// BodyLimit tope global del tamaño del cuerpo de la petición.
// maxBytes: máximo de bytes permitidos (p. ej. 10<<20 = 10MB, suficiente
// para los Excel de inventario que se suben al importador).
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, 10005, "el cuerpo de la petición es demasiado grande")
				return
			}
		}
	}
}
