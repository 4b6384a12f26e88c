package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen tope de longitud del ID externo, para no contaminar el log.
const requestIDMaxLen = 64

// RequestID identificador de rastreo por petición.
// Se lee del encabezado X-Request-ID; si no viene se genera un UUID.
// El valor queda en el gin.Context y en el encabezado de respuesta.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
