package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS permite peticiones desde los orígenes configurados del frontend.
func CORS(origenesPermitidos []string) gin.HandlerFunc {
	origenes := make(map[string]bool, len(origenesPermitidos))
	for _, o := range origenesPermitidos {
		origenes[strings.TrimRight(o, "/")] = true
	}

	return func(c *gin.Context) {
		origen := c.GetHeader("Origin")

		if origenes[origen] {
			c.Header("Access-Control-Allow-Origin", origen)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
