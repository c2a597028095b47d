package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/ponto-inteligente/internal/requestid"
)

var (
	corsAllowHeaders = strings.Join([]string{"Content-Type", "Authorization", requestid.Header}, ", ")
	corsAllowMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	}, ", ")
)

// CORSMiddleware libera as origens informadas. Lista vazia aceita qualquer origem (desenvolvimento),
// mas sem Allow-Credentials: credenciais só para origens da lista.
func CORSMiddleware(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		listed := origin != "" && slices.Contains(allowed, origin)

		if listed || (origin != "" && len(allowed) == 0) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			if listed {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Expose-Headers", requestid.Header)
		}

		// pre-flight
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
