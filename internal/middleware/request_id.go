package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/ponto-inteligente/internal/requestid"
)

// RequestID reaproveita o X-Request-ID recebido ou gera um novo, e o coloca no context da requisição.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(requestid.With(c.Request.Context(), id))
		c.Writer.Header().Set(requestid.Header, id)

		c.Next()
	}
}
