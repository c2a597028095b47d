package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httpresp"
	"github.com/BruksfildServices01/ponto-inteligente/internal/requestid"
)

const (
	MsgInternal = "Erro interno no servidor."
	MsgConflict = "Registro já existente."
)

// ValidationError carrega as mensagens de campo e de negócio, na ordem em que foram encontradas.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func Validation(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// Write traduz err para a resposta HTTP: validação e conflito viram 400, o resto 500.
func Write(c *gin.Context, logger *zap.Logger, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Messages...)
	case errors.Is(err, ponto.ErrConflict):
		logger.Warn("unique constraint violated after checks",
			zap.Error(err),
			requestid.Field(c.Request.Context()),
		)
		BadRequest(c, MsgConflict)
	default:
		logger.Error("request failed",
			zap.Error(err),
			zap.String("path", c.FullPath()),
			requestid.Field(c.Request.Context()),
		)
		Internal(c)
	}
}

func BadRequest(c *gin.Context, messages ...string) {
	httpresp.Fail(c, http.StatusBadRequest, messages...)
}

func Unauthorized(c *gin.Context, message string) {
	httpresp.Fail(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	httpresp.Fail(c, http.StatusForbidden, message)
}

func Internal(c *gin.Context) {
	httpresp.Fail(c, http.StatusInternalServerError, MsgInternal)
}
