// Package requestid carrega o identificador da requisição pelo context.Context.
package requestid

import (
	"context"

	"go.uber.org/zap"
)

const Header = "X-Request-ID"

type ctxKey struct{}

func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func From(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Field devolve o campo de log com o id da requisição, vazio quando ausente.
func Field(ctx context.Context) zap.Field {
	return zap.String("request_id", From(ctx))
}
