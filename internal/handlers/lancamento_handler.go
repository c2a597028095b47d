package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httpresp"
	"github.com/BruksfildServices01/ponto-inteligente/internal/middleware"
	"github.com/BruksfildServices01/ponto-inteligente/internal/usecase/lancamento"
)

type LancamentoHandler struct {
	consultar *lancamento.Consultar
	registrar *lancamento.Registrar
	remover   *lancamento.Remover
	pageSize  int
	logger    *zap.Logger
}

func NewLancamentoHandler(
	consultar *lancamento.Consultar,
	registrar *lancamento.Registrar,
	remover *lancamento.Remover,
	pageSize int,
	logger *zap.Logger,
) *LancamentoHandler {
	return &LancamentoHandler{
		consultar: consultar,
		registrar: registrar,
		remover:   remover,
		pageSize:  pageSize,
		logger:    logger.Named("lancamento_handler"),
	}
}

// GET /api/lancamentos/funcionario/:funcionarioId?pag=0&ord=id&dir=DESC
func (h *LancamentoHandler) ListarPorFuncionario(c *gin.Context) {
	employeeID, ok := pathID(c, "funcionarioId")
	if !ok {
		return
	}
	req, ok := pageRequest(c, h.pageSize)
	if !ok {
		return
	}

	page, err := h.consultar.PorFuncionario(c.Request.Context(), employeeID, req, middleware.Caller(c))
	if err != nil {
		httperr.Write(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.NewPageResponse(ponto.Map(page, dto.NewLancamentoResponse)))
}

// GET /api/lancamentos/:id
func (h *LancamentoHandler) BuscarPorID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	entry, err := h.consultar.PorID(c.Request.Context(), id, middleware.Caller(c))
	if err != nil {
		httperr.Write(c, h.logger, err)
		return
	}
	if entry == nil {
		httperr.BadRequest(c, fmt.Sprintf(dto.MsgLancamentoNaoEncontradoID, id))
		return
	}

	httpresp.OK(c, dto.NewLancamentoResponse(*entry))
}

// POST /api/lancamentos
func (h *LancamentoHandler) Adicionar(c *gin.Context) {
	var req dto.LancamentoRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.registrar.Create(c.Request.Context(), req, middleware.Caller(c))
	if err != nil {
		httperr.Write(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.NewLancamentoResponse(*entry))
}

// PUT /api/lancamentos/:id
func (h *LancamentoHandler) Atualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.LancamentoRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.registrar.Update(c.Request.Context(), id, req, middleware.Caller(c))
	if err != nil {
		httperr.Write(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.NewLancamentoResponse(*entry))
}

// DELETE /api/lancamentos/:id (ROLE_ADMIN)
func (h *LancamentoHandler) Remover(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.remover.Execute(c.Request.Context(), id, middleware.Caller(c)); err != nil {
		httperr.Write(c, h.logger, err)
		return
	}

	httpresp.OK(c, struct{}{})
}
