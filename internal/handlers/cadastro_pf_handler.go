package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httpresp"
	"github.com/BruksfildServices01/ponto-inteligente/internal/usecase/cadastro"
)

type CadastroPFHandler struct {
	cadastrar *cadastro.CadastrarPF
	logger    *zap.Logger
}

func NewCadastroPFHandler(cadastrar *cadastro.CadastrarPF, logger *zap.Logger) *CadastroPFHandler {
	return &CadastroPFHandler{cadastrar: cadastrar, logger: logger.Named("cadastro_pf_handler")}
}

// POST /api/cadastrar-pf
func (h *CadastroPFHandler) Cadastrar(c *gin.Context) {
	var req dto.CadastroPFRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.cadastrar.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.Write(c, h.logger, err)
		return
	}

	httpresp.OK(c, resp)
}
