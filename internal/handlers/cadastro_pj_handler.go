package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httpresp"
	"github.com/BruksfildServices01/ponto-inteligente/internal/usecase/cadastro"
)

type CadastroPJHandler struct {
	cadastrar *cadastro.CadastrarPJ
	logger    *zap.Logger
}

func NewCadastroPJHandler(cadastrar *cadastro.CadastrarPJ, logger *zap.Logger) *CadastroPJHandler {
	return &CadastroPJHandler{cadastrar: cadastrar, logger: logger.Named("cadastro_pj_handler")}
}

// POST /api/cadastrar-pj
func (h *CadastroPJHandler) Cadastrar(c *gin.Context) {
	var req dto.CadastroPJRequest
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
