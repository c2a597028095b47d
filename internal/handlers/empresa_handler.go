package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httpresp"
	"github.com/BruksfildServices01/ponto-inteligente/internal/service"
)

type EmpresaHandler struct {
	companies *service.CompanyService
	logger    *zap.Logger
}

func NewEmpresaHandler(companies *service.CompanyService, logger *zap.Logger) *EmpresaHandler {
	return &EmpresaHandler{companies: companies, logger: logger.Named("empresa_handler")}
}

// GET /api/empresas/cnpj/:cnpj
func (h *EmpresaHandler) BuscarPorCnpj(c *gin.Context) {
	cnpj := c.Param("cnpj")

	company, err := h.companies.FindByCnpj(c.Request.Context(), cnpj)
	if err != nil {
		httperr.Write(c, h.logger, err)
		return
	}
	if company == nil {
		httperr.BadRequest(c, fmt.Sprintf(dto.MsgEmpresaNaoEncontrada, cnpj))
		return
	}

	httpresp.OK(c, dto.NewEmpresaResponse(company))
}
