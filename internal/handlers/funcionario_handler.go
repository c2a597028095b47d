package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httpresp"
	"github.com/BruksfildServices01/ponto-inteligente/internal/middleware"
	"github.com/BruksfildServices01/ponto-inteligente/internal/service"
	"github.com/BruksfildServices01/ponto-inteligente/internal/usecase/funcionario"
)

type FuncionarioHandler struct {
	employees *service.EmployeeService
	atualizar *funcionario.Atualizar
	logger    *zap.Logger
}

func NewFuncionarioHandler(
	employees *service.EmployeeService,
	atualizar *funcionario.Atualizar,
	logger *zap.Logger,
) *FuncionarioHandler {
	return &FuncionarioHandler{
		employees: employees,
		atualizar: atualizar,
		logger:    logger.Named("funcionario_handler"),
	}
}

// GET /api/funcionarios/:id (apenas da empresa do token)
func (h *FuncionarioHandler) BuscarPorID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	employee, err := h.employees.FindInCompany(c.Request.Context(), id, middleware.Caller(c).CompanyID)
	if err != nil {
		httperr.Write(c, h.logger, err)
		return
	}
	if employee == nil {
		httperr.BadRequest(c, dto.MsgFuncionarioNaoEncontrado)
		return
	}

	httpresp.OK(c, dto.NewFuncionarioResponse(employee))
}

// PUT /api/funcionarios/:id
func (h *FuncionarioHandler) Atualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.FuncionarioUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.atualizar.Execute(c.Request.Context(), id, req, middleware.Caller(c))
	if err != nil {
		httperr.Write(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.NewFuncionarioResponse(employee))
}
