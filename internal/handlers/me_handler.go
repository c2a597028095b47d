package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httpresp"
	"github.com/BruksfildServices01/ponto-inteligente/internal/middleware"
	"github.com/BruksfildServices01/ponto-inteligente/internal/service"
)

type MeHandler struct {
	employees *service.EmployeeService
	logger    *zap.Logger
}

func NewMeHandler(employees *service.EmployeeService, logger *zap.Logger) *MeHandler {
	return &MeHandler{employees: employees, logger: logger.Named("me_handler")}
}

// GET /api/me
func (h *MeHandler) GetMe(c *gin.Context) {
	employee, err := h.employees.FindByID(c.Request.Context(), middleware.EmployeeID(c))
	if err != nil {
		httperr.Write(c, h.logger, err)
		return
	}
	if employee == nil {
		// token válido de um funcionário que não existe mais
		httperr.Unauthorized(c, dto.MsgCredenciaisInvalidas)
		return
	}

	httpresp.OK(c, dto.NewFuncionarioResponse(employee))
}
