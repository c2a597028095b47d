package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/config"
	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httpresp"
	"github.com/BruksfildServices01/ponto-inteligente/internal/middleware"
	"github.com/BruksfildServices01/ponto-inteligente/internal/password"
	"github.com/BruksfildServices01/ponto-inteligente/internal/requestid"
	"github.com/BruksfildServices01/ponto-inteligente/internal/service"
)

type AuthHandler struct {
	employees *service.EmployeeService
	config    *config.Config
	logger    *zap.Logger
}

func NewAuthHandler(employees *service.EmployeeService, cfg *config.Config, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{employees: employees, config: cfg, logger: logger.Named("auth_handler")}
}

// POST /auth
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if errs := dto.Validate(req); len(errs) > 0 {
		httperr.BadRequest(c, errs...)
		return
	}

	login := strings.TrimSpace(req.Email)

	// o login aceita e-mail ou CPF
	employee, err := h.employees.FindByCpfOrEmail(c.Request.Context(), login, login)
	if err != nil {
		httperr.Write(c, h.logger, err)
		return
	}
	if employee == nil {
		httperr.Unauthorized(c, dto.MsgCredenciaisInvalidas)
		return
	}

	ok, err := password.Matches(employee.Senha, req.Senha)
	if err != nil {
		h.logger.Warn("stored password hash is unreadable",
			zap.Uint("funcionario_id", employee.ID),
			requestid.Field(c.Request.Context()),
		)
	}
	if !ok {
		httperr.Unauthorized(c, dto.MsgCredenciaisInvalidas)
		return
	}

	token, err := middleware.GenerateToken(h.config, employee)
	if err != nil {
		httperr.Write(c, h.logger, err)
		return
	}

	httpresp.OK(c, dto.TokenResponse{Token: token})
}
