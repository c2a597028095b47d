package funcionario

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/audit"
	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
	"github.com/BruksfildServices01/ponto-inteligente/internal/password"
	"github.com/BruksfildServices01/ponto-inteligente/internal/requestid"
	"github.com/BruksfildServices01/ponto-inteligente/internal/service"
)

type Auditor interface {
	Dispatch(ev audit.Event)
}

type Atualizar struct {
	employees *service.EmployeeService
	audit     Auditor
	logger    *zap.Logger
}

func NewAtualizar(employees *service.EmployeeService, auditor Auditor, logger *zap.Logger) *Atualizar {
	return &Atualizar{
		employees: employees,
		audit:     auditor,
		logger:    logger.Named("funcionario"),
	}
}

// Execute só altera funcionários da empresa de quem chama. ROLE_USUARIO altera apenas o próprio cadastro.
func (uc *Atualizar) Execute(
	ctx context.Context,
	id uint,
	req dto.FuncionarioUpdateRequest,
	caller ponto.Caller,
) (*models.Employee, error) {

	uc.logger.Info("atualizando funcionário", zap.Uint("id", id), zap.Uint("por", caller.EmployeeID), requestid.Field(ctx))

	errs := dto.Validate(req)

	var employee *models.Employee
	if caller.IsAdmin() || caller.EmployeeID == id {
		found, err := uc.employees.FindInCompany(ctx, id, caller.CompanyID)
		if err != nil {
			return nil, err
		}
		employee = found
	}
	if employee == nil {
		return nil, httperr.Validation(append(errs, dto.MsgFuncionarioNaoEncontrado)...)
	}

	if req.Email != employee.Email {
		other, err := uc.employees.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			errs = append(errs, dto.MsgFuncionarioEmailExiste)
		}
	}

	errs = append(errs, req.ApplyTo(employee)...)
	if len(errs) > 0 {
		return nil, httperr.Validation(errs...)
	}

	if req.Senha != nil && *req.Senha != "" {
		hashed, err := password.Hash(req.Senha)
		if err != nil {
			return nil, err
		}
		employee.Senha = *hashed
	}

	if _, err := uc.employees.Persist(ctx, employee); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID:  &employee.CompanyID,
		EmployeeID: &caller.EmployeeID,
		Action:     audit.ActionEmployeeUpdated,
		Entity:     "funcionario",
		EntityID:   &employee.ID,
	})
	return employee, nil
}
