package lancamento

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
	"github.com/BruksfildServices01/ponto-inteligente/internal/requestid"
	"github.com/BruksfildServices01/ponto-inteligente/internal/service"
)

// Consultar lê lançamentos limitados à empresa de quem chama.
type Consultar struct {
	entries   *service.TimeEntryService
	employees *service.EmployeeService
	logger    *zap.Logger
}

func NewConsultar(entries *service.TimeEntryService, employees *service.EmployeeService, logger *zap.Logger) *Consultar {
	return &Consultar{
		entries:   entries,
		employees: employees,
		logger:    logger.Named("lancamento"),
	}
}

// PorID devolve nil quando o lançamento não existe ou é de outra empresa.
func (uc *Consultar) PorID(ctx context.Context, id uint, caller ponto.Caller) (*models.TimeEntry, error) {
	return ownedEntry(ctx, uc.entries, uc.employees, id, caller)
}

// PorFuncionario devolve página vazia para funcionário de outra empresa, como para um id inexistente.
func (uc *Consultar) PorFuncionario(
	ctx context.Context,
	employeeID uint,
	req ponto.PageRequest,
	caller ponto.Caller,
) (ponto.Page[models.TimeEntry], error) {

	employee, err := uc.employees.FindInCompany(ctx, employeeID, caller.CompanyID)
	if err != nil {
		return ponto.Page[models.TimeEntry]{}, err
	}
	if employee == nil {
		uc.logger.Info("listagem de funcionário fora da empresa",
			zap.Uint("funcionario_id", employeeID),
			zap.Uint("por", caller.EmployeeID),
			requestid.Field(ctx),
		)
		return ponto.Page[models.TimeEntry]{Content: []models.TimeEntry{}, Number: req.Page, Size: req.Size}, nil
	}

	return uc.entries.PageByEmployeeID(ctx, employeeID, req)
}

// ownedEntry busca o lançamento e confere se o dono pertence à empresa de quem chama.
func ownedEntry(
	ctx context.Context,
	entries *service.TimeEntryService,
	employees *service.EmployeeService,
	id uint,
	caller ponto.Caller,
) (*models.TimeEntry, error) {

	entry, err := entries.FindByID(ctx, id)
	if err != nil || entry == nil {
		return nil, err
	}

	owner, err := employees.FindInCompany(ctx, entry.EmployeeID, caller.CompanyID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, nil
	}
	return entry, nil
}
