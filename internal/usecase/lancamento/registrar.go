package lancamento

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
	"github.com/BruksfildServices01/ponto-inteligente/internal/requestid"
	"github.com/BruksfildServices01/ponto-inteligente/internal/service"
)

// Registrar cria e altera lançamentos de funcionários da empresa de quem chama.
// A alteração mantém o funcionário dono do lançamento.
type Registrar struct {
	entries   *service.TimeEntryService
	employees *service.EmployeeService
	logger    *zap.Logger
}

func NewRegistrar(
	entries *service.TimeEntryService,
	employees *service.EmployeeService,
	logger *zap.Logger,
) *Registrar {
	return &Registrar{
		entries:   entries,
		employees: employees,
		logger:    logger.Named("lancamento"),
	}
}

func (uc *Registrar) Create(ctx context.Context, req dto.LancamentoRequest, caller ponto.Caller) (*models.TimeEntry, error) {
	uc.logger.Info("adicionando lançamento", zap.String("tipo", req.Tipo), zap.Uint("por", caller.EmployeeID), requestid.Field(ctx))

	errs, err := uc.validate(ctx, req, caller)
	if err != nil {
		return nil, err
	}

	entry := &models.TimeEntry{}
	errs = append(errs, req.ApplyTo(entry)...)
	if len(errs) > 0 {
		return nil, httperr.Validation(errs...)
	}

	entry.EmployeeID = *req.FuncionarioID
	return uc.entries.Persist(ctx, entry)
}

func (uc *Registrar) Update(
	ctx context.Context,
	id uint,
	req dto.LancamentoRequest,
	caller ponto.Caller,
) (*models.TimeEntry, error) {

	uc.logger.Info("atualizando lançamento", zap.Uint("id", id), zap.Uint("por", caller.EmployeeID), requestid.Field(ctx))

	errs, err := uc.validate(ctx, req, caller)
	if err != nil {
		return nil, err
	}

	entry, err := ownedEntry(ctx, uc.entries, uc.employees, id, caller)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		errs = append(errs, dto.MsgLancamentoNaoEncontrado)
		entry = &models.TimeEntry{}
	}

	errs = append(errs, req.ApplyTo(entry)...)
	if len(errs) > 0 {
		return nil, httperr.Validation(errs...)
	}

	return uc.entries.Persist(ctx, entry)
}

func (uc *Registrar) validate(ctx context.Context, req dto.LancamentoRequest, caller ponto.Caller) ([]string, error) {
	errs := dto.Validate(req)

	if req.FuncionarioID == nil {
		return append(errs, dto.MsgFuncionarioNaoInformado), nil
	}

	employee, err := uc.employees.FindInCompany(ctx, *req.FuncionarioID, caller.CompanyID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		errs = append(errs, dto.MsgFuncionarioIDInexistente)
	}
	return errs, nil
}
