package lancamento

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/audit"
	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/dto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/httperr"
	"github.com/BruksfildServices01/ponto-inteligente/internal/requestid"
	"github.com/BruksfildServices01/ponto-inteligente/internal/service"
)

type Auditor interface {
	Dispatch(ev audit.Event)
}

type Remover struct {
	entries   *service.TimeEntryService
	employees *service.EmployeeService
	audit     Auditor
	logger    *zap.Logger
}

func NewRemover(
	entries *service.TimeEntryService,
	employees *service.EmployeeService,
	auditor Auditor,
	logger *zap.Logger,
) *Remover {
	return &Remover{
		entries:   entries,
		employees: employees,
		audit:     auditor,
		logger:    logger.Named("lancamento"),
	}
}

// Execute só remove lançamentos de funcionários da empresa de quem chama.
func (uc *Remover) Execute(ctx context.Context, id uint, caller ponto.Caller) error {
	uc.logger.Info("removendo lançamento", zap.Uint("id", id), zap.Uint("por", caller.EmployeeID), requestid.Field(ctx))

	entry, err := ownedEntry(ctx, uc.entries, uc.employees, id, caller)
	if err != nil {
		return err
	}
	notFound := httperr.Validation(fmt.Sprintf(dto.MsgErroRemoverLancamento, id))
	if entry == nil {
		return notFound
	}

	if err := uc.entries.Remove(ctx, id); err != nil {
		if errors.Is(err, ponto.ErrNotFound) {
			return notFound
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID:  &caller.CompanyID,
		EmployeeID: &caller.EmployeeID,
		Action:     audit.ActionTimeEntryRemoved,
		Entity:     "lancamento",
		EntityID:   &id,
		Metadata: map[string]any{
			"funcionarioId": entry.EmployeeID,
			"tipo":          entry.Tipo,
		},
	})
	return nil
}
