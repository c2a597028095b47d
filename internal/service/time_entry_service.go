package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
	"github.com/BruksfildServices01/ponto-inteligente/internal/requestid"
)

// TimeEntryCache é o cache por id usado na consulta de um lançamento.
// Get devolve nil, nil quando a chave não existe ou foi marcada como removida.
// Add só grava em chave vazia, e Evict deixa um marcador que Add respeita.
type TimeEntryCache interface {
	Get(ctx context.Context, id uint) (*models.TimeEntry, error)
	Set(ctx context.Context, entry *models.TimeEntry) error
	Add(ctx context.Context, entry *models.TimeEntry) (bool, error)
	Evict(ctx context.Context, id uint) error
}

type TimeEntryService struct {
	repo   ponto.TimeEntryRepository
	cache  TimeEntryCache
	group  singleflight.Group
	logger *zap.Logger
}

// NewTimeEntryService aceita cache nil; nesse caso toda consulta vai ao banco.
func NewTimeEntryService(repo ponto.TimeEntryRepository, cache TimeEntryCache, logger *zap.Logger) *TimeEntryService {
	return &TimeEntryService{
		repo:   repo,
		cache:  cache,
		logger: logger.Named("time_entry_service"),
	}
}

func (s *TimeEntryService) ListByEmployeeID(ctx context.Context, employeeID uint) ([]models.TimeEntry, error) {
	s.logger.Info("buscando lançamentos do funcionário", zap.Uint("funcionario_id", employeeID), requestid.Field(ctx))

	entries, err := s.repo.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return entries, nil
}

func (s *TimeEntryService) PageByEmployeeID(
	ctx context.Context,
	employeeID uint,
	req ponto.PageRequest,
) (ponto.Page[models.TimeEntry], error) {

	s.logger.Info("buscando página de lançamentos do funcionário",
		zap.Uint("funcionario_id", employeeID),
		zap.Int("pagina", req.Page),
		zap.Int("tamanho", req.Size),
		requestid.Field(ctx),
	)

	if req.Page < 0 || req.Size <= 0 {
		return ponto.Page[models.TimeEntry]{}, fmt.Errorf("invalid page request %d/%d", req.Page, req.Size)
	}

	page, err := s.repo.PageByEmployeeID(ctx, employeeID, req)
	if err != nil {
		return page, fmt.Errorf("failed to page time entries: %w", err)
	}
	return page, nil
}

// FindByID consulta o cache antes do banco. Falhas do cache só geram log.
func (s *TimeEntryService) FindByID(ctx context.Context, id uint) (*models.TimeEntry, error) {
	log := s.logger.With(zap.Uint("id", id), requestid.Field(ctx))
	log.Info("buscando lançamento pelo id")

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			log.Warn("falha ao ler cache de lançamento", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	// a leitura compartilhada não herda o cancelamento de quem chegou primeiro
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(strconv.FormatUint(uint64(id), 10), func() (any, error) {
		entry, err := s.repo.FindByID(shared, id)
		if errors.Is(err, ponto.ErrNotFound) {
			return (*models.TimeEntry)(nil), nil
		}
		if err != nil {
			return nil, err
		}
		s.fill(shared, entry)
		return entry, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, fmt.Errorf("failed to find time entry: %w", res.Err)
	}

	entry := res.Val.(*models.TimeEntry)
	if entry == nil {
		return nil, nil
	}
	// quem chegou pelo singleflight recebe uma cópia própria
	cp := *entry
	return &cp, nil
}

// Persist grava o lançamento e atualiza a mesma chave do cache.
func (s *TimeEntryService) Persist(ctx context.Context, entry *models.TimeEntry) (*models.TimeEntry, error) {
	s.logger.Info("persistindo lançamento",
		zap.Uint("funcionario_id", entry.EmployeeID),
		zap.String("tipo", string(entry.Tipo)),
		requestid.Field(ctx),
	)

	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to persist time entry: %w", err)
	}
	s.refresh(ctx, entry)
	return entry, nil
}

// Remove devolve ponto.ErrNotFound quando o id não existe.
func (s *TimeEntryService) Remove(ctx context.Context, id uint) error {
	s.logger.Info("removendo lançamento", zap.Uint("id", id), requestid.Field(ctx))

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ponto.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to remove time entry: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Evict(ctx, id); err != nil {
			s.logger.Warn("falha ao remover lançamento do cache", zap.Uint("id", id), zap.Error(err))
		}
	}
	return nil
}

func (s *TimeEntryService) refresh(ctx context.Context, entry *models.TimeEntry) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, entry); err != nil {
		s.logger.Warn("falha ao gravar lançamento no cache", zap.Uint("id", entry.ID), zap.Error(err))
	}
}

// fill preenche o cache com o que veio do banco sem sobrescrever Persist ou Remove concorrentes.
func (s *TimeEntryService) fill(ctx context.Context, entry *models.TimeEntry) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Add(ctx, entry); err != nil {
		s.logger.Warn("falha ao preencher cache de lançamento", zap.Uint("id", entry.ID), zap.Error(err))
	}
}
