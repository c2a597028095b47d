package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
	"github.com/BruksfildServices01/ponto-inteligente/internal/requestid"
)

type EmployeeService struct {
	repo   ponto.EmployeeRepository
	logger *zap.Logger
}

func NewEmployeeService(repo ponto.EmployeeRepository, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		repo:   repo,
		logger: logger.Named("employee_service"),
	}
}

func (s *EmployeeService) FindByCpf(ctx context.Context, cpf string) (*models.Employee, error) {
	s.logger.Info("buscando funcionário pelo CPF", zap.String("cpf", cpf), requestid.Field(ctx))
	return absent(s.repo.FindByCpf(ctx, cpf))
}

func (s *EmployeeService) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	s.logger.Info("buscando funcionário pelo email", zap.String("email", email), requestid.Field(ctx))
	return absent(s.repo.FindByEmail(ctx, email))
}

func (s *EmployeeService) FindByCpfOrEmail(ctx context.Context, cpf, email string) (*models.Employee, error) {
	s.logger.Info("buscando funcionário pelo CPF ou email",
		zap.String("cpf", cpf),
		zap.String("email", email),
		requestid.Field(ctx),
	)
	return absent(s.repo.FindByCpfOrEmail(ctx, cpf, email))
}

func (s *EmployeeService) FindByID(ctx context.Context, id uint) (*models.Employee, error) {
	s.logger.Info("buscando funcionário pelo id", zap.Uint("id", id), requestid.Field(ctx))
	return absent(s.repo.FindByID(ctx, id))
}

// FindInCompany trata funcionário de outra empresa como ausente.
func (s *EmployeeService) FindInCompany(ctx context.Context, id, companyID uint) (*models.Employee, error) {
	employee, err := s.FindByID(ctx, id)
	if err != nil || employee == nil {
		return nil, err
	}
	if employee.CompanyID != companyID {
		s.logger.Warn("funcionário de outra empresa",
			zap.Uint("id", id),
			zap.Uint("empresa_id", companyID),
			requestid.Field(ctx),
		)
		return nil, nil
	}
	return employee, nil
}

func (s *EmployeeService) Persist(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	s.logger.Info("persistindo funcionário",
		zap.String("cpf", employee.Cpf),
		zap.Uint("empresa_id", employee.CompanyID),
		requestid.Field(ctx),
	)

	if err := s.repo.Save(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to persist employee: %w", err)
	}
	return employee, nil
}

// absent troca ErrNotFound por ausência.
func absent[T any](v *T, err error) (*T, error) {
	if errors.Is(err, ponto.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
