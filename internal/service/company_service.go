// Package service expõe as consultas de negócio sobre empresas, funcionários e lançamentos.
// As buscas devolvem nil sem erro quando nada é encontrado.
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

type CompanyService struct {
	repo   ponto.CompanyRepository
	logger *zap.Logger
}

func NewCompanyService(repo ponto.CompanyRepository, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		repo:   repo,
		logger: logger.Named("company_service"),
	}
}

func (s *CompanyService) FindByCnpj(ctx context.Context, cnpj string) (*models.Company, error) {
	s.logger.Info("buscando empresa pelo CNPJ", zap.String("cnpj", cnpj), requestid.Field(ctx))

	company, err := s.repo.FindByCnpj(ctx, cnpj)
	if errors.Is(err, ponto.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find company by cnpj: %w", err)
	}
	return company, nil
}

func (s *CompanyService) Persist(ctx context.Context, company *models.Company) (*models.Company, error) {
	s.logger.Info("persistindo empresa", zap.String("cnpj", company.Cnpj), requestid.Field(ctx))

	if err := s.repo.Save(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to persist company: %w", err)
	}
	return company, nil
}
