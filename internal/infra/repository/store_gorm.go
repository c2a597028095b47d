package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Companies() ponto.CompanyRepository {
	return NewCompanyGormRepository(s.db)
}

func (s *GormStore) Employees() ponto.EmployeeRepository {
	return NewEmployeeGormRepository(s.db)
}

func (s *GormStore) TimeEntries() ponto.TimeEntryRepository {
	return NewTimeEntryGormRepository(s.db)
}

func (s *GormStore) WithTransaction(ctx context.Context, fn func(tx ponto.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
