package ponto

import (
	"context"

	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
)

type CompanyRepository interface {
	FindByCnpj(ctx context.Context, cnpj string) (*models.Company, error)
	Save(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id uint) error
}

type EmployeeRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Employee, error)
	FindByCpf(ctx context.Context, cpf string) (*models.Employee, error)
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)
	FindByCpfOrEmail(ctx context.Context, cpf, email string) (*models.Employee, error)
	Save(ctx context.Context, employee *models.Employee) error
}

type TimeEntryRepository interface {
	FindByID(ctx context.Context, id uint) (*models.TimeEntry, error)
	ListByEmployeeID(ctx context.Context, employeeID uint) ([]models.TimeEntry, error)
	PageByEmployeeID(ctx context.Context, employeeID uint, req PageRequest) (Page[models.TimeEntry], error)
	Save(ctx context.Context, entry *models.TimeEntry) error
	Delete(ctx context.Context, id uint) error
}

// Store agrupa os repositórios que precisam participar da mesma transação.
type Store interface {
	Companies() CompanyRepository
	Employees() EmployeeRepository
	TimeEntries() TimeEntryRepository

	// WithTransaction executa fn com repositórios ligados a uma única transação.
	// Qualquer erro devolvido por fn desfaz todas as escritas.
	WithTransaction(ctx context.Context, fn func(tx Store) error) error
}
