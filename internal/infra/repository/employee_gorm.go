package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
)

type EmployeeGormRepository struct {
	db *gorm.DB
}

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

func (r *EmployeeGormRepository) FindByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		return nil, translate(err)
	}
	return &employee, nil
}

func (r *EmployeeGormRepository) FindByCpf(ctx context.Context, cpf string) (*models.Employee, error) {
	return r.findOne(ctx, "cpf = ?", cpf)
}

func (r *EmployeeGormRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *EmployeeGormRepository) FindByCpfOrEmail(
	ctx context.Context,
	cpf string,
	email string,
) (*models.Employee, error) {
	return r.findOne(ctx, "cpf = ? OR email = ?", cpf, email)
}

func (r *EmployeeGormRepository) findOne(ctx context.Context, query string, args ...any) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("id ASC").
		First(&employee).Error; err != nil {
		return nil, translate(err)
	}
	return &employee, nil
}

func (r *EmployeeGormRepository) Save(ctx context.Context, employee *models.Employee) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(employee).Error)
}
