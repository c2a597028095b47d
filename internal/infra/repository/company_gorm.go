package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
)

type CompanyGormRepository struct {
	db *gorm.DB
}

func NewCompanyGormRepository(db *gorm.DB) *CompanyGormRepository {
	return &CompanyGormRepository{db: db}
}

func (r *CompanyGormRepository) FindByCnpj(ctx context.Context, cnpj string) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).
		Where("cnpj = ?", cnpj).
		First(&company).Error; err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

func (r *CompanyGormRepository) Save(ctx context.Context, company *models.Company) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(company).Error)
}

// Delete remove a empresa; os funcionários saem pela FK ON DELETE CASCADE.
func (r *CompanyGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Company{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ponto.ErrNotFound
	}
	return nil
}
