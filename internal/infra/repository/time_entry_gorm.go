package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
)

type TimeEntryGormRepository struct {
	db *gorm.DB
}

func NewTimeEntryGormRepository(db *gorm.DB) *TimeEntryGormRepository {
	return &TimeEntryGormRepository{db: db}
}

func (r *TimeEntryGormRepository) FindByID(ctx context.Context, id uint) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, translate(err)
	}
	return &entry, nil
}

func (r *TimeEntryGormRepository) ListByEmployeeID(ctx context.Context, employeeID uint) ([]models.TimeEntry, error) {
	entries := []models.TimeEntry{}
	if err := r.db.WithContext(ctx).
		Where("funcionario_id = ?", employeeID).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, translate(err)
	}
	return entries, nil
}

func (r *TimeEntryGormRepository) PageByEmployeeID(
	ctx context.Context,
	employeeID uint,
	req ponto.PageRequest,
) (ponto.Page[models.TimeEntry], error) {

	page := ponto.Page[models.TimeEntry]{
		Content: []models.TimeEntry{},
		Number:  req.Page,
		Size:    req.Size,
	}

	base := r.db.WithContext(ctx).
		Model(&models.TimeEntry{}).
		Where("funcionario_id = ?", employeeID)

	if err := base.Session(&gorm.Session{}).Count(&page.TotalElements).Error; err != nil {
		return page, translate(err)
	}
	if page.TotalElements == 0 {
		return page, nil
	}

	sort := req.Sort
	if sort == "" {
		sort = ponto.SortByID
	}

	if err := base.Session(&gorm.Session{}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: string(sort)}, Desc: req.Desc}).
		Limit(req.Size).
		Offset(req.Offset()).
		Find(&page.Content).Error; err != nil {
		return page, translate(err)
	}

	return page, nil
}

func (r *TimeEntryGormRepository) Save(ctx context.Context, entry *models.TimeEntry) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(entry).Error)
}

func (r *TimeEntryGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.TimeEntry{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ponto.ErrNotFound
	}
	return nil
}
