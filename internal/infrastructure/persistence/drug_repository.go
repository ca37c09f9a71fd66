package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/medical/backend/internal/domain/pharmacy"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDrugRepository implements drug and drug category queries using GORM
type GormDrugRepository struct {
	db *gorm.DB
}

// NewGormDrugRepository creates a new GormDrugRepository
func NewGormDrugRepository(db *gorm.DB) *GormDrugRepository {
	return &GormDrugRepository{db: db}
}

// FindAllCategories returns all drug categories ordered for display
func (r *GormDrugRepository) FindAllCategories(ctx context.Context) ([]*pharmacy.DrugCategory, error) {
	var rows []models.DrugCategoryModel
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC, name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	categories := make([]*pharmacy.DrugCategory, len(rows))
	for i := range rows {
		categories[i] = rows[i].ToDomain()
	}
	return categories, nil
}

// FindAll returns all drugs
func (r *GormDrugRepository) FindAll(ctx context.Context) ([]*pharmacy.Drug, error) {
	var rows []models.DrugModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	drugs := make([]*pharmacy.Drug, len(rows))
	for i := range rows {
		drugs[i] = rows[i].ToDomain()
	}
	return drugs, nil
}

// FindByCategory returns all drugs in one category
func (r *GormDrugRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*pharmacy.Drug, error) {
	var rows []models.DrugModel
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	drugs := make([]*pharmacy.Drug, len(rows))
	for i := range rows {
		drugs[i] = rows[i].ToDomain()
	}
	return drugs, nil
}
