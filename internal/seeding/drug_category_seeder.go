package seeding

import (
	"context"
	"time"

	"github.com/medical/backend/internal/catalog"
	"github.com/medical/backend/internal/domain/pharmacy"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// DrugCategorySeeder reconciles the drug category catalog
type DrugCategorySeeder struct {
	entries []catalog.DrugCategoryEntry
}

// NewDrugCategorySeeder creates a drug category seeder for the given catalog
func NewDrugCategorySeeder(c *catalog.Catalog) *DrugCategorySeeder {
	return &DrugCategorySeeder{entries: c.DrugCategories}
}

// Name implements Seeder
func (s *DrugCategorySeeder) Name() string {
	return "drug_categories"
}

// Seed implements Seeder
func (s *DrugCategorySeeder) Seed(ctx context.Context, tx *gorm.DB) (Result, error) {
	return Reconcile(tx.WithContext(ctx), s.entries, Reconciliation[catalog.DrugCategoryEntry, models.DrugCategoryModel]{
		CatalogKey: func(e catalog.DrugCategoryEntry) string { return e.Name },
		ModelKey:   func(m *models.DrugCategoryModel) string { return m.Name },
		New: func(e catalog.DrugCategoryEntry) (models.DrugCategoryModel, error) {
			category, err := pharmacy.NewDrugCategory(e.Name, e.Description)
			if err != nil {
				return models.DrugCategoryModel{}, err
			}
			category.SortOrder = e.SortOrder

			var m models.DrugCategoryModel
			m.FromDomain(category)
			return m, nil
		},
		Apply: func(e catalog.DrugCategoryEntry, m *models.DrugCategoryModel) bool {
			if m.Description == e.Description && m.SortOrder == e.SortOrder {
				return false
			}
			m.Description = e.Description
			m.SortOrder = e.SortOrder
			m.UpdatedAt = time.Now()
			return true
		},
	})
}
