package seeding

import (
	"context"
	"errors"
	"fmt"

	"github.com/medical/backend/internal/catalog"
	"github.com/medical/backend/internal/domain/identity"
	"github.com/medical/backend/internal/domain/pharmacy"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// DrugSeeder writes the drug templates declared under each category
// catalog entry. It is write-once and needs both the drug categories and
// the bootstrap admin to exist already; when either is missing it
// soft-skips so the drugs appear on a later run.
type DrugSeeder struct {
	entries []catalog.DrugCategoryEntry
}

// NewDrugSeeder creates a drug seeder for the given catalog
func NewDrugSeeder(c *catalog.Catalog) *DrugSeeder {
	return &DrugSeeder{entries: c.DrugCategories}
}

// Name implements Seeder
func (s *DrugSeeder) Name() string {
	return "drugs"
}

// Seed implements Seeder
func (s *DrugSeeder) Seed(ctx context.Context, tx *gorm.DB) (Result, error) {
	tx = tx.WithContext(ctx)

	empty, err := tableIsEmpty(tx, &models.DrugModel{})
	if err != nil {
		return Result{}, err
	}
	if !empty {
		return Result{}, nil
	}

	var admin models.UserModel
	err = tx.Where("username = ?", identity.BootstrapAdminUsername).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Result{}, nil
	}
	if err != nil {
		return Result{}, err
	}

	var categories []models.DrugCategoryModel
	if err := tx.Find(&categories).Error; err != nil {
		return Result{}, err
	}
	if len(categories) == 0 {
		return Result{}, nil
	}

	byName := make(map[string]models.DrugCategoryModel, len(categories))
	for _, c := range categories {
		byName[c.Name] = c
	}

	var rows []models.DrugModel
	for _, entry := range s.entries {
		category, ok := byName[entry.Name]
		if !ok {
			continue
		}
		for _, t := range entry.Drugs {
			price, err := t.ParsePrice()
			if err != nil {
				return Result{}, fmt.Errorf("invalid price for drug %q: %w", t.Name, err)
			}
			drug, err := pharmacy.NewDrug(category.ID, t.Name, price)
			if err != nil {
				return Result{}, fmt.Errorf("invalid drug template %q: %w", t.Name, err)
			}
			adminID := admin.ID
			drug.Specification = t.Specification
			drug.Manufacturer = t.Manufacturer
			drug.Stock = t.Stock
			drug.Unit = t.Unit
			drug.CreatedBy = &adminID

			var row models.DrugModel
			row.FromDomain(drug)
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return Result{}, nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return Result{}, err
	}
	return Result{Inserted: len(rows)}, nil
}
