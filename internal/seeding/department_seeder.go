package seeding

import (
	"context"
	"time"

	"github.com/medical/backend/internal/catalog"
	"github.com/medical/backend/internal/domain/hospital"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// DepartmentSeeder reconciles the clinical department catalog
type DepartmentSeeder struct {
	entries []catalog.DepartmentEntry
}

// NewDepartmentSeeder creates a department seeder for the given catalog
func NewDepartmentSeeder(c *catalog.Catalog) *DepartmentSeeder {
	return &DepartmentSeeder{entries: c.Departments}
}

// Name implements Seeder
func (s *DepartmentSeeder) Name() string {
	return "departments"
}

// Seed implements Seeder
func (s *DepartmentSeeder) Seed(ctx context.Context, tx *gorm.DB) (Result, error) {
	return Reconcile(tx.WithContext(ctx), s.entries, Reconciliation[catalog.DepartmentEntry, models.DepartmentModel]{
		CatalogKey: func(e catalog.DepartmentEntry) string { return e.Name },
		ModelKey:   func(m *models.DepartmentModel) string { return m.Name },
		New: func(e catalog.DepartmentEntry) (models.DepartmentModel, error) {
			dept, err := hospital.NewDepartment(e.Name, e.Description)
			if err != nil {
				return models.DepartmentModel{}, err
			}
			dept.SortOrder = e.SortOrder

			var m models.DepartmentModel
			m.FromDomain(dept)
			return m, nil
		},
		Apply: func(e catalog.DepartmentEntry, m *models.DepartmentModel) bool {
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
