package seeding

import (
	"context"
	"time"

	"github.com/medical/backend/internal/catalog"
	"github.com/medical/backend/internal/domain/identity"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// UserTypeSeeder reconciles the user type catalog
type UserTypeSeeder struct {
	entries []catalog.UserTypeEntry
}

// NewUserTypeSeeder creates a user type seeder for the given catalog
func NewUserTypeSeeder(c *catalog.Catalog) *UserTypeSeeder {
	return &UserTypeSeeder{entries: c.UserTypes}
}

// Name implements Seeder
func (s *UserTypeSeeder) Name() string {
	return "user_types"
}

// Seed implements Seeder
func (s *UserTypeSeeder) Seed(ctx context.Context, tx *gorm.DB) (Result, error) {
	return Reconcile(tx.WithContext(ctx), s.entries, Reconciliation[catalog.UserTypeEntry, models.UserTypeModel]{
		CatalogKey: func(e catalog.UserTypeEntry) string { return e.Code },
		ModelKey:   func(m *models.UserTypeModel) string { return m.Code },
		New: func(e catalog.UserTypeEntry) (models.UserTypeModel, error) {
			userType, err := identity.NewUserType(e.Code, e.Name)
			if err != nil {
				return models.UserTypeModel{}, err
			}
			userType.Description = e.Description
			userType.SortOrder = e.SortOrder

			var m models.UserTypeModel
			m.FromDomain(userType)
			return m, nil
		},
		Apply: func(e catalog.UserTypeEntry, m *models.UserTypeModel) bool {
			if m.Name == e.Name && m.Description == e.Description && m.SortOrder == e.SortOrder {
				return false
			}
			m.Name = e.Name
			m.Description = e.Description
			m.SortOrder = e.SortOrder
			m.UpdatedAt = time.Now()
			return true
		},
	})
}
