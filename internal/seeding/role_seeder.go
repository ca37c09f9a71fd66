package seeding

import (
	"context"
	"time"

	"github.com/medical/backend/internal/catalog"
	"github.com/medical/backend/internal/domain/identity"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// RoleSeeder reconciles the role catalog
type RoleSeeder struct {
	entries []catalog.RoleEntry
}

// NewRoleSeeder creates a role seeder for the given catalog
func NewRoleSeeder(c *catalog.Catalog) *RoleSeeder {
	return &RoleSeeder{entries: c.Roles}
}

// Name implements Seeder
func (s *RoleSeeder) Name() string {
	return "roles"
}

// Seed implements Seeder
func (s *RoleSeeder) Seed(ctx context.Context, tx *gorm.DB) (Result, error) {
	return Reconcile(tx.WithContext(ctx), s.entries, Reconciliation[catalog.RoleEntry, models.RoleModel]{
		CatalogKey: func(e catalog.RoleEntry) string { return e.Code },
		ModelKey:   func(m *models.RoleModel) string { return m.Code },
		New: func(e catalog.RoleEntry) (models.RoleModel, error) {
			newRole := identity.NewRole
			if e.System {
				newRole = identity.NewSystemRole
			}
			role, err := newRole(e.Code, e.Name)
			if err != nil {
				return models.RoleModel{}, err
			}
			role.Description = e.Description
			role.SortOrder = e.SortOrder

			var m models.RoleModel
			m.FromDomain(role)
			return m, nil
		},
		// IsEnabled is operator-owned after creation and is deliberately
		// not reconciled.
		Apply: func(e catalog.RoleEntry, m *models.RoleModel) bool {
			if m.Name == e.Name && m.Description == e.Description &&
				m.IsSystemRole == e.System && m.SortOrder == e.SortOrder {
				return false
			}
			m.Name = e.Name
			m.Description = e.Description
			m.IsSystemRole = e.System
			m.SortOrder = e.SortOrder
			m.UpdatedAt = time.Now()
			return true
		},
	})
}
