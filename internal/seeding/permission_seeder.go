package seeding

import (
	"context"
	"time"

	"github.com/medical/backend/internal/catalog"
	"github.com/medical/backend/internal/domain/identity"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// PermissionSeeder reconciles the expanded permission catalog. When legacy
// name migration is enabled it additionally rewrites display names of rows
// whose resource segment matches the legacy-name table; deployments that
// customized permission display names should leave it disabled.
type PermissionSeeder struct {
	entries            []catalog.PermissionEntry
	migrateLegacyNames bool
}

// NewPermissionSeeder creates a permission seeder for the given catalog
func NewPermissionSeeder(c *catalog.Catalog, migrateLegacyNames bool) *PermissionSeeder {
	return &PermissionSeeder{
		entries:            c.Permissions,
		migrateLegacyNames: migrateLegacyNames,
	}
}

// Name implements Seeder
func (s *PermissionSeeder) Name() string {
	return "permissions"
}

// Seed implements Seeder
func (s *PermissionSeeder) Seed(ctx context.Context, tx *gorm.DB) (Result, error) {
	res, err := Reconcile(tx.WithContext(ctx), s.entries, Reconciliation[catalog.PermissionEntry, models.PermissionModel]{
		CatalogKey: func(e catalog.PermissionEntry) string { return e.Code },
		ModelKey:   func(m *models.PermissionModel) string { return m.Code },
		New: func(e catalog.PermissionEntry) (models.PermissionModel, error) {
			return models.PermissionModel{
				BaseModel:   newBaseModel(),
				Code:        e.Code,
				Resource:    e.Resource,
				Action:      e.Action,
				Name:        e.Name,
				Description: e.Description,
				MenuURL:     e.MenuURL,
				Type:        e.Type,
				SortOrder:   e.SortOrder,
			}, nil
		},
		Apply: func(e catalog.PermissionEntry, m *models.PermissionModel) bool {
			if m.Name == e.Name && m.Description == e.Description &&
				m.MenuURL == e.MenuURL && m.Type == e.Type && m.SortOrder == e.SortOrder {
				return false
			}
			m.Name = e.Name
			m.Description = e.Description
			m.MenuURL = e.MenuURL
			m.Type = e.Type
			m.SortOrder = e.SortOrder
			m.UpdatedAt = time.Now()
			return true
		},
	})
	if err != nil {
		return Result{}, err
	}

	if s.migrateLegacyNames {
		legacyRes, err := s.migrateLegacy(ctx, tx)
		if err != nil {
			return Result{}, err
		}
		res = res.Add(legacyRes)
	}

	return res, nil
}

// migrateLegacy is a second pass over all persisted permissions: any row
// whose resource segment appears in the legacy-name table has its display
// name and description rewritten to the canonical form. One-directional;
// rows already canonical are untouched.
func (s *PermissionSeeder) migrateLegacy(ctx context.Context, tx *gorm.DB) (Result, error) {
	var rows []models.PermissionModel
	if err := tx.WithContext(ctx).Find(&rows).Error; err != nil {
		return Result{}, err
	}

	var updated int
	for i := range rows {
		segment := identity.ResourceSegment(rows[i].Code)
		name, description, ok := catalog.LegacyDisplayName(segment)
		if !ok {
			continue
		}
		if rows[i].Name == name && rows[i].Description == description {
			continue
		}
		rows[i].Name = name
		rows[i].Description = description
		rows[i].UpdatedAt = time.Now()
		if err := tx.WithContext(ctx).Save(&rows[i]).Error; err != nil {
			return Result{}, err
		}
		updated++
	}

	return Result{Updated: updated}, nil
}
