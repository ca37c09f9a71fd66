package seeding

import (
	"context"
	"time"

	"github.com/medical/backend/internal/catalog"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// RolePermissionSeeder grants catalog permissions to roles. Grants are
// monotonic: pairs are only ever inserted, never updated or removed, so
// permissions granted out of band survive re-seeding.
type RolePermissionSeeder struct {
	roles       []catalog.RoleEntry
	permissions []catalog.PermissionEntry
}

// NewRolePermissionSeeder creates a role-permission seeder for the given catalog
func NewRolePermissionSeeder(c *catalog.Catalog) *RolePermissionSeeder {
	return &RolePermissionSeeder{
		roles:       c.Roles,
		permissions: c.Permissions,
	}
}

// Name implements Seeder
func (s *RolePermissionSeeder) Name() string {
	return "role_permissions"
}

// Seed implements Seeder. When roles or permissions have not been seeded yet
// the seeder skips without error so a partial deployment can still boot.
func (s *RolePermissionSeeder) Seed(ctx context.Context, tx *gorm.DB) (Result, error) {
	tx = tx.WithContext(ctx)

	roleIDs, err := loadIDsByCode(tx, &models.RoleModel{})
	if err != nil {
		return Result{}, err
	}
	permissionIDs, err := loadIDsByCode(tx, &models.PermissionModel{})
	if err != nil {
		return Result{}, err
	}
	if len(roleIDs) == 0 || len(permissionIDs) == 0 {
		return Result{}, nil
	}

	now := time.Now()
	var want []models.RolePermissionModel
	for _, role := range s.roles {
		roleID, ok := roleIDs[role.Code]
		if !ok {
			continue
		}
		for _, code := range catalog.ResolveGrants(role.Grants, s.permissions) {
			permissionID, ok := permissionIDs[code]
			if !ok {
				continue
			}
			want = append(want, models.RolePermissionModel{
				RoleID:       roleID,
				PermissionID: permissionID,
				CreatedAt:    now,
			})
		}
	}

	return ReconcileRelations(tx, want, func(m *models.RolePermissionModel) RelationKey {
		return RelationKey{OwnerID: m.RoleID, TargetID: m.PermissionID}
	})
}
