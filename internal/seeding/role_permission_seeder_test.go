package seeding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medical/backend/internal/catalog"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
)

func grantsCatalog() *catalog.Catalog {
	permissions := catalog.BuildPermissions([]catalog.ResourceEntry{
		{Key: "doctors", Name: "Doctors"},
		{Key: "patients", Name: "Patients"},
	}, nil)
	return &catalog.Catalog{
		Roles: []catalog.RoleEntry{
			{Code: "1", Name: "SuperAdmin", Grants: []string{"*"}},
			{Code: "2", Name: "Admin", Grants: []string{"doctors.*", "files.upload"}},
			{Code: "3", Name: "Business", Grants: []string{"doctors.view", "patients.view"}},
		},
		Permissions: permissions,
	}
}

func TestRolePermissionSeeder_SoftSkipsWithoutPrerequisites(t *testing.T) {
	db := setupSeedDB(t)
	ctx := context.Background()

	res, err := NewRolePermissionSeeder(grantsCatalog()).Seed(ctx, db)
	require.NoError(t, err)
	assert.True(t, res.Empty())

	var count int64
	require.NoError(t, db.Model(&models.RolePermissionModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRolePermissionSeeder_ResolvesGrantPatterns(t *testing.T) {
	db := setupSeedDB(t)
	ctx := context.Background()
	cat := grantsCatalog()

	_, err := NewRoleSeeder(cat).Seed(ctx, db)
	require.NoError(t, err)
	_, err = NewPermissionSeeder(cat, false).Seed(ctx, db)
	require.NoError(t, err)

	res, err := NewRolePermissionSeeder(cat).Seed(ctx, db)
	require.NoError(t, err)
	// SuperAdmin: all 9 (2x4 actions + upload); Admin: 4 doctors + upload; Business: 2
	assert.Equal(t, 16, res.Inserted)

	var superAdmin models.RoleModel
	require.NoError(t, db.Where("code = ?", "1").First(&superAdmin).Error)
	var count int64
	require.NoError(t, db.Model(&models.RolePermissionModel{}).
		Where("role_id = ?", superAdmin.ID).Count(&count).Error)
	assert.EqualValues(t, 9, count)
}

func TestRolePermissionSeeder_GrantsAreMonotonic(t *testing.T) {
	db := setupSeedDB(t)
	ctx := context.Background()
	cat := grantsCatalog()

	_, err := NewRoleSeeder(cat).Seed(ctx, db)
	require.NoError(t, err)
	_, err = NewPermissionSeeder(cat, false).Seed(ctx, db)
	require.NoError(t, err)
	_, err = NewRolePermissionSeeder(cat).Seed(ctx, db)
	require.NoError(t, err)

	// Shrink Business down to one grant and re-run: nothing is revoked
	cat.Roles[2].Grants = []string{"doctors.view"}
	res, err := NewRolePermissionSeeder(cat).Seed(ctx, db)
	require.NoError(t, err)
	assert.True(t, res.Empty())

	var business models.RoleModel
	require.NoError(t, db.Where("code = ?", "3").First(&business).Error)
	var count int64
	require.NoError(t, db.Model(&models.RolePermissionModel{}).
		Where("role_id = ?", business.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
