package seeding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medical/backend/internal/catalog"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
)

func roleCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Roles: []catalog.RoleEntry{
			{Code: "1", Name: "SuperAdmin", Description: "Full access", System: true, SortOrder: 1},
			{Code: "2", Name: "Admin", Description: "Administration", System: true, SortOrder: 2},
			{Code: "3", Name: "Business", Description: "Read-only", System: true, SortOrder: 3},
		},
	}
}

func TestRoleSeeder_SeedAndReseed(t *testing.T) {
	db := setupSeedDB(t)
	ctx := context.Background()
	seeder := NewRoleSeeder(roleCatalog())

	res, err := seeder.Seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Inserted)

	// Unchanged catalog: zero writes
	res, err = seeder.Seed(ctx, db)
	require.NoError(t, err)
	assert.True(t, res.Empty())

	// Change one description, re-run: exactly one update, no new rows
	cat := roleCatalog()
	cat.Roles[1].Description = "Day-to-day administration"
	seeder = NewRoleSeeder(cat)

	var before models.RoleModel
	require.NoError(t, db.Where("code = ?", "2").First(&before).Error)

	res, err = seeder.Seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 1, res.Updated)

	var after models.RoleModel
	require.NoError(t, db.Where("code = ?", "2").First(&after).Error)
	assert.Equal(t, "Day-to-day administration", after.Description)
	assert.Equal(t, before.ID, after.ID)
	assert.WithinDuration(t, before.CreatedAt, after.CreatedAt, time.Millisecond)

	var count int64
	require.NoError(t, db.Model(&models.RoleModel{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestRoleSeeder_DoesNotReconcileIsEnabled(t *testing.T) {
	db := setupSeedDB(t)
	ctx := context.Background()
	seeder := NewRoleSeeder(roleCatalog())

	_, err := seeder.Seed(ctx, db)
	require.NoError(t, err)

	// An operator disables a role out of band
	require.NoError(t, db.Model(&models.RoleModel{}).
		Where("code = ?", "3").
		Update("is_enabled", false).Error)

	res, err := seeder.Seed(ctx, db)
	require.NoError(t, err)
	assert.True(t, res.Empty())

	var row models.RoleModel
	require.NoError(t, db.Where("code = ?", "3").First(&row).Error)
	assert.False(t, row.IsEnabled)
}
