package seeding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medical/backend/internal/domain/identity"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
)

const testAdminPassword = "admin123456"

func TestAdminSeeder_CreatesBootstrapAccount(t *testing.T) {
	db := setupSeedDB(t)
	ctx := context.Background()

	res, err := NewAdminSeeder(testAdminPassword).Seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)

	var row models.UserModel
	require.NoError(t, db.Where("username = ?", identity.BootstrapAdminUsername).First(&row).Error)
	assert.True(t, row.IsActive)
	assert.Equal(t, identity.UserTypeAdmin, row.UserTypeCode)
	assert.True(t, row.ToDomain().VerifyPassword(testAdminPassword))

	// Second run against a healthy account writes nothing
	res, err = NewAdminSeeder(testAdminPassword).Seed(ctx, db)
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestAdminSeeder_HealsDeactivatedAccount(t *testing.T) {
	db := setupSeedDB(t)
	ctx := context.Background()

	role := models.RoleModel{BaseModel: newBaseModel(), Code: identity.RoleCodeSuperAdmin, Name: "SuperAdmin"}
	require.NoError(t, db.Create(&role).Error)

	_, err := NewAdminSeeder(testAdminPassword).Seed(ctx, db)
	require.NoError(t, err)

	// Deactivate out of band
	require.NoError(t, db.Model(&models.UserModel{}).
		Where("username = ?", identity.BootstrapAdminUsername).
		Update("is_active", false).Error)

	res, err := NewAdminSeeder(testAdminPassword).Seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)

	var row models.UserModel
	require.NoError(t, db.Where("username = ?", identity.BootstrapAdminUsername).First(&row).Error)
	assert.True(t, row.IsActive)

	// A third run changes nothing and does not duplicate the role grant
	res, err = NewAdminSeeder(testAdminPassword).Seed(ctx, db)
	require.NoError(t, err)
	assert.True(t, res.Empty())

	var relations int64
	require.NoError(t, db.Model(&models.UserRoleModel{}).
		Where("user_id = ? AND role_id = ?", row.ID, role.ID).
		Count(&relations).Error)
	assert.EqualValues(t, 1, relations)
}

func TestAdminSeeder_RewritesChangedCredential(t *testing.T) {
	db := setupSeedDB(t)
	ctx := context.Background()

	_, err := NewAdminSeeder(testAdminPassword).Seed(ctx, db)
	require.NoError(t, err)

	// Someone changed the credential directly in the store
	changed, err := identity.HashPassword("something-else-1")
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.UserModel{}).
		Where("username = ?", identity.BootstrapAdminUsername).
		Update("password_hash", changed).Error)

	res, err := NewAdminSeeder(testAdminPassword).Seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)

	var row models.UserModel
	require.NoError(t, db.Where("username = ?", identity.BootstrapAdminUsername).First(&row).Error)
	assert.True(t, row.ToDomain().VerifyPassword(testAdminPassword))
}

func TestAdminSeeder_GrantsSuperAdminWhenRoleAppearsLater(t *testing.T) {
	db := setupSeedDB(t)
	ctx := context.Background()

	// First run with no roles seeded: account created, no grant, no error
	res, err := NewAdminSeeder(testAdminPassword).Seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)

	role := models.RoleModel{BaseModel: newBaseModel(), Code: identity.RoleCodeSuperAdmin, Name: "SuperAdmin"}
	require.NoError(t, db.Create(&role).Error)

	// Next run picks up the grant
	res, err = NewAdminSeeder(testAdminPassword).Seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)

	var relations int64
	require.NoError(t, db.Model(&models.UserRoleModel{}).Count(&relations).Error)
	assert.EqualValues(t, 1, relations)
}
