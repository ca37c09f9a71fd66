package seeding

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medical/backend/internal/catalog"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
)

func userTypeReconciliation() Reconciliation[catalog.UserTypeEntry, models.UserTypeModel] {
	return Reconciliation[catalog.UserTypeEntry, models.UserTypeModel]{
		CatalogKey: func(e catalog.UserTypeEntry) string { return e.Code },
		ModelKey:   func(m *models.UserTypeModel) string { return m.Code },
		New: func(e catalog.UserTypeEntry) (models.UserTypeModel, error) {
			return models.UserTypeModel{
				BaseModel:   newBaseModel(),
				Code:        e.Code,
				Name:        e.Name,
				Description: e.Description,
				SortOrder:   e.SortOrder,
			}, nil
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
	}
}

func TestReconcile_InsertsMissingRows(t *testing.T) {
	db := setupSeedDB(t)
	entries := []catalog.UserTypeEntry{
		{Code: "patient", Name: "Patient", SortOrder: 1},
		{Code: "doctor", Name: "Doctor", SortOrder: 2},
	}

	res, err := Reconcile(db, entries, userTypeReconciliation())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Inserted)
	assert.Equal(t, 0, res.Updated)

	var count int64
	require.NoError(t, db.Model(&models.UserTypeModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestReconcile_SecondRunWritesNothing(t *testing.T) {
	db := setupSeedDB(t)
	entries := []catalog.UserTypeEntry{
		{Code: "patient", Name: "Patient", SortOrder: 1},
	}

	_, err := Reconcile(db, entries, userTypeReconciliation())
	require.NoError(t, err)

	res, err := Reconcile(db, entries, userTypeReconciliation())
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestReconcile_UpdatesOnlyDriftedRows(t *testing.T) {
	db := setupSeedDB(t)
	entries := []catalog.UserTypeEntry{
		{Code: "patient", Name: "Patient", SortOrder: 1},
		{Code: "doctor", Name: "Doctor", SortOrder: 2},
	}
	_, err := Reconcile(db, entries, userTypeReconciliation())
	require.NoError(t, err)

	var before models.UserTypeModel
	require.NoError(t, db.Where("code = ?", "patient").First(&before).Error)

	// Drift one entry, leave the other unchanged
	entries[0].Name = "Registered patient"

	res, err := Reconcile(db, entries, userTypeReconciliation())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 1, res.Updated)

	var after models.UserTypeModel
	require.NoError(t, db.Where("code = ?", "patient").First(&after).Error)
	assert.Equal(t, "Registered patient", after.Name)
	assert.Equal(t, before.ID, after.ID)
	assert.WithinDuration(t, before.CreatedAt, after.CreatedAt, time.Millisecond)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))

	var untouched models.UserTypeModel
	require.NoError(t, db.Where("code = ?", "doctor").First(&untouched).Error)
	assert.Equal(t, "Doctor", untouched.Name)
}

func TestReconcile_NeverDeletes(t *testing.T) {
	db := setupSeedDB(t)
	full := []catalog.UserTypeEntry{
		{Code: "patient", Name: "Patient"},
		{Code: "doctor", Name: "Doctor"},
	}
	_, err := Reconcile(db, full, userTypeReconciliation())
	require.NoError(t, err)

	// Re-run with a shrunk catalog; the removed entry must survive
	res, err := Reconcile(db, full[:1], userTypeReconciliation())
	require.NoError(t, err)
	assert.True(t, res.Empty())

	var count int64
	require.NoError(t, db.Model(&models.UserTypeModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestReconcileRelations_OnlyInsertsAbsentPairs(t *testing.T) {
	db := setupSeedDB(t)
	now := time.Now()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	keyOf := func(m *models.RolePermissionModel) RelationKey {
		return RelationKey{OwnerID: m.RoleID, TargetID: m.PermissionID}
	}

	res, err := ReconcileRelations(db, []models.RolePermissionModel{
		{RoleID: a, PermissionID: b, CreatedAt: now},
	}, keyOf)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)

	// Re-run with an extra pair: existing pair untouched, new one added
	res, err = ReconcileRelations(db, []models.RolePermissionModel{
		{RoleID: a, PermissionID: b, CreatedAt: now},
		{RoleID: a, PermissionID: c, CreatedAt: now},
	}, keyOf)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)

	// Shrinking the wanted set removes nothing
	res, err = ReconcileRelations(db, nil, keyOf)
	require.NoError(t, err)
	assert.True(t, res.Empty())

	var count int64
	require.NoError(t, db.Model(&models.RolePermissionModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestTableIsEmpty(t *testing.T) {
	db := setupSeedDB(t)

	empty, err := tableIsEmpty(db, &models.DepartmentModel{})
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, db.Create(&models.DepartmentModel{
		BaseModel: newBaseModel(),
		Name:      "Cardiology",
	}).Error)

	empty, err = tableIsEmpty(db, &models.DepartmentModel{})
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestLoadIDsByCode(t *testing.T) {
	db := setupSeedDB(t)
	role := models.RoleModel{BaseModel: newBaseModel(), Code: "1", Name: "SuperAdmin"}
	require.NoError(t, db.Create(&role).Error)

	ids, err := loadIDsByCode(db, &models.RoleModel{})
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, role.ID, ids["1"])
}
