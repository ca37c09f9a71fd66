package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medical/backend/internal/domain/identity"
)

func TestBuildPermissions_ExpandsResourcesAndPages(t *testing.T) {
	entries := BuildPermissions(
		[]ResourceEntry{{Key: "doctors", Name: "Doctors", MenuURL: "/admin/doctors"}},
		[]PageEntry{{Code: "dashboard", Name: "Dashboard", MenuURL: "/admin/dashboard"}},
	)

	// 4 actions + 1 page + upload
	require.Len(t, entries, 6)

	assert.Equal(t, "doctors.view", entries[0].Code)
	assert.Equal(t, "View doctors", entries[0].Name)
	assert.Equal(t, identity.PermissionTypeAction, entries[0].Type)
	assert.Equal(t, "doctors.delete", entries[3].Code)

	assert.Equal(t, "dashboard", entries[4].Code)
	assert.Equal(t, identity.PermissionTypePage, entries[4].Type)

	assert.Equal(t, UploadPermissionCode, entries[5].Code)
	assert.Equal(t, identity.PermissionTypeUpload, entries[5].Type)

	for i, e := range entries {
		assert.Equal(t, i+1, e.SortOrder)
	}
}

func TestResolveGrants(t *testing.T) {
	permissions := BuildPermissions([]ResourceEntry{
		{Key: "doctors", Name: "Doctors"},
		{Key: "patients", Name: "Patients"},
	}, []PageEntry{{Code: "dashboard", Name: "Dashboard"}})

	t.Run("wildcard matches everything", func(t *testing.T) {
		codes := ResolveGrants([]string{"*"}, permissions)
		assert.Len(t, codes, len(permissions))
	})

	t.Run("resource wildcard matches all actions", func(t *testing.T) {
		codes := ResolveGrants([]string{"doctors.*"}, permissions)
		assert.Equal(t, []string{"doctors.view", "doctors.create", "doctors.update", "doctors.delete"}, codes)
	})

	t.Run("exact codes", func(t *testing.T) {
		codes := ResolveGrants([]string{"patients.view", "dashboard"}, permissions)
		assert.Equal(t, []string{"patients.view", "dashboard"}, codes)
	})

	t.Run("unknown grant matches nothing", func(t *testing.T) {
		codes := ResolveGrants([]string{"nonexistent.*"}, permissions)
		assert.Empty(t, codes)
	})

	t.Run("no grants", func(t *testing.T) {
		assert.Nil(t, ResolveGrants(nil, permissions))
	})
}
