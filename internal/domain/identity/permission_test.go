package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPermission(t *testing.T) {
	perm, err := NewPermission("Doctors", "View")
	require.NoError(t, err)

	assert.Equal(t, "doctors.view", perm.Code)
	assert.Equal(t, "doctors", perm.Resource)
	assert.Equal(t, "view", perm.Action)
	assert.Equal(t, PermissionTypeAction, perm.Type)
}

func TestNewPermission_Validation(t *testing.T) {
	_, err := NewPermission("", "view")
	assert.Error(t, err)

	_, err = NewPermission("doctors", "")
	assert.Error(t, err)

	_, err = NewPermission("doc tors", "view")
	assert.Error(t, err)

	_, err = NewPermission("1doctors", "view")
	assert.Error(t, err)
}

func TestNewPagePermission(t *testing.T) {
	perm, err := NewPagePermission("dashboard", "Dashboard", "/dashboard")
	require.NoError(t, err)

	assert.Equal(t, "dashboard", perm.Code)
	assert.Equal(t, "dashboard", perm.Resource)
	assert.Equal(t, "/dashboard", perm.MenuURL)
	assert.Equal(t, PermissionTypePage, perm.Type)

	_, err = NewPagePermission("", "Empty", "/")
	assert.Error(t, err)
}

func TestResourceSegment(t *testing.T) {
	assert.Equal(t, "doctors", ResourceSegment("doctors.view"))
	assert.Equal(t, "files", ResourceSegment("files.upload"))
	assert.Equal(t, "dashboard", ResourceSegment("dashboard"))
}

func TestPermission_Equals(t *testing.T) {
	a, err := NewPermission("doctors", "view")
	require.NoError(t, err)
	b, err := NewPermission("doctors", "view")
	require.NoError(t, err)
	c, err := NewPermission("doctors", "create")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
