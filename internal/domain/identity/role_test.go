package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	role, err := NewRole("1", "Super Admin")
	require.NoError(t, err)

	assert.Equal(t, "1", role.Code)
	assert.Equal(t, "Super Admin", role.Name)
	assert.True(t, role.IsEnabled)
	assert.False(t, role.IsSystemRole)
	assert.True(t, role.CanDelete())
}

func TestNewSystemRole(t *testing.T) {
	role, err := NewSystemRole(RoleCodeSuperAdmin, "Super Admin")
	require.NoError(t, err)

	assert.True(t, role.IsSystemRole)
	assert.False(t, role.CanDelete())
}

func TestNewRole_Validation(t *testing.T) {
	_, err := NewRole("", "Admin")
	assert.Error(t, err)

	_, err = NewRole("role code", "Admin")
	assert.Error(t, err)

	_, err = NewRole("1", "")
	assert.Error(t, err)
}
