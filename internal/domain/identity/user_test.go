package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Admin", "admin123456")
	require.NoError(t, err)

	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, UserTypeAdmin, user.UserTypeCode)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "admin123456", user.PasswordHash)
}

func TestNewUser_Validation(t *testing.T) {
	_, err := NewUser("", "admin123456")
	assert.Error(t, err)

	_, err = NewUser("ab", "admin123456")
	assert.Error(t, err)

	_, err = NewUser("admin", "short")
	assert.Error(t, err)
}

func TestUser_VerifyPassword(t *testing.T) {
	user, err := NewUser("admin", "admin123456")
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("admin123456"))
	assert.False(t, user.VerifyPassword("wrong-password"))
}

func TestUser_SetPassword(t *testing.T) {
	user, err := NewUser("admin", "admin123456")
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("new-password-1"))
	assert.True(t, user.VerifyPassword("new-password-1"))
	assert.False(t, user.VerifyPassword("admin123456"))

	assert.Error(t, user.SetPassword("short"))
}
