package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserType(t *testing.T) {
	userType, err := NewUserType("patient", " Patient ")
	require.NoError(t, err)

	assert.Equal(t, "patient", userType.Code)
	assert.Equal(t, "Patient", userType.Name)
}

func TestNewUserType_Validation(t *testing.T) {
	_, err := NewUserType("", "Patient")
	assert.Error(t, err)

	_, err = NewUserType("patient", "  ")
	assert.Error(t, err)
}
