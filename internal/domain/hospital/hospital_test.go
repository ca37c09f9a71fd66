package hospital

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDepartment(t *testing.T) {
	dept, err := NewDepartment("Cardiology", "Heart and vascular care")
	require.NoError(t, err)

	assert.Equal(t, "Cardiology", dept.Name)
	assert.Equal(t, "Heart and vascular care", dept.Description)

	_, err = NewDepartment("", "desc")
	assert.Error(t, err)
}

func TestNewDoctor(t *testing.T) {
	deptID := uuid.New()

	doctor, err := NewDoctor(deptID, "Chen Wei", TitleAttending)
	require.NoError(t, err)

	assert.Equal(t, deptID, doctor.DepartmentID)
	assert.Equal(t, "Chen Wei", doctor.Name)
	assert.Equal(t, TitleAttending, doctor.Title)
	assert.True(t, doctor.IsAvailable)
}

func TestNewDoctor_Validation(t *testing.T) {
	_, err := NewDoctor(uuid.Nil, "Chen Wei", TitleAttending)
	assert.Error(t, err)

	_, err = NewDoctor(uuid.New(), "  ", TitleAttending)
	assert.Error(t, err)
}

func TestNewHospital(t *testing.T) {
	h, err := NewHospital("General Hospital", " 100 Century Ave ")
	require.NoError(t, err)

	assert.Equal(t, "General Hospital", h.Name)
	assert.Equal(t, "100 Century Ave", h.Address)
	assert.False(t, h.HasCoordinates())

	h.SetCoordinates(31.2304, 121.4737)
	require.True(t, h.HasCoordinates())
	assert.InDelta(t, 31.2304, *h.Latitude, 0.0001)
	assert.InDelta(t, 121.4737, *h.Longitude, 0.0001)
}

func TestNewHospital_Validation(t *testing.T) {
	_, err := NewHospital("", "100 Century Ave")
	assert.Error(t, err)

	_, err = NewHospital("General Hospital", "")
	assert.Error(t, err)
}
