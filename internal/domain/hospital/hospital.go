package hospital

import (
	"strings"

	"github.com/medical/backend/internal/domain/shared"
)

// Hospital represents a partner hospital.
// Name is the natural key. Coordinates are resolved from the street address
// by an outbound geocoding lookup at seed time and may be absent when the
// lookup fails.
type Hospital struct {
	shared.BaseEntity
	Name      string
	Address   string
	Level     string // e.g., "3A" grading
	Phone     string
	Latitude  *float64
	Longitude *float64
}

// NewHospital creates a new hospital
func NewHospital(name, address string) (*Hospital, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_HOSPITAL_NAME", "Hospital name cannot be empty")
	}
	if strings.TrimSpace(address) == "" {
		return nil, shared.NewDomainError("INVALID_HOSPITAL_ADDRESS", "Hospital address cannot be empty")
	}

	return &Hospital{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    strings.TrimSpace(address),
	}, nil
}

// SetCoordinates records a resolved geocoding result
func (h *Hospital) SetCoordinates(lat, lng float64) {
	h.Latitude = &lat
	h.Longitude = &lng
	h.Touch()
}

// HasCoordinates reports whether geocoding succeeded for this hospital
func (h *Hospital) HasCoordinates() bool {
	return h.Latitude != nil && h.Longitude != nil
}
