package identity

import (
	"strings"

	"github.com/medical/backend/internal/domain/shared"
)

// UserType classifies platform accounts (patient, doctor, back-office admin).
// Code is the natural key.
type UserType struct {
	shared.BaseEntity
	Code        string
	Name        string
	Description string
	SortOrder   int
}

// NewUserType creates a new user type
func NewUserType(code, name string) (*UserType, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_USER_TYPE_CODE", "User type code cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_USER_TYPE_NAME", "User type name cannot be empty")
	}

	return &UserType{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Name:       strings.TrimSpace(name),
	}, nil
}

// Predefined user type codes
const (
	UserTypePatient = "patient"
	UserTypeDoctor  = "doctor"
	UserTypeAdmin   = "admin"
)
