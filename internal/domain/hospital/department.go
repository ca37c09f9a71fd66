package hospital

import (
	"strings"

	"github.com/medical/backend/internal/domain/shared"
)

// Department represents a clinical department.
// Name is the natural key.
type Department struct {
	shared.BaseEntity
	Name        string
	Description string
	SortOrder   int
}

// NewDepartment creates a new department
func NewDepartment(name, description string) (*Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_DEPARTMENT_NAME", "Department name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_DEPARTMENT_NAME", "Department name cannot exceed 100 characters")
	}

	return &Department{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}, nil
}
