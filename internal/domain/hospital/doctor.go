package hospital

import (
	"strings"

	"github.com/google/uuid"
	"github.com/medical/backend/internal/domain/shared"
)

// DoctorTitle represents a doctor's professional title
type DoctorTitle string

const (
	TitleResident           DoctorTitle = "resident"
	TitleAttending          DoctorTitle = "attending"
	TitleAssociateChief     DoctorTitle = "associate_chief"
	TitleChief              DoctorTitle = "chief"
	TitleProfessor          DoctorTitle = "professor"
	TitleAssociateProfessor DoctorTitle = "associate_professor"
)

// Doctor represents a practicing doctor attached to a department.
// Doctors are derived sample rows, not catalog-reconciled reference data.
type Doctor struct {
	shared.BaseEntity
	DepartmentID uuid.UUID
	Name         string
	Title        DoctorTitle
	Specialty    string
	Introduction string
	IsAvailable  bool
}

// NewDoctor creates a new doctor in a department
func NewDoctor(departmentID uuid.UUID, name string, title DoctorTitle) (*Doctor, error) {
	if departmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DEPARTMENT_ID", "Department ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_DOCTOR_NAME", "Doctor name cannot be empty")
	}

	return &Doctor{
		BaseEntity:   shared.NewBaseEntity(),
		DepartmentID: departmentID,
		Name:         name,
		Title:        title,
		IsAvailable:  true,
	}, nil
}
