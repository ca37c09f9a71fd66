package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medical/backend/internal/domain/shared"
)

// PermissionType classifies how a permission is surfaced in the back office
type PermissionType string

const (
	PermissionTypeAction PermissionType = "action" // CRUD-style operation on a resource
	PermissionTypePage   PermissionType = "page"   // Standalone page/menu entry
	PermissionTypeUpload PermissionType = "upload" // File upload capability
)

// Permission represents a functional permission (resource.action pattern).
// Code is the natural key; display fields may drift between deployments and
// are reconciled against the catalog on startup.
type Permission struct {
	shared.BaseEntity
	Code        string // e.g., "doctors.create"
	Resource    string // e.g., "doctors"
	Action      string // e.g., "create"
	Name        string // Localized display name
	Description string
	MenuURL     string
	Type        PermissionType
	SortOrder   int
}

// NewPermission creates a new Permission for a resource/action pair
func NewPermission(resource, action string) (*Permission, error) {
	if err := validatePermissionSegment(resource, "resource"); err != nil {
		return nil, err
	}
	if err := validatePermissionSegment(action, "action"); err != nil {
		return nil, err
	}

	resource = strings.ToLower(strings.TrimSpace(resource))
	action = strings.ToLower(strings.TrimSpace(action))

	return &Permission{
		BaseEntity: shared.NewBaseEntity(),
		Code:       resource + "." + action,
		Resource:   resource,
		Action:     action,
		Type:       PermissionTypeAction,
	}, nil
}

// NewPagePermission creates a standalone page permission
func NewPagePermission(code, name, menuURL string) (*Permission, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_PERMISSION_CODE", "Permission code cannot be empty")
	}

	perm := &Permission{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
		Resource:   ResourceSegment(code),
		Name:       name,
		MenuURL:    menuURL,
		Type:       PermissionTypePage,
	}
	return perm, nil
}

// ResourceSegment returns the first dot-delimited segment of a permission code
func ResourceSegment(code string) string {
	if i := strings.IndexByte(code, '.'); i >= 0 {
		return code[:i]
	}
	return code
}

// Equals checks if two permissions refer to the same natural key
func (p *Permission) Equals(other *Permission) bool {
	return p.Code == other.Code
}

func validatePermissionSegment(s, kind string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return shared.NewDomainError("INVALID_PERMISSION_CODE", "Permission "+kind+" cannot be empty")
	}
	if len(s) > 50 {
		return shared.NewDomainError("INVALID_PERMISSION_CODE", "Permission "+kind+" cannot exceed 50 characters")
	}

	segRegex := regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	if !segRegex.MatchString(strings.ToLower(s)) {
		return shared.NewDomainError("INVALID_PERMISSION_CODE", "Permission "+kind+" must start with a letter and contain only lowercase letters, numbers, and underscores")
	}

	return nil
}

// RolePermission represents the many-to-many relationship between roles and
// permissions. Relations are only ever added by the seeding engine, never
// updated or removed.
type RolePermission struct {
	RoleID       uuid.UUID
	PermissionID uuid.UUID
	CreatedAt    time.Time
}

// UserRole represents the many-to-many relationship between users and roles
type UserRole struct {
	UserID    uuid.UUID
	RoleID    uuid.UUID
	CreatedAt time.Time
}

// Predefined action types applied to every catalog resource
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Predefined permission resources
const (
	ResourceDoctors        = "doctors"
	ResourcePatients       = "patients"
	ResourceDepartments    = "departments"
	ResourceDrugs          = "drugs"
	ResourceDrugCategories = "drug_categories"
	ResourceOrders         = "orders"
	ResourceConsultations  = "consultations"
	ResourceHospitals      = "hospitals"
	ResourceRoles          = "roles"
	ResourceUsers          = "users"
)
