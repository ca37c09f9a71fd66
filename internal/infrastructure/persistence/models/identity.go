package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/medical/backend/internal/domain/identity"
)

// UserTypeModel is the persistence model for the UserType domain entity.
type UserTypeModel struct {
	BaseModel
	Code        string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:varchar(500)"`
	SortOrder   int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (UserTypeModel) TableName() string {
	return "user_types"
}

// ToDomain converts the persistence model to a domain UserType
func (m *UserTypeModel) ToDomain() *identity.UserType {
	return &identity.UserType{
		BaseEntity:  m.BaseModel.ToDomain(),
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		SortOrder:   m.SortOrder,
	}
}

// FromDomain populates the persistence model from a domain UserType
func (m *UserTypeModel) FromDomain(t *identity.UserType) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Code = t.Code
	m.Name = t.Name
	m.Description = t.Description
	m.SortOrder = t.SortOrder
}

// RoleModel is the persistence model for the Role domain entity.
type RoleModel struct {
	BaseModel
	Code         string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string `gorm:"type:varchar(100);not null"`
	Description  string `gorm:"type:varchar(500)"`
	IsSystemRole bool   `gorm:"not null;default:false"`
	IsEnabled    bool   `gorm:"not null;default:true"`
	SortOrder    int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (RoleModel) TableName() string {
	return "roles"
}

// ToDomain converts the persistence model to a domain Role
func (m *RoleModel) ToDomain() *identity.Role {
	return &identity.Role{
		BaseEntity:   m.BaseModel.ToDomain(),
		Code:         m.Code,
		Name:         m.Name,
		Description:  m.Description,
		IsSystemRole: m.IsSystemRole,
		IsEnabled:    m.IsEnabled,
		SortOrder:    m.SortOrder,
	}
}

// FromDomain populates the persistence model from a domain Role
func (m *RoleModel) FromDomain(r *identity.Role) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.Code = r.Code
	m.Name = r.Name
	m.Description = r.Description
	m.IsSystemRole = r.IsSystemRole
	m.IsEnabled = r.IsEnabled
	m.SortOrder = r.SortOrder
}

// PermissionModel is the persistence model for the Permission domain entity.
type PermissionModel struct {
	BaseModel
	Code        string                  `gorm:"type:varchar(100);not null;uniqueIndex"`
	Resource    string                  `gorm:"type:varchar(50);not null;index"`
	Action      string                  `gorm:"type:varchar(50)"`
	Name        string                  `gorm:"type:varchar(200)"`
	Description string                  `gorm:"type:varchar(500)"`
	MenuURL     string                  `gorm:"type:varchar(500)"`
	Type        identity.PermissionType `gorm:"type:varchar(20);not null;default:'action'"`
	SortOrder   int                     `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (PermissionModel) TableName() string {
	return "permissions"
}

// ToDomain converts the persistence model to a domain Permission
func (m *PermissionModel) ToDomain() *identity.Permission {
	return &identity.Permission{
		BaseEntity:  m.BaseModel.ToDomain(),
		Code:        m.Code,
		Resource:    m.Resource,
		Action:      m.Action,
		Name:        m.Name,
		Description: m.Description,
		MenuURL:     m.MenuURL,
		Type:        m.Type,
		SortOrder:   m.SortOrder,
	}
}

// RolePermissionModel is the persistence model for the RolePermission relation.
// The composite primary key doubles as the unique constraint on the pair.
type RolePermissionModel struct {
	RoleID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (RolePermissionModel) TableName() string {
	return "role_permissions"
}

// UserRoleModel is the persistence model for the UserRole relation.
type UserRoleModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (UserRoleModel) TableName() string {
	return "user_roles"
}

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	DisplayName  string `gorm:"type:varchar(200)"`
	UserTypeCode string `gorm:"type:varchar(50);not null;index"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		DisplayName:  m.DisplayName,
		UserTypeCode: m.UserTypeCode,
		IsActive:     m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain User
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Username = u.Username
	m.PasswordHash = u.PasswordHash
	m.DisplayName = u.DisplayName
	m.UserTypeCode = u.UserTypeCode
	m.IsActive = u.IsActive
}
