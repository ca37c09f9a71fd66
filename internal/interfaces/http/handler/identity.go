package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/medical/backend/internal/domain/identity"
	"github.com/medical/backend/internal/infrastructure/persistence"
)

// IdentityHandler exposes the seeded role and permission reference data
type IdentityHandler struct {
	BaseHandler
	roleRepo       *persistence.GormRoleRepository
	permissionRepo *persistence.GormPermissionRepository
	userRepo       *persistence.GormUserRepository
}

// NewIdentityHandler creates a new IdentityHandler
func NewIdentityHandler(
	roleRepo *persistence.GormRoleRepository,
	permissionRepo *persistence.GormPermissionRepository,
	userRepo *persistence.GormUserRepository,
) *IdentityHandler {
	return &IdentityHandler{
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
		userRepo:       userRepo,
	}
}

// RegisterRoutes registers identity reference routes
func (h *IdentityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/roles", h.ListRoles)
	rg.GET("/roles/:code/permissions", h.ListRolePermissions)
	rg.GET("/permissions", h.ListPermissions)
	rg.GET("/users/:username", h.GetUser)
}

// RoleResponse represents a role in responses
type RoleResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsSystemRole bool   `json:"is_system_role"`
	IsEnabled    bool   `json:"is_enabled"`
	SortOrder    int    `json:"sort_order"`
}

func toRoleResponse(r *identity.Role) RoleResponse {
	return RoleResponse{
		ID:           r.ID.String(),
		Code:         r.Code,
		Name:         r.Name,
		Description:  r.Description,
		IsSystemRole: r.IsSystemRole,
		IsEnabled:    r.IsEnabled,
		SortOrder:    r.SortOrder,
	}
}

// ListRoles returns all roles ordered by sort order
func (h *IdentityHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleRepo.FindAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, toRoleResponse(r))
	}
	h.Success(c, responses)
}

// RolePermissionsResponse represents the permission codes granted to a role
type RolePermissionsResponse struct {
	RoleCode    string   `json:"role_code"`
	Permissions []string `json:"permissions"`
}

// ListRolePermissions returns the permission codes granted to one role
func (h *IdentityHandler) ListRolePermissions(c *gin.Context) {
	role, err := h.roleRepo.FindByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	codes, err := h.roleRepo.LoadPermissionCodes(c.Request.Context(), role.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RolePermissionsResponse{
		RoleCode:    role.Code,
		Permissions: codes,
	})
}

// PermissionResponse represents a permission in responses
type PermissionResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Resource  string `json:"resource"`
	Action    string `json:"action,omitempty"`
	Name      string `json:"name"`
	MenuURL   string `json:"menu_url,omitempty"`
	Type      string `json:"type"`
	SortOrder int    `json:"sort_order"`
}

// ListPermissions returns all permissions, optionally filtered by resource
func (h *IdentityHandler) ListPermissions(c *gin.Context) {
	var permissions []*identity.Permission
	var err error

	if resource := c.Query("resource"); resource != "" {
		permissions, err = h.permissionRepo.FindByResource(c.Request.Context(), resource)
	} else {
		permissions, err = h.permissionRepo.FindAll(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]PermissionResponse, 0, len(permissions))
	for _, p := range permissions {
		responses = append(responses, PermissionResponse{
			ID:        p.ID.String(),
			Code:      p.Code,
			Resource:  p.Resource,
			Action:    p.Action,
			Name:      p.Name,
			MenuURL:   p.MenuURL,
			Type:      string(p.Type),
			SortOrder: p.SortOrder,
		})
	}
	h.Success(c, responses)
}

// UserResponse represents an account in responses. The password hash is
// never exposed.
type UserResponse struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	DisplayName  string   `json:"display_name"`
	UserTypeCode string   `json:"user_type_code"`
	IsActive     bool     `json:"is_active"`
	Roles        []string `json:"roles"`
}

// GetUser returns one account with its assigned role codes. Operators use
// this to confirm the bootstrap admin was healed after startup.
func (h *IdentityHandler) GetUser(c *gin.Context) {
	username := c.Param("username")

	user, err := h.userRepo.FindByUsername(c.Request.Context(), username)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	roles, err := h.userRepo.FindRoleCodes(c.Request.Context(), username)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, UserResponse{
		ID:           user.ID.String(),
		Username:     user.Username,
		DisplayName:  user.DisplayName,
		UserTypeCode: user.UserTypeCode,
		IsActive:     user.IsActive,
		Roles:        roles,
	})
}
