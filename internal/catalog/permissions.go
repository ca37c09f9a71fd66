package catalog

import (
	"strings"

	"github.com/medical/backend/internal/domain/identity"
)

// actionTypes is the fixed set of actions expanded for every resource,
// in catalog order.
var actionTypes = []struct {
	action string
	label  string
}{
	{identity.ActionView, "View"},
	{identity.ActionCreate, "Create"},
	{identity.ActionUpdate, "Update"},
	{identity.ActionDelete, "Delete"},
}

// UploadPermissionCode is the fixed upload permission appended at the end of
// the permission catalog.
const UploadPermissionCode = "files.upload"

// BuildPermissions expands the declared resources and pages into the full
// permission catalog: resources x action types, then standalone pages, then
// the fixed upload permission last. Sort order is assigned explicitly here,
// once per build, and stored on each entry.
func BuildPermissions(resources []ResourceEntry, pages []PageEntry) []PermissionEntry {
	entries := make([]PermissionEntry, 0, len(resources)*len(actionTypes)+len(pages)+1)
	order := 0

	for _, res := range resources {
		for _, at := range actionTypes {
			order++
			entries = append(entries, PermissionEntry{
				Code:        res.Key + "." + at.action,
				Resource:    res.Key,
				Action:      at.action,
				Name:        at.label + " " + strings.ToLower(res.Name),
				Description: at.label + " permission for " + strings.ToLower(res.Name),
				MenuURL:     res.MenuURL,
				Type:        identity.PermissionTypeAction,
				SortOrder:   order,
			})
		}
	}

	for _, page := range pages {
		order++
		entries = append(entries, PermissionEntry{
			Code:      page.Code,
			Resource:  identity.ResourceSegment(page.Code),
			Name:      page.Name,
			MenuURL:   page.MenuURL,
			Type:      identity.PermissionTypePage,
			SortOrder: order,
		})
	}

	order++
	entries = append(entries, PermissionEntry{
		Code:        UploadPermissionCode,
		Resource:    "files",
		Action:      "upload",
		Name:        "Upload files",
		Description: "Upload attachments and images",
		Type:        identity.PermissionTypeUpload,
		SortOrder:   order,
	})

	return entries
}

// ResolveGrants expands a role's grant patterns against the permission
// catalog, returning the matching permission codes in catalog order.
// Patterns: "*" matches everything, "resource.*" matches every entry for
// that resource, anything else is an exact code match.
func ResolveGrants(grants []string, permissions []PermissionEntry) []string {
	if len(grants) == 0 {
		return nil
	}

	matched := make([]string, 0, len(permissions))
	for _, p := range permissions {
		if grantMatches(grants, p) {
			matched = append(matched, p.Code)
		}
	}
	return matched
}

func grantMatches(grants []string, p PermissionEntry) bool {
	for _, g := range grants {
		switch {
		case g == "*":
			return true
		case strings.HasSuffix(g, ".*"):
			if p.Resource == strings.TrimSuffix(g, ".*") {
				return true
			}
		case g == p.Code:
			return true
		}
	}
	return false
}
