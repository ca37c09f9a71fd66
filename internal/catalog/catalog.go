// Package catalog holds the static, source-controlled reference data that the
// seeding engine reconciles into the relational store. Catalogs are declared
// in embedded YAML files so that changes to reference data are reviewable
// diffs rather than code edits.
package catalog

import (
	"github.com/medical/backend/internal/domain/identity"
	"github.com/shopspring/decimal"
)

// UserTypeEntry is a catalog row for a platform account type
type UserTypeEntry struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	SortOrder   int    `yaml:"sort_order"`
}

// RoleEntry is a catalog row for a back-office role.
// Grants are permission code patterns: "*" (everything), "resource.*"
// (every action on a resource), or an exact permission code.
type RoleEntry struct {
	Code        string   `yaml:"code"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	System      bool     `yaml:"system"`
	SortOrder   int      `yaml:"sort_order"`
	Grants      []string `yaml:"grants"`
}

// ResourceEntry declares a permission resource; the loader expands it into
// one PermissionEntry per action type.
type ResourceEntry struct {
	Key     string `yaml:"key"`
	Name    string `yaml:"name"`
	MenuURL string `yaml:"menu_url"`
}

// PageEntry declares a standalone page permission
type PageEntry struct {
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	MenuURL string `yaml:"menu_url"`
}

// PermissionEntry is a fully expanded catalog row for one permission.
// SortOrder is explicit: it is assigned once when the catalog is built and
// travels with the entry, so persisted ordering never depends on traversal
// position alone.
type PermissionEntry struct {
	Code        string
	Resource    string
	Action      string
	Name        string
	Description string
	MenuURL     string
	Type        identity.PermissionType
	SortOrder   int
}

// DepartmentEntry is a catalog row for a clinical department
type DepartmentEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	SortOrder   int    `yaml:"sort_order"`
}

// DrugTemplate declares one drug to derive under a category
type DrugTemplate struct {
	Name          string `yaml:"name"`
	Specification string `yaml:"specification"`
	Manufacturer  string `yaml:"manufacturer"`
	Price         string `yaml:"price"`
	Stock         int    `yaml:"stock"`
	Unit          string `yaml:"unit"`
}

// ParsePrice returns the template price as a decimal
func (t DrugTemplate) ParsePrice() (decimal.Decimal, error) {
	return decimal.NewFromString(t.Price)
}

// DrugCategoryEntry is a catalog row for a drug category plus its templates
type DrugCategoryEntry struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	SortOrder   int            `yaml:"sort_order"`
	Drugs       []DrugTemplate `yaml:"drugs"`
}

// HospitalEntry is a catalog row for a partner hospital
type HospitalEntry struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Level   string `yaml:"level"`
	Phone   string `yaml:"phone"`
}

// Catalog is the complete loaded reference-data catalog
type Catalog struct {
	UserTypes      []UserTypeEntry
	Roles          []RoleEntry
	Permissions    []PermissionEntry
	Departments    []DepartmentEntry
	DrugCategories []DrugCategoryEntry
	Hospitals      []HospitalEntry
}
