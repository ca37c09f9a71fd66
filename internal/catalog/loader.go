package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

type userTypesFile struct {
	UserTypes []UserTypeEntry `yaml:"user_types"`
}

type rolesFile struct {
	Roles []RoleEntry `yaml:"roles"`
}

type permissionsFile struct {
	Resources []ResourceEntry `yaml:"resources"`
	Pages     []PageEntry     `yaml:"pages"`
}

type departmentsFile struct {
	Departments []DepartmentEntry `yaml:"departments"`
}

type drugCategoriesFile struct {
	DrugCategories []DrugCategoryEntry `yaml:"drug_categories"`
}

type hospitalsFile struct {
	Hospitals []HospitalEntry `yaml:"hospitals"`
}

// Load parses and validates all embedded catalog files
func Load() (*Catalog, error) {
	var userTypes userTypesFile
	if err := loadFile("data/user_types.yaml", &userTypes); err != nil {
		return nil, err
	}

	var roles rolesFile
	if err := loadFile("data/roles.yaml", &roles); err != nil {
		return nil, err
	}

	var perms permissionsFile
	if err := loadFile("data/permissions.yaml", &perms); err != nil {
		return nil, err
	}

	var departments departmentsFile
	if err := loadFile("data/departments.yaml", &departments); err != nil {
		return nil, err
	}

	var categories drugCategoriesFile
	if err := loadFile("data/drug_categories.yaml", &categories); err != nil {
		return nil, err
	}

	var hospitals hospitalsFile
	if err := loadFile("data/hospitals.yaml", &hospitals); err != nil {
		return nil, err
	}

	c := &Catalog{
		UserTypes:      userTypes.UserTypes,
		Roles:          roles.Roles,
		Permissions:    BuildPermissions(perms.Resources, perms.Pages),
		Departments:    departments.Departments,
		DrugCategories: categories.DrugCategories,
		Hospitals:      hospitals.Hospitals,
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func loadFile(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read catalog file %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse catalog file %s: %w", name, err)
	}
	return nil
}

// validate enforces natural-key uniqueness and well-formed entries within
// each catalog before any seeding runs.
func (c *Catalog) validate() error {
	if err := uniqueKeys("user_types", c.UserTypes, func(e UserTypeEntry) string { return e.Code }); err != nil {
		return err
	}
	if err := uniqueKeys("roles", c.Roles, func(e RoleEntry) string { return e.Code }); err != nil {
		return err
	}
	if err := uniqueKeys("permissions", c.Permissions, func(e PermissionEntry) string { return e.Code }); err != nil {
		return err
	}
	if err := uniqueKeys("departments", c.Departments, func(e DepartmentEntry) string { return e.Name }); err != nil {
		return err
	}
	if err := uniqueKeys("drug_categories", c.DrugCategories, func(e DrugCategoryEntry) string { return e.Name }); err != nil {
		return err
	}
	if err := uniqueKeys("hospitals", c.Hospitals, func(e HospitalEntry) string { return e.Name }); err != nil {
		return err
	}

	for _, cat := range c.DrugCategories {
		for _, tpl := range cat.Drugs {
			price, err := tpl.ParsePrice()
			if err != nil {
				return fmt.Errorf("drug template %q in category %q has invalid price %q: %w",
					tpl.Name, cat.Name, tpl.Price, err)
			}
			if price.IsNegative() {
				return fmt.Errorf("drug template %q in category %q has negative price %q",
					tpl.Name, cat.Name, tpl.Price)
			}
		}
	}

	for _, role := range c.Roles {
		for _, grant := range role.Grants {
			if grant == "" {
				return fmt.Errorf("role %q has an empty grant pattern", role.Code)
			}
		}
	}

	return nil
}

func uniqueKeys[E any](catalogName string, entries []E, key func(E) string) error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		k := key(e)
		if k == "" {
			return fmt.Errorf("catalog %s contains an entry with an empty natural key", catalogName)
		}
		if seen[k] {
			return fmt.Errorf("catalog %s contains duplicate natural key %q", catalogName, k)
		}
		seen[k] = true
	}
	return nil
}
