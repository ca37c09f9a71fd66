package pharmacy

import (
	"strings"

	"github.com/google/uuid"
	"github.com/medical/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DrugCategory represents a drug classification.
// Name is the natural key.
type DrugCategory struct {
	shared.BaseEntity
	Name        string
	Description string
	SortOrder   int
}

// NewDrugCategory creates a new drug category
func NewDrugCategory(name, description string) (*DrugCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY_NAME", "Drug category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_CATEGORY_NAME", "Drug category name cannot exceed 100 characters")
	}

	return &DrugCategory{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}, nil
}

// Drug represents an inventory drug derived from a category template.
// Drugs are written once by the dependent seeder and managed through the
// ordinary CRUD surface afterwards.
type Drug struct {
	shared.BaseEntity
	CategoryID    uuid.UUID
	Name          string
	Specification string // e.g., "0.25g x 24 tablets"
	Manufacturer  string
	Price         decimal.Decimal
	Stock         int
	Unit          string
	CreatedBy     *uuid.UUID // Admin account that seeded the row
}

// NewDrug creates a new drug in a category
func NewDrug(categoryID uuid.UUID, name string, price decimal.Decimal) (*Drug, error) {
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY_ID", "Category ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_DRUG_NAME", "Drug name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DRUG_PRICE", "Drug price cannot be negative")
	}

	return &Drug{
		BaseEntity: shared.NewBaseEntity(),
		CategoryID: categoryID,
		Name:       name,
		Price:      price,
	}, nil
}
