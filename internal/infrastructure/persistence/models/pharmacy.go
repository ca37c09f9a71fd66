package models

import (
	"github.com/google/uuid"
	"github.com/medical/backend/internal/domain/pharmacy"
	"github.com/shopspring/decimal"
)

// DrugCategoryModel is the persistence model for the DrugCategory domain entity.
type DrugCategoryModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(500)"`
	SortOrder   int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (DrugCategoryModel) TableName() string {
	return "drug_categories"
}

// ToDomain converts the persistence model to a domain DrugCategory
func (m *DrugCategoryModel) ToDomain() *pharmacy.DrugCategory {
	return &pharmacy.DrugCategory{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		SortOrder:   m.SortOrder,
	}
}

// FromDomain populates the persistence model from a domain DrugCategory
func (m *DrugCategoryModel) FromDomain(c *pharmacy.DrugCategory) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Description = c.Description
	m.SortOrder = c.SortOrder
}

// DrugModel is the persistence model for the Drug domain entity.
type DrugModel struct {
	BaseModel
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Specification string          `gorm:"type:varchar(200)"`
	Manufacturer  string          `gorm:"type:varchar(200)"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock         int             `gorm:"not null;default:0"`
	Unit          string          `gorm:"type:varchar(20)"`
	CreatedBy     *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (DrugModel) TableName() string {
	return "drugs"
}

// ToDomain converts the persistence model to a domain Drug
func (m *DrugModel) ToDomain() *pharmacy.Drug {
	return &pharmacy.Drug{
		BaseEntity:    m.BaseModel.ToDomain(),
		CategoryID:    m.CategoryID,
		Name:          m.Name,
		Specification: m.Specification,
		Manufacturer:  m.Manufacturer,
		Price:         m.Price,
		Stock:         m.Stock,
		Unit:          m.Unit,
		CreatedBy:     m.CreatedBy,
	}
}

// FromDomain populates the persistence model from a domain Drug
func (m *DrugModel) FromDomain(d *pharmacy.Drug) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.CategoryID = d.CategoryID
	m.Name = d.Name
	m.Specification = d.Specification
	m.Manufacturer = d.Manufacturer
	m.Price = d.Price
	m.Stock = d.Stock
	m.Unit = d.Unit
	m.CreatedBy = d.CreatedBy
}
