package models

import (
	"github.com/google/uuid"
	"github.com/medical/backend/internal/domain/hospital"
)

// DepartmentModel is the persistence model for the Department domain entity.
type DepartmentModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(500)"`
	SortOrder   int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (DepartmentModel) TableName() string {
	return "departments"
}

// ToDomain converts the persistence model to a domain Department
func (m *DepartmentModel) ToDomain() *hospital.Department {
	return &hospital.Department{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		SortOrder:   m.SortOrder,
	}
}

// FromDomain populates the persistence model from a domain Department
func (m *DepartmentModel) FromDomain(d *hospital.Department) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.Name = d.Name
	m.Description = d.Description
	m.SortOrder = d.SortOrder
}

// DoctorModel is the persistence model for the Doctor domain entity.
type DoctorModel struct {
	BaseModel
	DepartmentID uuid.UUID            `gorm:"type:uuid;not null;index"`
	Name         string               `gorm:"type:varchar(100);not null"`
	Title        hospital.DoctorTitle `gorm:"type:varchar(50);not null"`
	Specialty    string               `gorm:"type:varchar(500)"`
	Introduction string               `gorm:"type:text"`
	IsAvailable  bool                 `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (DoctorModel) TableName() string {
	return "doctors"
}

// ToDomain converts the persistence model to a domain Doctor
func (m *DoctorModel) ToDomain() *hospital.Doctor {
	return &hospital.Doctor{
		BaseEntity:   m.BaseModel.ToDomain(),
		DepartmentID: m.DepartmentID,
		Name:         m.Name,
		Title:        m.Title,
		Specialty:    m.Specialty,
		Introduction: m.Introduction,
		IsAvailable:  m.IsAvailable,
	}
}

// FromDomain populates the persistence model from a domain Doctor
func (m *DoctorModel) FromDomain(d *hospital.Doctor) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.DepartmentID = d.DepartmentID
	m.Name = d.Name
	m.Title = d.Title
	m.Specialty = d.Specialty
	m.Introduction = d.Introduction
	m.IsAvailable = d.IsAvailable
}

// HospitalModel is the persistence model for the Hospital domain entity.
type HospitalModel struct {
	BaseModel
	Name      string   `gorm:"type:varchar(200);not null;uniqueIndex"`
	Address   string   `gorm:"type:varchar(500);not null"`
	Level     string   `gorm:"type:varchar(20)"`
	Phone     string   `gorm:"type:varchar(50)"`
	Latitude  *float64 `gorm:"type:double precision"`
	Longitude *float64 `gorm:"type:double precision"`
}

// TableName returns the table name for GORM
func (HospitalModel) TableName() string {
	return "hospitals"
}

// ToDomain converts the persistence model to a domain Hospital
func (m *HospitalModel) ToDomain() *hospital.Hospital {
	return &hospital.Hospital{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Address:    m.Address,
		Level:      m.Level,
		Phone:      m.Phone,
		Latitude:   m.Latitude,
		Longitude:  m.Longitude,
	}
}

// FromDomain populates the persistence model from a domain Hospital
func (m *HospitalModel) FromDomain(h *hospital.Hospital) {
	m.FromDomainBaseEntity(h.BaseEntity)
	m.Name = h.Name
	m.Address = h.Address
	m.Level = h.Level
	m.Phone = h.Phone
	m.Latitude = h.Latitude
	m.Longitude = h.Longitude
}
