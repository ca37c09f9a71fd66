package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/medical/backend/internal/domain/hospital"
	"github.com/medical/backend/internal/domain/shared"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDepartmentRepository implements department queries using GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new GormDepartmentRepository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// FindAll returns all departments ordered for display
func (r *GormDepartmentRepository) FindAll(ctx context.Context) ([]*hospital.Department, error) {
	var rows []models.DepartmentModel
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC, name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	departments := make([]*hospital.Department, len(rows))
	for i := range rows {
		departments[i] = rows[i].ToDomain()
	}
	return departments, nil
}

// FindByName finds a department by its natural key
func (r *GormDepartmentRepository) FindByName(ctx context.Context, name string) (*hospital.Department, error) {
	var row models.DepartmentModel
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// GormDoctorRepository implements doctor queries using GORM
type GormDoctorRepository struct {
	db *gorm.DB
}

// NewGormDoctorRepository creates a new GormDoctorRepository
func NewGormDoctorRepository(db *gorm.DB) *GormDoctorRepository {
	return &GormDoctorRepository{db: db}
}

// FindAll returns all doctors
func (r *GormDoctorRepository) FindAll(ctx context.Context) ([]*hospital.Doctor, error) {
	var rows []models.DoctorModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	doctors := make([]*hospital.Doctor, len(rows))
	for i := range rows {
		doctors[i] = rows[i].ToDomain()
	}
	return doctors, nil
}

// FindByDepartment returns all doctors in one department
func (r *GormDoctorRepository) FindByDepartment(ctx context.Context, departmentID uuid.UUID) ([]*hospital.Doctor, error) {
	var rows []models.DoctorModel
	if err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	doctors := make([]*hospital.Doctor, len(rows))
	for i := range rows {
		doctors[i] = rows[i].ToDomain()
	}
	return doctors, nil
}
