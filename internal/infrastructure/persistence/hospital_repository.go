package persistence

import (
	"context"

	"github.com/medical/backend/internal/domain/hospital"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormHospitalRepository implements hospital queries using GORM
type GormHospitalRepository struct {
	db *gorm.DB
}

// NewGormHospitalRepository creates a new GormHospitalRepository
func NewGormHospitalRepository(db *gorm.DB) *GormHospitalRepository {
	return &GormHospitalRepository{db: db}
}

// FindAll returns all hospitals
func (r *GormHospitalRepository) FindAll(ctx context.Context) ([]*hospital.Hospital, error) {
	var rows []models.HospitalModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	hospitals := make([]*hospital.Hospital, len(rows))
	for i := range rows {
		hospitals[i] = rows[i].ToDomain()
	}
	return hospitals, nil
}
