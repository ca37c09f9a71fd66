package seeding

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/medical/backend/internal/catalog"
	"github.com/medical/backend/internal/domain/hospital"
	"github.com/medical/backend/internal/infrastructure/geocode"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
)

// HospitalSeeder writes the partner hospital catalog once. When a geocoder
// is configured each hospital's address is resolved to coordinates; a
// failed lookup leaves that row's coordinates empty and moves on, so an
// unreachable geocoding service never blocks startup.
type HospitalSeeder struct {
	entries  []catalog.HospitalEntry
	geocoder geocode.Geocoder
	logger   *zap.Logger
}

// NewHospitalSeeder creates a hospital seeder. geocoder may be nil to skip
// coordinate resolution entirely.
func NewHospitalSeeder(c *catalog.Catalog, geocoder geocode.Geocoder, logger *zap.Logger) *HospitalSeeder {
	return &HospitalSeeder{
		entries:  c.Hospitals,
		geocoder: geocoder,
		logger:   logger.Named("hospital_seeder"),
	}
}

// Name implements Seeder
func (s *HospitalSeeder) Name() string {
	return "hospitals"
}

// Seed implements Seeder
func (s *HospitalSeeder) Seed(ctx context.Context, tx *gorm.DB) (Result, error) {
	tx = tx.WithContext(ctx)

	empty, err := tableIsEmpty(tx, &models.HospitalModel{})
	if err != nil {
		return Result{}, err
	}
	if !empty {
		return Result{}, nil
	}

	var rows []models.HospitalModel
	for _, entry := range s.entries {
		h, err := hospital.NewHospital(entry.Name, entry.Address)
		if err != nil {
			return Result{}, err
		}
		h.Level = entry.Level
		h.Phone = entry.Phone

		if s.geocoder != nil {
			lat, lon, err := s.geocoder.Geocode(ctx, entry.Address)
			if err != nil {
				s.logger.Warn("Geocoding failed, storing hospital without coordinates",
					zap.String("hospital", entry.Name),
					zap.Error(err),
				)
			} else {
				h.SetCoordinates(lat, lon)
			}
		}

		var row models.HospitalModel
		row.FromDomain(h)
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return Result{}, nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return Result{}, err
	}
	return Result{Inserted: len(rows)}, nil
}
