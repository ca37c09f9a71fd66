package persistence

import (
	"context"

	"github.com/medical/backend/internal/domain/identity"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPermissionRepository implements permission queries using GORM
type GormPermissionRepository struct {
	db *gorm.DB
}

// NewGormPermissionRepository creates a new GormPermissionRepository
func NewGormPermissionRepository(db *gorm.DB) *GormPermissionRepository {
	return &GormPermissionRepository{db: db}
}

// FindAll returns all permissions in display order
func (r *GormPermissionRepository) FindAll(ctx context.Context) ([]*identity.Permission, error) {
	var rows []models.PermissionModel
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	perms := make([]*identity.Permission, len(rows))
	for i := range rows {
		perms[i] = rows[i].ToDomain()
	}
	return perms, nil
}

// FindByResource returns all permissions for one resource
func (r *GormPermissionRepository) FindByResource(ctx context.Context, resource string) ([]*identity.Permission, error) {
	var rows []models.PermissionModel
	if err := r.db.WithContext(ctx).
		Where("resource = ?", resource).
		Order("sort_order ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	perms := make([]*identity.Permission, len(rows))
	for i := range rows {
		perms[i] = rows[i].ToDomain()
	}
	return perms, nil
}
