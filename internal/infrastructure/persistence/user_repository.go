package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/medical/backend/internal/domain/identity"
	"github.com/medical/backend/internal/domain/shared"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUserRepository implements user queries using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByUsername finds a user by its natural key
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	var row models.UserModel
	if err := r.db.WithContext(ctx).
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// FindRoleCodes returns the role codes assigned to a user
func (r *GormUserRepository) FindRoleCodes(ctx context.Context, username string) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&models.RoleModel{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Joins("JOIN users ON users.id = user_roles.user_id").
		Where("users.username = ?", strings.ToLower(strings.TrimSpace(username))).
		Order("roles.sort_order ASC").
		Pluck("roles.code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}
