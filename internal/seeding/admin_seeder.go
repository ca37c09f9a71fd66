package seeding

import (
	"context"
	"errors"
	"time"

	"github.com/medical/backend/internal/domain/identity"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// AdminSeeder guarantees the bootstrap back-office account. Unlike the
// catalog seeders it heals drift on an existing row: a deactivated admin is
// reactivated and a changed credential is rewritten to the configured one,
// so the account can always log in after a restart. The SuperAdmin role
// assignment is granted once and never revoked here.
type AdminSeeder struct {
	password string
}

// NewAdminSeeder creates the bootstrap admin seeder with the credential the
// account is forced to.
func NewAdminSeeder(password string) *AdminSeeder {
	return &AdminSeeder{password: password}
}

// Name implements Seeder
func (s *AdminSeeder) Name() string {
	return "bootstrap_admin"
}

// Seed implements Seeder
func (s *AdminSeeder) Seed(ctx context.Context, tx *gorm.DB) (Result, error) {
	tx = tx.WithContext(ctx)

	var res Result

	var row models.UserModel
	err := tx.Where("username = ?", identity.BootstrapAdminUsername).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin, err := identity.NewUser(identity.BootstrapAdminUsername, s.password)
		if err != nil {
			return Result{}, err
		}
		admin.DisplayName = "Administrator"
		row.FromDomain(admin)
		if err := tx.Create(&row).Error; err != nil {
			return Result{}, err
		}
		res.Inserted++
	case err != nil:
		return Result{}, err
	default:
		admin := row.ToDomain()
		healed := false
		if !admin.IsActive {
			admin.Activate()
			healed = true
		}
		if !admin.VerifyPassword(s.password) {
			if err := admin.SetPassword(s.password); err != nil {
				return Result{}, err
			}
			healed = true
		}
		if admin.UserTypeCode != identity.UserTypeAdmin {
			admin.UserTypeCode = identity.UserTypeAdmin
			admin.Touch()
			healed = true
		}
		if healed {
			row.FromDomain(admin)
			if err := tx.Save(&row).Error; err != nil {
				return Result{}, err
			}
			res.Updated++
		}
	}

	relationRes, err := s.ensureSuperAdminRole(tx, row)
	if err != nil {
		return Result{}, err
	}
	return res.Add(relationRes), nil
}

// ensureSuperAdminRole grants the SuperAdmin role to the admin account if
// the role exists. A missing role is not an error; the grant happens on the
// next run after roles are seeded.
func (s *AdminSeeder) ensureSuperAdminRole(tx *gorm.DB, admin models.UserModel) (Result, error) {
	var role models.RoleModel
	err := tx.Where("code = ?", identity.RoleCodeSuperAdmin).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Result{}, nil
	}
	if err != nil {
		return Result{}, err
	}

	var count int64
	if err := tx.Model(&models.UserRoleModel{}).
		Where("user_id = ? AND role_id = ?", admin.ID, role.ID).
		Count(&count).Error; err != nil {
		return Result{}, err
	}
	if count > 0 {
		return Result{}, nil
	}

	relation := models.UserRoleModel{
		UserID:    admin.ID,
		RoleID:    role.ID,
		CreatedAt: time.Now(),
	}
	if err := tx.Create(&relation).Error; err != nil {
		return Result{}, err
	}
	return Result{Inserted: 1}, nil
}
