package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "github.com/julfkar-mu/khidmat/internal/models/db_models"
)

type AdminRepository interface {
	Insert(ctx context.Context, admin *dbm.Admin) error
	FindByID(ctx context.Context, id int64) (*dbm.Admin, error)
	FindByUsername(ctx context.Context, username string) (*dbm.Admin, error)
	ListAccountAdmins(ctx context.Context) ([]dbm.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (a *adminRepository) Insert(ctx context.Context, admin *dbm.Admin) error {
	return a.db.WithContext(ctx).Create(admin).Error
}

func (a *adminRepository) FindByID(ctx context.Context, id int64) (*dbm.Admin, error) {
	var admin dbm.Admin
	err := a.db.WithContext(ctx).First(&admin, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (a *adminRepository) FindByUsername(ctx context.Context, username string) (*dbm.Admin, error) {
	var admin dbm.Admin
	err := a.db.WithContext(ctx).First(&admin, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// ListAccountAdmins returns every account_admin ordered by username. A
// breakdown report must account for each of them, including admins with
// no members yet.
func (a *adminRepository) ListAccountAdmins(ctx context.Context) ([]dbm.Admin, error) {
	var admins []dbm.Admin
	err := a.db.WithContext(ctx).
		Where("role = ?", dbm.RoleAccountAdmin).
		Order("username ASC").
		Find(&admins).Error
	return admins, err
}
