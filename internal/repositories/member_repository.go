package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "github.com/julfkar-mu/khidmat/internal/models/db_models"
)

// MemberRow is a member joined with its owning admin's display name.
type MemberRow struct {
	ID        int64  `gorm:"column:id"`
	Name      string `gorm:"column:name"`
	MobileNo  string `gorm:"column:mobile_no"`
	Address   string `gorm:"column:address"`
	AdminID   int64  `gorm:"column:admin_id"`
	AdminName string `gorm:"column:admin_name"`
	IsActive  bool   `gorm:"column:is_active"`
	CreatedAt int64  `gorm:"column:created_at"`
	UpdatedAt int64  `gorm:"column:updated_at"`
}

type MemberRepository interface {
	Insert(ctx context.Context, member *dbm.Member) error
	FindByID(ctx context.Context, id int64) (*dbm.Member, error)
	// List returns members newest-first; adminID 0 means all admins.
	List(ctx context.Context, adminID int64) ([]MemberRow, error)
	// ListActive returns active members ordered by admin name then
	// member name; adminID 0 means all admins.
	ListActive(ctx context.Context, adminID int64) ([]MemberRow, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (m *memberRepository) Insert(ctx context.Context, member *dbm.Member) error {
	return m.db.WithContext(ctx).Create(member).Error
}

func (m *memberRepository) FindByID(ctx context.Context, id int64) (*dbm.Member, error) {
	var member dbm.Member
	err := m.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (m *memberRepository) List(ctx context.Context, adminID int64) ([]MemberRow, error) {
	var rows []MemberRow
	tx := m.db.WithContext(ctx).
		Table("members m").
		Select("m.id, m.name, m.mobile_no, m.address, m.admin_id, a.username AS admin_name, m.is_active, m.created_at, m.updated_at").
		Joins("LEFT JOIN admins a ON a.id = m.admin_id").
		Order("m.created_at DESC, m.id DESC")
	if adminID != 0 {
		tx = tx.Where("m.admin_id = ?", adminID)
	}
	err := tx.Find(&rows).Error
	return rows, err
}

func (m *memberRepository) ListActive(ctx context.Context, adminID int64) ([]MemberRow, error) {
	var rows []MemberRow
	tx := m.db.WithContext(ctx).
		Table("members m").
		Select("m.id, m.name, m.mobile_no, m.address, m.admin_id, a.username AS admin_name, m.is_active, m.created_at, m.updated_at").
		Joins("LEFT JOIN admins a ON a.id = m.admin_id").
		Where("m.is_active = ?", true).
		Order("admin_name ASC, m.name ASC, m.id ASC")
	if adminID != 0 {
		tx = tx.Where("m.admin_id = ?", adminID)
	}
	err := tx.Find(&rows).Error
	return rows, err
}

func (m *memberRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return m.db.WithContext(ctx).
		Model(&dbm.Member{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}
