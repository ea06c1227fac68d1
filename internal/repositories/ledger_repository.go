package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "github.com/julfkar-mu/khidmat/internal/models/db_models"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

// PaymentFilter narrows a payment scan. Start/End form a half-open
// unix-seconds interval [Start, End); zero fields mean "no constraint".
type PaymentFilter struct {
	Start    int64
	End      int64
	AdminID  int64
	MemberID int64
}

type DonationFilter struct {
	Start   int64
	End     int64
	AdminID int64
}

// PaymentRow is a payment event joined with the responsible admin's
// display name, as reports present it.
type PaymentRow struct {
	ID          int64       `gorm:"column:id"`
	MemberID    int64       `gorm:"column:member_id"`
	MemberName  string      `gorm:"column:member_name"`
	ContactNo   string      `gorm:"column:contact_no"`
	AmountMinor utils.Money `gorm:"column:amount_minor"`
	AdminID     int64       `gorm:"column:admin_id"`
	AdminName   string      `gorm:"column:admin_name"`
	PaidAt      int64       `gorm:"column:paid_at"`
	CreatedAt   int64       `gorm:"column:created_at"`
}

type DonationRow struct {
	ID              int64       `gorm:"column:id"`
	BeneficiaryName string      `gorm:"column:beneficiary_name"`
	ContactNo       string      `gorm:"column:contact_no"`
	AmountMinor     utils.Money `gorm:"column:amount_minor"`
	AdminID         int64       `gorm:"column:admin_id"`
	AdminName       string      `gorm:"column:admin_name"`
	DonatedAt       int64       `gorm:"column:donated_at"`
	CreatedAt       int64       `gorm:"column:created_at"`
}

// LedgerRepository is the event store: append-only payments and
// donations, read back for classification and aggregation. Each insert
// is a single-row create, so a write either lands whole or not at all.
type LedgerRepository interface {
	InsertPayment(ctx context.Context, payment *dbm.Payment) error
	InsertDonation(ctx context.Context, donation *dbm.Donation) error
	// ListPayments returns events oldest-first, insertion order as
	// tie-break, so repeated reads are deterministic.
	ListPayments(ctx context.Context, f PaymentFilter) ([]PaymentRow, error)
	ListDonations(ctx context.Context, f DonationFilter) ([]DonationRow, error)
	// SumPayments and SumDonations scan the full history each call;
	// there is deliberately no persisted balance to drift.
	SumPayments(ctx context.Context) (utils.Money, error)
	SumDonations(ctx context.Context) (utils.Money, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (l *ledgerRepository) InsertPayment(ctx context.Context, payment *dbm.Payment) error {
	return l.db.WithContext(ctx).Create(payment).Error
}

func (l *ledgerRepository) InsertDonation(ctx context.Context, donation *dbm.Donation) error {
	return l.db.WithContext(ctx).Create(donation).Error
}

func (l *ledgerRepository) ListPayments(ctx context.Context, f PaymentFilter) ([]PaymentRow, error) {
	var rows []PaymentRow
	tx := l.db.WithContext(ctx).
		Table("payments p").
		Select("p.id, p.member_id, p.member_name, p.contact_no, p.amount_minor, p.admin_id, a.username AS admin_name, p.paid_at, p.created_at").
		Joins("LEFT JOIN admins a ON a.id = p.admin_id").
		Order("p.paid_at ASC, p.id ASC")
	if f.Start != 0 || f.End != 0 {
		tx = tx.Where("p.paid_at >= ? AND p.paid_at < ?", f.Start, f.End)
	}
	if f.AdminID != 0 {
		tx = tx.Where("p.admin_id = ?", f.AdminID)
	}
	if f.MemberID != 0 {
		tx = tx.Where("p.member_id = ?", f.MemberID)
	}
	err := tx.Find(&rows).Error
	return rows, err
}

func (l *ledgerRepository) ListDonations(ctx context.Context, f DonationFilter) ([]DonationRow, error) {
	var rows []DonationRow
	tx := l.db.WithContext(ctx).
		Table("donations d").
		Select("d.id, d.beneficiary_name, d.contact_no, d.amount_minor, d.admin_id, a.username AS admin_name, d.donated_at, d.created_at").
		Joins("LEFT JOIN admins a ON a.id = d.admin_id").
		Order("d.donated_at ASC, d.id ASC")
	if f.Start != 0 || f.End != 0 {
		tx = tx.Where("d.donated_at >= ? AND d.donated_at < ?", f.Start, f.End)
	}
	if f.AdminID != 0 {
		tx = tx.Where("d.admin_id = ?", f.AdminID)
	}
	err := tx.Find(&rows).Error
	return rows, err
}

func (l *ledgerRepository) SumPayments(ctx context.Context) (utils.Money, error) {
	var sum int64
	err := l.db.WithContext(ctx).
		Table("payments").
		Select("COALESCE(SUM(amount_minor), 0)").
		Scan(&sum).Error
	return utils.Money(sum), err
}

func (l *ledgerRepository) SumDonations(ctx context.Context) (utils.Money, error) {
	var sum int64
	err := l.db.WithContext(ctx).
		Table("donations").
		Select("COALESCE(SUM(amount_minor), 0)").
		Scan(&sum).Error
	return utils.Money(sum), err
}
