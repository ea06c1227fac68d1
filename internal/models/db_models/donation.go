package db_models

import "github.com/julfkar-mu/khidmat/pkg/utils"

// Donation is an ad-hoc contribution with no member reference.
// Immutable once created.
type Donation struct {
	BaseModel
	BeneficiaryName string      `gorm:"size:255" json:"beneficiary_name"`
	ContactNo       string      `gorm:"size:20" json:"contact_no"`
	AmountMinor     utils.Money `gorm:"not null" json:"amount"`
	AdminID         int64       `gorm:"index;not null" json:"admin_id"`
	DonatedAt       int64       `gorm:"index;not null" json:"donated_at"`

	Admin Admin `gorm:"foreignKey:AdminID" json:"-"`
}
