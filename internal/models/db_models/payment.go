package db_models

import "github.com/julfkar-mu/khidmat/pkg/utils"

// Payment is a membership-fee event tied to exactly one member.
// Rows are immutable once created; there is no edit or delete path.
// MemberName, ContactNo and AdminID are denormalized onto the event so
// historical reports stay stable if a member is renamed or reassigned.
type Payment struct {
	BaseModel
	MemberID    int64       `gorm:"index;not null" json:"member_id"`
	MemberName  string      `gorm:"size:255" json:"member_name"`
	ContactNo   string      `gorm:"size:20" json:"contact_no"`
	AmountMinor utils.Money `gorm:"not null" json:"amount"`
	AdminID     int64       `gorm:"index;not null" json:"admin_id"`
	PaidAt      int64       `gorm:"index;not null" json:"paid_at"`

	Member Member `gorm:"foreignKey:MemberID" json:"-"`
	Admin  Admin  `gorm:"foreignKey:AdminID" json:"-"`
}
