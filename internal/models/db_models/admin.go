package db_models

type AdminRole string

const (
	RoleMasterAdmin  AdminRole = "master_admin"
	RoleAccountAdmin AdminRole = "account_admin"
)

func (r AdminRole) Valid() bool {
	return r == RoleMasterAdmin || r == RoleAccountAdmin
}

// Admin is an account responsible for a subset of members and the
// financial events recorded against them.
type Admin struct {
	BaseModel
	Username     string    `gorm:"uniqueIndex;size:255" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `json:"-"`
	Role         AdminRole `gorm:"size:50;index" json:"role"`

	Members []Member `json:"-"`
}
