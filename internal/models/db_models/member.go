package db_models

// Member is a person enrolled for recurring contributions. Members are
// never deleted; IsActive is the only mutable field and deactivation
// leaves historical events untouched.
type Member struct {
	BaseModel
	Name     string `gorm:"size:255" json:"name"`
	MobileNo string `gorm:"size:20;index" json:"mobile_no"`
	Address  string `json:"address"`
	AdminID  int64  `gorm:"index" json:"admin_id"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Admin Admin `gorm:"foreignKey:AdminID" json:"-"`
}
