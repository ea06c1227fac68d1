package db_models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel carries the sequential primary key and unix-seconds audit
// stamps shared by every table. The auto-increment id doubles as the
// insertion sequence, which report ordering relies on as a tie-break.
type BaseModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt int64 `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64 `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	if b.CreatedAt == 0 {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}
