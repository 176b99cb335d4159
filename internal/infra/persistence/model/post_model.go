package model

import "time"

// PostModel mirrors the 'posts' table. MEDIUMTEXT comfortably holds the 1 MiB
// body limit enforced at the API boundary.
type PostModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Text      string `gorm:"type:mediumtext;not null"`
	OwnerID   uint64 `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
