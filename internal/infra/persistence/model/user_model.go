// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// UserModel mirrors the 'users' table. IDs are auto-incremented by MySQL.
type UserModel struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:hashed_password;type:varchar(255);not null"`
	CreatedAt    time.Time

	Posts []PostModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
