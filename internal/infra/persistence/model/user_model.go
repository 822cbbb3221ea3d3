// Package model contains the GORM persistence models. They mirror the
// relational schema and are mapped to and from pure domain entities at the
// repository boundary.
package model

import "time"

// UserModel mirrors the 'users' table. Email and username each carry a named
// unique index; the constraint name is how a racing insert's rejection is
// attributed to the right field.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:uni_users_email"`
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex:uni_users_username"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
