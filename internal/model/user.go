package model

import "time"

// Role values stored on User.Role. Only RoleAdmin unlocks the user
// administration surface; everything else is a regular staff account.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User stores system users with role-based access.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'staff'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
