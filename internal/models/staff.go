package models

import (
	"time"
)

// Staff roles
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Staff is a shop employee owning back-office OAuth clients
type Staff struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	Role      string `gorm:"default:'staff'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Staff) TableName() string {
	return "staff"
}
