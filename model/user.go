package model

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Data-entry users can record admissions and payments but
// cannot manage courses or other users.
const (
	RoleAdmin     = "admin"
	RoleDataEntry = "data-entry"
)

// User represents a staff account at the institute.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"` // Never expose password in JSON
	Name         string         `json:"name"`
	Role         string         `gorm:"type:varchar(20);default:'data-entry'" json:"role"` // admin, data-entry
	Seed         bool           `gorm:"default:false" json:"-"`                            // seed admin cannot be deleted
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
