package model

import (
	"time"

	"gorm.io/gorm"
)

// Course represents a program offered by the institute (e.g., Tally, DCA).
// Course names are unique case-insensitively; the handler enforces this with
// a LOWER(name) lookup since the uniqueness is a business rule, not a
// collation guarantee.
type Course struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"not null;index" json:"name"`
	Fee       float64        `gorm:"not null;default:0" json:"fee"`
}

// TableName specifies the table name for Course
func (Course) TableName() string {
	return "courses"
}
