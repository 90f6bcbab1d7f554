package model

import (
	"time"

	"gorm.io/gorm"
)

// Enquiry is a walk-in or phone enquiry from a prospective student. It is
// transient: either deleted outright or consumed by conversion into a
// Student admission.
type Enquiry struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Name       string         `gorm:"not null" json:"name"`
	DOB        string         `gorm:"type:varchar(10)" json:"dob"`
	Age        int            `json:"age"`
	Mobile     string         `gorm:"type:varchar(10)" json:"mobile"`
	Mobile2    string         `gorm:"type:varchar(10)" json:"mobile2"`
	CourseName string         `json:"course_name"`
}

// TableName specifies the table name for Enquiry
func (Enquiry) TableName() string {
	return "enquiries"
}
