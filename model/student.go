package model

import (
	"time"

	"gorm.io/gorm"
)

// Student represents an admitted student. Calendar-day fields (DOB, payment
// dates, due dates) are stored as zero-padded ISO "YYYY-MM-DD" strings so
// that day-granularity comparisons reduce to lexicographic order.
type Student struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	DOB       string         `gorm:"type:varchar(10)" json:"dob"`
	Age       int            `json:"age"`
	Address   string         `json:"address"`
	Mobile    string         `gorm:"type:varchar(10);index" json:"mobile"`
	Mobile2   string         `gorm:"type:varchar(10)" json:"mobile2"`
	CreatedBy string         `json:"created_by"` // username of the admitting staff

	// Relationships
	Enrollments []Enrollment `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"enrollments,omitempty"`
}

// TableName specifies the table name for Student
func (Student) TableName() string {
	return "students"
}

// Enrollment ties a student to one course. CourseName and TotalFee are
// snapshotted from the course at admission time: later edits or deletion of
// the course never rewrite historical fee schedules.
type Enrollment struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	StudentID  uint           `gorm:"not null;index" json:"student_id"`
	CourseName string         `gorm:"not null" json:"course_name"`
	TotalFee   float64        `gorm:"not null;default:0" json:"total_fee"`
	DueDate    string         `gorm:"type:varchar(10)" json:"due_date"` // "" means no due date

	// Relationships
	Student  Student   `gorm:"foreignKey:StudentID" json:"-"`
	Payments []Payment `gorm:"foreignKey:EnrollmentID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

// TableName specifies the table name for Enrollment
func (Enrollment) TableName() string {
	return "enrollments"
}
