package model

import "time"

// Payment is one fee instalment (or discount grant) against an enrollment.
// The payment ledger is append-only: rows are amended, never deleted, so
// there is no soft-delete column here.
type Payment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	EnrollmentID uint      `gorm:"not null;index" json:"enrollment_id"`
	StudentID    uint      `gorm:"not null;index" json:"student_id"`
	Amount       float64   `gorm:"not null;default:0" json:"amount"`
	Discount     float64   `gorm:"not null;default:0" json:"discount"`
	Note         string    `json:"note"`
	Date         string    `gorm:"type:varchar(10);not null;index" json:"date"` // YYYY-MM-DD
	ReceiptNo    string    `gorm:"type:varchar(40);uniqueIndex" json:"receipt_no"`
	ReceiptDate  string    `gorm:"type:varchar(10)" json:"receipt_date"`

	// Relationships
	Enrollment Enrollment `gorm:"foreignKey:EnrollmentID" json:"-"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
