// Package ledger derives financial totals and report rows from entity
// snapshots. Every function in this package is pure and total: it never
// touches the database, never mutates its inputs, and never returns an
// error. Malformed numeric input degrades to zero and malformed dates
// exclude a record from date-filtered views; see normalize.go for the
// single place that coercion happens.
package ledger

// PaymentRecord is the ledger's view of one payment. Amounts are already
// normalized (missing or garbage values are zero by the time they get here).
type PaymentRecord struct {
	Amount    float64 `json:"amount"`
	Discount  float64 `json:"discount"`
	Date      string  `json:"date"` // YYYY-MM-DD, "" if unknown
	Note      string  `json:"note"`
	ReceiptNo string  `json:"receipt_no"`
}

// EnrollmentSnapshot is one student-course pairing with its payment history.
type EnrollmentSnapshot struct {
	CourseName string          `json:"course_name"`
	TotalFee   float64         `json:"total_fee"`
	DueDate    string          `json:"due_date"` // "" means no due date
	Payments   []PaymentRecord `json:"payments"`
}

// StudentSnapshot is a student with all enrollments, as handed to the
// aggregator by the caller. The aggregator never loads this itself.
type StudentSnapshot struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Mobile      string               `json:"mobile"`
	Mobile2     string               `json:"mobile2"`
	Enrollments []EnrollmentSnapshot `json:"enrollments"`
}

// ContactMobile returns the number reports should display: the primary
// mobile when present, otherwise the secondary.
func (s StudentSnapshot) ContactMobile() string {
	if s.Mobile != "" {
		return s.Mobile
	}
	return s.Mobile2
}

// Totals is the derived financial view of one enrollment.
type Totals struct {
	TotalFee float64 `json:"total_fee"`
	Paid     float64 `json:"paid"`
	Discount float64 `json:"discount"`
	Balance  float64 `json:"balance"`
}

// ClampedBalance is the list-view balance: an over-paid enrollment shows 0,
// never a negative number. Reports use the raw Balance.
func (t Totals) ClampedBalance() float64 {
	if t.Balance < 0 {
		return 0
	}
	return t.Balance
}

// ComputeEnrollmentTotals folds a payment list into {totalFee, paid,
// discount, balance}. balance = totalFee - paid - discount and may go
// negative for over-paid enrollments.
func ComputeEnrollmentTotals(totalFee float64, payments []PaymentRecord) Totals {
	t := Totals{TotalFee: totalFee}
	for _, p := range payments {
		t.Paid += p.Amount
		t.Discount += p.Discount
	}
	t.Balance = t.TotalFee - t.Paid - t.Discount
	return t
}

// PortfolioTotals is the dashboard view across every enrollment of every
// student.
type PortfolioTotals struct {
	TotalStudents int     `json:"total_students"`
	TotalFee      float64 `json:"total_fee"`
	TotalPaid     float64 `json:"total_paid"`
	TotalDiscount float64 `json:"total_discount"`
	TotalBalance  float64 `json:"total_balance"`
}

// ComputePortfolioTotals sums ComputeEnrollmentTotals across a snapshot.
// Plain summation, so the result is independent of student order.
func ComputePortfolioTotals(students []StudentSnapshot) PortfolioTotals {
	pt := PortfolioTotals{TotalStudents: len(students)}
	for _, s := range students {
		for _, e := range s.Enrollments {
			t := ComputeEnrollmentTotals(e.TotalFee, e.Payments)
			pt.TotalFee += t.TotalFee
			pt.TotalPaid += t.Paid
			pt.TotalDiscount += t.Discount
			pt.TotalBalance += t.Balance
		}
	}
	return pt
}
