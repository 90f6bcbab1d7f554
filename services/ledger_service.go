package services

import (
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/ledger"
	"github.com/coachdesk/coachdesk-api/model"
	"github.com/coachdesk/coachdesk-api/utils/apperr"
)

// LedgerService loads entity snapshots and runs the pure aggregation core
// over them. All derivation lives in the ledger package; this service only
// fetches and maps.
type LedgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new ledger service
func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// LoadSnapshots fetches every student with enrollments and payments and
// maps them into ledger snapshots.
func (s *LedgerService) LoadSnapshots() ([]ledger.StudentSnapshot, error) {
	var students []model.Student
	if err := s.db.Preload("Enrollments.Payments").Find(&students).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "failed to load students", err)
	}

	snapshots := make([]ledger.StudentSnapshot, 0, len(students))
	for _, st := range students {
		snapshots = append(snapshots, SnapshotStudent(st))
	}
	return snapshots, nil
}

// SnapshotStudent maps a stored student onto the ledger's snapshot types.
func SnapshotStudent(st model.Student) ledger.StudentSnapshot {
	snap := ledger.StudentSnapshot{
		ID:      st.ID,
		Name:    st.Name,
		Mobile:  st.Mobile,
		Mobile2: st.Mobile2,
	}
	for _, e := range st.Enrollments {
		es := ledger.EnrollmentSnapshot{
			CourseName: e.CourseName,
			TotalFee:   e.TotalFee,
			DueDate:    e.DueDate,
		}
		for _, p := range e.Payments {
			es.Payments = append(es.Payments, ledger.PaymentRecord{
				Amount:    p.Amount,
				Discount:  p.Discount,
				Date:      p.Date,
				Note:      p.Note,
				ReceiptNo: p.ReceiptNo,
			})
		}
		snap.Enrollments = append(snap.Enrollments, es)
	}
	return snap
}

// Dashboard returns the portfolio totals for the dashboard cards.
func (s *LedgerService) Dashboard() (ledger.PortfolioTotals, error) {
	snapshots, err := s.LoadSnapshots()
	if err != nil {
		return ledger.PortfolioTotals{}, err
	}
	return ledger.ComputePortfolioTotals(snapshots), nil
}

// EnrollmentLedger is one enrollment of a student with derived totals, as
// shown on the student detail screen.
type EnrollmentLedger struct {
	EnrollmentID uint          `json:"enrollment_id"`
	CourseName   string        `json:"course_name"`
	DueDate      string        `json:"due_date,omitempty"`
	Totals       ledger.Totals `json:"totals"`
	// DisplayBalance is the clamped balance list views show
	DisplayBalance float64 `json:"display_balance"`
}

// StudentLedger returns per-enrollment totals for one student.
func (s *LedgerService) StudentLedger(studentID uint) ([]EnrollmentLedger, error) {
	var st model.Student
	err := s.db.Preload("Enrollments.Payments").First(&st, studentID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.New(apperr.KindNotFound, "student not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "failed to load student", err)
	}

	rows := make([]EnrollmentLedger, 0, len(st.Enrollments))
	for _, e := range st.Enrollments {
		payments := make([]ledger.PaymentRecord, 0, len(e.Payments))
		for _, p := range e.Payments {
			payments = append(payments, ledger.PaymentRecord{
				Amount:   p.Amount,
				Discount: p.Discount,
				Date:     p.Date,
				Note:     p.Note,
			})
		}
		t := ledger.ComputeEnrollmentTotals(e.TotalFee, payments)
		rows = append(rows, EnrollmentLedger{
			EnrollmentID:   e.ID,
			CourseName:     e.CourseName,
			DueDate:        e.DueDate,
			Totals:         t,
			DisplayBalance: t.ClampedBalance(),
		})
	}
	return rows, nil
}

// PaymentsReport runs the payments report filter over a fresh snapshot.
func (s *LedgerService) PaymentsReport(f ledger.PaymentFilter) ([]ledger.PaymentRow, error) {
	snapshots, err := s.LoadSnapshots()
	if err != nil {
		return nil, err
	}
	return ledger.FilterPaymentsReport(snapshots, f), nil
}

// BalanceReport runs the balance report over a fresh snapshot.
func (s *LedgerService) BalanceReport(courseName string) ([]ledger.BalanceRow, error) {
	snapshots, err := s.LoadSnapshots()
	if err != nil {
		return nil, err
	}
	return ledger.FilterBalanceReport(snapshots, courseName), nil
}

// DueReport runs the due report as of the given day.
func (s *LedgerService) DueReport(today string) ([]ledger.BalanceRow, error) {
	snapshots, err := s.LoadSnapshots()
	if err != nil {
		return nil, err
	}
	return ledger.FilterDueReport(snapshots, today), nil
}
