package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/model"
	"github.com/coachdesk/coachdesk-api/utils/apperr"
)

func TestImportLegacy_FlatSchema(t *testing.T) {
	db := openTestDB(t)
	svc := NewImportService(db)

	dump := []byte(`{
		"courses": [
			{"name": "Tally", "fee": 5000},
			{"name": "tally", "fee": 6000},
			{"name": "DCA", "fee": "8000"}
		],
		"students": [
			{"id": 1, "name": "Ravi", "mobile": "9876543210", "course_name": "Tally", "total_fee": 5000},
			{"id": 2, "name": "Meena", "mobile": "9123456780", "course_name": "DCA", "total_fee": 8000}
		],
		"fees": [
			{"student_id": 1, "amount": 2000, "discount": 500, "date": "2025-06-01"},
			{"student_id": 1, "total_fee": 1000, "date": "2025-07-01"},
			{"student_id": 2, "amount": 3000, "date": "2025-06-15"}
		]
	}`)

	summary, err := svc.ImportLegacy(dump)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if summary.Courses != 2 || summary.SkippedCourses != 1 {
		t.Errorf("courses = %d skipped = %d, want 2/1", summary.Courses, summary.SkippedCourses)
	}
	if summary.Students != 2 || summary.Enrollments != 2 || summary.Payments != 3 {
		t.Errorf("students/enrollments/payments = %d/%d/%d, want 2/2/3",
			summary.Students, summary.Enrollments, summary.Payments)
	}

	// The "total_fee" payment key from older dumps counts as a paid amount.
	rows, err := NewLedgerService(db).StudentLedger(findStudentID(t, db, "Ravi"))
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}
	if rows[0].Totals.Paid != 3000 || rows[0].Totals.Discount != 500 {
		t.Errorf("paid/discount = %v/%v, want 3000/500", rows[0].Totals.Paid, rows[0].Totals.Discount)
	}
	if rows[0].Totals.Balance != 1500 {
		t.Errorf("balance = %v, want 1500", rows[0].Totals.Balance)
	}
}

func TestImportLegacy_NestedSchema(t *testing.T) {
	db := openTestDB(t)
	svc := NewImportService(db)

	dump := []byte(`{
		"students": [{
			"id": 7,
			"name": "Asha",
			"mobile": "9876543210",
			"courses": [
				{"course_name": "Typing", "fee": 2500, "payments": [{"amount": 2500, "date": "2025-08-01"}]},
				{"courseName": "Tally", "totalFee": 5000}
			]
		}]
	}`)

	summary, err := svc.ImportLegacy(dump)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if summary.Students != 1 || summary.Enrollments != 2 || summary.Payments != 1 {
		t.Errorf("students/enrollments/payments = %d/%d/%d, want 1/2/1",
			summary.Students, summary.Enrollments, summary.Payments)
	}

	var payment model.Payment
	if err := db.First(&payment).Error; err != nil {
		t.Fatalf("load payment: %v", err)
	}
	if payment.StudentID == 0 {
		t.Error("imported payment not linked back to its student")
	}
	if payment.ReceiptNo == "" {
		t.Error("legacy payment without a receipt should get one issued")
	}
}

func TestImportLegacy_SkipsNamelessRows(t *testing.T) {
	db := openTestDB(t)
	svc := NewImportService(db)

	dump := []byte(`{
		"courses": [{"fee": 1000}],
		"students": [{"id": 3, "mobile": "9876543210"}]
	}`)

	summary, err := svc.ImportLegacy(dump)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if summary.Courses != 0 || summary.Students != 0 {
		t.Errorf("nameless rows should be skipped, got %+v", summary)
	}
}

func TestImportLegacy_RejectsBadJSON(t *testing.T) {
	db := openTestDB(t)
	svc := NewImportService(db)

	_, err := svc.ImportLegacy([]byte(`{"students": [`))
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("kind = %v, want validation", apperr.KindOf(err))
	}
}

func findStudentID(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	var st model.Student
	if err := db.Where("name = ?", name).First(&st).Error; err != nil {
		t.Fatalf("find student %q: %v", name, err)
	}
	return st.ID
}
