package ledger

import "testing"

func reportFixture() []StudentSnapshot {
	return []StudentSnapshot{
		{
			ID: 1, Name: "Asha", Mobile: "9876543210",
			Enrollments: []EnrollmentSnapshot{
				{
					CourseName: "Tally", TotalFee: 5000, DueDate: "2024-03-01",
					Payments: []PaymentRecord{
						{Amount: 2000, Discount: 500, Date: "2024-01-10"},
						{Amount: 1000, Date: "2024-02-15"},
					},
				},
			},
		},
		{
			ID: 2, Name: "Ravi", Mobile2: "9123456780",
			Enrollments: []EnrollmentSnapshot{
				{
					CourseName: "Typing", TotalFee: 2500,
					Payments: []PaymentRecord{
						{Amount: 2500, Date: "2024-01-10"},
						{Amount: 100, Date: ""}, // legacy row with no date
					},
				},
			},
		},
	}
}

func TestFilterPaymentsReport_NoFilterIncludesUndated(t *testing.T) {
	rows := FilterPaymentsReport(reportFixture(), PaymentFilter{})
	if len(rows) != 4 {
		t.Fatalf("expected all 4 payments, got %d", len(rows))
	}
}

func TestFilterPaymentsReport_DateBoundsInclusive(t *testing.T) {
	students := reportFixture()

	// Exact boundary days are included.
	rows := FilterPaymentsReport(students, PaymentFilter{DateFrom: "2024-01-10", DateTo: "2024-02-15"})
	if len(rows) != 3 {
		t.Fatalf("inclusive bounds: expected 3 rows, got %d", len(rows))
	}

	// One day inside either bound drops the boundary payments.
	rows = FilterPaymentsReport(students, PaymentFilter{DateFrom: "2024-01-11", DateTo: "2024-02-14"})
	if len(rows) != 0 {
		t.Fatalf("narrowed bounds: expected 0 rows, got %d", len(rows))
	}
}

func TestFilterPaymentsReport_UndatedExcludedFromDateFilter(t *testing.T) {
	rows := FilterPaymentsReport(reportFixture(), PaymentFilter{DateFrom: "2000-01-01"})
	for _, r := range rows {
		if r.Date == "" {
			t.Error("undated payment leaked into a date-filtered report")
		}
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 dated rows, got %d", len(rows))
	}
}

func TestFilterPaymentsReport_CourseExactMatch(t *testing.T) {
	rows := FilterPaymentsReport(reportFixture(), PaymentFilter{CourseName: "Tally"})
	if len(rows) != 2 {
		t.Fatalf("expected 2 Tally rows, got %d", len(rows))
	}

	// The match is case-sensitive, mirroring the report screen's dropdown.
	rows = FilterPaymentsReport(reportFixture(), PaymentFilter{CourseName: "tally"})
	if len(rows) != 0 {
		t.Fatalf("lowercase course name should match nothing, got %d rows", len(rows))
	}
}

func TestFilterPaymentsReport_OrderedByDateDescending(t *testing.T) {
	rows := FilterPaymentsReport(reportFixture(), PaymentFilter{DateFrom: "2024-01-01", DateTo: "2024-12-31"})
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Date < rows[i].Date {
			t.Fatalf("rows out of order: %q before %q", rows[i-1].Date, rows[i].Date)
		}
	}
}

func TestFilterBalanceReport(t *testing.T) {
	rows := FilterBalanceReport(reportFixture(), "")
	if len(rows) != 2 {
		t.Fatalf("expected one row per enrollment, got %d", len(rows))
	}

	tally := rows[0]
	if tally.Balance != 1500 {
		t.Errorf("Tally balance: got %v, want 1500", tally.Balance)
	}
	if tally.Mobile != "9876543210" {
		t.Errorf("expected primary mobile on row, got %q", tally.Mobile)
	}

	// Ravi over-paid by the undated 100; raw balance goes negative.
	typing := rows[1]
	if typing.Balance != -100 {
		t.Errorf("Typing balance: got %v, want -100", typing.Balance)
	}
	if typing.Mobile != "9123456780" {
		t.Errorf("expected secondary mobile fallback, got %q", typing.Mobile)
	}

	if got := FilterBalanceReport(reportFixture(), "Tally"); len(got) != 1 {
		t.Errorf("course filter: expected 1 row, got %d", len(got))
	}
}

func TestFilterDueReport(t *testing.T) {
	students := reportFixture()

	// Tally is due 2024-03-01 with 1500 outstanding; Typing has no due date.
	rows := FilterDueReport(students, "2024-03-01")
	if len(rows) != 1 || rows[0].CourseName != "Tally" {
		t.Fatalf("expected only the Tally enrollment, got %+v", rows)
	}

	// Not yet due.
	if rows := FilterDueReport(students, "2024-02-28"); len(rows) != 0 {
		t.Fatalf("due date in the future should not report, got %d rows", len(rows))
	}
}

func TestFilterDueReport_SettledEnrollmentExcluded(t *testing.T) {
	students := []StudentSnapshot{{
		ID: 1, Name: "Asha",
		Enrollments: []EnrollmentSnapshot{{
			CourseName: "Tally", TotalFee: 5000, DueDate: "2024-01-01",
			Payments: []PaymentRecord{{Amount: 4500, Discount: 500}},
		}},
	}}

	// Overdue by date but fully settled: the report is about outstanding
	// money, not expired deadlines.
	if rows := FilterDueReport(students, "2024-06-01"); len(rows) != 0 {
		t.Fatalf("settled enrollment reported as due: %+v", rows)
	}
}

func TestFilterDueReport_NeverReturnsNonPositiveBalance(t *testing.T) {
	students := reportFixture()
	students = append(students, StudentSnapshot{
		ID: 3, Name: "Meena",
		Enrollments: []EnrollmentSnapshot{{
			CourseName: "Typing", TotalFee: 1000, DueDate: "2020-01-01",
			Payments: []PaymentRecord{{Amount: 1200}},
		}},
	})

	for _, row := range FilterDueReport(students, "2099-12-31") {
		if row.Balance <= 0 {
			t.Errorf("due report row with non-positive balance: %+v", row)
		}
		if row.DueDate == "" {
			t.Errorf("due report row with no due date: %+v", row)
		}
	}
}
