package ledger

import "testing"

func TestNum(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"numeric string", "2500", 2500},
		{"padded string", " 99 ", 99},
		{"garbage string", "abc", 0},
		{"bool", true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Num(tc.in); got != tc.want {
				t.Errorf("Num(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDay(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"plain day", "2024-01-15", "2024-01-15"},
		{"timestamp prefix", "2024-01-15T10:30:00Z", "2024-01-15"},
		{"too short", "2024-1-5", ""},
		{"not a date", "yesterday..", ""},
		{"nil", nil, ""},
		{"impossible day", "2024-13-45", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Day(tc.in); got != tc.want {
				t.Errorf("Day(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizePayment_AltAmountField(t *testing.T) {
	// Older dumps stored the paid amount under "total_fee".
	p := NormalizePayment(map[string]any{"total_fee": "1500", "discount": 100.0})
	if p.Amount != 1500 || p.Discount != 100 {
		t.Errorf("got %+v, want amount 1500 discount 100", p)
	}

	// "amount" wins when both are present.
	p = NormalizePayment(map[string]any{"amount": 200.0, "total_fee": 999.0})
	if p.Amount != 200 {
		t.Errorf("amount field should take precedence, got %v", p.Amount)
	}
}

func TestNormalizeStudent_FlatShape(t *testing.T) {
	rec := map[string]any{
		"id": 7.0, "name": "Asha",
		"mobile": "9876543210", "mobile_2": "9123456780",
		"course_name": "Tally", "total_fee": 5000.0,
	}
	fees := []map[string]any{
		{"amount": 2000.0, "discount": 500.0, "date": "2024-01-10"},
	}

	s := NormalizeStudent(rec, fees)
	if s.ID != 7 || s.Name != "Asha" || s.Mobile2 != "9123456780" {
		t.Fatalf("student fields: %+v", s)
	}
	if len(s.Enrollments) != 1 {
		t.Fatalf("flat shape should yield one enrollment, got %d", len(s.Enrollments))
	}

	e := s.Enrollments[0]
	if e.CourseName != "Tally" || e.TotalFee != 5000 {
		t.Fatalf("enrollment fields: %+v", e)
	}
	if got := ComputeEnrollmentTotals(e.TotalFee, e.Payments); got.Balance != 2500 {
		t.Errorf("normalized balance: got %v, want 2500", got.Balance)
	}
}

func TestNormalizeStudent_NestedShape(t *testing.T) {
	rec := map[string]any{
		"id": 3.0, "name": "Ravi", "mobile": "9000000000",
		"courses": []any{
			map[string]any{
				"courseName": "DCA", "totalFee": 8000.0, "dueDate": "2024-04-01",
				"payments": []any{
					map[string]any{"amount": 3000.0},
					map[string]any{"total_fee": 1000.0}, // drifted field name
				},
			},
			map[string]any{"course_name": "Typing", "fee": 2500.0},
		},
	}

	s := NormalizeStudent(rec, nil)
	if len(s.Enrollments) != 2 {
		t.Fatalf("expected 2 enrollments, got %d", len(s.Enrollments))
	}

	dca := s.Enrollments[0]
	if dca.DueDate != "2024-04-01" {
		t.Errorf("due date: got %q", dca.DueDate)
	}
	if got := ComputeEnrollmentTotals(dca.TotalFee, dca.Payments); got.Paid != 4000 {
		t.Errorf("nested payments: paid %v, want 4000", got.Paid)
	}
	if s.Enrollments[1].TotalFee != 2500 {
		t.Errorf("fee fallback: got %v, want 2500", s.Enrollments[1].TotalFee)
	}
}

func TestNormalizeStudent_GarbageDegradesToZero(t *testing.T) {
	rec := map[string]any{
		"id": "??", "name": "Blank",
		"course_name": "Tally", "total_fee": "not-a-number",
	}
	fees := []map[string]any{{"amount": nil, "discount": "x"}}

	s := NormalizeStudent(rec, fees)
	got := ComputeEnrollmentTotals(s.Enrollments[0].TotalFee, s.Enrollments[0].Payments)
	if got != (Totals{}) {
		t.Errorf("garbage input should degrade to zeros, got %+v", got)
	}
}
