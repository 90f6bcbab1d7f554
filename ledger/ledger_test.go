package ledger

import "testing"

func TestComputeEnrollmentTotals_NoPayments(t *testing.T) {
	got := ComputeEnrollmentTotals(5000, nil)

	if got.Balance != 5000 {
		t.Errorf("expected full balance 5000, got %v", got.Balance)
	}
	if got.Paid != 0 || got.Discount != 0 {
		t.Errorf("expected zero paid/discount, got %+v", got)
	}
}

func TestComputeEnrollmentTotals_Scenario(t *testing.T) {
	// Course fee 5000, first instalment 2000 with a 500 discount.
	payments := []PaymentRecord{{Amount: 2000, Discount: 500}}

	got := ComputeEnrollmentTotals(5000, payments)
	want := Totals{TotalFee: 5000, Paid: 2000, Discount: 500, Balance: 2500}
	if got != want {
		t.Errorf("after first payment: got %+v, want %+v", got, want)
	}

	// Second instalment settles the account.
	payments = append(payments, PaymentRecord{Amount: 2500})
	got = ComputeEnrollmentTotals(5000, payments)
	if got.Balance != 0 {
		t.Errorf("after second payment: expected zero balance, got %v", got.Balance)
	}
}

func TestComputeEnrollmentTotals_PrefixMonotonic(t *testing.T) {
	payments := []PaymentRecord{
		{Amount: 100, Discount: 10},
		{Amount: 200},
		{Discount: 50},
		{Amount: 0.5, Discount: 0.25},
	}

	prevPaid, prevDiscount := 0.0, 0.0
	for i := 0; i <= len(payments); i++ {
		t1 := ComputeEnrollmentTotals(1000, payments[:i])
		if t1.Paid < prevPaid || t1.Discount < prevDiscount {
			t.Fatalf("prefix %d: accumulation went backwards: %+v", i, t1)
		}
		prevPaid, prevDiscount = t1.Paid, t1.Discount
	}
}

func TestComputeEnrollmentTotals_Idempotent(t *testing.T) {
	payments := []PaymentRecord{{Amount: 300, Discount: 20}, {Amount: 150}}

	first := ComputeEnrollmentTotals(900, payments)
	second := ComputeEnrollmentTotals(900, payments)
	if first != second {
		t.Errorf("same snapshot gave different results: %+v vs %+v", first, second)
	}
}

func TestClampedBalance_Overpaid(t *testing.T) {
	got := ComputeEnrollmentTotals(1000, []PaymentRecord{{Amount: 1500}})

	if got.Balance != -500 {
		t.Errorf("raw balance should stay negative, got %v", got.Balance)
	}
	if got.ClampedBalance() != 0 {
		t.Errorf("clamped balance should floor at 0, got %v", got.ClampedBalance())
	}
}

func TestComputePortfolioTotals(t *testing.T) {
	students := []StudentSnapshot{
		{
			ID: 1, Name: "Asha",
			Enrollments: []EnrollmentSnapshot{
				{CourseName: "Tally", TotalFee: 5000, Payments: []PaymentRecord{{Amount: 2000, Discount: 500}}},
				{CourseName: "Typing", TotalFee: 2500},
			},
		},
		{
			ID: 2, Name: "Ravi",
			Enrollments: []EnrollmentSnapshot{
				{CourseName: "Tally", TotalFee: 5000, Payments: []PaymentRecord{{Amount: 5000}}},
			},
		},
	}

	got := ComputePortfolioTotals(students)
	want := PortfolioTotals{
		TotalStudents: 2,
		TotalFee:      12500,
		TotalPaid:     7000,
		TotalDiscount: 500,
		TotalBalance:  5000,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// Summation is order-independent.
	reversed := []StudentSnapshot{students[1], students[0]}
	if ComputePortfolioTotals(reversed) != want {
		t.Error("portfolio totals depend on student order")
	}
}

func TestContactMobile_FallsBackToSecondary(t *testing.T) {
	s := StudentSnapshot{Mobile2: "9876543210"}
	if s.ContactMobile() != "9876543210" {
		t.Errorf("expected secondary mobile, got %q", s.ContactMobile())
	}

	s.Mobile = "9123456780"
	if s.ContactMobile() != "9123456780" {
		t.Errorf("expected primary mobile, got %q", s.ContactMobile())
	}
}
