package ledger

import "sort"

// PaymentFilter narrows the payments report. Zero values mean "no filter".
// Dates are inclusive YYYY-MM-DD day bounds; because the format is
// zero-padded ISO, lexicographic comparison is correct.
type PaymentFilter struct {
	CourseName string
	DateFrom   string
	DateTo     string
}

// PaymentRow is one payments-report line, joined with display names.
type PaymentRow struct {
	StudentID   uint    `json:"student_id"`
	StudentName string  `json:"student_name"`
	CourseName  string  `json:"course_name"`
	Amount      float64 `json:"amount"`
	Discount    float64 `json:"discount"`
	Date        string  `json:"date"`
	Note        string  `json:"note"`
	ReceiptNo   string  `json:"receipt_no"`
}

// FilterPaymentsReport returns every payment matching the filter. The course
// match is exact (case-sensitive). A payment with no usable date is excluded
// whenever a date bound is set. Rows come back ordered by date descending,
// ties keeping input order.
func FilterPaymentsReport(students []StudentSnapshot, f PaymentFilter) []PaymentRow {
	rows := []PaymentRow{}
	for _, s := range students {
		for _, e := range s.Enrollments {
			if f.CourseName != "" && e.CourseName != f.CourseName {
				continue
			}
			for _, p := range e.Payments {
				if f.DateFrom != "" || f.DateTo != "" {
					if p.Date == "" {
						continue
					}
					if f.DateFrom != "" && p.Date < f.DateFrom {
						continue
					}
					if f.DateTo != "" && p.Date > f.DateTo {
						continue
					}
				}
				rows = append(rows, PaymentRow{
					StudentID:   s.ID,
					StudentName: s.Name,
					CourseName:  e.CourseName,
					Amount:      p.Amount,
					Discount:    p.Discount,
					Date:        p.Date,
					Note:        p.Note,
					ReceiptNo:   p.ReceiptNo,
				})
			}
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	return rows
}

// BalanceRow is one balance-report line: the point-in-time financial state
// of a single enrollment.
type BalanceRow struct {
	StudentID   uint    `json:"student_id"`
	StudentName string  `json:"student_name"`
	CourseName  string  `json:"course_name"`
	TotalFee    float64 `json:"total_fee"`
	Paid        float64 `json:"paid"`
	Discount    float64 `json:"discount"`
	Balance     float64 `json:"balance"`
	Mobile      string  `json:"mobile"`
	DueDate     string  `json:"due_date,omitempty"`
}

// FilterBalanceReport returns a balance row per enrollment, optionally
// restricted to one course (exact match). Balances are raw: an over-paid
// enrollment shows negative.
func FilterBalanceReport(students []StudentSnapshot, courseName string) []BalanceRow {
	rows := []BalanceRow{}
	for _, s := range students {
		for _, e := range s.Enrollments {
			if courseName != "" && e.CourseName != courseName {
				continue
			}
			rows = append(rows, balanceRow(s, e))
		}
	}
	return rows
}

// FilterDueReport returns enrollments with outstanding money past their due
// date: dueDate set, dueDate <= today, raw balance > 0. An enrollment with
// no due date is never due; a settled one is excluded however overdue the
// date is.
func FilterDueReport(students []StudentSnapshot, today string) []BalanceRow {
	rows := []BalanceRow{}
	for _, s := range students {
		for _, e := range s.Enrollments {
			if e.DueDate == "" || e.DueDate > today {
				continue
			}
			row := balanceRow(s, e)
			if row.Balance <= 0 {
				continue
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func balanceRow(s StudentSnapshot, e EnrollmentSnapshot) BalanceRow {
	t := ComputeEnrollmentTotals(e.TotalFee, e.Payments)
	return BalanceRow{
		StudentID:   s.ID,
		StudentName: s.Name,
		CourseName:  e.CourseName,
		TotalFee:    t.TotalFee,
		Paid:        t.Paid,
		Discount:    t.Discount,
		Balance:     t.Balance,
		Mobile:      s.ContactMobile(),
		DueDate:     e.DueDate,
	}
}
