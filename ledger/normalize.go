package ledger

import (
	"strconv"
	"strings"
	"time"
)

// This file is the one place loose legacy data is coerced into the
// canonical snapshot types. The browser-era exports of this system drifted
// across revisions: payment amounts appear as "amount" or "total_fee",
// students carry either flat single-course fields or a nested course array,
// and the second mobile number is a late addition. Everything downstream of
// these functions can assume clean, fully-populated snapshots.

// Num coerces an arbitrary decoded JSON value to a float64, treating
// anything missing or unparseable as zero.
func Num(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Str coerces a decoded JSON value to a trimmed string ("" when absent).
func Str(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// Day truncates a date-ish value to a validated "YYYY-MM-DD" day string.
// Anything that does not parse comes back "", which date-filtered reports
// treat as "exclude this record".
func Day(v any) string {
	s := Str(v)
	if len(s) < 10 {
		return ""
	}
	s = s[:10]
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ""
	}
	return s
}

func firstSet(rec map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// NormalizePayment maps one legacy fee row to a PaymentRecord. Older
// revisions stored the paid amount under "total_fee".
func NormalizePayment(rec map[string]any) PaymentRecord {
	return PaymentRecord{
		Amount:    Num(firstSet(rec, "amount", "total_fee")),
		Discount:  Num(rec["discount"]),
		Date:      Day(firstSet(rec, "date", "payment_date", "created_at")),
		Note:      Str(rec["note"]),
		ReceiptNo: Str(firstSet(rec, "receipt_no", "receiptNo")),
	}
}

// NormalizeStudent maps one legacy student row plus its fee rows to a
// StudentSnapshot. Students with a nested course array become multi-
// enrollment snapshots; flat single-course students become one enrollment
// owning every payment row passed in.
func NormalizeStudent(rec map[string]any, payments []map[string]any) StudentSnapshot {
	s := StudentSnapshot{
		ID:      uint(Num(rec["id"])),
		Name:    Str(rec["name"]),
		Mobile:  Str(rec["mobile"]),
		Mobile2: Str(firstSet(rec, "mobile2", "mobile_2")),
	}

	if raw, ok := firstSet(rec, "enrollments", "courses").([]any); ok {
		for _, item := range raw {
			course, ok := item.(map[string]any)
			if !ok {
				continue
			}
			e := EnrollmentSnapshot{
				CourseName: Str(firstSet(course, "course_name", "courseName", "course", "name")),
				TotalFee:   Num(firstSet(course, "total_fee", "totalFee", "fee")),
				DueDate:    Day(firstSet(course, "due_date", "dueDate")),
			}
			if rawPays, ok := course["payments"].([]any); ok {
				for _, rp := range rawPays {
					if pm, ok := rp.(map[string]any); ok {
						e.Payments = append(e.Payments, NormalizePayment(pm))
					}
				}
			}
			s.Enrollments = append(s.Enrollments, e)
		}
		return s
	}

	// Flat single-course shape: the student row itself carries the course
	// fields and every fee row belongs to that one enrollment.
	e := EnrollmentSnapshot{
		CourseName: Str(firstSet(rec, "course_name", "courseName", "course")),
		TotalFee:   Num(firstSet(rec, "total_fee", "totalFee")),
		DueDate:    Day(firstSet(rec, "due_date", "dueDate")),
	}
	for _, p := range payments {
		e.Payments = append(e.Payments, NormalizePayment(p))
	}
	s.Enrollments = []EnrollmentSnapshot{e}
	return s
}
