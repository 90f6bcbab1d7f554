package services

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/ledger"
	"github.com/coachdesk/coachdesk-api/model"
	"github.com/coachdesk/coachdesk-api/utils/apperr"
)

// ImportService ingests JSON dumps exported by the older browser-resident
// versions of this panel. Those dumps drifted across revisions (flat
// single-course students vs nested course arrays, "amount" vs "total_fee"
// payments); the ledger normalizer turns each shape into canonical
// snapshots before anything is written.
type ImportService struct {
	db *gorm.DB
}

// NewImportService creates a new import service
func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

// legacyDump mirrors the old app's localStorage/row-store export layout.
type legacyDump struct {
	Courses  []map[string]any `json:"courses"`
	Students []map[string]any `json:"students"`
	Fees     []map[string]any `json:"fees"`
}

// ImportSummary reports what an import created.
type ImportSummary struct {
	Courses     int `json:"courses"`
	Students    int `json:"students"`
	Enrollments int `json:"enrollments"`
	Payments    int `json:"payments"`
	// SkippedCourses counts catalog rows dropped as duplicates
	SkippedCourses int `json:"skipped_courses"`
}

// ImportLegacy loads a legacy JSON dump in one transaction.
func (s *ImportService) ImportLegacy(payload []byte) (*ImportSummary, error) {
	var dump legacyDump
	if err := json.Unmarshal(payload, &dump); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "dump is not valid JSON", err)
	}

	summary := &ImportSummary{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, rec := range dump.Courses {
			name := ledger.Str(rec["name"])
			if name == "" {
				continue
			}
			var count int64
			if err := tx.Model(&model.Course{}).
				Where("LOWER(name) = ?", strings.ToLower(name)).
				Count(&count).Error; err != nil {
				return apperr.Wrap(apperr.KindStore, "failed to check course", err)
			}
			if count > 0 {
				summary.SkippedCourses++
				continue
			}
			course := model.Course{Name: name, Fee: ledger.Num(rec["fee"])}
			if err := tx.Create(&course).Error; err != nil {
				return apperr.Wrap(apperr.KindStore, "failed to import course", err)
			}
			summary.Courses++
		}

		// Index fee rows by their legacy student id for the flat schema.
		feesByStudent := map[float64][]map[string]any{}
		for _, fee := range dump.Fees {
			sid := ledger.Num(fee["student_id"])
			feesByStudent[sid] = append(feesByStudent[sid], fee)
		}

		for _, rec := range dump.Students {
			snap := ledger.NormalizeStudent(rec, feesByStudent[ledger.Num(rec["id"])])
			if snap.Name == "" {
				continue
			}

			student := model.Student{
				Name:      snap.Name,
				DOB:       ledger.Day(rec["dob"]),
				Age:       int(ledger.Num(rec["age"])),
				Address:   ledger.Str(rec["address"]),
				Mobile:    snap.Mobile,
				Mobile2:   snap.Mobile2,
				CreatedBy: "legacy-import",
			}
			for _, e := range snap.Enrollments {
				enrollment := model.Enrollment{
					CourseName: e.CourseName,
					TotalFee:   e.TotalFee,
					DueDate:    e.DueDate,
				}
				for _, p := range e.Payments {
					receiptNo := p.ReceiptNo
					if receiptNo == "" {
						// Legacy rows predate receipt numbers; issue one now.
						receiptNo = uuid.New().String()
					}
					enrollment.Payments = append(enrollment.Payments, model.Payment{
						Amount:      p.Amount,
						Discount:    p.Discount,
						Note:        p.Note,
						Date:        p.Date,
						ReceiptNo:   receiptNo,
						ReceiptDate: p.Date,
					})
					summary.Payments++
				}
				student.Enrollments = append(student.Enrollments, enrollment)
				summary.Enrollments++
			}

			if err := tx.Create(&student).Error; err != nil {
				return apperr.Wrap(apperr.KindStore, "failed to import student", err)
			}
			// Payments need the student id, which gorm only fills on the
			// nested enrollment rows after create.
			for _, e := range student.Enrollments {
				if err := tx.Model(&model.Payment{}).
					Where("enrollment_id = ?", e.ID).
					Update("student_id", student.ID).Error; err != nil {
					return apperr.Wrap(apperr.KindStore, "failed to link imported payments", err)
				}
			}
			summary.Students++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
