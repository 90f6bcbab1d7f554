package services

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/ledger"
	"github.com/coachdesk/coachdesk-api/model"
	"github.com/coachdesk/coachdesk-api/utils/apperr"
	"github.com/coachdesk/coachdesk-api/utils/validation"
)

// AdmissionService owns the student admission and enquiry conversion
// workflows.
type AdmissionService struct {
	db *gorm.DB
}

// NewAdmissionService creates a new admission service
func NewAdmissionService(db *gorm.DB) *AdmissionService {
	return &AdmissionService{db: db}
}

// AdmitStudentRequest carries the admission form fields.
type AdmitStudentRequest struct {
	Name      string
	DOB       string
	Age       int
	Address   string
	Mobile    string
	Mobile2   string
	CourseID  uint
	DueDate   string
	CreatedBy string
}

// AdmitStudent creates a student with their first enrollment. The course
// fee is snapshotted onto the enrollment so later catalog edits never
// rewrite this student's fee schedule.
func (s *AdmissionService) AdmitStudent(req AdmitStudentRequest) (*model.Student, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.New(apperr.KindValidation, "student name is required")
	}

	m1, m2, err := validation.ValidateMobiles(req.Mobile, req.Mobile2)
	if err != nil {
		return nil, err
	}

	var course model.Course
	if err := s.db.First(&course, req.CourseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.New(apperr.KindNotFound, "course not found")
		}
		return nil, apperr.Wrap(apperr.KindStore, "failed to load course", err)
	}

	student := model.Student{
		Name:      name,
		DOB:       ledger.Day(req.DOB),
		Age:       req.Age,
		Address:   strings.TrimSpace(req.Address),
		Mobile:    m1,
		Mobile2:   m2,
		CreatedBy: req.CreatedBy,
		Enrollments: []model.Enrollment{{
			CourseName: course.Name,
			TotalFee:   course.Fee,
			DueDate:    ledger.Day(req.DueDate),
		}},
	}

	if err := s.db.Create(&student).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "failed to create student", err)
	}
	return &student, nil
}

// AddEnrollment enrolls an existing student into another course.
func (s *AdmissionService) AddEnrollment(studentID, courseID uint, dueDate string) (*model.Enrollment, error) {
	var student model.Student
	if err := s.db.First(&student, studentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.New(apperr.KindNotFound, "student not found")
		}
		return nil, apperr.Wrap(apperr.KindStore, "failed to load student", err)
	}

	var course model.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.New(apperr.KindNotFound, "course not found")
		}
		return nil, apperr.Wrap(apperr.KindStore, "failed to load course", err)
	}

	enrollment := model.Enrollment{
		StudentID:  student.ID,
		CourseName: course.Name,
		TotalFee:   course.Fee,
		DueDate:    ledger.Day(dueDate),
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "failed to create enrollment", err)
	}
	return &enrollment, nil
}

// ConvertResult reports the outcome of an enquiry conversion.
type ConvertResult struct {
	Student *model.Student `json:"student"`
	// CourseMatched is false when the enquiry named a course that no longer
	// exists; the student is admitted with a zero fee in that case.
	CourseMatched bool `json:"course_matched"`
	// OrphanedEnquiry is true when the student was created but deleting the
	// enquiry failed; the enquiry is still on file.
	OrphanedEnquiry bool `json:"orphaned_enquiry"`
}

// ConvertEnquiry promotes an enquiry into a student admission. The order is
// strictly create-then-delete: a failed student creation leaves the enquiry
// untouched, while a failed enquiry deletion leaves both records (reported
// via OrphanedEnquiry, never rolled back).
func (s *AdmissionService) ConvertEnquiry(enquiryID uint, createdBy string) (*ConvertResult, error) {
	var enquiry model.Enquiry
	if err := s.db.First(&enquiry, enquiryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.New(apperr.KindNotFound, "enquiry not found")
		}
		return nil, apperr.Wrap(apperr.KindStore, "failed to load enquiry", err)
	}

	m1, m2, err := validation.ValidateMobiles(enquiry.Mobile, enquiry.Mobile2)
	if err != nil {
		return nil, err
	}

	// Exact-name course lookup; an unknown or deleted course admits at fee 0.
	totalFee := 0.0
	matched := false
	var course model.Course
	if err := s.db.Where("name = ?", enquiry.CourseName).First(&course).Error; err == nil {
		totalFee = course.Fee
		matched = true
	} else if err != gorm.ErrRecordNotFound {
		return nil, apperr.Wrap(apperr.KindStore, "failed to look up course", err)
	}
	if !matched {
		log.Printf("enquiry %d names unknown course %q, admitting with zero fee", enquiry.ID, enquiry.CourseName)
	}

	student := model.Student{
		Name:      enquiry.Name,
		DOB:       enquiry.DOB,
		Age:       enquiry.Age,
		Mobile:    m1,
		Mobile2:   m2,
		CreatedBy: createdBy,
		Enrollments: []model.Enrollment{{
			CourseName: enquiry.CourseName,
			TotalFee:   totalFee,
		}},
	}

	if err := s.db.Create(&student).Error; err != nil {
		return nil, apperr.StoreStep("create-student", "failed to create student from enquiry", err)
	}

	result := &ConvertResult{Student: &student, CourseMatched: matched}

	if err := s.db.Delete(&enquiry).Error; err != nil {
		// The admission stands; the leftover enquiry is reported, not rolled back.
		log.Printf("enquiry %d converted but not deleted: %v", enquiry.ID, err)
		result.OrphanedEnquiry = true
	}

	return result, nil
}
