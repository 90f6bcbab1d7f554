package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/model"
	"github.com/coachdesk/coachdesk-api/utils/apperr"
)

func TestAdmitStudent_SnapshotsCourseFee(t *testing.T) {
	db := openTestDB(t)
	svc := NewAdmissionService(db)

	course := model.Course{Name: "Tally", Fee: 5000}
	mustCreate(t, db, &course)

	student, err := svc.AdmitStudent(AdmitStudentRequest{
		Name:      "Ravi Kumar",
		Mobile:    "9876543210",
		CourseID:  course.ID,
		DueDate:   "2026-10-01",
		CreatedBy: "admin",
	})
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	if len(student.Enrollments) != 1 {
		t.Fatalf("expected 1 enrollment, got %d", len(student.Enrollments))
	}
	if student.Enrollments[0].TotalFee != 5000 {
		t.Errorf("snapshot fee = %v, want 5000", student.Enrollments[0].TotalFee)
	}

	// A later catalog edit must not rewrite the snapshot.
	if err := db.Model(&course).Update("fee", 9999).Error; err != nil {
		t.Fatalf("update course: %v", err)
	}
	var enrollment model.Enrollment
	if err := db.First(&enrollment, student.Enrollments[0].ID).Error; err != nil {
		t.Fatalf("reload enrollment: %v", err)
	}
	if enrollment.TotalFee != 5000 {
		t.Errorf("fee after catalog edit = %v, want 5000", enrollment.TotalFee)
	}
}

func TestAdmitStudent_Rejections(t *testing.T) {
	db := openTestDB(t)
	svc := NewAdmissionService(db)

	course := model.Course{Name: "DCA", Fee: 8000}
	mustCreate(t, db, &course)

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.AdmitStudent(AdmitStudentRequest{Name: "  ", Mobile: "9876543210", CourseID: course.ID})
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("kind = %v, want validation", apperr.KindOf(err))
		}
	})

	t.Run("no valid mobile", func(t *testing.T) {
		_, err := svc.AdmitStudent(AdmitStudentRequest{Name: "Ravi", Mobile: "98765", CourseID: course.ID})
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("kind = %v, want validation", apperr.KindOf(err))
		}
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := svc.AdmitStudent(AdmitStudentRequest{Name: "Ravi", Mobile: "9876543210", CourseID: 999})
		if apperr.KindOf(err) != apperr.KindNotFound {
			t.Errorf("kind = %v, want not-found", apperr.KindOf(err))
		}
	})
}

func TestAddEnrollment(t *testing.T) {
	db := openTestDB(t)
	svc := NewAdmissionService(db)

	tally := model.Course{Name: "Tally", Fee: 5000}
	typing := model.Course{Name: "Typing", Fee: 2500}
	mustCreate(t, db, &tally)
	mustCreate(t, db, &typing)

	student, err := svc.AdmitStudent(AdmitStudentRequest{
		Name: "Meena", Mobile: "9123456780", CourseID: tally.ID,
	})
	if err != nil {
		t.Fatalf("admit: %v", err)
	}

	enrollment, err := svc.AddEnrollment(student.ID, typing.ID, "")
	if err != nil {
		t.Fatalf("add enrollment: %v", err)
	}
	if enrollment.CourseName != "Typing" || enrollment.TotalFee != 2500 {
		t.Errorf("got %q/%v, want Typing/2500", enrollment.CourseName, enrollment.TotalFee)
	}

	var count int64
	db.Model(&model.Enrollment{}).Where("student_id = ?", student.ID).Count(&count)
	if count != 2 {
		t.Errorf("enrollment count = %d, want 2", count)
	}
}

func TestConvertEnquiry_Success(t *testing.T) {
	db := openTestDB(t)
	svc := NewAdmissionService(db)

	mustCreate(t, db, &model.Course{Name: "Spoken English", Fee: 4000})
	enquiry := model.Enquiry{Name: "Asha", Mobile: "9876543210", CourseName: "Spoken English"}
	mustCreate(t, db, &enquiry)

	result, err := svc.ConvertEnquiry(enquiry.ID, "admin")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !result.CourseMatched {
		t.Error("expected course match")
	}
	if result.OrphanedEnquiry {
		t.Error("enquiry should have been deleted")
	}
	if len(result.Student.Enrollments) != 1 || result.Student.Enrollments[0].TotalFee != 4000 {
		t.Errorf("enrollment fee not snapshotted from course: %+v", result.Student.Enrollments)
	}

	var gone model.Enquiry
	err = db.First(&gone, enquiry.ID).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("enquiry still readable after conversion: %v", err)
	}
}

func TestConvertEnquiry_UnknownCourseAdmitsAtZero(t *testing.T) {
	db := openTestDB(t)
	svc := NewAdmissionService(db)

	enquiry := model.Enquiry{Name: "Vikram", Mobile: "9876543210", CourseName: "Retired Course"}
	mustCreate(t, db, &enquiry)

	result, err := svc.ConvertEnquiry(enquiry.ID, "admin")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if result.CourseMatched {
		t.Error("expected no course match")
	}
	if got := result.Student.Enrollments[0].TotalFee; got != 0 {
		t.Errorf("fee = %v, want 0", got)
	}
	if got := result.Student.Enrollments[0].CourseName; got != "Retired Course" {
		t.Errorf("course name = %q, want the enquiry's name kept", got)
	}
}

func TestConvertEnquiry_InvalidMobileLeavesEnquiry(t *testing.T) {
	db := openTestDB(t)
	svc := NewAdmissionService(db)

	enquiry := model.Enquiry{Name: "Typo", Mobile: "98765", CourseName: "Tally"}
	mustCreate(t, db, &enquiry)

	_, err := svc.ConvertEnquiry(enquiry.ID, "admin")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("kind = %v, want validation", apperr.KindOf(err))
	}

	var still model.Enquiry
	if err := db.First(&still, enquiry.ID).Error; err != nil {
		t.Errorf("enquiry must survive a failed conversion: %v", err)
	}
	var students int64
	db.Model(&model.Student{}).Count(&students)
	if students != 0 {
		t.Errorf("no student should exist, got %d", students)
	}
}

func TestConvertEnquiry_NotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewAdmissionService(db)

	_, err := svc.ConvertEnquiry(42, "admin")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("kind = %v, want not-found", apperr.KindOf(err))
	}
}
