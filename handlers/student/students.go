package student

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/model"
	"github.com/coachdesk/coachdesk-api/services"
	"github.com/coachdesk/coachdesk-api/utils/middleware"
	"github.com/coachdesk/coachdesk-api/utils/response"
	"github.com/coachdesk/coachdesk-api/utils/validation"
)

// StudentHandler handles admissions and the student list
type StudentHandler struct {
	db        *gorm.DB
	admission *services.AdmissionService
	ledgerSvc *services.LedgerService
	validator *validation.Validator
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{
		db:        db,
		admission: services.NewAdmissionService(db),
		ledgerSvc: services.NewLedgerService(db),
		validator: validation.NewValidator(),
	}
}

// AdmitStudentRequest represents the admission form
type AdmitStudentRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	DOB      string `json:"dob" validate:"omitempty"`
	Age      int    `json:"age" validate:"omitempty,gte=0,lte=120"`
	Address  string `json:"address" validate:"omitempty,max=500"`
	Mobile   string `json:"mobile"`
	Mobile2  string `json:"mobile2"`
	CourseID uint   `json:"course_id" validate:"required,min=1"`
	DueDate  string `json:"due_date"`
}

// AddEnrollmentRequest enrolls an existing student in another course
type AddEnrollmentRequest struct {
	CourseID uint   `json:"course_id" validate:"required,min=1"`
	DueDate  string `json:"due_date"`
}

// ListStudents handles GET /api/v1/students
func (h *StudentHandler) ListStudents(c *fiber.Ctx) error {
	search := c.Query("search", "")

	query := h.db.Model(&model.Student{}).Preload("Enrollments.Payments")
	if search != "" {
		query = query.Where("name ILIKE ? OR mobile LIKE ?", "%"+search+"%", search+"%")
	}

	var students []model.Student
	if err := query.Order("created_at DESC").Find(&students).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch students")
	}

	return response.Success(c, students)
}

// GetStudent handles GET /api/v1/students/:id
func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	id := c.Params("id")

	var student model.Student
	if err := h.db.Preload("Enrollments.Payments").First(&student, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to fetch student")
	}

	return response.Success(c, student)
}

// AdmitStudent handles POST /api/v1/students
func (h *StudentHandler) AdmitStudent(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	var req AdmitStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	student, err := h.admission.AdmitStudent(services.AdmitStudentRequest{
		Name:      req.Name,
		DOB:       req.DOB,
		Age:       req.Age,
		Address:   req.Address,
		Mobile:    req.Mobile,
		Mobile2:   req.Mobile2,
		CourseID:  req.CourseID,
		DueDate:   req.DueDate,
		CreatedBy: user.Username,
	})
	if err != nil {
		return response.FromAppError(c, err)
	}

	return response.Created(c, student)
}

// AddEnrollment handles POST /api/v1/students/:id/enrollments
func (h *StudentHandler) AddEnrollment(c *fiber.Ctx) error {
	studentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	var req AddEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	enrollment, err := h.admission.AddEnrollment(uint(studentID), req.CourseID, req.DueDate)
	if err != nil {
		return response.FromAppError(c, err)
	}

	return response.Created(c, enrollment)
}

// GetLedger handles GET /api/v1/students/:id/ledger
func (h *StudentHandler) GetLedger(c *fiber.Ctx) error {
	studentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid student id")
	}

	rows, err := h.ledgerSvc.StudentLedger(uint(studentID))
	if err != nil {
		return response.FromAppError(c, err)
	}

	return response.Success(c, rows)
}

// DeleteStudent handles DELETE /api/v1/students/:id
func (h *StudentHandler) DeleteStudent(c *fiber.Ctx) error {
	id := c.Params("id")

	var student model.Student
	if err := h.db.First(&student, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to fetch student")
	}

	if err := h.db.Select("Enrollments").Delete(&student).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete student")
	}

	return response.SuccessWithMessage(c, "Student deleted", nil)
}
