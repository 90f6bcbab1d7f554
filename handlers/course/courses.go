package course

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/model"
	"github.com/coachdesk/coachdesk-api/utils/response"
	"github.com/coachdesk/coachdesk-api/utils/validation"
)

// CourseHandler handles course catalog requests
type CourseHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateCourseRequest represents the request body for creating a course
type CreateCourseRequest struct {
	Name string  `json:"name" validate:"required,min=1,max=255"`
	Fee  float64 `json:"fee" validate:"gte=0"`
}

// UpdateCourseRequest represents the request body for updating a course
type UpdateCourseRequest struct {
	Name string   `json:"name" validate:"omitempty,min=1,max=255"`
	Fee  *float64 `json:"fee" validate:"omitempty,gte=0"`
}

// ListCourses handles GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	search := c.Query("search", "")

	query := h.db.Model(&model.Course{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var courses []model.Course
	if err := query.Order("name").Find(&courses).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch courses")
	}

	return response.Success(c, courses)
}

// GetCourse handles GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	return response.Success(c, course)
}

// CreateCourse handles POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	req.Name = validation.SanitizeString(req.Name)

	// Course names are unique case-insensitively
	var count int64
	if err := h.db.Model(&model.Course{}).
		Where("LOWER(name) = ?", strings.ToLower(req.Name)).
		Count(&count).Error; err != nil {
		return response.InternalServerError(c, "Failed to check course name")
	}
	if count > 0 {
		return response.Conflict(c, "Course already exists")
	}

	course := model.Course{Name: req.Name, Fee: req.Fee}
	if err := h.db.Create(&course).Error; err != nil {
		return response.InternalServerError(c, "Failed to create course")
	}

	return response.Created(c, course)
}

// UpdateCourse handles PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	if req.Name != "" {
		name := validation.SanitizeString(req.Name)
		var count int64
		if err := h.db.Model(&model.Course{}).
			Where("LOWER(name) = ? AND id != ?", strings.ToLower(name), course.ID).
			Count(&count).Error; err != nil {
			return response.InternalServerError(c, "Failed to check course name")
		}
		if count > 0 {
			return response.Conflict(c, "Course already exists")
		}
		course.Name = name
	}
	if req.Fee != nil {
		// Existing enrollments keep their snapshotted fee
		course.Fee = *req.Fee
	}

	if err := h.db.Save(&course).Error; err != nil {
		return response.InternalServerError(c, "Failed to update course")
	}

	return response.Success(c, course)
}

// DeleteCourse handles DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id := c.Params("id")

	var course model.Course
	if err := h.db.First(&course, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Course not found")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	// Enrollments reference courses by snapshotted name, so deleting the
	// catalog entry leaves student history intact.
	if err := h.db.Delete(&course).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete course")
	}

	return response.SuccessWithMessage(c, "Course deleted", nil)
}
