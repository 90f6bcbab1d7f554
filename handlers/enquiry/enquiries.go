package enquiry

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

// EnquiryHandler handles walk-in enquiries and their conversion into
// admissions
type EnquiryHandler struct {
	db        *gorm.DB
	admission *services.AdmissionService
	validator *validation.Validator
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(db *gorm.DB) *EnquiryHandler {
	return &EnquiryHandler{
		db:        db,
		admission: services.NewAdmissionService(db),
		validator: validation.NewValidator(),
	}
}

// CreateEnquiryRequest represents the enquiry form
type CreateEnquiryRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=255"`
	DOB        string `json:"dob"`
	Age        int    `json:"age" validate:"omitempty,gte=0,lte=120"`
	Mobile     string `json:"mobile"`
	Mobile2    string `json:"mobile2"`
	CourseName string `json:"course_name" validate:"omitempty,max=255"`
}

// ListEnquiries handles GET /api/v1/enquiries
func (h *EnquiryHandler) ListEnquiries(c *fiber.Ctx) error {
	var enquiries []model.Enquiry
	if err := h.db.Order("created_at DESC").Find(&enquiries).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch enquiries")
	}
	return response.Success(c, enquiries)
}

// CreateEnquiry handles POST /api/v1/enquiries
func (h *EnquiryHandler) CreateEnquiry(c *fiber.Ctx) error {
	var req CreateEnquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	// Enquiry mobiles are stored as typed; they are only validated for
	// ten digits at conversion time.
	enquiry := model.Enquiry{
		Name:       validation.SanitizeString(req.Name),
		DOB:        req.DOB,
		Age:        req.Age,
		Mobile:     validation.NormalizeMobile(req.Mobile),
		Mobile2:    validation.NormalizeMobile(req.Mobile2),
		CourseName: validation.SanitizeString(req.CourseName),
	}

	if err := h.db.Create(&enquiry).Error; err != nil {
		return response.InternalServerError(c, "Failed to create enquiry")
	}

	return response.Created(c, enquiry)
}

// DeleteEnquiry handles DELETE /api/v1/enquiries/:id
func (h *EnquiryHandler) DeleteEnquiry(c *fiber.Ctx) error {
	id := c.Params("id")

	var enquiry model.Enquiry
	if err := h.db.First(&enquiry, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Enquiry not found")
		}
		return response.InternalServerError(c, "Failed to fetch enquiry")
	}

	if err := h.db.Delete(&enquiry).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete enquiry")
	}

	return response.SuccessWithMessage(c, "Enquiry deleted", nil)
}

// ConvertEnquiry handles POST /api/v1/enquiries/:id/convert
func (h *EnquiryHandler) ConvertEnquiry(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok || user == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid enquiry id")
	}

	result, err := h.admission.ConvertEnquiry(uint(id), user.Username)
	if err != nil {
		return response.FromAppError(c, err)
	}

	if result.OrphanedEnquiry {
		return response.SuccessWithMessage(c,
			"Student admitted, but the enquiry could not be removed", result)
	}
	return response.Created(c, result)
}
