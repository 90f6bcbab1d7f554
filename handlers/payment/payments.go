package payment

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/model"
	"github.com/coachdesk/coachdesk-api/services"
	"github.com/coachdesk/coachdesk-api/utils/response"
	"github.com/coachdesk/coachdesk-api/utils/validation"
)

// PaymentHandler handles the fee collection endpoints. There is no delete
// route: the payment ledger is append-only.
type PaymentHandler struct {
	db        *gorm.DB
	payments  *services.PaymentService
	validator *validation.Validator
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{
		db:        db,
		payments:  services.NewPaymentService(db),
		validator: validation.NewValidator(),
	}
}

// RecordPaymentRequest represents the fee collection form
type RecordPaymentRequest struct {
	EnrollmentID uint    `json:"enrollment_id" validate:"required,min=1"`
	Amount       float64 `json:"amount"`
	Discount     float64 `json:"discount"`
	Note         string  `json:"note" validate:"omitempty,max=500"`
	Date         string  `json:"date"`
}

// AmendPaymentRequest represents a post-hoc payment correction
type AmendPaymentRequest struct {
	Amount      *float64 `json:"amount"`
	Discount    *float64 `json:"discount"`
	Note        *string  `json:"note"`
	Date        *string  `json:"date"`
	ReceiptDate *string  `json:"receipt_date"`
}

// ListPayments handles GET /api/v1/payments?student_id=&enrollment_id=
func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
	query := h.db.Model(&model.Payment{})

	if studentID := c.Query("student_id"); studentID != "" {
		query = query.Where("student_id = ?", studentID)
	}
	if enrollmentID := c.Query("enrollment_id"); enrollmentID != "" {
		query = query.Where("enrollment_id = ?", enrollmentID)
	}

	var payments []model.Payment
	if err := query.Order("date DESC, id DESC").Find(&payments).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch payments")
	}

	return response.Success(c, payments)
}

// RecordPayment handles POST /api/v1/payments
func (h *PaymentHandler) RecordPayment(c *fiber.Ctx) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	payment, err := h.payments.Record(services.RecordPaymentRequest{
		EnrollmentID: req.EnrollmentID,
		Amount:       req.Amount,
		Discount:     req.Discount,
		Note:         req.Note,
		Date:         req.Date,
	})
	if err != nil {
		return response.FromAppError(c, err)
	}

	return response.Created(c, payment)
}

// AmendPayment handles PUT /api/v1/payments/:id
func (h *PaymentHandler) AmendPayment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid payment id")
	}

	var req AmendPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	payment, err := h.payments.Amend(uint(id), services.AmendPaymentRequest{
		Amount:      req.Amount,
		Discount:    req.Discount,
		Note:        req.Note,
		Date:        req.Date,
		ReceiptDate: req.ReceiptDate,
	})
	if err != nil {
		return response.FromAppError(c, err)
	}

	return response.Success(c, payment)
}
