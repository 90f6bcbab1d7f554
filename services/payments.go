package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/ledger"
	"github.com/coachdesk/coachdesk-api/model"
	"github.com/coachdesk/coachdesk-api/utils/apperr"
)

// PaymentService records and amends fee payments. The payment list is
// append-only: there is no delete operation here on purpose.
type PaymentService struct {
	db *gorm.DB
}

// NewPaymentService creates a new payment service
func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// RecordPaymentRequest carries the fee collection form fields.
type RecordPaymentRequest struct {
	EnrollmentID uint
	Amount       float64
	Discount     float64
	Note         string
	Date         string // YYYY-MM-DD, defaults to today
}

// Record appends a payment to an enrollment's ledger and issues a receipt
// number.
func (s *PaymentService) Record(req RecordPaymentRequest) (*model.Payment, error) {
	if req.Amount < 0 {
		return nil, apperr.New(apperr.KindValidation, "amount cannot be negative")
	}
	if req.Discount < 0 {
		return nil, apperr.New(apperr.KindValidation, "discount cannot be negative")
	}
	if req.Amount == 0 && req.Discount == 0 {
		return nil, apperr.New(apperr.KindValidation, "payment needs an amount or a discount")
	}

	date := ledger.Day(req.Date)
	if req.Date != "" && date == "" {
		return nil, apperr.New(apperr.KindValidation, "date must be YYYY-MM-DD")
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var enrollment model.Enrollment
	if err := s.db.First(&enrollment, req.EnrollmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.New(apperr.KindNotFound, "enrollment not found")
		}
		return nil, apperr.Wrap(apperr.KindStore, "failed to load enrollment", err)
	}

	payment := model.Payment{
		EnrollmentID: enrollment.ID,
		StudentID:    enrollment.StudentID,
		Amount:       req.Amount,
		Discount:     req.Discount,
		Note:         strings.TrimSpace(req.Note),
		Date:         date,
		ReceiptNo:    uuid.New().String(),
		ReceiptDate:  date,
	}

	if err := s.db.Create(&payment).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "failed to record payment", err)
	}
	return &payment, nil
}

// AmendPaymentRequest updates an existing payment post-hoc. Nil fields are
// left unchanged.
type AmendPaymentRequest struct {
	Amount      *float64
	Discount    *float64
	Note        *string
	Date        *string
	ReceiptDate *string
}

// Amend edits a recorded payment. The amended row must still satisfy the
// creation invariants.
func (s *PaymentService) Amend(id uint, req AmendPaymentRequest) (*model.Payment, error) {
	var payment model.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.New(apperr.KindNotFound, "payment not found")
		}
		return nil, apperr.Wrap(apperr.KindStore, "failed to load payment", err)
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.Discount != nil {
		payment.Discount = *req.Discount
	}
	if req.Note != nil {
		payment.Note = strings.TrimSpace(*req.Note)
	}
	if req.Date != nil {
		d := ledger.Day(*req.Date)
		if d == "" {
			return nil, apperr.New(apperr.KindValidation, "date must be YYYY-MM-DD")
		}
		payment.Date = d
	}
	if req.ReceiptDate != nil {
		d := ledger.Day(*req.ReceiptDate)
		if d == "" {
			return nil, apperr.New(apperr.KindValidation, "receipt_date must be YYYY-MM-DD")
		}
		payment.ReceiptDate = d
	}

	if payment.Amount < 0 || payment.Discount < 0 {
		return nil, apperr.New(apperr.KindValidation, "amount and discount cannot be negative")
	}
	if payment.Amount == 0 && payment.Discount == 0 {
		return nil, apperr.New(apperr.KindValidation, "payment needs an amount or a discount")
	}

	if err := s.db.Save(&payment).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "failed to amend payment", err)
	}
	return &payment, nil
}
