package report

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/ledger"
	"github.com/coachdesk/coachdesk-api/services"
	"github.com/coachdesk/coachdesk-api/utils/response"
)

// ReportHandler serves the three front-desk reports
type ReportHandler struct {
	ledgerSvc *services.LedgerService
}

// NewReportHandler creates a new report handler
func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{ledgerSvc: services.NewLedgerService(db)}
}

// Payments handles GET /api/v1/reports/payments?course=&from=&to=
func (h *ReportHandler) Payments(c *fiber.Ctx) error {
	filter := ledger.PaymentFilter{
		CourseName: c.Query("course"),
		DateFrom:   ledger.Day(c.Query("from")),
		DateTo:     ledger.Day(c.Query("to")),
	}
	if c.Query("from") != "" && filter.DateFrom == "" {
		return response.BadRequest(c, "from must be YYYY-MM-DD")
	}
	if c.Query("to") != "" && filter.DateTo == "" {
		return response.BadRequest(c, "to must be YYYY-MM-DD")
	}

	rows, err := h.ledgerSvc.PaymentsReport(filter)
	if err != nil {
		return response.FromAppError(c, err)
	}
	return response.Success(c, rows)
}

// Balances handles GET /api/v1/reports/balances?course=
func (h *ReportHandler) Balances(c *fiber.Ctx) error {
	rows, err := h.ledgerSvc.BalanceReport(c.Query("course"))
	if err != nil {
		return response.FromAppError(c, err)
	}
	return response.Success(c, rows)
}

// Dues handles GET /api/v1/reports/dues[?as_of=YYYY-MM-DD]
func (h *ReportHandler) Dues(c *fiber.Ctx) error {
	asOf := ledger.Day(c.Query("as_of"))
	if c.Query("as_of") != "" && asOf == "" {
		return response.BadRequest(c, "as_of must be YYYY-MM-DD")
	}
	if asOf == "" {
		asOf = time.Now().Format("2006-01-02")
	}

	rows, err := h.ledgerSvc.DueReport(asOf)
	if err != nil {
		return response.FromAppError(c, err)
	}
	return response.Success(c, rows)
}
