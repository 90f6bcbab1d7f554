package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/model"
	"github.com/coachdesk/coachdesk-api/services"
	"github.com/coachdesk/coachdesk-api/utils/response"
)

// DashboardHandler serves the landing-page summary cards
type DashboardHandler struct {
	db        *gorm.DB
	ledgerSvc *services.LedgerService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		db:        db,
		ledgerSvc: services.NewLedgerService(db),
	}
}

// Stats is the dashboard payload: portfolio money totals plus entity counts
type Stats struct {
	TotalStudents int     `json:"total_students"`
	TotalCourses  int64   `json:"total_courses"`
	TotalEnquiries int64  `json:"total_enquiries"`
	TotalFee      float64 `json:"total_fee"`
	TotalPaid     float64 `json:"total_paid"`
	TotalDiscount float64 `json:"total_discount"`
	TotalBalance  float64 `json:"total_balance"`
}

// Get handles GET /api/v1/dashboard
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	totals, err := h.ledgerSvc.Dashboard()
	if err != nil {
		return response.FromAppError(c, err)
	}

	stats := Stats{
		TotalStudents: totals.TotalStudents,
		TotalFee:      totals.TotalFee,
		TotalPaid:     totals.TotalPaid,
		TotalDiscount: totals.TotalDiscount,
		TotalBalance:  totals.TotalBalance,
	}

	if err := h.db.Model(&model.Course{}).Count(&stats.TotalCourses).Error; err != nil {
		return response.InternalServerError(c, "Failed to count courses")
	}
	if err := h.db.Model(&model.Enquiry{}).Count(&stats.TotalEnquiries).Error; err != nil {
		return response.InternalServerError(c, "Failed to count enquiries")
	}

	return response.Success(c, stats)
}
