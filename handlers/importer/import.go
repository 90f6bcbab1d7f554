package importer

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/coachdesk/coachdesk-api/services"
	"github.com/coachdesk/coachdesk-api/utils/response"
)

// ImportHandler accepts dumps exported by the legacy browser panel
type ImportHandler struct {
	importSvc *services.ImportService
}

// NewImportHandler creates a new import handler
func NewImportHandler(db *gorm.DB) *ImportHandler {
	return &ImportHandler{importSvc: services.NewImportService(db)}
}

// ImportLegacy handles POST /api/v1/import/legacy with the raw JSON dump
// as the request body
func (h *ImportHandler) ImportLegacy(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return response.BadRequest(c, "Request body is empty")
	}

	summary, err := h.importSvc.ImportLegacy(body)
	if err != nil {
		return response.FromAppError(c, err)
	}

	return response.SuccessWithMessage(c, "Import completed", summary)
}
