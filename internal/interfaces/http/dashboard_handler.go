package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rightchoice/medicare-api/internal/application/analytics"
	"github.com/rightchoice/medicare-api/internal/application/dto"
)

// DashboardHandler exposes the company summary metrics.
type DashboardHandler struct {
	uc *analytics.UseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToDashboardSummaryResponse(summary))
}
