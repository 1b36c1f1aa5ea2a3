package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rightchoice/medicare-api/internal/application/dto"
	"github.com/rightchoice/medicare-api/internal/application/usecase"
)

// GSTReturnHandler exposes GST return save and retrieval.
type GSTReturnHandler struct {
	uc *usecase.GSTReturnUseCase
}

// NewGSTReturnHandler builds the handler.
func NewGSTReturnHandler(uc *usecase.GSTReturnUseCase) *GSTReturnHandler {
	return &GSTReturnHandler{uc: uc}
}

// Save upserts the return payloads for a month.
func (h *GSTReturnHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveGSTReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	ret, err := h.uc.Save(GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToGSTReturnResponse(ret))
}

// GetByPeriod returns the return for ?month=&year=.
func (h *GSTReturnHandler) GetByPeriod(c *fiber.Ctx) error {
	month := c.QueryInt("month")
	year := c.QueryInt("year")
	ret, err := h.uc.GetByPeriod(GetCompanyID(c), month, year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToGSTReturnResponse(ret))
}

func (h *GSTReturnHandler) List(c *fiber.Ctx) error {
	rets, err := h.uc.List(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.GSTReturnResponse, 0, len(rets))
	for _, ret := range rets {
		out = append(out, dto.ToGSTReturnResponse(ret))
	}
	return c.JSON(out)
}
