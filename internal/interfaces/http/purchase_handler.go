package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rightchoice/medicare-api/internal/application/dto"
	"github.com/rightchoice/medicare-api/internal/application/procurement"
	"github.com/rightchoice/medicare-api/internal/domain/status"
)

// PurchaseHandler exposes purchase orders and goods received notes.
type PurchaseHandler struct {
	uc *procurement.UseCase
}

// NewPurchaseHandler builds the handler.
func NewPurchaseHandler(uc *procurement.UseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

func (h *PurchaseHandler) CreatePO(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	po, err := h.uc.CreatePurchaseOrder(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToPurchaseOrderResponse(po))
}

func (h *PurchaseHandler) GetPO(c *fiber.Ctx) error {
	po, err := h.uc.GetPurchaseOrder(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToPurchaseOrderResponse(po))
}

func (h *PurchaseHandler) ListPOs(c *fiber.Ctx) error {
	pos, err := h.uc.ListPurchaseOrders(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(pos))
	for _, po := range pos {
		out = append(out, dto.ToPurchaseOrderResponse(po))
	}
	return c.JSON(out)
}

// TransitionPO moves the order through its manual lifecycle steps
// (submit, approve, cancel). Receipt states come from GRN postings only.
func (h *PurchaseHandler) TransitionPO(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil || in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "status is required"})
	}
	po, err := h.uc.TransitionPurchaseOrder(GetCompanyID(c), c.Params("id"), status.Order(in.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToPurchaseOrderResponse(po))
}

func (h *PurchaseHandler) CreateGRN(c *fiber.Ctx) error {
	var in dto.CreateGRNRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	grn, err := h.uc.CreateGRN(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToGRNResponse(grn))
}

func (h *PurchaseHandler) GetGRN(c *fiber.Ctx) error {
	grn, err := h.uc.GetGRN(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToGRNResponse(grn))
}

func (h *PurchaseHandler) ListGRNs(c *fiber.Ctx) error {
	grns, err := h.uc.ListGRNs(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.GRNResponse, 0, len(grns))
	for _, grn := range grns {
		out = append(out, dto.ToGRNResponse(grn))
	}
	return c.JSON(out)
}
