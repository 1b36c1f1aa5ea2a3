package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rightchoice/medicare-api/internal/application/dto"
	"github.com/rightchoice/medicare-api/internal/application/sales"
	"github.com/rightchoice/medicare-api/internal/domain/status"
)

// SalesHandler exposes sales orders and invoices.
type SalesHandler struct {
	uc *sales.UseCase
}

// NewSalesHandler builds the handler.
func NewSalesHandler(uc *sales.UseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

func (h *SalesHandler) CreateSO(c *fiber.Ctx) error {
	var in dto.CreateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	so, err := h.uc.CreateSalesOrder(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSalesOrderResponse(so))
}

func (h *SalesHandler) GetSO(c *fiber.Ctx) error {
	so, err := h.uc.GetSalesOrder(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToSalesOrderResponse(so))
}

func (h *SalesHandler) ListSOs(c *fiber.Ctx) error {
	sos, err := h.uc.ListSalesOrders(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.SalesOrderResponse, 0, len(sos))
	for _, so := range sos {
		out = append(out, dto.ToSalesOrderResponse(so))
	}
	return c.JSON(out)
}

// TransitionSO moves the order through its manual lifecycle steps.
// Fulfilment states come from invoice issuance only.
func (h *SalesHandler) TransitionSO(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil || in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "status is required"})
	}
	so, err := h.uc.TransitionSalesOrder(GetCompanyID(c), c.Params("id"), status.Order(in.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToSalesOrderResponse(so))
}

// CreateInvoice issues an invoice, debiting stock FIFO across lots.
func (h *SalesHandler) CreateInvoice(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	inv, err := h.uc.CreateInvoice(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToInvoiceResponse(inv))
}

func (h *SalesHandler) GetInvoice(c *fiber.Ctx) error {
	inv, err := h.uc.GetInvoice(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToInvoiceResponse(inv))
}

func (h *SalesHandler) ListInvoices(c *fiber.Ctx) error {
	invs, err := h.uc.ListInvoices(GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.InvoiceResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, dto.ToInvoiceResponse(inv))
	}
	return c.JSON(out)
}
