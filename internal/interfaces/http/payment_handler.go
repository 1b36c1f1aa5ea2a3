package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rightchoice/medicare-api/internal/application/dto"
	"github.com/rightchoice/medicare-api/internal/application/payments"
)

// PaymentHandler exposes payment recording and gateway order creation.
type PaymentHandler struct {
	uc *payments.UseCase
}

// NewPaymentHandler builds the handler.
func NewPaymentHandler(uc *payments.UseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Record settles an amount against an invoice.
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	payment, err := h.uc.RecordPayment(c.Context(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToPaymentResponse(payment))
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListPayments(GetCompanyID(c), c.Query("invoice_id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToPaymentResponse(p))
	}
	return c.JSON(out)
}

// CreateOrder opens a gateway payment order for the invoice balance.
func (h *PaymentHandler) CreateOrder(c *fiber.Ctx) error {
	var in dto.CreatePaymentOrderRequest
	if err := c.BodyParser(&in); err != nil || in.InvoiceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invoice_id is required"})
	}
	order, err := h.uc.CreatePaymentOrder(c.Context(), GetCompanyID(c), GetUserID(c), in.InvoiceID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PaymentOrderResponse{
		OrderID:   order.ID,
		InvoiceID: order.InvoiceID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Status:    order.Status,
	})
}
