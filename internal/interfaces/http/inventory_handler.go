package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rightchoice/medicare-api/internal/application/dto"
	"github.com/rightchoice/medicare-api/internal/application/ledger"
	"github.com/rightchoice/medicare-api/internal/application/usecase"
)

// InventoryHandler exposes stock queries plus manual adjustments and
// transfers. Receipts and issues go through GRNs and invoices, not here.
type InventoryHandler struct {
	engine  *ledger.Engine
	queries *usecase.InventoryQueryUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(engine *ledger.Engine, queries *usecase.InventoryQueryUseCase) *InventoryHandler {
	return &InventoryHandler{engine: engine, queries: queries}
}

func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	stocks, err := h.queries.ListStock(GetCompanyID(c), c.Query("item_id"), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.ToStockResponse(s))
	}
	return c.JSON(out)
}

func (h *InventoryHandler) ListBatches(c *fiber.Ctx) error {
	batches, err := h.queries.ListBatches(GetCompanyID(c), c.Query("item_id"), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, dto.ToBatchResponse(b))
	}
	return c.JSON(out)
}

func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	movements, err := h.queries.ListMovements(GetCompanyID(c), c.Query("item_id"), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.ToMovementResponse(m))
	}
	return c.JSON(out)
}

// Adjust applies a signed stock correction.
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	movement, err := h.engine.Adjust(c.Context(), ledger.AdjustInput{
		CompanyID:  GetCompanyID(c),
		ItemID:     in.ItemID,
		LocationID: in.LocationID,
		BatchID:    in.BatchID,
		Delta:      in.Delta,
		Reason:     in.Reason,
		UserID:     GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(movement))
}

// Transfer moves quantity between two locations.
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	movements, err := h.engine.Transfer(c.Context(), ledger.TransferInput{
		CompanyID:      GetCompanyID(c),
		ItemID:         in.ItemID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		BatchID:        in.BatchID,
		Quantity:       in.Quantity,
		UserID:         GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.ToMovementResponse(m))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
