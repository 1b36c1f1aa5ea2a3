package usecase

import (
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

// InventoryQueryUseCase serves the read-only stock, batch and movement
// listings. Mutations go through the ledger engine only.
type InventoryQueryUseCase struct {
	stockRepo    repository.StockRepository
	batchRepo    repository.BatchRepository
	movementRepo repository.StockMovementRepository
}

// NewInventoryQueryUseCase builds the inventory query use case.
func NewInventoryQueryUseCase(
	stockRepo repository.StockRepository,
	batchRepo repository.BatchRepository,
	movementRepo repository.StockMovementRepository,
) *InventoryQueryUseCase {
	return &InventoryQueryUseCase{stockRepo: stockRepo, batchRepo: batchRepo, movementRepo: movementRepo}
}

// ListStock returns stock rows, optionally narrowed by item and location.
func (uc *InventoryQueryUseCase) ListStock(companyID, itemID, locationID string) ([]*entity.Stock, error) {
	return uc.stockRepo.List(repository.StockFilter{CompanyID: companyID, ItemID: itemID, LocationID: locationID})
}

// ListBatches returns batch lots, optionally narrowed by item and location.
func (uc *InventoryQueryUseCase) ListBatches(companyID, itemID, locationID string) ([]*entity.Batch, error) {
	return uc.batchRepo.List(repository.BatchFilter{CompanyID: companyID, ItemID: itemID, LocationID: locationID})
}

// ListMovements returns the movement ledger newest first, optionally narrowed
// by item and location.
func (uc *InventoryQueryUseCase) ListMovements(companyID, itemID, locationID string) ([]*entity.StockMovement, error) {
	return uc.movementRepo.List(repository.MovementFilter{CompanyID: companyID, ItemID: itemID, LocationID: locationID})
}
