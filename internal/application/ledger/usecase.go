package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

// Engine is the single authority for mutating Stock.Quantity and
// Batch.QuantityAvailable. Every mutation appends a StockMovement in the same
// transaction; the movement ledger is the source of truth for reconciliation.
// The engine is stateless between calls; serialization of concurrent mutators
// of one stock key comes from the row locks taken inside the transaction.
type Engine struct {
	txRunner     TxRunner
	itemRepo     repository.ItemRepository
	locationRepo repository.LocationRepository
}

// NewEngine builds the ledger engine.
func NewEngine(txRunner TxRunner, itemRepo repository.ItemRepository, locationRepo repository.LocationRepository) *Engine {
	return &Engine{txRunner: txRunner, itemRepo: itemRepo, locationRepo: locationRepo}
}

// BatchInfo describes the lot created when receiving a batch-tracked item.
type BatchInfo struct {
	BatchNumber       string
	ManufacturingDate *time.Time
	ExpiryDate        *time.Time
	SupplierID        string
	PurchasePrice     decimal.Decimal
}

// ReceiveInput credits stock at a location. MovementType defaults to
// "purchase"; customer returns use "return".
type ReceiveInput struct {
	CompanyID     string
	ItemID        string
	LocationID    string
	Quantity      decimal.Decimal
	Batch         *BatchInfo
	MovementType  string
	ReferenceID   string
	ReferenceType string
	UserID        string
}

// IssueInput debits stock for a sale, drawing from lots across locations in
// FIFO order.
type IssueInput struct {
	CompanyID     string
	ItemID        string
	Quantity      decimal.Decimal
	ReferenceID   string
	ReferenceType string
	UserID        string
}

// AdjustInput applies a signed correction to one stock key. Reason is recorded
// as the movement reference.
type AdjustInput struct {
	CompanyID  string
	ItemID     string
	LocationID string
	BatchID    string
	Delta      decimal.Decimal
	Reason     string
	UserID     string
}

// TransferInput moves quantity between two locations of the same company.
type TransferInput struct {
	CompanyID      string
	ItemID         string
	FromLocationID string
	ToLocationID   string
	BatchID        string
	Quantity       decimal.Decimal
	UserID         string
}

// Receive validates the request and credits stock in its own transaction.
func (e *Engine) Receive(ctx context.Context, in ReceiveInput) (*entity.StockMovement, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	item, err := e.ownedItem(in.CompanyID, in.ItemID)
	if err != nil {
		return nil, err
	}
	if _, err := e.ownedLocation(in.CompanyID, in.LocationID); err != nil {
		return nil, err
	}

	now := time.Now()
	var mov *entity.StockMovement
	err = e.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		batchRepo repository.BatchRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		mov, err = e.ReceiveInTx(stockRepo, batchRepo, movementRepo, item, in, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// ReceiveInTx credits stock using repositories bound to the caller's
// transaction (GRN posting runs several receipts plus document updates in one
// transaction). Locks the stock row, adds the quantity, creates the batch for
// batch-tracked items when batch info is present, and appends the inward
// movement.
func (e *Engine) ReceiveInTx(
	stockRepo repository.StockRepository,
	batchRepo repository.BatchRepository,
	movementRepo repository.StockMovementRepository,
	item *entity.Item,
	in ReceiveInput,
	now time.Time,
) (*entity.StockMovement, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	movementType := in.MovementType
	if movementType == "" {
		movementType = entity.MovementTypePurchase
	}

	batchID := ""
	if item.IsBatchTracked && in.Batch != nil && in.Batch.BatchNumber != "" {
		batch := &entity.Batch{
			ID:                uuid.New().String(),
			CompanyID:         in.CompanyID,
			ItemID:            in.ItemID,
			BatchNumber:       in.Batch.BatchNumber,
			ManufacturingDate: in.Batch.ManufacturingDate,
			ExpiryDate:        in.Batch.ExpiryDate,
			PurchaseDate:      now,
			PurchasePrice:     in.Batch.PurchasePrice,
			QuantityReceived:  in.Quantity,
			QuantityAvailable: in.Quantity,
			LocationID:        in.LocationID,
			SupplierID:        in.Batch.SupplierID,
			IsActive:          true,
			CreatedAt:         now,
		}
		if err := batchRepo.Create(batch); err != nil {
			return nil, err
		}
		batchID = batch.ID
	}

	// Lock the stock row; for a new key the repo creates and locks a
	// zero-quantity row first, so concurrent first receipts serialize here.
	stock, err := stockRepo.GetForUpdate(in.CompanyID, in.ItemID, in.LocationID, batchID)
	if err != nil {
		return nil, err
	}
	stock.Quantity = stock.Quantity.Add(in.Quantity)
	stock.LastUpdated = now
	if err := stockRepo.Upsert(stock); err != nil {
		return nil, err
	}

	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		CompanyID:     in.CompanyID,
		ItemID:        in.ItemID,
		BatchID:       batchID,
		LocationID:    in.LocationID,
		MovementType:  movementType,
		Quantity:      in.Quantity,
		ReferenceID:   in.ReferenceID,
		ReferenceType: in.ReferenceType,
		MovementDate:  now,
		CreatedBy:     in.UserID,
		CreatedAt:     now,
	}
	if err := movementRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// Issue validates the request and debits stock in its own transaction,
// FIFO across lots. All-or-nothing: when available stock falls short the call
// fails with ErrInsufficientStock and nothing is written.
func (e *Engine) Issue(ctx context.Context, in IssueInput) ([]*entity.StockMovement, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := e.ownedItem(in.CompanyID, in.ItemID); err != nil {
		return nil, err
	}

	now := time.Now()
	var movs []*entity.StockMovement
	err := e.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		batchRepo repository.BatchRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		var err error
		movs, err = e.IssueInTx(stockRepo, batchRepo, movementRepo, in, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return movs, nil
}

// IssueInTx debits stock using repositories bound to the caller's transaction
// (invoice creation issues every line in the invoice's transaction). Locks all
// candidate rows for the item, computes the full allocation plan first, and
// only then applies the deductions; an insufficiency is detected before any
// write, so a failing issue leaves no partial state.
func (e *Engine) IssueInTx(
	stockRepo repository.StockRepository,
	batchRepo repository.BatchRepository,
	movementRepo repository.StockMovementRepository,
	in IssueInput,
	now time.Time,
) ([]*entity.StockMovement, error) {
	rows, err := stockRepo.ListByItemForUpdate(in.CompanyID, in.ItemID)
	if err != nil {
		return nil, err
	}
	plan, err := PlanIssue(rows, in.Quantity)
	if err != nil {
		return nil, err
	}

	movs := make([]*entity.StockMovement, 0, len(plan))
	for _, d := range plan {
		d.Stock.Quantity = d.Stock.Quantity.Sub(d.Quantity)
		d.Stock.LastUpdated = now
		if err := stockRepo.Upsert(d.Stock); err != nil {
			return nil, err
		}
		if d.Stock.BatchID != "" {
			if err := batchRepo.AddAvailable(d.Stock.BatchID, d.Quantity.Neg()); err != nil {
				return nil, err
			}
		}
		mov := &entity.StockMovement{
			ID:            uuid.New().String(),
			CompanyID:     in.CompanyID,
			ItemID:        in.ItemID,
			BatchID:       d.Stock.BatchID,
			LocationID:    d.Stock.LocationID,
			MovementType:  entity.MovementTypeSale,
			Quantity:      d.Quantity.Neg(),
			ReferenceID:   in.ReferenceID,
			ReferenceType: in.ReferenceType,
			MovementDate:  now,
			CreatedBy:     in.UserID,
			CreatedAt:     now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return nil, err
		}
		movs = append(movs, mov)
	}
	return movs, nil
}

// Adjust applies a signed correction to one stock key. A negative delta that
// would take the quantity below zero is rejected as invalid input, as is a
// positive delta on a batch-keyed row that would push the lot's availability
// above what it originally received.
func (e *Engine) Adjust(ctx context.Context, in AdjustInput) (*entity.StockMovement, error) {
	if in.Delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := e.ownedItem(in.CompanyID, in.ItemID); err != nil {
		return nil, err
	}
	if _, err := e.ownedLocation(in.CompanyID, in.LocationID); err != nil {
		return nil, err
	}

	now := time.Now()
	var mov *entity.StockMovement
	err := e.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		batchRepo repository.BatchRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		stock, err := stockRepo.GetForUpdate(in.CompanyID, in.ItemID, in.LocationID, in.BatchID)
		if err != nil {
			return err
		}
		newQty := stock.Quantity.Add(in.Delta)
		if newQty.IsNegative() {
			return domain.ErrInvalidInput
		}
		if in.BatchID != "" {
			batch, err := batchRepo.GetByID(in.BatchID)
			if err != nil {
				return err
			}
			if batch == nil || batch.CompanyID != in.CompanyID || batch.ItemID != in.ItemID {
				return domain.ErrNotFound
			}
			if batch.QuantityAvailable.Add(in.Delta).GreaterThan(batch.QuantityReceived) {
				return domain.ErrInvalidInput
			}
		}
		stock.Quantity = newQty
		stock.LastUpdated = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		if in.BatchID != "" {
			if err := batchRepo.AddAvailable(in.BatchID, in.Delta); err != nil {
				return err
			}
		}
		mov = &entity.StockMovement{
			ID:            uuid.New().String(),
			CompanyID:     in.CompanyID,
			ItemID:        in.ItemID,
			BatchID:       in.BatchID,
			LocationID:    in.LocationID,
			MovementType:  entity.MovementTypeAdjustment,
			Quantity:      in.Delta,
			ReferenceID:   in.Reason,
			ReferenceType: entity.ReferenceAdjustment,
			MovementDate:  now,
			CreatedBy:     in.UserID,
			CreatedAt:     now,
		}
		return movementRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// Transfer moves quantity from one location to another in a single
// transaction: a debit movement at the source and a credit movement at the
// destination, sharing one reference id.
func (e *Engine) Transfer(ctx context.Context, in TransferInput) ([]*entity.StockMovement, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) || in.FromLocationID == in.ToLocationID {
		return nil, domain.ErrInvalidInput
	}
	if _, err := e.ownedItem(in.CompanyID, in.ItemID); err != nil {
		return nil, err
	}
	if _, err := e.ownedLocation(in.CompanyID, in.FromLocationID); err != nil {
		return nil, err
	}
	if _, err := e.ownedLocation(in.CompanyID, in.ToLocationID); err != nil {
		return nil, err
	}

	now := time.Now()
	transferID := uuid.New().String()
	var movs []*entity.StockMovement
	err := e.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		batchRepo repository.BatchRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		origin, err := stockRepo.GetForUpdate(in.CompanyID, in.ItemID, in.FromLocationID, in.BatchID)
		if err != nil {
			return err
		}
		if origin.Quantity.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}
		dest, err := stockRepo.GetForUpdate(in.CompanyID, in.ItemID, in.ToLocationID, in.BatchID)
		if err != nil {
			return err
		}
		origin.Quantity = origin.Quantity.Sub(in.Quantity)
		dest.Quantity = dest.Quantity.Add(in.Quantity)
		origin.LastUpdated = now
		dest.LastUpdated = now
		if err := stockRepo.Upsert(origin); err != nil {
			return err
		}
		if err := stockRepo.Upsert(dest); err != nil {
			return err
		}
		outMov := &entity.StockMovement{
			ID:            uuid.New().String(),
			CompanyID:     in.CompanyID,
			ItemID:        in.ItemID,
			BatchID:       in.BatchID,
			LocationID:    in.FromLocationID,
			MovementType:  entity.MovementTypeTransfer,
			Quantity:      in.Quantity.Neg(),
			ReferenceID:   transferID,
			ReferenceType: entity.ReferenceTransfer,
			MovementDate:  now,
			CreatedBy:     in.UserID,
			CreatedAt:     now,
		}
		if err := movementRepo.Create(outMov); err != nil {
			return err
		}
		inMov := &entity.StockMovement{
			ID:            uuid.New().String(),
			CompanyID:     in.CompanyID,
			ItemID:        in.ItemID,
			BatchID:       in.BatchID,
			LocationID:    in.ToLocationID,
			MovementType:  entity.MovementTypeTransfer,
			Quantity:      in.Quantity,
			ReferenceID:   transferID,
			ReferenceType: entity.ReferenceTransfer,
			MovementDate:  now,
			CreatedBy:     in.UserID,
			CreatedAt:     now,
		}
		if err := movementRepo.Create(inMov); err != nil {
			return err
		}
		movs = []*entity.StockMovement{outMov, inMov}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movs, nil
}

func (e *Engine) ownedItem(companyID, itemID string) (*entity.Item, error) {
	item, err := e.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return item, nil
}

func (e *Engine) ownedLocation(companyID, locationID string) (*entity.Location, error) {
	loc, err := e.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if loc.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return loc, nil
}
