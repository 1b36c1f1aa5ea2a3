package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/application/dto"
	"github.com/rightchoice/medicare-api/internal/application/ledger"
	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
	"github.com/rightchoice/medicare-api/internal/domain/status"
)

// UseCase implements the purchasing flow: purchase orders and the GRN
// postings that receive stock against them.
type UseCase struct {
	txRunner     TxRunner
	receiver     StockReceiver
	supplierRepo repository.SupplierRepository
	itemRepo     repository.ItemRepository
	locationRepo repository.LocationRepository
	poRepo       repository.PurchaseOrderRepository
	grnRepo      repository.GRNRepository
}

// NewUseCase builds the procurement use case.
func NewUseCase(
	txRunner TxRunner,
	receiver StockReceiver,
	supplierRepo repository.SupplierRepository,
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
	poRepo repository.PurchaseOrderRepository,
	grnRepo repository.GRNRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		receiver:     receiver,
		supplierRepo: supplierRepo,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
		poRepo:       poRepo,
		grnRepo:      grnRepo,
	}
}

// CreatePurchaseOrder creates a draft purchase order. Line totals and GST are
// priced from the item master at creation time.
func (uc *UseCase) CreatePurchaseOrder(ctx context.Context, companyID, userID string, req dto.CreatePurchaseOrderRequest) (*entity.PurchaseOrder, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(req.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	loc, err := uc.locationRepo.GetByID(req.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil || loc.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	subtotal := decimal.Zero
	gstAmount := decimal.Zero
	lines := make([]entity.PurchaseOrderItem, 0, len(req.Items))
	for _, li := range req.Items {
		if !li.Quantity.GreaterThan(decimal.Zero) || li.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item, err := uc.itemRepo.GetByID(li.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil || item.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		price := li.UnitPrice
		if price.IsZero() {
			price = item.PurchasePrice
		}
		taxable := li.Quantity.Mul(price).Round(2)
		tax := taxable.Mul(item.GSTRate).Div(decimal.NewFromInt(100)).Round(2)
		subtotal = subtotal.Add(taxable)
		gstAmount = gstAmount.Add(tax)
		lines = append(lines, entity.PurchaseOrderItem{
			ItemID:           li.ItemID,
			Quantity:         li.Quantity,
			UnitPrice:        price,
			GSTRate:          item.GSTRate,
			TotalAmount:      taxable.Add(tax),
			ReceivedQuantity: decimal.Zero,
		})
	}

	po := &entity.PurchaseOrder{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		SupplierID:       req.SupplierID,
		LocationID:       req.LocationID,
		PONumber:         docNumber("PO", now),
		PODate:           now,
		ExpectedDelivery: req.ExpectedDelivery,
		Items:            lines,
		Subtotal:         subtotal,
		GSTAmount:        gstAmount,
		TotalAmount:      subtotal.Add(gstAmount),
		Status:           status.OrderDraft,
		Notes:            req.Notes,
		CreatedBy:        userID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.poRepo.Create(po); err != nil {
		return nil, fmt.Errorf("create purchase order: %w", err)
	}
	return po, nil
}

// GetPurchaseOrder returns one purchase order scoped to the company.
func (uc *UseCase) GetPurchaseOrder(companyID, id string) (*entity.PurchaseOrder, error) {
	po, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil || po.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return po, nil
}

// ListPurchaseOrders returns the company's purchase orders.
func (uc *UseCase) ListPurchaseOrders(companyID string) ([]*entity.PurchaseOrder, error) {
	return uc.poRepo.List(companyID)
}

// TransitionPurchaseOrder applies a user-driven status change (submit,
// approve, cancel). Illegal transitions fail with ErrConflict.
func (uc *UseCase) TransitionPurchaseOrder(companyID, id string, to status.Order) (*entity.PurchaseOrder, error) {
	po, err := uc.GetPurchaseOrder(companyID, id)
	if err != nil {
		return nil, err
	}
	if !status.CanTransition(po.Status, to) {
		return nil, domain.ErrConflict
	}
	po.Status = to
	po.UpdatedAt = time.Now()
	if err := uc.poRepo.Update(po); err != nil {
		return nil, fmt.Errorf("update purchase order: %w", err)
	}
	return po, nil
}

// CreateGRN posts a goods received note against an approved purchase order.
// Every received line credits stock through the ledger engine; the GRN, the
// movements and the PO line accumulation commit atomically. Receiving more
// than a line's remaining ordered quantity is rejected.
func (uc *UseCase) CreateGRN(ctx context.Context, companyID, userID string, req dto.CreateGRNRequest) (*entity.GRN, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	grn := &entity.GRN{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		POID:      req.POID,
		GRNNumber: docNumber("GRN", now),
		GRNDate:   now,
		Notes:     req.Notes,
		CreatedBy: userID,
		CreatedAt: now,
	}

	err := uc.txRunner.RunProcurement(ctx, func(
		stockRepo repository.StockRepository,
		batchRepo repository.BatchRepository,
		movementRepo repository.StockMovementRepository,
		poRepo repository.PurchaseOrderRepository,
		grnRepo repository.GRNRepository,
	) error {
		po, err := poRepo.GetByIDForUpdate(req.POID)
		if err != nil {
			return err
		}
		if po == nil || po.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if po.Status != status.OrderApproved && po.Status != status.OrderPartiallyReceived {
			return domain.ErrConflict
		}
		grn.SupplierID = po.SupplierID
		grn.LocationID = po.LocationID

		lineByItem := make(map[string]*entity.PurchaseOrderItem, len(po.Items))
		for i := range po.Items {
			lineByItem[po.Items[i].ItemID] = &po.Items[i]
		}

		grn.Items = grn.Items[:0]
		for _, ri := range req.Items {
			if !ri.ReceivedQuantity.GreaterThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			line, ok := lineByItem[ri.ItemID]
			if !ok {
				return domain.ErrInvalidInput
			}
			remaining := line.Quantity.Sub(line.ReceivedQuantity)
			if ri.ReceivedQuantity.GreaterThan(remaining) {
				return domain.ErrInvalidInput
			}
			item, err := uc.itemRepo.GetByID(ri.ItemID)
			if err != nil {
				return err
			}
			if item == nil || item.CompanyID != companyID {
				return domain.ErrNotFound
			}
			price := ri.UnitPrice
			if price.IsZero() {
				price = line.UnitPrice
			}

			var batch *ledger.BatchInfo
			if ri.BatchNumber != "" {
				batch = &ledger.BatchInfo{
					BatchNumber:       ri.BatchNumber,
					ManufacturingDate: ri.ManufacturingDate,
					ExpiryDate:        ri.ExpiryDate,
					SupplierID:        po.SupplierID,
					PurchasePrice:     price,
				}
			}
			_, err = uc.receiver.ReceiveInTx(stockRepo, batchRepo, movementRepo, item, ledger.ReceiveInput{
				CompanyID:     companyID,
				ItemID:        ri.ItemID,
				LocationID:    po.LocationID,
				Quantity:      ri.ReceivedQuantity,
				Batch:         batch,
				MovementType:  entity.MovementTypePurchase,
				ReferenceID:   grn.ID,
				ReferenceType: entity.ReferenceGRN,
				UserID:        userID,
			}, now)
			if err != nil {
				return err
			}

			line.ReceivedQuantity = line.ReceivedQuantity.Add(ri.ReceivedQuantity)
			grn.Items = append(grn.Items, entity.GRNItem{
				ItemID:            ri.ItemID,
				OrderedQuantity:   line.Quantity,
				ReceivedQuantity:  ri.ReceivedQuantity,
				UnitPrice:         price,
				BatchNumber:       ri.BatchNumber,
				ManufacturingDate: ri.ManufacturingDate,
				ExpiryDate:        ri.ExpiryDate,
			})
		}

		progress := make([]status.LineProgress, len(po.Items))
		for i, l := range po.Items {
			progress[i] = status.LineProgress{Ordered: l.Quantity, Satisfied: l.ReceivedQuantity}
		}
		grn.Status = status.DeriveGRN(progress)
		po.Status = status.DeriveOrder(po.Status, progress, status.OrderPartiallyReceived, status.OrderReceived)
		po.UpdatedAt = now

		if err := grnRepo.Create(grn); err != nil {
			return err
		}
		return poRepo.Update(po)
	})
	if err != nil {
		return nil, err
	}
	return grn, nil
}

// GetGRN returns one GRN scoped to the company.
func (uc *UseCase) GetGRN(companyID, id string) (*entity.GRN, error) {
	grn, err := uc.grnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if grn == nil || grn.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return grn, nil
}

// ListGRNs returns the company's GRNs.
func (uc *UseCase) ListGRNs(companyID string) ([]*entity.GRN, error) {
	return uc.grnRepo.List(companyID)
}

func docNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), uuid.New().String()[:8])
}
