package sales

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
	"github.com/rightchoice/medicare-api/pkg/gst"
)

// UseCase implements the selling flow: sales orders and the invoices that
// issue stock against them.
type UseCase struct {
	txRunner     TxRunner
	issuer       StockIssuer
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
	locationRepo repository.LocationRepository
	soRepo       repository.SalesOrderRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewUseCase builds the sales use case.
func NewUseCase(
	txRunner TxRunner,
	issuer StockIssuer,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
	soRepo repository.SalesOrderRepository,
	invoiceRepo repository.InvoiceRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		issuer:       issuer,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
		soRepo:       soRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// CreateSalesOrder creates a draft sales order priced from the item master.
// No stock is reserved or issued at order time.
func (uc *UseCase) CreateSalesOrder(ctx context.Context, companyID, userID string, req dto.CreateSalesOrderRequest) (*entity.SalesOrder, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.CompanyID != companyID {
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
	lines := make([]entity.SalesOrderItem, 0, len(req.Items))
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
			price = item.SellingPrice
		}
		taxable := li.Quantity.Mul(price).Round(2)
		tax := taxable.Mul(item.GSTRate).Div(decimal.NewFromInt(100)).Round(2)
		subtotal = subtotal.Add(taxable)
		gstAmount = gstAmount.Add(tax)
		lines = append(lines, entity.SalesOrderItem{
			ItemID:            li.ItemID,
			Quantity:          li.Quantity,
			UnitPrice:         price,
			GSTRate:           item.GSTRate,
			TotalAmount:       taxable.Add(tax),
			FulfilledQuantity: decimal.Zero,
		})
	}

	so := &entity.SalesOrder{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		CustomerID:   req.CustomerID,
		LocationID:   req.LocationID,
		SONumber:     docNumber("SO", now),
		SODate:       now,
		DeliveryDate: req.DeliveryDate,
		Items:        lines,
		Subtotal:     subtotal,
		GSTAmount:    gstAmount,
		TotalAmount:  subtotal.Add(gstAmount),
		Status:       status.OrderDraft,
		Notes:        req.Notes,
		CreatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.soRepo.Create(so); err != nil {
		return nil, fmt.Errorf("create sales order: %w", err)
	}
	return so, nil
}

// GetSalesOrder returns one sales order scoped to the company.
func (uc *UseCase) GetSalesOrder(companyID, id string) (*entity.SalesOrder, error) {
	so, err := uc.soRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if so == nil || so.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return so, nil
}

// ListSalesOrders returns the company's sales orders.
func (uc *UseCase) ListSalesOrders(companyID string) ([]*entity.SalesOrder, error) {
	return uc.soRepo.List(companyID)
}

// TransitionSalesOrder applies a user-driven status change (submit, approve,
// cancel). Illegal transitions fail with ErrConflict.
func (uc *UseCase) TransitionSalesOrder(companyID, id string, to status.Order) (*entity.SalesOrder, error) {
	so, err := uc.GetSalesOrder(companyID, id)
	if err != nil {
		return nil, err
	}
	if !status.CanTransition(so.Status, to) {
		return nil, domain.ErrConflict
	}
	so.Status = to
	so.UpdatedAt = time.Now()
	if err := uc.soRepo.Update(so); err != nil {
		return nil, fmt.Errorf("update sales order: %w", err)
	}
	return so, nil
}

// CreateInvoice bills a customer and issues the stock for every line in one
// transaction, FIFO across lots. The intra/inter-state rule picks CGST+SGST
// or IGST per line from the company and customer states. When the invoice
// references a sales order, the order's fulfilled quantities accumulate and
// its status is re-derived in the same commit; billing more than a line's
// remaining quantity is rejected.
func (uc *UseCase) CreateInvoice(ctx context.Context, companyID, userID string, req dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	intra := gst.IntraState(company.State, customer.State)

	now := time.Now()
	subtotal := decimal.Zero
	totalCGST := decimal.Zero
	totalSGST := decimal.Zero
	totalIGST := decimal.Zero
	lines := make([]entity.InvoiceItem, 0, len(req.Items))
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
			price = item.SellingPrice
		}
		taxable := li.Quantity.Mul(price).Round(2)
		cgst, sgst, igst := gst.Split(taxable, item.GSTRate, intra)
		subtotal = subtotal.Add(taxable)
		totalCGST = totalCGST.Add(cgst)
		totalSGST = totalSGST.Add(sgst)
		totalIGST = totalIGST.Add(igst)
		lines = append(lines, entity.InvoiceItem{
			ItemID:      li.ItemID,
			Quantity:    li.Quantity,
			UnitPrice:   price,
			GSTRate:     item.GSTRate,
			CGSTAmount:  cgst,
			SGSTAmount:  sgst,
			IGSTAmount:  igst,
			TotalAmount: taxable.Add(cgst).Add(sgst).Add(igst),
		})
	}

	totalGST := totalCGST.Add(totalSGST).Add(totalIGST)
	totalAmount := subtotal.Add(totalGST)
	dueDate := req.DueDate
	if dueDate == nil && customer.CreditDays > 0 {
		d := now.AddDate(0, 0, customer.CreditDays)
		dueDate = &d
	}

	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		CustomerID:    req.CustomerID,
		SOID:          req.SOID,
		InvoiceNumber: docNumber("INV", now),
		InvoiceDate:   now,
		DueDate:       dueDate,
		Items:         lines,
		Subtotal:      subtotal,
		TotalCGST:     totalCGST,
		TotalSGST:     totalSGST,
		TotalIGST:     totalIGST,
		TotalGST:      totalGST,
		TotalAmount:   totalAmount,
		PaidAmount:    decimal.Zero,
		BalanceAmount: totalAmount,
		Status:        status.InvoicePending,
		Notes:         req.Notes,
		CreatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.RunSales(ctx, func(
		stockRepo repository.StockRepository,
		batchRepo repository.BatchRepository,
		movementRepo repository.StockMovementRepository,
		soRepo repository.SalesOrderRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		for _, line := range inv.Items {
			_, err := uc.issuer.IssueInTx(stockRepo, batchRepo, movementRepo, ledger.IssueInput{
				CompanyID:     companyID,
				ItemID:        line.ItemID,
				Quantity:      line.Quantity,
				ReferenceID:   inv.ID,
				ReferenceType: entity.ReferenceInvoice,
				UserID:        userID,
			}, now)
			if err != nil {
				return err
			}
		}

		if req.SOID != "" {
			so, err := soRepo.GetByIDForUpdate(req.SOID)
			if err != nil {
				return err
			}
			if so == nil || so.CompanyID != companyID {
				return domain.ErrNotFound
			}
			if so.Status != status.OrderApproved && so.Status != status.OrderPartiallyFulfilled {
				return domain.ErrConflict
			}
			lineByItem := make(map[string]*entity.SalesOrderItem, len(so.Items))
			for i := range so.Items {
				lineByItem[so.Items[i].ItemID] = &so.Items[i]
			}
			for _, line := range inv.Items {
				soLine, ok := lineByItem[line.ItemID]
				if !ok {
					return domain.ErrInvalidInput
				}
				remaining := soLine.Quantity.Sub(soLine.FulfilledQuantity)
				if line.Quantity.GreaterThan(remaining) {
					return domain.ErrInvalidInput
				}
				soLine.FulfilledQuantity = soLine.FulfilledQuantity.Add(line.Quantity)
			}
			progress := make([]status.LineProgress, len(so.Items))
			for i, l := range so.Items {
				progress[i] = status.LineProgress{Ordered: l.Quantity, Satisfied: l.FulfilledQuantity}
			}
			so.Status = status.DeriveOrder(so.Status, progress, status.OrderPartiallyFulfilled, status.OrderFulfilled)
			so.UpdatedAt = now
			if err := soRepo.Update(so); err != nil {
				return err
			}
		}

		return invoiceRepo.Create(inv)
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// GetInvoice returns one invoice scoped to the company.
func (uc *UseCase) GetInvoice(companyID, id string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil || inv.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// ListInvoices returns the company's invoices.
func (uc *UseCase) ListInvoices(companyID string) ([]*entity.Invoice, error) {
	return uc.invoiceRepo.List(companyID)
}

func docNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), uuid.New().String()[:8])
}
