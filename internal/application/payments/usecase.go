package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/application/dto"
	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
	"github.com/rightchoice/medicare-api/internal/domain/status"
)

var validModes = map[string]bool{
	entity.PaymentModeCash:         true,
	entity.PaymentModeCheque:       true,
	entity.PaymentModeBankTransfer: true,
	entity.PaymentModeUPI:          true,
	entity.PaymentModeCard:         true,
	entity.PaymentModeOnline:       true,
}

// UseCase implements payment recording against invoices and payment order
// creation at the gateway.
type UseCase struct {
	txRunner    TxRunner
	gateway     Gateway
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
}

// NewUseCase builds the payments use case.
func NewUseCase(txRunner TxRunner, gateway Gateway, invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) *UseCase {
	return &UseCase{txRunner: txRunner, gateway: gateway, invoiceRepo: invoiceRepo, paymentRepo: paymentRepo}
}

// RecordPayment settles an amount against an invoice. The invoice row is
// locked while paid/balance are adjusted and the status re-derived, so
// concurrent payments against one invoice serialize. A payment that would
// push the paid amount past the invoice total is rejected.
func (uc *UseCase) RecordPayment(ctx context.Context, companyID, userID string, req dto.RecordPaymentRequest) (*entity.Payment, error) {
	if !req.Amount.GreaterThan(decimal.Zero) || !validModes[req.PaymentMode] {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var payment *entity.Payment
	err := uc.txRunner.RunPayments(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		inv, err := invoiceRepo.GetByIDForUpdate(req.InvoiceID)
		if err != nil {
			return err
		}
		if inv == nil || inv.CompanyID != companyID {
			return domain.ErrNotFound
		}
		if inv.Status == status.InvoiceCancelled {
			return domain.ErrConflict
		}
		newPaid := inv.PaidAmount.Add(req.Amount)
		if newPaid.GreaterThan(inv.TotalAmount) {
			return domain.ErrInvalidInput
		}

		inv.PaidAmount = newPaid
		inv.BalanceAmount = inv.TotalAmount.Sub(newPaid)
		inv.Status = status.DeriveInvoice(inv.TotalAmount, newPaid, inv.DueDate, now)
		inv.UpdatedAt = now
		if err := invoiceRepo.UpdatePayment(inv); err != nil {
			return err
		}

		payment = &entity.Payment{
			ID:               uuid.New().String(),
			CompanyID:        companyID,
			InvoiceID:        inv.ID,
			CustomerID:       inv.CustomerID,
			Amount:           req.Amount,
			PaymentMode:      req.PaymentMode,
			PaymentDate:      now,
			ReferenceNumber:  req.ReferenceNumber,
			GatewayPaymentID: req.GatewayPaymentID,
			Status:           entity.PaymentStatusSuccess,
			Notes:            req.Notes,
			CreatedBy:        userID,
			CreatedAt:        now,
		}
		return paymentRepo.Create(payment)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// ListPayments returns the company's payments, optionally narrowed to one
// invoice.
func (uc *UseCase) ListPayments(companyID, invoiceID string) ([]*entity.Payment, error) {
	return uc.paymentRepo.List(repository.PaymentFilter{CompanyID: companyID, InvoiceID: invoiceID})
}

// CreatePaymentOrder creates a gateway order for the invoice's outstanding
// balance and persists it for reconciliation.
func (uc *UseCase) CreatePaymentOrder(ctx context.Context, companyID, userID, invoiceID string) (*entity.PaymentOrder, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil || inv.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if !inv.BalanceAmount.GreaterThan(decimal.Zero) || inv.Status == status.InvoiceCancelled {
		return nil, domain.ErrConflict
	}

	gw, err := uc.gateway.CreateOrder(ctx, inv.BalanceAmount, "INR", inv.InvoiceNumber)
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	order := &entity.PaymentOrder{
		ID:        gw.ID,
		CompanyID: companyID,
		InvoiceID: inv.ID,
		Amount:    gw.Amount,
		Currency:  gw.Currency,
		Status:    gw.Status,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}
	if err := uc.paymentRepo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("persist payment order: %w", err)
	}
	return order, nil
}
