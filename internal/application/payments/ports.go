package payments

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

// TxRunner executes a payments transaction. Recording a payment updates the
// invoice balance and appends the payment row in one commit, holding the
// invoice row lock.
type TxRunner interface {
	RunPayments(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// GatewayOrder is a payment order created at the gateway.
type GatewayOrder struct {
	ID       string
	Amount   decimal.Decimal
	Currency string
	Status   string
}

// Gateway creates payment orders at an external payment provider. Failures
// surface as domain.ErrGateway.
type Gateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (*GatewayOrder, error)
}
