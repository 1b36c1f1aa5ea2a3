package sales

import (
	"context"
	"time"

	"github.com/rightchoice/medicare-api/internal/application/ledger"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

// TxRunner executes a sales transaction. Invoice creation writes stock,
// batches, movements, the invoice and the sales order lines in one commit.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		batchRepo repository.BatchRepository,
		movementRepo repository.StockMovementRepository,
		soRepo repository.SalesOrderRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// StockIssuer is the ledger operation invoice creation runs per billed line,
// inside the invoice's transaction. Satisfied by *ledger.Engine.
type StockIssuer interface {
	IssueInTx(
		stockRepo repository.StockRepository,
		batchRepo repository.BatchRepository,
		movementRepo repository.StockMovementRepository,
		in ledger.IssueInput,
		now time.Time,
	) ([]*entity.StockMovement, error)
}
