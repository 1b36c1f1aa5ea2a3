package procurement

import (
	"context"
	"time"

	"github.com/rightchoice/medicare-api/internal/application/ledger"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

// TxRunner executes a procurement transaction. GRN posting writes stock,
// batches, movements, the GRN and the purchase order lines in one commit.
type TxRunner interface {
	RunProcurement(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		batchRepo repository.BatchRepository,
		movementRepo repository.StockMovementRepository,
		poRepo repository.PurchaseOrderRepository,
		grnRepo repository.GRNRepository,
	) error) error
}

// StockReceiver is the ledger operation GRN posting runs per received line,
// inside the posting's transaction. Satisfied by *ledger.Engine.
type StockReceiver interface {
	ReceiveInTx(
		stockRepo repository.StockRepository,
		batchRepo repository.BatchRepository,
		movementRepo repository.StockMovementRepository,
		item *entity.Item,
		in ledger.ReceiveInput,
		now time.Time,
	) (*entity.StockMovement, error)
}
