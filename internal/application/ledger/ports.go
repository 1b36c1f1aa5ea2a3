package ledger

import (
	"context"

	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

// TxRunner executes a function inside a database transaction, passing
// repositories bound to that transaction. Stock, batch and movement writes of
// one ledger operation either all commit or all roll back; this is what keeps
// the movement ledger and the quantities from diverging.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		batchRepo repository.BatchRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
