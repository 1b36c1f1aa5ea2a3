package ledger_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

// memStore is the in-memory backing state shared by the fake repositories.
// Stock rows are keyed by the same (company, item, location, batch) tuple the
// real schema enforces with a unique index.
type memStore struct {
	stocks    map[string]*entity.Stock
	batches   map[string]*entity.Batch
	movements []*entity.StockMovement
	items     map[string]*entity.Item
	locations map[string]*entity.Location
}

func newMemStore() *memStore {
	return &memStore{
		stocks:    map[string]*entity.Stock{},
		batches:   map[string]*entity.Batch{},
		items:     map[string]*entity.Item{},
		locations: map[string]*entity.Location{},
	}
}

func stockKey(companyID, itemID, locationID, batchID string) string {
	return strings.Join([]string{companyID, itemID, locationID, batchID}, "|")
}

func (s *memStore) addStock(st *entity.Stock) {
	cp := *st
	s.stocks[stockKey(st.CompanyID, st.ItemID, st.LocationID, st.BatchID)] = &cp
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.stocks {
		cp := *v
		c.stocks[k] = &cp
	}
	for k, v := range s.batches {
		cp := *v
		c.batches[k] = &cp
	}
	c.movements = append(c.movements, s.movements...)
	c.items = s.items
	c.locations = s.locations
	return c
}

// snapshot returns a stable textual dump of stocks, batches and movement
// count, used for before/after atomicity assertions.
func (s *memStore) snapshot() string {
	keys := make([]string, 0, len(s.stocks))
	for k := range s.stocks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		st := s.stocks[k]
		fmt.Fprintf(&b, "stock %s=%s\n", k, st.Quantity.String())
	}
	bkeys := make([]string, 0, len(s.batches))
	for k := range s.batches {
		bkeys = append(bkeys, k)
	}
	sort.Strings(bkeys)
	for _, k := range bkeys {
		bt := s.batches[k]
		fmt.Fprintf(&b, "batch %s=%s/%s\n", k, bt.QuantityAvailable.String(), bt.QuantityReceived.String())
	}
	fmt.Fprintf(&b, "movements=%d\n", len(s.movements))
	return b.String()
}

// movementSum is the running signed sum for a (company, item, location) key;
// the conservation property requires it to equal the stock quantity.
func (s *memStore) movementSum(companyID, itemID, locationID string) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range s.movements {
		if m.CompanyID == companyID && m.ItemID == itemID && m.LocationID == locationID {
			sum = sum.Add(m.Quantity)
		}
	}
	return sum
}

// memTxRunner serializes transactions with a mutex and commits by swapping in
// a mutated clone, so a failed callback leaves the store untouched (rollback).
type memTxRunner struct {
	mu    sync.Mutex
	store *memStore
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	batchRepo repository.BatchRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	work := r.store.clone()
	if err := fn(&memStockRepo{work}, &memBatchRepo{work}, &memMovementRepo{work}); err != nil {
		return err
	}
	*r.store = *work
	return nil
}

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) Get(companyID, itemID, locationID, batchID string) (*entity.Stock, error) {
	if st, ok := r.s.stocks[stockKey(companyID, itemID, locationID, batchID)]; ok {
		return st, nil
	}
	return &entity.Stock{
		CompanyID:  companyID,
		ItemID:     itemID,
		LocationID: locationID,
		BatchID:    batchID,
		Quantity:   decimal.Zero,
	}, nil
}

// GetForUpdate mirrors the create-and-lock contract of the real adapter: an
// absent key gets a persisted zero-quantity row before it is handed back.
func (r *memStockRepo) GetForUpdate(companyID, itemID, locationID, batchID string) (*entity.Stock, error) {
	key := stockKey(companyID, itemID, locationID, batchID)
	if st, ok := r.s.stocks[key]; ok {
		return st, nil
	}
	st := &entity.Stock{
		ID:         "stk-" + key,
		CompanyID:  companyID,
		ItemID:     itemID,
		LocationID: locationID,
		BatchID:    batchID,
		Quantity:   decimal.Zero,
	}
	r.s.stocks[key] = st
	return st, nil
}

func (r *memStockRepo) ListByItemForUpdate(companyID, itemID string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, st := range r.s.stocks {
		if st.CompanyID == companyID && st.ItemID == itemID && st.Quantity.GreaterThan(decimal.Zero) {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastUpdated.Equal(out[j].LastUpdated) {
			return out[i].ID < out[j].ID
		}
		return out[i].LastUpdated.Before(out[j].LastUpdated)
	})
	return out, nil
}

func (r *memStockRepo) Upsert(stock *entity.Stock) error {
	cp := *stock
	r.s.stocks[stockKey(stock.CompanyID, stock.ItemID, stock.LocationID, stock.BatchID)] = &cp
	return nil
}

func (r *memStockRepo) List(filter repository.StockFilter) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, st := range r.s.stocks {
		if st.CompanyID != filter.CompanyID {
			continue
		}
		if filter.ItemID != "" && st.ItemID != filter.ItemID {
			continue
		}
		if filter.LocationID != "" && st.LocationID != filter.LocationID {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

type memBatchRepo struct{ s *memStore }

func (r *memBatchRepo) Create(batch *entity.Batch) error {
	cp := *batch
	r.s.batches[batch.ID] = &cp
	return nil
}

func (r *memBatchRepo) GetByID(id string) (*entity.Batch, error) {
	if b, ok := r.s.batches[id]; ok {
		return b, nil
	}
	return nil, nil
}

func (r *memBatchRepo) AddAvailable(id string, delta decimal.Decimal) error {
	b, ok := r.s.batches[id]
	if !ok {
		return domain.ErrNotFound
	}
	next := b.QuantityAvailable.Add(delta)
	if next.IsNegative() || next.GreaterThan(b.QuantityReceived) {
		// mirrors the check constraint on batches.quantity_available
		return fmt.Errorf("batch %s: quantity_available %s out of [0, %s]",
			id, next.String(), b.QuantityReceived.String())
	}
	b.QuantityAvailable = next
	return nil
}

func (r *memBatchRepo) List(filter repository.BatchFilter) ([]*entity.Batch, error) {
	var out []*entity.Batch
	for _, b := range r.s.batches {
		if b.CompanyID != filter.CompanyID {
			continue
		}
		if filter.ItemID != "" && b.ItemID != filter.ItemID {
			continue
		}
		if filter.LocationID != "" && b.LocationID != filter.LocationID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *memMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if m.CompanyID != filter.CompanyID {
			continue
		}
		if filter.ItemID != "" && m.ItemID != filter.ItemID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type memItemRepo struct{ s *memStore }

func (r *memItemRepo) Create(item *entity.Item) error {
	r.s.items[item.ID] = item
	return nil
}

func (r *memItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.s.items[id], nil
}

func (r *memItemRepo) Update(item *entity.Item) error {
	r.s.items[item.ID] = item
	return nil
}

func (r *memItemRepo) List(filter repository.ItemFilter) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.s.items {
		if it.CompanyID == filter.CompanyID {
			out = append(out, it)
		}
	}
	return out, nil
}

type memLocationRepo struct{ s *memStore }

func (r *memLocationRepo) Create(loc *entity.Location) error {
	r.s.locations[loc.ID] = loc
	return nil
}

func (r *memLocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.s.locations[id], nil
}

func (r *memLocationRepo) List(companyID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.s.locations {
		if l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	return out, nil
}
