package procurement_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
)

// procStore is the in-memory backing state for procurement tests: the ledger
// tables plus purchase orders and GRNs, so atomicity across both can be
// asserted.
type procStore struct {
	stocks    map[string]*entity.Stock
	batches   map[string]*entity.Batch
	movements []*entity.StockMovement
	pos       map[string]*entity.PurchaseOrder
	grns      map[string]*entity.GRN
	suppliers map[string]*entity.Supplier
	items     map[string]*entity.Item
	locations map[string]*entity.Location
}

func newProcStore() *procStore {
	return &procStore{
		stocks:    map[string]*entity.Stock{},
		batches:   map[string]*entity.Batch{},
		pos:       map[string]*entity.PurchaseOrder{},
		grns:      map[string]*entity.GRN{},
		suppliers: map[string]*entity.Supplier{},
		items:     map[string]*entity.Item{},
		locations: map[string]*entity.Location{},
	}
}

func stockKey(companyID, itemID, locationID, batchID string) string {
	return strings.Join([]string{companyID, itemID, locationID, batchID}, "|")
}

func copyPO(po *entity.PurchaseOrder) *entity.PurchaseOrder {
	cp := *po
	cp.Items = append([]entity.PurchaseOrderItem(nil), po.Items...)
	return &cp
}

func copyGRN(g *entity.GRN) *entity.GRN {
	cp := *g
	cp.Items = append([]entity.GRNItem(nil), g.Items...)
	return &cp
}

func (s *procStore) clone() *procStore {
	c := newProcStore()
	for k, v := range s.stocks {
		cp := *v
		c.stocks[k] = &cp
	}
	for k, v := range s.batches {
		cp := *v
		c.batches[k] = &cp
	}
	c.movements = append(c.movements, s.movements...)
	for k, v := range s.pos {
		c.pos[k] = copyPO(v)
	}
	for k, v := range s.grns {
		c.grns[k] = copyGRN(v)
	}
	c.suppliers = s.suppliers
	c.items = s.items
	c.locations = s.locations
	return c
}

// procTxRunner commits by swapping in a mutated clone; a failed callback
// leaves the store untouched.
type procTxRunner struct {
	mu    sync.Mutex
	store *procStore
}

func (r *procTxRunner) RunProcurement(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	batchRepo repository.BatchRepository,
	movementRepo repository.StockMovementRepository,
	poRepo repository.PurchaseOrderRepository,
	grnRepo repository.GRNRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	work := r.store.clone()
	err := fn(&fakeStockRepo{work}, &fakeBatchRepo{work}, &fakeMovementRepo{work}, &fakePORepo{work}, &fakeGRNRepo{work})
	if err != nil {
		return err
	}
	*r.store = *work
	return nil
}

type fakeStockRepo struct{ s *procStore }

func (r *fakeStockRepo) Get(companyID, itemID, locationID, batchID string) (*entity.Stock, error) {
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

func (r *fakeStockRepo) GetForUpdate(companyID, itemID, locationID, batchID string) (*entity.Stock, error) {
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

func (r *fakeStockRepo) ListByItemForUpdate(companyID, itemID string) ([]*entity.Stock, error) {
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

func (r *fakeStockRepo) Upsert(stock *entity.Stock) error {
	cp := *stock
	r.s.stocks[stockKey(stock.CompanyID, stock.ItemID, stock.LocationID, stock.BatchID)] = &cp
	return nil
}

func (r *fakeStockRepo) List(filter repository.StockFilter) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, st := range r.s.stocks {
		if st.CompanyID == filter.CompanyID {
			out = append(out, st)
		}
	}
	return out, nil
}

type fakeBatchRepo struct{ s *procStore }

func (r *fakeBatchRepo) Create(batch *entity.Batch) error {
	cp := *batch
	r.s.batches[batch.ID] = &cp
	return nil
}

func (r *fakeBatchRepo) GetByID(id string) (*entity.Batch, error) {
	if b, ok := r.s.batches[id]; ok {
		return b, nil
	}
	return nil, nil
}

func (r *fakeBatchRepo) AddAvailable(id string, delta decimal.Decimal) error {
	b, ok := r.s.batches[id]
	if !ok {
		return domain.ErrNotFound
	}
	next := b.QuantityAvailable.Add(delta)
	if next.IsNegative() || next.GreaterThan(b.QuantityReceived) {
		return domain.ErrInvalidInput
	}
	b.QuantityAvailable = next
	return nil
}

func (r *fakeBatchRepo) List(filter repository.BatchFilter) ([]*entity.Batch, error) {
	var out []*entity.Batch
	for _, b := range r.s.batches {
		if b.CompanyID == filter.CompanyID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeMovementRepo struct{ s *procStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.CompanyID == filter.CompanyID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakePORepo struct{ s *procStore }

func (r *fakePORepo) Create(po *entity.PurchaseOrder) error {
	r.s.pos[po.ID] = copyPO(po)
	return nil
}

func (r *fakePORepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	if po, ok := r.s.pos[id]; ok {
		return copyPO(po), nil
	}
	return nil, nil
}

func (r *fakePORepo) GetByIDForUpdate(id string) (*entity.PurchaseOrder, error) {
	return r.GetByID(id)
}

func (r *fakePORepo) Update(po *entity.PurchaseOrder) error {
	if _, ok := r.s.pos[po.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.pos[po.ID] = copyPO(po)
	return nil
}

func (r *fakePORepo) List(companyID string) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, po := range r.s.pos {
		if po.CompanyID == companyID {
			out = append(out, copyPO(po))
		}
	}
	return out, nil
}

type fakeGRNRepo struct{ s *procStore }

func (r *fakeGRNRepo) Create(grn *entity.GRN) error {
	r.s.grns[grn.ID] = copyGRN(grn)
	return nil
}

func (r *fakeGRNRepo) GetByID(id string) (*entity.GRN, error) {
	if g, ok := r.s.grns[id]; ok {
		return copyGRN(g), nil
	}
	return nil, nil
}

func (r *fakeGRNRepo) List(companyID string) ([]*entity.GRN, error) {
	var out []*entity.GRN
	for _, g := range r.s.grns {
		if g.CompanyID == companyID {
			out = append(out, copyGRN(g))
		}
	}
	return out, nil
}

type fakeSupplierRepo struct{ s *procStore }

func (r *fakeSupplierRepo) Create(supplier *entity.Supplier) error {
	r.s.suppliers[supplier.ID] = supplier
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.s.suppliers[id], nil
}

func (r *fakeSupplierRepo) List(companyID string) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.s.suppliers {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeItemRepo struct{ s *procStore }

func (r *fakeItemRepo) Create(item *entity.Item) error {
	r.s.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.s.items[id], nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	r.s.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) List(filter repository.ItemFilter) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.s.items {
		if it.CompanyID == filter.CompanyID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeLocationRepo struct{ s *procStore }

func (r *fakeLocationRepo) Create(location *entity.Location) error {
	r.s.locations[location.ID] = location
	return nil
}

func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.s.locations[id], nil
}

func (r *fakeLocationRepo) List(companyID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.s.locations {
		if l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	return out, nil
}
