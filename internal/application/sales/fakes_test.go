package sales_test

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

// salesStore is the in-memory backing state for sales tests: the ledger tables
// plus sales orders and invoices.
type salesStore struct {
	stocks    map[string]*entity.Stock
	batches   map[string]*entity.Batch
	movements []*entity.StockMovement
	sos       map[string]*entity.SalesOrder
	invoices  map[string]*entity.Invoice
	companies map[string]*entity.Company
	customers map[string]*entity.Customer
	items     map[string]*entity.Item
	locations map[string]*entity.Location
}

func newSalesStore() *salesStore {
	return &salesStore{
		stocks:    map[string]*entity.Stock{},
		batches:   map[string]*entity.Batch{},
		sos:       map[string]*entity.SalesOrder{},
		invoices:  map[string]*entity.Invoice{},
		companies: map[string]*entity.Company{},
		customers: map[string]*entity.Customer{},
		items:     map[string]*entity.Item{},
		locations: map[string]*entity.Location{},
	}
}

func stockKey(companyID, itemID, locationID, batchID string) string {
	return strings.Join([]string{companyID, itemID, locationID, batchID}, "|")
}

func copySO(so *entity.SalesOrder) *entity.SalesOrder {
	cp := *so
	cp.Items = append([]entity.SalesOrderItem(nil), so.Items...)
	return &cp
}

func copyInvoice(inv *entity.Invoice) *entity.Invoice {
	cp := *inv
	cp.Items = append([]entity.InvoiceItem(nil), inv.Items...)
	return &cp
}

func (s *salesStore) clone() *salesStore {
	c := newSalesStore()
	for k, v := range s.stocks {
		cp := *v
		c.stocks[k] = &cp
	}
	for k, v := range s.batches {
		cp := *v
		c.batches[k] = &cp
	}
	c.movements = append(c.movements, s.movements...)
	for k, v := range s.sos {
		c.sos[k] = copySO(v)
	}
	for k, v := range s.invoices {
		c.invoices[k] = copyInvoice(v)
	}
	c.companies = s.companies
	c.customers = s.customers
	c.items = s.items
	c.locations = s.locations
	return c
}

// salesTxRunner commits by swapping in a mutated clone; a failed callback
// leaves the store untouched.
type salesTxRunner struct {
	mu    sync.Mutex
	store *salesStore
}

func (r *salesTxRunner) RunSales(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	batchRepo repository.BatchRepository,
	movementRepo repository.StockMovementRepository,
	soRepo repository.SalesOrderRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	work := r.store.clone()
	err := fn(&fakeStockRepo{work}, &fakeBatchRepo{work}, &fakeMovementRepo{work}, &fakeSORepo{work}, &fakeInvoiceRepo{work})
	if err != nil {
		return err
	}
	*r.store = *work
	return nil
}

type fakeStockRepo struct{ s *salesStore }

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

type fakeBatchRepo struct{ s *salesStore }

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

type fakeMovementRepo struct{ s *salesStore }

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

type fakeSORepo struct{ s *salesStore }

func (r *fakeSORepo) Create(so *entity.SalesOrder) error {
	r.s.sos[so.ID] = copySO(so)
	return nil
}

func (r *fakeSORepo) GetByID(id string) (*entity.SalesOrder, error) {
	if so, ok := r.s.sos[id]; ok {
		return copySO(so), nil
	}
	return nil, nil
}

func (r *fakeSORepo) GetByIDForUpdate(id string) (*entity.SalesOrder, error) {
	return r.GetByID(id)
}

func (r *fakeSORepo) Update(so *entity.SalesOrder) error {
	if _, ok := r.s.sos[so.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.sos[so.ID] = copySO(so)
	return nil
}

func (r *fakeSORepo) List(companyID string) ([]*entity.SalesOrder, error) {
	var out []*entity.SalesOrder
	for _, so := range r.s.sos {
		if so.CompanyID == companyID {
			out = append(out, copySO(so))
		}
	}
	return out, nil
}

type fakeInvoiceRepo struct{ s *salesStore }

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.s.invoices[inv.ID] = copyInvoice(inv)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	if inv, ok := r.s.invoices[id]; ok {
		return copyInvoice(inv), nil
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetByIDForUpdate(id string) (*entity.Invoice, error) {
	return r.GetByID(id)
}

func (r *fakeInvoiceRepo) UpdatePayment(inv *entity.Invoice) error {
	cur, ok := r.s.invoices[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.PaidAmount = inv.PaidAmount
	cur.BalanceAmount = inv.BalanceAmount
	cur.Status = inv.Status
	cur.UpdatedAt = inv.UpdatedAt
	return nil
}

func (r *fakeInvoiceRepo) List(companyID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.s.invoices {
		if inv.CompanyID == companyID {
			out = append(out, copyInvoice(inv))
		}
	}
	return out, nil
}

type fakeCompanyRepo struct{ s *salesStore }

func (r *fakeCompanyRepo) Create(company *entity.Company) error {
	r.s.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.s.companies[id], nil
}

func (r *fakeCompanyRepo) List() ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.s.companies {
		out = append(out, c)
	}
	return out, nil
}

type fakeCustomerRepo struct{ s *salesStore }

func (r *fakeCustomerRepo) Create(customer *entity.Customer) error {
	r.s.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.s.customers[id], nil
}

func (r *fakeCustomerRepo) Update(customer *entity.Customer) error {
	r.s.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) List(companyID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.s.customers {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeItemRepo struct{ s *salesStore }

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

type fakeLocationRepo struct{ s *salesStore }

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
