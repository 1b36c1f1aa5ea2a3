package payments_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightchoice/medicare-api/internal/application/dto"
	"github.com/rightchoice/medicare-api/internal/application/payments"
	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/internal/domain/entity"
	"github.com/rightchoice/medicare-api/internal/domain/repository"
	"github.com/rightchoice/medicare-api/internal/domain/status"
)

const (
	testCompany  = "co-1"
	otherCompany = "co-2"
	testInvoice  = "inv-1"
	testCustomer = "cust-1"
	testUser     = "user-1"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

type payStore struct {
	invoices map[string]*entity.Invoice
	payments []*entity.Payment
	orders   []*entity.PaymentOrder
}

func (s *payStore) clone() *payStore {
	c := &payStore{invoices: map[string]*entity.Invoice{}}
	for k, v := range s.invoices {
		cp := *v
		c.invoices[k] = &cp
	}
	c.payments = append(c.payments, s.payments...)
	c.orders = append(c.orders, s.orders...)
	return c
}

type payTxRunner struct {
	mu    sync.Mutex
	store *payStore
}

func (r *payTxRunner) RunPayments(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	work := r.store.clone()
	if err := fn(&fakeInvoiceRepo{work}, &fakePaymentRepo{work}); err != nil {
		return err
	}
	*r.store = *work
	return nil
}

type fakeInvoiceRepo struct{ s *payStore }

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	cp := *inv
	r.s.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	if inv, ok := r.s.invoices[id]; ok {
		cp := *inv
		return &cp, nil
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
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakePaymentRepo struct{ s *payStore }

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	cp := *p
	r.s.payments = append(r.s.payments, &cp)
	return nil
}

func (r *fakePaymentRepo) List(filter repository.PaymentFilter) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.s.payments {
		if p.CompanyID != filter.CompanyID {
			continue
		}
		if filter.InvoiceID != "" && p.InvoiceID != filter.InvoiceID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePaymentRepo) CreateOrder(o *entity.PaymentOrder) error {
	cp := *o
	r.s.orders = append(r.s.orders, &cp)
	return nil
}

type fakeGateway struct {
	fail   bool
	orders int
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (*payments.GatewayOrder, error) {
	if g.fail {
		return nil, fmt.Errorf("gateway order for %s: %w", receipt, domain.ErrGateway)
	}
	g.orders++
	return &payments.GatewayOrder{
		ID:       fmt.Sprintf("order_rzp%03d", g.orders),
		Amount:   amount,
		Currency: currency,
		Status:   "created",
	}, nil
}

func newFixture(total string, due *time.Time) (*payStore, *fakeGateway, *payments.UseCase) {
	store := &payStore{invoices: map[string]*entity.Invoice{}}
	store.invoices[testInvoice] = &entity.Invoice{
		ID:            testInvoice,
		CompanyID:     testCompany,
		CustomerID:    testCustomer,
		InvoiceNumber: "INV-20260829-abcd1234",
		TotalAmount:   dec(total),
		PaidAmount:    decimal.Zero,
		BalanceAmount: dec(total),
		DueDate:       due,
		Status:        status.InvoicePending,
	}
	gw := &fakeGateway{}
	uc := payments.NewUseCase(&payTxRunner{store: store}, gw, &fakeInvoiceRepo{store}, &fakePaymentRepo{store})
	return store, gw, uc
}

func TestRecordPayment(t *testing.T) {
	t.Run("partial then final payment settles the invoice", func(t *testing.T) {
		store, _, uc := newFixture("1000", nil)

		p1, err := uc.RecordPayment(context.Background(), testCompany, testUser, dto.RecordPaymentRequest{
			InvoiceID: testInvoice, Amount: dec("400"), PaymentMode: entity.PaymentModeUPI,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusSuccess, p1.Status)
		assert.Equal(t, testCustomer, p1.CustomerID)

		inv := store.invoices[testInvoice]
		assert.True(t, inv.PaidAmount.Equal(dec("400")))
		assert.True(t, inv.BalanceAmount.Equal(dec("600")))
		assert.Equal(t, status.InvoicePartiallyPaid, inv.Status)

		_, err = uc.RecordPayment(context.Background(), testCompany, testUser, dto.RecordPaymentRequest{
			InvoiceID: testInvoice, Amount: dec("600"), PaymentMode: entity.PaymentModeCash,
		})
		require.NoError(t, err)
		inv = store.invoices[testInvoice]
		assert.True(t, inv.BalanceAmount.IsZero())
		assert.Equal(t, status.InvoicePaid, inv.Status)
		assert.Len(t, store.payments, 2)
	})

	t.Run("over-payment is rejected and leaves no partial state", func(t *testing.T) {
		store, _, uc := newFixture("1000", nil)

		_, err := uc.RecordPayment(context.Background(), testCompany, testUser, dto.RecordPaymentRequest{
			InvoiceID: testInvoice, Amount: dec("400"), PaymentMode: entity.PaymentModeUPI,
		})
		require.NoError(t, err)

		_, err = uc.RecordPayment(context.Background(), testCompany, testUser, dto.RecordPaymentRequest{
			InvoiceID: testInvoice, Amount: dec("700"), PaymentMode: entity.PaymentModeUPI,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		inv := store.invoices[testInvoice]
		assert.True(t, inv.PaidAmount.Equal(dec("400")))
		assert.Len(t, store.payments, 1)
	})

	t.Run("paying a past-due invoice in full clears overdue", func(t *testing.T) {
		past := time.Now().AddDate(0, 0, -5)
		store, _, uc := newFixture("500", &past)

		_, err := uc.RecordPayment(context.Background(), testCompany, testUser, dto.RecordPaymentRequest{
			InvoiceID: testInvoice, Amount: dec("200"), PaymentMode: entity.PaymentModeCash,
		})
		require.NoError(t, err)
		assert.Equal(t, status.InvoiceOverdue, store.invoices[testInvoice].Status)

		_, err = uc.RecordPayment(context.Background(), testCompany, testUser, dto.RecordPaymentRequest{
			InvoiceID: testInvoice, Amount: dec("300"), PaymentMode: entity.PaymentModeCash,
		})
		require.NoError(t, err)
		assert.Equal(t, status.InvoicePaid, store.invoices[testInvoice].Status)
	})

	t.Run("rejects invalid amount and mode", func(t *testing.T) {
		_, _, uc := newFixture("1000", nil)

		_, err := uc.RecordPayment(context.Background(), testCompany, testUser, dto.RecordPaymentRequest{
			InvoiceID: testInvoice, Amount: dec("0"), PaymentMode: entity.PaymentModeCash,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = uc.RecordPayment(context.Background(), testCompany, testUser, dto.RecordPaymentRequest{
			InvoiceID: testInvoice, Amount: dec("10"), PaymentMode: "barter",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invoice of another company is not found", func(t *testing.T) {
		_, _, uc := newFixture("1000", nil)
		_, err := uc.RecordPayment(context.Background(), otherCompany, testUser, dto.RecordPaymentRequest{
			InvoiceID: testInvoice, Amount: dec("10"), PaymentMode: entity.PaymentModeCash,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("cancelled invoice is a conflict", func(t *testing.T) {
		store, _, uc := newFixture("1000", nil)
		store.invoices[testInvoice].Status = status.InvoiceCancelled

		_, err := uc.RecordPayment(context.Background(), testCompany, testUser, dto.RecordPaymentRequest{
			InvoiceID: testInvoice, Amount: dec("10"), PaymentMode: entity.PaymentModeCash,
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestCreatePaymentOrder(t *testing.T) {
	t.Run("creates and persists a gateway order for the balance", func(t *testing.T) {
		store, _, uc := newFixture("1000", nil)

		order, err := uc.CreatePaymentOrder(context.Background(), testCompany, testUser, testInvoice)
		require.NoError(t, err)
		assert.Equal(t, "order_rzp001", order.ID)
		assert.True(t, order.Amount.Equal(dec("1000")))
		assert.Equal(t, "INR", order.Currency)
		require.Len(t, store.orders, 1)
		assert.Equal(t, testInvoice, store.orders[0].InvoiceID)
	})

	t.Run("gateway failure surfaces as a gateway error", func(t *testing.T) {
		store, gw, uc := newFixture("1000", nil)
		gw.fail = true

		_, err := uc.CreatePaymentOrder(context.Background(), testCompany, testUser, testInvoice)
		assert.ErrorIs(t, err, domain.ErrGateway)
		assert.Empty(t, store.orders)
	})

	t.Run("settled invoice is a conflict", func(t *testing.T) {
		store, _, uc := newFixture("1000", nil)
		store.invoices[testInvoice].BalanceAmount = decimal.Zero
		store.invoices[testInvoice].Status = status.InvoicePaid

		_, err := uc.CreatePaymentOrder(context.Background(), testCompany, testUser, testInvoice)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
