// Package razorpay is a minimal Razorpay Orders API client. Only order
// creation is needed here; payment capture happens on the frontend checkout
// and settles through RecordPayment.
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/application/payments"
	"github.com/rightchoice/medicare-api/internal/domain"
	"github.com/rightchoice/medicare-api/pkg/config"
)

var _ payments.Gateway = (*Client)(nil)

// Client talks to the Razorpay REST API with basic auth.
type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	http      *http.Client
}

// NewClient builds a Razorpay client from config.
func NewClient(cfg config.RazorpayConfig) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

type orderRequest struct {
	Amount   int64  `json:"amount"` // smallest currency unit (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreateOrder creates a payment order for the given amount in rupees.
func (c *Client) CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (*payments.GatewayOrder, error) {
	paise := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	body, err := json.Marshal(orderRequest{Amount: paise, Currency: currency, Receipt: receipt})
	if err != nil {
		return nil, fmt.Errorf("marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: razorpay status %d: %s", domain.ErrGateway, resp.StatusCode, msg)
	}

	var out orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode order response: %v", domain.ErrGateway, err)
	}
	return &payments.GatewayOrder{
		ID:       out.ID,
		Amount:   decimal.NewFromInt(out.Amount).Div(decimal.NewFromInt(100)),
		Currency: out.Currency,
		Status:   out.Status,
	}, nil
}
