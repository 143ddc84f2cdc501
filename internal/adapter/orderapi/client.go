package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/retry"
	"github.com/shopspring/decimal"
)

var _ port.OrderPlacer = (*Client)(nil)
var _ port.OrderHistoryProvider = (*Client)(nil)

const (
	ownerHeader    = "X-Owner-ID"
	requestTimeout = 10 * time.Second
)

type (
	orderItem struct {
		ProductID int             `json:"product_id"`
		Name      string          `json:"product_name"`
		Quantity  int             `json:"quantity"`
		Price     decimal.Decimal `json:"price"`
	}

	createOrderReq struct {
		Items           []orderItem     `json:"items"`
		Total           decimal.Decimal `json:"total"`
		ShippingAddress string          `json:"shipping_address"`
	}

	orderResp struct {
		ID              string          `json:"id"`
		Items           []orderItem     `json:"items"`
		Total           decimal.Decimal `json:"total_price"`
		PaymentStatus   string          `json:"payment_status"`
		ShippingAddress string          `json:"shipping_address"`
		CreatedAt       time.Time       `json:"created_at"`
	}
)

// Client talks to the remote order service. Submission is never
// retried automatically, a retry is the owner's decision. The
// idempotent history read retries transient failures.
type Client struct {
	baseURL string
	http    *http.Client
	retry   retry.RetryConfig
}

func New(baseURL string) Client {
	return Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		retry: retry.RetryConfig{
			MaxAttempts: 3,
			Backoff:     retry.ExponentialBackoff(200 * time.Millisecond),
			ShouldRetry: func(err error) bool {
				return !errors.Is(err, domain.ErrUnauthorized)
			},
		},
	}
}

func (c Client) PlaceOrder(
	ctx context.Context, owner string, draft domain.OrderDraft,
) (domain.OrderConfirmation, error) {
	const op = "orderapi.Client.PlaceOrder"

	if err := ctx.Err(); err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, err)
	}

	body, err := json.Marshal(toCreateReq(draft))
	if err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/api/orders/", bytes.NewReader(body),
	)
	if err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(ownerHeader, owner)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf(
			"%s: %w: %w", op, domain.ErrSubmission, err,
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated &&
		resp.StatusCode != http.StatusOK {
		return domain.OrderConfirmation{}, fmt.Errorf(
			"%s: %w: status %d", op, domain.ErrSubmission, resp.StatusCode,
		)
	}

	var or orderResp
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf(
			"%s: %w: %w", op, domain.ErrSubmission, err,
		)
	}

	return domain.OrderConfirmation{
		OrderID:       or.ID,
		PaymentStatus: or.PaymentStatus,
	}, nil
}

func (c Client) Orders(
	ctx context.Context, token string,
) ([]domain.Order, error) {
	const op = "orderapi.Client.Orders"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := retry.DoWithResult(ctx, c.retry, func() ([]orderResp, error) {
		return c.fetchOrders(ctx, token)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toDomainOrder(row))
	}
	return orders, nil
}

func (c Client) fetchOrders(
	ctx context.Context, token string,
) ([]orderResp, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/api/users/me/orders/", nil,
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var rows []orderResp
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func toCreateReq(draft domain.OrderDraft) createOrderReq {
	items := make([]orderItem, 0, len(draft.Items))
	for _, it := range draft.Items {
		items = append(items, orderItem{
			ProductID: it.ProductID,
			Name:      it.ProductName,
			Quantity:  it.Quantity,
			Price:     it.Price.Amount,
		})
	}
	return createOrderReq{
		Items:           items,
		Total:           draft.Total,
		ShippingAddress: draft.ShippingAddress,
	}
}

func toDomainOrder(row orderResp) domain.Order {
	items := make([]domain.OrderItem, 0, len(row.Items))
	for _, it := range row.Items {
		items = append(items, domain.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			Price:       domain.Money{Amount: it.Price, Currency: "USD"},
		})
	}
	return domain.Order{
		ID:              row.ID,
		Items:           items,
		Total:           row.Total,
		PaymentStatus:   row.PaymentStatus,
		ShippingAddress: row.ShippingAddress,
		CreatedAt:       row.CreatedAt,
	}
}
