package analytics

import (
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

var _ port.DashboardProvider = (*Client)(nil)

const requestTimeout = 10 * time.Second

type (
	dashboardResp struct {
		TotalRevenue    decimal.Decimal            `json:"total_revenue"`
		TotalOrders     int                        `json:"total_orders"`
		TotalProducts   int                        `json:"total_products"`
		TotalUsers      int                        `json:"total_users"`
		RecentOrders    []recentOrderResp          `json:"recent_orders"`
		TopProducts     []topProductResp           `json:"top_products"`
		SalesByCategory map[string]decimal.Decimal `json:"sales_by_category"`
		DailyRevenue    []dailyRevenueResp         `json:"daily_revenue"`
	}

	recentOrderResp struct {
		ID        string          `json:"id"`
		Total     decimal.Decimal `json:"total_price"`
		CreatedAt time.Time       `json:"created_at"`
		User      struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}

	topProductResp struct {
		ID        string          `json:"id"`
		Name      string          `json:"name"`
		Price     decimal.Decimal `json:"price"`
		TotalSold int             `json:"total_sold"`
	}

	dailyRevenueResp struct {
		Date    string          `json:"date"`
		Revenue decimal.Decimal `json:"revenue"`
	}
)

// Client reads the dashboard report aggregated by the remote
// analytics service. The storefront only displays it.
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

func (c Client) Dashboard(
	ctx context.Context, token string,
) (domain.DashboardReport, error) {
	const op = "analytics.Client.Dashboard"

	if err := ctx.Err(); err != nil {
		return domain.DashboardReport{}, fmt.Errorf("%s: %w", op, err)
	}

	dr, err := retry.DoWithResult(
		ctx, c.retry,
		func() (dashboardResp, error) { return c.fetch(ctx, token) },
	)
	if err != nil {
		return domain.DashboardReport{}, fmt.Errorf("%s: %w", op, err)
	}
	return toDomain(dr), nil
}

func (c Client) fetch(
	ctx context.Context, token string,
) (dashboardResp, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/api/analytics/dashboard/", nil,
	)
	if err != nil {
		return dashboardResp{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return dashboardResp{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return dashboardResp{}, domain.ErrUnauthorized
	default:
		return dashboardResp{}, fmt.Errorf("status %d", resp.StatusCode)
	}

	var dr dashboardResp
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return dashboardResp{}, err
	}
	return dr, nil
}

func toDomain(dr dashboardResp) domain.DashboardReport {
	recent := make([]domain.RecentOrder, 0, len(dr.RecentOrders))
	for _, ro := range dr.RecentOrders {
		recent = append(recent, domain.RecentOrder{
			OrderID:   ro.ID,
			Total:     ro.Total,
			UserEmail: ro.User.Email,
			UserName:  ro.User.Name,
			CreatedAt: ro.CreatedAt,
		})
	}

	top := make([]domain.TopProduct, 0, len(dr.TopProducts))
	for _, tp := range dr.TopProducts {
		top = append(top, domain.TopProduct{
			ProductID: tp.ID,
			Name:      tp.Name,
			Price:     tp.Price,
			TotalSold: tp.TotalSold,
		})
	}

	daily := make([]domain.DailyRevenue, 0, len(dr.DailyRevenue))
	for _, d := range dr.DailyRevenue {
		daily = append(daily, domain.DailyRevenue(d))
	}

	return domain.DashboardReport{
		TotalRevenue:    dr.TotalRevenue,
		TotalOrders:     dr.TotalOrders,
		TotalProducts:   dr.TotalProducts,
		TotalUsers:      dr.TotalUsers,
		RecentOrders:    recent,
		TopProducts:     top,
		SalesByCategory: dr.SalesByCategory,
		DailyRevenue:    daily,
	}
}
