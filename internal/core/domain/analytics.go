package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardReport is computed by the remote analytics service and
// merely displayed by the storefront.
type (
	DashboardReport struct {
		TotalRevenue    decimal.Decimal
		TotalOrders     int
		TotalProducts   int
		TotalUsers      int
		RecentOrders    []RecentOrder
		TopProducts     []TopProduct
		SalesByCategory map[string]decimal.Decimal
		DailyRevenue    []DailyRevenue
	}

	RecentOrder struct {
		OrderID   string
		Total     decimal.Decimal
		UserEmail string
		UserName  string
		CreatedAt time.Time
	}

	TopProduct struct {
		ProductID string
		Name      string
		Price     decimal.Decimal
		TotalSold int
	}

	DailyRevenue struct {
		Date    string
		Revenue decimal.Decimal
	}
)
