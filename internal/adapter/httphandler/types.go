package httphandler

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	Category struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}

	Product struct {
		ID           int             `json:"id"`
		CategoryID   int             `json:"category"`
		CategoryName string          `json:"category_name"`
		Name         string          `json:"name"`
		Slug         string          `json:"slug"`
		Description  string          `json:"description"`
		Price        decimal.Decimal `json:"price"`
		Image        string          `json:"image"`
		Stock        int             `json:"stock"`
		Available    bool            `json:"available"`
	}

	CartItem struct {
		Product  Product `json:"product"`
		Quantity int     `json:"quantity"`
	}

	CartState struct {
		Items []CartItem      `json:"items"`
		Total decimal.Decimal `json:"total"`
	}

	AddItemReq struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}

	UpdateQuantityReq struct {
		Quantity int `json:"quantity"`
	}

	CheckoutView struct {
		CheckoutID string          `json:"checkout_id"`
		Steps      []string        `json:"steps"`
		StepIndex  int             `json:"step_index"`
		StepTitle  string          `json:"step_title"`
		CanGoBack  bool            `json:"can_go_back"`
		Total      decimal.Decimal `json:"total"`
		Submitted  bool            `json:"submitted"`
		OrderID    string          `json:"order_id,omitempty"`
	}

	ShippingForm struct {
		FullName   string `json:"full_name"`
		Address    string `json:"address"`
		City       string `json:"city"`
		PostalCode string `json:"postal_code"`
	}

	PaymentForm struct {
		CardNumber string `json:"card_number"`
		Expiry     string `json:"expiry"`
		CVV        string `json:"cvv"`
	}

	StepFormReq struct {
		Shipping *ShippingForm `json:"shipping,omitempty"`
		Payment  *PaymentForm  `json:"payment,omitempty"`
	}

	LoginReq struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	RegisterReq struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}

	User struct {
		ID             string `json:"id"`
		Email          string `json:"email"`
		Name           string `json:"name"`
		Role           string `json:"role"`
		EmailConfirmed bool   `json:"email_confirmed"`
	}

	AuthSession struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}

	OrderItem struct {
		ProductID   int             `json:"product_id"`
		ProductName string          `json:"product_name"`
		Quantity    int             `json:"quantity"`
		Price       decimal.Decimal `json:"price"`
	}

	Order struct {
		ID              string          `json:"id"`
		Items           []OrderItem     `json:"items"`
		Total           decimal.Decimal `json:"total_price"`
		PaymentStatus   string          `json:"payment_status"`
		ShippingAddress string          `json:"shipping_address"`
		CreatedAt       time.Time       `json:"created_at"`
	}

	Dashboard struct {
		TotalRevenue    decimal.Decimal            `json:"total_revenue"`
		TotalOrders     int                        `json:"total_orders"`
		TotalProducts   int                        `json:"total_products"`
		TotalUsers      int                        `json:"total_users"`
		RecentOrders    []RecentOrder              `json:"recent_orders"`
		TopProducts     []TopProduct               `json:"top_products"`
		SalesByCategory map[string]decimal.Decimal `json:"sales_by_category"`
		DailyRevenue    []DailyRevenue             `json:"daily_revenue"`
	}

	RecentOrder struct {
		OrderID   string          `json:"id"`
		Total     decimal.Decimal `json:"total_price"`
		UserEmail string          `json:"user_email"`
		UserName  string          `json:"user_name"`
		CreatedAt time.Time       `json:"created_at"`
	}

	TopProduct struct {
		ProductID string          `json:"id"`
		Name      string          `json:"name"`
		Price     decimal.Decimal `json:"price"`
		TotalSold int             `json:"total_sold"`
	}

	DailyRevenue struct {
		Date    string          `json:"date"`
		Revenue decimal.Decimal `json:"revenue"`
	}
)
