package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	OrderItem struct {
		ProductID   int
		ProductName string
		Quantity    int
		Price       Money
	}

	// OrderDraft is the payload handed to the order service at the
	// checkout terminal transition.
	OrderDraft struct {
		Items           []OrderItem
		Total           decimal.Decimal
		ShippingAddress string
	}

	OrderConfirmation struct {
		OrderID       string
		PaymentStatus string
	}

	Order struct {
		ID              string
		Items           []OrderItem
		Total           decimal.Decimal
		PaymentStatus   string
		ShippingAddress string
		CreatedAt       time.Time
	}
)
