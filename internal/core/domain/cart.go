package domain

import "github.com/shopspring/decimal"

type (
	// CartItem holds a snapshot of the product as it was at add time.
	// Later catalog changes never touch items already in the cart.
	CartItem struct {
		Product  Product
		Quantity int
	}

	// CartState keeps items in insertion order. Total always equals
	// the sum over items of price times quantity.
	CartState struct {
		Items []CartItem
		Total decimal.Decimal
	}
)

func EmptyCart() CartState {
	return CartState{Items: []CartItem{}, Total: decimal.Zero}
}

func (s CartState) Item(productID int) (CartItem, bool) {
	for _, it := range s.Items {
		if it.Product.ID == productID {
			return it, true
		}
	}
	return CartItem{}, false
}

func (s CartState) IsEmpty() bool {
	return len(s.Items) == 0
}
