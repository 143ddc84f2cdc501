package cart

import (
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Reduce derives a new cart state from the previous one and an action.
// It is pure: the previous state is never mutated, every transition
// yields a fresh value with the total recomputed from the items.
func Reduce(s domain.CartState, a Action) domain.CartState {
	switch a := a.(type) {
	case AddItem:
		items := cloneItems(s.Items)
		merged := false
		for i := range items {
			if items[i].Product.ID == a.Product.ID {
				items[i].Quantity += a.Quantity
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, domain.CartItem{
				Product:  a.Product,
				Quantity: a.Quantity,
			})
		}
		return withTotal(items)

	case RemoveItem:
		items := make([]domain.CartItem, 0, len(s.Items))
		for _, it := range s.Items {
			if it.Product.ID != a.ProductID {
				items = append(items, it)
			}
		}
		return withTotal(items)

	case UpdateQuantity:
		items := cloneItems(s.Items)
		for i := range items {
			if items[i].Product.ID == a.ProductID {
				items[i].Quantity = a.Quantity
				break
			}
		}
		return withTotal(items)

	case Clear:
		return domain.EmptyCart()
	}

	return s
}

// Total is the sum over items of price times quantity.
func Total(items []domain.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Product.Price.MulInt(it.Quantity).Amount)
	}
	return total
}

func withTotal(items []domain.CartItem) domain.CartState {
	return domain.CartState{Items: items, Total: Total(items)}
}

func cloneItems(items []domain.CartItem) []domain.CartItem {
	cloned := make([]domain.CartItem, len(items))
	copy(cloned, items)
	return cloned
}
