package cart

import "github.com/niksmo/storefront/internal/core/domain"

// An Action describes a single cart state transition. The set is
// closed: only the types below may be dispatched.
type Action interface {
	isAction()
}

type (
	// AddItem appends a new item or, when the product is already in
	// the cart, increments its quantity (merge, not replace).
	AddItem struct {
		Product  domain.Product
		Quantity int
	}

	// RemoveItem deletes the matching item, no-op when absent.
	RemoveItem struct {
		ProductID int
	}

	// UpdateQuantity replaces the quantity of the matching item,
	// no-op when absent.
	UpdateQuantity struct {
		ProductID int
		Quantity  int
	}

	// Clear resets the cart unconditionally.
	Clear struct{}
)

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (Clear) isAction()          {}
