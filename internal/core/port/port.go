package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Inbound ports: the cart facade. The only entry point other
// components may use to touch cart state.

type CartReader interface {
	Cart(ctx context.Context, owner string) (domain.CartState, error)
}

type CartEditor interface {
	AddCartItem(
		ctx context.Context, owner string, productID, quantity int,
	) (domain.CartState, error)

	UpdateCartQuantity(
		ctx context.Context, owner string, productID, quantity int,
	) (domain.CartState, error)

	RemoveCartItem(
		ctx context.Context, owner string, productID int,
	) (domain.CartState, error)

	ClearCart(ctx context.Context, owner string) (domain.CartState, error)
}

// Inbound ports: checkout step orchestration.

type CheckoutStarter interface {
	StartCheckout(ctx context.Context, owner string) (domain.CheckoutView, error)
}

type CheckoutViewer interface {
	Checkout(ctx context.Context, owner string) (domain.CheckoutView, error)
}

type CheckoutNavigator interface {
	NextStep(ctx context.Context, owner string) (domain.CheckoutView, error)
	PrevStep(ctx context.Context, owner string) (domain.CheckoutView, error)
}

type CheckoutFormSetter interface {
	SetShippingForm(
		ctx context.Context, owner string, f domain.ShippingForm,
	) (domain.CheckoutView, error)

	SetPaymentForm(
		ctx context.Context, owner string, f domain.PaymentForm,
	) (domain.CheckoutView, error)
}

type CheckoutAbandoner interface {
	AbandonCheckout(ctx context.Context, owner string) error
}

// Outbound ports.

// CartStateStorage is the durable copy of the cart state: synchronous,
// local, one namespaced entry per owner. LoadCart yields the empty
// cart for a missing or corrupt entry, never an error the caller must
// handle.
type CartStateStorage interface {
	SaveCart(owner string, s domain.CartState) error
	LoadCart(owner string) domain.CartState
}

type ProductResolver interface {
	ProductByID(ctx context.Context, id int) (domain.Product, error)
}

type CatalogBrowser interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Products(ctx context.Context, categorySlug string) ([]domain.Product, error)
	ProductBySlug(ctx context.Context, slug string) (domain.Product, error)
}

type OrderPlacer interface {
	PlaceOrder(
		ctx context.Context, owner string, draft domain.OrderDraft,
	) (domain.OrderConfirmation, error)
}

type OrderHistoryProvider interface {
	Orders(ctx context.Context, token string) ([]domain.Order, error)
}

type Authenticator interface {
	Login(ctx context.Context, c domain.Credentials) (domain.AuthSession, error)
	Register(ctx context.Context, r domain.Registration) (domain.User, error)
	Verify(ctx context.Context, token string) (domain.User, error)
}

type DashboardProvider interface {
	Dashboard(ctx context.Context, token string) (domain.DashboardReport, error)
}
