package service_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderPlacer struct {
	mock.Mock
}

func (m *MockOrderPlacer) PlaceOrder(
	ctx context.Context, owner string, draft domain.OrderDraft,
) (domain.OrderConfirmation, error) {
	args := m.Called(ctx, owner, draft)
	return args.Get(0).(domain.OrderConfirmation), args.Error(1)
}

type checkoutFixture struct {
	owner    string
	cart     *service.CartService
	orders   *MockOrderPlacer
	checkout *service.CheckoutService
}

// newCheckoutFixture returns a checkout service over a cart holding
// two units of a ten dollar product.
func newCheckoutFixture(t *testing.T) checkoutFixture {
	t.Helper()

	catalog := new(MockCatalog)
	catalog.On("ProductByID", mock.Anything, 1).
		Return(testProduct(1, "10", 50), nil)

	cartSvc := service.NewCart(newMemStorage(), catalog)
	owner := gofakeit.UUID()

	_, err := cartSvc.AddCartItem(context.Background(), owner, 1, 2)
	require.NoError(t, err)

	orders := new(MockOrderPlacer)
	return checkoutFixture{
		owner:    owner,
		cart:     cartSvc,
		orders:   orders,
		checkout: service.NewCheckout(cartSvc, orders),
	}
}

func (f checkoutFixture) start(t *testing.T, ctx context.Context) {
	t.Helper()
	_, err := f.checkout.StartCheckout(ctx, f.owner)
	require.NoError(t, err)
}

func (f checkoutFixture) fillForms(t *testing.T, ctx context.Context) {
	t.Helper()

	_, err := f.checkout.SetShippingForm(ctx, f.owner, domain.ShippingForm{
		FullName:   "Jane Roe",
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
	})
	require.NoError(t, err)

	_, err = f.checkout.SetPaymentForm(ctx, f.owner, domain.PaymentForm{
		CardNumber: "4242424242424242",
		Expiry:     "12/30",
		CVV:        "123",
	})
	require.NoError(t, err)
}

func TestStartCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("Ok", func(t *testing.T) {
		f := newCheckoutFixture(t)

		view, err := f.checkout.StartCheckout(ctx, f.owner)
		require.NoError(t, err)
		assert.NotEmpty(t, view.CheckoutID)
		assert.Equal(t, 0, view.StepIndex)
		assert.Equal(t, "Shipping", view.StepTitle)
		assert.Equal(t,
			[]string{"Shipping", "Payment", "Review"}, view.StepTitles)
		assert.False(t, view.CanGoBack)
		requireViewTotal(t, view, "20")
	})

	t.Run("EmptyCartRefused", func(t *testing.T) {
		f := newCheckoutFixture(t)
		_, err := f.cart.ClearCart(ctx, f.owner)
		require.NoError(t, err)

		_, err = f.checkout.StartCheckout(ctx, f.owner)
		require.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("RestartResetsToFirstStep", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.start(t, ctx)
		f.fillForms(t, ctx)

		_, err := f.checkout.NextStep(ctx, f.owner)
		require.NoError(t, err)

		view, err := f.checkout.StartCheckout(ctx, f.owner)
		require.NoError(t, err)
		assert.Equal(t, 0, view.StepIndex)

		// The restarted flow has blank forms again.
		_, err = f.checkout.NextStep(ctx, f.owner)
		require.ErrorIs(t, err, domain.ErrStepIncomplete)
	})
}

func TestCheckoutNavigation(t *testing.T) {
	ctx := context.Background()

	t.Run("NoFlow", func(t *testing.T) {
		f := newCheckoutFixture(t)

		_, err := f.checkout.Checkout(ctx, f.owner)
		require.ErrorIs(t, err, domain.ErrNoCheckout)
		_, err = f.checkout.NextStep(ctx, f.owner)
		require.ErrorIs(t, err, domain.ErrNoCheckout)
	})

	t.Run("NextGatesOnForm", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.start(t, ctx)

		_, err := f.checkout.NextStep(ctx, f.owner)
		require.ErrorIs(t, err, domain.ErrStepIncomplete)

		view, err := f.checkout.Checkout(ctx, f.owner)
		require.NoError(t, err)
		assert.Equal(t, 0, view.StepIndex)
	})

	t.Run("BackAtFirstStepStays", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.start(t, ctx)

		view, err := f.checkout.PrevStep(ctx, f.owner)
		require.NoError(t, err)
		assert.Equal(t, 0, view.StepIndex)
		assert.False(t, view.CanGoBack)
	})

	t.Run("WalkForwardAndBack", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.start(t, ctx)
		f.fillForms(t, ctx)

		view, err := f.checkout.NextStep(ctx, f.owner)
		require.NoError(t, err)
		assert.Equal(t, 1, view.StepIndex)
		assert.Equal(t, "Payment", view.StepTitle)
		assert.True(t, view.CanGoBack)

		view, err = f.checkout.NextStep(ctx, f.owner)
		require.NoError(t, err)
		assert.Equal(t, 2, view.StepIndex)
		assert.Equal(t, "Review", view.StepTitle)

		view, err = f.checkout.PrevStep(ctx, f.owner)
		require.NoError(t, err)
		assert.Equal(t, 1, view.StepIndex)
	})
}

func TestCheckoutSubmission(t *testing.T) {
	ctx := context.Background()

	t.Run("Ok", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.start(t, ctx)
		f.fillForms(t, ctx)
		walkToReview(t, ctx, f)

		var draft domain.OrderDraft
		f.orders.On("PlaceOrder", mock.Anything, f.owner, mock.Anything).
			Run(func(args mock.Arguments) {
				draft = args.Get(2).(domain.OrderDraft)
			}).
			Return(domain.OrderConfirmation{OrderID: "ORD-1001"}, nil)

		view, err := f.checkout.NextStep(ctx, f.owner)
		require.NoError(t, err)
		assert.True(t, view.Submitted)
		assert.Equal(t, "ORD-1001", view.OrderID)

		require.Len(t, draft.Items, 1)
		assert.Equal(t, 1, draft.Items[0].ProductID)
		assert.Equal(t, 2, draft.Items[0].Quantity)
		assert.Equal(t,
			"Jane Roe, 1 Main St, Springfield 12345", draft.ShippingAddress)
		assert.Equal(t, "20", draft.Total.String())

		// The cart is cleared and the flow destroyed.
		cs, err := f.cart.Cart(ctx, f.owner)
		require.NoError(t, err)
		assert.True(t, cs.IsEmpty())

		_, err = f.checkout.Checkout(ctx, f.owner)
		require.ErrorIs(t, err, domain.ErrNoCheckout)
	})

	t.Run("FailurePreservesCartAndStep", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.start(t, ctx)
		f.fillForms(t, ctx)
		walkToReview(t, ctx, f)

		f.orders.On("PlaceOrder", mock.Anything, f.owner, mock.Anything).
			Return(domain.OrderConfirmation{}, domain.ErrSubmission).Once()
		f.orders.On("PlaceOrder", mock.Anything, f.owner, mock.Anything).
			Return(domain.OrderConfirmation{OrderID: "ORD-1002"}, nil)

		_, err := f.checkout.NextStep(ctx, f.owner)
		require.ErrorIs(t, err, domain.ErrSubmission)

		cs, err := f.cart.Cart(ctx, f.owner)
		require.NoError(t, err)
		assert.False(t, cs.IsEmpty())

		view, err := f.checkout.Checkout(ctx, f.owner)
		require.NoError(t, err)
		assert.Equal(t, 2, view.StepIndex)

		// Retry from the same step succeeds.
		view, err = f.checkout.NextStep(ctx, f.owner)
		require.NoError(t, err)
		assert.True(t, view.Submitted)
		assert.Equal(t, "ORD-1002", view.OrderID)
	})
}

func TestAbandonCheckout(t *testing.T) {
	ctx := context.Background()

	f := newCheckoutFixture(t)
	f.start(t, ctx)

	require.NoError(t, f.checkout.AbandonCheckout(ctx, f.owner))

	_, err := f.checkout.Checkout(ctx, f.owner)
	require.ErrorIs(t, err, domain.ErrNoCheckout)

	// Abandoning the flow never touches the cart.
	cs, err := f.cart.Cart(ctx, f.owner)
	require.NoError(t, err)
	assert.False(t, cs.IsEmpty())

	// Abandoning with no flow is a no-op.
	require.NoError(t, f.checkout.AbandonCheckout(ctx, f.owner))
}

func walkToReview(t *testing.T, ctx context.Context, f checkoutFixture) {
	t.Helper()
	for range 2 {
		_, err := f.checkout.NextStep(ctx, f.owner)
		require.NoError(t, err)
	}
}

func requireViewTotal(t *testing.T, v domain.CheckoutView, want string) {
	t.Helper()
	require.True(t, v.Total.String() == want,
		"total is %s, want %s", v.Total, want)
}
