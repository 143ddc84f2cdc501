package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/niksmo/storefront/internal/core/checkout"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CheckoutStarter = (*CheckoutService)(nil)
var _ port.CheckoutViewer = (*CheckoutService)(nil)
var _ port.CheckoutNavigator = (*CheckoutService)(nil)
var _ port.CheckoutFormSetter = (*CheckoutService)(nil)
var _ port.CheckoutAbandoner = (*CheckoutService)(nil)

type cartFacade interface {
	port.CartReader
	port.CartEditor
}

// CheckoutService orchestrates one checkout flow per owner. It reads
// cart totals through the facade and, at the terminal transition,
// places the order and clears the cart.
type CheckoutService struct {
	mu     sync.Mutex
	flows  map[string]*checkout.Flow
	cart   cartFacade
	orders port.OrderPlacer
}

func NewCheckout(cart cartFacade, orders port.OrderPlacer) *CheckoutService {
	return &CheckoutService{
		flows:  make(map[string]*checkout.Flow),
		cart:   cart,
		orders: orders,
	}
}

func (s *CheckoutService) StartCheckout(
	ctx context.Context, owner string,
) (domain.CheckoutView, error) {
	const op = "CheckoutService.StartCheckout"

	cs, err := s.cart.Cart(ctx, owner)
	if err != nil {
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
	}
	if cs.IsEmpty() {
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-entering checkout restarts the flow from the first step.
	fl := checkout.NewFlow()
	s.flows[owner] = fl
	return s.view(fl, cs), nil
}

func (s *CheckoutService) Checkout(
	ctx context.Context, owner string,
) (domain.CheckoutView, error) {
	const op = "CheckoutService.Checkout"

	cs, err := s.cart.Cart(ctx, owner)
	if err != nil {
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fl, err := s.flow(owner)
	if err != nil {
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
	}
	return s.view(fl, cs), nil
}

// NextStep advances the flow. At the last step it performs the
// terminal transition instead: the order is submitted and, on success,
// the cart is cleared and the flow destroyed. On submission failure
// the step index and the cart are preserved so the owner may retry.
func (s *CheckoutService) NextStep(
	ctx context.Context, owner string,
) (domain.CheckoutView, error) {
	const op = "CheckoutService.NextStep"

	cs, err := s.cart.Cart(ctx, owner)
	if err != nil {
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	fl, err := s.flow(owner)
	if err != nil {
		s.mu.Unlock()
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
	}

	if !fl.AtFinal() {
		err := fl.Advance()
		view := s.view(fl, cs)
		s.mu.Unlock()
		if err != nil {
			return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
		}
		return view, nil
	}

	if err := fl.BeginSubmit(); err != nil {
		s.mu.Unlock()
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
	}
	draft := orderDraft(cs, fl.ShippingAddress())
	s.mu.Unlock()

	// The submission call is the only suspending operation; the flow
	// stays locked against re-entry, not against navigation.
	conf, submitErr := s.orders.PlaceOrder(ctx, owner, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	fl.EndSubmit()

	if submitErr != nil {
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, submitErr)
	}

	if _, err := s.cart.ClearCart(ctx, owner); err != nil {
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
	}
	delete(s.flows, owner)

	view := s.view(fl, domain.EmptyCart())
	view.Submitted = true
	view.OrderID = conf.OrderID
	return view, nil
}

func (s *CheckoutService) PrevStep(
	ctx context.Context, owner string,
) (domain.CheckoutView, error) {
	const op = "CheckoutService.PrevStep"

	cs, err := s.cart.Cart(ctx, owner)
	if err != nil {
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fl, err := s.flow(owner)
	if err != nil {
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
	}
	fl.Back()
	return s.view(fl, cs), nil
}

func (s *CheckoutService) SetShippingForm(
	ctx context.Context, owner string, f domain.ShippingForm,
) (domain.CheckoutView, error) {
	const op = "CheckoutService.SetShippingForm"

	cs, err := s.cart.Cart(ctx, owner)
	if err != nil {
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fl, err := s.flow(owner)
	if err != nil {
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
	}
	fl.SetShipping(f)
	return s.view(fl, cs), nil
}

func (s *CheckoutService) SetPaymentForm(
	ctx context.Context, owner string, f domain.PaymentForm,
) (domain.CheckoutView, error) {
	const op = "CheckoutService.SetPaymentForm"

	cs, err := s.cart.Cart(ctx, owner)
	if err != nil {
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fl, err := s.flow(owner)
	if err != nil {
		return domain.CheckoutView{}, fmt.Errorf("%s: %w", op, err)
	}
	fl.SetPayment(f)
	return s.view(fl, cs), nil
}

// AbandonCheckout discards the in-memory flow. An in-flight submission
// is not cancelled, its outcome is simply never observed.
func (s *CheckoutService) AbandonCheckout(
	ctx context.Context, owner string,
) error {
	const op = "CheckoutService.AbandonCheckout"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, owner)
	return nil
}

func (s *CheckoutService) flow(owner string) (*checkout.Flow, error) {
	fl, ok := s.flows[owner]
	if !ok {
		return nil, domain.ErrNoCheckout
	}
	return fl, nil
}

func (s *CheckoutService) view(
	fl *checkout.Flow, cs domain.CartState,
) domain.CheckoutView {
	return domain.CheckoutView{
		CheckoutID: fl.ID().String(),
		StepTitles: fl.StepTitles(),
		StepIndex:  fl.StepIndex(),
		StepTitle:  fl.Step().Title(),
		CanGoBack:  fl.StepIndex() > 0,
		Total:      cs.Total,
	}
}

func orderDraft(cs domain.CartState, shippingAddress string) domain.OrderDraft {
	items := make([]domain.OrderItem, 0, len(cs.Items))
	for _, it := range cs.Items {
		items = append(items, domain.OrderItem{
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			Quantity:    it.Quantity,
			Price:       it.Product.Price,
		})
	}
	return domain.OrderDraft{
		Items:           items,
		Total:           cs.Total,
		ShippingAddress: shippingAddress,
	}
}
