package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/niksmo/storefront/internal/core/cart"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CartReader = (*CartService)(nil)
var _ port.CartEditor = (*CartService)(nil)

// A ChangeListener observes committed cart transitions of any owner.
type ChangeListener func(owner string, s domain.CartState)

// CartService is the cart facade: the only entry point through which
// cart state is read or mutated. Every call results in exactly one
// store transition and one persistence write.
//
// One store is kept per owner, restored from durable storage on first
// touch.
type CartService struct {
	mu        sync.Mutex
	stores    map[string]*cart.Store
	storage   port.CartStateStorage
	catalog   port.ProductResolver
	listeners []ChangeListener
}

func NewCart(
	storage port.CartStateStorage, catalog port.ProductResolver,
) *CartService {
	return &CartService{
		stores:  make(map[string]*cart.Store),
		storage: storage,
		catalog: catalog,
	}
}

// OnChange registers a listener notified after every committed
// transition of any owner's cart. Registration is not revocable and is
// meant for process-lifetime observers wired at startup.
func (s *CartService) OnChange(l ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Subscribe registers a listener on one owner's store and returns its
// unsubscribe handle.
func (s *CartService) Subscribe(
	owner string, l cart.Listener,
) (unsubscribe func()) {
	return s.store(owner).Subscribe(l)
}

func (s *CartService) Cart(
	ctx context.Context, owner string,
) (domain.CartState, error) {
	const op = "CartService.Cart"

	if err := ctx.Err(); err != nil {
		return domain.CartState{}, fmt.Errorf("%s: %w", op, err)
	}
	return s.store(owner).State(), nil
}

func (s *CartService) AddCartItem(
	ctx context.Context, owner string, productID, quantity int,
) (domain.CartState, error) {
	const op = "CartService.AddCartItem"

	if err := ctx.Err(); err != nil {
		return domain.CartState{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.catalog.ProductByID(ctx, productID)
	if err != nil {
		return domain.CartState{}, fmt.Errorf("%s: %w", op, err)
	}
	if !p.Available {
		return domain.CartState{}, fmt.Errorf(
			"%s: product %d: %w", op, productID, domain.ErrProductUnavailable,
		)
	}

	st := s.store(owner)

	merged := quantity
	if it, ok := st.State().Item(productID); ok {
		merged += it.Quantity
	}
	if quantity < 1 || merged > p.Stock {
		return domain.CartState{}, fmt.Errorf(
			"%s: want %d of %d in stock: %w",
			op, merged, p.Stock, domain.ErrQuantityRange,
		)
	}

	next := st.Dispatch(cart.AddItem{Product: p, Quantity: quantity})
	return next, nil
}

func (s *CartService) UpdateCartQuantity(
	ctx context.Context, owner string, productID, quantity int,
) (domain.CartState, error) {
	const op = "CartService.UpdateCartQuantity"

	if err := ctx.Err(); err != nil {
		return domain.CartState{}, fmt.Errorf("%s: %w", op, err)
	}

	st := s.store(owner)

	// Bounds come from the item's product snapshot: the quantity a
	// customer may hold is the stock recorded when the item was added.
	if it, ok := st.State().Item(productID); ok {
		if quantity < 1 || quantity > it.Product.Stock {
			return domain.CartState{}, fmt.Errorf(
				"%s: want %d of %d in stock: %w",
				op, quantity, it.Product.Stock, domain.ErrQuantityRange,
			)
		}
	}

	next := st.Dispatch(cart.UpdateQuantity{
		ProductID: productID, Quantity: quantity,
	})
	return next, nil
}

func (s *CartService) RemoveCartItem(
	ctx context.Context, owner string, productID int,
) (domain.CartState, error) {
	const op = "CartService.RemoveCartItem"

	if err := ctx.Err(); err != nil {
		return domain.CartState{}, fmt.Errorf("%s: %w", op, err)
	}
	return s.store(owner).Dispatch(cart.RemoveItem{ProductID: productID}), nil
}

func (s *CartService) ClearCart(
	ctx context.Context, owner string,
) (domain.CartState, error) {
	const op = "CartService.ClearCart"

	if err := ctx.Err(); err != nil {
		return domain.CartState{}, fmt.Errorf("%s: %w", op, err)
	}
	return s.store(owner).Dispatch(cart.Clear{}), nil
}

func (s *CartService) store(owner string) *cart.Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.stores[owner]; ok {
		return st
	}

	persist := cart.PersistFunc(func(cs domain.CartState) error {
		return s.storage.SaveCart(owner, cs)
	})

	st := cart.NewStore(s.storage.LoadCart(owner), persist)
	st.Subscribe(func(cs domain.CartState) {
		s.broadcast(owner, cs)
	})
	s.stores[owner] = st
	return st
}

func (s *CartService) broadcast(owner string, cs domain.CartState) {
	s.mu.Lock()
	listeners := make([]ChangeListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(owner, cs)
	}
}
