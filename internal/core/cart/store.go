package cart

import (
	"log/slog"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
)

// A Persister holds the durable copy of the cart state. A failed save
// must not break the mutation path: the store logs it and the session
// degrades to in-memory-only operation.
type Persister interface {
	Persist(s domain.CartState) error
}

// PersistFunc adapts a plain function to the Persister interface.
type PersistFunc func(s domain.CartState) error

func (f PersistFunc) Persist(s domain.CartState) error {
	return f(s)
}

// A Listener is invoked synchronously after each committed transition.
type Listener func(s domain.CartState)

// Store holds the authoritative cart state for a single owner and
// applies transitions through the pure reducer. It is explicitly
// constructed and passed by reference: there is no ambient shared
// instance.
type Store struct {
	mu        sync.Mutex
	state     domain.CartState
	persister Persister
	listeners map[int]Listener
	nextID    int
}

func NewStore(initial domain.CartState, p Persister) *Store {
	if initial.Items == nil {
		initial = domain.EmptyCart()
	}
	return &Store{
		state:     initial,
		persister: p,
		listeners: make(map[int]Listener),
	}
}

// State returns the current cart state. Transitions never mutate a
// published state value, so the caller may keep it.
func (s *Store) State() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies the reducer, persists the committed state and
// notifies subscribers. Transitions commit in dispatch order; the
// durable copy is written before any listener observes the state.
func (s *Store) Dispatch(a Action) domain.CartState {
	const op = "cart.Store.Dispatch"

	s.mu.Lock()
	next := Reduce(s.state, a)
	s.state = next

	if err := s.persister.Persist(next); err != nil {
		slog.With("op", op).
			Warn("cart state not persisted, session is in-memory only",
				"err", err)
	}

	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return next
}

// Subscribe registers a change listener and returns its unsubscribe
// handle.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
