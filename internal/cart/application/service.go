package application

import (
	"log/slog"
	"sync"

	cartdomain "github.com/forsage-shop/storefront/internal/cart/domain"
	catalog "github.com/forsage-shop/storefront/internal/catalog/domain"
)

// Store owns the carts of all live sessions. Each mutation reads the current
// cart value, applies a pure transition, and swaps in the whole result while
// holding the lock. Carts exist only in memory for the process lifetime.
type Store struct {
	log *slog.Logger

	mu    sync.Mutex
	carts map[string]cartdomain.Cart
}

func NewStore(log *slog.Logger) *Store {
	return &Store{
		log:   log,
		carts: make(map[string]cartdomain.Cart),
	}
}

func (s *Store) Get(sessionID string) cartdomain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[sessionID]
}

func (s *Store) Add(sessionID string, p catalog.Product, quantity int) cartdomain.Cart {
	return s.swap(sessionID, func(c cartdomain.Cart) cartdomain.Cart {
		return c.Add(p, quantity)
	})
}

func (s *Store) UpdateQuantity(sessionID, productID string, delta int) cartdomain.Cart {
	return s.swap(sessionID, func(c cartdomain.Cart) cartdomain.Cart {
		return c.UpdateQuantity(productID, delta)
	})
}

func (s *Store) Remove(sessionID, productID string) cartdomain.Cart {
	return s.swap(sessionID, func(c cartdomain.Cart) cartdomain.Cart {
		return c.Remove(productID)
	})
}

func (s *Store) Clear(sessionID string) cartdomain.Cart {
	return s.swap(sessionID, func(c cartdomain.Cart) cartdomain.Cart {
		return c.Clear()
	})
}

func (s *Store) swap(sessionID string, transition func(cartdomain.Cart) cartdomain.Cart) cartdomain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := transition(s.carts[sessionID])
	s.carts[sessionID] = next
	return next
}
