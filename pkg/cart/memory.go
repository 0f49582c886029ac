package cart

import (
	"context"
	"sync"

	"github.com/kenyaamazon/storefront-api/pkg/models"
)

// MemoryStore holds session carts in process memory. This is the default
// backend; carts vanish with the process.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*Cart)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Clone(), nil
}

func (s *MemoryStore) Add(_ context.Context, sessionID string, product models.Product, size float64, quantity int) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	if err := c.Add(product, size, quantity); err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

func (s *MemoryStore) UpdateQuantity(_ context.Context, sessionID, productID string, size float64, delta int) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	c.UpdateQuantity(productID, size, delta)
	return c.Clone(), nil
}

func (s *MemoryStore) Remove(_ context.Context, sessionID, productID string, size float64) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	c.Remove(productID, size)
	return c.Clone(), nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

// cart returns the live cart for the session, creating it on first touch.
// Callers hold the lock.
func (s *MemoryStore) cart(sessionID string) *Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = New(sessionID)
		s.carts[sessionID] = c
	}
	return c
}
