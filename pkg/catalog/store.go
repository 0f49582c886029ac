package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/kenyaamazon/storefront-api/pkg/models"
)

// Store holds the ordered product catalog. The HTTP layer is the only
// mutator, but the server handles requests concurrently, so access is
// guarded by a read-write lock. Reads return copies of the product records.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewStore creates a catalog pre-populated with the given products.
func NewStore(seed []models.Product) *Store {
	products := make([]models.Product, len(seed))
	copy(products, seed)
	return &Store{products: products}
}

// List returns the full catalog in insertion order.
func (s *Store) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given identifier.
func (s *Store) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.products[i], true
	}
	return models.Product{}, false
}

// Add appends a fully-formed product. The caller is responsible for the
// uniqueness of the identifier; collisions are not detected.
func (s *Store) Add(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, product)
}

// Prepend inserts a product at the front of the catalog. Studio-generated
// products lead the listing.
func (s *Store) Prepend(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]models.Product{product}, s.products...)
}

// Remove deletes the product with the given identifier. Removing an unknown
// identifier is a no-op, so stale references stay harmless.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return true
}

// Update replaces the stored record matching product.ID wholesale. There is
// no partial-field merge. Unknown identifiers are a no-op.
func (s *Store) Update(product models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(product.ID)
	if i < 0 {
		return false
	}
	s.products[i] = product
	return true
}

// ApplyOfferSuggestions applies externally generated price suggestions to
// matching products. The pre-discount price is captured the first time a
// product is discounted and never overwritten afterwards. Suggestions for
// unknown products are skipped. Returns the number of products changed.
func (s *Store) ApplyOfferSuggestions(suggestions []models.OfferSuggestion) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	for _, suggestion := range suggestions {
		i := s.indexOf(suggestion.ProductID)
		if i < 0 {
			continue
		}
		s.products[i].ApplySuggestedPrice(suggestion.SuggestedPrice)
		applied++
	}
	return applied
}

// AddReview appends a review to the product's review list, creating the
// list if absent, and sets the denormalized review count to the new list
// length. The review is assumed pre-validated by the caller.
func (s *Store) AddReview(productID string, review models.Review) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return models.Product{}, false
	}
	s.products[i].Reviews = append(s.products[i].Reviews, review)
	s.products[i].ReviewCount = len(s.products[i].Reviews)
	return s.products[i], true
}

// Search returns products whose name or brand contains the term,
// case-insensitively. An empty term matches everything.
func (s *Store) Search(term string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(strings.TrimSpace(term))
	out := []models.Product{}
	for _, p := range s.products {
		if term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) {
			out = append(out, p)
		}
	}
	return out
}

// ListByCategory returns products in the given category, in catalog order.
func (s *Store) ListByCategory(category models.Category) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Product{}
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// TopSellers returns up to limit products ranked by their sales counter.
// Products without a sales counter rank last.
func (s *Store) TopSellers(limit int) []models.Product {
	s.mu.RLock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return salesOf(&out[i]) > salesOf(&out[j])
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func salesOf(p *models.Product) int {
	if p.Sales == nil {
		return 0
	}
	return *p.Sales
}

// indexOf returns the position of id, or -1. Callers hold the lock.
func (s *Store) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}
