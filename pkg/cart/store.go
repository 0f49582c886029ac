package cart

import (
	"context"

	"github.com/kenyaamazon/storefront-api/pkg/models"
)

// Store keeps session carts between requests. Two implementations exist:
// an in-process map and a Redis-backed store with the same contract.
// Missing sessions read as empty carts; mutations on missing entries follow
// the cart's own no-op semantics.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Add(ctx context.Context, sessionID string, product models.Product, size float64, quantity int) (*Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, size float64, delta int) (*Cart, error)
	Remove(ctx context.Context, sessionID, productID string, size float64) (*Cart, error)
	Clear(ctx context.Context, sessionID string) error
}
