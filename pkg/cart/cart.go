package cart

import (
	"errors"
	"time"

	"github.com/kenyaamazon/storefront-api/pkg/global"
	"github.com/kenyaamazon/storefront-api/pkg/models"
)

// ErrInvalidSize is returned when an add names a size the product does not
// come in. The storefront enforces this before calling, so hitting it means
// a stale or hand-crafted request.
var ErrInvalidSize = errors.New("selected size is not available for this product")

// Totals is the derived financial summary of a cart.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

// ComputeTotals derives the cart summary from its line items. It is pure:
// same items in, same totals out. Shipping is free above the threshold and
// a flat fee otherwise; an empty cart ships nothing and costs nothing.
func ComputeTotals(items []models.CartItem) Totals {
	var t Totals
	for i := range items {
		t.Subtotal += items[i].Subtotal()
		t.ItemCount += items[i].Quantity
	}
	if t.Subtotal > 0 && t.Subtotal <= global.FreeShippingThreshold {
		t.Shipping = global.FlatShippingFee
	}
	t.Total = t.Subtotal + t.Shipping
	return t
}

// Cart is a session-scoped selection of catalog items awaiting checkout.
// Items keep insertion order; identity within the cart is the
// (product id, selected size) pair.
type Cart struct {
	SessionID   string            `json:"sessionId"`
	Items       []models.CartItem `json:"items"`
	Totals      Totals            `json:"totals"`
	LastUpdated string            `json:"lastUpdated,omitempty"`
}

// New returns an empty cart for the session.
func New(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Items: []models.CartItem{}}
}

// Add puts quantity units of the product in the chosen size into the cart.
// An existing entry for the same (product id, size) pair absorbs the
// quantity; otherwise a new entry is appended. There is no upper bound on
// quantity.
func (c *Cart) Add(product models.Product, size float64, quantity int) error {
	if !product.HasSize(size) {
		return ErrInvalidSize
	}

	if i := c.indexOf(product.ID, size); i >= 0 {
		c.Items[i].Quantity += quantity
	} else {
		c.Items = append(c.Items, models.CartItem{
			Product:      product,
			SelectedSize: size,
			Quantity:     quantity,
			AddedAt:      time.Now().UTC().Format(time.RFC3339),
		})
	}
	c.refresh()
	return nil
}

// UpdateQuantity shifts the entry's quantity by delta, clamping at 1. The
// entry is never removed this way, however negative the delta. An unknown
// (product id, size) pair is a no-op.
func (c *Cart) UpdateQuantity(productID string, size float64, delta int) {
	i := c.indexOf(productID, size)
	if i < 0 {
		return
	}
	quantity := c.Items[i].Quantity + delta
	if quantity < 1 {
		quantity = 1
	}
	c.Items[i].Quantity = quantity
	c.refresh()
}

// Remove deletes the entry for (productID, size). Absent entries are a
// no-op, keeping removal idempotent under stale references.
func (c *Cart) Remove(productID string, size float64) {
	i := c.indexOf(productID, size)
	if i < 0 {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	c.refresh()
}

// Clear empties the cart. Called after a confirmed checkout.
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
	c.refresh()
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns an independent copy of the cart.
func (c *Cart) Clone() *Cart {
	out := *c
	out.Items = make([]models.CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return &out
}

func (c *Cart) refresh() {
	c.Totals = ComputeTotals(c.Items)
	c.LastUpdated = time.Now().UTC().Format(time.RFC3339)
}

func (c *Cart) indexOf(productID string, size float64) int {
	for i := range c.Items {
		if c.Items[i].Matches(productID, size) {
			return i
		}
	}
	return -1
}
