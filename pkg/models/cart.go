package models

// CartItem is a catalog product plus the shopper's chosen size and quantity.
// Identity for merge purposes is the (ProductID, SelectedSize) pair; the cart
// never holds two items with the same pair.
type CartItem struct {
	Product
	SelectedSize float64 `json:"selectedSize"`
	Quantity     int     `json:"quantity"`
	AddedAt      string  `json:"addedAt,omitempty"`
}

// Subtotal is the line total for this item.
func (ci *CartItem) Subtotal() float64 {
	return ci.Price * float64(ci.Quantity)
}

// Matches reports whether this item is the entry for (productID, size).
func (ci *CartItem) Matches(productID string, size float64) bool {
	return ci.ID == productID && ci.SelectedSize == size
}

type AddToCartRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Size      float64 `json:"size" binding:"required,gt=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}
