package models

import (
	"fmt"
	"time"
)

// CheckoutRequest carries the mock payment form. Card fields are accepted
// and ignored; no payment processor is integrated.
type CheckoutRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required,min=1,max=200"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCVC    string `json:"cardCvc"`
}

// OrderTotals is the financial breakdown of a confirmed checkout.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// OrderConfirmation is returned once the cart is checked out and cleared.
// Nothing is persisted; the confirmation is the only record of the order.
type OrderConfirmation struct {
	OrderNumber string      `json:"orderNumber"`
	Email       string      `json:"email"`
	Items       []CartItem  `json:"items"`
	Totals      OrderTotals `json:"totals"`
	PlacedAt    time.Time   `json:"placedAt"`
}

// NewOrderNumber builds a display order number from the placement time.
func NewOrderNumber(at time.Time) string {
	return fmt.Sprintf("KA-%d", at.UnixMilli())
}
