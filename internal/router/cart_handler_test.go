package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenyaamazon/storefront-api/pkg/cart"
)

func cartState(t *testing.T, sessionID string) *cart.Cart {
	t.Helper()
	c, err := Carts.Get(t.Context(), sessionID)
	require.NoError(t, err)
	return c
}

func TestAddToCartMergesRepeatedAdds(t *testing.T) {
	setup(t)

	first := do(t, http.MethodPost, "/api/cart/s1/items", `{"productId":"1","size":9,"quantity":1}`, nil)
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())

	second := do(t, http.MethodPost, "/api/cart/s1/items", `{"productId":"1","size":9,"quantity":2}`, nil)
	require.Equal(t, http.StatusOK, second.Code)

	c := cartState(t, "s1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	setup(t)
	recorder := do(t, http.MethodPost, "/api/cart/s1/items", `{"productId":"ghost","size":9,"quantity":1}`, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.True(t, cartState(t, "s1").IsEmpty())
}

func TestAddToCartInvalidSize(t *testing.T) {
	setup(t)
	// seed product 1 comes in sizes 7-12
	recorder := do(t, http.MethodPost, "/api/cart/s1/items", `{"productId":"1","size":5,"quantity":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.True(t, cartState(t, "s1").IsEmpty(), "a rejected add must not mutate state")
}

func TestUpdateCartItemClampsQuantity(t *testing.T) {
	setup(t)
	do(t, http.MethodPost, "/api/cart/s1/items", `{"productId":"1","size":9,"quantity":2}`, nil)

	recorder := do(t, http.MethodPut, "/api/cart/s1/items/1?size=9", `{"delta":-10}`, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	c := cartState(t, "s1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestUpdateCartItemRequiresSize(t *testing.T) {
	setup(t)
	recorder := do(t, http.MethodPut, "/api/cart/s1/items/1", `{"delta":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRemoveFromCart(t *testing.T) {
	setup(t)
	do(t, http.MethodPost, "/api/cart/s1/items", `{"productId":"1","size":9,"quantity":1}`, nil)
	do(t, http.MethodPost, "/api/cart/s1/items", `{"productId":"2","size":8,"quantity":1}`, nil)

	recorder := do(t, http.MethodDelete, "/api/cart/s1/items/1?size=9", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	c := cartState(t, "s1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, "2", c.Items[0].ID)
}

func TestCartTotalsOverTheWire(t *testing.T) {
	setup(t)
	// product 5 costs 220: free shipping territory
	do(t, http.MethodPost, "/api/cart/s1/items", `{"productId":"5","size":9,"quantity":1}`, nil)

	c := cartState(t, "s1")
	assert.Equal(t, 220.0, c.Totals.Subtotal)
	assert.Equal(t, 0.0, c.Totals.Shipping)

	// product 4 costs 95: flat fee applies in its own session
	do(t, http.MethodPost, "/api/cart/s2/items", `{"productId":"4","size":9,"quantity":1}`, nil)
	c2 := cartState(t, "s2")
	assert.Equal(t, 95.0, c2.Totals.Subtotal)
	assert.Equal(t, 15.0, c2.Totals.Shipping)
	assert.Equal(t, 110.0, c2.Totals.Total)
}

func TestClearCart(t *testing.T) {
	setup(t)
	do(t, http.MethodPost, "/api/cart/s1/items", `{"productId":"1","size":9,"quantity":1}`, nil)

	recorder := do(t, http.MethodDelete, "/api/cart/s1/clear", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, cartState(t, "s1").IsEmpty())
}

func TestCheckoutClearsCartAndConfirms(t *testing.T) {
	setup(t)
	do(t, http.MethodPost, "/api/cart/s1/items", `{"productId":"1","size":9,"quantity":2}`, nil)

	recorder := do(t, http.MethodPost, "/api/cart/s1/checkout",
		`{"email":"jo@example.com","name":"Jo","cardNumber":"4242424242424242"}`, nil)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	resp := decode(t, recorder)
	require.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.NotEmpty(t, data["orderNumber"])
	assert.Equal(t, "jo@example.com", data["email"])

	assert.True(t, cartState(t, "s1").IsEmpty(), "checkout clears the cart")
}

func TestCheckoutEmptyCart(t *testing.T) {
	setup(t)
	recorder := do(t, http.MethodPost, "/api/cart/s1/checkout", `{"email":"jo@example.com","name":"Jo"}`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetCartUnknownSessionIsEmpty(t *testing.T) {
	setup(t)
	recorder := do(t, http.MethodGet, "/api/cart/never-seen", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	resp := decode(t, recorder)
	data := resp.Data.(map[string]interface{})
	assert.Empty(t, data["items"])
}
