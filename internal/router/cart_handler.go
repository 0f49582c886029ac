package router

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kenyaamazon/storefront-api/pkg/cart"
	"github.com/kenyaamazon/storefront-api/pkg/global"
	"github.com/kenyaamazon/storefront-api/pkg/logger"
	"github.com/kenyaamazon/storefront-api/pkg/models"
)

func GetCart(c *gin.Context) {
	sessionCart, err := Carts.Get(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		logger.Log.Error("failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load cart", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(sessionCart))
}

func AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	product, ok := Catalog.Get(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
			{Field: "productId", Message: "No product exists with this ID", Code: "not_found"},
		}))
		return
	}

	sessionCart, err := Carts.Add(c.Request.Context(), c.Param("sessionId"), product, req.Size, req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrInvalidSize) {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid size", []global.ValidationError{
				{Field: "size", Message: "size is not available for this product", Code: "invalid_value"},
			}))
			return
		}
		logger.Log.Error("failed to add to cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to add to cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(sessionCart))
}

// UpdateCartItem shifts a line item's quantity by the signed delta in the
// body. The quantity floors at 1; removal is an explicit operation.
func UpdateCartItem(c *gin.Context) {
	size, ok := sizeQuery(c)
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "delta", Message: "a non-zero delta is required", Code: "validation_error"},
		}))
		return
	}

	sessionCart, err := Carts.UpdateQuantity(c.Request.Context(), c.Param("sessionId"), c.Param("productId"), size, req.Delta)
	if err != nil {
		logger.Log.Error("failed to update cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(sessionCart))
}

func RemoveFromCart(c *gin.Context) {
	size, ok := sizeQuery(c)
	if !ok {
		return
	}

	sessionCart, err := Carts.Remove(c.Request.Context(), c.Param("sessionId"), c.Param("productId"), size)
	if err != nil {
		logger.Log.Error("failed to remove cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(sessionCart))
}

func ClearCart(c *gin.Context) {
	if err := Carts.Clear(c.Request.Context(), c.Param("sessionId")); err != nil {
		logger.Log.Error("failed to clear cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to clear cart", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "cleared"}))
}

// Checkout confirms the session's cart as a mock order. Payment details are
// accepted and ignored; the only effect is the returned confirmation and
// the cleared cart.
func Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid checkout data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	sessionID := c.Param("sessionId")
	sessionCart, err := Carts.Get(c.Request.Context(), sessionID)
	if err != nil {
		logger.Log.Error("failed to load cart for checkout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load cart", nil))
		return
	}

	if sessionCart.IsEmpty() {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Cart is empty", []global.ValidationError{
			{Field: "cart", Message: "cannot check out an empty cart", Code: "empty_cart"},
		}))
		return
	}

	placedAt := time.Now().UTC()
	confirmation := models.OrderConfirmation{
		OrderNumber: models.NewOrderNumber(placedAt),
		Email:       req.Email,
		Items:       sessionCart.Items,
		Totals: models.OrderTotals{
			Subtotal: sessionCart.Totals.Subtotal,
			Shipping: sessionCart.Totals.Shipping,
			Total:    sessionCart.Totals.Total,
		},
		PlacedAt: placedAt,
	}

	if err := Carts.Clear(c.Request.Context(), sessionID); err != nil {
		logger.Log.Error("failed to clear cart after checkout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to complete checkout", nil))
		return
	}

	logger.Log.Info("order placed",
		zap.String("order_number", confirmation.OrderNumber),
		zap.Float64("total", confirmation.Totals.Total),
	)
	c.JSON(http.StatusCreated, global.SuccessResponse(confirmation))
}

func sizeQuery(c *gin.Context) (float64, bool) {
	size, err := strconv.ParseFloat(c.Query("size"), 64)
	if err != nil || size <= 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid size", []global.ValidationError{
			{Field: "size", Message: "size query parameter must be a positive number", Code: "invalid_format"},
		}))
		return 0, false
	}
	return size, true
}
