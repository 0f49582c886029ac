package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kenyaamazon/storefront-api/pkg/global"
	"github.com/kenyaamazon/storefront-api/pkg/models"
)

func GetProductReviews(c *gin.Context) {
	product, ok := Catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
			{Field: "id", Message: "No product exists with this ID", Code: "not_found"},
		}))
		return
	}

	reviews := product.Reviews
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"reviews": reviews,
		"count":   product.ReviewCount,
	}))
}

// CreateProductReview validates and appends a review; the aggregate review
// count tracks the list length.
func CreateProductReview(c *gin.Context) {
	var req models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid review data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	product, ok := Catalog.AddReview(c.Param("id"), req.ToReview())
	if !ok {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
			{Field: "id", Message: "No product exists with this ID", Code: "not_found"},
		}))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(product))
}
