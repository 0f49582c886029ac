package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kenyaamazon/storefront-api/pkg/global"
	"github.com/kenyaamazon/storefront-api/pkg/models"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"status":   "OK",
		"products": len(Catalog.List()),
	}))
}

// GetAllProducts lists the catalog, optionally narrowed by ?category= and a
// ?q= name/brand search term.
func GetAllProducts(c *gin.Context) {
	if raw := c.Query("category"); raw != "" {
		category := models.Category(raw)
		if !category.Valid() {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Unknown category", []global.ValidationError{
				{Field: "category", Message: "must be one of Running, Lifestyle, Basketball, Custom", Code: "invalid_value"},
			}))
			return
		}
		c.JSON(http.StatusOK, global.SuccessResponse(Catalog.ListByCategory(category)))
		return
	}

	if term := c.Query("q"); term != "" {
		c.JSON(http.StatusOK, global.SuccessResponse(Catalog.Search(term)))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(Catalog.List()))
}

// GetTopProducts ranks the catalog by the sales counter for the featured
// shelf; ?limit= caps the list.
func GetTopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))
	if limit < 1 || limit > 100 {
		limit = 4
	}
	c.JSON(http.StatusOK, global.SuccessResponse(Catalog.TopSellers(limit)))
}

func GetProductByID(c *gin.Context) {
	product, ok := Catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
			{Field: "id", Message: "No product exists with this ID", Code: "not_found"},
		}))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(product))
}

func GetAllCategories(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(models.Categories()))
}
