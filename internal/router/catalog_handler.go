package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kenyaamazon/storefront-api/pkg/ai"
	"github.com/kenyaamazon/storefront-api/pkg/global"
	"github.com/kenyaamazon/storefront-api/pkg/logger"
	"github.com/kenyaamazon/storefront-api/pkg/models"
)

func CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	product := req.ToProduct()
	Catalog.Add(product)

	logger.Log.Info("product added", zap.String("id", product.ID), zap.String("name", product.Name))
	c.JSON(http.StatusCreated, global.SuccessResponse(product))
}

// UpdateProduct replaces the stored record wholesale; there is no
// partial-field merge.
func UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}
	product.ID = c.Param("id")

	if details := validateProduct(product); len(details) > 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product data", details))
		return
	}

	if !Catalog.Update(product) {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
			{Field: "id", Message: "No product exists with this ID", Code: "not_found"},
		}))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(product))
}

// validateProduct checks a wholesale product record against the same
// constraints the create request enforces through binding tags. Raw records
// carry none, so updates validate here before anything is stored.
func validateProduct(p models.Product) []global.ValidationError {
	var details []global.ValidationError

	if len(p.Name) < 2 || len(p.Name) > 200 {
		details = append(details, global.ValidationError{
			Field: "name", Message: "must be between 2 and 200 characters", Code: "invalid_value",
		})
	}
	if p.Price <= 0 {
		details = append(details, global.ValidationError{
			Field: "price", Message: "must be greater than zero", Code: "invalid_value",
		})
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		details = append(details, global.ValidationError{
			Field: "originalPrice", Message: "cannot be below the current price", Code: "invalid_value",
		})
	}
	if !p.Category.Valid() {
		details = append(details, global.ValidationError{
			Field: "category", Message: "must be one of Running, Lifestyle, Basketball, Custom", Code: "invalid_value",
		})
	}
	return details
}

func DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if !Catalog.Remove(id) {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
			{Field: "id", Message: "No product exists with this ID", Code: "not_found"},
		}))
		return
	}

	logger.Log.Info("product removed", zap.String("id", id))
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{
		"deleted": id,
	}))
}

// ImportCatalog acknowledges an uploaded product batch without merging it.
// The storefront's import affordance has always been a stub; keeping the
// contract means acknowledging the count and nothing else.
func ImportCatalog(c *gin.Context) {
	var records []models.Product
	if err := c.ShouldBindJSON(&records); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid import payload", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	logger.Log.Info("catalog import acknowledged", zap.Int("received", len(records)))
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"received": len(records),
		"merged":   0,
	}))
}

// GenerateCampaignOffers asks the generation service for price suggestions
// matching a campaign theme. Nothing is applied here; the admin reviews the
// suggestions and applies them explicitly.
func GenerateCampaignOffers(c *gin.Context) {
	var req models.GenerateOffersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "theme", Message: "a campaign theme is required", Code: "validation_error"},
		}))
		return
	}

	suggestions, err := ai.GenerateCampaignOffers(c.Request.Context(), Catalog.List(), req.Theme)
	if err != nil {
		logger.Log.Error("campaign offer generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Offer generation failed", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(suggestions))
}

// ApplyCampaignOffers applies a reviewed batch of price suggestions to the
// catalog. Unknown product ids are skipped; a product's pre-discount price
// is captured once and never overwritten.
func ApplyCampaignOffers(c *gin.Context) {
	var req models.ApplyOffersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid suggestions payload", []global.ValidationError{
			{Field: "suggestions", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	applied := Catalog.ApplyOfferSuggestions(req.Suggestions)

	logger.Log.Info("campaign offers applied",
		zap.Int("received", len(req.Suggestions)),
		zap.Int("applied", applied),
	)
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"applied":  applied,
		"products": Catalog.List(),
	}))
}
