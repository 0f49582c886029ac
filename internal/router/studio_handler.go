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

type studioImageRequest struct {
	Prompt string       `json:"prompt" binding:"required,min=3,max=1000"`
	Size   ai.ImageTier `json:"size" binding:"required,oneof=1K 2K 4K"`
}

type marketAnalysisRequest struct {
	Categories []models.Category `json:"categories" binding:"dive,oneof=Running Lifestyle Basketball Custom"`
}

// GenerateStudioImage renders an AI product shot for the design studio and
// returns it as a data URI the storefront can display directly.
func GenerateStudioImage(c *gin.Context) {
	var req studioImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	image, err := ai.GenerateSneakerImage(c.Request.Context(), req.Prompt, req.Size)
	if err != nil {
		logger.Log.Error("studio image generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Image generation failed", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"image": image}))
}

func GenerateMarketAnalysisReport(c *gin.Context) {
	var req marketAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "categories", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	analysis, err := ai.GenerateMarketAnalysis(c.Request.Context(), req.Categories)
	if err != nil {
		logger.Log.Error("market analysis generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Market analysis failed", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"analysis": analysis}))
}

type studioProductRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=200"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description" binding:"max=2000"`
	Image       string  `json:"image" binding:"required"`
}

// AddStudioProduct puts a generated design at the front of the catalog as a
// Custom product.
func AddStudioProduct(c *gin.Context) {
	var req studioProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid product data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	create := models.CreateProductRequest{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Category:    models.CategoryCustom,
	}
	product := create.ToProduct()
	Catalog.Prepend(product)

	logger.Log.Info("studio product added", zap.String("id", product.ID), zap.String("name", product.Name))
	c.JSON(http.StatusCreated, global.SuccessResponse(product))
}
