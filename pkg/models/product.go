package models

import (
	"github.com/google/uuid"
)

// Category is the closed set of product categories the storefront sells.
type Category string

const (
	CategoryRunning    Category = "Running"
	CategoryLifestyle  Category = "Lifestyle"
	CategoryBasketball Category = "Basketball"
	CategoryCustom     Category = "Custom"
)

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{CategoryRunning, CategoryLifestyle, CategoryBasketball, CategoryCustom}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryRunning, CategoryLifestyle, CategoryBasketball, CategoryCustom:
		return true
	}
	return false
}

// Product represents a sellable sneaker in the catalog
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"` // pre-discount price, set once
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Sizes         []float64 `json:"sizes"`
	Category      Category  `json:"category"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviews"`
	Reviews       []Review  `json:"reviewsList,omitempty"`
	Sales         *int      `json:"sales,omitempty"` // display ranking only
}

// HasSize reports whether size is one of the product's available sizes.
func (p *Product) HasSize(size float64) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// IsDiscounted reports whether the product carries a pre-discount price.
func (p *Product) IsDiscounted() bool {
	return p.OriginalPrice != nil
}

// ApplySuggestedPrice discounts the product to price, preserving the first
// pre-discount price ever seen. A second application never overwrites it.
func (p *Product) ApplySuggestedPrice(price float64) {
	if p.OriginalPrice == nil {
		prior := p.Price
		p.OriginalPrice = &prior
	}
	p.Price = price
}

type CreateProductRequest struct {
	Name        string    `json:"name" binding:"required,min=2,max=200"`
	Brand       string    `json:"brand" binding:"max=100"`
	Price       float64   `json:"price" binding:"required,gt=0"`
	Description string    `json:"description" binding:"max=2000"`
	Image       string    `json:"image"`
	Sizes       []float64 `json:"sizes" binding:"dive,gt=0"`
	Category    Category  `json:"category" binding:"required,oneof=Running Lifestyle Basketball Custom"`
}

// ToProduct builds a fully-formed catalog record from the request. The store
// never generates identifiers itself.
func (req *CreateProductRequest) ToProduct() Product {
	product := Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Sizes:       req.Sizes,
		Category:    req.Category,
	}
	if product.Brand == "" {
		product.Brand = "Kenya-Amazon"
	}
	if len(product.Sizes) == 0 {
		product.Sizes = []float64{7, 8, 9, 10, 11}
	}
	return product
}
