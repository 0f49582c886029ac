package catalog

import "github.com/kenyaamazon/storefront-api/pkg/models"

func ptr(v float64) *float64 { return &v }

// SeedProducts is the launch catalog the store boots with.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Velocity Runner X1",
			Brand:         "Kenya-Amazon",
			Price:         145.00,
			OriginalPrice: ptr(180.00),
			Description:   "Engineered for speed, the Velocity Runner X1 features our proprietary foam technology for maximum energy return. The breathable mesh upper keeps you cool during intense runs.",
			Image:         "https://picsum.photos/seed/sneaker1/800/800",
			Sizes:         []float64{7, 8, 9, 10, 11, 12},
			Category:      models.CategoryRunning,
			Rating:        4.8,
			ReviewCount:   124,
		},
		{
			ID:          "2",
			Name:        "Street Legend High",
			Brand:       "Kenya-Amazon",
			Price:       120.00,
			Description: "A modern take on a classic silhouette. The Street Legend High combines premium leather with urban aesthetics. Perfect for daily wear.",
			Image:       "https://picsum.photos/seed/sneaker2/800/800",
			Sizes:       []float64{6, 7, 8, 9, 10, 11},
			Category:    models.CategoryLifestyle,
			Rating:      4.5,
			ReviewCount: 89,
		},
		{
			ID:          "3",
			Name:        "Court Master Pro",
			Brand:       "Kenya-Amazon",
			Price:       160.00,
			Description: "Dominate the court with superior grip and ankle support. The Court Master Pro is designed for explosive movements and hard landings.",
			Image:       "https://picsum.photos/seed/sneaker3/800/800",
			Sizes:       []float64{8, 9, 10, 11, 12, 13, 14},
			Category:    models.CategoryBasketball,
			Rating:      4.9,
			ReviewCount: 210,
		},
		{
			ID:            "4",
			Name:          "Urban Drift Low",
			Brand:         "Kenya-Amazon",
			Price:         95.00,
			OriginalPrice: ptr(110.00),
			Description:   "Minimalist design meets maximum comfort. The Urban Drift Low is your go-to shoe for exploring the city.",
			Image:         "https://picsum.photos/seed/sneaker4/800/800",
			Sizes:         []float64{7, 8, 9, 10, 11},
			Category:      models.CategoryLifestyle,
			Rating:        4.2,
			ReviewCount:   56,
		},
		{
			ID:          "5",
			Name:        "Marathon Elite",
			Brand:       "Kenya-Amazon",
			Price:       220.00,
			Description: "For the serious long-distance runner. Carbon plate technology and ultra-lightweight materials.",
			Image:       "https://picsum.photos/seed/sneaker5/800/800",
			Sizes:       []float64{7, 8, 9, 10, 11, 12},
			Category:    models.CategoryRunning,
			Rating:      5.0,
			ReviewCount: 42,
		},
		{
			ID:          "6",
			Name:        "Dunk King Retro",
			Brand:       "Kenya-Amazon",
			Price:       135.00,
			Description: "Throwback vibes with modern durability. The Dunk King Retro brings 90s style to today's streets.",
			Image:       "https://picsum.photos/seed/sneaker6/800/800",
			Sizes:       []float64{8, 9, 10, 11, 12},
			Category:    models.CategoryBasketball,
			Rating:      4.6,
			ReviewCount: 175,
		},
	}
}
