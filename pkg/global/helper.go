package global

import (
	"os"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FreeShippingThreshold is the subtotal above which shipping is free.
const FreeShippingThreshold = 150.0

// FlatShippingFee is charged on any non-empty cart at or under the threshold.
const FlatShippingFee = 15.0
