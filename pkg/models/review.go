package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer review attached to a product. Reviews are immutable
// once created and a product's review list is append-only.
type Review struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"` // YYYY-MM-DD
}

type AddReviewRequest struct {
	UserName string `json:"userName" binding:"required,min=1,max=100"`
	Rating   int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment  string `json:"comment" binding:"required,min=1,max=2000"`
}

// ToReview stamps the request with an identifier and today's date.
func (req *AddReviewRequest) ToReview() Review {
	return Review{
		ID:       uuid.NewString(),
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Date:     time.Now().UTC().Format("2006-01-02"),
	}
}

// IsPositive checks if the review is positive (4-5 stars)
func (r *Review) IsPositive() bool {
	return r.Rating >= 4
}

// IsNegative checks if the review is negative (1-2 stars)
func (r *Review) IsNegative() bool {
	return r.Rating <= 2
}
