package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"

	"github.com/kenyaamazon/storefront-api/pkg/models"
)

// ImageTier selects the rendering quality of a generated product shot.
type ImageTier string

const (
	ImageTier1K ImageTier = "1K"
	ImageTier2K ImageTier = "2K"
	ImageTier4K ImageTier = "4K"
)

// Valid reports whether the tier is one of the supported presets.
func (t ImageTier) Valid() bool {
	switch t {
	case ImageTier1K, ImageTier2K, ImageTier4K:
		return true
	}
	return false
}

func (t ImageTier) quality() openai.ImageGenerateParamsQuality {
	if t == ImageTier1K {
		return openai.ImageGenerateParamsQualityStandard
	}
	return openai.ImageGenerateParamsQualityHD
}

// GenerateSneakerImage renders a studio product shot for the prompt and
// returns it as a data URI. The service being unreachable, unauthorized or
// returning no image payload all surface as a GenerationError.
func GenerateSneakerImage(ctx context.Context, prompt string, tier ImageTier) (string, error) {
	if !IsEnabled() {
		return "", &GenerationError{Message: "generation service is not enabled"}
	}

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         fmt.Sprintf(imagePromptFrame, prompt),
		Model:          openai.ImageModelDallE3,
		N:              openai.Int(1),
		Size:           openai.ImageGenerateParamsSize1024x1024,
		Quality:        tier.quality(),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
	})
	if err != nil {
		return "", &GenerationError{Message: "failed to generate image", Cause: err}
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", &GenerationError{Message: "no image data found in response"}
	}

	return "data:image/png;base64," + resp.Data[0].B64JSON, nil
}

// GenerateMarketAnalysis produces a free-text market read for the given
// categories. An empty list analyzes the whole lineup.
func GenerateMarketAnalysis(ctx context.Context, categories []models.Category) (string, error) {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}
	if len(names) == 0 {
		for _, c := range models.Categories() {
			names = append(names, string(c))
		}
	}

	userPrompt := fmt.Sprintf("Provide a market analysis for the following sneaker categories: %s.", strings.Join(names, ", "))
	return generateCompletion(ctx, MarketAnalysisSystemPrompt, userPrompt)
}

// GenerateCampaignOffers asks the service for price suggestions matching the
// campaign theme, given a snapshot of the catalog. A response that does not
// parse as the expected shape is a failure, never a partial result.
func GenerateCampaignOffers(ctx context.Context, snapshot []models.Product, theme string) ([]models.OfferSuggestion, error) {
	userPrompt, err := formatCampaignPrompt(snapshot, theme)
	if err != nil {
		return nil, err
	}

	raw, err := generateCompletion(ctx, CampaignOffersSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	return parseOfferSuggestions(raw)
}

// campaignProduct is the slice of a product the pricing prompt needs.
type campaignProduct struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Rating    float64 `json:"rating"`
	Sales     *int    `json:"sales,omitempty"`
}

func formatCampaignPrompt(snapshot []models.Product, theme string) (string, error) {
	condensed := make([]campaignProduct, 0, len(snapshot))
	for i := range snapshot {
		condensed = append(condensed, campaignProduct{
			ProductID: snapshot[i].ID,
			Name:      snapshot[i].Name,
			Category:  string(snapshot[i].Category),
			Price:     snapshot[i].Price,
			Rating:    snapshot[i].Rating,
			Sales:     snapshot[i].Sales,
		})
	}

	snapshotJSON, err := json.MarshalIndent(condensed, "", "  ")
	if err != nil {
		return "", &GenerationError{Message: "failed to encode catalog snapshot", Cause: err}
	}

	return fmt.Sprintf(`Campaign theme: %q

Catalog snapshot:
%s`, theme, string(snapshotJSON)), nil
}

// parseOfferSuggestions decodes the model's reply into suggestion records,
// tolerating a markdown code fence around the JSON.
func parseOfferSuggestions(raw string) ([]models.OfferSuggestion, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var suggestions []models.OfferSuggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestions); err != nil {
		return nil, &GenerationError{Message: "malformed offer suggestions payload", Cause: err}
	}

	for _, s := range suggestions {
		if s.ProductID == "" || s.SuggestedPrice <= 0 {
			return nil, &GenerationError{Message: "malformed offer suggestions payload"}
		}
	}

	return suggestions, nil
}
