package ai

import (
	"context"
	"os"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/kenyaamazon/storefront-api/pkg/logger"
)

var client *openai.Client
var isInitialized bool

// InitializeGenerationService initializes the OpenAI client from environment
// variables. When credentials are absent the studio endpoints stay mounted
// but report the service as unavailable.
func InitializeGenerationService() {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		logger.Log.Warn("generation service disabled - OPENAI_API_KEY not provided")
		isInitialized = false
		return
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	clientValue := openai.NewClient(opts...)
	client = &clientValue

	isInitialized = true
	logger.Log.Info("generation service initialized")
}

// IsEnabled returns whether the generation service is properly initialized.
func IsEnabled() bool {
	return isInitialized && client != nil
}

// generateCompletion is a helper function to run a single chat completion.
func generateCompletion(ctx context.Context, systemMessage, userMessage string) (string, error) {
	if !IsEnabled() {
		return "", &GenerationError{Message: "generation service is not enabled"}
	}

	model := os.Getenv("OPENAI_CHAT_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(systemMessage),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(userMessage),
					},
				},
			},
		},
		MaxTokens:   openai.Int(1500),
		Temperature: openai.Float(0.7),
	})

	if err != nil {
		return "", &GenerationError{Message: "failed to generate response", Cause: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &GenerationError{Message: "generation service returned an empty response"}
	}

	return resp.Choices[0].Message.Content, nil
}

// GenerationError represents a failure of the external generation service.
// Callers treat it as fully recoverable: stores are left unchanged and the
// user action can simply be re-issued.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}
