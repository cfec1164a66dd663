package ai

import (
	"context"
	"log"
	"os"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/jmorley-dev/sales-insights-api/pkg/global"
)

// Client wraps the OpenAI chat completion API behind the Completer interface.
type Client struct {
	api   openai.Client
	model string
}

// NewClient builds the completion client from environment configuration.
// A missing API key is a ConfigurationError: the caller is expected to fail
// at startup rather than on the first request.
func NewClient() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, &global.ConfigurationError{
			Message: "OPENAI_API_KEY environment variable not configured",
		}
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if endpoint := os.Getenv("OPENAI_BASE_URL"); endpoint != "" {
		opts = append(opts, option.WithBaseURL(endpoint))
	}

	return &Client{
		api:   openai.NewClient(opts...),
		model: global.GetEnvOrDefault("OPENAI_MODEL", "gpt-3.5-turbo"),
	}, nil
}

// Complete sends a system/user message pair and returns the raw completion
// text. Temperature is pinned to 0 so repeated questions over the same data
// stay as deterministic as the provider allows.
func (c *Client) Complete(ctx context.Context, systemMessage, userMessage string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
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
		Temperature: openai.Float(0),
	})

	if err != nil {
		log.Printf("AI API Error: %v", err)
		return "", &global.OperationalError{Message: "failed to generate AI response", Cause: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &global.OperationalError{Message: "AI returned empty response"}
	}

	return resp.Choices[0].Message.Content, nil
}
