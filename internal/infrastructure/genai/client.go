package genai

import (
	"context"
	"fmt"

	googlegenai "google.golang.org/genai"

	"dorakingdom/pkg/config"
)

// Client wraps the Gemini text-completion endpoint: prompt in, text out,
// no streaming. Generation parameters come from configuration.
type Client struct {
	client *googlegenai.Client
	model  string
	config *googlegenai.GenerateContentConfig
}

func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.GoogleAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is not configured")
	}

	client, err := googlegenai.NewClient(ctx, &googlegenai.ClientConfig{
		APIKey:  cfg.GoogleAPIKey,
		Backend: googlegenai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		client: client,
		model:  cfg.GeminiModel,
		config: &googlegenai.GenerateContentConfig{
			Temperature:     googlegenai.Ptr(float32(cfg.Temperature)),
			TopK:            googlegenai.Ptr(float32(cfg.TopK)),
			TopP:            googlegenai.Ptr(float32(cfg.TopP)),
			MaxOutputTokens: int32(cfg.MaxOutputTokens),
		},
	}, nil
}

// GenerateText sends one prompt and returns the raw model output.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, googlegenai.Text(prompt), c.config)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
