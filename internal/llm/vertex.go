package llm

import (
	"context"
	"fmt"
	"strings"

	vertex "cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
)

// VertexClient implements Client for Gemini served by Vertex AI
type VertexClient struct {
	client *vertex.Client
	config *Config
}

// NewVertexClient creates a Vertex AI client for config.Project and config.Location.
// Credentials come from the environment (application default credentials).
func NewVertexClient(ctx context.Context, config *Config, opts ...option.ClientOption) (*VertexClient, error) {
	if config.Project == "" {
		return nil, fmt.Errorf("vertex AI project is required")
	}
	location := config.Location
	if location == "" {
		location = DefaultVertexLocation
	}

	client, err := vertex.NewClient(ctx, config.Project, location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	return &VertexClient{
		client: client,
		config: config,
	}, nil
}

// Generate generates text content with the configured model and sampling parameters
func (c *VertexClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.config.Model == "" {
		return "", fmt.Errorf("no model configured")
	}

	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(c.config.Params.Temperature)
	model.SetTopK(c.config.Params.TopK)
	model.SetTopP(c.config.Params.TopP)
	model.SetMaxOutputTokens(c.config.Params.MaxOutputTokens)

	resp, err := model.GenerateContent(ctx, vertex.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractVertexText(resp)
}

// Close releases resources held by the client
func (c *VertexClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func extractVertexText(resp *vertex.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(vertex.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
