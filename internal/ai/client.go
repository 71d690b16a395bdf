// Package ai talks to Gemini for question generation, answer evaluation and
// improvement recommendations. Every call degrades to a deterministic
// fallback so an API outage never blocks an interview.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash-lite"

// Client wraps the Google GenAI client with the prompt contracts used by the
// interview flow. All prompts demand JSON-only responses.
type Client struct {
	client          *genai.Client
	modelName       string
	generateTimeout time.Duration
	evaluateTimeout time.Duration
	logger          *zap.Logger
}

func NewClient(ctx context.Context, apiKey, model string, generateTimeout, evaluateTimeout time.Duration, logger *zap.Logger) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Client{
		client:          client,
		modelName:       model,
		generateTimeout: generateTimeout,
		evaluateTimeout: evaluateTimeout,
		logger:          logger,
	}, nil
}

func (c *Client) Model() string {
	return c.modelName
}

// generateJSON sends a system+user prompt pair and returns the raw response
// text with any markdown code fences stripped.
func (c *Client) generateJSON(ctx context.Context, system, prompt string, temperature float32, maxOutputTokens int32) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("ai client is not initialized")
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
		Temperature:      genai.Ptr(temperature),
		MaxOutputTokens:  maxOutputTokens,
		ResponseMIMEType: "application/json",
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || strings.TrimSpace(part.Text) == "" {
				continue
			}
			builder.WriteString(part.Text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini returned empty response")
	}
	return stripCodeFences(output), nil
}

// stripCodeFences removes a wrapping ```json ... ``` block when the model
// ignores the JSON-only instruction.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
