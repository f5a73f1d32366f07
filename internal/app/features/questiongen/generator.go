// internal/app/features/questiongen/generator.go
package questiongen

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator produces raw model output for a prompt. The handler owns prompt
// construction and response parsing; implementations only talk to the model.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

const generationTemperature = 0.7

type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator builds a Generator backed by the Gemini API. An empty
// model falls back to DefaultModel.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &geminiGenerator{client: client, model: model}, nil
}

// NewDisabledGenerator returns a Generator that fails every request. It is
// wired in when no API key is configured so the rest of the app can still run.
func NewDisabledGenerator() Generator {
	return disabledGenerator{}
}

type disabledGenerator struct{}

func (disabledGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("question generation is not configured")
}

func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	temperature := float32(generationTemperature)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 1024,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return text, nil
}
