// Package gemini calls the Google Gemini API to turn raw feedback
// responses into a structured sentiment analysis.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/attendly/feedback-backend/internal/config"
	"github.com/attendly/feedback-backend/internal/domain"
)

// generator abstracts the single model call so tests can inject a fake.
type generator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

// Client produces feedback analyses via a text generation model.
type Client struct {
	gen     generator
	timeout time.Duration
}

// New builds a Client backed by the Gemini API.
func New(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	apiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{
		gen: &genaiGenerator{
			client:          apiClient,
			model:           cfg.Model,
			temperature:     cfg.Temperature,
			maxOutputTokens: cfg.MaxOutputTokens,
		},
		timeout: cfg.Timeout,
	}, nil
}

// Analyze sends the responses to the model and parses the structured
// sections out of its reply. The returned record carries only the four
// analysis fields; identity and timestamps are assigned on persistence.
// Every field is always populated; parsing falls back to defaults rather
// than returning a partial record.
func (c *Client) Analyze(ctx context.Context, responses []*domain.Response) (*domain.Analysis, error) {
	if len(responses) == 0 {
		return nil, fmt.Errorf("no responses to analyze: %w", domain.ErrValidation)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	prompt := buildPrompt(responses)

	text, err := c.gen.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate analysis: %w: %v", domain.ErrAIUnavailable, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty model response: %w", domain.ErrAIUnavailable)
	}

	return parseAnalysis(text), nil
}

// ---------------------------------------------------------------------------
// Gemini-backed generator
// ---------------------------------------------------------------------------

type genaiGenerator struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
}

func (g *genaiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.temperature),
		MaxOutputTokens: g.maxOutputTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
