package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/covercraft/internal/config"
	"github.com/phrazzld/covercraft/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by the generator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	logger *slog.Logger
	models contentGenerator
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a GeminiGenerator from the LLM configuration.
// It returns an error wrapping generation.ErrInvalidConfig when the API key
// is missing or the client cannot be created.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	logger.InfoContext(ctx, "Gemini client created", "backend", "gemini_api")

	return newGeminiGenerator(logger, client.Models), nil
}

func newGeminiGenerator(logger *slog.Logger, models contentGenerator) *GeminiGenerator {
	return &GeminiGenerator{
		logger: logger,
		models: models,
	}
}

// GenerateText sends prompt to model and returns the generated text.
func (g *GeminiGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	g.logger.InfoContext(ctx, "Making Gemini API call",
		"model", model,
		"prompt_length", len(prompt))

	resp, err := g.models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini API returned an unusable response",
			"model", model,
			"error", err)
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"model", model,
		"text_length", len(text))

	return text, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", nil
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: candidate finished with reason %s", generation.ErrContentBlocked, candidate.FinishReason)
	}

	if candidate.Content == nil {
		return "", nil
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String(), nil
}
