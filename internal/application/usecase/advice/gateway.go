// Package advice implements the GlowUp Guide chat and daily tips on top of a hosted LLM.
package advice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/glowup-wallet/backend/internal/application/adapter"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
)

// DefaultModel is the hosted model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const adviceTemperature float32 = 0.7

// Fallback texts returned instead of an error.
const (
	AdviceUnavailableText = "Please configure your API Key to access the Glow Up Guide!"
	AdviceEmptyText       = "Sorry bestie, I couldn't think of anything right now!"
	AdviceErrorText       = "Oops! My brain is buffering. Try again later."

	TipUnavailableText = "Tip: Save $5 today by making coffee at home!"
	TipEmptyText       = "Save those coins!"
	TipErrorText       = "Tracking your spending is the first step to glowing up!"
)

const systemInstructionTemplate = `You are a Gen Z financial bestie named "GlowUp Guide".
Your tone is supportive, trendy, using clear language (no complex jargon without explanation).
You use emojis occasionally.
Your goal is to help the user save money, understand budgeting, and reach their lifestyle goals (like concerts, travel, fashion).
Keep responses concise (under 100 words usually).
Context about the user: %s`

const tipPromptTemplate = "Give me a very short (1 sentence) financial tip for a Gen Z user. Theme: %s. Make it catchy."

type fallbacks struct {
	unavailable string
	empty       string
	failed      string
}

var (
	adviceFallbacks = fallbacks{AdviceUnavailableText, AdviceEmptyText, AdviceErrorText}
	tipFallbacks    = fallbacks{TipUnavailableText, TipEmptyText, TipErrorText}
)

// Gateway forwards questions to the hosted model. Its public methods always
// return a non-empty text; failures degrade to fixed fallbacks.
type Gateway struct {
	model     adapter.AdviceModel
	modelName string
}

// NewGateway creates a new Gateway. model may be nil, which behaves like a
// model without credential.
func NewGateway(model adapter.AdviceModel, modelName string) *Gateway {
	if modelName == "" {
		modelName = DefaultModel
	}
	return &Gateway{
		model:     model,
		modelName: modelName,
	}
}

// GetAdvice answers a user question with the given user context.
func (g *Gateway) GetAdvice(ctx context.Context, query, userContext string) string {
	text, err := g.Advise(ctx, query, userContext)
	return g.resolve(ctx, "advice", text, err, adviceFallbacks)
}

// GetDailyTip returns a one sentence tip for the theme label.
func (g *Gateway) GetDailyTip(ctx context.Context, themeLabel string) string {
	text, err := g.Tip(ctx, themeLabel)
	return g.resolve(ctx, "tip", text, err, tipFallbacks)
}

// Advise is the error-returning form of GetAdvice.
func (g *Gateway) Advise(ctx context.Context, query, userContext string) (string, error) {
	temperature := adviceTemperature
	return g.generate(ctx, &adapter.AdviceRequest{
		Model:             g.modelName,
		Prompt:            query,
		SystemInstruction: fmt.Sprintf(systemInstructionTemplate, userContext),
		Temperature:       &temperature,
	})
}

// Tip is the error-returning form of GetDailyTip.
func (g *Gateway) Tip(ctx context.Context, themeLabel string) (string, error) {
	return g.generate(ctx, &adapter.AdviceRequest{
		Model:  g.modelName,
		Prompt: fmt.Sprintf(tipPromptTemplate, themeLabel),
	})
}

func (g *Gateway) generate(ctx context.Context, request *adapter.AdviceRequest) (string, error) {
	if g.model == nil || !g.model.IsAvailable() {
		return "", domainerror.NewAdviceError(
			domainerror.ErrCodeAdviceUnavailable,
			"no advice credential configured",
			domainerror.ErrAdviceUnavailable,
		)
	}

	text, err := g.model.Generate(ctx, request)
	if err != nil {
		return "", fmt.Errorf("failed to generate advice: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return "", domainerror.NewAdviceError(
			domainerror.ErrCodeEmptyAdvice,
			"model answered without text",
			domainerror.ErrEmptyAdvice,
		)
	}

	return text, nil
}

func (g *Gateway) resolve(ctx context.Context, kind, text string, err error, fb fallbacks) string {
	switch {
	case err == nil:
		return text
	case errors.Is(err, domainerror.ErrAdviceUnavailable):
		return fb.unavailable
	case errors.Is(err, domainerror.ErrEmptyAdvice):
		slog.WarnContext(ctx, "Advice model returned empty text", "kind", kind)
		return fb.empty
	default:
		slog.ErrorContext(ctx, "Advice model call failed",
			"kind", kind,
			"model", g.modelName,
			"error", err,
		)
		return fb.failed
	}
}
