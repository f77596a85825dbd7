package theme

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/imagedecode"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/constants"
	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/resilience"
	"github.com/AlibekovAA/caption-studio/backend/internal/observability/metrics"
)

const describePrompt = "Analyze this image and describe what you see in one concise sentence. " +
	"Focus on: objects, people, animals, scenery, colors, and mood. " +
	"Be specific and descriptive."

const geminiProvider = "gemini"

var errEmptyDescription = errors.New("model returned an empty description")

// contentGenerator is the subset of *genai.Models the describer needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiDescriber struct {
	models  contentGenerator
	model   string
	breaker *resilience.CircuitBreaker
	log     *logger.Logger
}

func NewGeminiDescriber(ctx context.Context, apiKey, model string, timeout time.Duration, log *logger.Logger) (*GeminiDescriber, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return newGeminiDescriber(client.Models, model, timeout, log), nil
}

func newGeminiDescriber(models contentGenerator, model string, timeout time.Duration, log *logger.Logger) *GeminiDescriber {
	if model == "" {
		model = constants.DefaultGeminiModel
	}
	if timeout <= 0 {
		timeout = constants.DefaultGeminiTimeout
	}
	return &GeminiDescriber{
		models: models,
		model:  model,
		breaker: resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			Threshold:  constants.GeminiBreakerThreshold,
			Timeout:    timeout,
			ResetAfter: constants.GeminiBreakerReset,
			Name:       geminiProvider,
			Logger:     log,
		}),
		log: log,
	}
}

func (g *GeminiDescriber) Describe(ctx context.Context, img *imagedecode.Decoded) (string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: describePrompt},
				{InlineData: &genai.Blob{
					MIMEType: img.MIMEType,
					Data:     img.Data,
				}},
			},
		},
	}

	start := time.Now()
	var description string
	err := g.breaker.Call(ctx, func(ctx context.Context) error {
		resp, err := g.models.GenerateContent(ctx, g.model, contents, nil)
		if err != nil {
			return err
		}
		description = extractResponseText(resp)
		if description == "" {
			return errEmptyDescription
		}
		return nil
	})

	switch {
	case errors.Is(err, commonerrors.ErrCircuitOpen):
		metrics.DescriberCallsTotal.WithLabelValues(geminiProvider, "circuit_open").Inc()
		return "", err
	case err != nil:
		metrics.DescriberCallsTotal.WithLabelValues(geminiProvider, "error").Inc()
		return "", commonerrors.ErrExternalServiceFailed.WithCause(err)
	}

	metrics.DescriberCallsTotal.WithLabelValues(geminiProvider, "ok").Inc()
	g.log.WithFields(ctx, logger.Fields{
		"action":      "describe_image",
		"model":       g.model,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debugf("image described: %s", description)
	return description, nil
}

func extractResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var result strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			result.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(result.String())
}
