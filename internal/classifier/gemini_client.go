package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"finmate/statements/internal/logging"
)

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiClient implements AIClient against the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
	logger logging.Logger
}

// NewGeminiClient creates a Gemini-backed AIClient with the given API key.
func NewGeminiClient(ctx context.Context, apiKey, model string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// SuggestCategory asks the model to pick one of the candidate categories for
// the description. The response is trimmed and validated against the
// candidates; anything else is returned as empty.
func (c *GeminiClient) SuggestCategory(ctx context.Context, description string, categories []string) (string, error) {
	prompt := fmt.Sprintf(
		"Categorize this bank transaction description into exactly one of the following categories: %s.\n"+
			"Respond with only the category name.\n\nDescription: %s",
		strings.Join(categories, ", "), description)

	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}

	answer := firstText(resp)
	answer = strings.TrimSpace(answer)
	for _, name := range categories {
		if strings.EqualFold(answer, name) {
			c.logger.WithFields(
				logging.Field{Key: "model", Value: c.model},
				logging.Field{Key: logging.FieldCategory, Value: name},
			).Debug("Gemini suggested category")
			return name, nil
		}
	}

	c.logger.WithFields(
		logging.Field{Key: "model", Value: c.model},
		logging.Field{Key: "answer", Value: answer},
	).Debug("Gemini answer did not match any known category")
	return "", nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				return string(text)
			}
		}
	}
	return ""
}
