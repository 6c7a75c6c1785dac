package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// UsageRecorder receives token counts for every completed call. The costs
// package's Tracker satisfies it.
type UsageRecorder interface {
	Record(model string, inputTokens, outputTokens int) float64
}

// Client generates content against an LLM provider.
type Client interface {
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	Close() error
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client   *genai.Client
	config   *Config
	recorder UsageRecorder
}

// NewGeminiClient creates a Gemini client. The recorder may be nil when usage
// tracking is not wanted.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string, recorder UsageRecorder) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, config: config, recorder: recorder}, nil
}

// GenerateJSON asks the model for a JSON response and strips any markdown
// code-block wrapper the model adds anyway.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.Model(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	c.recordUsage(modelName, resp)

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

func (c *GeminiClient) recordUsage(modelName string, resp *genai.GenerateContentResponse) {
	if c.recorder == nil || resp.UsageMetadata == nil {
		return
	}
	c.recorder.Record(modelName,
		int(resp.UsageMetadata.PromptTokenCount),
		int(resp.UsageMetadata.CandidatesTokenCount))
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
