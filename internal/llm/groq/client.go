package groq

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"cvforge/internal/llm"
	"cvforge/internal/shared/telemetry"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// Client implements llm.Extractor using the Groq chat completions API.
type Client struct {
	model string
	http  *resty.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(url)
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// NewClient constructs a Groq client.
func NewClient(apiKey, model string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required")
	}

	c := &Client{
		model: model,
		http: resty.New().
			SetBaseURL(defaultBaseURL).
			SetAuthToken(apiKey).
			SetTimeout(120 * time.Second).
			SetHeader("Content-Type", "application/json"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ExtractRecord sends the resume text for structured extraction and returns
// the model's YAML output.
func (c *Client) ExtractRecord(ctx context.Context, resumeText string) (string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", fmt.Errorf("resume text is empty")
	}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":       c.model,
			"temperature": 0.2,
			"messages": []map[string]string{
				{"role": "system", "content": llm.ExtractionPrompt},
				{"role": "user", "content": resumeText},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("groq request: %w", err)
	}

	body := resp.Body()
	if resp.IsError() {
		apiMsg := gjson.GetBytes(body, "error.message").String()
		if apiMsg == "" {
			apiMsg = resp.Status()
		}
		return "", fmt.Errorf("groq api: %s", apiMsg)
	}

	content := gjson.GetBytes(body, "choices.0.message.content").String()
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("groq api: empty completion")
	}

	telemetry.Info("llm.extract", map[string]any{
		"model":             c.model,
		"duration_ms":       float64(time.Since(start).Microseconds()) / 1000.0,
		"prompt_tokens":     gjson.GetBytes(body, "usage.prompt_tokens").Int(),
		"completion_tokens": gjson.GetBytes(body, "usage.completion_tokens").Int(),
	})

	return stripFences(content), nil
}

// stripFences removes a surrounding markdown code fence when the model
// ignores the plain-output instruction.
func stripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
