package llm

import (
	"context"
	"errors"
)

// Extractor turns raw resume text into a structured YAML record.
type Extractor interface {
	ExtractRecord(ctx context.Context, resumeText string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// ExtractRecord returns ErrNotConfigured.
func (PlaceholderClient) ExtractRecord(ctx context.Context, resumeText string) (string, error) {
	_ = ctx
	_ = resumeText
	return "", ErrNotConfigured
}
