package gemini

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// IGemini defines the interface for Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request to Gemini API
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Gemini client with the given configuration
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}

// NewWithADC creates a client that authenticates with Google Application
// Default Credentials instead of an API key.
func NewWithADC(ctx context.Context, cfg Config) (IGemini, error) {
	ts, err := google.DefaultTokenSource(ctx, generativeLanguageScope)
	if err != nil {
		return nil, fmt.Errorf("gemini: load default credentials: %w", err)
	}

	base := cfg.HTTPClient
	if base == nil {
		base = &http.Client{}
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	client := oauth2.NewClient(ctx, ts)
	client.Timeout = cfg.timeout()

	cfg.HTTPClient = client
	cfg.tokenAuth = true
	return New(cfg)
}
