package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/sony/gobreaker/v2"
	"google.golang.org/api/googleapi"

	"ai-task-assistant/pkg/deepseek"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyResponse indicates the model returned no usable text
	ErrEmptyResponse = errors.New("empty response from model")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// Kind classifies model failures for callers.
type Kind string

const (
	KindSchemaViolation Kind = "schema_violation"
	KindAuth            Kind = "auth"
	KindRateLimited     Kind = "rate_limited"
	KindTransport       Kind = "transport"
	KindUnclassified    Kind = "unclassified"
)

// Transient reports whether a retry could succeed.
func (k Kind) Transient() bool {
	return k == KindRateLimited || k == KindTransport
}

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ModelError is the classified failure surfaced to use cases.
type ModelError struct {
	Kind     Kind
	Provider string
	Err      error
}

func (e *ModelError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("model %s (%s): %v", e.Kind, e.Provider, e.Err)
	}
	return fmt.Sprintf("model %s: %v", e.Kind, e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// KindOf returns the classification of err, or KindUnclassified.
func KindOf(err error) Kind {
	var me *ModelError
	if errors.As(err, &me) {
		return me.Kind
	}
	return Classify(err).Kind
}

// Classify maps any error returned by a provider into a *ModelError.
// It returns nil for a nil error.
func Classify(err error) *ModelError {
	if err == nil {
		return nil
	}

	var me *ModelError
	if errors.As(err, &me) {
		return me
	}

	provider := ""
	var pe *ProviderError
	if errors.As(err, &pe) {
		provider = pe.Provider
	}

	return &ModelError{Kind: classifyKind(err), Provider: provider, Err: err}
}

func classifyKind(err error) Kind {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return kindFromStatus(gerr.Code, gerr.Message+" "+gerr.Body)
	}

	var derr *deepseek.APIError
	if errors.As(err, &derr) {
		return kindFromStatus(derr.StatusCode, derr.Message+" "+derr.Type)
	}

	var verr *jsonschema.ValidationError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, ErrProviderRateLimited):
		return KindRateLimited
	case errors.Is(err, ErrEmptyResponse),
		errors.As(err, &verr),
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr):
		return KindSchemaViolation
	case errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, gobreaker.ErrTooManyRequests),
		errors.Is(err, context.DeadlineExceeded):
		return KindTransport
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return KindTransport
	}

	return KindUnclassified
}

// kindFromStatus maps an HTTP status plus the provider's error text to a Kind.
// A 400 naming an invalid argument counts as a schema violation.
func kindFromStatus(code int, message string) Kind {
	lower := strings.ToLower(message)
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return KindAuth
	case code == http.StatusTooManyRequests:
		return KindRateLimited
	case code == http.StatusBadRequest && (strings.Contains(lower, "api key") || strings.Contains(lower, "api_key")):
		// Gemini answers an invalid key with 400 API_KEY_INVALID.
		return KindAuth
	case code == http.StatusBadRequest && strings.Contains(lower, "invalid"):
		return KindSchemaViolation
	case code >= http.StatusInternalServerError:
		return KindTransport
	}
	return KindUnclassified
}
