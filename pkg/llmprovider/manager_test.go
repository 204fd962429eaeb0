package llmprovider

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	err       error
	response  *Response
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func textResponse(provider, text string) *Response {
	return &Response{
		Content:      Message{Role: "model", Parts: []Part{{Text: text}}},
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: textResponse("primary", "hello")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary}, &Config{FallbackEnabled: true, RetryAttempts: 3}, logger)

	resp, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello"))

	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Text())
	assert.Equal(t, 1, primary.callCount)
	assert.Contains(t, logger.infoMessages, "LLM generation successful")
}

func TestGenerateContent_FallbackToSecondary(t *testing.T) {
	primary := &mockProvider{name: "primary", err: &googleapi.Error{Code: http.StatusServiceUnavailable}}
	secondary := &mockProvider{name: "secondary", response: textResponse("secondary", "from secondary")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 1}, logger)

	resp, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello"))

	require.NoError(t, err)
	assert.Equal(t, "secondary", resp.ProviderName)
	assert.Equal(t, 1, primary.callCount)
	assert.Equal(t, 1, secondary.callCount)
	assert.Contains(t, logger.warnMessages, "LLM generation failed")
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", err: &googleapi.Error{Code: http.StatusTooManyRequests}}
	secondary := &mockProvider{name: "secondary", response: textResponse("secondary", "x")}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAllProvidersFailed))
	assert.Equal(t, KindRateLimited, KindOf(err))
	assert.Equal(t, 0, secondary.callCount)
}

func TestGenerateContent_RetriesOnlyTransientKinds(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCalls int
		wantKind  Kind
	}{
		{name: "rate limited is retried", err: &googleapi.Error{Code: http.StatusTooManyRequests}, wantCalls: 3, wantKind: KindRateLimited},
		{name: "server error is retried", err: &googleapi.Error{Code: http.StatusBadGateway}, wantCalls: 3, wantKind: KindTransport},
		{name: "auth is not retried", err: &googleapi.Error{Code: http.StatusUnauthorized}, wantCalls: 1, wantKind: KindAuth},
		{name: "unknown is not retried", err: errors.New("boom"), wantCalls: 1, wantKind: KindUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &mockProvider{name: "p", err: tt.err}
			manager := NewManager([]Provider{p}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

			_, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello"))

			require.Error(t, err)
			assert.Equal(t, tt.wantCalls, p.callCount)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestGenerateContent_DefaultsToSingleAttempt(t *testing.T) {
	p := &mockProvider{name: "p", err: &googleapi.Error{Code: http.StatusTooManyRequests}}
	manager := NewManager([]Provider{p}, &Config{}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello"))

	require.Error(t, err)
	assert.Equal(t, 1, p.callCount)
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello"))

	assert.True(t, errors.Is(err, ErrNoProvidersConfigured))
}

func TestGenerateContent_CircuitBreakerOpens(t *testing.T) {
	p := &mockProvider{name: "flaky", err: &googleapi.Error{Code: http.StatusServiceUnavailable}}
	logger := &mockLogger{}
	manager := NewManager([]Provider{p}, &Config{
		RetryAttempts: 1,
		CircuitBreaker: CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			Timeout:          time.Minute,
		},
	}, logger)

	for i := 0; i < 2; i++ {
		_, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello"))
		require.Error(t, err)
	}
	assert.Equal(t, 2, p.callCount)
	assert.Contains(t, logger.warnMessages, "LLM circuit breaker state changed")

	// The breaker is open now: the provider must not be called again.
	_, err := manager.GenerateContent(context.Background(), NewTextRequest("Hello"))
	require.Error(t, err)
	assert.Equal(t, 2, p.callCount)
	assert.Equal(t, KindTransport, KindOf(err))
}
