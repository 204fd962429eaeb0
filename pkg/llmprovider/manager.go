package llmprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"

	"ai-task-assistant/pkg/log"
)

// Manager orchestrates provider selection, fallback, retry and circuit breaking
type Manager struct {
	providers []Provider
	breakers  map[string]*gobreaker.CircuitBreaker[*Response]
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int // Total attempts per provider; values below 1 mean 1
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
	CircuitBreaker  CircuitBreakerConfig
}

// CircuitBreakerConfig configures the per-provider breakers.
type CircuitBreakerConfig struct {
	Enabled          bool
	MaxRequests      uint32        // Requests allowed while half-open
	Interval         time.Duration // Closed-state count reset period
	Timeout          time.Duration // Open-state duration
	FailureThreshold uint32        // Consecutive failures that trip the breaker
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}

	m := &Manager{
		providers: providers,
		breakers:  make(map[string]*gobreaker.CircuitBreaker[*Response]),
		config:    config,
		logger:    logger,
	}

	if config.CircuitBreaker.Enabled {
		for _, p := range providers {
			m.breakers[p.Name()] = m.newBreaker(p.Name())
		}
	}

	return m
}

func (m *Manager) newBreaker(name string) *gobreaker.CircuitBreaker[*Response] {
	cfg := m.config.CircuitBreaker
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	return gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			m.logger.Warn(context.Background(), "LLM circuit breaker state changed",
				"provider", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
}

// Providers returns the configured providers in priority order.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, &ModelError{Kind: KindUnclassified, Err: ErrNoProvidersConfigured}
	}

	// Create context with global timeout for entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr *ModelError

	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, &ModelError{
				Kind: KindTransport,
				Err:  fmt.Errorf("global timeout exceeded after trying %d provider(s): %w", len(m.providers), err),
			}
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, &ModelError{
		Kind:     lastErr.Kind,
		Provider: lastErr.Provider,
		Err:      fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr.Err),
	}
}

// generateWithRetry retries transient failures with linear backoff. Auth and
// schema failures are returned on the first attempt.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, *ModelError) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr *ModelError

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, &ModelError{Kind: KindTransport, Provider: provider.Name(), Err: ctx.Err()}
			}
		}

		resp, err := m.call(ctx, provider, req)
		if err == nil {
			return resp, nil
		}

		lastErr = Classify(&ProviderError{Provider: provider.Name(), Err: err})
		if !lastErr.Kind.Transient() {
			break
		}
	}

	return nil, lastErr
}

func (m *Manager) call(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	breaker, ok := m.breakers[provider.Name()]
	if !ok {
		return provider.GenerateContent(ctx, req)
	}
	return breaker.Execute(func() (*Response, error) {
		return provider.GenerateContent(ctx, req)
	})
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	in, out := 0, 0
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", in,
		"output_tokens", out,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err *ModelError) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"kind", string(err.Kind),
		"error", err.Err.Error(),
	)
}
