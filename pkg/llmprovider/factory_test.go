package llmprovider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-assistant/config"
	"ai-task-assistant/pkg/log"
)

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "ds-key"},
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "qw-key"},
			{Name: "gemini", Enabled: false, Priority: 0, APIKey: "g-key"},
			{Name: "unknown", Enabled: true, Priority: 3, APIKey: "x"},
		},
	}

	providers, err := InitializeProviders(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)
	require.Len(t, providers, 2)

	assert.Equal(t, "qwen", providers[0].Name())
	assert.Equal(t, QwenModel, providers[0].Model())
	assert.Equal(t, "deepseek", providers[1].Name())
}

func TestInitializeProviders_Errors(t *testing.T) {
	_, err := InitializeProviders(context.Background(), nil, log.NewNop())
	require.Error(t, err)

	_, err = InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", Enabled: false}},
	}, log.NewNop())
	assert.ErrorIs(t, err, ErrNoProvidersConfigured)

	_, err = InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "deepseek", Enabled: true, Timeout: "soon"}},
	}, log.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeout")
}
