package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	ModelRequestsTotal.Reset()
	SummaryCacheTotal.Reset()

	ModelRequestsTotal.WithLabelValues("parse", "success").Inc()
	ModelRequestsTotal.WithLabelValues("parse", "success").Inc()
	ModelRequestsTotal.WithLabelValues("parse", "transport").Inc()
	SummaryCacheTotal.WithLabelValues("hit").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(ModelRequestsTotal.WithLabelValues("parse", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ModelRequestsTotal.WithLabelValues("parse", "transport")))
	assert.Equal(t, 1.0, testutil.ToFloat64(SummaryCacheTotal.WithLabelValues("hit")))
	assert.Equal(t, 0.0, testutil.ToFloat64(SummaryCacheTotal.WithLabelValues("miss")))
}

func TestRegisteredWithDefaultRegistry(t *testing.T) {
	RateLimitedTotal.Inc()
	CombinerFallbacksTotal.Inc()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}

	assert.True(t, names["taskassist_rate_limited_total"])
	assert.True(t, names["taskassist_combiner_fallbacks_total"])
}
