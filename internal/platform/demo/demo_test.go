package demo

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passwordStrengthChecker/internal/core/domain"
	"passwordStrengthChecker/internal/core/service"
)

func TestRun_FixedBattery(t *testing.T) {
	var out, metricsOut bytes.Buffer
	summary, err := Run(context.Background(), &out, service.NewStrengthService(nil), Options{MetricsOut: &metricsOut})
	require.NoError(t, err)

	require.Len(t, summary.Reports, len(Cases))
	assert.NotEmpty(t, summary.RunID)

	total := 0
	for i, c := range summary.Distribution {
		total += c.Count
		if i > 0 {
			assert.Less(t, string(summary.Distribution[i-1].Category), string(c.Category))
		}
	}
	assert.Equal(t, len(Cases), total)
	assert.Equal(t, domain.StrengthVeryStrong, summary.Reports[5].Category)
	assert.True(t, summary.Reports[0].Dictionary.IsCommonPassword)
	assert.Greater(t, summary.AverageScore, 0.0)
	assert.Greater(t, summary.AverageEntropy, 0.0)

	text := out.String()
	assert.Contains(t, text, "TEST CASE 8/8: Weak - Keyboard Pattern")
	assert.Contains(t, text, "SUMMARY STATISTICS")
	assert.Contains(t, text, "Demonstration complete!")

	var recorded map[string][]map[string]any
	require.NoError(t, json.Unmarshal(metricsOut.Bytes(), &recorded))
	assert.NotEmpty(t, recorded[string(domain.StrengthVeryStrong)])
}

func TestRun_RandomSamples(t *testing.T) {
	var out bytes.Buffer
	summary, err := Run(context.Background(), &out, service.NewStrengthService(nil), Options{RandomSamples: 3, MetricsInterval: 25 * time.Millisecond})
	require.NoError(t, err)
	assert.Len(t, summary.Reports, len(Cases)+3)
	assert.Contains(t, out.String(), "Random Sample 3")
	assert.Equal(t, 25*time.Millisecond, summary.Resources.SampleInterval)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	summary, err := Run(ctx, &out, service.NewStrengthService(nil), Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, summary.Reports)
}
