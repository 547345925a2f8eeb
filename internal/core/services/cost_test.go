package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostEstimatorDefaults(t *testing.T) {
	est := NewCostEstimator("", 0)

	estimate := est.EstimateText(strings.Repeat("a", 4000))
	assert.Equal(t, 1000, estimate.Tokens)
	assert.True(t, estimate.TokensIsEstimated)
	assert.Equal(t, "text-embedding-ada-002", estimate.EmbeddingModel)
	assert.InDelta(t, 0.10, estimate.CostPer1MTokensUSD, 1e-9)
	assert.InDelta(t, 0.0001, estimate.CostUSD, 1e-9)
}

func TestCostEstimatorKnownModels(t *testing.T) {
	tests := []struct {
		model string
		want  float64
	}{
		{"text-embedding-3-small", 0.02},
		{"text-embedding-3-large", 0.13},
		{"voyage-large-2", 0.12},
		{"embed-multilingual-v3.0", 0.10},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			est := NewCostEstimator(tt.model, 0)
			estimate := est.EstimateText("some text")
			assert.Equal(t, tt.model, estimate.EmbeddingModel)
			assert.InDelta(t, tt.want, estimate.CostPer1MTokensUSD, 1e-9)
		})
	}
}

func TestCostEstimatorUnknownModelFallsBack(t *testing.T) {
	est := NewCostEstimator("house-model-v1", 0)
	estimate := est.EstimateText("text")
	assert.InDelta(t, 0.10, estimate.CostPer1MTokensUSD, 1e-9)
}

func TestCostEstimatorCustomPriceOverride(t *testing.T) {
	est := NewCostEstimator("text-embedding-3-small", 0.05)
	estimate := est.EstimateText(strings.Repeat("b", 400))
	assert.Equal(t, 100, estimate.Tokens)
	assert.InDelta(t, 0.05, estimate.CostPer1MTokensUSD, 1e-9)
	assert.InDelta(t, float64(100)/1_000_000*0.05, estimate.CostUSD, 1e-12)
}

func TestCostEstimatorShortText(t *testing.T) {
	est := NewCostEstimator("", 0)

	assert.Equal(t, 0, est.EstimateText("").Tokens)
	assert.Equal(t, 1, est.EstimateText("ab").Tokens, "non-empty text costs at least one token")
}
