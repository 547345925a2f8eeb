package services

import (
	"strings"
	"unicode/utf8"

	"github.com/tidemark-labs/kbridge/internal/core/ports/driving"
)

// DefaultEmbeddingModel is assumed when no model is configured.
const DefaultEmbeddingModel = "text-embedding-ada-002"

// fallbackCostPer1MTokensUSD covers models missing from the price table.
const fallbackCostPer1MTokensUSD = 0.10

// embeddingCosts maps model names to USD per million tokens.
var embeddingCosts = map[string]float64{
	"text-embedding-ada-002":  0.10,
	"text-embedding-3-small":  0.02,
	"text-embedding-3-large":  0.13,
	"embed-english-v3.0":      0.10,
	"embed-multilingual-v3.0": 0.10,
	"voyage-large-2":          0.12,
	"voyage-code-2":           0.12,
}

// Ensure CostEstimator implements the interface.
var _ driving.CostEstimator = (*CostEstimator)(nil)

// CostEstimator projects embedding costs from text length. Token counts are
// approximated at four characters per token, which tracks English prose
// closely enough for a pre-indexing estimate.
type CostEstimator struct {
	model     string
	costPer1M float64
}

// NewCostEstimator creates an estimator for the given embedding model.
// customCostPer1M overrides the built-in price table when positive.
func NewCostEstimator(model string, customCostPer1M float64) *CostEstimator {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultEmbeddingModel
	}

	cost := customCostPer1M
	if cost <= 0 {
		var ok bool
		cost, ok = embeddingCosts[model]
		if !ok {
			cost = fallbackCostPer1MTokensUSD
		}
	}
	return &CostEstimator{model: model, costPer1M: cost}
}

// EstimateText estimates the cost of embedding the given text.
func (e *CostEstimator) EstimateText(text string) driving.CostEstimate {
	tokens := utf8.RuneCountInString(text) / 4
	if tokens == 0 && text != "" {
		tokens = 1
	}
	return driving.CostEstimate{
		Tokens:             tokens,
		TokensIsEstimated:  true,
		CostUSD:            float64(tokens) / 1_000_000 * e.costPer1M,
		EmbeddingModel:     e.model,
		CostPer1MTokensUSD: e.costPer1M,
	}
}
