package driving

import (
	"context"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
)

// RetrievalService searches chunks within a dataset.
type RetrievalService interface {
	// Retrieve runs a retrieval query and returns the raw records payload.
	Retrieve(ctx context.Context, datasetID string, query domain.RetrievalQuery) (map[string]any, error)
}

// CostEstimate describes the projected embedding cost for a text.
type CostEstimate struct {
	Tokens             int     `json:"tokens"`
	TokensIsEstimated  bool    `json:"tokens_is_estimated"`
	CostUSD            float64 `json:"cost_usd"`
	EmbeddingModel     string  `json:"embedding_model"`
	CostPer1MTokensUSD float64 `json:"cost_per_1m_tokens_usd"`
}

// CostEstimator projects embedding costs before indexing.
type CostEstimator interface {
	// EstimateText estimates the cost of embedding the given text.
	EstimateText(text string) CostEstimate
}
