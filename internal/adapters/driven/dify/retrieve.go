package dify

import (
	"context"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
)

// Retrieve searches chunks in a dataset. The retrieval model mirrors the
// remote API's shape, including the always-present reranking block.
func (c *Client) Retrieve(
	ctx context.Context, datasetID string, query domain.RetrievalQuery,
) (map[string]any, error) {
	retrievalModel := map[string]any{
		"search_method":    query.SearchMethod,
		"reranking_enable": query.RerankingEnable,
		"reranking_mode":   nil,
		"reranking_model": map[string]any{
			"reranking_provider_name": query.RerankingProviderName,
			"reranking_model_name":    query.RerankingModelName,
		},
		"weights":                 nil,
		"top_k":                   query.TopK,
		"score_threshold_enabled": query.ScoreThresholdEnabled,
		"score_threshold":         query.ScoreThreshold,
	}

	body := map[string]any{
		"query":           query.Query,
		"retrieval_model": retrievalModel,
	}
	return c.post(ctx, "/datasets/"+datasetID+"/retrieve", body)
}
