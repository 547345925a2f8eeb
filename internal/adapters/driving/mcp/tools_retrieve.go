package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
)

// RetrieveChunksInput is the input schema for the retrieve_chunks tool.
type RetrieveChunksInput struct {
	DatasetID             string   `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	Query                 string   `json:"query" jsonschema:"the query text"`
	SearchMethod          string   `json:"search_method,omitempty" jsonschema:"keyword_search, semantic_search, full_text_search or hybrid_search (default keyword_search)"`
	TopK                  int      `json:"top_k,omitempty" jsonschema:"number of results to return (default 5)"`
	ScoreThresholdEnabled bool     `json:"score_threshold_enabled,omitempty" jsonschema:"whether to filter results by score"`
	ScoreThreshold        *float64 `json:"score_threshold,omitempty" jsonschema:"minimum relevance score when filtering is enabled"`
	RerankingEnable       bool     `json:"reranking_enable,omitempty" jsonschema:"whether to rerank results"`
	RerankingProviderName string   `json:"reranking_provider_name,omitempty" jsonschema:"the reranking model provider"`
	RerankingModelName    string   `json:"reranking_model_name,omitempty" jsonschema:"the reranking model name"`
}

func (s *Server) registerRetrievalTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "retrieve_chunks",
		Description: "Search chunks in a knowledge base",
	}, s.handleRetrieveChunks)
}

func (s *Server) handleRetrieveChunks(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RetrieveChunksInput,
) (*mcp.CallToolResult, map[string]any, error) {
	query := domain.RetrievalQuery{
		Query:                 input.Query,
		SearchMethod:          input.SearchMethod,
		TopK:                  input.TopK,
		ScoreThresholdEnabled: input.ScoreThresholdEnabled,
		ScoreThreshold:        input.ScoreThreshold,
		RerankingEnable:       input.RerankingEnable,
		RerankingProviderName: input.RerankingProviderName,
		RerankingModelName:    input.RerankingModelName,
	}

	payload, err := s.ports.Retrieval.Retrieve(ctx, input.DatasetID, query)
	if err != nil {
		return errorResult("Failed to retrieve chunks: %v", err), nil, nil
	}

	summary := fmt.Sprintf("Retrieved %d records for query '%s'.", countIn(payload, "records"), input.Query)
	return textResult(summary), payload, nil
}
