package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
)

func TestRetrieveAppliesDefaults(t *testing.T) {
	var gotQuery domain.RetrievalQuery
	store := &mockStore{
		retrieveFn: func(_ context.Context, _ string, query domain.RetrievalQuery) (map[string]any, error) {
			gotQuery = query
			return map[string]any{"records": []any{}}, nil
		},
	}
	svc := NewRetrievalService(store)

	_, err := svc.Retrieve(context.Background(), "ds", domain.RetrievalQuery{Query: "golang"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSearchMethod, gotQuery.SearchMethod)
	assert.Equal(t, domain.DefaultTopK, gotQuery.TopK)
}

func TestRetrieveKeepsExplicitSettings(t *testing.T) {
	var gotQuery domain.RetrievalQuery
	store := &mockStore{
		retrieveFn: func(_ context.Context, _ string, query domain.RetrievalQuery) (map[string]any, error) {
			gotQuery = query
			return map[string]any{}, nil
		},
	}
	svc := NewRetrievalService(store)

	threshold := 0.6
	_, err := svc.Retrieve(context.Background(), "ds", domain.RetrievalQuery{
		Query:                 "golang",
		SearchMethod:          "semantic_search",
		TopK:                  12,
		ScoreThresholdEnabled: true,
		ScoreThreshold:        &threshold,
	})
	require.NoError(t, err)
	assert.Equal(t, "semantic_search", gotQuery.SearchMethod)
	assert.Equal(t, 12, gotQuery.TopK)
	require.NotNil(t, gotQuery.ScoreThreshold)
	assert.Equal(t, 0.6, *gotQuery.ScoreThreshold)
}

func TestRetrieveGuards(t *testing.T) {
	svc := NewRetrievalService(&mockStore{})
	ctx := context.Background()

	_, err := svc.Retrieve(ctx, "", domain.RetrievalQuery{Query: "x"})
	assert.ErrorIs(t, err, domain.ErrMissingParameter)

	_, err = svc.Retrieve(ctx, "ds", domain.RetrievalQuery{})
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}
