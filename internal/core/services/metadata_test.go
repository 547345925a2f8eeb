package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
)

func TestMetadataAddField(t *testing.T) {
	t.Run("requires name", func(t *testing.T) {
		svc := NewMetadataService(&mockStore{})
		_, err := svc.AddField(context.Background(), "ds", "", "string")
		assert.ErrorIs(t, err, domain.ErrMissingParameter)
	})

	t.Run("defaults field type", func(t *testing.T) {
		var gotType string
		store := &mockStore{
			addMetadataFieldFn: func(_ context.Context, _, _, fieldType string) (map[string]any, error) {
				gotType = fieldType
				return map[string]any{}, nil
			},
		}
		svc := NewMetadataService(store)

		_, err := svc.AddField(context.Background(), "ds", "author", "")
		require.NoError(t, err)
		assert.Equal(t, "string", gotType)
	})
}

func TestMetadataUpdateFieldRequiresName(t *testing.T) {
	svc := NewMetadataService(&mockStore{})
	_, err := svc.UpdateField(context.Background(), "ds", "m1", "")
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}

func TestMetadataDeleteFieldRequiresID(t *testing.T) {
	svc := NewMetadataService(&mockStore{})
	_, err := svc.DeleteField(context.Background(), "ds", "")
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}

func TestMetadataAssignToDocument(t *testing.T) {
	store := &mockStore{}
	svc := NewMetadataService(store)

	_, err := svc.AssignToDocument(context.Background(), "ds", "doc-1", "m1", "author", "ada")
	require.NoError(t, err)

	require.Len(t, store.assignMetadataCalls, 1)
	ops := store.assignMetadataCalls[0]
	require.Len(t, ops, 1)
	assert.Equal(t, driven.MetadataOperation{
		DocumentID: "doc-1",
		MetadataList: []domain.MetadataItem{
			{ID: "m1", Name: "author", Value: "ada"},
		},
	}, ops[0])
}

func TestMetadataAssignToDocumentGuards(t *testing.T) {
	svc := NewMetadataService(&mockStore{})
	ctx := context.Background()

	_, err := svc.AssignToDocument(ctx, "", "doc", "m1", "author", "x")
	assert.ErrorIs(t, err, domain.ErrMissingParameter)

	_, err = svc.AssignToDocument(ctx, "ds", "doc", "m1", "", "x")
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}
