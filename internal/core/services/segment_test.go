package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
)

func strPtr(s string) *string { return &s }

func TestSegmentAdd(t *testing.T) {
	t.Run("requires content", func(t *testing.T) {
		svc := NewSegmentService(&mockStore{})
		_, err := svc.Add(context.Background(), "ds", "doc", "", "", nil)
		assert.ErrorIs(t, err, domain.ErrMissingParameter)
	})

	t.Run("wraps content in a single segment", func(t *testing.T) {
		var gotSegments []driven.SegmentPayload
		store := &mockStore{
			addSegmentsFn: func(_ context.Context, _, _ string, segments []driven.SegmentPayload) (map[string]any, error) {
				gotSegments = segments
				return map[string]any{}, nil
			},
		}
		svc := NewSegmentService(store)

		_, err := svc.Add(context.Background(), "ds", "doc", "chunk body", "answer", []string{"go", "docs"})
		require.NoError(t, err)
		require.Len(t, gotSegments, 1)
		assert.Equal(t, "chunk body", gotSegments[0].Content)
		assert.Equal(t, "answer", gotSegments[0].Answer)
		assert.Equal(t, []string{"go", "docs"}, gotSegments[0].Keywords)
	})
}

func TestSegmentUpdateRejectsEmptyUpdate(t *testing.T) {
	svc := NewSegmentService(&mockStore{})

	_, err := svc.Update(context.Background(), "ds", "doc", "seg", domain.SegmentUpdate{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "at least one")
}

func TestSegmentUpdatePassesFields(t *testing.T) {
	var gotUpdate domain.SegmentUpdate
	store := &mockStore{
		updateSegmentFn: func(_ context.Context, _, _, _ string, update domain.SegmentUpdate) (map[string]any, error) {
			gotUpdate = update
			return map[string]any{}, nil
		},
	}
	svc := NewSegmentService(store)

	enabled := false
	_, err := svc.Update(context.Background(), "ds", "doc", "seg", domain.SegmentUpdate{
		Content: strPtr("new body"),
		Enabled: &enabled,
	})
	require.NoError(t, err)
	require.NotNil(t, gotUpdate.Content)
	assert.Equal(t, "new body", *gotUpdate.Content)
	require.NotNil(t, gotUpdate.Enabled)
	assert.False(t, *gotUpdate.Enabled)
	assert.Nil(t, gotUpdate.Answer)
}

func TestSegmentIDGuards(t *testing.T) {
	svc := NewSegmentService(&mockStore{})
	ctx := context.Background()

	_, err := svc.List(ctx, "", "doc")
	assert.ErrorIs(t, err, domain.ErrMissingParameter)

	_, err = svc.Get(ctx, "ds", "doc", "")
	assert.ErrorIs(t, err, domain.ErrMissingParameter)

	_, err = svc.Delete(ctx, "ds", "", "seg")
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}

func TestChildChunkOperations(t *testing.T) {
	t.Run("list applies paging defaults", func(t *testing.T) {
		var gotPage, gotLimit int
		store := &mockStore{
			listChildChunksFn: func(_ context.Context, _, _, _, _ string, page, limit int) (map[string]any, error) {
				gotPage, gotLimit = page, limit
				return map[string]any{}, nil
			},
		}
		svc := NewSegmentService(store)

		_, err := svc.ListChildren(context.Background(), "ds", "doc", "seg", "", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, gotPage)
		assert.Equal(t, 20, gotLimit)
	})

	t.Run("create requires content", func(t *testing.T) {
		svc := NewSegmentService(&mockStore{})
		_, err := svc.CreateChild(context.Background(), "ds", "doc", "seg", "")
		assert.ErrorIs(t, err, domain.ErrMissingParameter)
	})

	t.Run("update requires child chunk id", func(t *testing.T) {
		svc := NewSegmentService(&mockStore{})
		_, err := svc.UpdateChild(context.Background(), "ds", "doc", "seg", "", "body")
		assert.ErrorIs(t, err, domain.ErrMissingParameter)
	})

	t.Run("delete passes ids through", func(t *testing.T) {
		var gotChild string
		store := &mockStore{
			deleteChildChunkFn: func(_ context.Context, _, _, _, childChunkID string) (map[string]any, error) {
				gotChild = childChunkID
				return map[string]any{}, nil
			},
		}
		svc := NewSegmentService(store)

		_, err := svc.DeleteChild(context.Background(), "ds", "doc", "seg", "child-1")
		require.NoError(t, err)
		assert.Equal(t, "child-1", gotChild)
	})
}
