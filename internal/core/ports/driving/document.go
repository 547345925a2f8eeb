package driving

import (
	"context"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
)

// UpsertRequest carries the raw tool parameters of a document upsert.
// String-encoded structured fields (ProcessRuleJSON, MetadataJSON) are
// validated once inside the workflow, not by the caller.
type UpsertRequest struct {
	DatasetID         string
	Name              string
	Text              string
	IndexingTechnique string
	DocForm           string
	DocLanguage       string
	ProcessRuleJSON   string
	MetadataJSON      string
}

// MetadataAssignment reports the outcome of the post-write metadata call.
// A failed assignment never fails the document write it follows.
type MetadataAssignment struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UpsertResult is the composed outcome of a document upsert.
type UpsertResult struct {
	// Operation records whether the workflow created or updated.
	Operation domain.WriteOutcome

	// DocumentID is the resulting document id, from the write response or
	// carried over from name resolution.
	DocumentID string

	// Batch is the indexing batch identifier, when the remote returned one.
	Batch string

	// Summary is the human-readable multi-line outcome description.
	Summary string

	// Payload is the raw write response, annotated with the operation and
	// any metadata assignment outcome.
	Payload map[string]any

	// MetadataRequested is true when the request carried a metadata list.
	MetadataRequested bool

	// Metadata is the assignment outcome, nil when none was attempted.
	Metadata *MetadataAssignment
}

// DocumentService manages documents within a dataset.
type DocumentService interface {
	// UpsertByText creates a document, or updates the first document whose
	// name matches exactly, from text content.
	UpsertByText(ctx context.Context, req UpsertRequest) (*UpsertResult, error)

	// List returns one page of documents, optionally filtered by keyword.
	List(ctx context.Context, datasetID, keyword string, page, limit int) (map[string]any, error)

	// Delete removes a document.
	Delete(ctx context.Context, datasetID, documentID string) (map[string]any, error)

	// IndexingStatus reports embedding progress for a creation batch.
	IndexingStatus(ctx context.Context, datasetID, batch string) (map[string]any, error)
}
