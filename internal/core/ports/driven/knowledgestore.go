package driven

import (
	"context"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
)

// DocumentRequest is the body of a create-by-text or update-by-text call.
type DocumentRequest struct {
	Name              string              `json:"name"`
	Text              string              `json:"text"`
	IndexingTechnique string              `json:"indexing_technique"`
	DocForm           string              `json:"doc_form,omitempty"`
	DocLanguage       string              `json:"doc_language,omitempty"`
	ProcessRule       *domain.ProcessRule `json:"process_rule,omitempty"`
}

// SegmentPayload is one segment of an add-chunks call.
type SegmentPayload struct {
	Content  string   `json:"content"`
	Answer   string   `json:"answer,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// MetadataOperation assigns a metadata list to one document.
type MetadataOperation struct {
	DocumentID   string                `json:"document_id"`
	MetadataList []domain.MetadataItem `json:"metadata_list"`
}

// KnowledgeStore is the driven port over the remote knowledge-base service.
// Responses are returned as decoded JSON payloads so tools can pass the
// remote's answer through unchanged; the remote service remains the source
// of truth for entity state.
type KnowledgeStore interface {
	// Dataset operations.
	CreateDataset(ctx context.Context, name, permission string) (map[string]any, error)
	ListDatasets(ctx context.Context, page, limit int) (map[string]any, error)
	DeleteDataset(ctx context.Context, datasetID string) (map[string]any, error)

	// Document operations.
	CreateDocumentByText(ctx context.Context, datasetID string, req DocumentRequest) (map[string]any, error)
	UpdateDocumentByText(ctx context.Context, datasetID, documentID string, req DocumentRequest) (map[string]any, error)
	ListDocuments(ctx context.Context, datasetID, keyword string, page, limit int) (map[string]any, error)
	DeleteDocument(ctx context.Context, datasetID, documentID string) (map[string]any, error)
	IndexingStatus(ctx context.Context, datasetID, batch string) (map[string]any, error)

	// Segment (chunk) operations.
	AddSegments(ctx context.Context, datasetID, documentID string, segments []SegmentPayload) (map[string]any, error)
	ListSegments(ctx context.Context, datasetID, documentID string) (map[string]any, error)
	GetSegment(ctx context.Context, datasetID, documentID, segmentID string) (map[string]any, error)
	UpdateSegment(ctx context.Context, datasetID, documentID, segmentID string, update domain.SegmentUpdate) (map[string]any, error)
	DeleteSegment(ctx context.Context, datasetID, documentID, segmentID string) (map[string]any, error)

	// Child chunk operations.
	ListChildChunks(ctx context.Context, datasetID, documentID, segmentID, keyword string, page, limit int) (map[string]any, error)
	CreateChildChunk(ctx context.Context, datasetID, documentID, segmentID, content string) (map[string]any, error)
	UpdateChildChunk(ctx context.Context, datasetID, documentID, segmentID, childChunkID, content string) (map[string]any, error)
	DeleteChildChunk(ctx context.Context, datasetID, documentID, segmentID, childChunkID string) (map[string]any, error)

	// Metadata field operations.
	AddMetadataField(ctx context.Context, datasetID, name, fieldType string) (map[string]any, error)
	UpdateMetadataField(ctx context.Context, datasetID, metadataID, name string) (map[string]any, error)
	DeleteMetadataField(ctx context.Context, datasetID, metadataID string) (map[string]any, error)
	ListMetadata(ctx context.Context, datasetID string) (map[string]any, error)
	AssignDocumentMetadata(ctx context.Context, datasetID string, operations []MetadataOperation) (map[string]any, error)

	// Retrieval.
	Retrieve(ctx context.Context, datasetID string, query domain.RetrievalQuery) (map[string]any, error)

	// ValidateCredentials performs a lightweight authenticated read to
	// check the configured key and base URL.
	ValidateCredentials(ctx context.Context) error
}
