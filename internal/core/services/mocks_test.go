package services

import (
	"context"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
)

// mockStore implements driven.KnowledgeStore with overridable behaviour per
// method. Unset methods return an empty payload. Calls are recorded so tests
// can assert on call shapes and ordering.
type mockStore struct {
	createDatasetFn func(ctx context.Context, name, permission string) (map[string]any, error)
	listDatasetsFn  func(ctx context.Context, page, limit int) (map[string]any, error)
	deleteDatasetFn func(ctx context.Context, datasetID string) (map[string]any, error)

	createDocumentFn func(ctx context.Context, datasetID string, req driven.DocumentRequest) (map[string]any, error)
	updateDocumentFn func(ctx context.Context, datasetID, documentID string, req driven.DocumentRequest) (map[string]any, error)
	listDocumentsFn  func(ctx context.Context, datasetID, keyword string, page, limit int) (map[string]any, error)
	deleteDocumentFn func(ctx context.Context, datasetID, documentID string) (map[string]any, error)
	indexingStatusFn func(ctx context.Context, datasetID, batch string) (map[string]any, error)

	addSegmentsFn   func(ctx context.Context, datasetID, documentID string, segments []driven.SegmentPayload) (map[string]any, error)
	listSegmentsFn  func(ctx context.Context, datasetID, documentID string) (map[string]any, error)
	getSegmentFn    func(ctx context.Context, datasetID, documentID, segmentID string) (map[string]any, error)
	updateSegmentFn func(ctx context.Context, datasetID, documentID, segmentID string, update domain.SegmentUpdate) (map[string]any, error)
	deleteSegmentFn func(ctx context.Context, datasetID, documentID, segmentID string) (map[string]any, error)

	listChildChunksFn  func(ctx context.Context, datasetID, documentID, segmentID, keyword string, page, limit int) (map[string]any, error)
	createChildChunkFn func(ctx context.Context, datasetID, documentID, segmentID, content string) (map[string]any, error)
	updateChildChunkFn func(ctx context.Context, datasetID, documentID, segmentID, childChunkID, content string) (map[string]any, error)
	deleteChildChunkFn func(ctx context.Context, datasetID, documentID, segmentID, childChunkID string) (map[string]any, error)

	addMetadataFieldFn    func(ctx context.Context, datasetID, name, fieldType string) (map[string]any, error)
	updateMetadataFieldFn func(ctx context.Context, datasetID, metadataID, name string) (map[string]any, error)
	deleteMetadataFieldFn func(ctx context.Context, datasetID, metadataID string) (map[string]any, error)
	listMetadataFn        func(ctx context.Context, datasetID string) (map[string]any, error)
	assignMetadataFn      func(ctx context.Context, datasetID string, operations []driven.MetadataOperation) (map[string]any, error)

	retrieveFn func(ctx context.Context, datasetID string, query domain.RetrievalQuery) (map[string]any, error)

	validateCredentialsFn func(ctx context.Context) error

	// recorded call shapes
	createDocumentCalls []driven.DocumentRequest
	updateDocumentCalls []struct {
		DocumentID string
		Request    driven.DocumentRequest
	}
	listDocumentCalls []struct {
		Keyword     string
		Page, Limit int
	}
	assignMetadataCalls [][]driven.MetadataOperation
}

var _ driven.KnowledgeStore = (*mockStore)(nil)

func emptyPayload() (map[string]any, error) { return map[string]any{}, nil }

func (m *mockStore) CreateDataset(ctx context.Context, name, permission string) (map[string]any, error) {
	if m.createDatasetFn != nil {
		return m.createDatasetFn(ctx, name, permission)
	}
	return emptyPayload()
}

func (m *mockStore) ListDatasets(ctx context.Context, page, limit int) (map[string]any, error) {
	if m.listDatasetsFn != nil {
		return m.listDatasetsFn(ctx, page, limit)
	}
	return emptyPayload()
}

func (m *mockStore) DeleteDataset(ctx context.Context, datasetID string) (map[string]any, error) {
	if m.deleteDatasetFn != nil {
		return m.deleteDatasetFn(ctx, datasetID)
	}
	return emptyPayload()
}

func (m *mockStore) CreateDocumentByText(ctx context.Context, datasetID string, req driven.DocumentRequest) (map[string]any, error) {
	m.createDocumentCalls = append(m.createDocumentCalls, req)
	if m.createDocumentFn != nil {
		return m.createDocumentFn(ctx, datasetID, req)
	}
	return emptyPayload()
}

func (m *mockStore) UpdateDocumentByText(ctx context.Context, datasetID, documentID string, req driven.DocumentRequest) (map[string]any, error) {
	m.updateDocumentCalls = append(m.updateDocumentCalls, struct {
		DocumentID string
		Request    driven.DocumentRequest
	}{documentID, req})
	if m.updateDocumentFn != nil {
		return m.updateDocumentFn(ctx, datasetID, documentID, req)
	}
	return emptyPayload()
}

func (m *mockStore) ListDocuments(ctx context.Context, datasetID, keyword string, page, limit int) (map[string]any, error) {
	m.listDocumentCalls = append(m.listDocumentCalls, struct {
		Keyword     string
		Page, Limit int
	}{keyword, page, limit})
	if m.listDocumentsFn != nil {
		return m.listDocumentsFn(ctx, datasetID, keyword, page, limit)
	}
	return emptyPayload()
}

func (m *mockStore) DeleteDocument(ctx context.Context, datasetID, documentID string) (map[string]any, error) {
	if m.deleteDocumentFn != nil {
		return m.deleteDocumentFn(ctx, datasetID, documentID)
	}
	return emptyPayload()
}

func (m *mockStore) IndexingStatus(ctx context.Context, datasetID, batch string) (map[string]any, error) {
	if m.indexingStatusFn != nil {
		return m.indexingStatusFn(ctx, datasetID, batch)
	}
	return emptyPayload()
}

func (m *mockStore) AddSegments(ctx context.Context, datasetID, documentID string, segments []driven.SegmentPayload) (map[string]any, error) {
	if m.addSegmentsFn != nil {
		return m.addSegmentsFn(ctx, datasetID, documentID, segments)
	}
	return emptyPayload()
}

func (m *mockStore) ListSegments(ctx context.Context, datasetID, documentID string) (map[string]any, error) {
	if m.listSegmentsFn != nil {
		return m.listSegmentsFn(ctx, datasetID, documentID)
	}
	return emptyPayload()
}

func (m *mockStore) GetSegment(ctx context.Context, datasetID, documentID, segmentID string) (map[string]any, error) {
	if m.getSegmentFn != nil {
		return m.getSegmentFn(ctx, datasetID, documentID, segmentID)
	}
	return emptyPayload()
}

func (m *mockStore) UpdateSegment(ctx context.Context, datasetID, documentID, segmentID string, update domain.SegmentUpdate) (map[string]any, error) {
	if m.updateSegmentFn != nil {
		return m.updateSegmentFn(ctx, datasetID, documentID, segmentID, update)
	}
	return emptyPayload()
}

func (m *mockStore) DeleteSegment(ctx context.Context, datasetID, documentID, segmentID string) (map[string]any, error) {
	if m.deleteSegmentFn != nil {
		return m.deleteSegmentFn(ctx, datasetID, documentID, segmentID)
	}
	return emptyPayload()
}

func (m *mockStore) ListChildChunks(ctx context.Context, datasetID, documentID, segmentID, keyword string, page, limit int) (map[string]any, error) {
	if m.listChildChunksFn != nil {
		return m.listChildChunksFn(ctx, datasetID, documentID, segmentID, keyword, page, limit)
	}
	return emptyPayload()
}

func (m *mockStore) CreateChildChunk(ctx context.Context, datasetID, documentID, segmentID, content string) (map[string]any, error) {
	if m.createChildChunkFn != nil {
		return m.createChildChunkFn(ctx, datasetID, documentID, segmentID, content)
	}
	return emptyPayload()
}

func (m *mockStore) UpdateChildChunk(ctx context.Context, datasetID, documentID, segmentID, childChunkID, content string) (map[string]any, error) {
	if m.updateChildChunkFn != nil {
		return m.updateChildChunkFn(ctx, datasetID, documentID, segmentID, childChunkID, content)
	}
	return emptyPayload()
}

func (m *mockStore) DeleteChildChunk(ctx context.Context, datasetID, documentID, segmentID, childChunkID string) (map[string]any, error) {
	if m.deleteChildChunkFn != nil {
		return m.deleteChildChunkFn(ctx, datasetID, documentID, segmentID, childChunkID)
	}
	return emptyPayload()
}

func (m *mockStore) AddMetadataField(ctx context.Context, datasetID, name, fieldType string) (map[string]any, error) {
	if m.addMetadataFieldFn != nil {
		return m.addMetadataFieldFn(ctx, datasetID, name, fieldType)
	}
	return emptyPayload()
}

func (m *mockStore) UpdateMetadataField(ctx context.Context, datasetID, metadataID, name string) (map[string]any, error) {
	if m.updateMetadataFieldFn != nil {
		return m.updateMetadataFieldFn(ctx, datasetID, metadataID, name)
	}
	return emptyPayload()
}

func (m *mockStore) DeleteMetadataField(ctx context.Context, datasetID, metadataID string) (map[string]any, error) {
	if m.deleteMetadataFieldFn != nil {
		return m.deleteMetadataFieldFn(ctx, datasetID, metadataID)
	}
	return emptyPayload()
}

func (m *mockStore) ListMetadata(ctx context.Context, datasetID string) (map[string]any, error) {
	if m.listMetadataFn != nil {
		return m.listMetadataFn(ctx, datasetID)
	}
	return emptyPayload()
}

func (m *mockStore) AssignDocumentMetadata(ctx context.Context, datasetID string, operations []driven.MetadataOperation) (map[string]any, error) {
	m.assignMetadataCalls = append(m.assignMetadataCalls, operations)
	if m.assignMetadataFn != nil {
		return m.assignMetadataFn(ctx, datasetID, operations)
	}
	return emptyPayload()
}

func (m *mockStore) Retrieve(ctx context.Context, datasetID string, query domain.RetrievalQuery) (map[string]any, error) {
	if m.retrieveFn != nil {
		return m.retrieveFn(ctx, datasetID, query)
	}
	return emptyPayload()
}

func (m *mockStore) ValidateCredentials(ctx context.Context) error {
	if m.validateCredentialsFn != nil {
		return m.validateCredentialsFn(ctx)
	}
	return nil
}
