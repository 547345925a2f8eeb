package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driving"
)

// resultText extracts the single text block of a tool result.
func resultText(res *mcp.CallToolResult) string {
	if res == nil || len(res.Content) == 0 {
		return ""
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		return ""
	}
	return text.Text
}

type mockDatasetService struct {
	payload map[string]any
	err     error

	lastName       string
	lastPermission string
}

func (m *mockDatasetService) Create(_ context.Context, name, permission string) (map[string]any, error) {
	m.lastName, m.lastPermission = name, permission
	return m.payload, m.err
}

func (m *mockDatasetService) List(context.Context, int, int) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockDatasetService) Delete(context.Context, string) (map[string]any, error) {
	return m.payload, m.err
}

type mockDocumentService struct {
	result  *driving.UpsertResult
	payload map[string]any
	err     error

	lastUpsert driving.UpsertRequest
}

func (m *mockDocumentService) UpsertByText(_ context.Context, req driving.UpsertRequest) (*driving.UpsertResult, error) {
	m.lastUpsert = req
	return m.result, m.err
}

func (m *mockDocumentService) List(context.Context, string, string, int, int) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockDocumentService) Delete(context.Context, string, string) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockDocumentService) IndexingStatus(context.Context, string, string) (map[string]any, error) {
	return m.payload, m.err
}

type mockSegmentService struct {
	payload map[string]any
	err     error

	lastUpdate domain.SegmentUpdate
}

func (m *mockSegmentService) Add(context.Context, string, string, string, string, []string) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockSegmentService) List(context.Context, string, string) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockSegmentService) Get(context.Context, string, string, string) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockSegmentService) Update(_ context.Context, _, _, _ string, update domain.SegmentUpdate) (map[string]any, error) {
	m.lastUpdate = update
	return m.payload, m.err
}

func (m *mockSegmentService) Delete(context.Context, string, string, string) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockSegmentService) ListChildren(context.Context, string, string, string, string, int, int) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockSegmentService) CreateChild(context.Context, string, string, string, string) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockSegmentService) UpdateChild(context.Context, string, string, string, string, string) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockSegmentService) DeleteChild(context.Context, string, string, string, string) (map[string]any, error) {
	return m.payload, m.err
}

type mockMetadataService struct {
	payload map[string]any
	err     error

	lastAssignName  string
	lastAssignValue any
}

func (m *mockMetadataService) AddField(context.Context, string, string, string) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockMetadataService) UpdateField(context.Context, string, string, string) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockMetadataService) DeleteField(context.Context, string, string) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockMetadataService) List(context.Context, string) (map[string]any, error) {
	return m.payload, m.err
}

func (m *mockMetadataService) AssignToDocument(_ context.Context, _, _, _, name string, value any) (map[string]any, error) {
	m.lastAssignName, m.lastAssignValue = name, value
	return m.payload, m.err
}

type mockRetrievalService struct {
	payload map[string]any
	err     error

	lastQuery domain.RetrievalQuery
}

func (m *mockRetrievalService) Retrieve(_ context.Context, _ string, query domain.RetrievalQuery) (map[string]any, error) {
	m.lastQuery = query
	return m.payload, m.err
}

type mockCostEstimator struct {
	estimate driving.CostEstimate
}

func (m *mockCostEstimator) EstimateText(string) driving.CostEstimate {
	return m.estimate
}

// fullPorts returns a Ports value with every required service mocked.
func fullPorts() *Ports {
	return &Ports{
		Dataset:   &mockDatasetService{},
		Document:  &mockDocumentService{},
		Segment:   &mockSegmentService{},
		Metadata:  &mockMetadataService{},
		Retrieval: &mockRetrievalService{},
	}
}
