package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driving"
	"github.com/tidemark-labs/kbridge/internal/logger"
)

const (
	// DefaultAssignDelay is the pause before metadata assignment, giving
	// the remote time to register a freshly created document. A single
	// wait, fire-once; not a poll.
	DefaultAssignDelay = time.Second

	// resolveLimit is the page size of the name-resolution lookup.
	resolveLimit = 100
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages documents within a dataset. Its central workflow
// is UpsertByText: validate, resolve by name, create or update, then
// optionally assign metadata.
type DocumentService struct {
	store driven.KnowledgeStore

	// assignDelay is overridable so tests do not sleep.
	assignDelay time.Duration
}

// NewDocumentService creates a new document service.
func NewDocumentService(store driven.KnowledgeStore) *DocumentService {
	return &DocumentService{
		store:       store,
		assignDelay: DefaultAssignDelay,
	}
}

// UpsertByText creates a document from text, or updates the first document
// whose name matches exactly. The decision is a single lookup-then-branch;
// the remote service does not enforce name uniqueness and neither do we.
func (s *DocumentService) UpsertByText(ctx context.Context, req driving.UpsertRequest) (*driving.UpsertResult, error) {
	if req.DatasetID == "" {
		return nil, fmt.Errorf("%w: dataset_id", domain.ErrMissingParameter)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name", domain.ErrMissingParameter)
	}
	if req.Text == "" {
		return nil, fmt.Errorf("%w: text", domain.ErrMissingParameter)
	}

	rule, err := domain.ParseProcessRule(req.ProcessRuleJSON)
	if err != nil {
		return nil, err
	}

	metadata, err := domain.ParseMetadataList(req.MetadataJSON)
	if err != nil {
		return nil, err
	}

	existingID, err := s.resolveDocumentID(ctx, req.DatasetID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing documents: %w", err)
	}

	body := driven.DocumentRequest{
		Name:              req.Name,
		Text:              req.Text,
		IndexingTechnique: domain.ResolveIndexingTechnique(req.IndexingTechnique),
		DocForm:           req.DocForm,
		DocLanguage:       req.DocLanguage,
		ProcessRule:       rule,
	}

	var (
		operation domain.WriteOutcome
		payload   map[string]any
	)
	if existingID != "" {
		operation = domain.OutcomeUpdate
		payload, err = s.store.UpdateDocumentByText(ctx, req.DatasetID, existingID, body)
	} else {
		operation = domain.OutcomeCreate
		payload, err = s.store.CreateDocumentByText(ctx, req.DatasetID, body)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to %s document: %w", operation, err)
	}
	if payload == nil {
		payload = map[string]any{}
	}
	payload["operation"] = string(operation)

	// Prefer the id embedded in the response's document object; some
	// update responses omit it, in which case the resolved id stands.
	documentID := nestedString(payload, "document", "id")
	if documentID == "" && existingID != "" {
		documentID = existingID
		if _, ok := payload["document"]; !ok {
			payload["document"] = map[string]any{"id": existingID}
		}
	}

	result := &driving.UpsertResult{
		Operation:         operation,
		DocumentID:        documentID,
		Batch:             stringField(payload, "batch"),
		Payload:           payload,
		MetadataRequested: len(metadata) > 0,
	}

	if len(metadata) > 0 && documentID != "" {
		// Give the remote a moment to register a new document before
		// attaching metadata to it.
		if s.assignDelay > 0 {
			time.Sleep(s.assignDelay)
		}
		result.Metadata = s.assignMetadata(ctx, req.DatasetID, documentID, metadata)
		payload["metadata_assignment"] = map[string]any{
			"success": result.Metadata.Success,
			"message": result.Metadata.Message,
		}
	}

	result.Summary = composeUpsertSummary(req.Name, result)
	return result, nil
}

// resolveDocumentID finds a document id by exact name match, scanning the
// first page of a keyword-filtered listing in the order received.
func (s *DocumentService) resolveDocumentID(ctx context.Context, datasetID, name string) (string, error) {
	payload, err := s.store.ListDocuments(ctx, datasetID, name, 1, resolveLimit)
	if err != nil {
		return "", err
	}

	entries, ok := payload["data"].([]any)
	if !ok {
		return "", nil
	}
	for _, entry := range entries {
		doc, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if doc["name"] != name {
			continue
		}
		if id, ok := doc["id"].(string); ok && id != "" {
			return id, nil
		}
	}
	return "", nil
}

// assignMetadata attaches the metadata list to a document. It never fails
// the surrounding upsert: problems are reported in the returned outcome so
// a successful document write is not misreported as failed.
func (s *DocumentService) assignMetadata(
	ctx context.Context, datasetID, documentID string, metadata []domain.MetadataItem,
) *driving.MetadataAssignment {
	operations := []driven.MetadataOperation{{
		DocumentID:   documentID,
		MetadataList: metadata,
	}}

	if _, err := s.store.AssignDocumentMetadata(ctx, datasetID, operations); err != nil {
		logger.Warn("metadata assignment for document %s failed: %v", documentID, err)
		return &driving.MetadataAssignment{
			Success: false,
			Message: fmt.Sprintf("Metadata assignment failed: %v", err),
		}
	}
	return &driving.MetadataAssignment{
		Success: true,
		Message: "Metadata assigned successfully",
	}
}

// composeUpsertSummary builds the human-readable outcome line.
func composeUpsertSummary(name string, result *driving.UpsertResult) string {
	idDisplay := result.DocumentID
	if idDisplay == "" {
		idDisplay = "N/A"
	}

	parts := []string{
		fmt.Sprintf("Document '%s' %sd successfully.", name, result.Operation),
		fmt.Sprintf("ID: %s", idDisplay),
	}
	if result.Batch != "" {
		parts = append(parts, fmt.Sprintf("Batch: %s", result.Batch))
	}

	switch {
	case result.Metadata != nil && result.Metadata.Success:
		parts = append(parts, "Metadata assigned successfully.")
	case result.Metadata != nil:
		parts = append(parts, fmt.Sprintf("Metadata warning: %s", result.Metadata.Message))
	case result.MetadataRequested:
		parts = append(parts, "Warning: Metadata was provided but could not be assigned (no document ID).")
	}

	return strings.Join(parts, " ")
}

// List returns one page of documents, optionally filtered by keyword.
func (s *DocumentService) List(ctx context.Context, datasetID, keyword string, page, limit int) (map[string]any, error) {
	if datasetID == "" {
		return nil, fmt.Errorf("%w: dataset_id", domain.ErrMissingParameter)
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return s.store.ListDocuments(ctx, datasetID, keyword, page, limit)
}

// Delete removes a document.
func (s *DocumentService) Delete(ctx context.Context, datasetID, documentID string) (map[string]any, error) {
	if datasetID == "" {
		return nil, fmt.Errorf("%w: dataset_id", domain.ErrMissingParameter)
	}
	if documentID == "" {
		return nil, fmt.Errorf("%w: document_id", domain.ErrMissingParameter)
	}
	return s.store.DeleteDocument(ctx, datasetID, documentID)
}

// IndexingStatus reports embedding progress for a creation batch.
func (s *DocumentService) IndexingStatus(ctx context.Context, datasetID, batch string) (map[string]any, error) {
	if datasetID == "" {
		return nil, fmt.Errorf("%w: dataset_id", domain.ErrMissingParameter)
	}
	if batch == "" {
		return nil, fmt.Errorf("%w: batch", domain.ErrMissingParameter)
	}
	return s.store.IndexingStatus(ctx, datasetID, batch)
}

// nestedString extracts payload[outer][inner] when both levels exist.
func nestedString(payload map[string]any, outer, inner string) string {
	obj, ok := payload[outer].(map[string]any)
	if !ok {
		return ""
	}
	v, _ := obj[inner].(string)
	return v
}

// stringField extracts a top-level string field.
func stringField(payload map[string]any, key string) string {
	v, _ := payload[key].(string)
	return v
}
