package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tidemark-labs/kbridge/internal/core/domain"
	"github.com/tidemark-labs/kbridge/internal/core/ports/driving"
)

// CreateDocumentInput is the input schema for the create_document_by_text tool.
type CreateDocumentInput struct {
	DatasetID         string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	Name              string `json:"name" jsonschema:"the document name; an existing document with this exact name is updated instead of duplicated"`
	Text              string `json:"text" jsonschema:"the full document text"`
	IndexingTechnique string `json:"indexing_technique,omitempty" jsonschema:"high_quality or economy (default high_quality)"`
	DocForm           string `json:"doc_form,omitempty" jsonschema:"document form: text_model, hierarchical_model or qa_model"`
	DocLanguage       string `json:"doc_language,omitempty" jsonschema:"document language, e.g. English"`
	ProcessRule       string `json:"process_rule,omitempty" jsonschema:"JSON object describing the processing rule; blank means automatic"`
	Metadata          string `json:"metadata,omitempty" jsonschema:"JSON array of metadata items [{id, name, value}] to assign after the write"`
}

// ListDocumentsInput is the input schema for the list_documents tool.
type ListDocumentsInput struct {
	DatasetID string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	Keyword   string `json:"keyword,omitempty" jsonschema:"filter documents whose name contains this keyword"`
	Page      int    `json:"page,omitempty" jsonschema:"page number, starting at 1 (default 1)"`
	Limit     int    `json:"limit,omitempty" jsonschema:"page size (default 20)"`
}

// DeleteDocumentInput is the input schema for the delete_document tool.
type DeleteDocumentInput struct {
	DatasetID  string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	DocumentID string `json:"document_id" jsonschema:"the ID of the document to delete"`
}

// IndexingStatusInput is the input schema for the get_indexing_status tool.
type IndexingStatusInput struct {
	DatasetID string `json:"dataset_id" jsonschema:"the ID of the knowledge base"`
	Batch     string `json:"batch" jsonschema:"the batch identifier returned by document creation"`
}

func (s *Server) registerDocumentTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_document_by_text",
		Description: "Create a document from text, or update the document with the same name if one exists",
	}, s.handleCreateDocumentByText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List documents in a knowledge base with optional keyword filter",
	}, s.handleListDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "delete_document",
		Description: "Delete a document from a knowledge base",
	}, s.handleDeleteDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_indexing_status",
		Description: "Check the embedding progress of a document creation batch",
	}, s.handleIndexingStatus)
}

func (s *Server) handleCreateDocumentByText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateDocumentInput,
) (*mcp.CallToolResult, map[string]any, error) {
	result, err := s.ports.Document.UpsertByText(ctx, driving.UpsertRequest{
		DatasetID:         input.DatasetID,
		Name:              input.Name,
		Text:              input.Text,
		IndexingTechnique: input.IndexingTechnique,
		DocForm:           input.DocForm,
		DocLanguage:       input.DocLanguage,
		ProcessRuleJSON:   input.ProcessRule,
		MetadataJSON:      input.Metadata,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTimeout) {
			return errorResult("%v. The write timed out but may still be processing remotely; list the documents before retrying.", err), nil, nil
		}
		return errorResult("%v", err), nil, nil
	}

	summary := result.Summary
	if s.ports.Cost != nil {
		estimate := s.ports.Cost.EstimateText(input.Text)
		summary += fmt.Sprintf(" Estimated embedding cost: $%.6f (~%d tokens, %s at $%.2f/1M tokens).",
			estimate.CostUSD, estimate.Tokens, estimate.EmbeddingModel, estimate.CostPer1MTokensUSD)
	}

	return textResult(summary), result.Payload, nil
}

func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListDocumentsInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Document.List(ctx, input.DatasetID, input.Keyword, input.Page, input.Limit)
	if err != nil {
		return errorResult("Failed to list documents: %v", err), nil, nil
	}

	return textResult(pluralSummary(countIn(payload, "data"), "document")), payload, nil
}

func (s *Server) handleDeleteDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteDocumentInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Document.Delete(ctx, input.DatasetID, input.DocumentID)
	if err != nil {
		return errorResult("Failed to delete document: %v", err), nil, nil
	}

	return textResult("Document " + input.DocumentID + " deleted successfully."), payload, nil
}

func (s *Server) handleIndexingStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IndexingStatusInput,
) (*mcp.CallToolResult, map[string]any, error) {
	payload, err := s.ports.Document.IndexingStatus(ctx, input.DatasetID, input.Batch)
	if err != nil {
		return errorResult("Failed to get indexing status: %v", err), nil, nil
	}

	return textResult("Indexing status retrieved for batch " + input.Batch + "."), payload, nil
}
