package mcp

import (
	"github.com/tidemark-labs/kbridge/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Dataset manages remote knowledge bases.
	Dataset driving.DatasetService

	// Document manages documents within a dataset.
	Document driving.DocumentService

	// Segment manages chunks and child chunks.
	Segment driving.SegmentService

	// Metadata manages metadata fields and per-document values.
	Metadata driving.MetadataService

	// Retrieval searches chunks within a dataset.
	Retrieval driving.RetrievalService

	// Cost estimates embedding costs before indexing. Optional; when nil,
	// document creation summaries omit the cost line.
	Cost driving.CostEstimator
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Dataset == nil {
		return ErrMissingDatasetService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	if p.Segment == nil {
		return ErrMissingSegmentService
	}
	if p.Metadata == nil {
		return ErrMissingMetadataService
	}
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	return nil
}
