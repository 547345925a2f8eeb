package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil ports return errors", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingDatasetService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(fullPorts())
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("cost estimator is optional", func(t *testing.T) {
		ports := fullPorts()
		ports.Cost = nil
		_, err := NewServer(ports)
		assert.NoError(t, err)
	})
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Ports)
		wantErr error
	}{
		{"missing dataset", func(p *Ports) { p.Dataset = nil }, ErrMissingDatasetService},
		{"missing document", func(p *Ports) { p.Document = nil }, ErrMissingDocumentService},
		{"missing segment", func(p *Ports) { p.Segment = nil }, ErrMissingSegmentService},
		{"missing metadata", func(p *Ports) { p.Metadata = nil }, ErrMissingMetadataService},
		{"missing retrieval", func(p *Ports) { p.Retrieval = nil }, ErrMissingRetrievalService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports := fullPorts()
			tt.mutate(ports)
			assert.ErrorIs(t, ports.Validate(), tt.wantErr)
		})
	}

	t.Run("all ports is valid", func(t *testing.T) {
		assert.NoError(t, fullPorts().Validate())
	})
}
