package domain

// Dataset represents a remote knowledge base: a named collection of documents.
type Dataset struct {
	// ID is the remote identifier of the knowledge base.
	ID string `json:"id"`

	// Name is the human-readable name.
	Name string `json:"name"`

	// Permission is the access setting ("only_me" or "all_team_members").
	Permission string `json:"permission,omitempty"`

	// DocumentCount is the number of documents in the dataset.
	DocumentCount int `json:"document_count,omitempty"`

	// WordCount is the total word count across documents.
	WordCount int `json:"word_count,omitempty"`
}

// Document is a unit of ingested text within a dataset. The remote service
// owns its lifecycle (created, indexed, enabled); we only issue commands and
// report the service's response.
type Document struct {
	// ID is the remote identifier of the document.
	ID string `json:"id"`

	// Name is the document name. The remote service does not enforce
	// uniqueness within a dataset.
	Name string `json:"name"`

	// IndexingStatus reports the remote indexing state, when present.
	IndexingStatus string `json:"indexing_status,omitempty"`

	// Enabled reports whether the document participates in retrieval.
	Enabled bool `json:"enabled,omitempty"`
}

// WriteOutcome records which write operation a document upsert performed.
type WriteOutcome string

const (
	// OutcomeCreate means a new document was created.
	OutcomeCreate WriteOutcome = "create"

	// OutcomeUpdate means an existing document was updated in place.
	OutcomeUpdate WriteOutcome = "update"
)

// Segment is an indexed unit of a document's text (a chunk), optionally
// split further into child chunks.
type Segment struct {
	ID       string   `json:"id"`
	Position int      `json:"position,omitempty"`
	Content  string   `json:"content"`
	Answer   string   `json:"answer,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Enabled  bool     `json:"enabled,omitempty"`
}

// SegmentUpdate carries the optional fields of a chunk update. Nil fields
// are omitted from the request so the remote keeps the current value.
type SegmentUpdate struct {
	Content  *string
	Answer   *string
	Keywords []string
	Enabled  *bool
}

// IsEmpty reports whether the update carries no field at all.
func (u SegmentUpdate) IsEmpty() bool {
	return u.Content == nil && u.Answer == nil && u.Keywords == nil && u.Enabled == nil
}

// ChildChunk is a sub-chunk under a parent segment in hierarchical mode.
type ChildChunk struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// MetadataField describes a metadata field defined on a dataset.
type MetadataField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// RetrievalQuery describes a chunk retrieval request against a dataset.
type RetrievalQuery struct {
	Query                 string
	SearchMethod          string
	TopK                  int
	ScoreThresholdEnabled bool
	ScoreThreshold        *float64
	RerankingEnable       bool
	RerankingProviderName string
	RerankingModelName    string
}

const (
	// DefaultSearchMethod is used when a retrieval request names no method.
	DefaultSearchMethod = "keyword_search"

	// DefaultTopK is the retrieval result count when none is given.
	DefaultTopK = 5
)
