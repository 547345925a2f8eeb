package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Process rule modes accepted by the remote service.
const (
	ModeAutomatic    = "automatic"
	ModeCustom       = "custom"
	ModeHierarchical = "hierarchical"

	// ParentModeFullDoc is the hierarchical parent mode that uses the whole
	// document as the parent chunk. It lifts the max_tokens requirement.
	ParentModeFullDoc = "full-doc"
)

// DefaultIndexingTechnique is applied when a document request names none.
const DefaultIndexingTechnique = "high_quality"

// ProcessRule configures how a document's text is segmented during indexing.
type ProcessRule struct {
	// Mode is one of automatic, custom or hierarchical.
	Mode string `json:"mode"`

	// Rules is required for custom and hierarchical modes and ignored for
	// automatic mode.
	Rules *RuleSet `json:"rules,omitempty"`
}

// RuleSet holds the segmentation configuration for custom and hierarchical
// process rules.
type RuleSet struct {
	PreProcessingRules []PreProcessingRule `json:"pre_processing_rules"`
	Segmentation       *Segmentation       `json:"segmentation"`
	ParentMode         string              `json:"parent_mode,omitempty"`
}

// PreProcessingRule toggles a named text cleanup step.
type PreProcessingRule struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

// Segmentation controls how text is split into chunks. Pointer fields keep
// the absent/present distinction the validation rules depend on.
type Segmentation struct {
	Separator *string `json:"separator,omitempty"`
	MaxTokens *int    `json:"max_tokens,omitempty"`
}

// DefaultProcessRule returns the rule used when a request supplies none.
func DefaultProcessRule() *ProcessRule {
	return &ProcessRule{Mode: ModeAutomatic}
}

// ParseProcessRule parses and validates a process rule supplied as a JSON
// string. An absent or blank value resolves to the automatic default.
// Invalid JSON is reported as ErrMalformedInput; well-formed JSON that fails
// the schema is reported as ErrInvalidConfiguration.
func ParseProcessRule(raw string) (*ProcessRule, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		rule := DefaultProcessRule()
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		return rule, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return nil, fmt.Errorf("%w: process_rule is not a JSON object: %v", ErrMalformedInput, err)
	}

	rule, err := buildProcessRule(obj)
	if err != nil {
		return nil, err
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return rule, nil
}

// buildProcessRule converts the raw JSON object into a typed ProcessRule,
// enforcing the strict type checks (boolean enabled, integer max_tokens)
// that a plain struct unmarshal would blur into decode errors.
func buildProcessRule(obj map[string]json.RawMessage) (*ProcessRule, error) {
	rule := &ProcessRule{}

	if raw, ok := obj["mode"]; ok {
		if err := json.Unmarshal(raw, &rule.Mode); err != nil {
			return nil, fmt.Errorf("%w: process rule mode must be a string", ErrInvalidConfiguration)
		}
	}

	// Automatic mode ignores rules entirely, including structurally
	// invalid content, so they are never parsed.
	if rule.Mode == ModeAutomatic {
		return rule, nil
	}

	rawRules, ok := obj["rules"]
	if !ok || string(bytes.TrimSpace(rawRules)) == "null" {
		return rule, nil
	}

	var rulesObj map[string]json.RawMessage
	if err := json.Unmarshal(rawRules, &rulesObj); err != nil {
		return nil, fmt.Errorf("%w: process rule rules must be an object", ErrInvalidConfiguration)
	}
	if len(rulesObj) == 0 {
		// Treated as absent; Validate rejects it for custom/hierarchical.
		return rule, nil
	}

	rs := &RuleSet{}

	if raw, ok := rulesObj["parent_mode"]; ok {
		if err := json.Unmarshal(raw, &rs.ParentMode); err != nil {
			return nil, fmt.Errorf("%w: process rule parent_mode must be a string", ErrInvalidConfiguration)
		}
	}

	if raw, ok := rulesObj["pre_processing_rules"]; ok && string(bytes.TrimSpace(raw)) != "null" {
		rules, err := buildPreProcessingRules(raw)
		if err != nil {
			return nil, err
		}
		rs.PreProcessingRules = rules
	}

	if raw, ok := rulesObj["segmentation"]; ok && string(bytes.TrimSpace(raw)) != "null" {
		seg, err := buildSegmentation(raw)
		if err != nil {
			return nil, err
		}
		rs.Segmentation = seg
	}

	rule.Rules = rs
	return rule, nil
}

func buildPreProcessingRules(raw json.RawMessage) ([]PreProcessingRule, error) {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: process rule pre_processing_rules must be an array of objects", ErrInvalidConfiguration)
	}

	rules := make([]PreProcessingRule, 0, len(items))
	for _, item := range items {
		var rule PreProcessingRule

		if idRaw, ok := item["id"]; ok {
			if err := json.Unmarshal(idRaw, &rule.ID); err != nil {
				return nil, fmt.Errorf("%w: process rule pre_processing_rules id must be a string", ErrInvalidConfiguration)
			}
		}
		if rule.ID == "" {
			return nil, fmt.Errorf("%w: process rule pre_processing_rules id is required", ErrInvalidConfiguration)
		}

		enabledRaw, ok := item["enabled"]
		if !ok {
			return nil, fmt.Errorf("%w: process rule pre_processing_rules enabled must be a boolean", ErrInvalidConfiguration)
		}
		if err := json.Unmarshal(enabledRaw, &rule.Enabled); err != nil {
			return nil, fmt.Errorf("%w: process rule pre_processing_rules enabled must be a boolean", ErrInvalidConfiguration)
		}

		rules = append(rules, rule)
	}
	return rules, nil
}

func buildSegmentation(raw json.RawMessage) (*Segmentation, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: process rule segmentation must be an object", ErrInvalidConfiguration)
	}

	seg := &Segmentation{}

	if sepRaw, ok := obj["separator"]; ok && string(bytes.TrimSpace(sepRaw)) != "null" {
		var sep string
		if err := json.Unmarshal(sepRaw, &sep); err != nil {
			return nil, fmt.Errorf("%w: process rule segmentation separator must be a string", ErrInvalidConfiguration)
		}
		seg.Separator = &sep
	}

	if tokRaw, ok := obj["max_tokens"]; ok && string(bytes.TrimSpace(tokRaw)) != "null" {
		var num json.Number
		if err := json.Unmarshal(tokRaw, &num); err != nil {
			return nil, fmt.Errorf("%w: process rule segmentation max_tokens must be an integer", ErrInvalidConfiguration)
		}
		n, err := num.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: process rule segmentation max_tokens must be an integer", ErrInvalidConfiguration)
		}
		tokens := int(n)
		seg.MaxTokens = &tokens
	}

	return seg, nil
}

// Validate checks the rule against the mode-dependent schema. Validating the
// output of a successful ParseProcessRule is always a no-op success.
func (r *ProcessRule) Validate() error {
	switch r.Mode {
	case ModeAutomatic:
		// Rules are ignored in automatic mode, whatever their content.
		return nil
	case ModeCustom, ModeHierarchical:
	default:
		return fmt.Errorf("%w: invalid process_rule mode: %q, must be 'automatic', 'custom', or 'hierarchical'", ErrInvalidConfiguration, r.Mode)
	}

	if r.Rules == nil {
		return fmt.Errorf("%w: process rule 'rules' is required for custom or hierarchical mode", ErrInvalidConfiguration)
	}
	if r.Rules.PreProcessingRules == nil {
		return fmt.Errorf("%w: process rule pre_processing_rules is required for custom/hierarchical mode", ErrInvalidConfiguration)
	}
	for _, rule := range r.Rules.PreProcessingRules {
		if rule.ID == "" {
			return fmt.Errorf("%w: process rule pre_processing_rules id is required", ErrInvalidConfiguration)
		}
	}

	seg := r.Rules.Segmentation
	if seg == nil {
		return fmt.Errorf("%w: process rule segmentation is required for custom/hierarchical mode", ErrInvalidConfiguration)
	}
	if seg.Separator == nil {
		return fmt.Errorf("%w: process rule segmentation separator is required", ErrInvalidConfiguration)
	}

	// max_tokens is required unless hierarchical mode uses full-doc parents.
	if r.Mode == ModeHierarchical && r.Rules.ParentMode == ParentModeFullDoc {
		return nil
	}
	if seg.MaxTokens == nil {
		return fmt.Errorf("%w: process rule segmentation max_tokens is required", ErrInvalidConfiguration)
	}
	return nil
}

// ResolveIndexingTechnique trims the supplied technique and falls back to
// the default when blank. Values are passed through verbatim; the remote
// service is the source of truth for what is valid.
func ResolveIndexingTechnique(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DefaultIndexingTechnique
	}
	return trimmed
}
