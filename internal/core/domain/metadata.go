package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MetadataItem is one metadata value assignment for a document. The value
// key must be present on input but may hold null or an empty string.
type MetadataItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// ParseMetadataList parses a metadata assignment list supplied as a JSON
// string. Absent or blank input yields nil (no assignment), as does an
// explicit empty array. Invalid JSON or a non-array value is reported as
// ErrMalformedInput; structurally bad elements as ErrInvalidConfiguration.
func ParseMetadataList(raw string) ([]MetadataItem, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		return nil, fmt.Errorf("%w: metadata_json must be a JSON array: %v", ErrMalformedInput, err)
	}

	list := make([]MetadataItem, 0, len(items))
	for _, rawItem := range items {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(rawItem, &obj); err != nil {
			return nil, fmt.Errorf("%w: each metadata item must be an object", ErrInvalidConfiguration)
		}

		var item MetadataItem
		if idRaw, ok := obj["id"]; ok {
			if err := json.Unmarshal(idRaw, &item.ID); err != nil {
				return nil, fmt.Errorf("%w: metadata item 'id' must be a string", ErrInvalidConfiguration)
			}
		}
		if item.ID == "" {
			return nil, fmt.Errorf("%w: each metadata item must have an 'id' field", ErrInvalidConfiguration)
		}

		if nameRaw, ok := obj["name"]; ok {
			if err := json.Unmarshal(nameRaw, &item.Name); err != nil {
				return nil, fmt.Errorf("%w: metadata item 'name' must be a string", ErrInvalidConfiguration)
			}
		}
		if item.Name == "" {
			return nil, fmt.Errorf("%w: each metadata item must have a 'name' field", ErrInvalidConfiguration)
		}

		// Only absence of the key is rejected; null and "" are acceptable.
		valueRaw, ok := obj["value"]
		if !ok {
			return nil, fmt.Errorf("%w: each metadata item must have a 'value' field", ErrInvalidConfiguration)
		}
		if err := json.Unmarshal(valueRaw, &item.Value); err != nil {
			return nil, fmt.Errorf("%w: metadata item 'value' is not valid JSON", ErrMalformedInput)
		}

		list = append(list, item)
	}
	return list, nil
}
