package report

import (
	"encoding/json"
	"fmt"
)

// DecodeCollection adapts a raw backend response body into records. The
// collaborator REST backend returns collections either wrapped as
// {"data": [...]} or as a bare top-level array; both shapes are
// tolerated. Array elements that are not JSON objects are dropped.
func DecodeCollection(body []byte) ([]Record, error) {
	var envelope struct {
		Data []any `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return toRecords(envelope.Data), nil
	}

	var list []any
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	return toRecords(list), nil
}

func toRecords(list []any) []Record {
	records := make([]Record, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			records = append(records, Record(obj))
		}
	}
	return records
}
