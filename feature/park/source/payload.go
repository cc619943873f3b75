package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"park-sync/feature/park/models"
)

// Keys under which upstream envelopes nest their record lists.
var envelopeKeys = []string{"data", "list", "items", "records", "result"}

var errNoRecords = errors.New("no record list in payload")

// decodeList decodes a bare JSON array or an envelope object wrapping one.
func decodeList[T any](body []byte) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}
	if body[0] == '[' {
		var out []T
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, err
		}
		return out, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	for _, key := range envelopeKeys {
		if raw, ok := envelope[key]; ok {
			return decodeList[T](raw)
		}
	}
	return nil, errNoRecords
}

// decodeBasic decodes a catalog document, unwrapping a "data" envelope.
func decodeBasic(body []byte) (models.BasicData, error) {
	var basic models.BasicData
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return basic, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return basic, fmt.Errorf("decoding catalog: %w", err)
	}
	if raw, ok := envelope["data"]; ok {
		if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
			return decodeBasic(trimmed)
		}
	}
	if err := json.Unmarshal(body, &basic); err != nil {
		return basic, fmt.Errorf("decoding catalog: %w", err)
	}
	return basic, nil
}
