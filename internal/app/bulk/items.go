package bulk

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/registrar/academics/internal/pkg/apperrors"
)

// MsgIDsNotIntegers rejects an archive request before any write happens
const MsgIDsNotIntegers = "All IDs must be integers."

// readOnlyFields are owned by the database and never taken from a payload
var readOnlyFields = []string{"id", "created_at", "updated_at", "is_archived"}

// decode parses a single JSON value, keeping numbers as json.Number
func decode(body []byte) (any, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, apperrors.NewBadRequestError("Request body is required.")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, apperrors.NewBadRequestError("Invalid JSON payload.")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, apperrors.NewBadRequestError("Invalid JSON payload.")
	}
	return v, nil
}

// Items normalizes a request body holding one object or an array of them into a list
func Items(body []byte) ([]any, error) {
	v, err := decode(body)
	if err != nil {
		return nil, err
	}

	switch payload := v.(type) {
	case map[string]any:
		return []any{payload}, nil
	case []any:
		if len(payload) == 0 {
			return nil, apperrors.NewBadRequestError("Request body must contain at least one item.")
		}
		return payload, nil
	default:
		return nil, apperrors.NewBadRequestError("Request body must be a JSON object or array.")
	}
}

// IDs extracts archive targets from {"ids": ...}, a bare id or a bare list.
// Any entry that is not an integer fails the whole request.
func IDs(body []byte) ([]int64, error) {
	v, err := decode(body)
	if err != nil {
		return nil, err
	}

	if obj, ok := v.(map[string]any); ok {
		raw, present := obj["ids"]
		if !present {
			return nil, apperrors.NewBadRequestError("Missing required field: ids")
		}
		v = raw
	}

	var list []any
	switch payload := v.(type) {
	case []any:
		list = payload
	default:
		list = []any{payload}
	}
	if len(list) == 0 {
		return nil, apperrors.NewBadRequestError("No IDs provided.")
	}

	ids := make([]int64, 0, len(list))
	for _, entry := range list {
		id, ok := asInt(entry)
		if !ok {
			return nil, apperrors.NewBadRequestError(MsgIDsNotIntegers)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// asInt accepts JSON integers only; 1.5, "1" and true are rejected
func asInt(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	id, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return id, true
}

// trimStrings strips surrounding whitespace from every string field of an item
func trimStrings(item map[string]any) {
	for k, v := range item {
		if s, ok := v.(string); ok {
			item[k] = strings.TrimSpace(s)
		}
	}
}

// payload copies an item without the database-owned fields
func payload(item map[string]any) map[string]any {
	out := make(map[string]any, len(item))
	for k, v := range item {
		out[k] = v
	}
	for _, k := range readOnlyFields {
		delete(out, k)
	}
	return out
}
