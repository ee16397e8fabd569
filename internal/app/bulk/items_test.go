package bulk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrar/academics/internal/pkg/apperrors"
)

func TestItems(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr string
	}{
		{name: "single object", body: `{"name": "Physics"}`, want: 1},
		{name: "array", body: `[{"name": "A"}, {"name": "B"}]`, want: 2},
		{name: "array keeps non-objects for per-item errors", body: `[{"name": "A"}, 3]`, want: 2},
		{name: "empty body", body: "  ", wantErr: "Request body is required."},
		{name: "empty array", body: `[]`, wantErr: "Request body must contain at least one item."},
		{name: "scalar", body: `42`, wantErr: "Request body must be a JSON object or array."},
		{name: "malformed", body: `{"name": `, wantErr: "Invalid JSON payload."},
		{name: "trailing data", body: `{"a": 1} {"b": 2}`, wantErr: "Invalid JSON payload."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Items([]byte(tt.body))
			if tt.wantErr != "" {
				require.ErrorIs(t, err, apperrors.ErrBadRequest)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Len(t, items, tt.want)
		})
	}
}

func TestIDs(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []int64
		wantErr string
	}{
		{name: "ids object", body: `{"ids": [1, 2]}`, want: []int64{1, 2}},
		{name: "ids object with single id", body: `{"ids": 7}`, want: []int64{7}},
		{name: "bare id", body: `3`, want: []int64{3}},
		{name: "bare list", body: `[4, 5]`, want: []int64{4, 5}},
		{name: "missing ids key", body: `{"id": 1}`, wantErr: "Missing required field: ids"},
		{name: "mixed types", body: `["one", 2]`, wantErr: MsgIDsNotIntegers},
		{name: "fraction", body: `[1.5]`, wantErr: MsgIDsNotIntegers},
		{name: "numeric string", body: `{"ids": ["1"]}`, wantErr: MsgIDsNotIntegers},
		{name: "empty list", body: `{"ids": []}`, wantErr: "No IDs provided."},
		{name: "empty body", body: ``, wantErr: "Request body is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := IDs([]byte(tt.body))
			if tt.wantErr != "" {
				require.ErrorIs(t, err, apperrors.ErrBadRequest)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestTrimStrings(t *testing.T) {
	item := map[string]any{"name": "  Physics \n", "count": 3}
	trimStrings(item)
	assert.Equal(t, "Physics", item["name"])
	assert.Equal(t, 3, item["count"])
}

func TestNounTitle(t *testing.T) {
	assert.Equal(t, "Course schedule", Noun{Singular: "course schedule"}.Title())
	assert.Equal(t, "No course schedules were archived.", Noun{Plural: "course schedules"}.noneSucceeded(OpArchive))
}
