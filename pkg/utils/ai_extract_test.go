package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object",
			in:   `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "object surrounded by prose",
			in:   "Here is the plan:\n{\"a\":1}\nEnjoy your trip!",
			want: `{"a":1}`,
		},
		{
			name: "markdown fenced object",
			in:   "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "no braces returns trimmed text",
			in:   "  just some text  ",
			want: "just some text",
		},
		{
			name: "array without braces returns trimmed text",
			in:   " [1,2,3] ",
			want: "[1,2,3]",
		},
		{
			name: "closing brace before opening returns trimmed text",
			in:   "} nothing {",
			want: "} nothing {",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONBlock(tt.in))
		})
	}
}

func TestExtractJSONBlockIdempotent(t *testing.T) {
	raw := "The recommendations follow.\n{\"destinations\":[{\"id\":\"1\",\"city\":\"Tokyo\"}]}\nHave fun."

	first := ExtractJSONBlock(raw)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(first), &parsed))
	canonical, err := json.Marshal(parsed)
	require.NoError(t, err)

	second := ExtractJSONBlock(string(canonical))

	var reparsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(second), &reparsed))
	assert.Equal(t, parsed, reparsed)
}

func TestNormalizeDestinationPayload(t *testing.T) {
	wantArr := `[{"id":"1"},{"id":"2"}]`

	tests := []struct {
		name string
		in   string
	}{
		{"canonical object", `{"destinations":[{"id":"1"},{"id":"2"}]}`},
		{"bare array", `[{"id":"1"},{"id":"2"}]`},
		{"array under another key", `{"recommendations":[{"id":"1"},{"id":"2"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDestinationPayload([]byte(tt.in))
			require.NoError(t, err)
			assert.JSONEq(t, wantArr, string(got))
		})
	}
}

func TestNormalizeDestinationPayloadFirstArrayInDocumentOrder(t *testing.T) {
	in := `{"meta":"x","first":[{"id":"1"}],"second":[{"id":"2"}]}`

	got, err := NormalizeDestinationPayload([]byte(in))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got))
}

func TestNormalizeDestinationPayloadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty object", `{}`},
		{"no array-valued field", `{"other":"string"}`},
		{"invalid json", `{"destinations":`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeDestinationPayload([]byte(tt.in))
			require.Error(t, err)

			var extractionErr *ExtractionError
			assert.ErrorAs(t, err, &extractionErr)
		})
	}
}
