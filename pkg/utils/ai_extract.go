package utils

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ExtractJSONBlock slices the span between the first '{' and the last '}' of
// the trimmed response, inclusive. If either brace is missing the full trimmed
// text is returned as-is; this is best-effort extraction, the real JSON object
// is expected to be the sole top-level brace span.
func ExtractJSONBlock(text string) string {
	trimmed := strings.TrimSpace(text)

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end < start {
		return trimmed
	}
	return trimmed[start : end+1]
}

// NormalizeDestinationPayload coerces the three shapes models return for
// destination data into the raw destinations array:
//
//	{"destinations":[...]}  -> [...]
//	[...]                   -> [...]
//	{"anything":[...]}      -> first array-valued field, in document order
//
// Anything else fails with an ExtractionError.
func NormalizeDestinationPayload(raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, NewExtractionError("empty response", nil)
	}

	if trimmed[0] == '[' {
		var arr json.RawMessage
		if err := json.Unmarshal(trimmed, &arr); err != nil {
			return nil, NewExtractionError("response is not valid JSON", err)
		}
		return arr, nil
	}

	var probe struct {
		Destinations json.RawMessage `json:"destinations"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, NewExtractionError("response is not valid JSON", err)
	}
	if isJSONArray(probe.Destinations) {
		return probe.Destinations, nil
	}

	if arr, ok := firstArrayField(trimmed); ok {
		return arr, nil
	}
	return nil, NewExtractionError("no destinations found in response", nil)
}

// firstArrayField walks the top-level keys of a JSON object in document order
// and returns the first array-valued entry. A plain map would randomize key
// order, so the token stream is read directly.
func firstArrayField(obj []byte) (json.RawMessage, bool) {
	dec := json.NewDecoder(bytes.NewReader(obj))

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	for dec.More() {
		if _, err := dec.Token(); err != nil { // key
			return nil, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		if isJSONArray(value) {
			return value, true
		}
	}
	return nil, false
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
