package trivia

import (
	"bytes"
	"encoding/json"
)

// Parse decodes a game file. The only structural requirement is a usable
// "categories" field; anything that fails to decode into a Document is
// reported as an InvalidFormatError as well.
func Parse(data []byte) (Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Document{}, &InvalidFormatError{Reason: "not a JSON object", Err: err}
	}

	raw, ok := fields["categories"]
	if !ok || isFalsy(raw) {
		return Document{}, &InvalidFormatError{Reason: "missing categories"}
	}

	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, &InvalidFormatError{Reason: "malformed document", Err: err}
	}
	if d.Categories == nil {
		d.Categories = []Category{}
	}
	return d, nil
}

func isFalsy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "null", "false", "0", `""`:
		return true
	}
	return false
}

// Encode renders the export format: two-space indented JSON without a
// trailing newline.
func Encode(d Document) ([]byte, error) {
	if d.Categories == nil {
		d.Categories = []Category{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
