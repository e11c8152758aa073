package format

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelope is the object written by the JSON formats. Fields are declared in
// key order so the output is sorted without relying on map iteration.
type envelope struct {
	Content string          `json:"content"`
	Value   json.RawMessage `json:"value,omitempty"`
}

// Serialize renders content as the body for format f. The JSON formats cannot
// fail for a Go string, so an encoder error here is a broken invariant and
// panics; use Marshal to get the error instead.
func Serialize(content string, f Format) string {
	out, err := Marshal(content, f)
	if err != nil {
		panic(fmt.Sprintf("format: serialize %s: %v", f, err))
	}
	return out
}

// Marshal is Serialize with the encoder error returned.
func Marshal(content string, f Format) (string, error) {
	if !f.IsJSON() {
		return content, nil
	}

	env := envelope{Content: content}
	if f == JSONValue {
		env.Value = parseValue(content)
	}

	b, err := encode(env)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// parseValue returns content re-encoded as canonical JSON (sorted keys,
// numbers kept verbatim) or nil if content is not a single JSON value.
func parseValue(content string) json.RawMessage {
	data := []byte(content)
	if !json.Valid(data) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}

	b, err := encode(v)
	if err != nil {
		return nil
	}
	return b
}

// encode marshals v on a single line without HTML escaping. encoding/json
// never escapes '/', and map keys come out sorted.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
