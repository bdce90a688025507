package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONObject builds a JSON object that preserves key insertion order.
// Payload keys must follow the schema's field declaration order, which
// map-based marshaling cannot guarantee.
type JSONObject struct {
	keys []string
	raws []json.RawMessage
}

// NewJSONObject returns an empty ordered object.
func NewJSONObject() *JSONObject {
	return &JSONObject{}
}

// Put appends a key with a marshaled value. A repeated key overwrites the
// earlier value in place, keeping its original position.
func (o *JSONObject) Put(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value for key %s: %w", key, err)
	}
	o.PutRaw(key, raw)
	return nil
}

// PutRaw appends a key with pre-encoded JSON.
func (o *JSONObject) PutRaw(key string, raw json.RawMessage) {
	for i, existing := range o.keys {
		if existing == key {
			o.raws[i] = raw
			return
		}
	}
	o.keys = append(o.keys, key)
	o.raws = append(o.raws, raw)
}

// Len returns the number of keys.
func (o *JSONObject) Len() int {
	return len(o.keys)
}

// String renders the object compactly.
func (o *JSONObject) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, _ := json.Marshal(key)
		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(o.raws[i])
	}
	buf.WriteByte('}')
	return buf.String()
}

// IndentString renders the object with two-space indentation.
func (o *JSONObject) IndentString() (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(o.String()), "", "  "); err != nil {
		return "", fmt.Errorf("indenting object: %w", err)
	}
	return buf.String(), nil
}
