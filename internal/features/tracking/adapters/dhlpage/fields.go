package dhlpage

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// object is a decoded JSON object that remembers where it sits in the document,
// so every field read can report an exact path on failure.
type object struct {
	path   string
	fields map[string]json.RawMessage
}

func asObject(raw json.RawMessage, path string) (object, error) {
	var fields map[string]json.RawMessage
	if isNull(raw) || json.Unmarshal(raw, &fields) != nil {
		return object{}, &SchemaError{Path: path, Reason: "expected object"}
	}
	return object{path: path, fields: fields}, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func (o object) child(key string) string {
	if o.path == "" {
		return key
	}
	return o.path + "." + key
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

// lookup returns the raw value for key. Missing keys and JSON null both count as absent.
func (o object) lookup(key string) (json.RawMessage, bool) {
	raw, ok := o.fields[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func (o object) missing(key string) error {
	return &SchemaError{Path: o.child(key), Reason: "missing required field"}
}

func (o object) wrongType(key, want string) error {
	return &SchemaError{Path: o.child(key), Reason: "expected " + want}
}

func (o object) requiredString(key string) (string, error) {
	raw, ok := o.lookup(key)
	if !ok {
		return "", o.missing(key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", o.wrongType(key, "string")
	}
	return s, nil
}

func (o object) optionalString(key string) (*string, error) {
	if _, ok := o.lookup(key); !ok {
		return nil, nil
	}
	s, err := o.requiredString(key)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// requiredText accepts a string or a bare number and returns its text verbatim.
func (o object) requiredText(key string) (string, error) {
	raw, ok := o.lookup(key)
	if !ok {
		return "", o.missing(key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", o.wrongType(key, "string or number")
}

func (o object) requiredBool(key string) (bool, error) {
	raw, ok := o.lookup(key)
	if !ok {
		return false, o.missing(key)
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, o.wrongType(key, "boolean")
	}
	return b, nil
}

func (o object) requiredUint(key string) (uint64, error) {
	raw, ok := o.lookup(key)
	if !ok {
		return 0, o.missing(key)
	}
	var n uint64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, o.wrongType(key, "non-negative integer")
	}
	return n, nil
}

func (o object) requiredObject(key string) (object, error) {
	raw, ok := o.lookup(key)
	if !ok {
		return object{}, o.missing(key)
	}
	return asObject(raw, o.child(key))
}

func (o object) optionalObject(key string) (*object, error) {
	raw, ok := o.lookup(key)
	if !ok {
		return nil, nil
	}
	obj, err := asObject(raw, o.child(key))
	if err != nil {
		return nil, err
	}
	return &obj, nil
}

func (o object) requiredArray(key string) ([]json.RawMessage, error) {
	arr, ok, err := o.optionalArray(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, o.missing(key)
	}
	return arr, nil
}

// optionalArray reports ok=false when the key is absent or null. A present empty
// array yields a non-nil empty slice.
func (o object) optionalArray(key string) ([]json.RawMessage, bool, error) {
	raw, ok := o.lookup(key)
	if !ok {
		return nil, false, nil
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, false, o.wrongType(key, "array")
	}
	if arr == nil {
		arr = []json.RawMessage{}
	}
	return arr, true, nil
}
