package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrAddonsNotFound indicates the document has no addons.addons value.
var ErrAddonsNotFound = errors.New("addons.addons not found")

// ExtractAddons parses an exported settings document and returns the value
// at addons.addons, untouched. Missing or null path segments are errors.
// Any non-null value at the leaf is accepted; callers decide whether a
// non-array collection is usable.
func ExtractAddons(data []byte) (Collection, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return Collection{}, fmt.Errorf("failed to parse document: %w", err)
	}
	if root == nil {
		return Collection{}, fmt.Errorf("%w: document is null", ErrAddonsNotFound)
	}

	outer, err := lookup(root, "addons")
	if err != nil {
		return Collection{}, err
	}

	var nested map[string]json.RawMessage
	if err := json.Unmarshal(outer, &nested); err != nil {
		return Collection{}, fmt.Errorf("%w: addons is not an object", ErrAddonsNotFound)
	}

	leaf, err := lookup(nested, "addons")
	if err != nil {
		return Collection{}, err
	}

	return NewCollection(leaf)
}

// NewCollection wraps a raw JSON value as a Collection, splitting it into
// items when it is an array.
func NewCollection(raw json.RawMessage) (Collection, error) {
	c := Collection{Raw: append(json.RawMessage(nil), raw...)}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return c, nil
	}
	if err := json.Unmarshal(trimmed, &c.Items); err != nil {
		return Collection{}, fmt.Errorf("failed to parse addon list: %w", err)
	}
	c.IsList = true
	return c, nil
}

func lookup(obj map[string]json.RawMessage, key string) (json.RawMessage, error) {
	v, ok := obj[key]
	if !ok || isNull(v) {
		return nil, fmt.Errorf("%w: missing %q", ErrAddonsNotFound, key)
	}
	return v, nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
