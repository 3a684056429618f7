package homeview

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Snapshot is the initial-state document sent to a client on view load. It
// is an insertion-ordered string-to-value mapping: setting an existing key
// overwrites the value in place without moving the key, so later pipeline
// stages (the narrow override, translation data) can overwrite earlier
// writes while the field order stays stable for the client.
type Snapshot struct {
	keys   []string
	values map[string]any
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{values: make(map[string]any)}
}

// Set writes a field. A new key is appended; an existing key keeps its
// position and gets the new value.
func (s *Snapshot) Set(key string, value any) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns a field's value and whether it is present.
func (s *Snapshot) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the field names in insertion order. The returned slice is a
// copy.
func (s *Snapshot) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len returns the number of fields.
func (s *Snapshot) Len() int {
	return len(s.keys)
}

// MarshalJSON serializes the snapshot as a JSON object with fields in
// insertion order.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot key %q: %w", key, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(s.values[key])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot field %q: %w", key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
