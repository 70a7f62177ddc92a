package countries

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"
)

// Table is a string-keyed mapping that remembers insertion order.
// Setting an existing key replaces its value but keeps its original
// position. JSON and gob round trips preserve key order.
type Table[V any] struct {
	keys []string
	vals map[string]V
}

// NewTable returns an empty Table ready for use
func NewTable[V any]() *Table[V] {
	return &Table[V]{vals: make(map[string]V)}
}

// Set inserts or replaces the value for key
func (t *Table[V]) Set(key string, val V) {
	if t.vals == nil {
		t.vals = make(map[string]V)
	}
	if _, ok := t.vals[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.vals[key] = val
}

// Get returns the value for key, if present
func (t *Table[V]) Get(key string) (V, bool) {
	val, ok := t.vals[key]
	return val, ok
}

// Keys returns the keys in insertion order
func (t *Table[V]) Keys() []string {
	return slices.Clone(t.keys)
}

// Len returns the number of entries
func (t *Table[V]) Len() int {
	return len(t.keys)
}

// MarshalJSON emits the table as a JSON object with keys in insertion order
func (t *Table[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(t.vals[key])
		if err != nil {
			return nil, fmt.Errorf("marshal value for %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the table from a JSON object,
// keeping the key order of the document
func (t *Table[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	t.keys = nil
	t.vals = make(map[string]V)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var val V
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("decode value for %q: %w", key, err)
		}
		t.Set(key, val)
	}
	_, err = dec.Token()
	return err
}

type tableEntry[V any] struct {
	Key string
	Val V
}

// GobEncode flattens the table to an ordered list of key/value pairs
func (t *Table[V]) GobEncode() ([]byte, error) {
	entries := make([]tableEntry[V], 0, len(t.keys))
	for _, key := range t.keys {
		entries = append(entries, tableEntry[V]{Key: key, Val: t.vals[key]})
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode rebuilds the table from the encoded pair list
func (t *Table[V]) GobDecode(data []byte) error {
	var entries []tableEntry[V]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&entries); err != nil {
		return err
	}
	t.keys = nil
	t.vals = make(map[string]V)
	for _, entry := range entries {
		t.Set(entry.Key, entry.Val)
	}
	return nil
}
