package datapath

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Entry is a single key/value pair of a Map.
type Entry struct {
	Key   string
	Value any
}

// Map is an insertion-ordered keyed container.
//
// Go maps have no stable iteration order, which makes {first} and {last}
// meaningless for them. Map keeps keys in the order they were first stored,
// so documents decoded by the codecs in this module keep their source order.
//
// The zero value is ready to use.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns a Map holding entries in the given order.
// A repeated key keeps its first position and its last value.
func NewMap(entries ...Entry) *Map {
	m := &Map{}
	for _, e := range entries {
		m.Store(e.Key, e.Value)
	}
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Lookup returns the value stored under key and whether it was present.
func (m *Map) Lookup(key string) (any, bool) {
	if m == nil || m.values == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Store sets the value for key. New keys are appended.
func (m *Map) Store(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key. Deleting a missing key does nothing.
func (m *Map) Delete(key string) {
	if m == nil || m.values == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Entries returns the key/value pairs in insertion order.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	entries := make([]Entry, 0, len(m.keys))
	for _, k := range m.keys {
		entries = append(entries, Entry{Key: k, Value: m.values[k]})
	}
	return entries
}

// Equal reports whether m and o hold the same keys in the same order with
// deeply equal values.
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i, k := range m.Keys() {
		if o.keys[i] != k {
			return false
		}
		if !equalValues(m.values[k], o.values[k]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes m as a JSON object in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// equalValues compares trees that may contain *Map nodes.
func equalValues(a, b any) bool {
	switch av := a.(type) {
	case *Map:
		bv, ok := b.(*Map)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !equalValues(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			w, ok := bv[k]
			if !ok || !equalValues(v, w) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}
