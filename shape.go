package datapath

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Container is implemented by keyed types that want path access without
// being one of the built-in shapes. *Map implements it.
type Container interface {
	Keys() []string
	Lookup(key string) (any, bool)
	Store(key string, value any)
	Delete(key string)
}

// container is the walker's view of a keyed container or sequence.
// store and remove may replace the underlying value (slice growth, nil map
// allocation); value returns the current one so the caller can write it back.
type container interface {
	keys() []any
	lookup(key any) (any, bool)
	store(key any, v any)
	remove(key any)
	value() any
}

// asContainer classifies target as a keyed container or sequence.
// Nil *Map and nil Container pointers are not containers; they are
// replaced like any other leaf when written through.
func asContainer(target any) (container, bool) {
	switch t := target.(type) {
	case *Map:
		if t == nil {
			return nil, false
		}
		return &keyedContainer{c: t}, true
	case map[string]any:
		return &mapContainer{m: t}, true
	case []any:
		return &seqContainer{s: t}, true
	case Container:
		if isNilPointer(t) {
			return nil, false
		}
		return &keyedContainer{c: t}, true
	default:
		return asReflectContainer(target)
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// values returns the container's values in key order.
func values(c container) []any {
	keys := c.keys()
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		v, _ := c.lookup(k)
		out = append(out, v)
	}
	return out
}

type keyedContainer struct {
	c Container
}

func (k *keyedContainer) keys() []any {
	keys := k.c.Keys()
	out := make([]any, len(keys))
	for i, key := range keys {
		out[i] = key
	}
	return out
}

func (k *keyedContainer) lookup(key any) (any, bool) { return k.c.Lookup(keyString(key)) }
func (k *keyedContainer) store(key any, v any)       { k.c.Store(keyString(key), v) }
func (k *keyedContainer) remove(key any)             { k.c.Delete(keyString(key)) }
func (k *keyedContainer) value() any                 { return k.c }

// mapContainer orders keys lexically; Go maps have no insertion order.
type mapContainer struct {
	m map[string]any
}

func (m *mapContainer) keys() []any {
	keys := make([]string, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = k
	}
	return out
}

func (m *mapContainer) lookup(key any) (any, bool) {
	v, ok := m.m[keyString(key)]
	return v, ok
}

func (m *mapContainer) store(key any, v any) {
	if m.m == nil {
		m.m = make(map[string]any)
	}
	m.m[keyString(key)] = v
}

func (m *mapContainer) remove(key any) { delete(m.m, keyString(key)) }
func (m *mapContainer) value() any     { return m.m }

// seqContainer addresses a slice by index. Storing a non-index key, or an
// index past the end, turns the sequence into a *Map keyed by the decimal
// indices.
type seqContainer struct {
	s []any
	m *Map
}

func (s *seqContainer) keys() []any {
	if s.m != nil {
		return (&keyedContainer{c: s.m}).keys()
	}
	out := make([]any, len(s.s))
	for i := range s.s {
		out[i] = i
	}
	return out
}

func (s *seqContainer) lookup(key any) (any, bool) {
	if s.m != nil {
		return s.m.Lookup(keyString(key))
	}
	i, ok := indexOf(key)
	if !ok || i >= len(s.s) {
		return nil, false
	}
	return s.s[i], true
}

func (s *seqContainer) store(key any, v any) {
	if s.m != nil {
		s.m.Store(keyString(key), v)
		return
	}
	i, ok := indexOf(key)
	switch {
	case ok && i < len(s.s):
		s.s[i] = v
	case ok && i == len(s.s):
		s.s = append(s.s, v)
	default:
		s.m = NewMap()
		for idx, item := range s.s {
			s.m.Store(strconv.Itoa(idx), item)
		}
		s.m.Store(keyString(key), v)
	}
}

func (s *seqContainer) remove(key any) {
	if s.m != nil {
		s.m.Delete(keyString(key))
		return
	}
	i, ok := indexOf(key)
	if !ok || i >= len(s.s) {
		return
	}
	out := make([]any, 0, len(s.s)-1)
	out = append(out, s.s[:i]...)
	s.s = append(out, s.s[i+1:]...)
}

func (s *seqContainer) value() any {
	if s.m != nil {
		return s.m
	}
	return s.s
}

// keyString renders a segment as a keyed-container key.
func keyString(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case int:
		return strconv.Itoa(k)
	case nil:
		return ""
	default:
		return fmt.Sprint(k)
	}
}

// indexOf reports the sequence index a segment addresses. Strings must be
// canonical non-negative decimals ("3", not "03" or "+3").
func indexOf(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, k >= 0
	case string:
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || strconv.Itoa(i) != k {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
