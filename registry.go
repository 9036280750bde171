package datapath

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]*recordMeta)
	registryMu sync.RWMutex
)

// metaFor returns cached record metadata for a struct type, scanning it
// on first use.
func metaFor(rt reflect.Type) *recordMeta {
	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[rt]; ok {
		registryMu.RUnlock()
		return cached
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[rt]; ok {
		return cached
	}

	meta := buildRecordMeta(rt)
	registry[rt] = meta
	return meta
}

// Fields returns the path names of a struct type's fields in declaration
// order. v may be a struct or a pointer to one; other values yield nil.
func Fields(v any) []string {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return nil
	}
	if rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil
	}
	return append([]string(nil), metaFor(rt).names...)
}

// Reset clears the record metadata cache.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]*recordMeta)
}
