package datapath

import (
	"context"
	"time"
)

// Get returns the value at path, or def when the path does not resolve.
//
// A nil path returns target itself. A wildcard segment fans out over the
// container at that position and returns the per-element results as a
// []any in container order; when a later segment is also a wildcard, the
// per-element lists are concatenated instead of nested. A wildcard over a
// leaf yields def.
//
// def may be a Lazy (or func() any); it is called only on a miss. Branches
// under a wildcard do not see def and yield nil when they miss.
func Get(target any, path any, separator string, def any) any {
	start := time.Now()
	segs, ok := segments(path, separator)
	if !ok {
		emitGet(context.Background(), path, separator, 0, time.Since(start), true)
		return target
	}
	result, hit := get(target, segs, def)
	emitGet(context.Background(), path, separator, len(segs), time.Since(start), hit)
	return result
}

// get walks segs from target. The second result is false when def was used.
func get(target any, segs []any, def any) (any, bool) {
	for i, seg := range segs {
		if seg == nil {
			return target, true
		}

		if isWildcard(seg) {
			c, ok := asContainer(target)
			if !ok {
				return value(def), false
			}
			rest := segs[i+1:]
			items := values(c)
			results := make([]any, 0, len(items))
			for _, item := range items {
				r, _ := get(item, rest, nil)
				results = append(results, r)
			}
			if containsWildcard(rest) {
				return collapse(results), true
			}
			return results, true
		}

		key, ok := resolve(seg, target)
		if !ok {
			return value(def), false
		}

		if c, ok := asContainer(target); ok {
			v, found := c.lookup(key)
			if !found {
				return value(def), false
			}
			target = v
			continue
		}

		if r, ok := asRecord(target, false, false); ok {
			name := keyString(key)
			if !r.isset(name) {
				return value(def), false
			}
			target, _ = r.get(name)
			continue
		}

		return value(def), false
	}

	return target, true
}

// collapse flattens one level of nesting. Keyed results lose their keys:
// only their values are kept, in key order. Results that are not containers
// are dropped.
func collapse(results []any) []any {
	out := make([]any, 0, len(results))
	for _, r := range results {
		if c, ok := asContainer(r); ok {
			out = append(out, values(c)...)
		}
	}
	return out
}
