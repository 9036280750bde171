package datapath

import (
	"fmt"
	"strings"
)

// Dot is the conventional separator.
const Dot = "."

// Path tokens.
const (
	tokenWildcard = "*"
	tokenFirst    = "{first}"
	tokenLast     = "{last}"

	escapedWildcard = `\*`
	escapedFirst    = `\{first}`
	escapedLast     = `\{last}`
)

// segments splits a path into raw segments. The second result is false
// when no path was given at all.
//
// Strings are split on the exact separator; an empty separator leaves the
// string whole. Lists are used verbatim, one element per segment. Any other
// value is a single literal segment.
func segments(path any, separator string) ([]any, bool) {
	switch p := path.(type) {
	case nil:
		return nil, false
	case string:
		if separator == "" {
			return []any{p}, true
		}
		parts := strings.Split(p, separator)
		out := make([]any, len(parts))
		for i, s := range parts {
			out[i] = s
		}
		return out, true
	case []any:
		return p, true
	case []string:
		out := make([]any, len(p))
		for i, s := range p {
			out[i] = s
		}
		return out, true
	case []int:
		out := make([]any, len(p))
		for i, n := range p {
			out[i] = n
		}
		return out, true
	default:
		return []any{p}, true
	}
}

func isWildcard(seg any) bool {
	s, ok := seg.(string)
	return ok && s == tokenWildcard
}

func containsWildcard(segs []any) bool {
	for _, seg := range segs {
		if isWildcard(seg) {
			return true
		}
	}
	return false
}

// resolve interprets escapes and placeholders against the current target.
// Placeholders on a target without keys do not resolve.
func resolve(seg any, target any) (any, bool) {
	s, ok := seg.(string)
	if !ok {
		return seg, true
	}
	switch s {
	case escapedWildcard:
		return tokenWildcard, true
	case escapedFirst:
		return tokenFirst, true
	case escapedLast:
		return tokenLast, true
	case tokenFirst:
		keys := keysOf(target)
		if len(keys) == 0 {
			return nil, false
		}
		return keys[0], true
	case tokenLast:
		keys := keysOf(target)
		if len(keys) == 0 {
			return nil, false
		}
		return keys[len(keys)-1], true
	default:
		return s, true
	}
}

// keysOf returns the keys of a container or the field names of a record.
func keysOf(target any) []any {
	if c, ok := asContainer(target); ok {
		return c.keys()
	}
	if r, ok := asRecord(target, false, false); ok {
		return r.keys()
	}
	return nil
}

// pathString renders a path for events and error messages.
func pathString(path any, separator string) string {
	switch p := path.(type) {
	case nil:
		return ""
	case string:
		return p
	}
	segs, _ := segments(path, separator)
	parts := make([]string, len(segs))
	for i, seg := range segs {
		parts[i] = fmt.Sprint(seg)
	}
	return strings.Join(parts, separator)
}
