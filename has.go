package datapath

import (
	"context"
	"time"
)

// Has reports whether every segment of path exists, in order.
//
// Segments are literal keys; wildcards, placeholders and escapes are not
// interpreted. Container keys holding nil count as present, as do record
// fields holding nil. A nil or empty path reports false.
func Has(target any, path any, separator string) bool {
	start := time.Now()
	segs, ok := segments(path, separator)
	found := ok && len(segs) > 0 && has(target, segs)
	emitHas(context.Background(), path, separator, len(segs), time.Since(start), found)
	return found
}

func has(target any, segs []any) bool {
	for _, seg := range segs {
		if c, ok := asContainer(target); ok {
			v, found := c.lookup(seg)
			if !found {
				return false
			}
			target = v
			continue
		}

		if r, ok := asRecord(target, false, false); ok {
			name := keyString(seg)
			if !r.defined(name) {
				return false
			}
			target, _ = r.get(name)
			continue
		}

		return false
	}
	return true
}
