package datapath

import (
	"context"
	"time"
)

// Forget removes the value at path and returns the resulting target.
//
// A wildcard prunes the rest of the path from every element; a trailing
// wildcard removes nothing. Missing keys are ignored. Removing a sequence
// element shifts the elements after it. Record fields cannot be removed and
// are reset to their zero value instead.
//
// A nil target pointer, a nil path and an empty path are no-ops.
func Forget(target *any, path any, separator string) any {
	if target == nil {
		return nil
	}
	start := time.Now()
	segs, ok := segments(path, separator)
	if ok && len(segs) > 0 {
		forget(target, segs)
	}
	emitForget(context.Background(), path, separator, len(segs), time.Since(start))
	return *target
}

func forget(slot *any, segs []any) {
	seg, rest := segs[0], segs[1:]

	if c, ok := asContainer(*slot); ok {
		switch {
		case isWildcard(seg):
			if len(rest) == 0 {
				return
			}
			for _, k := range c.keys() {
				child, _ := c.lookup(k)
				forget(&child, rest)
				c.store(k, child)
			}
		case len(rest) > 0:
			if child, found := c.lookup(seg); found {
				forget(&child, rest)
				c.store(seg, child)
			}
		default:
			c.remove(seg)
		}
		*slot = c.value()
		return
	}

	if r, ok := asRecord(*slot, true, false); ok {
		name := keyString(seg)
		if !r.isset(name) {
			return
		}
		if len(rest) > 0 {
			child, _ := r.get(name)
			forget(&child, rest)
			r.set(name, child)
		} else {
			r.clear(name)
		}
		*slot = r.value()
	}
}
