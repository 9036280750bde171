package datapath

import (
	"context"
	"time"
)

// Set writes value at path and returns the resulting target.
//
// Missing intermediate keys are created as empty containers, and leaves in
// the way are replaced by one. With overwrite false, an existing key keeps
// its value. A wildcard broadcasts the rest of the path to every element;
// as the last segment it replaces every element, but only when overwrite is
// true.
//
// Fresh containers are map[string]any under a map[string]any and *Map
// everywhere else. Record fields that do not exist, or whose type cannot
// hold the value, are left alone.
//
// A nil target pointer, a nil path and an empty path are no-ops.
func Set(target *any, path any, value any, overwrite bool, separator string) any {
	if target == nil {
		return nil
	}
	start := time.Now()
	segs, ok := segments(path, separator)
	if ok && len(segs) > 0 {
		set(target, segs, value, overwrite, freshFor(*target, newMap))
	}
	emitSet(context.Background(), path, separator, len(segs), time.Since(start))
	return *target
}

func set(slot *any, segs []any, value any, overwrite bool, fresh func() any) {
	seg, rest := segs[0], segs[1:]

	if isWildcard(seg) {
		c, ok := asContainer(*slot)
		if !ok {
			*slot = fresh()
			return
		}
		fresh = freshFor(c.value(), fresh)
		for _, k := range c.keys() {
			if len(rest) > 0 {
				child, _ := c.lookup(k)
				set(&child, rest, value, overwrite, fresh)
				c.store(k, child)
			} else if overwrite {
				c.store(k, value)
			}
		}
		*slot = c.value()
		return
	}

	if c, ok := asContainer(*slot); ok {
		setKey(c, seg, rest, value, overwrite, freshFor(c.value(), fresh))
		*slot = c.value()
		return
	}

	if r, ok := asRecord(*slot, true, true); ok {
		name := keyString(seg)
		if len(rest) > 0 {
			if child, defined := r.get(name); defined {
				set(&child, rest, value, overwrite, fresh)
				r.set(name, child)
			}
		} else if overwrite || !r.isset(name) {
			r.set(name, value)
		}
		*slot = r.value()
		return
	}

	*slot = fresh()
	c, _ := asContainer(*slot)
	setKey(c, seg, rest, value, overwrite, freshFor(c.value(), fresh))
	*slot = c.value()
}

// setKey writes below or at a literal key of a container.
func setKey(c container, key any, rest []any, value any, overwrite bool, fresh func() any) {
	child, found := c.lookup(key)
	if len(rest) > 0 {
		if !found {
			child = fresh()
		}
		set(&child, rest, value, overwrite, fresh)
		c.store(key, child)
		return
	}
	if overwrite || !found {
		c.store(key, value)
	}
}

func newMap() any { return NewMap() }

func newPlainMap() any { return map[string]any{} }

// freshFor picks the constructor for containers created below target.
func freshFor(target any, inherited func() any) func() any {
	switch target.(type) {
	case map[string]any:
		return newPlainMap
	case *Map:
		return newMap
	default:
		return inherited
	}
}
