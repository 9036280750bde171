package datapath

import (
	"context"
	"time"
)

// Update replaces every value path resolves to with fn's result and returns
// how many values were replaced.
//
// Paths resolve as in Get, wildcards and placeholders included, but only
// values that exist are visited; misses are skipped. The first error from fn
// stops the walk; values replaced before it stay replaced.
func Update(target *any, path any, separator string, fn func(any) (any, error)) (int, error) {
	if target == nil || fn == nil {
		return 0, nil
	}
	start := time.Now()
	segs, ok := segments(path, separator)
	var (
		n   int
		err error
	)
	if ok {
		n, err = update(target, segs, fn)
	}
	emitUpdate(context.Background(), path, separator, len(segs), time.Since(start), n, err)
	return n, err
}

func update(slot *any, segs []any, fn func(any) (any, error)) (int, error) {
	if len(segs) == 0 || segs[0] == nil {
		v, err := fn(*slot)
		if err != nil {
			return 0, err
		}
		*slot = v
		return 1, nil
	}
	seg, rest := segs[0], segs[1:]

	if isWildcard(seg) {
		c, ok := asContainer(*slot)
		if !ok {
			return 0, nil
		}
		total := 0
		for _, k := range c.keys() {
			child, _ := c.lookup(k)
			n, err := update(&child, rest, fn)
			total += n
			c.store(k, child)
			if err != nil {
				*slot = c.value()
				return total, err
			}
		}
		*slot = c.value()
		return total, nil
	}

	key, ok := resolve(seg, *slot)
	if !ok {
		return 0, nil
	}

	if c, ok := asContainer(*slot); ok {
		child, found := c.lookup(key)
		if !found {
			return 0, nil
		}
		n, err := update(&child, rest, fn)
		c.store(key, child)
		*slot = c.value()
		return n, err
	}

	if r, ok := asRecord(*slot, true, false); ok {
		name := keyString(key)
		if !r.isset(name) {
			return 0, nil
		}
		child, _ := r.get(name)
		n, err := update(&child, rest, fn)
		if !r.set(name, child) {
			n = 0
		}
		*slot = r.value()
		return n, err
	}

	return 0, nil
}
