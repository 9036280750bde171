// Package datapath reads and writes nested data through separator-delimited
// paths.
//
// Paths are split on a caller-chosen literal separator, so keys that contain
// the conventional dot stay addressable:
//
//	datapath.Get(doc, "users/profile/name", "/", nil)
//	datapath.Get(doc, "config.app.name", "->", nil) // one key: "config.app.name"
//
// A path may also be given pre-split as []string, []int or []any; list
// elements are never split again.
//
// # Shapes
//
// Targets are walked by shape:
//
//   - keyed containers: *Map (insertion ordered), map[string]any (sorted key
//     order) and any type implementing Container
//   - sequences: []any, addressed by index ("0", "1", ... or int segments)
//   - records: structs and struct pointers; fields are addressed by their
//     `path` tag, their `json` tag name or their Go name
//   - everything else is a leaf
//
// When a value is both a container and a record, it is walked as a container.
//
// # Tokens
//
// Get understands three tokens:
//
//	*        fan out over every value of the container
//	{first}  the first key of the container
//	{last}   the last key of the container
//
// Prefix a token with a backslash (\*, \{first}, \{last}) to address a key
// spelled like the token. Set and Forget understand only *. Has treats every
// segment as a literal key.
//
//	datapath.Get(doc, "posts.*.comments.*.author", ".", nil) // flattened one level
//	datapath.Get(doc, "users.{last}.name", ".", nil)
//
// # Safe navigation
//
// None of the four operations fail. A miss yields the default (Get), false
// (Has) or nothing at all (Set, Forget). Defaults may be deferred with Lazy so
// they are only computed on a miss:
//
//	datapath.Get(doc, "users.0.email", ".", datapath.Lazy(lookupEmail))
//
// # Mutation
//
// Set and Forget take the target by pointer. Containers are changed in
// place; when the shape must change (a leaf turned into a container, a slice
// grown, a struct value copied) the new value is stored through the pointer
// and also returned:
//
//	var doc any
//	datapath.Set(&doc, "a.b.c", 5, true, ".")
//	// doc is *Map{a: *Map{b: *Map{c: 5}}}
//
// Cyclic targets never terminate; avoid them.
//
// # Events
//
// Every operation emits a capitan signal (SignalHas, SignalGet,
// SignalGetDefault, SignalSet, SignalForget, SignalUpdate) carrying the
// path, separator, segment count and duration.
package datapath

// Lazy is a default computed only when a Get misses.
// A plain func() any is accepted as well.
type Lazy func() any

// value forces a deferred default.
func value(def any) any {
	switch d := def.(type) {
	case Lazy:
		if d == nil {
			return nil
		}
		return d()
	case func() any:
		if d == nil {
			return nil
		}
		return d()
	default:
		return def
	}
}
