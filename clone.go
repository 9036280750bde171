package datapath

// Clone returns a deep copy of a tree of *Map, map[string]any and []any
// nodes. Leaves, records, typed collections and user containers are shared,
// not copied.
//
// Get returns nested containers by reference; clone a result before
// changing it if the source must stay untouched.
func Clone(v any) any {
	switch t := v.(type) {
	case *Map:
		if t == nil {
			return t
		}
		out := &Map{}
		for _, e := range t.Entries() {
			out.Store(e.Key, Clone(e.Value))
		}
		return out
	case map[string]any:
		if t == nil {
			return t
		}
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Clone(e)
		}
		return out
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	default:
		return v
	}
}
