package datapath

import (
	"reflect"
	"sort"
	"strconv"
)

// asReflectContainer wraps typed slices, arrays and maps keyed by strings or
// integers. Writes must be assignable to the element type; anything else is
// dropped.
func asReflectContainer(target any) (container, bool) {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Slice:
		return &sliceContainer{rv: rv}, true
	case reflect.Array:
		av := reflect.New(rv.Type()).Elem()
		av.Set(rv)
		return &sliceContainer{rv: av}, true
	case reflect.Map:
		switch rv.Type().Key().Kind() {
		case reflect.String, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return &typedMapContainer{rv: rv}, true
		}
	}
	return nil, false
}

// assignable converts v for a slot of type t. nil becomes the zero value of
// nillable types.
func assignable(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		if !nillable(t.Kind()) {
			return reflect.Value{}, false
		}
		return reflect.Zero(t), true
	}
	vv := reflect.ValueOf(v)
	if !vv.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return vv, true
}

// sliceContainer addresses a typed slice or a copied array by index.
// Slices grow by one element at the end; arrays never change length and
// removing an array element zeroes it.
type sliceContainer struct {
	rv reflect.Value
}

func (s *sliceContainer) keys() []any {
	out := make([]any, s.rv.Len())
	for i := range out {
		out[i] = i
	}
	return out
}

func (s *sliceContainer) lookup(key any) (any, bool) {
	i, ok := indexOf(key)
	if !ok || i >= s.rv.Len() {
		return nil, false
	}
	return s.rv.Index(i).Interface(), true
}

func (s *sliceContainer) store(key any, v any) {
	i, ok := indexOf(key)
	if !ok || i > s.rv.Len() {
		return
	}
	ev, ok := assignable(v, s.rv.Type().Elem())
	if !ok {
		return
	}
	if i < s.rv.Len() {
		s.rv.Index(i).Set(ev)
		return
	}
	if s.rv.Kind() == reflect.Slice {
		s.rv = reflect.Append(s.rv, ev)
	}
}

func (s *sliceContainer) remove(key any) {
	i, ok := indexOf(key)
	if !ok || i >= s.rv.Len() {
		return
	}
	if s.rv.Kind() == reflect.Array {
		s.rv.Index(i).Set(reflect.Zero(s.rv.Type().Elem()))
		return
	}
	out := reflect.MakeSlice(s.rv.Type(), 0, s.rv.Len()-1)
	out = reflect.AppendSlice(out, s.rv.Slice(0, i))
	s.rv = reflect.AppendSlice(out, s.rv.Slice(i+1, s.rv.Len()))
}

func (s *sliceContainer) value() any { return s.rv.Interface() }

// typedMapContainer addresses a typed map. Keys are ordered lexically for
// string keys and numerically for integer keys.
type typedMapContainer struct {
	rv reflect.Value
}

func (m *typedMapContainer) keys() []any {
	mk := m.rv.MapKeys()
	switch m.rv.Type().Key().Kind() {
	case reflect.String:
		sort.Slice(mk, func(i, j int) bool { return mk[i].String() < mk[j].String() })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		sort.Slice(mk, func(i, j int) bool { return mk[i].Uint() < mk[j].Uint() })
	default:
		sort.Slice(mk, func(i, j int) bool { return mk[i].Int() < mk[j].Int() })
	}
	out := make([]any, len(mk))
	for i, k := range mk {
		out[i] = keyString(k.Interface())
	}
	return out
}

// mapKey converts a path key to the map's key type.
func (m *typedMapContainer) mapKey(key any) (reflect.Value, bool) {
	kt := m.rv.Type().Key()
	s := keyString(key)
	switch kt.Kind() {
	case reflect.String:
		return reflect.ValueOf(s).Convert(kt), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, kt.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(kt), true
	default:
		n, err := strconv.ParseInt(s, 10, kt.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(kt), true
	}
}

func (m *typedMapContainer) lookup(key any) (any, bool) {
	k, ok := m.mapKey(key)
	if !ok {
		return nil, false
	}
	v := m.rv.MapIndex(k)
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

func (m *typedMapContainer) store(key any, v any) {
	k, ok := m.mapKey(key)
	if !ok {
		return
	}
	ev, ok := assignable(v, m.rv.Type().Elem())
	if !ok {
		return
	}
	if m.rv.IsNil() {
		m.rv = reflect.MakeMap(m.rv.Type())
	}
	m.rv.SetMapIndex(k, ev)
}

func (m *typedMapContainer) remove(key any) {
	k, ok := m.mapKey(key)
	if !ok || m.rv.IsNil() {
		return
	}
	m.rv.SetMapIndex(k, reflect.Value{})
}

func (m *typedMapContainer) value() any { return m.rv.Interface() }
