package datapath

import (
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the field naming tag with sentinel
	sentinel.Tag("path")
}

// record is the walker's view of a struct value.
// Fields are addressed by their `path` tag, then their `json` tag name,
// then their Go name.
type record struct {
	rv   reflect.Value // struct value; addressable when writable
	meta *recordMeta
	ptr  bool // target was a pointer to the struct
}

// asRecord classifies target as a record.
//
// Writable records are backed by addressable memory: pointers are used in
// place, struct values are copied so the copy can be written back by the
// caller through value(). With alloc set, a nil struct pointer is replaced
// by a freshly allocated struct. Types implementing Container are never
// records, even when nil.
func asRecord(target any, writable, alloc bool) (*record, bool) {
	if _, ok := target.(Container); ok {
		return nil, false
	}
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return nil, false
	}

	switch {
	case rv.Kind() == reflect.Ptr && rv.Type().Elem().Kind() == reflect.Struct:
		if rv.IsNil() {
			if !alloc {
				return nil, false
			}
			rv = reflect.New(rv.Type().Elem())
		}
		sv := rv.Elem()
		return &record{rv: sv, meta: metaFor(sv.Type()), ptr: true}, true

	case rv.Kind() == reflect.Struct:
		sv := rv
		if writable {
			sv = reflect.New(rv.Type()).Elem()
			sv.Set(rv)
		}
		return &record{rv: sv, meta: metaFor(sv.Type())}, true

	default:
		return nil, false
	}
}

// keys returns the field names in declaration order.
func (r *record) keys() []any {
	out := make([]any, len(r.meta.names))
	for i, n := range r.meta.names {
		out[i] = n
	}
	return out
}

func (r *record) field(name string) (reflect.Value, bool) {
	idx, ok := r.meta.index[name]
	if !ok {
		return reflect.Value{}, false
	}
	return r.rv.FieldByIndex(idx), true
}

// defined reports whether the record declares the field.
func (r *record) defined(name string) bool {
	_, ok := r.meta.index[name]
	return ok
}

// isset reports whether the field exists and holds a non-nil value.
func (r *record) isset(name string) bool {
	fv, ok := r.field(name)
	return ok && !isNil(fv)
}

func (r *record) get(name string) (any, bool) {
	fv, ok := r.field(name)
	if !ok {
		return nil, false
	}
	return fv.Interface(), true
}

// set assigns v to the field. Values that are not assignable to the field
// type are rejected; nothing is converted.
func (r *record) set(name string, v any) bool {
	fv, ok := r.field(name)
	if !ok || !fv.CanSet() {
		return false
	}
	vv, ok := assignable(v, fv.Type())
	if !ok {
		return false
	}
	fv.Set(vv)
	return true
}

// clear resets the field to its zero value.
func (r *record) clear(name string) {
	fv, ok := r.field(name)
	if !ok || !fv.CanSet() {
		return
	}
	fv.Set(reflect.Zero(fv.Type()))
}

func (r *record) value() any {
	if r.ptr {
		return r.rv.Addr().Interface()
	}
	return r.rv.Interface()
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func isNil(v reflect.Value) bool {
	return nillable(v.Kind()) && v.IsNil()
}

// recordMeta maps path names to struct field indices.
type recordMeta struct {
	names []string
	index map[string][]int
}

// buildRecordMeta scans a struct type. Metadata already registered with
// sentinel is reused; other types are scanned by reflection.
func buildRecordMeta(rt reflect.Type) *recordMeta {
	spec, ok := sentinel.Lookup(rt.Name())
	if !ok || rt.Name() == "" || spec.PackageName != rt.PkgPath() {
		spec = scanStruct(rt)
	}

	meta := &recordMeta{index: make(map[string][]int, len(spec.Fields))}

	// Go names are aliases; they never shadow a tag name.
	aliases := make(map[string][]int)
	for _, field := range spec.Fields {
		if len(field.Index) != 1 {
			continue
		}
		sf := rt.FieldByIndex(field.Index)
		if !sf.IsExported() {
			continue
		}
		tags := parseNameTags(sf.Tag)
		for _, key := range nameTags {
			if v, ok := field.Tags[key]; ok {
				tags[key] = v
			}
		}
		name := fieldName(sf.Name, tags)
		if name == "" {
			continue
		}
		if _, dup := meta.index[name]; dup {
			continue
		}
		meta.names = append(meta.names, name)
		meta.index[name] = sf.Index
		if name != sf.Name {
			aliases[sf.Name] = sf.Index
		}
	}
	for name, idx := range aliases {
		if _, taken := meta.index[name]; !taken {
			meta.index[name] = idx
		}
	}

	return meta
}

// scanStruct builds sentinel metadata for a struct type by reflection.
func scanStruct(rt reflect.Type) sentinel.Metadata {
	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseNameTags(sf.Tag),
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return spec
}

// nameTags are the struct tags that name a field, in priority order.
var nameTags = []string{"path", "json"}

// parseNameTags extracts the tags that influence field naming.
func parseNameTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, key := range nameTags {
		if val, ok := tag.Lookup(key); ok {
			tags[key] = val
		}
	}
	return tags
}

// fieldName resolves the path name of a field from its naming tags. "-"
// hides the field; options after a comma are ignored.
func fieldName(goName string, tags map[string]string) string {
	for _, key := range nameTags {
		tag, ok := tags[key]
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return goName
}
