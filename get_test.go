package datapath_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/datapath"
	datapathtest "github.com/zoobzio/datapath/testing"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		target    any
		path      any
		separator string
		def       any
		want      any
	}{
		{
			name:   "nested key",
			target: map[string]any{"a": map[string]any{"b": map[string]any{"c": 5}}},
			path:   "a.b.c",
			want:   5,
		},
		{
			name:   "missing key yields default",
			target: map[string]any{"a": map[string]any{"x": 1}},
			path:   "a.y",
			def:    "dflt",
			want:   "dflt",
		},
		{
			name:   "sequence index",
			target: map[string]any{"xs": []any{"a", "b", "c"}},
			path:   "xs.2",
			want:   "c",
		},
		{
			name:   "index out of range",
			target: map[string]any{"xs": []any{"a"}},
			path:   "xs.1",
			def:    "none",
			want:   "none",
		},
		{
			name:   "non canonical index",
			target: []any{"a", "b"},
			path:   "01",
			def:    "none",
			want:   "none",
		},
		{
			name:   "nil value counts as present",
			target: map[string]any{"a": nil},
			path:   "a",
			def:    "dflt",
			want:   nil,
		},
		{
			name:   "descending into a leaf",
			target: map[string]any{"a": "leaf"},
			path:   "a.b",
			def:    "dflt",
			want:   "dflt",
		},
		{
			name:      "multi character separator",
			target:    map[string]any{"a": map[string]any{"b.c": "X"}},
			path:      "a->b.c",
			separator: "->",
			want:      "X",
		},
		{
			name:      "literal dotted key",
			target:    map[string]any{"a.b": "X"},
			path:      "a.b",
			separator: "/",
			want:      "X",
		},
		{
			name:   "pre-split list is not split again",
			target: map[string]any{"a.b": map[string]any{"c": "X"}},
			path:   []string{"a.b", "c"},
			want:   "X",
		},
		{
			name:   "int path",
			target: []any{"zero", "one"},
			path:   1,
			want:   "one",
		},
		{
			name:   "int list",
			target: []any{[]any{"a", "b"}, []any{"c", "d"}},
			path:   []int{1, 0},
			want:   "c",
		},
		{
			name:   "nil list element returns current target",
			target: map[string]any{"a": map[string]any{"b": 1}},
			path:   []any{"a", nil, "ignored"},
			want:   map[string]any{"b": 1},
		},
		{
			name:   "empty list returns target",
			target: map[string]any{"a": 1},
			path:   []any{},
			want:   map[string]any{"a": 1},
		},
		{
			name:   "wildcard keeps order",
			target: map[string]any{"xs": []any{map[string]any{"n": 1}, map[string]any{"n": 2}}},
			path:   "xs.*.n",
			want:   []any{1, 2},
		},
		{
			name:   "wildcard branches miss with nil",
			target: map[string]any{"xs": []any{map[string]any{"n": 1}, map[string]any{}}},
			path:   "xs.*.n",
			def:    "dflt",
			want:   []any{1, nil},
		},
		{
			name:   "trailing wildcard returns values",
			target: map[string]any{"m": map[string]any{"b": 2, "a": 1}},
			path:   "m.*",
			want:   []any{1, 2},
		},
		{
			name:   "wildcard over a leaf yields default",
			target: map[string]any{"a": "leaf"},
			path:   "a.*",
			def:    "dflt",
			want:   "dflt",
		},
		{
			name: "nested wildcards flatten one level",
			target: map[string]any{"p": []any{
				map[string]any{"c": []any{map[string]any{"v": "A"}, map[string]any{"v": "B"}}},
			}},
			path: "p.*.c.*.v",
			want: []any{"A", "B"},
		},
		{
			name:   "nested wildcards drop non lists",
			target: map[string]any{"p": []any{map[string]any{"c": []any{map[string]any{"v": "A"}}}, "leaf"}},
			path:   "p.*.c.*.v",
			want:   []any{"A"},
		},
		{
			name:   "first placeholder",
			target: map[string]any{"xs": map[string]any{"a": 1, "b": 2}},
			path:   "xs.{first}",
			want:   1,
		},
		{
			name:   "last placeholder",
			target: map[string]any{"xs": map[string]any{"a": 1, "b": 2}},
			path:   "xs.{last}",
			want:   2,
		},
		{
			name:   "placeholder on sequence",
			target: []any{"a", "b", "c"},
			path:   "{last}",
			want:   "c",
		},
		{
			name:   "placeholder on empty container",
			target: map[string]any{"xs": []any{}},
			path:   "xs.{first}",
			def:    "dflt",
			want:   "dflt",
		},
		{
			name:   "placeholder on scalar",
			target: map[string]any{"a": 5},
			path:   "a.{first}",
			def:    "dflt",
			want:   "dflt",
		},
		{
			name:   "escaped wildcard",
			target: map[string]any{"*": "v"},
			path:   `\*`,
			want:   "v",
		},
		{
			name:   "escaped first",
			target: map[string]any{"{first}": "v", "a": "w"},
			path:   `\{first}`,
			want:   "v",
		},
		{
			name:   "escaped last",
			target: map[string]any{"{last}": "v", "z": "w"},
			path:   `\{last}`,
			want:   "v",
		},
		{
			name:   "scalar target",
			target: 42,
			path:   "a",
			def:    "dflt",
			want:   "dflt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sep := tt.separator
			if sep == "" {
				sep = datapath.Dot
			}
			got := datapath.Get(tt.target, tt.path, sep, tt.def)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Get(%v) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestGet_NilPath(t *testing.T) {
	target := map[string]any{"a": 1}
	got := datapath.Get(target, nil, datapath.Dot, "dflt")
	if diff := cmp.Diff(target, got); diff != "" {
		t.Errorf("Get(nil) should return the target (-want +got):\n%s", diff)
	}
}

func TestGet_EmptySeparator(t *testing.T) {
	target := map[string]any{"a.b": "X", "a": map[string]any{"b": "Y"}}
	if got := datapath.Get(target, "a.b", "", nil); got != "X" {
		t.Errorf("Get(a.b, \"\") = %v, want X", got)
	}
}

func TestGet_LazyDefault(t *testing.T) {
	calls := 0
	def := datapath.Lazy(func() any {
		calls++
		return "computed"
	})
	target := map[string]any{"a": 1}

	if got := datapath.Get(target, "a", datapath.Dot, def); got != 1 {
		t.Errorf("Get(a) = %v, want 1", got)
	}
	if calls != 0 {
		t.Errorf("lazy default called %d times on a hit, want 0", calls)
	}

	if got := datapath.Get(target, "b", datapath.Dot, def); got != "computed" {
		t.Errorf("Get(b) = %v, want computed", got)
	}
	if calls != 1 {
		t.Errorf("lazy default called %d times on a miss, want 1", calls)
	}
}

func TestGet_PlainFuncDefault(t *testing.T) {
	got := datapath.Get(map[string]any{}, "missing", datapath.Dot, func() any { return 7 })
	if got != 7 {
		t.Errorf("Get(missing) = %v, want 7", got)
	}
}

func TestGet_NilLazy(t *testing.T) {
	var def datapath.Lazy
	if got := datapath.Get(map[string]any{}, "missing", datapath.Dot, def); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
}

func TestGet_MapKeepsInsertionOrder(t *testing.T) {
	doc := datapath.NewMap(
		datapath.Entry{Key: "zeta", Value: "z"},
		datapath.Entry{Key: "alpha", Value: "a"},
	)

	if got := datapath.Get(doc, "{first}", datapath.Dot, nil); got != "z" {
		t.Errorf("{first} = %v, want z", got)
	}
	if got := datapath.Get(doc, "{last}", datapath.Dot, nil); got != "a" {
		t.Errorf("{last} = %v, want a", got)
	}
	if diff := cmp.Diff([]any{"z", "a"}, datapath.Get(doc, "*", datapath.Dot, nil)); diff != "" {
		t.Errorf("* mismatch (-want +got):\n%s", diff)
	}
}

func TestGet_Fixtures(t *testing.T) {
	authors := datapath.Get(datapathtest.Posts(), "posts|*|comments|*|author", "|", nil)
	if diff := cmp.Diff([]any{"Taylor", "Abigail", "Dries"}, authors); diff != "" {
		t.Errorf("authors mismatch (-want +got):\n%s", diff)
	}

	names := datapath.Get(datapathtest.Users(), "users::*::name", "::", nil)
	if diff := cmp.Diff([]any{"Taylor", "Abigail"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestGet_NestedWildcardKeepsValuesOnly(t *testing.T) {
	doc := datapath.NewMap(datapath.Entry{Key: "groups", Value: []any{
		datapath.NewMap(datapath.Entry{Key: "a", Value: 1}, datapath.Entry{Key: "b", Value: 2}),
		datapath.NewMap(datapath.Entry{Key: "c", Value: 3}),
		"leaf",
	}})

	got := datapath.Get(doc, "groups.*.*", datapath.Dot, nil)
	if diff := cmp.Diff([]any{1, 2, 3}, got); diff != "" {
		t.Errorf("groups.*.* mismatch (-want +got):\n%s", diff)
	}
}

func TestGet_Record(t *testing.T) {
	p := &datapathtest.Profile{
		Name: "Taylor",
		Tags: []any{"admin", "owner"},
		Boss: &datapathtest.Person{FullName: "Abigail", Age: 40},
	}

	tests := []struct {
		path string
		want any
	}{
		{"name", "Taylor"},
		{"Name", "Taylor"},
		{"tags.1", "owner"},
		{"tags.{last}", "owner"},
		{"boss.full_name", "Abigail"},
		{"boss.FullName", "Abigail"},
		{"boss.Age", 40},
		{"boss.{first}", "Abigail"},
		{"{last}.{last}", 40},
		{"extra", "dflt"},
		{"missing", "dflt"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := datapath.Get(p, tt.path, datapath.Dot, "dflt")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Get(%s) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestGet_RecordValue(t *testing.T) {
	p := datapathtest.Person{FullName: "Dries"}
	if got := datapath.Get(p, "full_name", datapath.Dot, nil); got != "Dries" {
		t.Errorf("Get(full_name) = %v, want Dries", got)
	}
}

func TestGet_RecordsInContainers(t *testing.T) {
	doc := map[string]any{"people": []any{
		datapathtest.Person{FullName: "Taylor"},
		&datapathtest.Person{FullName: "Abigail"},
	}}
	got := datapath.Get(doc, "people.*.full_name", datapath.Dot, nil)
	if diff := cmp.Diff([]any{"Taylor", "Abigail"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

type bag struct {
	keys []string
	vals map[string]any
}

func (b *bag) Keys() []string { return b.keys }

func (b *bag) Lookup(key string) (any, bool) {
	v, ok := b.vals[key]
	return v, ok
}

func (b *bag) Store(key string, value any) {
	if _, ok := b.vals[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.vals[key] = value
}

func (b *bag) Delete(key string) {
	delete(b.vals, key)
	for i, k := range b.keys {
		if k == key {
			b.keys = append(b.keys[:i], b.keys[i+1:]...)
			break
		}
	}
}

func TestGet_UserContainer(t *testing.T) {
	b := &bag{keys: []string{"y", "x"}, vals: map[string]any{"x": 1, "y": 2}}

	if got := datapath.Get(b, "{first}", datapath.Dot, nil); got != 2 {
		t.Errorf("{first} = %v, want 2", got)
	}
	if got := datapath.Get(map[string]any{"b": b}, "b.x", datapath.Dot, nil); got != 1 {
		t.Errorf("b.x = %v, want 1", got)
	}
}
