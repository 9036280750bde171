package datapath

import (
	"reflect"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/sentinel"
)

type registryUser struct {
	ID       string `json:"id"`
	Email    string `path:"mail" json:"email,omitempty"`
	Password string `json:"-"`
	Nick     string `path:"-"`
	Plain    int
	hidden   bool
}

func TestMetaFor_Caching(t *testing.T) {
	Reset()

	rt := reflect.TypeOf(registryUser{})
	m1 := metaFor(rt)
	m2 := metaFor(rt)

	if m1 != m2 {
		t.Error("metaFor() should return cached metadata")
	}
}

func TestReset(t *testing.T) {
	rt := reflect.TypeOf(registryUser{})
	m1 := metaFor(rt)

	Reset()

	if m2 := metaFor(rt); m1 == m2 {
		t.Error("Reset() should clear cache, new metadata expected")
	}
}

func TestMetaFor_Concurrent(t *testing.T) {
	Reset()
	rt := reflect.TypeOf(registryUser{})

	var wg sync.WaitGroup
	metas := make([]*recordMeta, 16)
	for i := range metas {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			metas[i] = metaFor(rt)
		}(i)
	}
	wg.Wait()

	for _, m := range metas[1:] {
		if m != metas[0] {
			t.Fatal("concurrent metaFor() calls should share one entry")
		}
	}
}

func TestFields(t *testing.T) {
	want := []string{"id", "mail", "Plain"}

	if diff := cmp.Diff(want, Fields(registryUser{})); diff != "" {
		t.Errorf("Fields(value) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, Fields(&registryUser{})); diff != "" {
		t.Errorf("Fields(pointer) mismatch (-want +got):\n%s", diff)
	}
	if Fields(5) != nil || Fields(nil) != nil {
		t.Error("Fields() of a non-struct should be nil")
	}
}

func TestBuildRecordMeta_Aliases(t *testing.T) {
	meta := buildRecordMeta(reflect.TypeOf(registryUser{}))

	for _, name := range []string{"id", "ID", "mail", "Email", "Plain"} {
		if _, ok := meta.index[name]; !ok {
			t.Errorf("index missing %q", name)
		}
	}
	for _, name := range []string{"email", "Password", "Nick", "hidden"} {
		if _, ok := meta.index[name]; ok {
			t.Errorf("index should not contain %q", name)
		}
	}
}

type shadowed struct {
	Name  string `json:"Title"`
	Title string `json:"title"`
}

func TestBuildRecordMeta_TagWinsOverAlias(t *testing.T) {
	meta := buildRecordMeta(reflect.TypeOf(shadowed{}))

	if got := meta.index["Title"]; !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("index[Title] = %v, want the Name field", got)
	}
	if got := meta.index["Name"]; !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("index[Name] = %v, want [0]", got)
	}
}

type inspectedUser struct {
	ID    string `json:"uid"`
	Email string `path:"mail" json:"email"`
	Note  string `json:"-"`
}

func TestBuildRecordMeta_SentinelMetadata(t *testing.T) {
	sentinel.Inspect[inspectedUser]()
	spec, ok := sentinel.Lookup("inspectedUser")
	if !ok {
		t.Fatal("sentinel should hold metadata for inspectedUser")
	}
	if spec.Fields[0].Tags["json"] != "uid" {
		t.Fatalf("sentinel tags = %v, want json:uid", spec.Fields[0].Tags)
	}

	meta := buildRecordMeta(reflect.TypeOf(inspectedUser{}))
	if diff := cmp.Diff([]string{"uid", "mail"}, meta.names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if got := meta.index["Email"]; !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("index[Email] = %v, want [1]", got)
	}
}

func TestFieldName(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want string
	}{
		{"no tags", map[string]string{}, "Field"},
		{"json", map[string]string{"json": "field,omitempty"}, "field"},
		{"path wins", map[string]string{"path": "p", "json": "j"}, "p"},
		{"empty path falls through", map[string]string{"path": ",opt", "json": "j"}, "j"},
		{"empty json keeps Go name", map[string]string{"json": ",omitempty"}, "Field"},
		{"path hides", map[string]string{"path": "-", "json": "j"}, ""},
		{"json hides", map[string]string{"json": "-"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fieldName("Field", tt.tags); got != tt.want {
				t.Errorf("fieldName() = %q, want %q", got, tt.want)
			}
		})
	}
}
