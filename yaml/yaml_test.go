package yaml

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/zoobzio/datapath"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `yaml:"name"`
		Value int    `yaml:"value"`
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored TestStruct
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

const usersDoc = `
defaults: &defaults
  role: member
  active: true
users:
  taylor:
    <<: *defaults
    role: admin
  abigail:
    <<: *defaults
scores: [10, 20, 30]
`

func TestUnmarshal_OrderedTree(t *testing.T) {
	c := New()

	var doc any
	if err := c.Unmarshal([]byte(usersDoc), &doc); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if got := datapath.Get(doc, "users.{first}.role", ".", nil); got != "admin" {
		t.Errorf("users.{first}.role = %v, want admin", got)
	}
	if got := datapath.Get(doc, "users.{last}.role", ".", nil); got != "member" {
		t.Errorf("users.{last}.role = %v, want member", got)
	}
	if got := datapath.Get(doc, "users.abigail.active", ".", nil); got != true {
		t.Errorf("users.abigail.active = %v, want true", got)
	}
	if got := datapath.Get(doc, "scores.{last}", ".", nil); got != 30 {
		t.Errorf("scores.{last} = %v, want 30", got)
	}
}

func TestUnmarshal_Empty(t *testing.T) {
	c := New()

	doc := any("untouched")
	if err := c.Unmarshal(nil, &doc); err != nil {
		t.Fatalf("Unmarshal(empty) error: %v", err)
	}
	if doc != nil {
		t.Errorf("Unmarshal(empty) = %v, want nil", doc)
	}
}

func TestMarshal_KeepsOrder(t *testing.T) {
	c := New()

	m := datapath.NewMap(
		datapath.Entry{Key: "zeta", Value: 1},
		datapath.Entry{Key: "alpha", Value: []any{"x", "y"}},
	)
	data, err := c.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	out := string(data)
	if strings.Index(out, "zeta") > strings.Index(out, "alpha") {
		t.Errorf("Marshal() lost key order:\n%s", out)
	}

	var doc any
	if err := c.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got := datapath.Get(doc, "alpha.1", ".", nil); got != "y" {
		t.Errorf("alpha.1 = %v, want y", got)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var doc any
	if err := c.Unmarshal([]byte("a: [1, 2"), &doc); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestMarshal_JSONNumber(t *testing.T) {
	c := New()

	data, err := c.Marshal(datapath.NewMap(
		datapath.Entry{Key: "id", Value: json.Number("9007199254740993")},
		datapath.Entry{Key: "ratio", Value: json.Number("1.5")},
	))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if want := "id: 9007199254740993\nratio: 1.5\n"; string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}
}
