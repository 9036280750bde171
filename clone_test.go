package datapath_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/datapath"
	datapathtest "github.com/zoobzio/datapath/testing"
)

func TestClone(t *testing.T) {
	src := datapathtest.Posts()
	clone := datapath.Clone(src)

	if diff := cmp.Diff(any(src), clone); diff != "" {
		t.Fatalf("Clone() mismatch (-want +got):\n%s", diff)
	}

	datapath.Set(&clone, "posts.0.comments.0.author", "Dries", true, datapath.Dot)
	if got := datapath.Get(src, "posts.0.comments.0.author", datapath.Dot, nil); got != "Taylor" {
		t.Errorf("source changed through clone: author = %v", got)
	}
}

func TestClone_Map(t *testing.T) {
	src := datapathtest.Users()
	clone := datapath.Clone(src).(*datapath.Map)

	if !src.Equal(clone) {
		t.Fatal("Clone() should equal the source")
	}
	clone.Store("extra", 1)
	inner, _ := datapath.Get(clone, "users.0", datapath.Dot, nil).(*datapath.Map)
	inner.Delete("email")

	if src.Len() != 1 || !datapath.Has(src, "users.0.email", datapath.Dot) {
		t.Error("source changed through clone")
	}
}

func TestClone_SharesLeaves(t *testing.T) {
	p := &datapathtest.Person{FullName: "Taylor"}
	clone := datapath.Clone([]any{p}).([]any)

	if clone[0] != any(p) {
		t.Error("records should be shared, not copied")
	}
	if datapath.Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}
