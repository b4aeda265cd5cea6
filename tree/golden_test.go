package tree_test

import (
	_ "embed"
	"strings"
	"testing"

	"github.com/go-ljson/ljson"
	"github.com/go-ljson/ljson/tree"
)

//go:embed testdata/basic.ljson
var basicInput string

func TestGoldenBasic(t *testing.T) {
	root := tree.New()
	p := ljson.New(ljson.Options{Flags: ljson.AllowComments | ljson.StoreComments})
	if _, err := p.Parse(strings.NewReader(basicInput), root); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n := p.ErrorCount(); n != 0 {
		t.Fatalf("unexpected errors: %v", p.Errors())
	}

	if got := root.Find("name").Value.StringValue(); got != "widget" {
		t.Errorf("name = %q, want %q", got, "widget")
	}
	if got := root.Find("count").Value.Int64(); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
	if got := root.Find("ratio").Value.Float64(); got != 0.5 {
		t.Errorf("ratio = %v, want 0.5", got)
	}

	tags := root.Find("tags").Value
	if tags.Len() != 2 || tags.Elem(0).StringValue() != "a" || tags.Elem(1).StringValue() != "b" {
		t.Errorf("tags = %+v, want [a b]", tags)
	}

	nested := root.Find("nested").Value
	if !nested.Find("enabled").Value.Bool() {
		t.Error("nested.enabled = false, want true")
	}
	if got := nested.Find("limit").Value.Kind(); got != ljson.Null {
		t.Errorf("nested.limit kind = %v, want Null", got)
	}

	if com := root.Find("name").Value.Comments(); len(com.Before) != 1 {
		t.Errorf("name.Before = %v, want one leading comment", com.Before)
	}
}
