package htmlparse

import (
	"testing"

	"github.com/brindlecrest/inkwell/htmlast"
)

func serializeAll(nodes []htmlast.Node) string {
	out := ""
	for _, n := range nodes {
		out += htmlast.Serialize(n)
	}
	return out
}

func TestParseRoundTripsSimpleElement(t *testing.T) {
	nodes := Parse(`<div class="a" title='hi'>text</div>`)
	if len(nodes) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(nodes))
	}
	el, ok := nodes[0].(*htmlast.Element)
	if !ok {
		t.Fatalf("node is not an Element: %#v", nodes[0])
	}
	if el.Tag != "div" {
		t.Errorf("Tag = %q, want div", el.Tag)
	}
	if got := el.GetAttr("class"); got != "a" {
		t.Errorf("class = %q, want a", got)
	}
}

func TestParseComment(t *testing.T) {
	nodes := Parse(`<!-- a comment --> ok`)
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	c, ok := nodes[0].(*htmlast.Comment)
	if !ok {
		t.Fatalf("first node is not a Comment: %#v", nodes[0])
	}
	if c.Content != " a comment " {
		t.Errorf("Content = %q", c.Content)
	}
}

func TestParseSelfClosing(t *testing.T) {
	nodes := Parse(`<img src="a.png"/>after`)
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	el := nodes[0].(*htmlast.Element)
	if !el.IsVoid() {
		t.Errorf("img should be void")
	}
}

func TestParseUnmatchedCloseTagIsText(t *testing.T) {
	nodes := Parse(`hi</div>`)
	got := serializeAll(nodes)
	want := "hi&lt;/div&gt;"
	if got != want {
		t.Errorf("serialized = %q, want %q", got, want)
	}
}

func TestParseNestedElements(t *testing.T) {
	nodes := Parse(`<div>a<span>b</span>c</div>`)
	got := serializeAll(nodes)
	want := `<div>a<span>b</span>c</div>`
	if got != want {
		t.Errorf("serialized = %q, want %q", got, want)
	}
}
