package mdast

import (
	"reflect"
	"testing"
)

func TestGetIDBasic(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"A", "a"},
		{"Already-Hyphenated", "already-hyphenated"},
	}
	for _, tt := range tests {
		if got := GetID(tt.in); got != tt.want {
			t.Errorf("GetID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetIDOnlyReplacesFirstEncodedSpace(t *testing.T) {
	got := GetID("a  b  c")
	want := "a-%20b%20%20c"
	if got != want {
		t.Errorf("GetID(%q) = %q, want %q", "a  b  c", got, want)
	}
}

func TestGetIDIsDeterministic(t *testing.T) {
	text := "Some Heading! With punctuation?"
	if GetID(text) != GetID(text) {
		t.Errorf("GetID is not deterministic")
	}
}

func TestReferencesAreCaseInsensitive(t *testing.T) {
	d := NewDocument()
	d.Ref("Home", Reference{URL: "https://example.com"})

	if !d.HasRef("home") {
		t.Errorf("expected case-insensitive lookup to find ref")
	}
	if !d.HasRef("HOME") {
		t.Errorf("expected case-insensitive lookup to find ref")
	}
}

func TestClearDropsBlocksAndReferences(t *testing.T) {
	d := NewDocument()
	d.Push(&Paragraph{Inlines: []Inline{&Text{Content: "hi"}}})
	d.Ref("a", Reference{URL: "u"})

	d.Clear()

	if len(d.Blocks()) != 0 {
		t.Errorf("expected no blocks after Clear")
	}
	if d.HasRef("a") {
		t.Errorf("expected no references after Clear")
	}
}

func TestNoLinebreakInvariantOnStrikethrough(t *testing.T) {
	s := NewStrikethrough([]Inline{&Text{Content: "a"}, NewLinebreak(), &Text{Content: "b"}})
	if len(s.Children) != 2 {
		t.Fatalf("expected linebreak to be dropped, got %d children", len(s.Children))
	}
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	d := NewDocument()
	d.Push(&Heading{Level: 2, Inlines: []Inline{&Text{Content: "Title"}}})
	tooltip := "Home"
	d.Push(&Paragraph{Inlines: []Inline{
		&Text{Content: "see "},
		&Link{RefName: "home", Title: []Inline{&Text{Content: "site"}}},
	}})
	d.Ref("home", Reference{URL: "https://example.com", Tooltip: &tooltip})

	data, err := d.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	got, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	if len(got.Blocks()) != len(d.Blocks()) {
		t.Fatalf("block count mismatch: got %d, want %d", len(got.Blocks()), len(d.Blocks()))
	}
	if !reflect.DeepEqual(got.Blocks()[0], d.Blocks()[0]) {
		t.Errorf("heading mismatch after round trip:\n got  %#v\n want %#v", got.Blocks()[0], d.Blocks()[0])
	}
	ref, ok := got.Lookup("home")
	if !ok {
		t.Fatalf("expected reference 'home' to survive round trip")
	}
	if ref.URL != "https://example.com" || ref.Tooltip == nil || *ref.Tooltip != "Home" {
		t.Errorf("reference mismatch: %+v", ref)
	}
}

func TestOrderedListSerializationStartsAtK(t *testing.T) {
	l := NewList(true)
	l.OrderedStart = 5
	l.Entries = []*ListEntry{
		{Inlines: []Inline{&Text{Content: "a"}}},
		{Inlines: []Inline{&Text{Content: "b"}}},
	}

	got := BlockToMarkdown(l)
	want := "5. a\n6. b"
	if got != want {
		t.Errorf("BlockToMarkdown(list) = %q, want %q", got, want)
	}
}
