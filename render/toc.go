package render

import "github.com/brindlecrest/inkwell/mdast"

// buildTOCList converts the document's headings into a nested ordered
// List per §4.5's TableOfContents lowering algorithm.
//
// §9 flags the H1-demotion rule as an open question the source leaves
// ambiguous ("triggers only when >1 H1 exists; with exactly one H1 the
// source demotes others"). §8's worked example pins one case: a single
// H1 followed by one H2 produces a top-level entry for the H1 with a
// sublist entry for the H2 — i.e. no demotion at all when any H1 is
// present. This implementation resolves the ambiguity as: demotion
// (shifting every heading level down so the shallowest present heading
// becomes the TOC's top level) applies only when the document has no H1
// at all; whenever at least one H1 exists, TOC depth equals heading
// level unchanged, whether there is one H1 or several.
func buildTOCList(doc *mdast.Document) *mdast.List {
	headings := collectHeadings(doc)
	root := mdast.NewList(true)
	if len(headings) == 0 {
		return root
	}

	minLevel := headings[0].Level
	for _, h := range headings {
		if h.Level < minLevel {
			minLevel = h.Level
		}
	}
	shift := 0
	if minLevel > 1 {
		shift = minLevel - 1
	}

	lists := []*mdast.List{root}
	var entries []*mdast.ListEntry

	for _, h := range headings {
		depth := h.Level - shift
		if depth < 1 {
			depth = 1
		}
		if depth > len(entries)+1 {
			depth = len(entries) + 1
		}

		if depth > len(lists) {
			parent := entries[len(entries)-1]
			child := mdast.NewList(true)
			parent.Sublists = append(parent.Sublists, child)
			lists = append(lists, child)
		} else {
			lists = lists[:depth]
			entries = entries[:depth-1]
		}

		link := &mdast.Link{URL: "#" + h.ID(), Title: mdast.NewLinkTitle(h.Inlines)}
		entry := &mdast.ListEntry{Inlines: []mdast.Inline{link}}
		lists[depth-1].Entries = append(lists[depth-1].Entries, entry)
		entries = append(entries, entry)
	}

	return root
}

func collectHeadings(doc *mdast.Document) []*mdast.Heading {
	var out []*mdast.Heading
	for _, b := range doc.Blocks() {
		if h, ok := b.(*mdast.Heading); ok {
			out = append(out, h)
		}
	}
	return out
}
