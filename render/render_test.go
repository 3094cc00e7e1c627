package render

import (
	"testing"

	"github.com/brindlecrest/inkwell/htmlast"
	"github.com/brindlecrest/inkwell/mdast"
	"github.com/brindlecrest/inkwell/mdopts"
	"github.com/stretchr/testify/require"
)

func text(s string) []mdast.Inline {
	return []mdast.Inline{&mdast.Text{Content: s}}
}

func TestRenderHeadingCarriesID(t *testing.T) {
	doc := mdast.NewDocument()
	doc.Push(&mdast.Heading{Level: 2, Inlines: text("Hello World")})

	root, err := Render(doc, nil, mdopts.Callbacks{}, nil)
	require.NoError(t, err)

	h := root.Children()[0].(*htmlast.Element)
	require.Equal(t, "h2", h.Tag)
	require.NotEmpty(t, h.GetAttr("id"))
}

// TestRenderTOCSingleH1WorkedExample traces §8's worked example: a single
// H1 followed by a single H2 produces one top-level entry with a nested
// sublist, not a demoted flat list.
func TestRenderTOCSingleH1WorkedExample(t *testing.T) {
	doc := mdast.NewDocument()
	doc.Push(&mdast.Heading{Level: 1, Inlines: text("a")})
	doc.Push(&mdast.Heading{Level: 2, Inlines: text("b")})
	doc.Push(&mdast.TableOfContents{})

	list := buildTOCList(doc)
	require.Len(t, list.Entries, 1)
	require.Len(t, list.Entries[0].Sublists, 1)
	require.Len(t, list.Entries[0].Sublists[0].Entries, 1)
}

func TestRenderTOCDemotesWhenNoH1(t *testing.T) {
	doc := mdast.NewDocument()
	doc.Push(&mdast.Heading{Level: 2, Inlines: text("a")})
	doc.Push(&mdast.Heading{Level: 3, Inlines: text("b")})

	list := buildTOCList(doc)
	require.Len(t, list.Entries, 1)
	require.Len(t, list.Entries[0].Sublists, 1)
}

func TestRenderCheckboxListDisabled(t *testing.T) {
	doc := mdast.NewDocument()
	doc.Push(&mdast.List{Entries: []*mdast.ListEntry{
		{Inlines: text("todo"), Checked: mdast.CheckUnchecked},
	}})

	root, err := Render(doc, nil, mdopts.Callbacks{}, nil)
	require.NoError(t, err)

	ul := root.Children()[0].(*htmlast.Element)
	li := ul.Children()[0].(*htmlast.Element)
	input := li.Children()[0].(*htmlast.Element)
	require.Equal(t, "input", input.Tag)
	require.Equal(t, "checkbox", input.GetAttr("type"))
	require.Equal(t, "disabled", input.GetAttr("disabled"))
	require.Contains(t, htmlast.Serialize(input), "disabled")
	require.NotContains(t, htmlast.Serialize(input), "checked")
}

func TestRenderTableAppliesAlignment(t *testing.T) {
	doc := mdast.NewDocument()
	doc.Push(&mdast.Table{
		Rows: [][]mdast.TableCell{
			{{Inlines: text("a")}, {Inlines: text("b")}},
			{{Inlines: text("1")}, {Inlines: text("2")}},
		},
		Alignments: []mdast.Alignment{mdast.AlignLeft, mdast.AlignRight},
	})

	root, err := Render(doc, nil, mdopts.Callbacks{}, nil)
	require.NoError(t, err)

	table := root.Children()[0].(*htmlast.Element)
	require.Equal(t, "table", table.Tag)
	require.Contains(t, htmlast.Serialize(table),
		`<td style="text-align:left">1</td><td style="text-align:right">2</td>`)
}

func TestRenderUnresolvedReferenceOmitsHref(t *testing.T) {
	doc := mdast.NewDocument()
	doc.Push(&mdast.Paragraph{Inlines: []mdast.Inline{
		&mdast.Link{RefName: "missing", Title: text("x")},
	}})

	root, err := Render(doc, nil, mdopts.Callbacks{}, nil)
	require.NoError(t, err)

	p := root.Children()[0].(*htmlast.Element)
	a := p.Children()[0].(*htmlast.Element)
	_, hasHref := a.Attr("href")
	require.False(t, hasHref)
}

func TestRenderSanitizesInlineHTMLBlockScript(t *testing.T) {
	doc := mdast.NewDocument()
	doc.Push(&mdast.InlineHTML{Inlines: text(`<div onclick="x()">hi<script>bad()</script></div>`)})

	root, err := Render(doc, nil, mdopts.Callbacks{}, nil)
	require.NoError(t, err)

	div := root.Children()[0].(*htmlast.Element)
	require.Equal(t, "div", div.Tag)
	_, hasOnclick := div.Attr("onclick")
	require.False(t, hasOnclick)
	require.Len(t, div.Children(), 1)
}
