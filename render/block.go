package render

import (
	"fmt"

	"github.com/brindlecrest/inkwell/htmlast"
	"github.com/brindlecrest/inkwell/htmlparse"
	"github.com/brindlecrest/inkwell/htmlsan"
	"github.com/brindlecrest/inkwell/mdast"
)

// renderBlock lowers a single block into zero or more HTML nodes (§4.5
// "Lowering rules").
func renderBlock(b mdast.Block, st *renderState) []htmlast.Node {
	switch v := b.(type) {
	case *mdast.Paragraph:
		p := htmlast.NewElement("p")
		appendInlines(p, v.Inlines, st)
		return []htmlast.Node{p}

	case *mdast.Heading:
		h := htmlast.NewElement(fmt.Sprintf("h%d", v.Level))
		h.SetAttr("id", v.ID())
		appendInlines(h, v.Inlines, st)
		return []htmlast.Node{h}

	case *mdast.BlockCode:
		return []htmlast.Node{renderBlockCode(v, st)}

	case *mdast.BlockQuote:
		bq := htmlast.NewElement("blockquote")
		for _, c := range v.Children {
			for _, n := range renderBlock(c, st) {
				bq.Append(n)
			}
		}
		return []htmlast.Node{bq}

	case *mdast.HorizontalRule:
		return []htmlast.Node{htmlast.NewElement("hr")}

	case *mdast.List:
		return []htmlast.Node{renderList(v, st, 1)}

	case *mdast.InlineHTML:
		return renderInlineHTMLBlock(v, st)

	case *mdast.Table:
		return []htmlast.Node{renderTable(v, st)}

	case *mdast.TableOfContents:
		list := buildTOCList(st.doc)
		return []htmlast.Node{renderList(list, st, 1)}

	case *mdast.InlineLatex:
		return []htmlast.Node{renderLatex(v, st)}

	default:
		return nil
	}
}

func renderBlockCode(v *mdast.BlockCode, st *renderState) htmlast.Node {
	code := htmlast.NewElement("code")
	if v.Language != "" {
		code.AddClass("language-" + v.Language)
	}
	if h := st.opts.Callbacks.Highlighter; h != nil {
		h(v.Code, v.Language, code)
	} else {
		code.Append(&htmlast.Text{Content: v.Code, Mode: htmlast.ModeCode})
	}

	pre := htmlast.NewElement("pre")
	pre.Append(code)

	if st.opts.Data.BlockCode.ClassName == "" {
		return pre
	}
	wrapper := htmlast.NewElement("div")
	wrapper.AddClass(st.opts.Data.BlockCode.ClassName)
	wrapper.Append(pre)
	return wrapper
}

// renderList lowers a List to <ol>/<ul>, capping sublist recursion depth
// at 3 (§4.5: "recursion depth for sublists is capped at 3").
func renderList(v *mdast.List, st *renderState, depth int) *htmlast.Element {
	tag := "ul"
	if v.Ordered {
		tag = "ol"
	}
	list := htmlast.NewElement(tag)
	if v.Ordered && v.OrderedStart != 1 {
		list.SetAttr("start", fmt.Sprintf("%d", v.OrderedStart))
	}

	for _, entry := range v.Entries {
		list.Append(renderListEntry(entry, st, depth))
	}
	return list
}

func renderListEntry(e *mdast.ListEntry, st *renderState, depth int) *htmlast.Element {
	li := htmlast.NewElement("li")

	if e.Checked != mdast.CheckNone && st.opts.Data.Checkbox.Enable {
		cb := htmlast.NewElement("input")
		cb.SetAttr("type", "checkbox")
		cb.SetBoolAttr("checked", e.Checked == mdast.CheckChecked)
		cb.SetBoolAttr("disabled", st.opts.Data.Checkbox.DisabledProperty)
		li.Append(cb)
		li.SetStyle("list-style-type", "none")
	}

	appendInlines(li, e.Inlines, st)

	renderDepth := depth
	if renderDepth > 3 {
		renderDepth = 3
	}
	for _, sub := range e.Sublists {
		li.Append(renderList(sub, st, renderDepth+1))
	}
	return li
}

func renderTable(v *mdast.Table, st *renderState) *htmlast.Element {
	table := htmlast.NewElement("table")
	table.SetAttr("role", "table")

	thead := htmlast.NewElement("thead")
	thead.Append(renderTableRow(v.Header(), v.Alignments, "th", st))
	table.Append(thead)

	tbody := htmlast.NewElement("tbody")
	for _, row := range v.Body() {
		tbody.Append(renderTableRow(row, v.Alignments, "td", st))
	}
	table.Append(tbody)

	if p := st.opts.Callbacks.TableProcess; p != nil {
		p(table)
	}
	return table
}

func renderTableRow(cells []mdast.TableCell, alignments []mdast.Alignment, cellTag string, st *renderState) *htmlast.Element {
	tr := htmlast.NewElement("tr")
	for i, cell := range cells {
		td := htmlast.NewElement(cellTag)
		if align := alignmentFor(alignments, i); align != "" {
			td.SetStyle("text-align", align)
		}
		appendInlines(td, cell.Inlines, st)
		tr.Append(td)
	}
	return tr
}

func alignmentFor(alignments []mdast.Alignment, i int) string {
	if i < 0 || i >= len(alignments) {
		return ""
	}
	switch alignments[i] {
	case mdast.AlignLeft:
		return "left"
	case mdast.AlignCenter:
		return "center"
	case mdast.AlignRight:
		return "right"
	default:
		return ""
	}
}

func renderInlineHTMLBlock(v *mdast.InlineHTML, st *renderState) []htmlast.Node {
	raw := mdast.PlainText(v.Inlines)
	if !st.opts.Data.InlineHTML.Enable {
		p := htmlast.NewElement("p")
		p.Append(&htmlast.Text{Content: raw, Mode: htmlast.ModeNormal})
		return []htmlast.Node{p}
	}

	disallowed := htmlsan.DefaultDisallowedTags()
	for _, t := range st.opts.Data.InlineHTML.DisallowedTags {
		disallowed[t] = true
	}

	nodes := htmlparse.Parse(raw)
	out := make([]htmlast.Node, 0, len(nodes))
	for _, n := range nodes {
		if el, ok := n.(*htmlast.Element); ok {
			out = append(out, htmlsan.Sanitize(el, disallowed, nil))
		} else {
			out = append(out, n)
		}
	}
	return out
}
