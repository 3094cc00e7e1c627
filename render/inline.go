package render

import (
	"fmt"

	"github.com/brindlecrest/inkwell/htmlast"
	"github.com/brindlecrest/inkwell/mdast"
)

// appendInlines lowers each inline node in order and appends it to
// parent.
func appendInlines(parent *htmlast.Element, inlines []mdast.Inline, st *renderState) {
	for _, n := range inlines {
		parent.Append(renderInline(n, st))
	}
}

// renderInline lowers a single inline node to its HTML form.
func renderInline(n mdast.Inline, st *renderState) htmlast.Node {
	switch v := n.(type) {
	case *mdast.Text:
		if v.IsLinebreak() {
			return htmlast.NewElement("br")
		}
		return htmlast.NewText(v.Content)

	case *mdast.Emoji:
		if f := st.opts.Callbacks.Emoji; f != nil {
			return f(v)
		}
		shortcode := ":" + v.ID + ":"
		if v.SkinTone > 0 {
			shortcode += fmt.Sprintf(":skin-tone-%d:", v.SkinTone)
		}
		return htmlast.NewText(shortcode)

	case *mdast.InlineCode:
		if f := st.opts.Callbacks.CodeProcess; f != nil {
			return f(v)
		}
		code := htmlast.NewElement("code")
		code.Append(&htmlast.Text{Content: v.Content, Mode: htmlast.ModeCode})
		return code

	case *mdast.InlineLink:
		a := htmlast.NewElement("a")
		a.SetAttr("href", v.URL)
		a.Append(v.URL)
		return a

	case *mdast.Link:
		return renderLink(v, st)

	case *mdast.Image:
		return renderImage(v, st)

	case *mdast.Italic:
		el := htmlast.NewElement("em")
		appendInlines(el, v.Children, st)
		return el

	case *mdast.Bold:
		el := htmlast.NewElement("b")
		appendInlines(el, v.Children, st)
		return el

	case *mdast.Underline:
		if !st.opts.Data.Underline.Enable {
			el := htmlast.NewElement("b")
			appendInlines(el, v.Children, st)
			return el
		}
		el := htmlast.NewElement("u")
		if st.opts.Data.Underline.ClassName != "" {
			el.AddClass(st.opts.Data.Underline.ClassName)
		}
		appendInlines(el, v.Children, st)
		return el

	case *mdast.Strikethrough:
		el := htmlast.NewElement("span")
		if st.opts.Data.Strikethrough.ClassName != "" {
			el.AddClass(st.opts.Data.Strikethrough.ClassName)
		}
		appendInlines(el, v.Children, st)
		return el

	case *mdast.Highlight:
		if !st.opts.Data.Highlight.Enable {
			return htmlast.NewText("==" + mdast.PlainText(v.Children) + "==")
		}
		el := htmlast.NewElement("mark")
		appendInlines(el, v.Children, st)
		return el

	case *mdast.Spoiler:
		return renderSpoiler(v, st)

	case *mdast.InlineLatex:
		return renderLatex(v, st)

	case *mdast.Comment:
		return &htmlast.Comment{Content: v.Content}

	default:
		return htmlast.NewText("")
	}
}

func resolveURLAndTooltip(refName, url string, tooltip *string, doc *mdast.Document) (string, *string) {
	if refName == "" {
		return url, tooltip
	}
	ref, ok := doc.Lookup(refName)
	if !ok {
		return "", tooltip
	}
	return ref.URL, ref.Tooltip
}

func renderLink(v *mdast.Link, st *renderState) htmlast.Node {
	url, tooltip := resolveURLAndTooltip(v.RefName, v.URL, v.Tooltip, st.doc)
	a := htmlast.NewElement("a")
	if url != "" {
		a.SetAttr("href", url)
	}
	if tooltip != nil {
		a.SetAttr("title", *tooltip)
	}
	appendInlines(a, v.Title, st)
	return a
}

func renderImage(v *mdast.Image, st *renderState) htmlast.Node {
	url, tooltip := resolveURLAndTooltip(v.RefName, v.URL, v.Tooltip, st.doc)
	img := htmlast.NewElement("img")
	if url != "" {
		img.SetAttr("src", url)
	}
	img.SetAttr("alt", mdast.PlainText(v.Title))
	if tooltip != nil {
		img.SetAttr("title", *tooltip)
	}
	if st.opts.Data.Image.ClassName != "" {
		img.AddClass(st.opts.Data.Image.ClassName)
	}
	return img
}

// renderSpoiler handles the image-spoiler special case verbatim (§9: "the
// source's spoiler-image heuristic treats any spoiler whose sole child is
// an Image specially — retain this behavior verbatim").
func renderSpoiler(v *mdast.Spoiler, st *renderState) htmlast.Node {
	if !st.opts.Data.Spoiler.Enable {
		return htmlast.NewText("||" + mdast.PlainText(v.Children) + "||")
	}

	if len(v.Children) == 1 {
		if img, ok := v.Children[0].(*mdast.Image); ok {
			wrapper := htmlast.NewElement("div")
			if st.opts.Data.Spoiler.HiddenClassName != "" {
				wrapper.AddClass(st.opts.Data.Spoiler.HiddenClassName)
			}
			wrapper.Append(renderImage(img, st))
			return wrapper
		}
	}

	el := htmlast.NewElement("span")
	if st.opts.Data.Spoiler.ClassName != "" {
		el.AddClass(st.opts.Data.Spoiler.ClassName)
	}
	appendInlines(el, v.Children, st)
	return el
}

// renderLatex lowers an inline or display InlineLatex node. A failing
// LatexRenderer is the only callback caught by the renderer (§5, §7),
// producing a fallback element carrying Data.Latex.ErrorClasses.
func renderLatex(v *mdast.InlineLatex, st *renderState) htmlast.Node {
	f := st.opts.Callbacks.Latex
	if f == nil {
		return htmlast.NewText(v.Raw)
	}

	node, err := f(v)
	if err != nil {
		el := htmlast.NewElement("span")
		if len(st.opts.Data.Latex.ErrorClasses) > 0 {
			el.AddClass(st.opts.Data.Latex.ErrorClasses...)
		}
		el.Append(v.Raw)
		return el
	}
	if v.Display {
		if t, ok := node.(*htmlast.Text); ok {
			div := htmlast.NewElement("div")
			div.Append(t)
			return div
		}
	}
	return node
}
