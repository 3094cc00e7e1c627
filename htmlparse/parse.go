// Package htmlparse implements a small, intentionally non-conformant HTML
// fragment reader: just enough to round-trip what the renderer itself
// emits plus the inline-HTML subtrees typically found in Markdown source
// (§4.3). It is not a full HTML5 parser.
//
// The byte-at-a-time scan with an explicit position cursor and small
// lookahead helpers is adapted from the teacher's scum.Tokenize /
// markdown.Tokenize loops, which advance a byte index through the input
// and dispatch on the current byte.
package htmlparse

import (
	"strings"

	"github.com/brindlecrest/inkwell/htmlast"
)

// Parse reads an HTML fragment and returns its top-level nodes in
// document order. Unknown tag names are preserved structurally (an
// Element with that tag name); an end tag with no matching open tag on
// the stack is emitted as literal Text.
func Parse(fragment string) []htmlast.Node {
	p := &parser{src: fragment}
	p.parseInto(nil)
	return p.root
}

type parser struct {
	src   string
	pos   int
	root  []htmlast.Node
	stack []*htmlast.Element
}

// current returns the element children should be appended to: the
// innermost open element, or the implicit document root.
func (p *parser) current() (appendFn func(htmlast.Node)) {
	if len(p.stack) == 0 {
		return func(n htmlast.Node) { p.root = append(p.root, n) }
	}
	top := p.stack[len(p.stack)-1]
	return func(n htmlast.Node) { top.Append(n) }
}

// parseInto runs the scan loop over the whole fragment. Its argument is
// ignored; there is no recursion, and open tags are tracked on p.stack
// directly since HTML nesting is not line-oriented.
func (p *parser) parseInto(_ any) {
	n := len(p.src)
	var textStart = p.pos

	flushText := func(end int) {
		if end > textStart {
			p.current()(htmlast.NewText(p.src[textStart:end]))
		}
	}

	for p.pos < n {
		if p.src[p.pos] != '<' {
			p.pos++
			continue
		}

		flushText(p.pos)

		switch {
		case strings.HasPrefix(p.src[p.pos:], "<!--"):
			p.parseComment()
		case p.pos+1 < n && p.src[p.pos+1] == '/':
			p.parseEndTag()
		default:
			if ok := p.parseStartTag(); !ok {
				// Not a recognizable tag shape; treat '<' as literal text.
				p.current()(htmlast.NewText("<"))
				p.pos++
			}
		}

		textStart = p.pos
	}

	flushText(p.pos)
}

func (p *parser) parseComment() {
	end := strings.Index(p.src[p.pos:], "-->")
	if end < 0 {
		p.current()(&htmlast.Comment{Content: p.src[p.pos+4:]})
		p.pos = len(p.src)
		return
	}
	content := p.src[p.pos+4 : p.pos+end]
	p.current()(&htmlast.Comment{Content: content})
	p.pos += end + 3
}

// parseEndTag closes the innermost open element whose tag matches, or
// emits the literal text of the close-tag sequence if there is no match
// (§4.3: "unmatched close tags produce Text").
func (p *parser) parseEndTag() {
	close := strings.IndexByte(p.src[p.pos:], '>')
	if close < 0 {
		p.current()(htmlast.NewText(p.src[p.pos:]))
		p.pos = len(p.src)
		return
	}
	raw := p.src[p.pos : p.pos+close+1]
	name := strings.ToLower(strings.TrimSpace(raw[2 : len(raw)-1]))

	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].Tag == name {
			p.stack = p.stack[:i]
			p.pos += close + 1
			return
		}
	}

	p.current()(htmlast.NewText(raw))
	p.pos += close + 1
}

// parseStartTag recognizes "<name attr attr=v attr="v" attr='v' />" or the
// non-self-closing form, pushing an open element onto the stack unless it
// is self-closing or a known void tag.
func (p *parser) parseStartTag() bool {
	name, attrs, selfClose, consumed, ok := scanTag(p.src[p.pos:])
	if !ok {
		return false
	}

	el := htmlast.NewElement(name)
	for _, a := range attrs {
		el.SetAttr(a.name, a.value)
	}

	p.current()(el)
	p.pos += consumed

	if !selfClose && !el.IsVoid() {
		p.stack = append(p.stack, el)
	}
	return true
}
