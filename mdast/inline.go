// Package mdast defines the two-layer Markdown document model: inline
// nodes that live inside a block's text, and block nodes that occupy one
// or more source lines.
//
// The sum-type-over-an-interface shape replaces the teacher's single
// Node interface (markdown.Node, covering only inline constructs) with
// two disjoint interfaces per design note 9 ("Class hierarchy in source
// → tagged variants"); exhaustive handling happens in the serializer,
// renderer and JSON codec via type switches rather than virtual methods.
package mdast

// Inline is any node that can appear inside a block's text.
type Inline interface {
	inlineNode()
}

// linebreakContent is the exact content of the distinguished hard-linebreak
// Text node (§3.2).
const linebreakContent = "  \n"

// Text is a run of literal text.
type Text struct {
	Content string
}

func (*Text) inlineNode() {}

// NewLinebreak returns the distinguished hard-linebreak Text node.
func NewLinebreak() *Text { return &Text{Content: linebreakContent} }

// IsLinebreak reports whether t is the hard-linebreak sentinel.
func (t *Text) IsLinebreak() bool { return t.Content == linebreakContent }

// Emoji is a `:name:` shortcode, optionally with a `:skin-tone-N:` suffix.
type Emoji struct {
	ID       string
	SkinTone int // 0 means "no skin tone specified"; otherwise 1..5
}

func (*Emoji) inlineNode() {}

// InlineCode is a backtick-delimited code span. Content is stored
// verbatim, with no escape processing.
type InlineCode struct {
	Content string
}

func (*InlineCode) inlineNode() {}

// InlineLink is an autolink: `<scheme://...>` or a bare recognized URL.
type InlineLink struct {
	URL string
}

func (*InlineLink) inlineNode() {}

// Link is `[text](url "title")` or a reference-style link. RefName is
// stored lowercased; an empty RefName means an inline (non-reference)
// link (§3.2).
type Link struct {
	URL     string
	Title   []Inline
	Tooltip *string
	RefName string
}

func (*Link) inlineNode() {}

// Image has the same shape as Link (§3.2).
type Image struct {
	URL     string
	Title   []Inline
	Tooltip *string
	RefName string
}

func (*Image) inlineNode() {}

// Italic is `*text*` or `_text_`.
type Italic struct{ Children []Inline }

func (*Italic) inlineNode() {}

// Bold is `**text**` markup recognized by the tokenizer as
// double-delimiter emphasis (the parser always emits Bold for `**…**`;
// `__…__` produces Underline instead — design note 9).
type Bold struct{ Children []Inline }

func (*Bold) inlineNode() {}

// Underline is `__text__`. The parser always produces Underline for this
// syntax; the renderer decides whether to flatten it to Bold (§9, open
// question).
type Underline struct{ Children []Inline }

func (*Underline) inlineNode() {}

// Strikethrough is `~~text~~`. Cannot contain Linebreak children (§3.2).
type Strikethrough struct{ Children []Inline }

func (*Strikethrough) inlineNode() {}

// Highlight is `==text==`. Cannot contain Linebreak children (§3.2).
type Highlight struct{ Children []Inline }

func (*Highlight) inlineNode() {}

// Spoiler is `||text||`. Cannot contain Linebreak children (§3.2).
type Spoiler struct{ Children []Inline }

func (*Spoiler) inlineNode() {}

// InlineLatex is `$...$` (Display == false) or a `$$...$$` block
// (Display == true). It implements both Inline and Block so the same
// type serves both roles named in §3.2.
type InlineLatex struct {
	Raw     string
	Display bool
}

func (*InlineLatex) inlineNode() {}
func (*InlineLatex) blockNode()  {}

// Comment is an inline `<!-- ... -->` comment passed through from source.
type Comment struct {
	Content string
}

func (*Comment) inlineNode() {}

// noLinebreakChildren filters out hard-linebreak Text nodes, enforcing
// the containers-declared-no-linebreaks invariant (§3.2) for
// Strikethrough, Highlight, Spoiler and Link/Image title text.
func noLinebreakChildren(children []Inline) []Inline {
	out := make([]Inline, 0, len(children))
	for _, c := range children {
		if t, ok := c.(*Text); ok && t.IsLinebreak() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// NewStrikethrough builds a Strikethrough, dropping any Linebreak child.
func NewStrikethrough(children []Inline) *Strikethrough {
	return &Strikethrough{Children: noLinebreakChildren(children)}
}

// NewHighlight builds a Highlight, dropping any Linebreak child.
func NewHighlight(children []Inline) *Highlight {
	return &Highlight{Children: noLinebreakChildren(children)}
}

// NewSpoiler builds a Spoiler, dropping any Linebreak child.
func NewSpoiler(children []Inline) *Spoiler {
	return &Spoiler{Children: noLinebreakChildren(children)}
}

// NewLinkTitle filters Linebreak out of a Link/Image title, per the
// "no linebreaks" invariant on Link title (§3.2).
func NewLinkTitle(title []Inline) []Inline {
	return noLinebreakChildren(title)
}

// PlainText flattens a sequence of inlines into their visible text,
// discarding markup — used for heading ids and table-of-contents labels.
func PlainText(inlines []Inline) string {
	var b []byte
	for _, n := range inlines {
		b = appendPlainText(b, n)
	}
	return string(b)
}

func appendPlainText(b []byte, n Inline) []byte {
	switch v := n.(type) {
	case *Text:
		return append(b, v.Content...)
	case *InlineCode:
		return append(b, v.Content...)
	case *InlineLink:
		return append(b, v.URL...)
	case *Emoji:
		return append(append(append(b, ':'), v.ID...), ':')
	case *InlineLatex:
		return append(b, v.Raw...)
	case *Comment:
		return b
	case *Link:
		return appendPlainTextAll(b, v.Title)
	case *Image:
		return appendPlainTextAll(b, v.Title)
	case *Italic:
		return appendPlainTextAll(b, v.Children)
	case *Bold:
		return appendPlainTextAll(b, v.Children)
	case *Underline:
		return appendPlainTextAll(b, v.Children)
	case *Strikethrough:
		return appendPlainTextAll(b, v.Children)
	case *Highlight:
		return appendPlainTextAll(b, v.Children)
	case *Spoiler:
		return appendPlainTextAll(b, v.Children)
	default:
		return b
	}
}

func appendPlainTextAll(b []byte, nodes []Inline) []byte {
	for _, n := range nodes {
		b = appendPlainText(b, n)
	}
	return b
}
