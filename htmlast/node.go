// Package htmlast implements the small DOM-like tree the renderer lowers
// Markdown into: elements, text runs, and comments, plus a serializer.
//
// The node shape mirrors the inline-AST interface design in the teacher's
// markdown.Node (NodeType/Children/Append), generalized from a closed set
// of inline kinds to an open-ended HTML element tree.
package htmlast

// NodeKind identifies the concrete shape of a Node.
type NodeKind int

const (
	KindElement NodeKind = iota
	KindText
	KindComment
)

// TextMode controls how a Text node's Content is escaped during
// serialization. See Serialize.
type TextMode int

const (
	// ModeNormal HTML-escapes &, < and >.
	ModeNormal TextMode = iota
	// ModeRaw passes Content through unescaped.
	ModeRaw
	// ModeCode escapes < and > but leaves & untouched, so that
	// entity-looking source text inside backtick code survives verbatim.
	ModeCode
)

// Node is a member of the HTML AST: an *Element, *Text, or *Comment.
type Node interface {
	Kind() NodeKind
}

// Text is a run of character data.
type Text struct {
	Content string
	Mode    TextMode
}

func (*Text) Kind() NodeKind { return KindText }

// NewText builds a Text node in ModeNormal, the default for any string
// coerced into a child slot (§4.1: "append child (string → Text(NORMAL))").
func NewText(content string) *Text {
	return &Text{Content: content, Mode: ModeNormal}
}

// Linebreak reports whether t is the distinguished hard-linebreak Text
// node: its content is literally "  \n" (§3.2).
func (t *Text) Linebreak() bool {
	return t.Content == "  \n"
}

// NewLinebreak returns the distinguished hard-linebreak Text node.
func NewLinebreak() *Text {
	return &Text{Content: "  \n", Mode: ModeRaw}
}

// Comment is an HTML comment node, serialized as <!-- Content -->.
type Comment struct {
	Content string
}

func (*Comment) Kind() NodeKind { return KindComment }
