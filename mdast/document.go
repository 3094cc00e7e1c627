package mdast

import "strings"

// Reference is a named (url, tooltip?) pair collected from reference
// definitions and looked up by link/image nodes whose RefName is
// non-empty (§3.2).
type Reference struct {
	URL     string
	Tooltip *string
}

// Document owns an ordered sequence of top-level blocks and a table of
// named references, keyed case-insensitively (§3.2).
type Document struct {
	blocks     []Block
	references map[string]Reference
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{references: make(map[string]Reference)}
}

// Blocks returns the document's top-level blocks in order.
func (d *Document) Blocks() []Block { return d.blocks }

// Push appends a block to the document.
func (d *Document) Push(b Block) { d.blocks = append(d.blocks, b) }

// refKey normalizes a reference name for case-insensitive lookup.
func refKey(name string) string { return lowerCaser.String(strings.TrimSpace(name)) }

// Ref registers (or overwrites) a named reference.
func (d *Document) Ref(name string, ref Reference) {
	if d.references == nil {
		d.references = make(map[string]Reference)
	}
	d.references[refKey(name)] = ref
}

// HasRef reports whether name (compared case-insensitively) is defined.
func (d *Document) HasRef(name string) bool {
	_, ok := d.references[refKey(name)]
	return ok
}

// Lookup returns the reference for name, if defined.
func (d *Document) Lookup(name string) (Reference, bool) {
	ref, ok := d.references[refKey(name)]
	return ref, ok
}

// References returns the document's reference table.
func (d *Document) References() map[string]Reference { return d.references }

// Clear drops every block and every reference.
func (d *Document) Clear() {
	d.blocks = nil
	d.references = make(map[string]Reference)
}

// TextLength returns the rune count of all visible inline text across
// every block, recursing into containers (block quotes, lists, tables).
// Control characters (markup delimiters) are never counted because they
// are not part of any Inline's stored content.
func (d *Document) TextLength() int {
	total := 0
	for _, b := range d.blocks {
		total += blockTextLength(b)
	}
	return total
}

func blockTextLength(b Block) int {
	switch v := b.(type) {
	case *Paragraph:
		return inlinesTextLength(v.Inlines)
	case *Heading:
		return inlinesTextLength(v.Inlines)
	case *BlockCode:
		return len([]rune(v.Code))
	case *BlockQuote:
		n := 0
		for _, c := range v.Children {
			n += blockTextLength(c)
		}
		return n
	case *List:
		n := 0
		for _, e := range v.Entries {
			n += inlinesTextLength(e.Inlines)
			for _, sub := range e.Sublists {
				n += blockTextLength(sub)
			}
		}
		return n
	case *InlineHTML:
		return inlinesTextLength(v.Inlines)
	case *Table:
		n := 0
		for _, row := range v.Rows {
			for _, cell := range row {
				n += inlinesTextLength(cell.Inlines)
			}
		}
		return n
	case *InlineLatex:
		return len([]rune(v.Raw))
	default:
		return 0
	}
}

func inlinesTextLength(inlines []Inline) int {
	return len([]rune(PlainText(inlines)))
}
