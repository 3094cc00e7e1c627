package mdast

// Block is any node that occupies one or more source lines.
type Block interface {
	blockNode()
}

// Paragraph is a run of inline content; linebreaks are allowed.
type Paragraph struct {
	Inlines []Inline
}

func (*Paragraph) blockNode() {}

// Heading is an ATX heading, level 1 through 6.
type Heading struct {
	Level   int
	Inlines []Inline
}

func (*Heading) blockNode() {}

// ID returns the heading's stable anchor id (§3.2).
func (h *Heading) ID() string {
	return GetID(PlainText(h.Inlines))
}

// BlockCode is a fenced or indented code block.
type BlockCode struct {
	Code     string
	Language string // empty when no language info string was given
}

func (*BlockCode) blockNode() {}

// BlockQuote is `> ...`, containing recursively-parsed child blocks.
type BlockQuote struct {
	Children []Block
}

func (*BlockQuote) blockNode() {}

// HorizontalRule is the singleton `---`/`***`/`___` rule block.
type HorizontalRule struct{}

func (*HorizontalRule) blockNode() {}

// horizontalRuleSingleton is the single shared HorizontalRule instance
// (§9: "global frozen singletons ... HORIZONTAL_RULE").
var horizontalRuleSingleton = &HorizontalRule{}

// NewHorizontalRule returns the shared HorizontalRule instance.
func NewHorizontalRule() *HorizontalRule { return horizontalRuleSingleton }

// CheckState is a list entry's task-checkbox state.
type CheckState int

const (
	CheckNone CheckState = iota
	CheckUnchecked
	CheckChecked
)

// ListEntry is one item of a List: inline content, optional nested
// sublists, and an optional task-checkbox state.
type ListEntry struct {
	Inlines  []Inline
	Sublists []*List
	Checked  CheckState
}

// List is an ordered or unordered list of entries.
type List struct {
	Ordered      bool
	OrderedStart int // defaults to 1 (§3.2)
	Entries      []*ListEntry
}

func (*List) blockNode() {}

// NewList returns a List with OrderedStart defaulted to 1.
func NewList(ordered bool) *List {
	return &List{Ordered: ordered, OrderedStart: 1}
}

// InlineHTML is a block of raw, caller-supplied HTML markup, passed
// through from source. It is modeled as inline content (a single Text
// node holding the raw markup) so it shares shape with the other
// text-bearing blocks per §3.2 ("InlineHTML(inlines)").
type InlineHTML struct {
	Inlines []Inline
}

func (*InlineHTML) blockNode() {}

// Alignment is a table column's text alignment.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// TableCell holds one cell's inline content; its alignment is looked up
// by column index in the owning Table's Alignments, not stored on the
// cell itself (design note 9: "break the cycle by passing alignment down
// as a parameter during rendering").
type TableCell struct {
	Inlines []Inline
}

// Table always has at least a header row: Rows[0]. Alignments[i] applies
// to column i, defaulting to AlignNone for columns beyond len(Alignments)
// (§3.2).
type Table struct {
	Rows       [][]TableCell
	Alignments []Alignment
}

func (*Table) blockNode() {}

// AlignmentFor returns the alignment for column i, defaulting to
// AlignNone when i is out of range.
func (t *Table) AlignmentFor(i int) Alignment {
	if i < 0 || i >= len(t.Alignments) {
		return AlignNone
	}
	return t.Alignments[i]
}

// Header returns the table's header row.
func (t *Table) Header() []TableCell {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Body returns the table's body rows (everything after the header).
func (t *Table) Body() [][]TableCell {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// TableOfContents is the singleton `[[ToC]]` directive marker.
type TableOfContents struct{}

func (*TableOfContents) blockNode() {}

var tableOfContentsSingleton = &TableOfContents{}

// NewTableOfContents returns the shared TableOfContents instance.
func NewTableOfContents() *TableOfContents { return tableOfContentsSingleton }
