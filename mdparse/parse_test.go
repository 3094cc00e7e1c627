package mdparse

import (
	"testing"

	"github.com/brindlecrest/inkwell/mdast"
	"github.com/stretchr/testify/require"
)

func TestParseHeadingAndParagraph(t *testing.T) {
	doc, warnings, err := Parse("# Title\n\nSome text.", nil)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Len(t, doc.Blocks(), 2)

	h, ok := doc.Blocks()[0].(*mdast.Heading)
	require.True(t, ok)
	require.Equal(t, 1, h.Level)
	require.Equal(t, "Title", mdast.PlainText(h.Inlines))

	p, ok := doc.Blocks()[1].(*mdast.Paragraph)
	require.True(t, ok)
	require.Equal(t, "Some text.", mdast.PlainText(p.Inlines))
}

func TestParseEmphasisNesting(t *testing.T) {
	doc, _, err := Parse("**bold _italic_ text**", nil)
	require.NoError(t, err)

	p := doc.Blocks()[0].(*mdast.Paragraph)
	require.Len(t, p.Inlines, 1)
	bold, ok := p.Inlines[0].(*mdast.Bold)
	require.True(t, ok)
	require.Equal(t, "bold italic text", mdast.PlainText(bold.Children))
}

func TestParseUnclosedDelimiterDegradesToLiteralAndWarns(t *testing.T) {
	doc, warnings, err := Parse("*unclosed emphasis", nil)
	require.NoError(t, err)
	p := doc.Blocks()[0].(*mdast.Paragraph)
	require.Equal(t, "*unclosed emphasis", mdast.PlainText(p.Inlines))
	require.NotEmpty(t, warnings)
	require.Equal(t, IssueUnclosedDelimiter, warnings[0].Issue)
}

func TestParseInlineCodeSpan(t *testing.T) {
	doc, _, err := Parse("call `fn(x)` now", nil)
	require.NoError(t, err)
	p := doc.Blocks()[0].(*mdast.Paragraph)
	var found bool
	for _, in := range p.Inlines {
		if code, ok := in.(*mdast.InlineCode); ok {
			require.Equal(t, "fn(x)", code.Content)
			found = true
		}
	}
	require.True(t, found)
}

func TestParseFencedCodeBlock(t *testing.T) {
	doc, _, err := Parse("```go\nfmt.Println(1)\n```", nil)
	require.NoError(t, err)
	require.Len(t, doc.Blocks(), 1)
	code, ok := doc.Blocks()[0].(*mdast.BlockCode)
	require.True(t, ok)
	require.Equal(t, "go", code.Language)
	require.Equal(t, "fmt.Println(1)", code.Code)
}

func TestParseUnterminatedFenceWarns(t *testing.T) {
	_, warnings, err := Parse("```go\nfmt.Println(1)", nil)
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
	require.Equal(t, IssueUnterminatedFence, warnings[len(warnings)-1].Issue)
}

func TestParseBlockQuote(t *testing.T) {
	doc, _, err := Parse("> quoted line\n> second line", nil)
	require.NoError(t, err)
	bq, ok := doc.Blocks()[0].(*mdast.BlockQuote)
	require.True(t, ok)
	require.Len(t, bq.Children, 1)
	p := bq.Children[0].(*mdast.Paragraph)
	require.Contains(t, mdast.PlainText(p.Inlines), "quoted line")
}

func TestParseUnorderedListWithCheckbox(t *testing.T) {
	doc, _, err := Parse("- [ ] todo\n- [x] done", nil)
	require.NoError(t, err)
	list, ok := doc.Blocks()[0].(*mdast.List)
	require.True(t, ok)
	require.False(t, list.Ordered)
	require.Len(t, list.Entries, 2)
	require.Equal(t, mdast.CheckUnchecked, list.Entries[0].Checked)
	require.Equal(t, mdast.CheckChecked, list.Entries[1].Checked)
}

func TestParseOrderedListCustomStart(t *testing.T) {
	doc, _, err := Parse("3. third\n4. fourth", nil)
	require.NoError(t, err)
	list := doc.Blocks()[0].(*mdast.List)
	require.True(t, list.Ordered)
	require.Equal(t, 3, list.OrderedStart)
}

func TestParseLinkAndReference(t *testing.T) {
	doc, _, err := Parse("[text](https://example.com \"tip\")", nil)
	require.NoError(t, err)
	p := doc.Blocks()[0].(*mdast.Paragraph)
	link, ok := p.Inlines[0].(*mdast.Link)
	require.True(t, ok)
	require.Equal(t, "https://example.com", link.URL)
	require.NotNil(t, link.Tooltip)
	require.Equal(t, "tip", *link.Tooltip)
}

func TestParseReferenceDefinitionRegistersReference(t *testing.T) {
	doc, _, err := Parse("[ref]: https://example.com \"tip\"\n\n[text][ref]", nil)
	require.NoError(t, err)
	require.True(t, doc.HasRef("ref"))
	ref, ok := doc.Lookup("REF")
	require.True(t, ok)
	require.Equal(t, "https://example.com", ref.URL)
}

func TestParseHorizontalRule(t *testing.T) {
	doc, _, err := Parse("---", nil)
	require.NoError(t, err)
	_, ok := doc.Blocks()[0].(*mdast.HorizontalRule)
	require.True(t, ok)
}

func TestParseTableWithAlignment(t *testing.T) {
	doc, _, err := Parse("| a | b |\n|:--|--:|\n| 1 | 2 |", nil)
	require.NoError(t, err)
	table, ok := doc.Blocks()[0].(*mdast.Table)
	require.True(t, ok)
	require.Len(t, table.Rows, 2)
	require.Equal(t, mdast.AlignLeft, table.AlignmentFor(0))
	require.Equal(t, mdast.AlignRight, table.AlignmentFor(1))
}

func TestParseEscapedCharacterIsLiteral(t *testing.T) {
	doc, _, err := Parse(`\*not emphasis\*`, nil)
	require.NoError(t, err)
	p := doc.Blocks()[0].(*mdast.Paragraph)
	require.Equal(t, "*not emphasis*", mdast.PlainText(p.Inlines))
}

func TestParseSingleCharDelimitersAreLiteral(t *testing.T) {
	doc, _, err := Parse("x=1 and y=2", nil)
	require.NoError(t, err)
	p := doc.Blocks()[0].(*mdast.Paragraph)
	require.Equal(t, "x=1 and y=2", mdast.PlainText(p.Inlines))
	for _, in := range p.Inlines {
		_, isHighlight := in.(*mdast.Highlight)
		require.False(t, isHighlight)
	}

	doc, _, err = Parse("a~b~c", nil)
	require.NoError(t, err)
	p = doc.Blocks()[0].(*mdast.Paragraph)
	require.Equal(t, "a~b~c", mdast.PlainText(p.Inlines))

	doc, _, err = Parse("a|b|c", nil)
	require.NoError(t, err)
	p = doc.Blocks()[0].(*mdast.Paragraph)
	require.Equal(t, "a|b|c", mdast.PlainText(p.Inlines))
}

func TestParseDoubleCharDelimitersStillWork(t *testing.T) {
	doc, _, err := Parse("==highlighted==", nil)
	require.NoError(t, err)
	p := doc.Blocks()[0].(*mdast.Paragraph)
	h, ok := p.Inlines[0].(*mdast.Highlight)
	require.True(t, ok)
	require.Equal(t, "highlighted", mdast.PlainText(h.Children))
}

func TestParseEmojiSkinToneValidRange(t *testing.T) {
	opts := map[string]any{"emoji": map[string]any{"dictionary": []string{"wave"}}}
	doc, _, err := Parse(":wave::skin-tone-3:", opts)
	require.NoError(t, err)
	p := doc.Blocks()[0].(*mdast.Paragraph)
	emoji, ok := p.Inlines[0].(*mdast.Emoji)
	require.True(t, ok)
	require.Equal(t, "wave", emoji.ID)
	require.Equal(t, 3, emoji.SkinTone)
}

func TestParseEmojiSkinToneOutOfRangeWarns(t *testing.T) {
	opts := map[string]any{"emoji": map[string]any{"dictionary": []string{"wave"}}}
	doc, warnings, err := Parse(":wave::skin-tone-9:", opts)
	require.NoError(t, err)
	p := doc.Blocks()[0].(*mdast.Paragraph)
	emoji, ok := p.Inlines[0].(*mdast.Emoji)
	require.True(t, ok)
	require.Equal(t, 0, emoji.SkinTone)
	require.NotEmpty(t, warnings)
	require.Equal(t, IssueInvalidSkinTone, warnings[0].Issue)
}

func TestParseAutolink(t *testing.T) {
	doc, _, err := Parse("<https://example.com>", nil)
	require.NoError(t, err)
	p := doc.Blocks()[0].(*mdast.Paragraph)
	link, ok := p.Inlines[0].(*mdast.InlineLink)
	require.True(t, ok)
	require.Equal(t, "https://example.com", link.URL)
}
