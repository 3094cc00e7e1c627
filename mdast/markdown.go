package mdast

import (
	"sort"
	"strconv"
	"strings"
)

// InlineToMarkdown serializes an inline node to its canonical markdown form.
// Serialization is total: every variant has a defined form and this
// function never panics or returns an error (§4.6, §7).
func InlineToMarkdown(n Inline) string {
	switch v := n.(type) {
	case *Text:
		return v.Content
	case *Emoji:
		if v.SkinTone > 0 {
			return ":" + v.ID + "::skin-tone-" + strconv.Itoa(v.SkinTone) + ":"
		}
		return ":" + v.ID + ":"
	case *InlineCode:
		return wrapCodeSpan(v.Content)
	case *InlineLink:
		return "<" + v.URL + ">"
	case *Link:
		return linkLikeMarkdown("", v.URL, v.Title, v.Tooltip, v.RefName)
	case *Image:
		return linkLikeMarkdown("!", v.URL, v.Title, v.Tooltip, v.RefName)
	case *Italic:
		return "*" + inlinesToMarkdown(v.Children) + "*"
	case *Bold:
		return "**" + inlinesToMarkdown(v.Children) + "**"
	case *Underline:
		return "__" + inlinesToMarkdown(v.Children) + "__"
	case *Strikethrough:
		return "~~" + inlinesToMarkdown(v.Children) + "~~"
	case *Highlight:
		return "==" + inlinesToMarkdown(v.Children) + "=="
	case *Spoiler:
		return "||" + inlinesToMarkdown(v.Children) + "||"
	case *InlineLatex:
		if v.Display {
			return "$$\n" + v.Raw + "\n$$"
		}
		return "$" + v.Raw + "$"
	case *Comment:
		return "<!--" + v.Content + "-->"
	default:
		return ""
	}
}

func linkLikeMarkdown(prefix, url string, title []Inline, tooltip *string, refName string) string {
	text := inlinesToMarkdown(title)
	if refName != "" {
		return prefix + "[" + text + "][" + refName + "]"
	}
	dest := url
	if tooltip != nil {
		dest += ` "` + *tooltip + `"`
	}
	return prefix + "[" + text + "](" + dest + ")"
}

func inlinesToMarkdown(inlines []Inline) string {
	var b strings.Builder
	for _, n := range inlines {
		b.WriteString(InlineToMarkdown(n))
	}
	return b.String()
}

// wrapCodeSpan picks a backtick fence one longer than the longest
// backtick run in content, padding with a space on each side when
// content starts or ends with a backtick, avoiding ambiguity on re-parse.
func wrapCodeSpan(content string) string {
	longest, run := 0, 0
	for i := 0; i < len(content); i++ {
		if content[i] == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(content, "`") || strings.HasSuffix(content, "`") || content == "" {
		return fence + " " + content + " " + fence
	}
	return fence + content + fence
}

// BlockToMarkdown serializes a block to its canonical markdown form.
func BlockToMarkdown(b Block) string {
	switch v := b.(type) {
	case *Paragraph:
		return inlinesToMarkdown(v.Inlines)
	case *Heading:
		return strings.Repeat("#", v.Level) + " " + inlinesToMarkdown(v.Inlines)
	case *BlockCode:
		return "```" + v.Language + "\n" + v.Code + "\n```"
	case *BlockQuote:
		return quoteLines(blocksToMarkdown(v.Children))
	case *HorizontalRule:
		return "---"
	case *List:
		return listToMarkdown(v, 0)
	case *InlineHTML:
		return inlinesToMarkdown(v.Inlines)
	case *Table:
		return tableToMarkdown(v)
	case *TableOfContents:
		return "[[ToC]]"
	case *InlineLatex:
		return InlineToMarkdown(v)
	default:
		return ""
	}
}

func blocksToMarkdown(blocks []Block) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = BlockToMarkdown(b)
	}
	return strings.Join(parts, "\n\n")
}

func quoteLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + l
		}
	}
	return strings.Join(lines, "\n")
}

func listToMarkdown(l *List, depth int) string {
	indent := strings.Repeat("  ", depth)
	var lines []string
	n := l.OrderedStart
	if n == 0 {
		n = 1
	}
	for _, e := range l.Entries {
		marker := "- "
		if l.Ordered {
			marker = strconv.Itoa(n) + ". "
			n++
		}
		if e.Checked != CheckNone {
			box := "[ ] "
			if e.Checked == CheckChecked {
				box = "[x] "
			}
			marker += box
		}
		lines = append(lines, indent+marker+inlinesToMarkdown(e.Inlines))
		for _, sub := range e.Sublists {
			lines = append(lines, listToMarkdown(sub, depth+1))
		}
	}
	return strings.Join(lines, "\n")
}

func tableToMarkdown(t *Table) string {
	var lines []string
	for i, row := range t.Rows {
		lines = append(lines, tableRowToMarkdown(row))
		if i == 0 {
			lines = append(lines, tableAlignRowToMarkdown(len(row), t.Alignments))
		}
	}
	return strings.Join(lines, "\n")
}

func tableRowToMarkdown(row []TableCell) string {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = inlinesToMarkdown(c.Inlines)
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

func tableAlignRowToMarkdown(cols int, alignments []Alignment) string {
	cells := make([]string, cols)
	for i := range cells {
		a := AlignNone
		if i < len(alignments) {
			a = alignments[i]
		}
		switch a {
		case AlignLeft:
			cells[i] = ":--"
		case AlignCenter:
			cells[i] = ":-:"
		case AlignRight:
			cells[i] = "--:"
		default:
			cells[i] = "---"
		}
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// ToMarkdown serializes the whole document: blocks separated by blank
// lines, followed by reference definitions collected from every
// link/image node in the tree plus the document's own reference table
// (§4.6).
func (d *Document) ToMarkdown() string {
	var parts []string
	for _, b := range d.blocks {
		parts = append(parts, BlockToMarkdown(b))
	}

	names := collectRefNames(d.blocks)
	for name := range d.references {
		names[name] = struct{}{}
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	for _, name := range sorted {
		ref, ok := d.references[name]
		if !ok {
			continue
		}
		line := "[" + name + "]: <" + ref.URL + ">"
		if ref.Tooltip != nil {
			line += ` "` + *ref.Tooltip + `"`
		}
		parts = append(parts, line)
	}

	return strings.Join(parts, "\n\n")
}

func collectRefNames(blocks []Block) map[string]struct{} {
	out := make(map[string]struct{})
	for _, b := range blocks {
		collectRefNamesBlock(b, out)
	}
	return out
}

func collectRefNamesBlock(b Block, out map[string]struct{}) {
	switch v := b.(type) {
	case *Paragraph:
		collectRefNamesInlines(v.Inlines, out)
	case *Heading:
		collectRefNamesInlines(v.Inlines, out)
	case *BlockQuote:
		for _, c := range v.Children {
			collectRefNamesBlock(c, out)
		}
	case *List:
		for _, e := range v.Entries {
			collectRefNamesInlines(e.Inlines, out)
			for _, sub := range e.Sublists {
				collectRefNamesBlock(sub, out)
			}
		}
	case *Table:
		for _, row := range v.Rows {
			for _, c := range row {
				collectRefNamesInlines(c.Inlines, out)
			}
		}
	case *InlineHTML:
		collectRefNamesInlines(v.Inlines, out)
	}
}

func collectRefNamesInlines(inlines []Inline, out map[string]struct{}) {
	for _, n := range inlines {
		switch v := n.(type) {
		case *Link:
			if v.RefName != "" {
				out[v.RefName] = struct{}{}
			}
			collectRefNamesInlines(v.Title, out)
		case *Image:
			if v.RefName != "" {
				out[v.RefName] = struct{}{}
			}
			collectRefNamesInlines(v.Title, out)
		case *Italic:
			collectRefNamesInlines(v.Children, out)
		case *Bold:
			collectRefNamesInlines(v.Children, out)
		case *Underline:
			collectRefNamesInlines(v.Children, out)
		case *Strikethrough:
			collectRefNamesInlines(v.Children, out)
		case *Highlight:
			collectRefNamesInlines(v.Children, out)
		case *Spoiler:
			collectRefNamesInlines(v.Children, out)
		}
	}
}
