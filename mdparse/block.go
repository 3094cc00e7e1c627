package mdparse

import (
	"strconv"
	"strings"

	"github.com/brindlecrest/inkwell/mdast"
	"github.com/brindlecrest/inkwell/mdopts"
)

// blockState carries everything the block pass threads through its
// recursive descent: the option set, the document being built (for
// pushing reference definitions), and the accumulated warnings.
type blockState struct {
	opts     mdopts.ParseOptions
	doc      *mdast.Document
	warnings []Warning
}

// parseBlocks consumes lines[start:] and returns the blocks found,
// trying each recognizer in §4.4.2's priority order for every line that
// does not belong to an already-open block.
func parseBlocks(lines []string, start int, st *blockState) []mdast.Block {
	var blocks []mdast.Block
	i := start
	n := len(lines)

	for i < n {
		line := lines[i]

		switch {
		case isBlankLine(line):
			i++

		case func() bool { _, _, _, ok := isFenceLine(line); return ok }():
			b, next := parseFencedCode(lines, i, st)
			blocks = append(blocks, b)
			i = next

		case isATXHeading(line):
			blocks = append(blocks, parseATXHeading(line, st))
			i++

		case isHRLine(line):
			blocks = append(blocks, mdast.NewHorizontalRule())
			i++

		case isBlockQuoteLine(line):
			b, next := parseBlockQuote(lines, i, st)
			blocks = append(blocks, b)
			i = next

		case isListMarker(line):
			b, next := parseList(lines, i, st)
			blocks = append(blocks, b)
			i = next

		case isTableHeader(lines, i):
			b, next := parseTable(lines, i, st)
			blocks = append(blocks, b)
			i = next

		case strings.TrimSpace(line) == "$$":
			b, next := parseLatexDisplay(lines, i, st)
			blocks = append(blocks, b)
			i = next

		case isRefDefinition(line):
			parseRefDefinition(line, st)
			i++

		case isTOCDirective(line):
			blocks = append(blocks, mdast.NewTableOfContents())
			i++

		case isHTMLBlockStart(line):
			b, next := parseHTMLBlock(lines, i, st)
			blocks = append(blocks, b)
			i = next

		case st.opts.CodeBlockFromIndent && isIndentedCodeLine(line):
			b, next := parseIndentedCode(lines, i)
			blocks = append(blocks, b)
			i = next

		default:
			b, next := parseParagraph(lines, i, st)
			blocks = append(blocks, b)
			i = next
		}
	}

	return blocks
}

func isATXHeading(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	n := 0
	for n < len(trimmed) && trimmed[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return false
	}
	return n == len(trimmed) || trimmed[n] == ' '
}

func parseATXHeading(line string, st *blockState) mdast.Block {
	trimmed := strings.TrimLeft(line, " ")
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	text := strings.TrimSpace(trimmed[level:])
	text = strings.TrimRight(text, "#")
	text = strings.TrimRight(text, " ")
	inlines := parseInlineText(text, st)
	return &mdast.Heading{Level: level, Inlines: inlines}
}

func parseFencedCode(lines []string, start int, st *blockState) (mdast.Block, int) {
	fenceChar, fenceCount, lang, _ := isFenceLine(lines[start])
	var body []string
	i := start + 1
	for i < len(lines) {
		c, count, rest, ok := isFenceLine(lines[i])
		if ok && c == fenceChar && count >= fenceCount && rest == "" {
			i++
			return &mdast.BlockCode{Code: strings.Join(body, "\n"), Language: lang}, i
		}
		body = append(body, lines[i])
		i++
	}
	warn(&st.warnings, "block_code", start, lines[start], IssueUnterminatedFence,
		"fenced code block has no closing fence; runs to end of input")
	return &mdast.BlockCode{Code: strings.Join(body, "\n"), Language: lang}, i
}

func isIndentedCodeLine(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

func parseIndentedCode(lines []string, start int) (mdast.Block, int) {
	var body []string
	i := start
	for i < len(lines) && isIndentedCodeLine(lines[i]) {
		trimmed := strings.TrimPrefix(lines[i], "\t")
		if trimmed == lines[i] {
			trimmed = strings.TrimPrefix(lines[i], "    ")
		}
		body = append(body, trimmed)
		i++
	}
	return &mdast.BlockCode{Code: strings.Join(body, "\n")}, i
}

func isBlockQuoteLine(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	return strings.HasPrefix(trimmed, ">")
}

func stripBlockQuoteMarker(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	trimmed = strings.TrimPrefix(trimmed, ">")
	return strings.TrimPrefix(trimmed, " ")
}

func parseBlockQuote(lines []string, start int, st *blockState) (mdast.Block, int) {
	var inner []string
	i := start
	for i < len(lines) {
		line := lines[i]
		if isBlockQuoteLine(line) {
			inner = append(inner, stripBlockQuoteMarker(line))
			i++
			continue
		}
		// Lazy continuation: a non-blank, non-marker line directly
		// following a quote line is absorbed into the quote paragraph.
		if !isBlankLine(line) && i > start && isBlockQuoteLine(lines[i-1]) {
			inner = append(inner, line)
			i++
			continue
		}
		break
	}
	children := parseBlocks(inner, 0, st)
	return &mdast.BlockQuote{Children: children}, i
}

func isTOCDirective(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "[[ToC]]")
}

func isHTMLBlockStart(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "<") {
		return false
	}
	name, _ := htmlTagName(trimmed)
	return blockHTMLTags[strings.ToLower(name)]
}

var blockHTMLTags = map[string]bool{
	"div": true, "p": true, "table": true, "ul": true, "ol": true,
	"section": true, "article": true, "header": true, "footer": true,
	"nav": true, "figure": true, "blockquote": true, "pre": true,
}

func htmlTagName(s string) (string, bool) {
	s = strings.TrimPrefix(s, "<")
	s = strings.TrimPrefix(s, "/")
	i := 0
	for i < len(s) && (isAlnumByte(s[i])) {
		i++
	}
	return s[:i], i > 0
}

func isAlnumByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func parseHTMLBlock(lines []string, start int, st *blockState) (mdast.Block, int) {
	name, _ := htmlTagName(strings.TrimSpace(lines[start]))
	closing := "</" + strings.ToLower(name) + ">"
	var raw []string
	i := start
	for i < len(lines) {
		raw = append(raw, lines[i])
		if strings.Contains(strings.ToLower(lines[i]), closing) {
			i++
			break
		}
		if isBlankLine(lines[i]) {
			break
		}
		i++
	}
	text := strings.Join(raw, "\n")
	return &mdast.InlineHTML{Inlines: []mdast.Inline{&mdast.Text{Content: text}}}, i
}

func isRefDefinition(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "[") {
		return false
	}
	close := strings.Index(trimmed, "]:")
	return close > 0
}

func parseRefDefinition(line string, st *blockState) {
	trimmed := strings.TrimSpace(line)
	close := strings.Index(trimmed, "]:")
	name := trimmed[1:close]
	rest := strings.TrimSpace(trimmed[close+2:])

	var url, tooltip string
	if strings.HasPrefix(rest, "<") {
		end := strings.Index(rest, ">")
		if end > 0 {
			url = rest[1:end]
			rest = strings.TrimSpace(rest[end+1:])
		}
	} else {
		sp := strings.IndexByte(rest, ' ')
		if sp < 0 {
			url = rest
			rest = ""
		} else {
			url = rest[:sp]
			rest = strings.TrimSpace(rest[sp+1:])
		}
	}
	rest = strings.Trim(rest, `"'`)
	tooltip = rest

	ref := mdast.Reference{URL: url}
	if tooltip != "" {
		ref.Tooltip = &tooltip
	}
	st.doc.Ref(name, ref)
}

func parseLatexDisplay(lines []string, start int, st *blockState) (mdast.Block, int) {
	var body []string
	i := start + 1
	for i < len(lines) {
		if strings.TrimSpace(lines[i]) == "$$" {
			i++
			return &mdast.InlineLatex{Raw: strings.Join(body, "\n"), Display: true}, i
		}
		body = append(body, lines[i])
		i++
	}
	warn(&st.warnings, "inline_latex", start, "$$", IssueUnclosedDelimiter, "LaTeX display block has no closing $$")
	return &mdast.InlineLatex{Raw: strings.Join(body, "\n"), Display: true}, i
}

func parseParagraph(lines []string, start int, st *blockState) (mdast.Block, int) {
	var text []string
	i := start
	for i < len(lines) && !isBlankLine(lines[i]) {
		if i > start {
			switch {
			case isATXHeading(lines[i]), isHRLine(lines[i]), isFenceBoundary(lines[i]),
				isListMarker(lines[i]), isBlockQuoteLine(lines[i]), isTOCDirective(lines[i]):
				goto done
			}
		}
		text = append(text, lines[i])
		i++
	}
done:
	raw := strings.Join(text, "\n")
	if st.opts.NewlineAsLinebreaks {
		raw = strings.ReplaceAll(raw, "\n", "  \n")
	}
	return &mdast.Paragraph{Inlines: parseInlineText(raw, st)}, i
}

func isFenceBoundary(line string) bool {
	_, _, _, ok := isFenceLine(line)
	return ok
}

func isListMarker(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return false
	}
	if (trimmed[0] == '-' || trimmed[0] == '*' || trimmed[0] == '+') && len(trimmed) > 1 && trimmed[1] == ' ' {
		return true
	}
	j := 0
	for j < len(trimmed) && trimmed[j] >= '0' && trimmed[j] <= '9' {
		j++
	}
	if j > 0 && j < len(trimmed) && (trimmed[j] == '.' || trimmed[j] == ')') && j+1 < len(trimmed) && trimmed[j+1] == ' ' {
		return true
	}
	return false
}

func parseList(lines []string, start int, st *blockState) (mdast.Block, int) {
	firstIndent := leadingSpaces(lines[start])
	_, ordered, orderedStart := listMarkerInfo(lines[start])
	list := mdast.NewList(ordered)
	if ordered {
		list.OrderedStart = orderedStart
	}

	i := start
	for i < len(lines) {
		line := lines[i]
		if isBlankLine(line) {
			// A single blank line followed by another item at the
			// same indent continues the list; anything else ends it.
			if i+1 < len(lines) && isListMarker(lines[i+1]) && leadingSpaces(lines[i+1]) == firstIndent {
				i++
				continue
			}
			break
		}
		indent := leadingSpaces(line)
		if indent < firstIndent {
			break
		}
		if indent == firstIndent && isListMarker(line) {
			entry, next := parseListEntry(lines, i, firstIndent, st)
			list.Entries = append(list.Entries, entry)
			i = next
			continue
		}
		if indent > firstIndent {
			// Lazily absorbed continuation/sublist text belongs to the
			// previous entry; parseListEntry already consumed it.
			break
		}
		break
	}
	return list, i
}

func listMarkerInfo(line string) (markerLen int, ordered bool, start int) {
	trimmed := strings.TrimLeft(line, " ")
	indent := leadingSpaces(line)
	if trimmed[0] == '-' || trimmed[0] == '*' || trimmed[0] == '+' {
		return indent + 2, false, 0
	}
	j := 0
	for j < len(trimmed) && trimmed[j] >= '0' && trimmed[j] <= '9' {
		j++
	}
	n, _ := strconv.Atoi(trimmed[:j])
	return indent + j + 2, true, n
}

func parseListEntry(lines []string, start, indent int, st *blockState) (*mdast.ListEntry, int) {
	markerLen, _, _ := listMarkerInfo(lines[start])
	contentIndent := markerLen
	firstContent := lines[start][markerLen:]

	var raw []string
	raw = append(raw, firstContent)
	i := start + 1
	for i < len(lines) {
		line := lines[i]
		if isBlankLine(line) {
			break
		}
		lineIndent := leadingSpaces(line)
		if lineIndent >= contentIndent && isListMarker(strings.TrimPrefix(line, strings.Repeat(" ", contentIndent))) {
			break
		}
		if lineIndent < contentIndent && isListMarker(line) {
			break
		}
		if lineIndent >= contentIndent {
			raw = append(raw, line[min(contentIndent, len(line)):])
			i++
			continue
		}
		break
	}

	text := strings.TrimSpace(strings.Join(raw, "\n"))
	checked := mdast.CheckNone
	if len(text) >= 4 && text[0] == '[' && text[2] == ']' && text[3] == ' ' {
		switch text[1] {
		case ' ':
			checked = mdast.CheckUnchecked
			text = strings.TrimSpace(text[4:])
		case 'x', 'X':
			checked = mdast.CheckChecked
			text = strings.TrimSpace(text[4:])
		}
	}

	entry := &mdast.ListEntry{Inlines: parseInlineText(text, st), Checked: checked}

	// Sublists: remaining indented lines at indent >= contentIndent that
	// themselves open with a list marker.
	var sub []string
	for i < len(lines) {
		line := lines[i]
		if isBlankLine(line) {
			i++
			continue
		}
		lineIndent := leadingSpaces(line)
		if lineIndent < contentIndent {
			break
		}
		sub = append(sub, line[min(contentIndent, len(line)):])
		i++
	}
	if len(sub) > 0 {
		for _, b := range parseBlocks(sub, 0, st) {
			if l, ok := b.(*mdast.List); ok {
				entry.Sublists = append(entry.Sublists, l)
			}
		}
	}

	return entry, i
}

func isTableHeader(lines []string, i int) bool {
	if !strings.Contains(lines[i], "|") {
		return false
	}
	if i+1 >= len(lines) {
		return false
	}
	return isTableAlignRow(lines[i+1])
}

func isTableAlignRow(line string) bool {
	trimmed := strings.Trim(strings.TrimSpace(line), "|")
	if trimmed == "" {
		return false
	}
	for _, cell := range strings.Split(trimmed, "|") {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return false
		}
		for i, c := range cell {
			if c == ':' && (i == 0 || i == len(cell)-1) {
				continue
			}
			if c != '-' {
				return false
			}
		}
	}
	return true
}

func splitTableRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	parts := strings.Split(trimmed, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseTable(lines []string, start int, st *blockState) (mdast.Block, int) {
	headerCells := splitTableRow(lines[start])
	alignCells := splitTableRow(lines[start+1])

	alignments := make([]mdast.Alignment, len(alignCells))
	for i, c := range alignCells {
		left := strings.HasPrefix(c, ":")
		right := strings.HasSuffix(c, ":")
		switch {
		case left && right:
			alignments[i] = mdast.AlignCenter
		case left:
			alignments[i] = mdast.AlignLeft
		case right:
			alignments[i] = mdast.AlignRight
		default:
			alignments[i] = mdast.AlignNone
		}
	}

	rows := [][]mdast.TableCell{tableRow(headerCells, st)}

	i := start + 2
	for i < len(lines) && strings.Contains(lines[i], "|") && !isBlankLine(lines[i]) {
		cells := splitTableRow(lines[i])
		if len(cells) != len(headerCells) {
			warn(&st.warnings, "table", i, lines[i], IssueMalformedTableRow,
				"table row cell count does not match header")
		}
		rows = append(rows, tableRow(cells, st))
		i++
	}

	return &mdast.Table{Rows: rows, Alignments: alignments}, i
}

func tableRow(cells []string, st *blockState) []mdast.TableCell {
	row := make([]mdast.TableCell, len(cells))
	for i, c := range cells {
		row[i] = mdast.TableCell{Inlines: parseInlineText(c, st)}
	}
	return row
}
