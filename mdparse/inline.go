package mdparse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/brindlecrest/inkwell/mdast"
	"github.com/brindlecrest/inkwell/mdopts"
)

// delimFrame is an open emphasis-capable delimiter run waiting for its
// match, adapted from the teacher's stack-based tag matching in scum
// (Dictionary/Tag/Rule) down to the single concern this package needs:
// emphasis, strikethrough, highlight and spoiler nesting (§4.4.3,
// GLOSSARY "Delimiter run").
type delimFrame struct {
	char  byte
	count int
	// pos is the index into out where this frame's content begins.
	pos int
}

// inlineScanner holds the cursor state threaded through parseInlineText's
// helpers.
type inlineScanner struct {
	s   string
	i   int
	st  *blockState
	out []mdast.Inline
}

// parseInlineText runs the inline pass over a single block's raw text
// (§4.4.3). Unmatched delimiters degrade to literal text at the end of
// input, per the "MalformedInput ... not an error" contract (§7).
func parseInlineText(raw string, st *blockState) []mdast.Inline {
	sc := &inlineScanner{s: raw, st: st}
	var stack []delimFrame

	flushText := func(content string) {
		if content == "" {
			return
		}
		sc.out = append(sc.out, &mdast.Text{Content: content})
	}

	var textBuf strings.Builder
	emit := func() { flushText(textBuf.String()); textBuf.Reset() }

	for sc.i < len(sc.s) {
		c := sc.s[sc.i]

		switch {
		case c == '\\' && sc.i+1 < len(sc.s) && isASCIIPunct(sc.s[sc.i+1]):
			textBuf.WriteByte(sc.s[sc.i+1])
			sc.i += 2

		case c == '\\' && sc.i+1 >= len(sc.s):
			warn(&st.warnings, "text", 0, "\\", IssueRedundantEscape, "trailing backslash has nothing to escape")
			sc.i++

		case c == '`':
			emit()
			if node, next, ok := scanCodeSpan(sc.s, sc.i); ok {
				sc.out = append(sc.out, node)
				sc.i = next
			} else {
				textBuf.WriteByte('`')
				sc.i++
			}

		case c == '$' && st.opts.Latex:
			emit()
			if node, next, ok := scanInlineLatex(sc.s, sc.i); ok {
				sc.out = append(sc.out, node)
				sc.i = next
			} else {
				textBuf.WriteByte('$')
				sc.i++
			}

		case c == ':':
			emit()
			if node, next, ok := scanEmoji(sc.s, sc.i, st); ok {
				sc.out = append(sc.out, node)
				sc.i = next
			} else {
				textBuf.WriteByte(':')
				sc.i++
			}

		case c == '<':
			emit()
			if node, next, ok := scanAutolink(sc.s, sc.i); ok {
				sc.out = append(sc.out, node)
				sc.i = next
			} else if node, next, ok := scanInlineComment(sc.s, sc.i); ok {
				sc.out = append(sc.out, node)
				sc.i = next
			} else {
				textBuf.WriteByte('<')
				sc.i++
			}

		case c == '!' && sc.i+1 < len(sc.s) && sc.s[sc.i+1] == '[':
			emit()
			if node, next, ok := scanLinkOrImage(sc.s, sc.i+1, true, st); ok {
				sc.out = append(sc.out, node)
				sc.i = next
			} else {
				textBuf.WriteByte('!')
				sc.i++
			}

		case c == '[':
			emit()
			if node, next, ok := scanLinkOrImage(sc.s, sc.i, false, st); ok {
				sc.out = append(sc.out, node)
				sc.i = next
			} else {
				textBuf.WriteByte('[')
				sc.i++
			}

		case st.opts.AutoLink && c == 'h' && looksLikeBareURL(sc.s[sc.i:]):
			emit()
			url, next := scanBareURL(sc.s, sc.i)
			sc.out = append(sc.out, &mdast.InlineLink{URL: url})
			sc.i = next

		case isEmphasisChar(c):
			run, count := scanDelimRun(sc.s, sc.i)
			if c == '_' && isIntraword(sc.s, sc.i, count) {
				textBuf.WriteString(run)
				sc.i += count
				break
			}
			if requiresDoubleRun(c) && count < 2 {
				textBuf.WriteString(run)
				sc.i += count
				break
			}
			canOpen, canClose := delimFlanking(sc.s, sc.i, count)

			if canClose {
				if idx := findOpenFrame(stack, c, count); idx >= 0 {
					emit()
					frame := stack[idx]
					children := append([]mdast.Inline{}, sc.out[frame.pos:]...)
					sc.out = sc.out[:frame.pos]
					sc.out = append(sc.out, buildEmphasisNode(c, frame.count, children))
					stack = stack[:idx]
					sc.i += count
					break
				}
			}
			if canOpen {
				emit()
				stack = append(stack, delimFrame{char: c, count: count, pos: len(sc.out)})
				sc.i += count
				break
			}
			textBuf.WriteString(run)
			sc.i += count

		case c == '\n':
			if strings.HasSuffix(textBuf.String(), "  ") {
				trimmed := strings.TrimRight(textBuf.String(), " ")
				textBuf.Reset()
				textBuf.WriteString(trimmed)
				emit()
				sc.out = append(sc.out, mdast.NewLinebreak())
			} else {
				textBuf.WriteByte(' ')
			}
			sc.i++

		default:
			r, size := utf8.DecodeRuneInString(sc.s[sc.i:])
			textBuf.WriteRune(r)
			sc.i += size
		}
	}
	emit()

	// Unmatched delimiters degrade to literal text (§4.4.3, §7).
	for _, frame := range stack {
		if frame.pos <= len(sc.out) {
			marker := strings.Repeat(string(frame.char), frame.count)
			sc.out = insertTextAt(sc.out, frame.pos, marker)
			warn(&st.warnings, "emphasis", 0, marker, IssueUnclosedDelimiter, "unmatched delimiter run degraded to literal text")
		}
	}

	return sc.out
}

func insertTextAt(out []mdast.Inline, pos int, content string) []mdast.Inline {
	node := &mdast.Text{Content: content}
	result := make([]mdast.Inline, 0, len(out)+1)
	result = append(result, out[:pos]...)
	result = append(result, node)
	result = append(result, out[pos:]...)
	return result
}

func isASCIIPunct(c byte) bool {
	return strings.IndexByte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", c) >= 0
}

func isEmphasisChar(c byte) bool {
	return c == '*' || c == '_' || c == '~' || c == '=' || c == '|'
}

// requiresDoubleRun reports whether char only forms a delimiter as a run
// of two or more: `~~text~~`, `==text==`, `||text||` (§4.4.3). A lone
// `~`/`=`/`|` is never a delimiter and degrades to literal text, unlike
// `*`/`_` which accept a single-character run as emphasis.
func requiresDoubleRun(c byte) bool {
	return c == '~' || c == '=' || c == '|'
}

func scanDelimRun(s string, i int) (run string, count int) {
	c := s[i]
	j := i
	for j < len(s) && s[j] == c {
		j++
	}
	return s[i:j], j - i
}

func isIntraword(s string, i, count int) bool {
	before := i > 0 && isWordByte(s[i-1])
	after := i+count < len(s) && isWordByte(s[i+count])
	return before && after
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// delimFlanking approximates CommonMark's left/right-flanking rule: a run
// can open if followed by non-space, can close if preceded by non-space.
func delimFlanking(s string, i, count int) (canOpen, canClose bool) {
	var before, after rune = ' ', ' '
	if i > 0 {
		before, _ = utf8.DecodeLastRuneInString(s[:i])
	}
	if i+count < len(s) {
		after, _ = utf8.DecodeRuneInString(s[i+count:])
	}
	canOpen = !unicode.IsSpace(after)
	canClose = !unicode.IsSpace(before)
	return
}

// findOpenFrame returns the index of the innermost (last-pushed) open
// frame of the same delimiter char, per "ties: innermost/most-recent open
// wins" (§4.4.3). Run lengths are not compared: the opener's count alone
// decides the node kind built for the match.
func findOpenFrame(stack []delimFrame, char byte, _ int) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].char == char {
			return i
		}
	}
	return -1
}

// buildEmphasisNode assumes count >= 2 for '~'/'='/'|' delimiters — the
// caller never opens or closes a frame for those chars with count < 2
// (requiresDoubleRun).
func buildEmphasisNode(char byte, count int, children []mdast.Inline) mdast.Inline {
	switch {
	case char == '~':
		return mdast.NewStrikethrough(children)
	case char == '=':
		return mdast.NewHighlight(children)
	case char == '|':
		return mdast.NewSpoiler(children)
	case char == '_' && count >= 3:
		return &mdast.Underline{Children: []mdast.Inline{&mdast.Italic{Children: children}}}
	case char == '_' && count == 2:
		return &mdast.Underline{Children: children}
	case char == '*' && count >= 3:
		return &mdast.Bold{Children: []mdast.Inline{&mdast.Italic{Children: children}}}
	case char == '*' && count == 2:
		return &mdast.Bold{Children: children}
	default:
		return &mdast.Italic{Children: children}
	}
}

func scanCodeSpan(s string, i int) (mdast.Inline, int, bool) {
	fenceLen := 0
	for i+fenceLen < len(s) && s[i+fenceLen] == '`' {
		fenceLen++
	}
	fence := s[i : i+fenceLen]
	close := strings.Index(s[i+fenceLen:], fence)
	if close < 0 {
		return nil, 0, false
	}
	content := s[i+fenceLen : i+fenceLen+close]
	content = strings.Trim(content, " ")
	return &mdast.InlineCode{Content: content}, i + fenceLen + close + fenceLen, true
}

func scanInlineLatex(s string, i int) (mdast.Inline, int, bool) {
	if i+1 >= len(s) || s[i+1] == ' ' || s[i+1] == '$' {
		return nil, 0, false
	}
	j := i + 1
	for j < len(s) {
		if s[j] == '$' && s[j-1] != ' ' {
			break
		}
		j++
	}
	if j >= len(s) {
		return nil, 0, false
	}
	if j+1 < len(s) && s[j+1] >= '0' && s[j+1] <= '9' {
		return nil, 0, false
	}
	return &mdast.InlineLatex{Raw: s[i+1 : j], Display: false}, j + 1, true
}

func scanEmoji(s string, i int, st *blockState) (mdast.Inline, int, bool) {
	dict := st.opts.EmojiDictionary()
	if len(dict) == 0 {
		return nil, 0, false
	}
	j := i + 1
	for j < len(s) && s[j] != ':' && isWordOrDashByte(s[j]) {
		j++
	}
	if j >= len(s) || s[j] != ':' {
		return nil, 0, false
	}
	name := s[i+1 : j]
	if !dict[name] {
		return nil, 0, false
	}
	end := j + 1
	skin := 0
	const prefix = ":skin-tone-"
	if strings.HasPrefix(s[end:], prefix) && end+len(prefix) < len(s) {
		n := int(s[end+len(prefix)]) - int('0')
		if mdopts.ValidSkinTone(n) && end+len(prefix)+1 < len(s) && s[end+len(prefix)+1] == ':' {
			skin = n
			end = end + len(prefix) + 2
		} else {
			warn(&st.warnings, "emoji", 0, s[end:end+len(prefix)+1], IssueInvalidSkinTone, "skin-tone suffix digit out of range 1-5, left as literal text")
		}
	}
	return &mdast.Emoji{ID: name, SkinTone: skin}, end, true
}

func isWordOrDashByte(c byte) bool {
	return isWordByte(c) || c == '-' || c == '_' || c == '+'
}

func looksLikeBareURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func scanBareURL(s string, i int) (string, int) {
	j := i
	for j < len(s) && !unicode.IsSpace(rune(s[j])) {
		j++
	}
	return s[i:j], j
}

var autolinkSchemes = []string{"http://", "https://", "mailto:", "ftp://"}

func scanAutolink(s string, i int) (mdast.Inline, int, bool) {
	close := strings.IndexByte(s[i:], '>')
	if close < 0 {
		return nil, 0, false
	}
	inner := s[i+1 : i+close]
	if strings.ContainsAny(inner, " \t\n<") || inner == "" {
		return nil, 0, false
	}
	for _, scheme := range autolinkSchemes {
		if strings.HasPrefix(inner, scheme) {
			return &mdast.InlineLink{URL: inner}, i + close + 1, true
		}
	}
	return nil, 0, false
}

func scanInlineComment(s string, i int) (mdast.Inline, int, bool) {
	if !strings.HasPrefix(s[i:], "<!--") {
		return nil, 0, false
	}
	close := strings.Index(s[i+4:], "-->")
	if close < 0 {
		return nil, 0, false
	}
	content := s[i+4 : i+4+close]
	return &mdast.Comment{Content: content}, i + 4 + close + 3, true
}

// scanLinkOrImage scans `[...]( url "title" )` or `[text][ref]` /
// `[ref][]` starting at the '[' byte (§4.4.3).
func scanLinkOrImage(s string, i int, isImage bool, st *blockState) (mdast.Inline, int, bool) {
	if s[i] != '[' {
		return nil, 0, false
	}
	textEnd := findMatchingBracket(s, i)
	if textEnd < 0 {
		return nil, 0, false
	}
	textContent := s[i+1 : textEnd]
	title := parseInlineText(textContent, st)
	after := textEnd + 1

	if after < len(s) && s[after] == '(' {
		urlEnd := strings.IndexByte(s[after:], ')')
		if urlEnd < 0 {
			return nil, 0, false
		}
		inside := s[after+1 : after+urlEnd]
		url, tooltip := splitURLTitle(inside)
		node := buildLinkNode(isImage, url, tooltip, "", title)
		return node, after + urlEnd + 1, true
	}

	if after < len(s) && s[after] == '[' {
		refEnd := strings.IndexByte(s[after:], ']')
		if refEnd < 0 {
			return nil, 0, false
		}
		refName := s[after+1 : after+refEnd]
		if refName == "" {
			refName = textContent
		}
		node := buildLinkNode(isImage, "", nil, strings.ToLower(refName), title)
		return node, after + refEnd + 1, true
	}

	// Shortcut reference: [ref] with no trailing label.
	node := buildLinkNode(isImage, "", nil, strings.ToLower(textContent), title)
	return node, after, true
}

func buildLinkNode(isImage bool, url string, tooltip *string, refName string, title []mdast.Inline) mdast.Inline {
	title = mdast.NewLinkTitle(title)
	if isImage {
		return &mdast.Image{URL: url, Title: title, Tooltip: tooltip, RefName: refName}
	}
	return &mdast.Link{URL: url, Title: title, Tooltip: tooltip, RefName: refName}
}

func findMatchingBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func splitURLTitle(inside string) (url string, tooltip *string) {
	inside = strings.TrimSpace(inside)
	if strings.HasPrefix(inside, "<") {
		end := strings.IndexByte(inside, '>')
		if end > 0 {
			url = inside[1:end]
			inside = strings.TrimSpace(inside[end+1:])
		}
	} else {
		sp := strings.IndexByte(inside, ' ')
		if sp < 0 {
			return inside, nil
		}
		url = inside[:sp]
		inside = strings.TrimSpace(inside[sp+1:])
	}
	inside = strings.Trim(inside, `"'`)
	if inside != "" {
		tooltip = &inside
	}
	return
}
