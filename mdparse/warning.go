// Package mdparse implements the two-pass Markdown parser: a block pass
// that splits input into logical lines and emits mdast.Block nodes, and
// an inline pass that scans each block's raw text for delimiter runs,
// links, code spans and the other inline constructs (§4.4).
//
// The block/inline split, the Warning shape, and the Issue enum are
// adapted from the teacher's markdown package (markdown.ParseResult,
// markdown.Warning) and scum's Issue enum, generalized from a
// single-pass inline tokenizer to this package's two-pass design.
package mdparse

// Issue categorizes a non-fatal parsing problem (§4.4.3, §7:
// "MalformedInput ... not an error").
type Issue int

const (
	// IssueRedundantEscape means a backslash trailed the input with
	// nothing to escape; the backslash is dropped.
	IssueRedundantEscape Issue = iota

	// IssueUnclosedDelimiter means an opening delimiter run (emphasis,
	// strikethrough, highlight, spoiler) had no matching close before the
	// end of its block and degraded to literal text, or a `$$` display
	// block had no closing `$$`. Unclosed code spans and inline `$` spans
	// also stay literal text but are not reported.
	IssueUnclosedDelimiter

	// IssueUnresolvedReference means a reference-style link or image
	// named a reference that is not (yet, at parse time) present in the
	// document's reference table.
	IssueUnresolvedReference

	// IssueMalformedTableRow means a table body row's cell count did
	// not match the header; the row is still kept with the cells it has.
	IssueMalformedTableRow

	// IssueUnterminatedFence means a fenced code block had no matching
	// closing fence before EOF; its content runs to the end of input.
	IssueUnterminatedFence

	// IssueInvalidSkinTone means an emoji's `:skin-tone-N:` suffix had a
	// digit outside the validated 1-5 range; the suffix is left as
	// literal text rather than attached to the Emoji node.
	IssueInvalidSkinTone
)

// Warning reports a single non-critical issue found during parsing. The
// parser always produces a best-effort Document regardless of Warnings
// (§7: "parsing never fails").
type Warning struct {
	// Kind is the kind of the node or construct the warning concerns,
	// e.g. "emphasis", "table", "block_code".
	Kind string `json:"kind"`

	// Line is, for block-pass warnings, the zero-based index of the line
	// within the lines being scanned (inside a block quote or list item
	// this counts from that block's own first line). Inline-pass warnings
	// always carry 0.
	Line int `json:"line"`

	// Near is a short snippet of the input near the problem.
	Near string `json:"near"`

	Issue       Issue  `json:"issue"`
	Description string `json:"description"`
}

func warn(w *[]Warning, kind string, line int, near string, issue Issue, description string) {
	*w = append(*w, Warning{Kind: kind, Line: line, Near: near, Issue: issue, Description: description})
}
