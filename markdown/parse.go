// Package markdown is the public facade over the library: parsing
// markdown text into a mdast.Document and rendering a Document to HTML
// (§6: "markdown.parse(text, options?) → Document", "markdown.render
// (document, options?) → HTMLElement").
//
// This package occupies the directory the teacher used for its
// single-pass inline tokenizer (markdown.Tokenize, markdown.Parser). The
// tokenizer's shape — a Parser interface returning a ParseResult with a
// Warnings slice alongside the AST — is preserved here as mdparse.Parse's
// (*mdast.Document, []mdparse.Warning, error) return, now covering the
// full two-pass block+inline parser in package mdparse rather than a
// single inline scan.
package markdown

import (
	"github.com/brindlecrest/inkwell/mdast"
	"github.com/brindlecrest/inkwell/mdparse"
)

// Warning re-exports mdparse.Warning so callers never need to import
// mdparse directly for the common Parse/Render entry points.
type Warning = mdparse.Warning

// Parse parses markdown text into a Document. Options, when non-nil, are
// deep-merged over the documented parser defaults (§4.4.1). Parsing
// never fails on malformed input (§7); Warnings reports what degraded.
func Parse(text string, options map[string]any) (*mdast.Document, []Warning, error) {
	return mdparse.Parse(text, options)
}
