// Package html is the public facade over htmlparse and htmlsan (§6:
// "html.parse(fragment) → Element", "html.sanitize(element,
// disallowed_tags?, attr_policy?) → Element").
package html

import (
	"github.com/brindlecrest/inkwell/htmlast"
	"github.com/brindlecrest/inkwell/htmlparse"
	"github.com/brindlecrest/inkwell/htmlsan"
)

// AttrPolicy re-exports htmlsan.AttrPolicy.
type AttrPolicy = htmlsan.AttrPolicy

// Parse parses an HTML fragment into a sequence of htmlast nodes.
func Parse(fragment string) []htmlast.Node {
	return htmlparse.Parse(fragment)
}

// Sanitize scrubs root's subtree down to an allowlisted set of tags and
// attributes. A nil disallowedTags or policy falls back to the package
// defaults.
func Sanitize(root *htmlast.Element, disallowedTags map[string]bool, policy AttrPolicy) *htmlast.Element {
	return htmlsan.Sanitize(root, disallowedTags, policy)
}
