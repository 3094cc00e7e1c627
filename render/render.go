// Package render lowers a parsed mdast.Document into an htmlast tree
// (§4.5) and serializes it to a string.
//
// The renderer's recursive block/inline dispatch mirrors the teacher's
// content.PseudoAST.Parse descent from a typed tree into a normalized
// output, generalized from JSON-in/JSON-out to mdast-in/htmlast-out.
package render

import (
	"fmt"

	"github.com/brindlecrest/inkwell/htmlast"
	"github.com/brindlecrest/inkwell/internal/logx"
	"github.com/brindlecrest/inkwell/mdast"
	"github.com/brindlecrest/inkwell/mdopts"
)

// renderState carries the merged options and the document (for reference
// lookups) through the recursive descent (§5: "Parser state is strictly
// local to a single parse invocation" — the renderer's analogue is this
// per-call state, never shared across Render calls).
type renderState struct {
	doc  *mdast.Document
	opts mdopts.RenderOptions
}

// Render lowers doc into an HTML element tree per the merged options
// (§4.5, §6: "markdown.render(document, options?) → HTMLElement").
// The error is non-nil only when the user data cannot be merged or fails
// validation (for example checkbox.disabled_property without
// checkbox.enable). The callbacks other than LatexRenderer have no error
// return; a panic in one of them propagates to the caller.
func Render(doc *mdast.Document, userData map[string]any, callbacks mdopts.Callbacks, parent *htmlast.Element) (*htmlast.Element, error) {
	opts, err := mdopts.MergeRenderOptions(userData, callbacks, parent)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	root := opts.Parent
	if root == nil {
		root = htmlast.NewElement("div")
	}

	st := &renderState{doc: doc, opts: opts}
	for _, b := range doc.Blocks() {
		for _, n := range renderBlock(b, st) {
			root.Append(n)
		}
	}

	logx.Logger.Debug().Int("blocks", len(doc.Blocks())).Msg("render: document lowered")
	return root, nil
}

// RenderToString is Render followed by htmlast.Serialize (§6:
// "render_to_string(document, options?) → string").
func RenderToString(doc *mdast.Document, userData map[string]any, callbacks mdopts.Callbacks) (string, error) {
	el, err := Render(doc, userData, callbacks, nil)
	if err != nil {
		return "", err
	}
	return htmlast.Serialize(el), nil
}
