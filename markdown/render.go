package markdown

import (
	"github.com/brindlecrest/inkwell/htmlast"
	"github.com/brindlecrest/inkwell/mdast"
	"github.com/brindlecrest/inkwell/mdopts"
	"github.com/brindlecrest/inkwell/render"
)

// Render lowers a Document into an HTML element tree (§6). data holds the
// deep-mergeable render options (§4.5's option table); callbacks carries
// the function-valued extension points; parent, if non-nil, is the
// element the rendered content is appended into.
func Render(doc *mdast.Document, data map[string]any, callbacks mdopts.Callbacks, parent *htmlast.Element) (*htmlast.Element, error) {
	return render.Render(doc, data, callbacks, parent)
}

// RenderToString renders doc and serializes the result (§6:
// "render_to_string(document, options?) → string").
func RenderToString(doc *mdast.Document, data map[string]any, callbacks mdopts.Callbacks) (string, error) {
	return render.RenderToString(doc, data, callbacks)
}
