// Package htmlsan scrubs an htmlast subtree down to an allowlisted set of
// tags and attributes.
//
// The walk-and-filter shape is adapted from the teacher's scum.Dictionary,
// which keeps a 256-entry table keyed by tag byte to decide how each tag
// is handled during tokenization; here the table is keyed by tag name and
// decides, during a tree walk, whether a tag survives and which of its
// attributes do.
package htmlsan

import "github.com/brindlecrest/inkwell/htmlast"

// AttrPolicy maps a tag name (or "*" for the wildcard fallback) to the set
// of attribute names allowed on elements with that tag.
type AttrPolicy map[string]map[string]bool

// DefaultDisallowedTags is the allowlist gate's default deny set (§4.2).
func DefaultDisallowedTags() map[string]bool {
	return map[string]bool{
		"iframe": true, "noembed": true, "noframes": true, "plaintext": true,
		"script": true, "style": true, "svg": true, "textarea": true,
		"title": true, "xmp": true,
	}
}

// DefaultAttrPolicy is the default attribute allowlist (§4.2).
func DefaultAttrPolicy() AttrPolicy {
	return AttrPolicy{
		"*": set("align", "aria-hidden", "class", "id", "lang", "style", "title"),
		"img": set("width", "height", "src", "alt"),
		"a":   set("href"),
	}
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Sanitize returns a scrubbed copy of root's subtree: elements whose tag
// is in disallowedTags are dropped entirely, subtree and all (§4.2
// default policy); every surviving element keeps only attributes named in
// policy[tag] or policy["*"]. A nil disallowedTags or policy falls back to
// the package defaults. Sanitize is idempotent and does not depend on
// serializing and reparsing its input.
func Sanitize(root *htmlast.Element, disallowedTags map[string]bool, policy AttrPolicy) *htmlast.Element {
	if disallowedTags == nil {
		disallowedTags = DefaultDisallowedTags()
	}
	if policy == nil {
		policy = DefaultAttrPolicy()
	}
	out := cloneShallow(root)
	out.SetChildren(sanitizeChildren(root.Children(), disallowedTags, policy))
	applyAttrPolicy(out, policy)
	return out
}

// cloneShallow copies an element's tag and attributes but not its
// children; callers fill in scrubbed children separately.
func cloneShallow(e *htmlast.Element) *htmlast.Element {
	clone := htmlast.NewElement(e.Tag)
	for _, a := range e.Attrs() {
		switch a.Kind {
		case htmlast.AttrTokens:
			clone.AddToken(a.Name, a.Tokens...)
		case htmlast.AttrStyle:
			for _, d := range a.Style {
				clone.SetStyle(d.Property, d.Value)
			}
		case htmlast.AttrBool:
			clone.SetBoolAttr(a.Name, a.Present)
		default:
			clone.SetAttr(a.Name, a.Value)
		}
	}
	return clone
}

func sanitizeChildren(children []htmlast.Node, disallowedTags map[string]bool, policy AttrPolicy) []htmlast.Node {
	out := make([]htmlast.Node, 0, len(children))
	for _, c := range children {
		out = append(out, sanitizeNode(c, disallowedTags, policy)...)
	}
	return out
}

// sanitizeNode returns zero or more replacement nodes for c: a Text or
// Comment passes through unchanged (one node out); a disallowed Element
// is dropped along with its whole subtree (zero nodes out); an allowed
// Element becomes exactly one scrubbed Element.
func sanitizeNode(c htmlast.Node, disallowedTags map[string]bool, policy AttrPolicy) []htmlast.Node {
	el, ok := c.(*htmlast.Element)
	if !ok {
		return []htmlast.Node{c}
	}

	if disallowedTags[el.Tag] {
		return nil
	}

	clone := cloneShallow(el)
	clone.SetChildren(sanitizeChildren(el.Children(), disallowedTags, policy))
	applyAttrPolicy(clone, policy)
	return []htmlast.Node{clone}
}

func applyAttrPolicy(e *htmlast.Element, policy AttrPolicy) {
	allowed := policy[e.Tag]
	wildcard := policy["*"]

	var drop []string
	for _, a := range e.Attrs() {
		if !allowed[a.Name] && !wildcard[a.Name] {
			drop = append(drop, a.Name)
		}
	}
	for _, name := range drop {
		e.RemoveAttr(name)
	}
}
