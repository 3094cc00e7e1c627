package htmlast

import "strings"

// AttrKind distinguishes the three shapes an attribute value can take.
type AttrKind int

const (
	// AttrString is a plain string value, e.g. href="...".
	AttrString AttrKind = iota
	// AttrTokens is a space-delimited token list, e.g. class="a b c".
	AttrTokens
	// AttrStyle is an ordered key/value map serialized as "k:v;k2:v2".
	AttrStyle
	// AttrBool is a bare HTML boolean attribute (checked, disabled, ...):
	// present with no "=value" when true, entirely absent when false.
	AttrBool
)

// Attribute is one name/value pair on an Element. Order of attributes on
// an Element is preserved for deterministic serialization.
type Attribute struct {
	Name    string
	Kind    AttrKind
	Value   string      // used when Kind == AttrString
	Tokens  []string    // used when Kind == AttrTokens, in insertion order, deduplicated
	Style   []StyleDecl // used when Kind == AttrStyle, in insertion order
	Present bool        // used when Kind == AttrBool
}

// StyleDecl is a single "property: value" declaration inside a style
// attribute.
type StyleDecl struct {
	Property string
	Value    string
}

// hasToken reports whether tok is already present in the token list.
func hasToken(tokens []string, tok string) bool {
	for _, t := range tokens {
		if t == tok {
			return true
		}
	}
	return false
}

// addTokens appends any of the given tokens not already present, in order,
// skipping empty strings — this is how §4.1's "add token to tokenized
// attribute" and the class-merge invariant in §3.1 are implemented.
func addTokens(existing []string, add ...string) []string {
	for _, t := range add {
		if t == "" || hasToken(existing, t) {
			continue
		}
		existing = append(existing, t)
	}
	return existing
}

// renderStyle joins style declarations into a "prop:value;prop2:value2"
// string, the form the serializer writes into the style="" attribute.
func renderStyle(decls []StyleDecl) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
	}
	return b.String()
}
