package htmlast

// voidTags serialize without children and without a closing tag (§4.1).
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// preserveWhitespaceTags keep their text content's original whitespace
// both when serialized and when purged of empty children (§4.1).
var preserveWhitespaceTags = map[string]bool{
	"pre": true, "code": true, "textarea": true,
}

// Element is a tagged node with attributes and ordered children.
type Element struct {
	Tag        string
	attrs      []Attribute
	children   []Node
	selfClose  bool
	preserveWS bool
}

func (*Element) Kind() NodeKind { return KindElement }

// NewElement creates an element for the given tag name, deriving its
// self-closing and whitespace-preserving flags from the tag table.
func NewElement(tag string) *Element {
	return &Element{
		Tag:        tag,
		selfClose:  voidTags[tag],
		preserveWS: preserveWhitespaceTags[tag],
	}
}

// IsVoid reports whether e serializes without a closing tag.
func (e *Element) IsVoid() bool { return e.selfClose }

// PreservesWhitespace reports whether e is a pre/code/textarea element.
func (e *Element) PreservesWhitespace() bool { return e.preserveWS }

// Children returns e's child nodes in document order.
func (e *Element) Children() []Node { return e.children }

// Append adds a child node. A void element silently ignores appends,
// matching the invariant that "self-closing tags hold no children."
// A bare string is coerced into a ModeNormal Text node.
func (e *Element) Append(child any) {
	if e.selfClose {
		return
	}
	switch v := child.(type) {
	case nil:
		return
	case string:
		if v == "" {
			return
		}
		e.children = append(e.children, NewText(v))
	case Node:
		e.children = append(e.children, v)
	}
}

// AppendAll appends each of children in order.
func (e *Element) AppendAll(children ...any) {
	for _, c := range children {
		e.Append(c)
	}
}

// SetChildren replaces e's children wholesale.
func (e *Element) SetChildren(children []Node) { e.children = children }

func (e *Element) findAttr(name string) int {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			return i
		}
	}
	return -1
}

// Attr returns the raw Attribute and whether it is present.
func (e *Element) Attr(name string) (Attribute, bool) {
	if i := e.findAttr(name); i >= 0 {
		return e.attrs[i], true
	}
	return Attribute{}, false
}

// Attrs returns e's attributes in insertion order.
func (e *Element) Attrs() []Attribute { return e.attrs }

// GetAttr returns the string value of a plain or style attribute, or ""
// if it is absent. For AttrTokens it returns the space-joined tokens.
func (e *Element) GetAttr(name string) string {
	a, ok := e.Attr(name)
	if !ok {
		return ""
	}
	switch a.Kind {
	case AttrTokens:
		return joinTokens(a.Tokens)
	case AttrStyle:
		return renderStyle(a.Style)
	case AttrBool:
		if a.Present {
			return a.Name
		}
		return ""
	default:
		return a.Value
	}
}

func joinTokens(tokens []string) string {
	out := ""
	for i, t := range tokens {
		if i > 0 {
			out += " "
		}
		out += t
	}
	return out
}

// SetAttr sets (overwriting any existing value) a plain string attribute.
// Setting "class" through SetAttr replaces the whole token list, so
// callers that want to merge classes should use AddClass instead.
func (e *Element) SetAttr(name, value string) {
	if i := e.findAttr(name); i >= 0 {
		e.attrs[i] = Attribute{Name: name, Kind: AttrString, Value: value}
		return
	}
	e.attrs = append(e.attrs, Attribute{Name: name, Kind: AttrString, Value: value})
}

// SetBoolAttr sets a bare HTML boolean attribute (checked, disabled,
// readonly, ...). present == false both sets and serializes as absent,
// matching the HTML boolean-attribute model where presence (not value)
// carries the meaning.
func (e *Element) SetBoolAttr(name string, present bool) {
	if i := e.findAttr(name); i >= 0 {
		e.attrs[i] = Attribute{Name: name, Kind: AttrBool, Present: present}
		return
	}
	e.attrs = append(e.attrs, Attribute{Name: name, Kind: AttrBool, Present: present})
}

// RemoveAttr drops the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	i := e.findAttr(name)
	if i < 0 {
		return
	}
	e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
}

// AddClass appends one or more class tokens, merging without duplicates
// (§3.1: "setting class to a list merges tokens without duplicates").
func (e *Element) AddClass(classes ...string) {
	i := e.findAttr("class")
	if i < 0 {
		e.attrs = append(e.attrs, Attribute{Name: "class", Kind: AttrTokens, Tokens: addTokens(nil, classes...)})
		return
	}
	e.attrs[i].Kind = AttrTokens
	e.attrs[i].Tokens = addTokens(e.attrs[i].Tokens, classes...)
}

// AddToken appends a token to any space-delimited attribute, not just
// class (§4.1: "add token to tokenized attribute").
func (e *Element) AddToken(name string, tokens ...string) {
	i := e.findAttr(name)
	if i < 0 {
		e.attrs = append(e.attrs, Attribute{Name: name, Kind: AttrTokens, Tokens: addTokens(nil, tokens...)})
		return
	}
	e.attrs[i].Kind = AttrTokens
	e.attrs[i].Tokens = addTokens(e.attrs[i].Tokens, tokens...)
}

// SetStyle sets a single style declaration, overwriting any existing
// declaration for the same property and preserving declaration order
// otherwise.
func (e *Element) SetStyle(property, value string) {
	i := e.findAttr("style")
	if i < 0 {
		e.attrs = append(e.attrs, Attribute{Name: "style", Kind: AttrStyle, Style: []StyleDecl{{property, value}}})
		return
	}
	e.attrs[i].Kind = AttrStyle
	for j := range e.attrs[i].Style {
		if e.attrs[i].Style[j].Property == property {
			e.attrs[i].Style[j].Value = value
			return
		}
	}
	e.attrs[i].Style = append(e.attrs[i].Style, StyleDecl{property, value})
}

// InnerHTML returns the serialized form of e's children only.
func (e *Element) InnerHTML() string {
	var b []byte
	for _, c := range e.children {
		b = appendNode(b, c)
	}
	return string(b)
}

// OuterHTML returns the serialized form of e including its own tag.
func (e *Element) OuterHTML() string {
	return string(appendNode(nil, e))
}

// PurgeEmptyChildren recursively drops Text children whose escaped
// content is empty and Element children whose own serialization
// collapses to the empty string, except void tags (§4.1).
func (e *Element) PurgeEmptyChildren() {
	if e.selfClose {
		return
	}
	kept := e.children[:0]
	for _, c := range e.children {
		switch n := c.(type) {
		case *Text:
			if escapeText(n) == "" {
				continue
			}
		case *Element:
			n.PurgeEmptyChildren()
			if !n.selfClose && len(n.children) == 0 {
				continue
			}
		}
		kept = append(kept, c)
	}
	e.children = kept
}
