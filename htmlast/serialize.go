package htmlast

import "strings"

// escapeText applies the escaping rule for t.Mode (§4.1).
func escapeText(t *Text) string {
	switch t.Mode {
	case ModeRaw:
		return t.Content
	case ModeCode:
		return escapeCode(t.Content)
	default:
		return escapeNormal(t.Content)
	}
}

func escapeNormal(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func escapeCode(s string) string {
	r := strings.NewReplacer("<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func escapeAttrValue(s string) string {
	r := strings.NewReplacer("&", "&amp;", "\"", "&quot;")
	return r.Replace(s)
}

// Serialize renders n (and, for an Element, its whole subtree) to HTML.
func Serialize(n Node) string {
	return string(appendNode(nil, n))
}

func appendNode(b []byte, n Node) []byte {
	switch v := n.(type) {
	case *Text:
		return append(b, escapeText(v)...)
	case *Comment:
		b = append(b, "<!--"...)
		b = append(b, v.Content...)
		return append(b, "-->"...)
	case *Element:
		return appendElement(b, v)
	default:
		return b
	}
}

func appendElement(b []byte, e *Element) []byte {
	b = append(b, '<')
	b = append(b, e.Tag...)
	for _, a := range e.attrs {
		if a.Kind == AttrTokens && len(a.Tokens) == 0 {
			continue
		}
		if a.Kind == AttrStyle && len(a.Style) == 0 {
			continue
		}
		if a.Kind == AttrBool {
			if !a.Present {
				continue
			}
			b = append(b, ' ')
			b = append(b, a.Name...)
			continue
		}
		b = append(b, ' ')
		b = append(b, a.Name...)
		b = append(b, '=', '"')
		switch a.Kind {
		case AttrTokens:
			b = append(b, escapeAttrValue(joinTokens(a.Tokens))...)
		case AttrStyle:
			b = append(b, escapeAttrValue(renderStyle(a.Style))...)
		default:
			b = append(b, escapeAttrValue(a.Value)...)
		}
		b = append(b, '"')
	}

	if e.selfClose {
		return append(b, '/', '>')
	}
	b = append(b, '>')

	for _, c := range e.children {
		b = appendNode(b, c)
	}

	b = append(b, '<', '/')
	b = append(b, e.Tag...)
	return append(b, '>')
}
