package mdast

import (
	"encoding/json"
	"fmt"
)

// InlineToJSON converts an inline node to its tagged-object (or, for
// plain Text, bare-string) representation per §6's JSON schema.
func InlineToJSON(n Inline) any {
	switch v := n.(type) {
	case *Text:
		if v.IsLinebreak() {
			return map[string]any{"type": "linebreak"}
		}
		return v.Content
	case *Emoji:
		m := map[string]any{"type": "emoji", "id": v.ID}
		if v.SkinTone > 0 {
			m["skin_tone"] = v.SkinTone
		}
		return m
	case *InlineCode:
		return map[string]any{"type": "inline_code", "content": v.Content}
	case *InlineLink:
		return map[string]any{"type": "inline_link", "url": v.URL}
	case *Link:
		return linkLikeJSON("link", v.URL, v.Title, v.Tooltip, v.RefName)
	case *Image:
		return linkLikeJSON("image", v.URL, v.Title, v.Tooltip, v.RefName)
	case *Italic:
		return map[string]any{"type": "italic", "children": inlinesToJSON(v.Children)}
	case *Bold:
		return map[string]any{"type": "bold", "children": inlinesToJSON(v.Children)}
	case *Underline:
		return map[string]any{"type": "underline", "children": inlinesToJSON(v.Children)}
	case *Strikethrough:
		return map[string]any{"type": "strikethrough", "children": inlinesToJSON(v.Children)}
	case *Highlight:
		return map[string]any{"type": "highlight", "children": inlinesToJSON(v.Children)}
	case *Spoiler:
		return map[string]any{"type": "spoiler", "children": inlinesToJSON(v.Children)}
	case *InlineLatex:
		return map[string]any{"type": "inline_latex", "raw": v.Raw, "display": v.Display}
	case *Comment:
		return map[string]any{"type": "comment", "content": v.Content}
	default:
		return nil
	}
}

func linkLikeJSON(kind, url string, title []Inline, tooltip *string, refName string) map[string]any {
	m := map[string]any{
		"type":     kind,
		"url":      url,
		"title":    inlinesToJSON(title),
		"ref_name": refName,
	}
	if tooltip != nil {
		m["tooltip"] = *tooltip
	}
	return m
}

func inlinesToJSON(inlines []Inline) []any {
	out := make([]any, len(inlines))
	for i, n := range inlines {
		out[i] = InlineToJSON(n)
	}
	return out
}

// InlineFromJSON reconstructs an inline node from its JSON value.
func InlineFromJSON(v any) (Inline, error) {
	if s, ok := v.(string); ok {
		return &Text{Content: s}, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("mdast: inline node must be a string or object, got %T", v)
	}
	kind, _ := obj["type"].(string)

	switch kind {
	case "linebreak":
		return NewLinebreak(), nil
	case "emoji":
		e := &Emoji{ID: asString(obj["id"])}
		if st, ok := obj["skin_tone"]; ok {
			e.SkinTone = int(asNumber(st))
		}
		return e, nil
	case "inline_code":
		return &InlineCode{Content: asString(obj["content"])}, nil
	case "inline_link":
		return &InlineLink{URL: asString(obj["url"])}, nil
	case "link", "image":
		title, err := inlinesFromJSON(obj["title"])
		if err != nil {
			return nil, err
		}
		var tooltip *string
		if t, ok := obj["tooltip"]; ok {
			s := asString(t)
			tooltip = &s
		}
		if kind == "link" {
			return &Link{URL: asString(obj["url"]), Title: title, Tooltip: tooltip, RefName: asString(obj["ref_name"])}, nil
		}
		return &Image{URL: asString(obj["url"]), Title: title, Tooltip: tooltip, RefName: asString(obj["ref_name"])}, nil
	case "italic", "bold", "underline", "strikethrough", "highlight", "spoiler":
		children, err := inlinesFromJSON(obj["children"])
		if err != nil {
			return nil, err
		}
		switch kind {
		case "italic":
			return &Italic{Children: children}, nil
		case "bold":
			return &Bold{Children: children}, nil
		case "underline":
			return &Underline{Children: children}, nil
		case "strikethrough":
			return NewStrikethrough(children), nil
		case "highlight":
			return NewHighlight(children), nil
		default:
			return NewSpoiler(children), nil
		}
	case "inline_latex":
		display, _ := obj["display"].(bool)
		return &InlineLatex{Raw: asString(obj["raw"]), Display: display}, nil
	case "comment":
		return &Comment{Content: asString(obj["content"])}, nil
	default:
		return nil, fmt.Errorf("mdast: unknown inline node type %q", kind)
	}
}

func inlinesFromJSON(v any) ([]Inline, error) {
	arr, ok := v.([]any)
	if !ok {
		if v == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("mdast: expected array of inline nodes, got %T", v)
	}
	out := make([]Inline, len(arr))
	for i, item := range arr {
		n, err := InlineFromJSON(item)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	default:
		return 0
	}
}
