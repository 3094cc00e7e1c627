package mdast

import "fmt"

// BlockToJSON converts a block node to its tagged-object representation.
func BlockToJSON(b Block) any {
	switch v := b.(type) {
	case *Paragraph:
		return map[string]any{"type": "paragraph", "inlines": inlinesToJSON(v.Inlines)}
	case *Heading:
		return map[string]any{"type": "heading", "level": v.Level, "inlines": inlinesToJSON(v.Inlines), "id": v.ID()}
	case *BlockCode:
		return map[string]any{"type": "block_code", "code": v.Code, "language": v.Language}
	case *BlockQuote:
		return map[string]any{"type": "quote", "children": blocksToJSON(v.Children)}
	case *HorizontalRule:
		return map[string]any{"type": "horizontal_rule"}
	case *List:
		entries := make([]any, len(v.Entries))
		for i, e := range v.Entries {
			entries[i] = listEntryToJSON(e)
		}
		return map[string]any{
			"type":          "list",
			"ordered":       v.Ordered,
			"ordered_start": v.OrderedStart,
			"entries":       entries,
		}
	case *InlineHTML:
		return map[string]any{"type": "inline_html", "inlines": inlinesToJSON(v.Inlines)}
	case *Table:
		rows := make([]any, len(v.Rows))
		for i, row := range v.Rows {
			rows[i] = tableRowToJSON(row)
		}
		aligns := make([]any, len(v.Alignments))
		for i, a := range v.Alignments {
			aligns[i] = alignmentName(a)
		}
		return map[string]any{"type": "table", "rows": rows, "alignments": aligns}
	case *TableOfContents:
		return map[string]any{"type": "table_of_contents"}
	case *InlineLatex:
		return InlineToJSON(v)
	default:
		return nil
	}
}

func listEntryToJSON(e *ListEntry) any {
	sublists := make([]any, len(e.Sublists))
	for i, s := range e.Sublists {
		sublists[i] = BlockToJSON(s)
	}
	return map[string]any{
		"type":     "list_entry",
		"inlines":  inlinesToJSON(e.Inlines),
		"sublists": sublists,
		"checked":  checkedJSON(e.Checked),
	}
}

func checkedJSON(c CheckState) any {
	switch c {
	case CheckChecked:
		return true
	case CheckUnchecked:
		return false
	default:
		return nil
	}
}

func checkedFromJSON(v any) CheckState {
	b, ok := v.(bool)
	if !ok {
		return CheckNone
	}
	if b {
		return CheckChecked
	}
	return CheckUnchecked
}

func tableRowToJSON(row []TableCell) any {
	cells := make([]any, len(row))
	for i, c := range row {
		cells[i] = map[string]any{"type": "table_entry", "inlines": inlinesToJSON(c.Inlines)}
	}
	return map[string]any{"type": "table_row", "cells": cells}
}

func alignmentName(a Alignment) string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}

func alignmentFromName(s string) Alignment {
	switch s {
	case "left":
		return AlignLeft
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignNone
	}
}

func blocksToJSON(blocks []Block) []any {
	out := make([]any, len(blocks))
	for i, b := range blocks {
		out[i] = BlockToJSON(b)
	}
	return out
}

// BlockFromJSON reconstructs a block node from its JSON value.
func BlockFromJSON(v any) (Block, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("mdast: block node must be an object, got %T", v)
	}
	kind, _ := obj["type"].(string)

	switch kind {
	case "paragraph":
		inlines, err := inlinesFromJSON(obj["inlines"])
		if err != nil {
			return nil, err
		}
		return &Paragraph{Inlines: inlines}, nil
	case "heading":
		inlines, err := inlinesFromJSON(obj["inlines"])
		if err != nil {
			return nil, err
		}
		return &Heading{Level: int(asNumber(obj["level"])), Inlines: inlines}, nil
	case "block_code":
		return &BlockCode{Code: asString(obj["code"]), Language: asString(obj["language"])}, nil
	case "quote":
		children, err := blocksFromJSON(obj["children"])
		if err != nil {
			return nil, err
		}
		return &BlockQuote{Children: children}, nil
	case "horizontal_rule":
		return NewHorizontalRule(), nil
	case "list":
		rawEntries, _ := obj["entries"].([]any)
		entries := make([]*ListEntry, len(rawEntries))
		for i, re := range rawEntries {
			e, err := listEntryFromJSON(re)
			if err != nil {
				return nil, err
			}
			entries[i] = e
		}
		start := int(asNumber(obj["ordered_start"]))
		if start == 0 {
			start = 1
		}
		ordered, _ := obj["ordered"].(bool)
		return &List{Ordered: ordered, OrderedStart: start, Entries: entries}, nil
	case "inline_html":
		inlines, err := inlinesFromJSON(obj["inlines"])
		if err != nil {
			return nil, err
		}
		return &InlineHTML{Inlines: inlines}, nil
	case "table":
		rawRows, _ := obj["rows"].([]any)
		rows := make([][]TableCell, len(rawRows))
		for i, rr := range rawRows {
			row, err := tableRowFromJSON(rr)
			if err != nil {
				return nil, err
			}
			rows[i] = row
		}
		rawAligns, _ := obj["alignments"].([]any)
		aligns := make([]Alignment, len(rawAligns))
		for i, a := range rawAligns {
			aligns[i] = alignmentFromName(asString(a))
		}
		return &Table{Rows: rows, Alignments: aligns}, nil
	case "table_of_contents":
		return NewTableOfContents(), nil
	case "inline_latex":
		n, err := InlineFromJSON(v)
		if err != nil {
			return nil, err
		}
		return n.(*InlineLatex), nil
	default:
		return nil, fmt.Errorf("mdast: unknown block node type %q", kind)
	}
}

func listEntryFromJSON(v any) (*ListEntry, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("mdast: list_entry must be an object, got %T", v)
	}
	inlines, err := inlinesFromJSON(obj["inlines"])
	if err != nil {
		return nil, err
	}
	rawSub, _ := obj["sublists"].([]any)
	sublists := make([]*List, len(rawSub))
	for i, s := range rawSub {
		b, err := BlockFromJSON(s)
		if err != nil {
			return nil, err
		}
		l, ok := b.(*List)
		if !ok {
			return nil, fmt.Errorf("mdast: list_entry sublist must be a list, got %T", b)
		}
		sublists[i] = l
	}
	return &ListEntry{
		Inlines:  inlines,
		Sublists: sublists,
		Checked:  checkedFromJSON(obj["checked"]),
	}, nil
}

func tableRowFromJSON(v any) ([]TableCell, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("mdast: table_row must be an object, got %T", v)
	}
	rawCells, _ := obj["cells"].([]any)
	cells := make([]TableCell, len(rawCells))
	for i, rc := range rawCells {
		cellObj, ok := rc.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("mdast: table_entry must be an object, got %T", rc)
		}
		inlines, err := inlinesFromJSON(cellObj["inlines"])
		if err != nil {
			return nil, err
		}
		cells[i] = TableCell{Inlines: inlines}
	}
	return cells, nil
}

func blocksFromJSON(v any) ([]Block, error) {
	arr, ok := v.([]any)
	if !ok {
		if v == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("mdast: expected array of block nodes, got %T", v)
	}
	out := make([]Block, len(arr))
	for i, item := range arr {
		b, err := BlockFromJSON(item)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// referenceToJSON and referenceFromJSON round-trip a single Reference.
func referenceToJSON(r Reference) any {
	m := map[string]any{"url": r.URL}
	if r.Tooltip != nil {
		m["tooltip"] = *r.Tooltip
	}
	return m
}

func referenceFromJSON(v any) (Reference, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Reference{}, fmt.Errorf("mdast: reference must be an object, got %T", v)
	}
	var tooltip *string
	if t, ok := obj["tooltip"]; ok {
		s := asString(t)
		tooltip = &s
	}
	return Reference{URL: asString(obj["url"]), Tooltip: tooltip}, nil
}

// ToJSON serializes the whole document: its blocks and its reference
// table (§6).
func (d *Document) ToJSON() ([]byte, error) {
	refs := make(map[string]any, len(d.references))
	for name, ref := range d.references {
		refs[name] = referenceToJSON(ref)
	}
	payload := map[string]any{
		"blocks":     blocksToJSON(d.blocks),
		"references": refs,
	}
	return jsonMarshal(payload)
}

// FromJSON reconstructs a Document previously produced by ToJSON.
// from_json(to_json(d)) == d (§6, §8).
func FromJSON(data []byte) (*Document, error) {
	var payload struct {
		Blocks     []any          `json:"blocks"`
		References map[string]any `json:"references"`
	}
	if err := jsonUnmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("mdast: decoding document: %w", err)
	}

	blocks, err := blocksFromJSON(payload.Blocks)
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	doc.blocks = blocks
	for name, raw := range payload.References {
		ref, err := referenceFromJSON(raw)
		if err != nil {
			return nil, err
		}
		doc.references[refKey(name)] = ref
	}
	return doc, nil
}
