package mdparse

import (
	"github.com/brindlecrest/inkwell/internal/logx"
	"github.com/brindlecrest/inkwell/mdast"
	"github.com/brindlecrest/inkwell/mdopts"
)

// Parse runs the block pass then the inline pass over input and returns
// the resulting Document along with any non-critical Warnings (§4.4,
// SPEC_FULL supplemented feature: parser Warnings). The error is non-nil
// only when userOptions cannot be merged; malformed input never fails and
// always degrades to literal text or a best-effort node (§7).
func Parse(input string, userOptions map[string]any) (*mdast.Document, []Warning, error) {
	opts, err := mdopts.MergeParseOptions(userOptions)
	if err != nil {
		return nil, nil, err
	}

	doc := mdast.NewDocument()
	st := &blockState{opts: opts, doc: doc}

	lines := splitLines(input)
	blocks := parseBlocks(lines, 0, st)
	for _, b := range blocks {
		doc.Push(b)
	}

	logx.Logger.Debug().
		Int("blocks", len(blocks)).
		Int("warnings", len(st.warnings)).
		Msg("mdparse: parse complete")

	return doc, st.warnings, nil
}
