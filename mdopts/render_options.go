package mdopts

import (
	"github.com/brindlecrest/inkwell/htmlast"
	"github.com/brindlecrest/inkwell/mdast"
)

// RenderData holds every data-valued (non-callback) render option (§4.5).
// These merge through deepMerge like ParseOptions; see Callbacks for the
// function-valued extension points, which do not go through the merge
// machinery.
type RenderData struct {
	BlockCode struct {
		ClassName string `mapstructure:"class_name"`
	} `mapstructure:"block_code"`
	Checkbox struct {
		Enable bool `mapstructure:"enable"`
		// DisabledProperty only means anything when checkboxes render at
		// all; it must stay false while Enable is false (SUPPLEMENTED
		// FEATURES: "checkbox dependency rules").
		DisabledProperty bool `mapstructure:"disabled_property" validate:"excluded_if=Enable false"`
	} `mapstructure:"checkbox"`
	Highlight struct {
		Enable bool `mapstructure:"enable"`
	} `mapstructure:"highlight"`
	InlineHTML struct {
		Enable         bool     `mapstructure:"enable"`
		DisallowedTags []string `mapstructure:"disallowed_tags"`
	} `mapstructure:"inline_html"`
	Image struct {
		ClassName string `mapstructure:"class_name"`
	} `mapstructure:"image"`
	Strikethrough struct {
		ClassName string `mapstructure:"class_name"`
	} `mapstructure:"strikethrough"`
	Underline struct {
		Enable    bool   `mapstructure:"enable"`
		ClassName string `mapstructure:"class_name"`
	} `mapstructure:"underline"`
	Spoiler struct {
		Enable          bool   `mapstructure:"enable"`
		ClassName       string `mapstructure:"class_name"`
		HiddenClassName string `mapstructure:"hidden_class_name"`
	} `mapstructure:"spoiler"`
	Latex struct {
		ErrorClasses []string `mapstructure:"error_classes"`
	} `mapstructure:"latex"`
}

// DefaultRenderData is the documented default for every data-valued
// render option.
func DefaultRenderData() map[string]any {
	return map[string]any{
		"block_code": map[string]any{"class_name": "highlight"},
		"checkbox": map[string]any{
			"enable":            true,
			"disabled_property": true,
		},
		"highlight": map[string]any{"enable": true},
		"inline_html": map[string]any{
			"enable":          true,
			"disallowed_tags": []string{},
		},
		"image":         map[string]any{"class_name": ""},
		"strikethrough": map[string]any{"class_name": "strikethrough"},
		"underline": map[string]any{
			"enable":     true,
			"class_name": "underline",
		},
		"spoiler": map[string]any{
			"enable":            true,
			"class_name":        "spoiler",
			"hidden_class_name": "spoiler-hidden",
		},
		"latex": map[string]any{"error_classes": []string{"latex-error"}},
	}
}

// BlockCodeHighlighter populates parent's children with syntax-highlighted
// nodes for the given code/language (§4.5: "block_code.highlighter").
type BlockCodeHighlighter func(code, language string, parent *htmlast.Element)

// InlineCodeProcessor maps an InlineCode node to its rendered HTML
// (§4.5: "code.process"). The default wraps the content in <code> with
// ModeCode text.
type InlineCodeProcessor func(node *mdast.InlineCode) htmlast.Node

// EmojiRenderer maps an Emoji node to its rendered HTML (§4.5: "emoji").
// A nil renderer means emoji render as their literal shortcode text.
type EmojiRenderer func(node *mdast.Emoji) htmlast.Node

// LatexRenderer renders a $...$/$$...$$ node. It returns either a Text
// node (plain string output) or any other Node (raw HTML output) per the
// "string|html" contract in §4.5; an error is caught by the renderer and
// turned into a fallback element carrying RenderData.Latex.ErrorClasses
// (§5, §7).
type LatexRenderer func(node *mdast.InlineLatex) (htmlast.Node, error)

// LatexEngine is the interface form of LatexRenderer, for callers who
// want to provide a mockable object rather than a bare function (tests
// build a hand-written go.uber.org/mock gomock.Controller-based mock of
// this interface; see render's test suite).
type LatexEngine interface {
	Render(node *mdast.InlineLatex) (htmlast.Node, error)
}

// FromLatexEngine adapts a LatexEngine into a LatexRenderer.
func FromLatexEngine(e LatexEngine) LatexRenderer {
	return e.Render
}

// TablePostProcessor post-processes a fully built <table> element in
// place (§4.5: "table.process").
type TablePostProcessor func(table *htmlast.Element)

// Callbacks is the capability record for every extension point (§9:
// "Extension callbacks. Represent as a capability record ... passed as
// part of options"). Unlike RenderData, Callbacks is never deep-merged:
// each field is either present or absent, and presence is decided by
// simple override, not by recursive merge semantics (§4.5's option table
// lists these as opaque functions, not mergeable data).
type Callbacks struct {
	Highlighter  BlockCodeHighlighter
	CodeProcess  InlineCodeProcessor
	Emoji        EmojiRenderer
	Latex        LatexRenderer
	TableProcess TablePostProcessor
}

// mergeCallbacks returns a Callbacks where each field is taken from user
// if set, else from defaults.
func mergeCallbacks(defaults, user Callbacks) Callbacks {
	out := defaults
	if user.Highlighter != nil {
		out.Highlighter = user.Highlighter
	}
	if user.CodeProcess != nil {
		out.CodeProcess = user.CodeProcess
	}
	if user.Emoji != nil {
		out.Emoji = user.Emoji
	}
	if user.Latex != nil {
		out.Latex = user.Latex
	}
	if user.TableProcess != nil {
		out.TableProcess = user.TableProcess
	}
	return out
}

// RenderOptions is the fully merged option set passed to the renderer.
type RenderOptions struct {
	Data      RenderData
	Callbacks Callbacks
	// Parent, when non-nil, is the element the rendered document is
	// appended into; otherwise the renderer creates a fresh <div>.
	Parent *htmlast.Element
}

// MergeRenderOptions deep-merges user.Data over the documented defaults,
// overrides callbacks by simple presence, validates the result, and
// returns it.
func MergeRenderOptions(userData map[string]any, userCallbacks Callbacks, parent *htmlast.Element) (RenderOptions, error) {
	var data RenderData
	if err := deepMerge(&data, DefaultRenderData(), userData); err != nil {
		return RenderOptions{}, err
	}

	opts := RenderOptions{
		Data:      data,
		Callbacks: mergeCallbacks(Callbacks{}, userCallbacks),
		Parent:    parent,
	}

	if err := Validate(&opts); err != nil {
		return RenderOptions{}, err
	}
	return opts, nil
}
