package render

import (
	"errors"
	"testing"

	"github.com/brindlecrest/inkwell/htmlast"
	"github.com/brindlecrest/inkwell/mdast"
	"github.com/brindlecrest/inkwell/mdopts"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRenderLatexUsesEngineOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	node := &mdast.InlineLatex{Raw: "x^2", Display: false}
	want := htmlast.NewElement("span")
	want.AddClass("math")

	engine := NewMockLatexEngine(ctrl)
	engine.EXPECT().Render(node).Times(1).Return(want, nil)

	doc := mdast.NewDocument()
	doc.Push(&mdast.Paragraph{Inlines: []mdast.Inline{node}})

	callbacks := mdopts.Callbacks{Latex: mdopts.FromLatexEngine(engine)}
	root, err := Render(doc, nil, callbacks, nil)
	require.NoError(t, err)

	p := root.Children()[0].(*htmlast.Element)
	require.Same(t, want, p.Children()[0])
}

func TestRenderLatexFallsBackOnEngineError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	node := &mdast.InlineLatex{Raw: "\\frac{1}{0}", Display: false}

	engine := NewMockLatexEngine(ctrl)
	engine.EXPECT().Render(node).Times(1).Return(nil, errors.New("boom"))

	doc := mdast.NewDocument()
	doc.Push(&mdast.Paragraph{Inlines: []mdast.Inline{node}})

	callbacks := mdopts.Callbacks{Latex: mdopts.FromLatexEngine(engine)}
	root, err := Render(doc, nil, callbacks, nil)
	require.NoError(t, err)

	p := root.Children()[0].(*htmlast.Element)
	fallback := p.Children()[0].(*htmlast.Element)
	require.Equal(t, "span", fallback.Tag)
	require.Contains(t, fallback.Children(), htmlast.Node(htmlast.NewText(node.Raw)))
}

func TestRenderLatexWithoutEngineEmitsRawText(t *testing.T) {
	node := &mdast.InlineLatex{Raw: "e=mc^2", Display: false}
	doc := mdast.NewDocument()
	doc.Push(&mdast.Paragraph{Inlines: []mdast.Inline{node}})

	root, err := Render(doc, nil, mdopts.Callbacks{}, nil)
	require.NoError(t, err)

	p := root.Children()[0].(*htmlast.Element)
	text := p.Children()[0].(*htmlast.Text)
	require.Equal(t, node.Raw, text.Content)
}
