package render

import (
	"reflect"

	"github.com/brindlecrest/inkwell/htmlast"
	"github.com/brindlecrest/inkwell/mdast"
	"go.uber.org/mock/gomock"
)

// MockLatexEngine is a hand-written gomock mock of mdopts.LatexEngine, in
// the shape mockgen would generate for the teacher's db.Store/token.Maker
// interfaces (db/mock, token/mock): a controller-backed recorder exposing
// one EXPECT().Render(...) builder per method.
type MockLatexEngine struct {
	ctrl     *gomock.Controller
	recorder *MockLatexEngineRecorder
}

type MockLatexEngineRecorder struct {
	mock *MockLatexEngine
}

func NewMockLatexEngine(ctrl *gomock.Controller) *MockLatexEngine {
	m := &MockLatexEngine{ctrl: ctrl}
	m.recorder = &MockLatexEngineRecorder{m}
	return m
}

func (m *MockLatexEngine) EXPECT() *MockLatexEngineRecorder {
	return m.recorder
}

func (m *MockLatexEngine) Render(node *mdast.InlineLatex) (htmlast.Node, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Render", node)
	ret0, _ := ret[0].(htmlast.Node)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockLatexEngineRecorder) Render(node any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Render",
		reflect.TypeOf((*MockLatexEngine)(nil).Render), node)
}
