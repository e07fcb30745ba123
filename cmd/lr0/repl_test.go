package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exprGrammar = `# expression grammar
E : E + T | T
T : T * F | F
F : ( E ) | id
`

func makeIntp(t *testing.T) (*Intp, *bytes.Buffer) {
	path := filepath.Join(t.TempDir(), "expr.bnf")
	require.NoError(t, os.WriteFile(path, []byte(exprGrammar), 0644))
	s, err := loadGrammar(path)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return &Intp{session: s, out: out}, out
}

func TestLoadGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.cli")
	defer teardown()
	//
	intp, _ := makeIntp(t)
	assert.Equal(t, "expr", intp.G.Name)
	assert.Equal(t, 12, intp.CFSM.Size())
	_, err := loadGrammar(filepath.Join(t.TempDir(), "missing.bnf"))
	assert.Error(t, err)
}

func TestEvalSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.cli")
	defer teardown()
	//
	intp, out := makeIntp(t)
	quit, err := intp.Eval("first E")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, out.String(), "FIRST(E) = { (, id }")
	out.Reset()
	_, err = intp.Eval("follow T")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "FOLLOW(T) = { $, +, *, ) }")
	out.Reset()
	_, err = intp.Eval("empty F")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "empty(F) = no")
	_, err = intp.Eval("follow id")
	assert.Error(t, err)
	_, err = intp.Eval("first X")
	assert.Error(t, err)
}

func TestEvalStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.cli")
	defer teardown()
	//
	intp, out := makeIntp(t)
	_, err := intp.Eval("goto 0 id")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "goto(0, id) = 5")
	out.Reset()
	_, err = intp.Eval("goto 1 $")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "goto(1, $) = accept")
	out.Reset()
	_, err = intp.Eval("goto 3 +")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "goto(3, +) = none")
	out.Reset()
	_, err = intp.Eval("state 5")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "F → id •")
	_, err = intp.Eval("state 12")
	assert.Error(t, err)
	_, err = intp.Eval("goto x id")
	assert.Error(t, err)
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.cli")
	defer teardown()
	//
	intp, out := makeIntp(t)
	_, err := intp.Eval("help")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Commands:")
	out.Reset()
	_, err = intp.Eval("rules")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "id")
	_, err = intp.Eval("frobnicate")
	assert.Error(t, err)
	quit, err := intp.Eval("quit")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestAnalysisTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.cli")
	defer teardown()
	//
	intp, _ := makeIntp(t)
	data := analysisTable(intp.GA)
	require.Len(t, data, 5) // header, E', E, T, F
	assert.Equal(t, []string{"E", "no", "{ (, id }", "{ $, +, ) }"}, data[2])
	ll := stateTree(intp.CFSM.State(1), nil)
	assert.Equal(t, "state 1 (accept)", ll[0].Text)
}
