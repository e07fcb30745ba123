package lr

import (
	"errors"
	"testing"

	"github.com/npillmayer/lr0"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeEpsGrammar(t)
	ga, err := Analysis(g)
	require.NoError(t, err)
	for _, name := range []string{"A", "B", "D"} {
		assert.True(t, ga.Empty(g.SymbolByName(name)), "expected %s to derive ε", name)
	}
	for _, name := range []string{"S", "a", "b", "$"} {
		assert.False(t, ga.Empty(g.SymbolByName(name)), "expected %s not to derive ε", name)
	}
	assert.Equal(t, No, ga.EmptyState(g.SymbolByName("S")))
	assert.True(t, ga.EmptySequence(nil))
}

func TestEmptyIsUndecidedBeforeAnalysis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeEpsGrammar(t)
	ga := NewAnalysis(g)
	assert.Equal(t, Undecided, ga.EmptyState(g.SymbolByName("A")))
}

func TestFirstWithEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeEpsGrammar(t)
	ga, err := Analysis(g)
	require.NoError(t, err)
	ga.Dump()
	assert.Equal(t, []string{"a", "b", "d"}, ga.FirstNames(g.SymbolByName("S")))
	assert.Equal(t, []string{"b", "d"}, ga.FirstNames(g.SymbolByName("A")))
	assert.Equal(t, []string{"b"}, ga.FirstNames(g.SymbolByName("B")))
	assert.Equal(t, []string{"a"}, ga.FirstNames(g.SymbolByName("a")))
}

func TestFollowWithEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeEpsGrammar(t)
	ga, err := Analysis(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ga.FollowNames(g.SymbolByName("A")))
	assert.Equal(t, []string{"a", "d"}, ga.FollowNames(g.SymbolByName("B")))
	assert.Equal(t, []string{"a"}, ga.FollowNames(g.SymbolByName("D")))
	assert.Empty(t, ga.FollowNames(g.SymbolByName("S")))
	assert.Nil(t, ga.Follow(g.SymbolByName("a")), "terminals have no FOLLOW set")
}

func TestExprFirstAndFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	ga, err := Analysis(g)
	require.NoError(t, err)
	for _, name := range []string{"E'", "E", "T", "F"} {
		assert.Equal(t, []string{"(", "id"}, ga.FirstNames(g.SymbolByName(name)), "FIRST(%s)", name)
	}
	assert.Equal(t, []string{"$", "+", ")"}, ga.FollowNames(g.SymbolByName("E")))
	assert.Equal(t, []string{"$", "+", "*", ")"}, ga.FollowNames(g.SymbolByName("T")))
	assert.Equal(t, []string{"$", "+", "*", ")"}, ga.FollowNames(g.SymbolByName("F")))
}

func TestFirstOfSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeEpsGrammar(t)
	ga, err := Analysis(g)
	require.NoError(t, err)
	seq := []*Symbol{g.SymbolByName("B"), g.SymbolByName("D"), g.SymbolByName("a")}
	f := ga.FirstOfSequence(seq)
	assert.Equal(t, 3, f.Len())
	assert.False(t, ga.EmptySequence(seq))
	assert.True(t, ga.EmptySequence(seq[:2]))
	assert.True(t, ga.FirstOfSequence(nil).IsEmpty())
}

func TestPhaseOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	ga := NewAnalysis(g)
	err := ga.ComputeFollow()
	assert.True(t, errors.Is(err, lr0.ErrPhaseOrder), "expected phase order error, got %v", err)
	err = ga.ComputeFirst()
	assert.True(t, errors.Is(err, lr0.ErrPhaseOrder), "expected phase order error, got %v", err)
	require.NoError(t, ga.ComputeEmpty())
	require.NoError(t, ga.ComputeFirst())
	require.NoError(t, ga.ComputeFollow())
	assert.True(t, ga.Completed())
}

func TestRecomputeChangesNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	for _, g := range []*Grammar{makeExprGrammar(t), makeEpsGrammar(t)} {
		ga, err := Analysis(g)
		require.NoError(t, err)
		A := g.SymbolByName("A")
		if A == nil {
			A = g.SymbolByName("E")
		}
		first := ga.First(A).String()
		changed, err := ga.Recompute()
		require.NoError(t, err)
		assert.False(t, changed, "expected recomputation of %s to change nothing", g.Name)
		assert.Equal(t, first, ga.First(A).String())
		e, f, w := ga.Passes()
		assert.Equal(t, 1, e)
		assert.Equal(t, 1, f)
		assert.Equal(t, 1, w)
	}
}

func TestGrammarChangedAfterAnalysis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeEpsGrammar(t)
	ga, err := Analysis(g)
	require.NoError(t, err)
	_, err = g.AddProduction(g.SymbolByName("D"), []string{"x"})
	require.NoError(t, err)
	_, err = ga.Recompute()
	assert.True(t, errors.Is(err, lr0.ErrInvalidGrammar), "expected error for changed grammar, got %v", err)
}

func TestRuleAddedAfterAnalysis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeEpsGrammar(t)
	ga, err := Analysis(g)
	require.NoError(t, err)
	n := g.Size()
	_, err = g.AddProduction(g.SymbolByName("b"), []string{"d"}) // b is no longer a terminal
	require.NoError(t, err)
	require.Equal(t, n, g.Size(), "no new symbol expected")
	_, err = BuildCFSM(ga)
	assert.True(t, errors.Is(err, lr0.ErrInvalidGrammar), "expected CFSM to reject stale analysis, got %v", err)
	var changed bool
	assert.NotPanics(t, func() { changed, err = ga.Recompute() })
	assert.False(t, changed)
	assert.True(t, errors.Is(err, lr0.ErrInvalidGrammar), "expected error for changed grammar, got %v", err)
}

func TestNonConvergence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	ga := NewAnalysis(g)
	ga.limit = 1
	require.NoError(t, ga.ComputeEmpty()) // no ε-rules: the first pass is stable
	err := ga.ComputeFirst()
	assert.True(t, errors.Is(err, lr0.ErrNonConvergence), "expected non-convergence, got %v", err)
	assert.False(t, ga.Completed())
	ga.limit = 0
	require.NoError(t, ga.ComputeFirst())
	require.NoError(t, ga.ComputeFollow())
}

func TestNonConvergencePanicsIfConfigured(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	gconf.Initialize(testconfig.Conf{"panic-on-nonconvergence": true})
	defer gconf.Initialize(testconfig.Conf{})
	//
	g := makeExprGrammar(t)
	ga := NewAnalysis(g)
	ga.limit = 1
	require.NoError(t, ga.ComputeEmpty())
	assert.Panics(t, func() { _ = ga.ComputeFirst() })
}

func TestSelfRecursiveGrammarConverges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Loop")
	b.LHS("S").N("A").EOF()
	b.LHS("A").N("A").End()
	b.LHS("A").N("B").End()
	b.LHS("B").N("A").T("b").End()
	b.LHS("B").Epsilon()
	g, err := b.Grammar()
	require.NoError(t, err)
	ga, err := Analysis(g)
	require.NoError(t, err)
	assert.True(t, ga.Empty(g.SymbolByName("A")))
	assert.Equal(t, []string{"$", "b"}, ga.FollowNames(g.SymbolByName("A")))
}

func TestFollowRoutesThroughEmptySymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Tail")
	b.LHS("S").N("A").T("b").EOF()
	b.LHS("A").Epsilon()
	b.LHS("A").T("a").N("A").End()
	g, err := b.Grammar()
	require.NoError(t, err)
	ga, err := Analysis(g)
	require.NoError(t, err)
	A := g.SymbolByName("A")
	assert.True(t, ga.Empty(A))
	assert.Equal(t, []string{"b"}, ga.FollowNames(A))
	assert.Equal(t, []string{"b", "a"}, ga.FirstNames(g.SymbolByName("S")))
	g.EachNonTerminal(func(N *Symbol) interface{} {
		for _, F := range ga.Symbols(ga.Follow(N)) {
			assert.True(t, F.IsTerminal() && !F.IsEpsilon(), "FOLLOW(%s) contains %s", N, F)
		}
		return nil
	})
}
