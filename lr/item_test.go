package lr

import (
	"errors"
	"testing"

	"github.com/npillmayer/lr0"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	E, T := g.SymbolByName("E"), g.SymbolByName("T")
	r := g.Rule(1) // E → E + T
	if _, err := NewItem(E, r, 3); err != nil {
		t.Errorf("expected E → E + T • to be valid, got %v", err)
	}
	if _, err := NewItem(E, r, 4); !errors.Is(err, lr0.ErrMalformedItem) {
		t.Errorf("expected dot 4 to be out of range, got %v", err)
	}
	if _, err := NewItem(T, r, 0); !errors.Is(err, lr0.ErrMalformedItem) {
		t.Errorf("expected rule of E not to be accepted for T, got %v", err)
	}
}

func TestItemFeed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	E, plus := g.SymbolByName("E"), g.SymbolByName("+")
	i := StartItem(g.Rule(1)) // E → • E + T
	if i.PeekSymbol() != E {
		t.Errorf("expected E after dot, have %v", i.PeekSymbol())
	}
	if _, r := i.Feed(plus); r != Mismatch {
		t.Errorf("expected feeding + to %v to mismatch, is %v", i, r)
	}
	i2, r := i.Feed(E)
	if r != Shifted || i2.Dot() != 1 || i.Dot() != 0 {
		t.Errorf("expected feeding E to shift into a new item, is %v/%v", i2, r)
	}
	if len(i2.Prefix()) != 1 || i2.Prefix()[0] != E {
		t.Errorf("expected prefix of %v to be [E], is %v", i2, i2.Prefix())
	}
	i3 := i2.Advance().Advance()
	if !i3.IsComplete() {
		t.Errorf("expected %v to be complete", i3)
	}
	if _, r := i3.Feed(E); r != Reduce {
		t.Errorf("expected complete item to reduce, is %v", r)
	}
	if i3.Advance() != i3 {
		t.Errorf("expected advancing a complete item to be a no-op")
	}
	if i3.String() != "E → E + T •" {
		t.Errorf("unexpected item string %q", i3.String())
	}
}

func TestItemEqualityIncludesDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	i := StartItem(g.Rule(1))
	if i == i.Advance() {
		t.Errorf("expected items with different dots to differ")
	}
	if itemComparator(i.Advance(), i.Advance()) != 0 {
		t.Errorf("expected equal items to compare as equal")
	}
	S := newItemSet(i, i.Advance(), i)
	if S.Size() != 2 {
		t.Errorf("expected item set to contain 2 items, has %d", S.Size())
	}
}

func TestClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	C := Closure([]Item{StartItem(g.Rule(0))})
	if len(C) != 7 {
		t.Errorf("expected closure of E' → • E $ to contain 7 items, has %d: %s", len(C), itemSetString(C))
	}
	CC := Closure(C)
	if len(CC) != len(C) {
		t.Fatalf("expected closure to be idempotent")
	}
	for n := range C {
		if C[n] != CC[n] {
			t.Errorf("expected closure to be idempotent, differs at item %d", n)
		}
	}
}

func TestClosureWithEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeEpsGrammar(t)
	C := Closure([]Item{StartItem(g.Rule(0))})
	// S → • A a $, A → • B D, B → • b, B → •
	if len(C) != 4 {
		t.Errorf("expected closure to contain 4 items, has %d: %s", len(C), itemSetString(C))
	}
}

func TestGoto(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lr0.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	C := Closure([]Item{StartItem(g.Rule(0))})
	G := Goto(C, g.SymbolByName("("))
	// F → ( • E ) plus closure over E, T and F
	if len(G) != 7 {
		t.Errorf("expected goto(I0, '(') to contain 7 items, has %d: %s", len(G), itemSetString(G))
	}
	if G := Goto(C, g.SymbolByName(")")); len(G) != 0 {
		t.Errorf("expected goto(I0, ')') to be empty, is %s", itemSetString(G))
	}
}
