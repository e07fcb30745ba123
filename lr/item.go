package lr

import (
	"bytes"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/lr0"
	"github.com/npillmayer/lr0/lr/iteratable"
)

// Item is an LR(0) item: a rule together with a position (dot) within its RHS.
// Items are values; two items are equal if they refer to the same rule and
// have the same dot position.
type Item struct {
	rule *Rule
	dot  int
}

// NullItem is the invalid item.
var NullItem = Item{}

// FeedResult is the outcome of feeding a symbol to an item.
type FeedResult int8

// Results of Item.Feed.
const (
	Shifted FeedResult = iota
	Reduce
	Mismatch
)

func (fr FeedResult) String() string {
	switch fr {
	case Shifted:
		return "shifted"
	case Reduce:
		return "reduce"
	}
	return "mismatch"
}

// NewItem creates an item for a rule of lhs, with the dot before RHS
// position dot.
func NewItem(lhs *Symbol, r *Rule, dot int) (Item, error) {
	if r == nil || lhs == nil || r.LHS != lhs {
		return NullItem, lr0.Errorf(lr0.MalformedItem, "rule %v is not a rule of %v", r, lhs)
	}
	if dot < 0 || dot > len(r.rhs) {
		return NullItem, lr0.Errorf(lr0.MalformedItem, "dot %d out of range for rule %v", dot, r)
	}
	return Item{rule: r, dot: dot}, nil
}

// StartItem returns the item for a rule with the dot at the beginning.
func StartItem(r *Rule) Item {
	if r == nil {
		return NullItem
	}
	return Item{rule: r}
}

// Rule returns the rule of an item.
func (i Item) Rule() *Rule {
	return i.rule
}

// LHS returns the left hand side symbol of the item's rule.
func (i Item) LHS() *Symbol {
	if i.rule == nil {
		return nil
	}
	return i.rule.LHS
}

// Dot returns the position of the dot.
func (i Item) Dot() int {
	return i.dot
}

// IsNull is a predicate: is this the invalid item?
func (i Item) IsNull() bool {
	return i.rule == nil
}

// IsComplete is a predicate: is the dot behind the RHS?
func (i Item) IsComplete() bool {
	return i.rule != nil && i.dot >= len(i.rule.rhs)
}

// PeekSymbol returns the symbol after the dot, or nil.
func (i Item) PeekSymbol() *Symbol {
	if i.rule == nil {
		return nil
	}
	return i.rule.At(i.dot)
}

// Prefix returns the symbols before the dot.
func (i Item) Prefix() []*Symbol {
	if i.rule == nil {
		return nil
	}
	return append([]*Symbol(nil), i.rule.rhs[:i.dot]...)
}

// Advance returns the item with the dot moved one symbol to the right.
// For complete items the item itself is returned.
func (i Item) Advance() Item {
	if i.rule == nil || i.IsComplete() {
		return i
	}
	return Item{rule: i.rule, dot: i.dot + 1}
}

// Feed tries to move the dot over symbol A. If the item is complete, the
// result is Reduce. If A is not the symbol after the dot, the result is
// Mismatch. In both cases the returned item is the item itself.
func (i Item) Feed(A *Symbol) (Item, FeedResult) {
	if i.IsComplete() {
		return i, Reduce
	}
	if B := i.PeekSymbol(); B == nil || B != A {
		return i, Mismatch
	}
	return i.Advance(), Shifted
}

// ItemKey is the identity of an item, suitable for hashing and printing.
type ItemKey struct {
	Rule int
	Dot  int
}

// Key returns the identity of an item.
func (i Item) Key() ItemKey {
	if i.rule == nil {
		return ItemKey{Rule: -1}
	}
	return ItemKey{Rule: i.rule.Serial, Dot: i.dot}
}

func (i Item) String() string {
	if i.rule == nil {
		return "[null item]"
	}
	var b bytes.Buffer
	b.WriteString(i.rule.LHS.Name)
	b.WriteString(" →")
	for n, A := range i.rule.rhs {
		if n == i.dot {
			b.WriteString(" •")
		}
		b.WriteString(" ")
		b.WriteString(A.Name)
	}
	if i.IsComplete() {
		b.WriteString(" •")
	}
	return b.String()
}

// --- Item sets -------------------------------------------------------------

// itemComparator orders items by rule serial and then by dot position.
func itemComparator(i1, i2 interface{}) int {
	k1, k2 := i1.(Item).Key(), i2.(Item).Key()
	if c := utils.IntComparator(k1.Rule, k2.Rule); c != 0 {
		return c
	}
	return utils.IntComparator(k1.Dot, k2.Dot)
}

func newItemSet(items ...Item) *iteratable.Set {
	S := iteratable.NewSet(itemComparator)
	for _, i := range items {
		S.Add(i)
	}
	return S
}

func asItem(x interface{}) Item {
	return x.(Item)
}

func itemsOf(S *iteratable.Set) []Item {
	vals := S.Values()
	items := make([]Item, len(vals))
	for n, x := range vals {
		items[n] = asItem(x)
	}
	return items
}

func itemSetString(items []Item) string {
	var b bytes.Buffer
	b.WriteString("{")
	for n, i := range items {
		if n > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(i.String())
	}
	b.WriteString(" }")
	return b.String()
}

// === Closure and Goto ======================================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 6.2.1 LR(0) Parsing

// Closure computes the closure of a set of items: for every item with a
// non-terminal N after the dot, items N → • α are added for every rule of N,
// until no more items are added. The result is ordered by rule and dot.
func Closure(items []Item) []Item {
	return itemsOf(closureSet(newItemSet(items...)))
}

func closureSet(S *iteratable.Set) *iteratable.Set {
	C := S.Copy()
	C.IterateOnce()
	for C.Next() {
		A := asItem(C.Item()).PeekSymbol()
		if A == nil || A.IsTerminal() {
			continue
		}
		for _, r := range A.rules {
			C.Add(StartItem(r))
		}
	}
	return C
}

// Goto computes the successor of a set of items on symbol A: all items with
// A after the dot, advanced over A, and closed. The result is empty if no
// item accepts A.
func Goto(items []Item, A *Symbol) []Item {
	return itemsOf(gotoSetClosure(newItemSet(items...), A))
}

func gotoSet(S *iteratable.Set, A *Symbol) *iteratable.Set {
	gotoset := newItemSet()
	S.Each(func(x interface{}) {
		if next, r := asItem(x).Feed(A); r == Shifted {
			gotoset.Add(next)
		}
	})
	return gotoset
}

func gotoSetClosure(S *iteratable.Set, A *Symbol) *iteratable.Set {
	gotoset := gotoSet(S, A)
	if gotoset.Empty() {
		return gotoset
	}
	return closureSet(gotoset)
}
