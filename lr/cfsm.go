package lr

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/lr0"
	"github.com/npillmayer/lr0/lr/iteratable"
)

// Transition targets which are not states.
const (
	NoState     = -1 // no transition for a symbol
	AcceptState = -2 // reading end-of-input accepts
)

// === CFSM States ===========================================================

// CFSMState is a state within the CFSM for a grammar: a closed set of
// LR(0) items.
type CFSMState struct {
	ID     int             // serial ID of this state, in order of discovery
	items  *iteratable.Set // closed item set
	kernel []Item          // items the state has been created from
	row    map[int]int     // transitions: symbol ID → state ID
	g      *Grammar        // grammar of the symbols in row
	Accept bool            // does the state contain the start item with the dot before $?
}

func newState(g *Grammar, id int, kernel []Item, items *iteratable.Set) *CFSMState {
	return &CFSMState{
		g:      g,
		ID:     id,
		items:  items,
		kernel: kernel,
		row:    make(map[int]int),
	}
}

// Items returns the items of a state, ordered by rule and dot.
func (s *CFSMState) Items() []Item {
	return itemsOf(s.items)
}

// Kernel returns the items a state has been created from, i.e. the items
// before closure.
func (s *CFSMState) Kernel() []Item {
	return append([]Item(nil), s.kernel...)
}

// Goto returns the ID of the successor state for symbol A, NoState or
// AcceptState.
func (s *CFSMState) Goto(A *Symbol) int {
	if A == nil {
		return NoState
	}
	if t, ok := s.row[A.ID]; ok {
		return t
	}
	return NoState
}

// Transition is an entry in a state's transition row.
type Transition struct {
	Symbol *Symbol
	Target int // state ID or AcceptState
}

// Transitions returns all transitions out of a state, ordered by symbol.
func (s *CFSMState) Transitions() []Transition {
	ids := make([]int, 0, len(s.row))
	for id := range s.row {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	t := make([]Transition, len(ids))
	for n, id := range ids {
		t[n] = Transition{Symbol: s.g.symbols[id], Target: s.row[id]}
	}
	return t
}

// ContainsCompletedItem is a predicate: does the state contain the item for
// rule r with the dot at the end?
func (s *CFSMState) ContainsCompletedItem(r *Rule) bool {
	if r == nil {
		return false
	}
	return s.items.Contains(Item{rule: r, dot: len(r.rhs)})
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

// Dump is a debugging helper.
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	s.items.Each(func(x interface{}) {
		tracer().Debugf("    %v", x)
	})
	tracer().Debugf("-------------------------")
}

// We need this for the worklist of states. It sorts states by serial ID.
func stateComparator(s1, s2 interface{}) int {
	return utils.IntComparator(s1.(*CFSMState).ID, s2.(*CFSMState).ID)
}

// Edge is a directed, labeled edge between two CFSM states.
type Edge struct {
	From, To int
	Label    *Symbol
}

// === CFSM ==================================================================

// CFSM is the characteristic finite state machine for an LR grammar, i.e. the
// LR(0) state diagram. It is constructed by a TableGenerator.
type CFSM struct {
	g      *Grammar                // this CFSM is for grammar g
	start  *Rule                   // start rule of g
	states []*CFSMState            // all states, indexed by ID
	index  map[string][]*CFSMState // states by fingerprint of their items
	edges  *arraylist.List         // all the edges between states
	S0     *CFSMState              // start state
}

func emptyCFSM(g *Grammar, start *Rule) *CFSM {
	return &CFSM{
		g:     g,
		start: start,
		index: make(map[string][]*CFSMState),
		edges: arraylist.New(),
	}
}

// Grammar returns the grammar this CFSM has been built for.
func (c *CFSM) Grammar() *Grammar {
	return c.g
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	return append([]*CFSMState(nil), c.states...)
}

// State returns the state with a given ID, or nil.
func (c *CFSM) State(id int) *CFSMState {
	if id < 0 || id >= len(c.states) {
		return nil
	}
	return c.states[id]
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return len(c.states)
}

// Goto returns the successor of state id for symbol A. The result is a state
// ID, NoState or AcceptState.
func (c *CFSM) Goto(id int, A *Symbol) int {
	s := c.State(id)
	if s == nil {
		return NoState
	}
	return s.Goto(A)
}

// Edges returns all edges between states, in order of creation. Accepting
// transitions are not edges.
func (c *CFSM) Edges() []Edge {
	edges := make([]Edge, 0, c.edges.Size())
	c.edges.Each(func(_ int, x interface{}) {
		edges = append(edges, x.(Edge))
	})
	return edges
}

// AcceptingStates returns the IDs of all states which accept on end-of-input.
func (c *CFSM) AcceptingStates() []int {
	var acc []int
	for _, s := range c.states {
		if s.Accept {
			acc = append(acc, s.ID)
		}
	}
	return acc
}

// FindState returns the state consisting of exactly the given items
// (which usually will be a closed item set), or nil.
func (c *CFSM) FindState(items []Item) *CFSMState {
	return c.findStateByItems(newItemSet(items...))
}

// stateSignature is the hashed representation of an item set.
type stateSignature struct {
	Items []ItemKey
}

func fingerprint(iset *iteratable.Set) string {
	sig := stateSignature{Items: make([]ItemKey, 0, iset.Size())}
	iset.Each(func(x interface{}) {
		sig.Items = append(sig.Items, asItem(x).Key())
	})
	h, err := structhash.Hash(sig, 1)
	if err != nil {
		tracer().Errorf("cannot hash item set: %v", err)
		return fmt.Sprintf("%v", sig.Items)
	}
	return h
}

// Find a CFSM state by the contained item set. Candidates with identical
// fingerprint are compared item by item.
func (c *CFSM) findStateByItems(iset *iteratable.Set) *CFSMState {
	for _, s := range c.index[fingerprint(iset)] {
		if s.items.Equals(iset) {
			return s
		}
	}
	return nil
}

// Add a state to the CFSM, if no state with the same items is present.
// Returns the state and true if it has been newly created.
func (c *CFSM) addState(kernel []Item, iset *iteratable.Set) (*CFSMState, bool) {
	fp := fingerprint(iset)
	for _, s := range c.index[fp] {
		if s.items.Equals(iset) {
			return s, false
		}
	}
	s := newState(c.g, len(c.states), kernel, iset)
	s.Accept = iset.Contains(Item{rule: c.start, dot: len(c.start.rhs) - 1})
	c.states = append(c.states, s)
	c.index[fp] = append(c.index[fp], s)
	return s, true
}

func (c *CFSM) addEdge(from, to *CFSMState, A *Symbol) {
	from.row[A.ID] = to.ID
	c.edges.Add(Edge{From: from.ID, To: to.ID, Label: A})
}

// === Construction ==========================================================

// TableGenerator is a generator object to construct the CFSM and tables
// derived from it. Clients usually create a Grammar G, then an
// LRAnalysis-object for G, and then a table generator.
type TableGenerator struct {
	g   *Grammar
	ga  *LRAnalysis
	dfa *CFSM
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LRAnalysis) *TableGenerator {
	return &TableGenerator{g: ga.Grammar(), ga: ga}
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// The CFSM will be created, if it has not been constructed previously.
func (lrgen *TableGenerator) CFSM() (*CFSM, error) {
	if lrgen.dfa == nil {
		dfa, err := lrgen.buildCFSM()
		if err != nil {
			return nil, err
		}
		lrgen.dfa = dfa
	}
	return lrgen.dfa, nil
}

// BuildCFSM is a shortcut for NewTableGenerator(ga).CFSM().
func BuildCFSM(ga *LRAnalysis) (*CFSM, error) {
	return NewTableGenerator(ga).CFSM()
}

// Construct the characteristic finite state machine CFSM for a grammar.
// States are processed in order of their IDs. For every state and every
// symbol of the alphabet the goto-set is computed; a non-empty goto-set
// either is an existing state or becomes a new one. The number of distinct
// item sets is finite, therefore the construction terminates.
func (lrgen *TableGenerator) buildCFSM() (*CFSM, error) {
	if lrgen.ga == nil || !lrgen.ga.Completed() {
		return nil, lr0.Errorf(lr0.PhaseOrder, "CFSM construction requires a completed grammar analysis")
	}
	if err := lrgen.ga.checkGrammarUnchanged(); err != nil {
		return nil, err
	}
	G := lrgen.g
	start, err := G.StartRule()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("=== build CFSM for %s ============================================", G.Name)
	cfsm := emptyCFSM(G, start)
	item := StartItem(start)
	tracer().Debugf("start item = %v", item)
	cfsm.S0, _ = cfsm.addState([]Item{item}, closureSet(newItemSet(item)))
	cfsm.S0.Dump()
	S := treeset.NewWith(stateComparator)
	S.Add(cfsm.S0)
	for S.Size() > 0 {
		s := S.Values()[0].(*CFSMState)
		S.Remove(s)
		for _, A := range G.symbols {
			if A.IsEpsilon() {
				continue
			}
			if A.IsEOF() {
				if s.Accept {
					s.row[A.ID] = AcceptState
				}
				continue
			}
			gotoset := gotoSet(s.items, A)
			if gotoset.Empty() {
				continue
			}
			kernel := itemsOf(gotoset)
			snew, isNew := cfsm.addState(kernel, closureSet(gotoset))
			tracer().Debugf("goto(%d, %v) = %d", s.ID, A, snew.ID)
			if isNew {
				S.Add(snew)
				snew.Dump()
			}
			cfsm.addEdge(s, snew, A)
		}
	}
	tracer().Infof("CFSM for %s has %d states", G.Name, cfsm.Size())
	return cfsm, nil
}
