package lr

import (
	"github.com/npillmayer/lr0"
	"github.com/npillmayer/schuko/gconf"
	"golang.org/x/tools/container/intsets"
)

// Tristate is a type for properties which may be undecided.
type Tristate int8

// Values of Tristate.
const (
	Undecided Tristate = iota
	No
	Yes
)

func (t Tristate) String() string {
	switch t {
	case No:
		return "no"
	case Yes:
		return "yes"
	}
	return "?"
}

type analysisPhase uint8

const (
	emptyDone analysisPhase = 1 << iota
	firstDone
	followDone
)

// LRAnalysis is an object for static grammar analysis. It determines
// which symbols derive the empty string (EMPTY) and computes FIRST and FOLLOW
// sets. Symbol sets are sets of symbol IDs.
//
// The analysis refers to the grammar as it has been at the time of the
// analysis. Clients must not add rules to a grammar after analysing it;
// later phases, Recompute and CFSM construction report ErrInvalidGrammar
// if they do.
type LRAnalysis struct {
	g      *Grammar
	empty  []Tristate        // EMPTY, indexed by symbol ID
	first  []*intsets.Sparse // FIRST, indexed by symbol ID
	follow []*intsets.Sparse // FOLLOW, indexed by symbol ID; nil for terminals
	phases analysisPhase     // completed phases
	passes [3]int            // passes needed to converge, per phase
	limit  int               // bound on passes per phase; 0 for the default
	nsyms  int               // number of symbols at the time of EMPTY
	nrules int               // number of rules at the time of EMPTY
}

// NewAnalysis creates an analysis object for a grammar, without running it.
// Usually clients will call Analysis(g) instead.
func NewAnalysis(g *Grammar) *LRAnalysis {
	return &LRAnalysis{g: g}
}

// Analysis runs a complete grammar analysis: EMPTY, FIRST and FOLLOW, in this
// order. Each computation iterates until a fixed point is reached.
func Analysis(g *Grammar) (*LRAnalysis, error) {
	ga := NewAnalysis(g)
	if err := ga.ComputeEmpty(); err != nil {
		return nil, err
	}
	if err := ga.ComputeFirst(); err != nil {
		return nil, err
	}
	if err := ga.ComputeFollow(); err != nil {
		return nil, err
	}
	return ga, nil
}

// Grammar returns the grammar this analysis is for.
func (ga *LRAnalysis) Grammar() *Grammar {
	return ga.g
}

// Passes returns the number of passes the EMPTY, FIRST and FOLLOW
// computations needed to converge. The last pass of each is the one without
// any change.
func (ga *LRAnalysis) Passes() (empty, first, follow int) {
	return ga.passes[0], ga.passes[1], ga.passes[2]
}

// passLimit is a conservative bound on the number of passes of a fixed-point
// computation. Every pass but the last adds at least one element to a set
// (or flips one symbol to EMPTY), so monotone computations stay far below it.
func (ga *LRAnalysis) passLimit() int {
	if ga.limit > 0 {
		return ga.limit
	}
	n := len(ga.g.symbols)
	l := ga.g.maxRuleLength()
	if l < 1 {
		l = 1
	}
	return n*n*l + 8
}

func (ga *LRAnalysis) nonConvergence(what string, passes int) error {
	err := lr0.Errorf(lr0.NonConvergence, "%s of grammar %s did not converge within %d passes",
		what, ga.g.Name, passes)
	tracer().Errorf(err.Error())
	if gconf.GetBool("panic-on-nonconvergence") {
		panic(`Grammar analysis did not converge.

Configuration flag panic-on-nonconvergence is set to true. It is aimed at
helping to debug the analysis and do a post-mortem of a non-monotone set
update. If you did not expect this to panic, please unset the flag.
`)
	}
	return err
}

// checkGrammarUnchanged detects symbols and rules added after the analysis
// started. Rules are never removed and duplicates are not added, so counting
// suffices.
func (ga *LRAnalysis) checkGrammarUnchanged() error {
	if ga.nsyms != len(ga.g.symbols) || ga.nrules != len(ga.g.rules) {
		return lr0.Errorf(lr0.InvalidGrammar, "grammar %s changed after analysis", ga.g.Name)
	}
	return nil
}

// === EMPTY =================================================================

// ComputeEmpty determines all symbols deriving the empty string.
// Epsilon derives the empty string, terminals never do. A non-terminal derives
// the empty string if one of its rules consists of EMPTY-symbols only.
func (ga *LRAnalysis) ComputeEmpty() error {
	ga.nsyms, ga.nrules = len(ga.g.symbols), len(ga.g.rules)
	ga.empty = make([]Tristate, len(ga.g.symbols))
	for _, A := range ga.g.symbols {
		if A.IsEpsilon() {
			ga.empty[A.ID] = Yes
		} else if A.IsTerminal() {
			ga.empty[A.ID] = No
		}
	}
	if _, err := ga.iterateEmpty(); err != nil {
		return err
	}
	for i, e := range ga.empty {
		if e == Undecided {
			ga.empty[i] = No
		}
	}
	ga.phases = emptyDone
	return nil
}

func (ga *LRAnalysis) iterateEmpty() (bool, error) {
	limit := ga.passLimit()
	changed := false
	for pass := 1; ; pass++ {
		if pass > limit {
			return changed, ga.nonConvergence("EMPTY", limit)
		}
		changedInPass := false
		for _, A := range ga.g.symbols {
			if A.IsTerminal() || ga.empty[A.ID] == Yes {
				continue
			}
			for _, r := range A.rules {
				if ga.EmptySequence(r.rhs) {
					ga.empty[A.ID] = Yes
					changedInPass = true
					break
				}
			}
		}
		if !changedInPass {
			ga.passes[0] = pass
			tracer().Debugf("EMPTY converged after %d passes", pass)
			return changed, nil
		}
		changed = true
	}
}

// Empty is a predicate: does A derive the empty string?
func (ga *LRAnalysis) Empty(A *Symbol) bool {
	return ga.EmptyState(A) == Yes
}

// EmptyState returns the EMPTY-property of A, which is undecided if the
// EMPTY computation has not yet run.
func (ga *LRAnalysis) EmptyState(A *Symbol) Tristate {
	if A == nil || A.ID >= len(ga.empty) {
		return Undecided
	}
	return ga.empty[A.ID]
}

// EmptySequence is a predicate: does a sequence of symbols derive the empty
// string? The empty sequence does.
func (ga *LRAnalysis) EmptySequence(syms []*Symbol) bool {
	for _, A := range syms {
		if !ga.Empty(A) {
			return false
		}
	}
	return true
}

// === FIRST =================================================================

// ComputeFirst computes the FIRST sets of all symbols. FIRST(a) = {a} for
// terminals a, FIRST(ε) = ∅. For a rule A → X1…Xn, FIRST(A) includes
// FIRST(Xi) for every Xi preceded by EMPTY-symbols only.
// EMPTY has to be computed beforehand.
func (ga *LRAnalysis) ComputeFirst() error {
	if ga.phases&emptyDone == 0 {
		return lr0.Errorf(lr0.PhaseOrder, "FIRST requires EMPTY to be computed")
	}
	if err := ga.checkGrammarUnchanged(); err != nil {
		return err
	}
	ga.first = make([]*intsets.Sparse, len(ga.g.symbols))
	for _, A := range ga.g.symbols {
		ga.first[A.ID] = &intsets.Sparse{}
		if A.IsTerminal() && !A.IsEpsilon() {
			ga.first[A.ID].Insert(A.ID)
		}
	}
	if _, err := ga.iterateFirst(); err != nil {
		return err
	}
	ga.phases = emptyDone | firstDone
	return nil
}

func (ga *LRAnalysis) iterateFirst() (bool, error) {
	limit := ga.passLimit()
	changed := false
	for pass := 1; ; pass++ {
		if pass > limit {
			return changed, ga.nonConvergence("FIRST", limit)
		}
		changedInPass := false
		for _, A := range ga.g.symbols {
			if A.IsTerminal() {
				continue
			}
			for _, r := range A.rules {
				if ga.first[A.ID].UnionWith(ga.FirstOfSequence(r.rhs)) {
					changedInPass = true
				}
			}
		}
		if !changedInPass {
			ga.passes[1] = pass
			tracer().Debugf("FIRST converged after %d passes", pass)
			return changed, nil
		}
		changed = true
	}
}

// First returns FIRST(A), or nil if FIRST has not yet been computed.
// Clients must not modify the set.
func (ga *LRAnalysis) First(A *Symbol) *intsets.Sparse {
	if A == nil || A.ID >= len(ga.first) {
		return nil
	}
	return ga.first[A.ID]
}

// FirstOfSequence returns the FIRST set of a sequence of symbols: the union of
// FIRST(Xi) for the leading run of EMPTY-symbols and the first
// non-EMPTY symbol. The result never contains epsilon.
func (ga *LRAnalysis) FirstOfSequence(syms []*Symbol) *intsets.Sparse {
	f := &intsets.Sparse{}
	for _, A := range syms {
		f.UnionWith(ga.first[A.ID])
		if !ga.Empty(A) {
			break
		}
	}
	return f
}

// FirstNames returns the names of the terminals in FIRST(A), ordered by ID.
func (ga *LRAnalysis) FirstNames(A *Symbol) []string {
	return ga.names(ga.First(A))
}

// === FOLLOW ================================================================

// ComputeFollow computes the FOLLOW sets of all non-terminals. For every
// occurence of a non-terminal X in a rule A → α X β, FOLLOW(X) includes
// FIRST(β), and FOLLOW(A) if β derives the empty string.
// FIRST has to be computed beforehand, otherwise FOLLOW would be incomplete.
func (ga *LRAnalysis) ComputeFollow() error {
	if ga.phases&firstDone == 0 {
		return lr0.Errorf(lr0.PhaseOrder, "FOLLOW requires FIRST to be computed")
	}
	if err := ga.checkGrammarUnchanged(); err != nil {
		return err
	}
	ga.follow = make([]*intsets.Sparse, len(ga.g.symbols))
	for _, A := range ga.g.symbols {
		if !A.IsTerminal() {
			ga.follow[A.ID] = &intsets.Sparse{}
		}
	}
	if _, err := ga.iterateFollow(); err != nil {
		return err
	}
	ga.phases |= followDone
	return nil
}

func (ga *LRAnalysis) iterateFollow() (bool, error) {
	limit := ga.passLimit()
	changed := false
	for pass := 1; ; pass++ {
		if pass > limit {
			return changed, ga.nonConvergence("FOLLOW", limit)
		}
		changedInPass := false
		for _, A := range ga.g.symbols {
			for _, r := range A.rules {
				for i, X := range r.rhs {
					if X.IsTerminal() {
						continue
					}
					beta := r.rhs[i+1:]
					if ga.follow[X.ID].UnionWith(ga.FirstOfSequence(beta)) {
						changedInPass = true
					}
					if ga.EmptySequence(beta) && ga.follow[X.ID].UnionWith(ga.follow[A.ID]) {
						changedInPass = true
					}
				}
			}
		}
		if !changedInPass {
			ga.passes[2] = pass
			tracer().Debugf("FOLLOW converged after %d passes", pass)
			return changed, nil
		}
		changed = true
	}
}

// Follow returns FOLLOW(A) for a non-terminal A. For terminals, or if FOLLOW
// has not yet been computed, Follow returns nil.
// Clients must not modify the set.
func (ga *LRAnalysis) Follow(A *Symbol) *intsets.Sparse {
	if A == nil || A.ID >= len(ga.follow) {
		return nil
	}
	return ga.follow[A.ID]
}

// FollowNames returns the names of the terminals in FOLLOW(A), ordered by ID.
func (ga *LRAnalysis) FollowNames(A *Symbol) []string {
	return ga.names(ga.Follow(A))
}

// === Re-running ============================================================

// Recompute runs all three fixed-point iterations once more, on top of the
// results already present. For a completed analysis this changes nothing;
// Recompute reports whether any set did change.
func (ga *LRAnalysis) Recompute() (bool, error) {
	if ga.phases&followDone == 0 {
		return false, lr0.Errorf(lr0.PhaseOrder, "analysis of %s has not been completed", ga.g.Name)
	}
	if err := ga.checkGrammarUnchanged(); err != nil {
		return false, err
	}
	changed := false
	for _, iterate := range []func() (bool, error){ga.iterateEmpty, ga.iterateFirst, ga.iterateFollow} {
		c, err := iterate()
		if err != nil {
			return changed, err
		}
		changed = changed || c
	}
	return changed, nil
}

// Completed is a predicate: has the analysis run all of its phases?
func (ga *LRAnalysis) Completed() bool {
	return ga.phases&followDone != 0
}

// --- Helpers ----------------------------------------------------------

// Symbols converts a set of symbol IDs to symbols, ordered by ID.
func (ga *LRAnalysis) Symbols(set *intsets.Sparse) []*Symbol {
	if set == nil {
		return nil
	}
	ids := set.AppendTo(nil)
	syms := make([]*Symbol, 0, len(ids))
	for _, id := range ids {
		if id >= 0 && id < len(ga.g.symbols) {
			syms = append(syms, ga.g.symbols[id])
		}
	}
	return syms
}

func (ga *LRAnalysis) names(set *intsets.Sparse) []string {
	syms := ga.Symbols(set)
	if syms == nil {
		return nil
	}
	names := make([]string, len(syms))
	for i, A := range syms {
		names[i] = A.Name
	}
	return names
}

// Dump is a debugging helper, writing EMPTY, FIRST and FOLLOW to the trace.
func (ga *LRAnalysis) Dump() {
	ga.g.EachSymbol(func(A *Symbol) interface{} {
		if A.IsTerminal() {
			return nil
		}
		tracer().Debugf("%-10s  empty=%-3s  FIRST=%v  FOLLOW=%v", A, ga.EmptyState(A),
			ga.FirstNames(A), ga.FollowNames(A))
		return nil
	})
}
