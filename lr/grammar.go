package lr

import (
	"errors"
	"fmt"

	"github.com/npillmayer/lr0"
)

// Grammar is a type for a context-free grammar. It owns all symbols and
// rules. Symbols are kept in a table in order of their first reference;
// this order is the order of the grammar's alphabet.
//
// Grammars are usually created with a GrammarBuilder.
type Grammar struct {
	Name    string
	symbols []*Symbol          // symbol table, indexed by symbol ID
	byName  map[string]*Symbol // symbol lookup by name
	rules   []*Rule            // all rules, indexed by rule serial
}

// NewGrammar creates an empty grammar.
func NewGrammar(name string) *Grammar {
	return &Grammar{
		Name:   name,
		byName: make(map[string]*Symbol),
	}
}

// Symbol finds a symbol in the grammar's symbol table, inserting a new one if
// not found. New symbols are terminals, until a rule is attached to them.
// Returns nil for an empty name.
func (g *Grammar) Symbol(name string) *Symbol {
	if len(name) == 0 {
		return nil
	}
	if A, found := g.byName[name]; found {
		return A
	}
	A := &Symbol{Name: name, ID: len(g.symbols)}
	g.symbols = append(g.symbols, A)
	g.byName[name] = A
	tracer().Debugf("new grammar symbol %q with ID %d", name, A.ID)
	return A
}

// SymbolByName returns the symbol for name, or nil if no symbol with this
// name has been referenced.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.byName[name]
}

// AddProduction appends a rule LHS → names to the grammar. Names are resolved
// to symbols, unknown names create new symbols. Epsilon symbols are dropped
// from the RHS, i.e. an RHS consisting of epsilon only results in an
// epsilon-production.
//
// If lhs already has a rule with an identical RHS, that rule is returned
// and the grammar is not changed.
func (g *Grammar) AddProduction(lhs *Symbol, names []string) (*Rule, error) {
	if lhs == nil || g.byName[lhs.Name] != lhs {
		return nil, lr0.Errorf(lr0.InvalidGrammar, "LHS %v is not a symbol of grammar %s", lhs, g.Name)
	}
	if lhs.IsEpsilon() || lhs.IsEOF() {
		return nil, lr0.Errorf(lr0.InvalidGrammar, "reserved symbol %s cannot have rules", lhs)
	}
	rhs := make([]*Symbol, 0, len(names))
	for _, name := range names {
		A := g.Symbol(name)
		if A == nil {
			return nil, lr0.Errorf(lr0.InvalidGrammar, "empty symbol name in rule for %s", lhs)
		}
		if A.IsEpsilon() {
			continue
		}
		rhs = append(rhs, A)
	}
	for _, r := range lhs.rules {
		if sameSymbols(r.rhs, rhs) {
			tracer().Debugf("duplicate rule %v collapsed into rule %d", r, r.Serial)
			return r, nil
		}
	}
	r := &Rule{Serial: len(g.rules), LHS: lhs, rhs: rhs}
	g.rules = append(g.rules, r)
	lhs.rules = append(lhs.rules, r)
	return r, nil
}

// Rule returns rule no. n, or nil.
func (g *Grammar) Rule(n int) *Rule {
	if n < 0 || n >= len(g.rules) {
		return nil
	}
	return g.rules[n]
}

// Rules returns all rules of the grammar, ordered by serial number.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// Size returns the number of symbols in the grammar.
func (g *Grammar) Size() int {
	return len(g.symbols)
}

// Alphabet returns all symbols of the grammar, ordered by ID.
func (g *Grammar) Alphabet() []*Symbol {
	return append([]*Symbol(nil), g.symbols...)
}

// StartRule returns the start rule of the grammar: the single rule containing
// the end-of-input marker. The marker has to be the last symbol of the rule
// and the rule has to be the only rule of its LHS.
func (g *Grammar) StartRule() (*Rule, error) {
	eof := g.byName[lr0.EndOfInput]
	if eof == nil {
		return nil, lr0.Errorf(lr0.NoStartRule, "grammar %s has no rule containing %s", g.Name, lr0.EndOfInput)
	}
	var start *Rule
	for _, r := range g.rules {
		if !r.contains(eof) {
			continue
		}
		if start != nil {
			return nil, lr0.Errorf(lr0.AmbiguousStart, "rules %d and %d both contain %s",
				start.Serial, r.Serial, lr0.EndOfInput)
		}
		start = r
	}
	if start == nil {
		return nil, lr0.Errorf(lr0.NoStartRule, "grammar %s has no rule containing %s", g.Name, lr0.EndOfInput)
	}
	if start.rhs[len(start.rhs)-1] != eof {
		return nil, lr0.Errorf(lr0.InvalidGrammar, "%s must end start rule %v", lr0.EndOfInput, start)
	}
	if len(start.LHS.rules) > 1 {
		return nil, lr0.Errorf(lr0.AmbiguousStart, "start symbol %s has %d rules",
			start.LHS, len(start.LHS.rules))
	}
	return start, nil
}

// StartSymbol returns the LHS of the start rule, or nil.
func (g *Grammar) StartSymbol() *Symbol {
	if r, err := g.StartRule(); err == nil {
		return r.LHS
	}
	return nil
}

// EachSymbol iterates over all symbols of the grammar, in order of their IDs.
// Results of the mapper which are not nil are collected and returned.
func (g *Grammar) EachSymbol(mapper func(A *Symbol) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.symbols {
		if v := mapper(A); v != nil {
			r = append(r, v)
		}
	}
	return r
}

// EachNonTerminal iterates over all non-terminal symbols of the grammar.
func (g *Grammar) EachNonTerminal(mapper func(N *Symbol) interface{}) []interface{} {
	return g.EachSymbol(func(A *Symbol) interface{} {
		if A.IsTerminal() {
			return nil
		}
		return mapper(A)
	})
}

// EachTerminal iterates over all terminal symbols of the grammar.
func (g *Grammar) EachTerminal(mapper func(T *Symbol) interface{}) []interface{} {
	return g.EachSymbol(func(A *Symbol) interface{} {
		if !A.IsTerminal() {
			return nil
		}
		return mapper(A)
	})
}

// maxRuleLength returns the length of the longest RHS.
func (g *Grammar) maxRuleLength() int {
	max := 0
	for _, r := range g.rules {
		if len(r.rhs) > max {
			max = len(r.rhs)
		}
	}
	return max
}

// Dump is a debugging helper, writing the rules of g to the trace.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s ::= [%s]", r.Serial, r.LHS, symbolsString(r.rhs))
	}
	tracer().Debugf("-------------------------------------------------------")
}

// === Grammar Builder =======================================================

// GrammarBuilder is a helper type to construct grammars. Use it like this:
//
//    b := lr.NewGrammarBuilder("G")
//    b.LHS("E").N("E").T("+").N("T").End()  // E -> E + T
//    b.LHS("E").N("T").End()                // E -> T
//    b.Augment("E")                         // E' -> E $
//    g, err := b.Grammar()
//
// Errors are collected and reported by Grammar().
type GrammarBuilder struct {
	g        *Grammar
	errs     []error
	nonterms []string // names used with N(…)
	strict   bool
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{g: NewGrammar(gname)}
}

// Strict makes Grammar() fail for symbols which have been introduced as
// non-terminals with N(…), but have no rules.
func (gb *GrammarBuilder) Strict(b bool) *GrammarBuilder {
	gb.strict = b
	return gb
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: name}
}

// AddAlternatives adds a rule LHS → alt for every alternative alt.
// This is the shape grammar sources are delivered in after tokenization.
func (gb *GrammarBuilder) AddAlternatives(lhs string, alternatives [][]string) *GrammarBuilder {
	for _, alt := range alternatives {
		rb := gb.LHS(lhs)
		rb.rhs = append(rb.rhs, alt...)
		rb.End()
	}
	return gb
}

// Augment adds a start rule S' → S $ for a start symbol S.
func (gb *GrammarBuilder) Augment(start string) *Rule {
	return gb.LHS(start + "'").N(start).EOF()
}

// Grammar returns the grammar constructed so far, or the errors collected
// during construction.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	errs := gb.errs
	for _, name := range gb.nonterms {
		if A := gb.g.SymbolByName(name); A != nil && A.IsTerminal() {
			if gb.strict {
				errs = append(errs, lr0.Errorf(lr0.InvalidGrammar, "non-terminal %s has no rules", name))
			} else {
				tracer().Infof("symbol %s used as non-terminal, but has no rules", name)
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return gb.g, nil
}

func (gb *GrammarBuilder) addRule(lhs string, rhs []string, nonterms []string) *Rule {
	A := gb.g.Symbol(lhs)
	if A == nil {
		gb.errs = append(gb.errs, lr0.Errorf(lr0.InvalidGrammar, "rule with empty LHS in grammar %s", gb.g.Name))
		return nil
	}
	r, err := gb.g.AddProduction(A, rhs)
	if err != nil {
		gb.errs = append(gb.errs, fmt.Errorf("rule for %s: %w", lhs, err))
		return nil
	}
	gb.nonterms = append(gb.nonterms, nonterms...)
	return r
}

// RuleBuilder is a builder type for rules, created by GrammarBuilder.LHS(…).
type RuleBuilder struct {
	gb       *GrammarBuilder
	lhs      string
	rhs      []string
	nonterms []string
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, name)
	rb.nonterms = append(rb.nonterms, name)
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, name)
	return rb
}

// End ends a rule and returns it, or nil in case of an error.
func (rb *RuleBuilder) End() *Rule {
	return rb.gb.addRule(rb.lhs, rb.rhs, rb.nonterms)
}

// EOF appends the end-of-input marker and ends the rule.
func (rb *RuleBuilder) EOF() *Rule {
	rb.rhs = append(rb.rhs, lr0.EndOfInput)
	return rb.End()
}

// Epsilon ends an epsilon-rule. Symbols appended before are kept.
func (rb *RuleBuilder) Epsilon() *Rule {
	return rb.End()
}
