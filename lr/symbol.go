package lr

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/lr0"
)

// Symbol represents a grammar symbol, either a terminal or a non-terminal.
// Symbols are unique by name within a grammar and are created by the
// grammar only. ID is the index of the symbol in the grammar's symbol table
// and is used for indexing symbol sets.
type Symbol struct {
	Name  string
	ID    int
	rules []*Rule // rules with this symbol as LHS
}

// IsTerminal is a predicate: a symbol is a terminal as long as it has no rules.
func (A *Symbol) IsTerminal() bool {
	return len(A.rules) == 0
}

// IsEpsilon is a predicate: is A the reserved epsilon symbol?
func (A *Symbol) IsEpsilon() bool {
	return A.Name == lr0.Epsilon
}

// IsEOF is a predicate: is A the reserved end-of-input marker?
func (A *Symbol) IsEOF() bool {
	return A.Name == lr0.EndOfInput
}

// Rules returns the rules with A as their left hand side.
func (A *Symbol) Rules() []*Rule {
	return append([]*Rule(nil), A.rules...)
}

func (A *Symbol) String() string {
	return A.Name
}

// --- Rules -----------------------------------------------------------------

// Rule is a type for rules of a grammar (productions). Rules are immutable
// once they are part of a grammar. Serial is the ordinal number of the rule
// within its grammar.
type Rule struct {
	Serial int
	LHS    *Symbol
	rhs    []*Symbol
}

// RHS returns the right hand side of a rule.
func (r *Rule) RHS() []*Symbol {
	return append([]*Symbol(nil), r.rhs...)
}

// Len returns the number of symbols on the RHS.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// At returns the RHS symbol at position i, or nil.
func (r *Rule) At(i int) *Symbol {
	if i < 0 || i >= len(r.rhs) {
		return nil
	}
	return r.rhs[i]
}

// IsEpsilon is a predicate: is this an epsilon-production?
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

// Equals compares the right hand sides of two rules, symbol by symbol.
func (r *Rule) Equals(other *Rule) bool {
	if other == nil {
		return false
	}
	return sameSymbols(r.rhs, other.rhs)
}

func (r *Rule) contains(A *Symbol) bool {
	for _, B := range r.rhs {
		if B == A {
			return true
		}
	}
	return false
}

func (r *Rule) String() string {
	return fmt.Sprintf("%v ::= %v", r.LHS, r.rhs)
}

func sameSymbols(a, b []*Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func symbolsString(syms []*Symbol) string {
	var b bytes.Buffer
	for i, A := range syms {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Name)
	}
	return b.String()
}
