package lr

import (
	"fmt"

	"github.com/npillmayer/lr0/lr/sparse"
)

// Table is a transition table for a CFSM: rows are states, columns are
// symbols (by symbol ID). Entries are state IDs, AcceptState, or NoState for
// missing transitions.
type Table struct {
	matrix *sparse.IntMatrix
	g      *Grammar
}

// TransitionTable creates the transition table for a CFSM.
func (c *CFSM) TransitionTable() *Table {
	tracer().Infof("transition table of size %d x %d", c.Size(), c.g.Size())
	t := &Table{
		matrix: sparse.NewIntMatrix(c.Size(), c.g.Size(), NoState),
		g:      c.g,
	}
	for _, s := range c.states {
		for id, target := range s.row {
			t.matrix.Set(s.ID, id, target)
		}
	}
	return t
}

// Rows returns the number of rows, i.e. states.
func (t *Table) Rows() int {
	return t.matrix.M()
}

// Cols returns the number of columns, i.e. symbols.
func (t *Table) Cols() int {
	return t.matrix.N()
}

// NullValue returns the value of empty table entries, which is NoState.
func (t *Table) NullValue() int {
	return t.matrix.NullValue()
}

// Value returns the entry for state and symbol A.
func (t *Table) Value(state int, A *Symbol) int {
	if A == nil || state < 0 || state >= t.Rows() || A.ID >= t.Cols() {
		return NoState
	}
	return t.matrix.Value(state, A.ID)
}

// Count returns the number of transitions in the table.
func (t *Table) Count() int {
	return t.matrix.ValueCount()
}

// Row returns the transitions of a state as a map symbol → target.
func (t *Table) Row(state int) map[*Symbol]int {
	row := make(map[*Symbol]int)
	for id, v := range t.matrix.Row(state) {
		row[t.g.symbols[id]] = v
	}
	return row
}

// valstring is a short helper to stringify a table entry.
func valstring(v int) string {
	switch v {
	case NoState:
		return ""
	case AcceptState:
		return "acc"
	}
	return fmt.Sprintf("%d", v)
}
