/*
Package sparse implements a simple type for sparse integer matrices.
It is mainly used for the transition table of a CFSM, which is rather sparse
for most grammars: a state has transitions for only a handful of symbols.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept sorted in row-major order.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
   https://www.coin-or.org/Ipopt/documentation/node38.html


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a spare matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     cnt := M.ValueCount()          // returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Setting a position to the null-value removes it.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int
}

// Triplet values to store
type triplet struct {
	row, col int
	value    int
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int {
	return m.nullval
}

// ValueCount returns the number of values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the value at position (i,j), or NullValue.
func (m *IntMatrix) Value(i, j int) int {
	if k, found := m.search(i, j); found {
		return m.values[k].value
	}
	return m.nullval
}

// Set a value in the matrix at position (i,j). Will panic if (i,j) is out of
// range.
func (m *IntMatrix) Set(i, j int, value int) *IntMatrix {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.IntMatrix.Set(%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
	k, found := m.search(i, j)
	if found {
		if value == m.nullval {
			m.values = append(m.values[:k], m.values[k+1:]...)
		} else {
			m.values[k].value = value
		}
		return m
	}
	if value == m.nullval {
		return m
	}
	t := triplet{row: i, col: j, value: value}
	m.values = append(m.values, t)     // make room
	copy(m.values[k+1:], m.values[k:]) // copy remainder values one index to right
	m.values[k] = t
	return m
}

// Each calls f for every non-null entry, in row-major order.
func (m *IntMatrix) Each(f func(i, j, value int)) {
	for _, t := range m.values {
		f(t.row, t.col, t.value)
	}
}

// Row returns the non-null entries of row i as a map from column to value.
func (m *IntMatrix) Row(i int) map[int]int {
	row := make(map[int]int)
	k, _ := m.search(i, 0)
	for ; k < len(m.values) && m.values[k].row == i; k++ {
		row[m.values[k].col] = m.values[k].value
	}
	return row
}

// search finds the position of (i,j) within the sorted triplets, or the
// position where it would have to be inserted.
func (m *IntMatrix) search(i, j int) (int, bool) {
	k := sort.Search(len(m.values), func(n int) bool {
		return !m.values[n].storedLeftOf(i, j)
	})
	return k, k < len(m.values) && m.values[k].storedAt(i, j)
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return (t.row == i && t.col == j)
}
