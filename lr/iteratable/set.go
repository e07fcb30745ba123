package iteratable

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Set is an ordered set of arbitrary values. The ordering is defined by a
// comparator, given at creation time.
type Set struct {
	tree       *treeset.Set
	comparator utils.Comparator
	worklist   []interface{} // elements of a running iteration
	cursor     int           // position within worklist
	iterating  bool
}

// NewSet creates an empty set, ordered by comparator.
func NewSet(comparator utils.Comparator) *Set {
	return &Set{
		tree:       treeset.NewWith(comparator),
		comparator: comparator,
	}
}

// Add adds items to the set. Items new to the set are appended to a
// running iteration. Returns the set.
func (s *Set) Add(items ...interface{}) *Set {
	for _, x := range items {
		if s.tree.Contains(x) {
			continue
		}
		s.tree.Add(x)
		if s.iterating {
			s.worklist = append(s.worklist, x)
		}
	}
	return s
}

// Contains is a predicate: are all the items in the set?
func (s *Set) Contains(items ...interface{}) bool {
	return s.tree.Contains(items...)
}

// Size returns the number of elements in the set.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return s.tree.Size()
}

// Empty is a predicate: is the set empty?
func (s *Set) Empty() bool {
	return s.Size() == 0
}

// Values returns the elements of the set, in comparator order.
func (s *Set) Values() []interface{} {
	return s.tree.Values()
}

// Copy creates a new set with the elements of s. A running iteration of s
// is not copied.
func (s *Set) Copy() *Set {
	c := NewSet(s.comparator)
	c.tree.Add(s.tree.Values()...)
	return c
}

// Equals is a predicate: do s and other contain the same elements? As both
// sets are ordered, the comparison is element-wise.
func (s *Set) Equals(other *Set) bool {
	if s.Size() != other.Size() {
		return false
	}
	sit, oit := s.tree.Iterator(), other.tree.Iterator()
	for sit.Next() && oit.Next() {
		if s.comparator(sit.Value(), oit.Value()) != 0 {
			return false
		}
	}
	return true
}

// Each calls mapper for every element of s, in order.
func (s *Set) Each(mapper func(interface{})) {
	for _, x := range s.tree.Values() {
		mapper(x)
	}
}

// --- Iteration -------------------------------------------------------------

// IterateOnce starts an iteration over the set. Elements added during the
// iteration will be visited, too.
func (s *Set) IterateOnce() {
	s.worklist = s.tree.Values()
	s.cursor = -1
	s.iterating = true
}

// Next moves to the next element of an iteration. Returns false if the
// iteration is exhausted.
func (s *Set) Next() bool {
	if !s.iterating {
		return false
	}
	s.cursor++
	if s.cursor >= len(s.worklist) {
		s.iterating = false
		s.worklist = nil
		return false
	}
	return true
}

// Item returns the current element of an iteration.
func (s *Set) Item() interface{} {
	if !s.iterating || s.cursor < 0 {
		return nil
	}
	return s.worklist[s.cursor]
}

func (s *Set) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, x := range s.tree.Values() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf(" %v", x))
	}
	b.WriteString(" }")
	return b.String()
}
