package iteratable

import (
	"testing"

	"github.com/emirpasic/gods/utils"
)

func TestSetAddIsOrdered(t *testing.T) {
	S := NewSet(utils.IntComparator)
	S.Add(5, 3, 9, 3)
	if S.Size() != 3 {
		t.Errorf("expected set to have 3 elements, has %d", S.Size())
	}
	vals := S.Values()
	if vals[0] != 3 || vals[1] != 5 || vals[2] != 9 {
		t.Errorf("expected set to be ordered, is %v", S)
	}
}

func TestSetEquals(t *testing.T) {
	A := NewSet(utils.IntComparator).Add(1, 2, 3)
	B := NewSet(utils.IntComparator).Add(3, 1, 2)
	if !A.Equals(B) {
		t.Errorf("expected %v to equal %v", A, B)
	}
	C := A.Copy().Add(7)
	if A.Equals(C) {
		t.Errorf("expected %v to differ from %v", A, C)
	}
	if A.Size() != 3 {
		t.Errorf("copy shares elements with original")
	}
}

func TestSetIterationSeesAddedElements(t *testing.T) {
	S := NewSet(utils.IntComparator).Add(1)
	S.IterateOnce()
	visited := 0
	for S.Next() {
		n := S.Item().(int)
		visited++
		if n < 10 {
			S.Add(n+1, n) // n is a duplicate and must not be visited again
		}
	}
	if visited != 10 {
		t.Errorf("expected iteration to visit 10 elements, visited %d", visited)
	}
	if S.Next() {
		t.Errorf("expected iteration to be exhausted")
	}
}
