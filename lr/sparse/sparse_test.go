package sparse

import "testing"

func TestSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, -1)
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	if v := M.Value(9, 9); v != -1 {
		t.Errorf("expected M(9,9) to be null-value, is %d", v)
	}
	if M.ValueCount() != 1 {
		t.Errorf("expected 1 value, have %d", M.ValueCount())
	}
}

func TestEntriesStayOrdered(t *testing.T) {
	M := NewIntMatrix(5, 5, DefaultNullValue)
	M.Set(4, 4, 44).Set(0, 1, 1).Set(2, 0, 20).Set(0, 0, 0).Set(2, 3, 23)
	var last [2]int
	first := true
	M.Each(func(i, j, v int) {
		if !first && (i < last[0] || i == last[0] && j <= last[1]) {
			t.Errorf("entry (%d,%d) out of order after (%d,%d)", i, j, last[0], last[1])
		}
		if v != i*10+j {
			t.Errorf("expected M(%d,%d) = %d, is %d", i, j, i*10+j, v)
		}
		last, first = [2]int{i, j}, false
	})
	if M.ValueCount() != 5 {
		t.Errorf("expected 5 values, have %d", M.ValueCount())
	}
}

func TestOverwriteAndClear(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Set(1, 1, 5)
	M.Set(1, 1, 6)
	if M.Value(1, 1) != 6 || M.ValueCount() != 1 {
		t.Errorf("expected overwrite of M(1,1) with 6")
	}
	M.Set(1, 1, -1)
	if M.ValueCount() != 0 {
		t.Errorf("expected null-value to clear entry, have %d values", M.ValueCount())
	}
}

func TestRow(t *testing.T) {
	M := NewIntMatrix(3, 4, -1)
	M.Set(0, 2, 7).Set(1, 0, 1).Set(1, 3, 2).Set(2, 2, 9)
	row := M.Row(1)
	if len(row) != 2 || row[0] != 1 || row[3] != 2 {
		t.Errorf("expected row 1 = {0:1, 3:2}, is %v", row)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set out of range to panic")
		}
	}()
	NewIntMatrix(2, 2, -1).Set(2, 0, 1)
}
