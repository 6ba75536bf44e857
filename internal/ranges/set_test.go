package ranges

import (
	"testing"
)

func TestFromSorted(t *testing.T) {
	in := []int{1, 2, 5}
	s, err := FromSorted(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in[0] = 100
	if !s.Contains(1) || s.Contains(100) {
		t.Error("FromSorted must copy its input")
	}

	if _, err := FromSorted([]int{2, 1}); err == nil {
		t.Error("expected error for descending input")
	}
	if _, err := FromSorted([]int{1, 1}); err == nil {
		t.Error("expected error for duplicate input")
	}
}

func TestSet_ValuesIsCopy(t *testing.T) {
	s := Of(3, 1, 2)
	v := s.Values()
	v[0] = 99
	if s.Values()[0] != 1 {
		t.Error("mutating Values() result changed the set")
	}
}

func TestSet_Contains(t *testing.T) {
	s := Of(10, -5, 3)
	for _, n := range []int{-5, 3, 10} {
		if !s.Contains(n) {
			t.Errorf("expected set to contain %d", n)
		}
	}
	if s.Contains(4) {
		t.Error("did not expect set to contain 4")
	}
	if (Set{}).Contains(0) {
		t.Error("empty set contains nothing")
	}
}

func TestSet_Equal(t *testing.T) {
	if !Of(1, 2).Equal(Collect("2,1,2")) {
		t.Error("expected equal sets")
	}
	if Of(1).Equal(Of(1, 2)) {
		t.Error("expected unequal sets")
	}
	if !(Set{}).Equal(Collect("")) {
		t.Error("expected empty sets to be equal")
	}
}
