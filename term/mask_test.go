package term

import "testing"

func TestMaskRangeAndMembers(t *testing.T) {
	m := MaskRange('0', '9')
	for b := byte('0'); b <= '9'; b++ {
		if !m.Test(b) {
			t.Errorf("MaskRange('0','9') missing %q", b)
		}
	}
	if m.Test('a') {
		t.Errorf("MaskRange('0','9') should not contain 'a'")
	}
	members := m.Members()
	if len(members) != 10 {
		t.Errorf("Members() len = %d, want 10", len(members))
	}
}

func TestMaskIntervals(t *testing.T) {
	m := MaskRange('a', 'c').Or(MaskRange('e', 'f'))
	got := m.Intervals()
	want := [][2]int{{int('a'), int('c')}, {int('e'), int('f')}}
	if len(got) != len(want) {
		t.Fatalf("Intervals() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Intervals()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMaskNotAndFull(t *testing.T) {
	full := FullMask()
	if !full.Equal(full.Not().Not()) {
		t.Errorf("double negation should round-trip")
	}
	if !MaskBit('a').Not().Or(MaskBit('a')).Equal(full) {
		t.Errorf("a ∪ ¬a should be the full mask")
	}
}

func TestMergeIntervals(t *testing.T) {
	in := [][2]int{{5, 7}, {0, 2}, {3, 4}, {10, 12}}
	got := MergeIntervals(in, true)
	want := [][2]int{{0, 7}, {10, 12}}
	if len(got) != len(want) {
		t.Fatalf("MergeIntervals = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MergeIntervals()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMergeIntervalsNoAdjacentMerge(t *testing.T) {
	in := [][2]int{{0, 2}, {3, 4}}
	got := MergeIntervals(in, false)
	if len(got) != 2 {
		t.Errorf("MergeIntervals(mergeAdjacent=false) = %v, want 2 separate intervals", got)
	}
}

func TestCharSetAnd(t *testing.T) {
	cs1 := NewCharSet(MaskRange('a', 'z'), MaskRange('a', 'z').Not())
	cs2 := NewCharSet(MaskRange('m', 'z'), MaskRange('m', 'z').Not())
	got := cs1.And(cs2)
	if len(got.Masks()) == 0 {
		t.Errorf("And of overlapping charsets should not be empty")
	}
}
