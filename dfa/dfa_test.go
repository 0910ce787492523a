package dfa

import (
	"testing"

	"github.com/coregx/dregex/term"
)

func build(t *testing.T, pattern func(s *term.Store) *term.Node) (*term.Store, *Program) {
	t.Helper()
	s := term.NewStore()
	root := pattern(s)
	return s, Compile(s, root)
}

// TestCompileSurvivesDerivativeGrowth exercises a pattern whose derivative
// closure interns nodes with ids well past whatever term.Store.Count()
// reported when Compile started — the scenario that broke the old
// internal/sparse-backed visited set.
func TestCompileSurvivesDerivativeGrowth(t *testing.T) {
	_, p := build(t, func(s *term.Store) *term.Node {
		a := s.Sym(term.MaskBit('a'))
		min3 := s.Epsilon()
		for i := 0; i < 3; i++ {
			min3 = s.Concat(min3, a)
		}
		return s.Concat(min3, s.Star(a))
	})
	if p.NumStates() == 0 {
		t.Fatal("Compile produced no states")
	}
}

func TestFullMatchStarOfA(t *testing.T) {
	_, p := build(t, func(s *term.Store) *term.Node {
		return s.Star(s.Sym(term.MaskBit('a')))
	})
	if FullMatch(p, []byte("")) == nil {
		t.Error("FullMatch(a*, \"\") = nil, want a match")
	}
	if FullMatch(p, []byte("aaa")) == nil {
		t.Error("FullMatch(a*, \"aaa\") = nil, want a match")
	}
	if FullMatch(p, []byte("aab")) != nil {
		t.Error("FullMatch(a*, \"aab\") matched, want nil")
	}
}

func TestMatchGreedyVsNonGreedy(t *testing.T) {
	_, p := build(t, func(s *term.Store) *term.Node {
		return s.Star(s.Sym(term.MaskBit('a')))
	})
	greedy := Match(p, []byte("aaab"), true)
	if got := greedy[0][0]; got != [2]int{0, 3} {
		t.Errorf("greedy Match = %v, want [0,3)", got)
	}
	nonGreedy := Match(p, []byte("aaab"), false)
	if got := nonGreedy[0][0]; got != [2]int{0, 0} {
		t.Errorf("non-greedy Match = %v, want [0,0)", got)
	}
}

func TestSearchSkipsDeadPrefix(t *testing.T) {
	_, p := build(t, func(s *term.Store) *term.Node {
		return s.Sym(term.MaskBit('b'))
	})
	got := Search(p, []byte("aaab"), true, false)
	if got == nil {
		t.Fatal("Search found no match")
	}
	if got[0][0] != [2]int{3, 4} {
		t.Errorf("Search = %v, want match at [3,4)", got[0][0])
	}
}

func TestSearchNoMatchReturnsNil(t *testing.T) {
	_, p := build(t, func(s *term.Store) *term.Node {
		return s.Sym(term.MaskBit('z'))
	})
	if got := Search(p, []byte("aaa"), true, true); got != nil {
		t.Errorf("Search = %v, want nil", got)
	}
}
