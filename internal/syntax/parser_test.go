package syntax

import (
	"testing"

	"github.com/coregx/dregex/term"
)

func mustParse(t *testing.T, store *term.Store, pattern string) *term.Node {
	t.Helper()
	root, _, err := Parse(store, pattern)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	return root
}

func TestParseLiteralAndDot(t *testing.T) {
	s := term.NewStore()
	lit := mustParse(t, s, "a")
	if lit != s.Sym(term.MaskBit('a')) {
		t.Errorf("Parse(%q) did not intern to Sym('a')", "a")
	}
	dot := mustParse(t, s, ".")
	if dot != s.Dot() {
		t.Errorf("Parse(%q) did not intern to Dot", ".")
	}
}

func TestParseEscapesAndClasses(t *testing.T) {
	s := term.NewStore()
	tests := []struct {
		pattern string
		want    term.Mask
	}{
		{`\d`, term.MaskRange('0', '9')},
		{`\n`, term.MaskBit('\n')},
		{`\.`, term.MaskBit('.')},
		{`[abc]`, term.MaskBit('a').Or(term.MaskBit('b')).Or(term.MaskBit('c'))},
		{`[a-c]`, term.MaskRange('a', 'c')},
		{`[^a]`, term.MaskBit('a').Not()},
		{`[]a]`, term.MaskBit(']').Or(term.MaskBit('a'))},
		{`[^]a]`, term.MaskBit(']').Or(term.MaskBit('a')).Not()},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := mustParse(t, s, tt.pattern)
			if got.Tag() != term.TagSym || !got.Mask().Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want Sym matching %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestParseQuantifierIdentities(t *testing.T) {
	s := term.NewStore()
	a := s.Sym(term.MaskBit('a'))

	star := mustParse(t, s, "a*")
	if star != s.Star(a) {
		t.Errorf("a* did not intern to Star(a)")
	}
	zeroOrMore := mustParse(t, s, "a{0,}")
	if zeroOrMore != star {
		t.Errorf("a{0,} = %v, want the same term as a* (%v)", zeroOrMore, star)
	}

	plus := mustParse(t, s, "a+")
	if plus != s.Plus(a) {
		t.Errorf("a+ did not intern to Plus(a)")
	}
	oneOrMore := mustParse(t, s, "a{1,}")
	if oneOrMore != plus {
		t.Errorf("a{1,} = %v, want the same term as a+ (%v)", oneOrMore, plus)
	}

	opt := mustParse(t, s, "a?")
	if opt != s.Opt(a) {
		t.Errorf("a? did not intern to Opt(a)")
	}
	zeroOrOne := mustParse(t, s, "a{0,1}")
	if zeroOrOne != opt {
		t.Errorf("a{0,1} = %v, want the same term as a? (%v)", zeroOrOne, opt)
	}
}

func TestParsePrecedence(t *testing.T) {
	s := term.NewStore()
	a, b, c := s.Sym(term.MaskBit('a')), s.Sym(term.MaskBit('b')), s.Sym(term.MaskBit('c'))

	// concatenation binds tighter than |: "ab|c" = (a.b)|c
	got := mustParse(t, s, "ab|c")
	want := s.Or(s.Concat(a, b), c)
	if got != want {
		t.Errorf("ab|c = %v, want %v", got, want)
	}

	// & binds tighter than |: "a|b&c" = a|(b&c)
	got = mustParse(t, s, "a|b&c")
	want = s.Or(a, s.And(b, c))
	if got != want {
		t.Errorf("a|b&c = %v, want %v", got, want)
	}
}

func TestParseIgnoresSpaceAndTabBetweenTokens(t *testing.T) {
	s := term.NewStore()
	a, b, c := s.Sym(term.MaskBit('a')), s.Sym(term.MaskBit('b')), s.Sym(term.MaskBit('c'))

	got := mustParse(t, s, "(a|b) & (b|c)")
	want := s.And(s.Expr(s.Concat(s.Concat(s.Marker(term.Event{Kind: term.EventOpen, GID: 1}), s.Or(a, b)), s.Marker(term.Event{Kind: term.EventClose, GID: 1})), 1),
		s.Expr(s.Concat(s.Concat(s.Marker(term.Event{Kind: term.EventOpen, GID: 2}), s.Or(b, c)), s.Marker(term.Event{Kind: term.EventClose, GID: 2})), 2))
	if got != want {
		t.Errorf("Parse(%q) = %v, want %v", "(a|b) & (b|c)", got, want)
	}

	// A bare space or tab is dropped outright, not folded into a
	// concatenation: "a b" is exactly "ab".
	if got := mustParse(t, s, "a b"); got != s.Concat(a, b) {
		t.Errorf(`Parse("a b") = %v, want Concat(a, b)`, got)
	}
	if got := mustParse(t, s, "a\tb"); got != s.Concat(a, b) {
		t.Errorf(`Parse("a\tb") = %v, want Concat(a, b)`, got)
	}
}

func TestParseTildeOnlyValidAtExpressionStart(t *testing.T) {
	s := term.NewStore()
	a := s.Sym(term.MaskBit('a'))
	if got := mustParse(t, s, "~a"); got != s.Not(a) {
		t.Errorf(`Parse("~a") = %v, want Not(a)`, got)
	}
	if _, _, err := Parse(s, "a~b"); err == nil {
		t.Error(`Parse("a~b") succeeded, want an error: "~" never derives from a concatenation position`)
	}
}

func TestParseGroupAssignsGIDsInSourceOrder(t *testing.T) {
	s := term.NewStore()
	root, groups, err := Parse(s, "(a)(b(c))")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if groups != 3 {
		t.Fatalf("groups = %d, want 3", groups)
	}
	if term.MaxGID(root) != 3 {
		t.Errorf("MaxGID(root) = %d, want 3", term.MaxGID(root))
	}
}

func TestParseEpsilon(t *testing.T) {
	s := term.NewStore()
	got := mustParse(t, s, "ε")
	if got != s.Epsilon() {
		t.Errorf("Parse(ε) did not intern to Epsilon")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{"(a", "a)", "[abc", "a{3,1}", "~"}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			s := term.NewStore()
			if _, _, err := Parse(s, pattern); err == nil {
				t.Errorf("Parse(%q) succeeded, want an error", pattern)
			}
		})
	}
}
