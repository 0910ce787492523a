// Package dregex implements a Brzozowski-derivative regular expression
// engine: patterns compile to an interned term graph (package term), the
// term graph compiles on the fly into a byte-indexed DFA (package dfa), and
// that DFA drives full-match, prefix-match and search.
//
// Grounded on original_source/regex.py's Regex/compile entry points.
package dregex

import (
	"fmt"

	"github.com/coregx/dregex/dfa"
	"github.com/coregx/dregex/internal/syntax"
	"github.com/coregx/dregex/term"
)

// GroupMap records the [start,end) byte-offset span(s) found for each
// capture group id, 0 always being the whole match. A group absent from
// the map did not participate in the match. Re-exported from package dfa
// so callers never need to import it directly.
type GroupMap = dfa.GroupMap

// CompiledPattern is a pattern whose term graph has already been turned
// into a DFA: Compile does the (possibly expensive) derivative-closure
// exploration once, up front, so every match/search call afterward is a
// pure table walk.
type CompiledPattern struct {
	source string
	store  *term.Store
	root   *term.Node
	prog   *dfa.Program
	groups int
}

// Compile parses pattern and builds its DFA. Returns a *CompileError
// wrapping ErrInvalidPattern if pattern is not well-formed.
func Compile(pattern string) (*CompiledPattern, error) {
	store := term.NewStore()
	root, groups, err := syntax.Parse(store, pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: fmt.Errorf("%w: %v", ErrInvalidPattern, err)}
	}
	cp := &CompiledPattern{
		source: pattern,
		store:  store,
		root:   root,
		prog:   dfa.Compile(store, root),
		groups: groups,
	}
	return cp, nil
}

// MustCompile is like Compile but panics if pattern is invalid. Intended
// for patterns fixed at compile time (tests, package-level vars), not for
// user-supplied input.
func MustCompile(pattern string) *CompiledPattern {
	cp, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return cp
}

// CompileTerm builds a CompiledPattern directly from an already-constructed
// term, bypassing the pattern-string parser. If a previous CompileTerm call
// already compiled r, the CompiledPattern cached for it in the package-level
// cache is returned unchanged rather than rebuilt.
func CompileTerm(r *term.Node) (*CompiledPattern, error) {
	if r == nil {
		return nil, &CompileError{Pattern: "", Err: ErrUnsupportedPatternType}
	}
	if cp, ok := globalCache.get(r); ok {
		return cp, nil
	}
	store := r.Store()
	cp := &CompiledPattern{
		store:  store,
		root:   r,
		prog:   dfa.Compile(store, r),
		groups: term.MaxGID(r),
	}
	globalCache.put(r, cp)
	return cp, nil
}

// String returns the source pattern CompiledPattern was compiled from, or
// the term's debug representation if it was built via CompileTerm.
func (cp *CompiledPattern) String() string {
	if cp.source != "" {
		return cp.source
	}
	return cp.root.String()
}

// NumSubexp reports the number of capture groups in the pattern, not
// counting the implicit whole-match group 0.
func (cp *CompiledPattern) NumSubexp() int { return cp.groups }

// FullMatch reports the capture groups found if s matches the pattern in
// its entirety, or nil if it does not.
func (cp *CompiledPattern) FullMatch(s []byte) GroupMap {
	return dfa.FullMatch(cp.prog, s)
}

// FullMatchString is the string-argument form of FullMatch.
func (cp *CompiledPattern) FullMatchString(s string) GroupMap {
	return cp.FullMatch([]byte(s))
}

// Match finds the longest (greedy) or shortest (non-greedy) prefix of s
// accepted by the pattern, starting at offset 0. Returns nil if no prefix,
// including the empty one, is accepted.
func (cp *CompiledPattern) Match(s []byte, greedy bool) GroupMap {
	return dfa.Match(cp.prog, s, greedy)
}

// MatchString is the string-argument form of Match.
func (cp *CompiledPattern) MatchString(s string, greedy bool) GroupMap {
	return cp.Match([]byte(s), greedy)
}

// Search scans s for the first match, or with all=true every
// non-overlapping match, merging every match's captures into one GroupMap.
// Returns nil if the pattern matches nowhere in s.
func (cp *CompiledPattern) Search(s []byte, greedy, all bool) GroupMap {
	return dfa.Search(cp.prog, s, greedy, all)
}

// SearchString is the string-argument form of Search.
func (cp *CompiledPattern) SearchString(s string, greedy, all bool) GroupMap {
	return cp.Search([]byte(s), greedy, all)
}

// NumStates reports how many DFA states were discovered for this pattern.
func (cp *CompiledPattern) NumStates() int { return cp.prog.NumStates() }
