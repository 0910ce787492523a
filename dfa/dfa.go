// Package dfa builds and drives the on-the-fly Brzozowski-derivative DFA: a
// worklist exploration of a compiled term's derivative closure into a
// byte-indexed transition table per state, plus the three matcher entry
// points (FullMatch, Match, Search) that walk it.
package dfa

import (
	"github.com/coregx/dregex/term"
)

// Goto is one entry of a state's transition table: the next state together
// with the capture events that fire when this transition is taken.
type Goto struct {
	Next   *term.Node
	Events []term.Event
}

type stateInfo struct {
	number       int
	transitions  [256]Goto
	prefixEvents []term.Event
	nullable     bool
}

// Program is a fully-built derivative DFA: every state reachable from the
// pattern's root, with its transition table precomputed eagerly.
//
// Grounded on original_source/dfa.py's compile(): a worklist over
// derivative terms using CharSet.get_int_sets() to avoid testing all 256
// byte values individually, ported here with DFA metadata (state number,
// transition table, prefix events) kept in Program's side table rather
// than mutated onto the term.Node itself, so a Node built once can
// participate in many independently-compiled automata.
type Program struct {
	root *term.Node
	info map[*term.Node]*stateInfo
}

// Compile explores the derivative closure of root and builds its DFA.
//
// The worklist tracks "already enqueued" by node identity in a plain map
// rather than internal/sparse's fixed-capacity SparseSet: derivative terms
// discovered mid-exploration are freshly interned by Store.Derive and carry
// ids beyond whatever Store.Count() reported when Compile started, so a
// capacity snapshotted up front cannot bound them.
func Compile(store *term.Store, root *term.Node) *Program {
	p := &Program{root: root, info: make(map[*term.Node]*stateInfo)}

	enqueued := map[*term.Node]bool{root: true}
	queue := []*term.Node{root}

	dead := store.Empty()
	for len(queue) > 0 {
		st := queue[0]
		queue = queue[1:]

		info := &stateInfo{number: len(p.info)}
		info.nullable = store.IsNullable(st)
		info.prefixEvents = term.EventsFromMarkers(store.NullMarkers(st))
		for i := range info.transitions {
			info.transitions[i] = Goto{Next: dead}
		}

		for _, mask := range st.Charset().Masks() {
			rep, ok := mask.Representative()
			if !ok {
				continue
			}
			next, states := store.Derive(st, rep, false)
			g := Goto{Next: next, Events: term.EventsFromMarkers(states)}
			for _, b := range mask.Members() {
				info.transitions[b] = g
			}
			if !enqueued[next] {
				enqueued[next] = true
				queue = append(queue, next)
			}
		}

		p.info[st] = info
	}
	return p
}

// NumStates reports how many distinct DFA states were discovered.
func (p *Program) NumStates() int { return len(p.info) }

func (p *Program) lookup(n *term.Node) *stateInfo {
	info, ok := p.info[n]
	if !ok {
		panic("dfa: state not reachable from this program's root")
	}
	return info
}
