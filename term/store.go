package term

import (
	"fmt"
	"sort"
	"strings"
)

// Store is the hash-consing table a compiled pattern's term graph lives in.
// Every Node reachable from a pattern's root is owned by exactly one Store;
// the Store is built once during Compile and never mutated again afterward,
// so — unlike a single process-wide intern table — concurrent Compile calls
// never contend on the same Store and need no external synchronization.
//
// Grounded on original_source/regex.py's Regex._intern classmethod (a
// dict keyed by a structural (class, *attrs) tuple), carried over to an
// arena-plus-handle design; ported to Go as a map[string]*Node keyed by a
// deterministic structural encoding instead of Python's hashable tuples.
type Store struct {
	table  map[string]*Node
	nextID int32

	empty   *Node
	epsilon *Node
	dot     *Node
	any     *Node // ¬∅, the universal language Σ*
}

// NewStore creates an empty Store with its four singleton leaves already
// interned.
func NewStore() *Store {
	s := &Store{table: make(map[string]*Node, 64)}
	s.empty = s.newLeaf(TagEmpty)
	s.epsilon = s.newLeaf(TagEpsilon)
	s.dot = s.newLeaf(TagDot)
	s.any = s.Not(s.empty)
	return s
}

func (s *Store) newLeaf(tag Tag) *Node {
	n := &Node{tag: tag}
	n.charset = NewCharSet(FullMask())
	s.register(n, "L|"+tag.String())
	return n
}

func (s *Store) register(n *Node, key string) {
	n.id = s.nextID
	n.owner = s
	s.nextID++
	s.table[key] = n
}

// Empty returns the ∅ term: matches no string.
func (s *Store) Empty() *Node { return s.empty }

// Epsilon returns the ε term: matches only the empty string.
func (s *Store) Epsilon() *Node { return s.epsilon }

// Dot returns the term matching any single byte.
func (s *Store) Dot() *Node { return s.dot }

// Any returns ¬∅, the term matching every string (Σ*).
func (s *Store) Any() *Node { return s.any }

// Sym returns the term matching exactly the bytes in mask.
func (s *Store) Sym(mask Mask) *Node {
	if mask.IsZero() {
		return s.empty
	}
	if mask.Equal(FullMask()) {
		return s.dot
	}
	key := fmt.Sprintf("Y|%x%x%x%x", mask[0], mask[1], mask[2], mask[3])
	if n, ok := s.table[key]; ok {
		return n
	}
	n := &Node{tag: TagSym, mask: mask}
	n.charset = NewCharSet(mask, mask.Not())
	s.register(n, key)
	return n
}

// Concat builds left·right, flattening nested Concat nodes (preserving
// order, since concatenation is not commutative) and rebuilding a
// canonical right-associated chain so that any two orderings of the same
// sequence intern to the same representative.
func (s *Store) Concat(left, right *Node) *Node {
	seq := append(flattenChain(left, TagConcat), flattenChain(right, TagConcat)...)
	return s.buildConcatChain(seq)
}

func flattenChain(n *Node, tag Tag) []*Node {
	if n.tag != tag {
		return []*Node{n}
	}
	return append(flattenChain(n.left, tag), flattenChain(n.right, tag)...)
}

func (s *Store) buildConcatChain(seq []*Node) *Node {
	filtered := make([]*Node, 0, len(seq))
	for _, a := range seq {
		if a.tag == TagEmpty {
			return s.empty
		}
		if a.tag == TagEpsilon {
			continue
		}
		filtered = append(filtered, a)
	}
	if len(filtered) == 0 {
		return s.epsilon
	}
	node := filtered[len(filtered)-1]
	for i := len(filtered) - 2; i >= 0; i-- {
		node = s.internConcatPair(filtered[i], node)
	}
	return node
}

func (s *Store) internConcatPair(left, right *Node) *Node {
	key := fmt.Sprintf("C|%d,%d", left.id, right.id)
	if n, ok := s.table[key]; ok {
		return n
	}
	n := &Node{tag: TagConcat, left: left, right: right}
	if s.IsNullable(left) {
		n.charset = left.charset.And(right.charset)
	} else {
		n.charset = left.charset
	}
	s.register(n, key)
	return n
}

// Or builds left∨right: ∅ and ¬∅ absorb, duplicate operands collapse, and
// either operand absorbs the other when its flattened argument set is a
// subset of the other's — a conservative syntactic subset check, not a
// semantic solver.
func (s *Store) Or(left, right *Node) *Node {
	if left.isAny || right.isAny {
		return s.any
	}
	if left.tag == TagEmpty {
		return right
	}
	if right.tag == TagEmpty {
		return left
	}
	if left == right {
		return left
	}
	argsL := flattenChain(left, TagOr)
	argsR := flattenChain(right, TagOr)
	if isSubset(argsR, argsL) {
		return left
	}
	if isSubset(argsL, argsR) {
		return right
	}
	key := setKey("OR|", append(append([]*Node{}, argsL...), argsR...))
	if n, ok := s.table[key]; ok {
		return n
	}
	n := &Node{tag: TagOr, left: left, right: right}
	n.charset = left.charset.And(right.charset)
	s.register(n, key)
	return n
}

// And builds left∧right with the dual absorption rules of Or.
func (s *Store) And(left, right *Node) *Node {
	if left.tag == TagEmpty || right.tag == TagEmpty {
		return s.empty
	}
	if left.isAny {
		return right
	}
	if right.isAny {
		return left
	}
	if left == right {
		return left
	}
	argsL := flattenChain(left, TagAnd)
	argsR := flattenChain(right, TagAnd)
	if isSubset(argsR, argsL) {
		return left
	}
	if isSubset(argsL, argsR) {
		return right
	}
	key := setKey("AND|", append(append([]*Node{}, argsL...), argsR...))
	if n, ok := s.table[key]; ok {
		return n
	}
	n := &Node{tag: TagAnd, left: left, right: right}
	n.charset = left.charset.And(right.charset)
	s.register(n, key)
	return n
}

// Xor builds the symmetric difference left⊕right.
func (s *Store) Xor(left, right *Node) *Node {
	if left.tag == TagEmpty {
		return right
	}
	if right.tag == TagEmpty {
		return left
	}
	if left == right {
		return s.empty
	}
	if left.isAny {
		return s.Not(right)
	}
	if right.isAny {
		return s.Not(left)
	}
	key := fmt.Sprintf("X|%d,%d", left.id, right.id)
	if n, ok := s.table[key]; ok {
		return n
	}
	n := &Node{tag: TagXor, left: left, right: right}
	n.charset = left.charset.And(right.charset)
	s.register(n, key)
	return n
}

// Diff builds left−right (= left∧¬right).
func (s *Store) Diff(left, right *Node) *Node {
	if left.tag == TagEmpty {
		return s.empty
	}
	if right.tag == TagEmpty {
		return left
	}
	if left == right {
		return s.empty
	}
	if right.isAny {
		return s.empty
	}
	if left.isAny {
		return s.Not(right)
	}
	key := fmt.Sprintf("D|%d,%d", left.id, right.id)
	if n, ok := s.table[key]; ok {
		return n
	}
	n := &Node{tag: TagDiff, left: left, right: right}
	n.charset = left.charset.And(right.charset)
	s.register(n, key)
	return n
}

// Not builds the complement ¬e, collapsing double negation.
func (s *Store) Not(e *Node) *Node {
	if e.tag == TagNot {
		return e.expr
	}
	key := fmt.Sprintf("N|%d", e.id)
	if n, ok := s.table[key]; ok {
		return n
	}
	n := &Node{tag: TagNot, expr: e}
	n.isAny = e.tag == TagEmpty
	n.charset = e.charset
	s.register(n, key)
	return n
}

// Star builds e*, collapsing the identities ∅*=ε*=ε and the idempotence
// (e*)*=e*, (e?)*=e*, (e+)*=e*.
func (s *Store) Star(e *Node) *Node {
	switch e.tag {
	case TagEmpty, TagEpsilon:
		return s.epsilon
	case TagStar:
		return e
	case TagOpt:
		return s.Star(e.expr)
	case TagPlus:
		return s.Star(e.expr)
	}
	key := fmt.Sprintf("S|%d", e.id)
	if n, ok := s.table[key]; ok {
		return n
	}
	n := &Node{tag: TagStar, expr: e}
	n.isAny = e.tag == TagDot
	n.charset = e.charset
	s.register(n, key)
	return n
}

// Plus builds e+, collapsing ∅+=∅, ε+=ε, (e*)+=e*, (e+)+=e+.
func (s *Store) Plus(e *Node) *Node {
	switch e.tag {
	case TagEmpty:
		return s.empty
	case TagEpsilon:
		return s.epsilon
	case TagStar, TagPlus:
		return e
	}
	key := fmt.Sprintf("P|%d", e.id)
	if n, ok := s.table[key]; ok {
		return n
	}
	n := &Node{tag: TagPlus, expr: e}
	n.charset = e.charset
	s.register(n, key)
	return n
}

// Opt builds e?, collapsing ∅?=ε?=ε, (e?)?=e?, (e*)?=e*.
func (s *Store) Opt(e *Node) *Node {
	switch e.tag {
	case TagEmpty, TagEpsilon:
		return s.epsilon
	case TagOpt, TagStar:
		return e
	}
	key := fmt.Sprintf("O|%d", e.id)
	if n, ok := s.table[key]; ok {
		return n
	}
	n := &Node{tag: TagOpt, expr: e}
	n.charset = e.charset
	s.register(n, key)
	return n
}

// Expr wraps e as capture group gid, collapsing Expr(∅, gid)=∅ and
// Expr(ε, gid)=ε (there is nothing to capture), and the double-wrap
// idempotence Expr(Expr(e, gid), gid)=Expr(e, gid).
func (s *Store) Expr(e *Node, gid int) *Node {
	if e.tag == TagEmpty {
		return s.empty
	}
	if e.tag == TagEpsilon {
		return s.epsilon
	}
	if e.tag == TagExpr && e.gid == gid {
		return e
	}
	key := fmt.Sprintf("E|%d,%d", e.id, gid)
	if n, ok := s.table[key]; ok {
		return n
	}
	n := &Node{tag: TagExpr, expr: e, gid: gid}
	n.charset = e.charset
	s.register(n, key)
	return n
}

// Marker builds a zero-width node carrying the given capture events, deduped
// and canonically ordered so that equivalent event sets always intern to
// the same node.
func (s *Store) Marker(events ...Event) *Node {
	ev := dedupeEvents(events)
	var b strings.Builder
	b.WriteString("M|")
	for _, e := range ev {
		fmt.Fprintf(&b, "%d:%d,", e.Kind, e.GID)
	}
	key := b.String()
	if n, ok := s.table[key]; ok {
		return n
	}
	n := &Node{tag: TagMarker, events: ev}
	n.charset = NewCharSet(FullMask())
	s.register(n, key)
	return n
}

func dedupeEvents(events []Event) []Event {
	seen := make(map[Event]bool, len(events))
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].GID < out[j].GID
	})
	return out
}

func isSubset(a, b []*Node) bool {
	bs := make(map[*Node]bool, len(b))
	for _, n := range b {
		bs[n] = true
	}
	for _, n := range a {
		if !bs[n] {
			return false
		}
	}
	return true
}

func setKey(prefix string, nodes []*Node) string {
	seen := make(map[*Node]bool, len(nodes))
	uniq := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if !seen[n] {
			seen[n] = true
			uniq = append(uniq, n)
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i].id < uniq[j].id })
	var b strings.Builder
	b.WriteString(prefix)
	for _, n := range uniq {
		fmt.Fprintf(&b, "%d,", n.id)
	}
	return b.String()
}
