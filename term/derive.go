package term

// Nullable computes ν(n): ε if n accepts the empty string, ∅ otherwise,
// expressed as a term so the boolean algebra of the node's own operators
// (And for Concat, Or for Or, ...) can combine it compositionally. Memoized
// on the node since a term's nullability never changes after construction.
func (s *Store) Nullable(n *Node) *Node {
	if n.nullComputed {
		return n.nullValue
	}
	var result *Node
	switch n.tag {
	case TagEmpty, TagSym, TagDot:
		result = s.empty
	case TagEpsilon, TagStar, TagOpt, TagMarker:
		result = s.epsilon
	case TagConcat:
		result = s.And(s.Nullable(n.left), s.Nullable(n.right))
	case TagOr:
		result = s.Or(s.Nullable(n.left), s.Nullable(n.right))
	case TagAnd:
		result = s.And(s.Nullable(n.left), s.Nullable(n.right))
	case TagXor:
		result = s.Xor(s.Nullable(n.left), s.Nullable(n.right))
	case TagDiff:
		result = s.Diff(s.Nullable(n.left), s.Nullable(n.right))
	case TagNot:
		if s.Nullable(n.expr).tag == TagEmpty {
			result = s.epsilon
		} else {
			result = s.empty
		}
	case TagPlus:
		result = s.Nullable(n.expr)
	case TagExpr:
		result = s.Nullable(n.expr)
	default:
		result = s.empty
	}
	n.nullComputed = true
	n.nullValue = result
	return result
}

// IsNullable reports whether n accepts the empty string.
func (s *Store) IsNullable(n *Node) bool {
	return s.Nullable(n).tag == TagEpsilon
}

// NullMarkers returns the Marker nodes embedded in n's nullable subtrees:
// the events that must fire when n is consumed to exactly ε. Memoized
// alongside Nullable.
//
// Grounded on original_source/regex.py's per-class null_markers()
// overrides (Marker returns {self}; the boolean operators propagate
// through whichever branch is actually nullable; Not does not propagate,
// matching the base class default).
func (s *Store) NullMarkers(n *Node) []*Node {
	if n.markComputed {
		return n.markValue
	}
	var result []*Node
	switch n.tag {
	case TagMarker:
		result = []*Node{n}
	case TagStar, TagPlus, TagOpt, TagExpr:
		result = s.NullMarkers(n.expr)
	case TagConcat, TagAnd:
		if s.IsNullable(n.left) && s.IsNullable(n.right) {
			result = unionNodes(s.NullMarkers(n.left), s.NullMarkers(n.right))
		}
	case TagOr:
		if s.IsNullable(n.left) {
			result = unionNodes(result, s.NullMarkers(n.left))
		}
		if s.IsNullable(n.right) {
			result = unionNodes(result, s.NullMarkers(n.right))
		}
	case TagXor:
		ln, rn := s.IsNullable(n.left), s.IsNullable(n.right)
		if ln && !rn {
			result = s.NullMarkers(n.left)
		} else if rn && !ln {
			result = s.NullMarkers(n.right)
		}
	case TagDiff:
		if s.IsNullable(n.left) && !s.IsNullable(n.right) {
			result = s.NullMarkers(n.left)
		}
	}
	n.markComputed = true
	n.markValue = result
	return result
}

func unionNodes(a, b []*Node) []*Node {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]*Node, len(a), len(a)+len(b))
	copy(out, a)
	seen := make(map[*Node]bool, len(a))
	for _, n := range a {
		seen[n] = true
	}
	for _, n := range b {
		if !seen[n] {
			out = append(out, n)
			seen[n] = true
		}
	}
	return out
}

// EventsFromMarkers flattens and deduplicates the capture events carried by
// a set of Marker nodes, as collected by Derive's states accumulator.
func EventsFromMarkers(markers []*Node) []Event {
	if len(markers) == 0 {
		return nil
	}
	seen := make(map[Event]bool)
	var out []Event
	for _, m := range markers {
		for _, e := range m.events {
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

// Derive computes ∂_c(n) under the given polarity. The derivative itself
// does not depend on negate; the polarity (flipped inside a Not and on the
// right side of a Diff) only decides which Sym/Dot leaves are recorded: a
// Sym is recorded when its membership test for c differs from negate, a Dot
// only when negate is false. The second return value is the set of
// Sym/Dot/Marker nodes that
// contributed to this step — the raw material the DFA builder reduces to a
// capture-event set via EventsFromMarkers.
//
// Grounded on original_source/regex.py's per-class derivative() methods,
// including the RegexConcat optimization for a marker-headed left operand:
// deriving through a leading Marker never touches its own derivative
// (always ∅) and instead folds the marker itself into the states
// contributed by the right operand's derivative.
func (s *Store) Derive(n *Node, c byte, negate bool) (*Node, []*Node) {
	switch n.tag {
	case TagEmpty, TagEpsilon:
		return s.empty, nil
	case TagSym:
		match := n.mask.Test(c)
		var states []*Node
		if match != negate {
			states = []*Node{n}
		}
		if match {
			return s.epsilon, states
		}
		return s.empty, states
	case TagDot:
		var states []*Node
		if !negate {
			states = []*Node{n}
		}
		return s.epsilon, states
	case TagConcat:
		return s.deriveConcat(n, c, negate)
	case TagOr:
		lr, ls := s.Derive(n.left, c, negate)
		rr, rs := s.Derive(n.right, c, negate)
		return s.Or(lr, rr), unionNodes(ls, rs)
	case TagAnd:
		lr, ls := s.Derive(n.left, c, negate)
		rr, rs := s.Derive(n.right, c, negate)
		return s.And(lr, rr), unionNodes(ls, rs)
	case TagXor:
		lr, ls := s.Derive(n.left, c, negate)
		rr, rs := s.Derive(n.right, c, negate)
		return s.Xor(lr, rr), unionNodes(ls, rs)
	case TagDiff:
		lr, ls := s.Derive(n.left, c, negate)
		rr, rs := s.Derive(n.right, c, !negate)
		return s.Diff(lr, rr), unionNodes(ls, rs)
	case TagNot:
		r, st := s.Derive(n.expr, c, !negate)
		return s.Not(r), st
	case TagStar:
		r, st := s.Derive(n.expr, c, negate)
		return s.Concat(r, n), st
	case TagPlus:
		r, st := s.Derive(n.expr, c, negate)
		return s.Concat(r, s.Star(n.expr)), st
	case TagOpt:
		return s.Derive(n.expr, c, negate)
	case TagExpr:
		r, st := s.Derive(n.expr, c, negate)
		return s.Expr(r, n.gid), st
	case TagMarker:
		return s.empty, nil
	default:
		return s.empty, nil
	}
}

func (s *Store) deriveConcat(n *Node, c byte, negate bool) (*Node, []*Node) {
	left, right := n.left, n.right
	if left.tag == TagMarker {
		result, rstates := s.Derive(right, c, negate)
		if result.tag == TagEmpty {
			return s.empty, nil
		}
		states := make([]*Node, 0, len(rstates)+1)
		states = append(states, left)
		states = append(states, rstates...)
		return result, states
	}

	lderiv, lstates := s.Derive(left, c, negate)
	leftTerm := s.Concat(lderiv, right)
	var states []*Node
	if leftTerm.tag != TagEmpty {
		states = append(states, lstates...)
	}

	rightTerm := s.empty
	if s.IsNullable(left) {
		rderiv, rstates := s.Derive(right, c, negate)
		rightTerm = s.Concat(s.Nullable(left), rderiv)
		if rightTerm.tag != TagEmpty {
			states = unionNodes(states, rstates)
			states = unionNodes(states, s.NullMarkers(left))
		}
	}

	return s.Or(leftTerm, rightTerm), states
}
