package term

// CharSet is an unordered, deduplicated collection of Masks that partitions
// Σ: every byte belongs to at most one element of a well-formed CharSet, and
// bytes in the same element are guaranteed to take the same transition out
// of any state whose charset this is. It is the per-node "first-byte
// partition hint" described in the data model: refining on it keeps the
// number of distinct DFA transitions small without ever testing more than
// 256 concrete byte values.
//
// Grounded on original_source/regex.py's CharSet: a Python set of int
// bitmasks with the same pairwise-AND refinement algebra, ported here to a
// deduplicated Mask slice since Go has no native set-of-array type.
type CharSet struct {
	masks []Mask
}

// NewCharSet builds a CharSet from the given masks, dropping empty masks and
// duplicates.
func NewCharSet(masks ...Mask) CharSet {
	var cs CharSet
	for _, m := range masks {
		cs.add(m)
	}
	return cs
}

func (cs *CharSet) add(m Mask) {
	if m.IsZero() {
		return
	}
	for _, existing := range cs.masks {
		if existing.Equal(m) {
			return
		}
	}
	cs.masks = append(cs.masks, m)
}

// And returns the pairwise intersection of cs and other: every non-empty
// m1 ∧ m2 for m1 ∈ cs, m2 ∈ other. This is the refinement step that keeps a
// compound term's charset a common partition of its children's charsets.
func (cs CharSet) And(other CharSet) CharSet {
	var out CharSet
	for _, a := range cs.masks {
		for _, b := range other.masks {
			out.add(a.And(b))
		}
	}
	return out
}

// Masks returns the elements of cs.
func (cs CharSet) Masks() []Mask {
	return cs.masks
}

// MergeIntervals merges a list of (possibly overlapping, possibly
// unsorted) inclusive [lo, hi] intervals into the minimal sorted list of
// disjoint intervals covering the same points. When mergeAdjacent is true,
// intervals touching end-to-end (hi+1 == next lo) are merged as well.
//
// Grounded on original_source/regex.py's module-level merge_intervals.
// Nothing in this package calls it; its caller is the CLI, which merges
// search spans before passing them to package highlight.
func MergeIntervals(intervals [][2]int, mergeAdjacent bool) [][2]int {
	if len(intervals) == 0 {
		return nil
	}
	sorted := append([][2]int(nil), intervals...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j][0] < sorted[j-1][0]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	out := [][2]int{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		gap := iv[0] - last[1]
		if gap <= 0 || (mergeAdjacent && gap == 1) {
			if iv[1] > last[1] {
				last[1] = iv[1]
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}
