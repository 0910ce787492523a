package dfa

// FullMatch requires every byte of s to be consumed and the resulting
// state to be nullable. Returns nil if s is not accepted in full.
func FullMatch(p *Program, s []byte) GroupMap {
	state := p.root
	cs := newCaptureState()
	for i := 0; i < len(s); i++ {
		g := p.lookup(state).transitions[s[i]]
		if g.Next.IsEmpty() {
			return nil
		}
		cs.apply(g.Events, i)
		state = g.Next
	}
	info := p.lookup(state)
	if !info.nullable {
		return nil
	}
	end := len(s)
	cs.apply(info.prefixEvents, end)
	cs.closeAll(end)
	cs.ensureGroup0(0, end)
	return cs.result()
}

// Match finds the longest (greedy) or shortest (non-greedy) prefix of s,
// starting at offset 0, accepted by the pattern. Returns nil if no prefix
// (including the empty one) is accepted.
func Match(p *Program, s []byte, greedy bool) GroupMap {
	end, ok := runSpan(p, s, 0, greedy)
	if !ok {
		return nil
	}
	return computeCaptures(p, s, 0, end)
}

// runSpan walks the DFA from start without tracking captures, an
// allocation-free first pass that returns the last (greedy) or first
// (non-greedy) offset at which a nullable state was reached, and false if
// none ever was.
func runSpan(p *Program, s []byte, start int, greedy bool) (int, bool) {
	state := p.root
	end := -1
	found := false
	if p.lookup(state).nullable {
		end, found = start, true
		if !greedy {
			return end, true
		}
	}
	for i := start; i < len(s); i++ {
		g := p.lookup(state).transitions[s[i]]
		if g.Next.IsEmpty() {
			break
		}
		state = g.Next
		if p.lookup(state).nullable {
			end = i + 1
			found = true
			if !greedy {
				return end, true
			}
		}
	}
	return end, found
}

// computeCaptures replays [start,end) with capture tracking, kept as a
// second pass separate from runSpan so the first pass stays
// allocation-free.
func computeCaptures(p *Program, s []byte, start, end int) GroupMap {
	state := p.root
	cs := newCaptureState()
	for i := start; i < end; i++ {
		g := p.lookup(state).transitions[s[i]]
		cs.apply(g.Events, i)
		state = g.Next
	}
	info := p.lookup(state)
	cs.apply(info.prefixEvents, end)
	cs.closeAll(end)
	cs.ensureGroup0(start, end)
	return cs.result()
}

// Search scans s for the first match (or, with all=true, every
// non-overlapping match), skipping offsets the root state cannot even
// begin to consume.
//
// Grounded on original_source/dfa.py's search(): a per-offset retry loop.
// This port diverges from dfa.py in one respect: it retries every offset up to len(s) rather than giving up the whole search
// the first time an offset's walk runs off the end of the string without
// ever dying or matching. That early exit isn't named anywhere as an
// intended behavior, so the retry loop here is kept unconditional.
func Search(p *Program, s []byte, greedy, all bool) GroupMap {
	n := len(s)
	offset := 0
	result := GroupMap{}
	any := false

	for offset <= n {
		for offset < n && !p.lookup(p.root).nullable {
			g := p.lookup(p.root).transitions[s[offset]]
			if !g.Next.IsEmpty() {
				break
			}
			offset++
		}
		if offset > n {
			break
		}

		end, ok := runSpan(p, s, offset, greedy)
		if !ok {
			if offset >= n {
				break
			}
			offset++
			continue
		}

		mergeGroupMap(result, computeCaptures(p, s, offset, end))
		any = true
		if !all {
			return result
		}
		if end > offset {
			offset = end
		} else {
			offset++
		}
	}

	if !any {
		return nil
	}
	return result
}

func mergeGroupMap(dst, src GroupMap) {
	for gid, spans := range src {
		dst[gid] = append(dst[gid], spans...)
	}
}
