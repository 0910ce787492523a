package dfa

import "github.com/coregx/dregex/term"

// GroupMap records, for every capture group id (0 is always the whole
// match), the list of [start,end) byte-offset spans found — a list rather
// than a single span so Search's all-matches mode can accumulate one entry
// per group per match.
type GroupMap map[int][][2]int

// captureState tracks which groups are currently open and which have been
// finalized while a single match attempt walks the DFA.
//
// Grounded on original_source/dfa.py's GroupInfo/Group classes, adapted
// from their group-tuple bookkeeping to OPEN/CLOSE marker-event
// bookkeeping.
type captureState struct {
	active map[int]int
	final  map[int][2]int
}

func newCaptureState() *captureState {
	return &captureState{active: make(map[int]int), final: make(map[int][2]int)}
}

// apply processes CLOSE events before OPEN events: OPEN overwrites
// active[gid] unconditionally; CLOSE with no matching active entry is
// silently dropped (a decision recorded in DESIGN.md).
func (c *captureState) apply(events []term.Event, index int) {
	for _, e := range events {
		if e.Kind == term.EventClose {
			if start, ok := c.active[e.GID]; ok {
				c.final[e.GID] = [2]int{start, index}
				delete(c.active, e.GID)
			}
		}
	}
	for _, e := range events {
		if e.Kind == term.EventOpen {
			c.active[e.GID] = index
		}
	}
}

func (c *captureState) closeAll(end int) {
	for gid, start := range c.active {
		c.final[gid] = [2]int{start, end}
	}
	c.active = make(map[int]int)
}

func (c *captureState) ensureGroup0(start, end int) {
	if _, ok := c.final[0]; !ok {
		c.final[0] = [2]int{start, end}
	}
}

func (c *captureState) result() GroupMap {
	gm := make(GroupMap, len(c.final))
	for gid, span := range c.final {
		gm[gid] = append(gm[gid], span)
	}
	return gm
}
