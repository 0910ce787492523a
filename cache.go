package dregex

import (
	"sync"

	"github.com/coregx/dregex/term"
)

// programCache memoizes CompileTerm by term root, so recompiling an
// already-compiled root returns the existing CompiledPattern unchanged
// rather than rebuilding its DFA.
//
// Grounded on dfa/lazy/cache.go's shape (a mutex-guarded map sitting in
// front of expensive construction), adapted from lazy DFA state caching to
// whole-pattern memoization keyed by term root instead of by transition.
type programCache struct {
	mu     sync.RWMutex
	byRoot map[*term.Node]*CompiledPattern
}

var globalCache = newProgramCache()

func newProgramCache() *programCache {
	return &programCache{byRoot: make(map[*term.Node]*CompiledPattern)}
}

func (c *programCache) get(root *term.Node) (*CompiledPattern, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cp, ok := c.byRoot[root]
	return cp, ok
}

func (c *programCache) put(root *term.Node, cp *CompiledPattern) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byRoot[root] = cp
}
