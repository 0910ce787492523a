package dregex

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the two ways Compile can fail.
var (
	// ErrInvalidPattern indicates the pattern string is not well-formed.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnsupportedPatternType indicates CompileTerm was given a nil term.
	// spec.md's "compile received neither a pattern string nor a regex term"
	// case otherwise can't occur in Go: Compile and CompileTerm take a
	// string and a *term.Node respectively, so the type system already
	// rules out anything else, leaving nil as the one term.Node value this
	// package cannot treat as a pattern root.
	ErrUnsupportedPatternType = errors.New("unsupported pattern type")
)

// CompileError wraps a compilation failure with the pattern that produced
// it and the underlying cause, which is always ErrInvalidPattern or
// ErrUnsupportedPatternType via Unwrap.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("dregex: compiling %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }
