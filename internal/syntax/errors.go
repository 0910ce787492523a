package syntax

import "fmt"

// SyntaxError reports a lexical or grammatical problem found at a byte
// offset in a pattern string.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at byte %d: %s", e.Pos, e.Msg)
}
