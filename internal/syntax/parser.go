// Package syntax hand-rolls a recursive-descent parser for the pattern
// language directly over term.Store's smart constructors: the parser never
// builds its own AST, it builds the term graph in place.
//
// Grounded on original_source/parser.py's grammar (precedence climbing over
// |,^,- ; & ; ~ ; concatenation ; postfix * + ? {} ; atoms) and
// original_source/lexer.py's escape/class/repeat-brace scanning rules.
package syntax

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/coregx/dregex/term"
)

type parser struct {
	src     string
	pos     int
	store   *term.Store
	nextGID int
}

// Parse compiles pattern into a term rooted at the returned Node, interning
// through store, and reports the highest capture-group id assigned (0 if
// the pattern has no groups). Capture groups are numbered in the order
// their opening parenthesis appears in the source, starting at 1.
func Parse(store *term.Store, pattern string) (*term.Node, int, error) {
	p := &parser{src: pattern, store: store}
	root, err := p.parseOr()
	if err != nil {
		return nil, 0, err
	}
	if !p.eof() {
		return nil, 0, p.errf("unexpected %q", p.src[p.pos])
	}
	return root, p.nextGID, nil
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peekByte() (byte, bool) {
	if p.eof() {
		return 0, false
	}
	return p.src[p.pos], true
}

// skipSpace advances past ' ' and '\t', mirroring original_source/lexer.py's
// t_ignore = ' \t': whitespace between tokens is discarded before the
// grammar ever sees it, it never becomes part of a concatenation.
func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) errf(format string, args ...interface{}) error {
	return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// parseOr handles the lowest-precedence tier: |, ^ and - share one tier and
// associate left to right.
func (p *parser) parseOr() (*term.Node, error) {
	p.skipSpace()
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		b, ok := p.peekByte()
		if !ok {
			return left, nil
		}
		switch b {
		case '|':
			p.pos++
			right, err := p.parseAnd()
			if err != nil {
				return nil, err
			}
			left = p.store.Or(left, right)
		case '^':
			p.pos++
			right, err := p.parseAnd()
			if err != nil {
				return nil, err
			}
			left = p.store.Xor(left, right)
		case '-':
			p.pos++
			right, err := p.parseAnd()
			if err != nil {
				return nil, err
			}
			left = p.store.Diff(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseAnd() (*term.Node, error) {
	p.skipSpace()
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		b, ok := p.peekByte()
		if !ok || b != '&' {
			return left, nil
		}
		p.pos++
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = p.store.And(left, right)
	}
}

// parseNot handles prefix ~, which binds tighter than & but looser than
// concatenation: its operand is a whole concatenation-level subexpression.
func (p *parser) parseNot() (*term.Node, error) {
	p.skipSpace()
	b, ok := p.peekByte()
	if ok && b == '~' {
		p.pos++
		p.skipSpace()
		operandStart := p.pos
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		if p.pos == operandStart {
			return nil, p.errf("missing operand after '~'")
		}
		return p.store.Not(inner), nil
	}
	return p.parseConcat()
}

func (p *parser) parseConcat() (*term.Node, error) {
	var nodes []*term.Node
	for {
		p.skipSpace()
		b, ok := p.peekByte()
		if !ok || isOperatorByte(b) {
			break
		}
		n, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if len(nodes) == 0 {
		return p.store.Epsilon(), nil
	}
	result := nodes[0]
	for _, n := range nodes[1:] {
		result = p.store.Concat(result, n)
	}
	return result, nil
}

// isOperatorByte reports whether b ends a concatenation run: the binary
// operators, ')', and '~'. '~' only derives from expression (parseNot), never
// from a concat/primary position, so a '~' reached mid-concatenation must
// stop the run here and surface as a syntax error rather than be swallowed
// as a literal tilde byte.
func isOperatorByte(b byte) bool {
	switch b {
	case '|', '^', '-', '&', ')', '~':
		return true
	}
	return false
}

func (p *parser) parsePostfix() (*term.Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		b, ok := p.peekByte()
		if !ok {
			return atom, nil
		}
		switch b {
		case '*':
			p.pos++
			atom = p.store.Star(atom)
		case '+':
			p.pos++
			atom = p.store.Plus(atom)
		case '?':
			p.pos++
			atom = p.store.Opt(atom)
		case '{':
			spec, consumed, err := p.tryParseRepeat()
			if err != nil {
				return nil, err
			}
			if !consumed {
				return atom, nil
			}
			atom = p.applyRepeat(atom, spec)
		default:
			return atom, nil
		}
	}
}

type repeatSpec struct {
	min    int
	max    int
	hasMax bool
}

// tryParseRepeat recognizes {n}, {m,n}, {m,} and {,n} starting at the
// current '{'. A '{' that isn't shaped like one of these forms is left
// untouched (consumed=false) so parseAtom can fall back to treating it as
// a literal byte, mirroring the original lexer's exclusive "repeat" state
// that only activates once digits are seen.
func (p *parser) tryParseRepeat() (repeatSpec, bool, error) {
	i := p.pos + 1
	minStart := i
	for i < len(p.src) && isDigit(p.src[i]) {
		i++
	}
	minStr := p.src[minStart:i]

	hasComma := false
	maxStr := ""
	if i < len(p.src) && p.src[i] == ',' {
		hasComma = true
		i++
		maxStart := i
		for i < len(p.src) && isDigit(p.src[i]) {
			i++
		}
		maxStr = p.src[maxStart:i]
	}

	if i >= len(p.src) || p.src[i] != '}' {
		return repeatSpec{}, false, nil
	}
	if minStr == "" && (!hasComma || maxStr == "") {
		return repeatSpec{}, false, nil
	}

	var spec repeatSpec
	if minStr != "" {
		v, err := strconv.Atoi(minStr)
		if err != nil {
			return repeatSpec{}, false, nil
		}
		spec.min = v
	}
	if hasComma {
		if maxStr != "" {
			v, err := strconv.Atoi(maxStr)
			if err != nil {
				return repeatSpec{}, false, nil
			}
			spec.max = v
			spec.hasMax = true
		}
	} else {
		spec.max = spec.min
		spec.hasMax = true
	}
	if spec.hasMax && spec.max < spec.min {
		p.pos = i + 1
		return repeatSpec{}, false, p.errf("bad repeat range: max less than min")
	}

	p.pos = i + 1
	return spec, true, nil
}

// applyRepeat desugars a counted repetition into concatenation/optionality:
// atom{m} is m mandatory copies; atom{m,} is atom{m} followed by atom*;
// atom{m,n} is m mandatory copies followed by n-m independently-optional
// copies.
func (p *parser) applyRepeat(atom *term.Node, spec repeatSpec) *term.Node {
	result := p.store.Epsilon()
	for i := 0; i < spec.min; i++ {
		result = p.store.Concat(result, atom)
	}
	if !spec.hasMax {
		return p.store.Concat(result, p.store.Star(atom))
	}
	for i := spec.min; i < spec.max; i++ {
		result = p.store.Concat(result, p.store.Opt(atom))
	}
	return result
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (p *parser) parseAtom() (*term.Node, error) {
	if p.eof() {
		return nil, p.errf("unexpected end of pattern")
	}
	b := p.src[p.pos]
	switch b {
	case '.':
		p.pos++
		return p.store.Dot(), nil
	case '(':
		return p.parseGroup()
	case '[':
		return p.parseClass()
	case '\\':
		return p.parseEscape()
	case ')', '*', '+', '?':
		return nil, p.errf("unexpected %q", b)
	default:
		if r, size := utf8.DecodeRuneInString(p.src[p.pos:]); r == 'ε' {
			p.pos += size
			return p.store.Epsilon(), nil
		}
		p.pos++
		return p.store.Sym(term.MaskBit(b)), nil
	}
}

func (p *parser) parseGroup() (*term.Node, error) {
	p.pos++ // consume '('
	p.nextGID++
	gid := p.nextGID

	body, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	b, ok := p.peekByte()
	if !ok || b != ')' {
		return nil, p.errf("expected ')'")
	}
	p.pos++

	open := p.store.Marker(term.Event{Kind: term.EventOpen, GID: gid})
	close := p.store.Marker(term.Event{Kind: term.EventClose, GID: gid})
	captured := p.store.Concat(p.store.Concat(open, body), close)
	return p.store.Expr(captured, gid), nil
}

func (p *parser) parseEscape() (*term.Node, error) {
	p.pos++ // consume '\'
	if p.eof() {
		return nil, p.errf("dangling escape")
	}
	b := p.src[p.pos]
	p.pos++
	switch b {
	case 'd':
		return p.store.Sym(term.MaskRange('0', '9')), nil
	case 'a':
		return p.store.Sym(term.MaskBit('\a')), nil
	case 'b':
		return p.store.Sym(term.MaskBit('\b')), nil
	case 't':
		return p.store.Sym(term.MaskBit('\t')), nil
	case 'n':
		return p.store.Sym(term.MaskBit('\n')), nil
	case 'v':
		return p.store.Sym(term.MaskBit('\v')), nil
	case 'f':
		return p.store.Sym(term.MaskBit('\f')), nil
	case 'r':
		return p.store.Sym(term.MaskBit('\r')), nil
	default:
		return p.store.Sym(term.MaskBit(b)), nil
	}
}

// parseClass parses [...] with optional leading ^ negation, a-z ranges, and
// the convention that ] is a literal if it's the first character of the
// class (or the first after a leading ^).
func (p *parser) parseClass() (*term.Node, error) {
	p.pos++ // consume '['
	negate := false
	if b, ok := p.peekByte(); ok && b == '^' {
		negate = true
		p.pos++
	}

	var mask term.Mask
	first := true
	for {
		b, ok := p.peekByte()
		if !ok {
			return nil, p.errf("unterminated character class")
		}
		if b == ']' && !first {
			p.pos++
			break
		}
		first = false

		lo, err := p.classAtomByte()
		if err != nil {
			return nil, err
		}
		if nb, ok := p.peekByte(); ok && nb == '-' && p.pos+1 < len(p.src) && p.src[p.pos+1] != ']' {
			p.pos++
			hi, err := p.classAtomByte()
			if err != nil {
				return nil, err
			}
			if hi < lo {
				return nil, p.errf("bad character range order")
			}
			mask = mask.Or(term.MaskRange(lo, hi))
		} else {
			mask = mask.Or(term.MaskBit(lo))
		}
	}

	if negate {
		mask = mask.Not()
	}
	return p.store.Sym(mask), nil
}

func (p *parser) classAtomByte() (byte, error) {
	if p.eof() {
		return 0, p.errf("unterminated character class")
	}
	b := p.src[p.pos]
	if b != '\\' {
		p.pos++
		return b, nil
	}
	p.pos++
	if p.eof() {
		return 0, p.errf("dangling escape in character class")
	}
	e := p.src[p.pos]
	p.pos++
	switch e {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	default:
		return e, nil
	}
}
