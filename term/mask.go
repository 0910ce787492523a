// Package term implements the Brzozowski-derivative term algebra: the
// interned, immutable expression tree that every pattern compiles to, its
// smart constructors, nullability, and the derivative operation.
package term

// Mask is a 256-bit set over the byte alphabet Σ = {0..255}, laid out as
// four 64-bit words (bit b of byte b lives in word b/64).
type Mask [4]uint64

// FullMask returns the mask containing every byte value.
func FullMask() Mask {
	return Mask{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
}

// MaskBit returns the mask containing exactly the byte b.
func MaskBit(b byte) Mask {
	var m Mask
	m[b/64] |= 1 << (b % 64)
	return m
}

// MaskRange returns the mask containing every byte in [lo, hi] inclusive.
func MaskRange(lo, hi byte) Mask {
	var m Mask
	for b := int(lo); b <= int(hi); b++ {
		m[b/64] |= 1 << (uint(b) % 64)
	}
	return m
}

// Test reports whether b is a member of m.
func (m Mask) Test(b byte) bool {
	return m[b/64]&(1<<(b%64)) != 0
}

// And returns the intersection of m and o.
func (m Mask) And(o Mask) Mask {
	return Mask{m[0] & o[0], m[1] & o[1], m[2] & o[2], m[3] & o[3]}
}

// Or returns the union of m and o.
func (m Mask) Or(o Mask) Mask {
	return Mask{m[0] | o[0], m[1] | o[1], m[2] | o[2], m[3] | o[3]}
}

// Not returns the complement of m within Σ.
func (m Mask) Not() Mask {
	return Mask{^m[0], ^m[1], ^m[2], ^m[3]}
}

// IsZero reports whether m contains no bytes.
func (m Mask) IsZero() bool {
	return m[0] == 0 && m[1] == 0 && m[2] == 0 && m[3] == 0
}

// Equal reports whether m and o contain the same bytes.
func (m Mask) Equal(o Mask) bool {
	return m == o
}

// Representative returns the lowest byte value in m, and true if m is
// non-empty.
func (m Mask) Representative() (byte, bool) {
	for w := 0; w < 4; w++ {
		if m[w] == 0 {
			continue
		}
		for bit := 0; bit < 64; bit++ {
			if m[w]&(1<<uint(bit)) != 0 {
				return byte(w*64 + bit), true
			}
		}
	}
	return 0, false
}

// Members returns every byte value contained in m, in ascending order.
func (m Mask) Members() []byte {
	var out []byte
	for w := 0; w < 4; w++ {
		if m[w] == 0 {
			continue
		}
		for bit := 0; bit < 64; bit++ {
			if m[w]&(1<<uint(bit)) != 0 {
				out = append(out, byte(w*64+bit))
			}
		}
	}
	return out
}

// Intervals returns the maximal contiguous byte ranges covered by m, each
// as an inclusive [lo, hi] pair, in ascending order.
func (m Mask) Intervals() [][2]int {
	var out [][2]int
	inRun := false
	start := 0
	for b := 0; b <= 255; b++ {
		set := m.Test(byte(b))
		if set && !inRun {
			start, inRun = b, true
		} else if !set && inRun {
			out = append(out, [2]int{start, b - 1})
			inRun = false
		}
	}
	if inRun {
		out = append(out, [2]int{start, 255})
	}
	return out
}
