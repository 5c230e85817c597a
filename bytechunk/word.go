package bytechunk

import "encoding/binary"

// Lane masks for eight 8-bit lanes per word.
const (
	ones  uint64 = 0x0101010101010101
	lows  uint64 = 0x7f7f7f7f7f7f7f7f
	highs uint64 = 0x8080808080808080
)

// Word is the SWAR chunk implementation: sixteen lanes carried in two
// uint64 words of eight lanes each, in little-endian lane order.
//
// All lane math is plain integer arithmetic, so Word is portable as well;
// it is faster than Scalar only because each operation touches eight
// lanes at once.
type Word struct {
	lo, hi uint64
}

var _ Chunk[Word] = Word{}

// Load reads Size bytes from p.
func (Word) Load(p []byte) Word {
	return Word{
		lo: binary.LittleEndian.Uint64(p),
		hi: binary.LittleEndian.Uint64(p[8:]),
	}
}

// Splat sets every lane to b.
func (Word) Splat(b byte) Word {
	v := uint64(b) * ones
	return Word{lo: v, hi: v}
}

// BitAnd combines lanes with bitwise AND.
func (c Word) BitAnd(o Word) Word {
	return Word{lo: c.lo & o.lo, hi: c.hi & o.hi}
}

// CmpEqByte marks every lane equal to b with 1.
func (c Word) CmpEqByte(b byte) Word {
	v := uint64(b) * ones
	return Word{lo: laneEq(c.lo, v), hi: laneEq(c.hi, v)}
}

// Add sums lanes pairwise, wrapping per lane.
func (c Word) Add(o Word) Word {
	return Word{lo: laneAdd(c.lo, o.lo), hi: laneAdd(c.hi, o.hi)}
}

// SumBytes reduces all lanes to one total.
func (c Word) SumBytes() int {
	return wordSum(c.lo) + wordSum(c.hi)
}

// laneEq yields 1 in every lane of x that equals the lane of v.
//
// After XOR, a lane has to be tested for zero without carries leaking
// across lane borders. The sum (d&lows)+lows sets a lane's high bit iff
// the lane's low seven bits are non-zero, and cannot carry out of the
// lane; OR-ing d itself covers the high bit. Inverting leaves 0x80
// exactly in the zero lanes. The popular (d-ones)&^d&highs shortcut is
// not used here: its borrows cross lane borders and misreport lanes
// above a matching one.
func laneEq(x, v uint64) uint64 {
	d := x ^ v
	return ^((d&lows + lows) | d | lows) >> 7
}

// laneAdd adds lanes without letting carries cross lane borders.
//
// The high bits are stripped before the add, so no lane can carry into
// its neighbor; the true high bits are then restored with XOR, which
// also discards any per-lane overflow (wrapping semantics).
func laneAdd(a, b uint64) uint64 {
	return (a&^highs + b&^highs) ^ (a^b)&highs
}

// wordSum adds the eight lanes of v, widening to 16- and 32-bit lanes so
// that lane values up to 255 stay exact.
func wordSum(v uint64) int {
	v = v&0x00ff00ff00ff00ff + v>>8&0x00ff00ff00ff00ff
	v = v&0x0000ffff0000ffff + v>>16&0x0000ffff0000ffff
	return int(v&0xffffffff + v>>32)
}
