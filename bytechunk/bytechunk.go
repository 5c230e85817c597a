package bytechunk

import "unsafe"

// Size is the chunk width: the number of byte lanes per chunk.
const Size = 16

// MaxAcc bounds the number of chunk additions per accumulation round.
//
// A CmpEqByte result contributes at most 1 per lane, and a lane holds
// values up to 255. Adding more than MaxAcc compare results into one
// accumulator would wrap a lane and silently corrupt the count, so every
// scan loop must cap its rounds at MaxAcc chunks before reducing with
// SumBytes. For a different lane width the bound is (1<<laneBits)-1.
const MaxAcc = 255

// Chunk is a fixed-width group of Size byte lanes operated on as one unit.
//
// Every operation is defined lane-wise, independent of lane position.
// The zero value of an implementation is the all-zero chunk; it is the
// only accumulator start value the scan engines use.
//
// Implementations must be observably identical for all inputs. Scalar is
// the portable reference; Word is held to bit-identical behavior by the
// package tests.
type Chunk[T any] interface {
	// Load reads Size bytes from p into a fresh chunk.
	// p must hold at least Size bytes.
	Load(p []byte) T
	// Splat returns a chunk with every lane set to b.
	Splat(b byte) T
	// BitAnd returns the lane-wise bitwise AND with o.
	BitAnd(o T) T
	// CmpEqByte returns a chunk holding 1 in every lane that equals b
	// and 0 in every other lane.
	CmpEqByte(b byte) T
	// Add returns the lane-wise sum, wrapping per lane on overflow.
	// Callers keep sums exact by bounding rounds at MaxAcc.
	Add(o T) T
	// SumBytes reduces all lanes to a single integer total.
	// Exact for lane values up to 255.
	SumBytes() int
}

func init() {
	// Every shipped implementation must have exactly Size lanes.
	assert(unsafe.Sizeof(Scalar{}) == Size, "bytechunk: Scalar width must equal Size")
	assert(unsafe.Sizeof(Word{}) == Size, "bytechunk: Word width must equal Size")
}
