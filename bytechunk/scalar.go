package bytechunk

// Scalar is the portable lane-by-lane chunk implementation.
//
// It is deliberately free of tricks: a plain loop over the lanes, serving
// as the reference that accelerated implementations are tested against.
type Scalar [Size]byte

var _ Chunk[Scalar] = Scalar{}

// Load reads Size bytes from p.
func (Scalar) Load(p []byte) Scalar {
	var c Scalar
	copy(c[:], p[:Size])
	return c
}

// Splat sets every lane to b.
func (Scalar) Splat(b byte) Scalar {
	var c Scalar
	for i := range c {
		c[i] = b
	}
	return c
}

// BitAnd combines lanes with bitwise AND.
func (c Scalar) BitAnd(o Scalar) Scalar {
	for i := range c {
		c[i] &= o[i]
	}
	return c
}

// CmpEqByte marks every lane equal to b with 1.
func (c Scalar) CmpEqByte(b byte) Scalar {
	var r Scalar
	for i := range c {
		if c[i] == b {
			r[i] = 1
		}
	}
	return r
}

// Add sums lanes pairwise, wrapping per lane.
func (c Scalar) Add(o Scalar) Scalar {
	for i := range c {
		c[i] += o[i]
	}
	return c
}

// SumBytes reduces all lanes to one total.
func (c Scalar) SumBytes() int {
	n := 0
	for _, b := range c {
		n += int(b)
	}
	return n
}
