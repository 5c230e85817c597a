package bytechunk

import (
	"encoding/binary"
	"math/rand"
	"testing"
)

// wordLanes materializes a Word as its lane values.
func wordLanes(w Word) (r [Size]byte) {
	binary.LittleEndian.PutUint64(r[:8], w.lo)
	binary.LittleEndian.PutUint64(r[8:], w.hi)
	return r
}

func TestSplat(t *testing.T) {
	for _, b := range []byte{0x00, 0x01, 0x7f, 0x80, 0xC0, 0xFF} {
		s := Scalar{}.Splat(b)
		w := wordLanes(Word{}.Splat(b))
		for i := 0; i < Size; i++ {
			if s[i] != b || w[i] != b {
				t.Fatalf("splat(%#x) lane %d: scalar=%#x word=%#x", b, i, s[i], w[i])
			}
		}
	}
}

func TestLoadLanes(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	p := make([]byte, Size)
	for trial := 0; trial < 100; trial++ {
		r.Read(p)
		s := Scalar{}.Load(p)
		w := wordLanes(Word{}.Load(p))
		for i := 0; i < Size; i++ {
			if s[i] != p[i] || w[i] != p[i] {
				t.Fatalf("load lane %d: scalar=%#x word=%#x want %#x", i, s[i], w[i], p[i])
			}
		}
	}
}

func TestCmpEqByteAgainstScalar(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	p := make([]byte, Size)
	for trial := 0; trial < 1000; trial++ {
		r.Read(p)
		b := byte(r.Intn(256))
		s := Scalar{}.Load(p).CmpEqByte(b)
		w := wordLanes(Word{}.Load(p).CmpEqByte(b))
		if s != Scalar(w) {
			t.Fatalf("cmp-eq mismatch for % x target %#x: scalar=%v word=%v", p, b, s, w)
		}
	}
}

// Lanes neighboring a match must stay unaffected; SWAR borrow and carry
// bugs show up exactly here.
func TestCmpEqByteNeighborIsolation(t *testing.T) {
	patterns := [][2]byte{{0x80, 0x00}, {0x80, 0x81}, {0x00, 0x80}, {0xFF, 0x80}}
	for _, pat := range patterns {
		var p [Size]byte
		for i := range p {
			p[i] = pat[i%2]
		}
		s := Scalar{}.Load(p[:]).CmpEqByte(0x80)
		w := wordLanes(Word{}.Load(p[:]).CmpEqByte(0x80))
		if s != Scalar(w) {
			t.Fatalf("neighbor isolation broken for % x: scalar=%v word=%v", p, s, w)
		}
		for i := range p {
			want := byte(0)
			if p[i] == 0x80 {
				want = 1
			}
			if s[i] != want {
				t.Fatalf("scalar reference wrong at lane %d for % x", i, p)
			}
		}
	}
}

func TestAddWrapsPerLane(t *testing.T) {
	if got := (Scalar{}).Splat(0xFF).Add(Scalar{}.Splat(0x01)); got != (Scalar{}) {
		t.Fatalf("scalar add did not wrap: %v", got)
	}
	if got := (Word{}).Splat(0xFF).Add(Word{}.Splat(0x01)); got != (Word{}) {
		t.Fatalf("word add did not wrap: %+v", got)
	}
}

func TestAddAgainstScalar(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	p := make([]byte, Size)
	q := make([]byte, Size)
	for trial := 0; trial < 1000; trial++ {
		r.Read(p)
		r.Read(q)
		s := Scalar{}.Load(p).Add(Scalar{}.Load(q))
		w := wordLanes(Word{}.Load(p).Add(Word{}.Load(q)))
		if s != Scalar(w) {
			t.Fatalf("add mismatch for % x + % x: scalar=%v word=%v", p, q, s, w)
		}
	}
}

func TestSumBytesSaturatedLanes(t *testing.T) {
	want := Size * 255
	if got := (Scalar{}).Splat(0xFF).SumBytes(); got != want {
		t.Fatalf("scalar SumBytes = %d, want %d", got, want)
	}
	if got := (Word{}).Splat(0xFF).SumBytes(); got != want {
		t.Fatalf("word SumBytes = %d, want %d", got, want)
	}
}

// A full accumulation round of all-match compare results drives every
// lane to exactly MaxAcc without wrapping. One more addition would wrap,
// which is why the scan engines cap their rounds there.
func TestAccumulationRoundBound(t *testing.T) {
	p := make([]byte, Size)
	for i := range p {
		p[i] = 0x80
	}
	sm := Scalar{}.Load(p)
	wm := Word{}.Load(p)
	var sacc Scalar
	var wacc Word
	for i := 0; i < MaxAcc; i++ {
		sacc = sacc.Add(sm.CmpEqByte(0x80))
		wacc = wacc.Add(wm.CmpEqByte(0x80))
	}
	if got := sacc.SumBytes(); got != Size*MaxAcc {
		t.Fatalf("scalar round sum = %d, want %d", got, Size*MaxAcc)
	}
	if got := wacc.SumBytes(); got != Size*MaxAcc {
		t.Fatalf("word round sum = %d, want %d", got, Size*MaxAcc)
	}
}

// The exact pipeline the scan engines run: mask to the UTF-8 class bits,
// compare against the continuation pattern, reduce.
func TestClassifyPipelineAgrees(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	p := make([]byte, Size)
	for trial := 0; trial < 1000; trial++ {
		r.Read(p)
		s := Scalar{}.Load(p).BitAnd(Scalar{}.Splat(0xC0)).CmpEqByte(0x80)
		w := Word{}.Load(p).BitAnd(Word{}.Splat(0xC0)).CmpEqByte(0x80)
		if s != Scalar(wordLanes(w)) || s.SumBytes() != w.SumBytes() {
			t.Fatalf("pipeline mismatch for % x: scalar=%v word=%v", p, s, wordLanes(w))
		}
	}
}
