package runeindex

import (
	"unsafe"

	"github.com/npillmayer/runeindex/bytechunk"
)

// UTF-8 byte classification: b&contMask == contPat identifies a
// continuation byte; every other byte starts a rune.
const (
	contMask = 0xC0
	contPat  = 0x80
)

// regions computes the alignment split of p: the length of the unaligned
// head and the number of whole chunks following it. The middle region
// starts at the first address that is a multiple of the chunk width; the
// tail length follows from the other two.
func regions(p []byte) (head, chunks int) {
	if len(p) == 0 {
		return 0, 0
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	head = (bytechunk.Size - int(addr&(bytechunk.Size-1))) & (bytechunk.Size - 1)
	if head > len(p) {
		head = len(p)
	}
	chunks = (len(p) - head) / bytechunk.Size
	return head, chunks
}

// countImpl counts rune-start bytes in p.
//
// The chunked path classifies continuation bytes lane-wise and adds the
// compare results into a chunk accumulator, at most MaxAcc chunks per
// round so that no lane can wrap before the horizontal sum.
func countImpl[T bytechunk.Chunk[T]](p []byte) int {
	if len(p) < bytechunk.Size {
		// Chunking has setup cost; short inputs go byte-by-byte.
		cont := 0
		for _, b := range p {
			if b&contMask == contPat {
				cont++
			}
		}
		return len(p) - cont
	}

	head, chunks := regions(p)
	cont := 0
	for _, b := range p[:head] {
		if b&contMask == contPat {
			cont++
		}
	}

	var z T
	mask := z.Splat(contMask)
	i := head
	for chunks > 0 {
		round := min(chunks, bytechunk.MaxAcc)
		var acc T
		for r := 0; r < round; r++ {
			acc = acc.Add(z.Load(p[i:]).BitAnd(mask).CmpEqByte(contPat))
			i += bytechunk.Size
		}
		cont += acc.SumBytes()
		chunks -= round
	}

	for _, b := range p[i:] {
		if b&contMask == contPat {
			cont++
		}
	}
	return len(p) - cont
}

// byteOffsetImpl seeks the byte offset of rune index target in p.
//
// Only the aligned middle can be derived from the alignment split up
// front: where chunk scanning stops, and with it the start of the
// byte-wise tail, depends on the rune counts accumulated along the way.
func byteOffsetImpl[T bytechunk.Chunk[T]](p []byte, target int) int {
	head, chunks := regions(p)

	byteCount := 0
	runeCount := 0
	for _, b := range p[:head] {
		if b&contMask != contPat {
			runeCount++
		}
		if runeCount > target {
			break
		}
		byteCount++
	}

	var z T
	mask := z.Splat(contMask)

	// Fast skip: consume rounds of chunks that are provably short of the
	// target. A round of n chunks advances the rune count by at most
	// n*Size, so sizing rounds from the remaining distance makes
	// overshooting impossible by construction.
	chunkIdx := 0
	maxRounds := 0
	if target > runeCount {
		maxRounds = (target - runeCount) / bytechunk.MaxAcc
	}
	for maxRounds > 0 && chunkIdx < chunks {
		round := min(min(bytechunk.MaxAcc, maxRounds), chunks-chunkIdx)
		maxRounds -= round
		var acc T
		for r := 0; r < round; r++ {
			acc = acc.Add(z.Load(p[byteCount:]).BitAnd(mask).CmpEqByte(contPat))
			byteCount += bytechunk.Size
		}
		runeCount += bytechunk.Size*round - acc.SumBytes()
		chunkIdx += round
	}

	// Near the target, check each chunk before committing to it: the
	// boundary we seek may lie inside.
	for chunkIdx < chunks {
		c := z.Load(p[head+chunkIdx*bytechunk.Size:])
		n := runeCount + bytechunk.Size - c.BitAnd(mask).CmpEqByte(contPat).SumBytes()
		if n >= target {
			break
		}
		runeCount = n
		byteCount += bytechunk.Size
		chunkIdx++
	}

	// Finish byte-by-byte from wherever chunk scanning stopped,
	// including an unconsumed chunk.
	for _, b := range p[byteCount:] {
		if b&contMask != contPat {
			runeCount++
		}
		if runeCount > target {
			break
		}
		byteCount++
	}
	return byteCount
}

// asBytes views the bytes of s without copying. The engines only read.
func asBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
