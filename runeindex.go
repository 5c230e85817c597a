package runeindex

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Count returns the number of runes (Unicode scalar values) in text.
//
// Runs in O(n) time.
func Count(text string) int {
	return countImpl[activeChunk](asBytes(text))
}

// CountBytes returns the number of UTF-8 rune-start bytes in p, i.e.
// bytes whose top two bits are not the continuation pattern 10.
//
// p need not be valid UTF-8; the result is well-defined for arbitrary
// bytes and equals Count for well-formed input.
//
// Runs in O(n) time.
func CountBytes(p []byte) int {
	return countImpl[activeChunk](p)
}

// ByteOffset returns the byte offset of the start of the rune with index
// runeIndex in text.
//
// A runeIndex at or past the end returns len(text), the one-past-the-end
// offset; a negative runeIndex returns 0. The result is always a
// rune-start boundary, never an offset inside a multi-byte encoding.
//
// Runs in O(n) time.
func ByteOffset(text string, runeIndex int) int {
	return byteOffsetImpl[activeChunk](asBytes(text), runeIndex)
}

// RuneIndex returns the index of the rune that byte offset b of text
// belongs to.
//
// Offsets inside a multi-byte encoding snap backward to the start of
// their rune. Any past-the-end offset returns the one-past-the-end rune
// index, a negative offset returns 0.
//
// Runs in O(n) time.
func RuneIndex(text string, b int) int {
	p := asBytes(text)
	// Snap b back to a rune boundary (or off the end of the text). The
	// lower bound guards malformed input whose first byte is a
	// continuation byte; valid UTF-8 never reaches it.
	i := b
	for i > 0 && i < len(p) && p[i]&contMask == contPat {
		i--
	}
	if i > len(p) {
		i = len(p)
	}
	if i < 0 {
		i = 0
	}
	return countImpl[activeChunk](p[:i])
}
