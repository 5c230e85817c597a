/*
Package runeindex translates between byte offsets and rune indexes in
UTF-8 encoded text, in linear time.

Rune Indexing

Text-editing data structures (ropes, cords, gap buffers) keep text as raw
bytes but expose rune-aware positions to their clients. Bridging the two
views needs a fast primitive for three questions: how many runes does a
byte sequence hold, at which byte does rune number k start, and to which
rune does byte offset i belong. This package answers all three:

	runeindex.Count(text)             // total rune count
	runeindex.ByteOffset(text, k)     // rune index -> byte offset
	runeindex.RuneIndex(text, i)      // byte offset -> rune index

A rune here is one Unicode scalar value. Counting relies on the UTF-8
encoding alone: a byte starts a rune exactly when its top two bits are
not 10. CountBytes exposes the count for raw byte slices and is therefore
well-defined even for malformed input; the two translation operations
assume valid UTF-8. Out-of-range positions are not errors, both
translations clamp to the nearest valid boundary.

The scan engines process text in 16-byte chunks (package bytechunk),
classifying continuation bytes lane-wise and accumulating counts in
bounded rounds that cannot overflow a byte lane. Builds with the 'purego'
tag replace the SWAR chunk math with the portable lane-by-lane reference
implementation; results are bit-identical.

All operations are pure and reentrant. They may be called concurrently on
overlapping inputs without synchronization.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package runeindex

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
