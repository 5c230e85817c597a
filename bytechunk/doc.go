/*
Package bytechunk provides the fixed-width byte-group primitive behind the
runeindex scan engines.

A chunk is a group of Size byte lanes that is operated on as a single
value: broadcast a byte to all lanes, mask lanes, test lanes for equality,
add lane-wise, and reduce all lanes to one integer. The scan engines in
package runeindex are written once against the Chunk interface and work
with any implementation that honors the lane semantics.

Two implementations ship: Scalar, a plain lane-by-lane loop, and Word,
which carries the lanes in two uint64 words and performs all lane math
with SWAR-style integer arithmetic. Both must be observably identical;
Scalar is the reference the tests hold Word against.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package bytechunk

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
