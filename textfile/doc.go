/*
Package textfile loads UTF-8 text files, either whole or as a stream of
fragments.

The streaming loader reads a file in the background and broadcasts loaded
fragments to all subscribers, so several consumers can scan the same file
concurrently while it is still being read. Rune counting is per-byte
classification, which makes counts independent of where a file is cut
into fragments; a consumer may therefore sum counts over the fragment
stream and arrive at the exact total for the whole file.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'runeindex'
func tracer() tracing.Trace {
	return tracing.Select("runeindex")
}
