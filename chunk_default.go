//go:build !purego

package runeindex

import "github.com/npillmayer/runeindex/bytechunk"

// activeChunk selects the chunk implementation the public operations
// scan with. Default builds use the SWAR word math.
type activeChunk = bytechunk.Word
