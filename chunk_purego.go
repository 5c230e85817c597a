//go:build purego

package runeindex

import "github.com/npillmayer/runeindex/bytechunk"

// activeChunk selects the chunk implementation the public operations
// scan with. The purego build falls back to the portable lane-by-lane
// reference.
type activeChunk = bytechunk.Scalar
