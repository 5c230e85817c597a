package textfile

import "errors"

var (
	// ErrNotRegularFile signals that the named file cannot be loaded as text.
	ErrNotRegularFile = errors.New("textfile: not a regular file")
	// ErrInvalidUTF8 signals non-UTF-8 file content.
	ErrInvalidUTF8 = errors.New("textfile: invalid UTF-8")
	// ErrFragmentTruncated signals a short read while streaming fragments.
	ErrFragmentTruncated = errors.New("textfile: fragment read truncated")
)
