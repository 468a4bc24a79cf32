package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a tag array.
	ErrTruncated = errors.New("format: truncated buffer")
)
