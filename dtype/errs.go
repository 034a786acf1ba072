package dtype

import "errors"

var (
	// ErrInvalidRaw reports a value that is not a well-formed raw capture:
	// either the text is not exactly one complete document, or a sentinel
	// object has the wrong or missing marker key.
	ErrInvalidRaw = errors.New("invalid raw value")
)
