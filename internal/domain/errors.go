package domain

import "errors"

var (
	// ErrMalformedReport means a transcript could not be turned into a report:
	// the framing was not recognized or the payload is not a JSON array.
	ErrMalformedReport = errors.New("malformed report")

	// ErrExternalTool means the verifier could not be run or produced no usable output.
	ErrExternalTool = errors.New("external tool failure")

	// ErrMissingField marks a nested entry without a required key. The parser
	// tolerates it by skipping the entry.
	ErrMissingField = errors.New("missing field")
)
