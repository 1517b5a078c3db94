package graphio

import "errors"

// Error policy: only these sentinels are exposed; callers branch with
// errors.Is. Errors returned directly from a caller-supplied parse
// function are never wrapped — they already carry whatever context the
// caller chose to attach.

// ErrIO indicates the underlying file system refused to open, create,
// read, or write.
var ErrIO = errors.New("graphio: io error")

// ErrMalformed indicates the XML input could not be decoded, or that
// WriteXML failed to encode the document. The plaintext reader never
// returns it.
var ErrMalformed = errors.New("graphio: malformed input")
