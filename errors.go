package wordsapi

import "errors"

var (
	// ErrNotFound reports that the API returned a non-200 status or an
	// empty body for a word. The original API does not distinguish an
	// unknown word from a transport failure, so neither does this error.
	ErrNotFound = errors.New("word not found")

	// ErrUnknownVerb reports a lookup for an attribute outside the fixed
	// verb set. It indicates a caller bug, not a runtime data condition.
	ErrUnknownVerb = errors.New("unknown verb")

	// ErrNotImplemented reports a declared but unimplemented operation.
	ErrNotImplemented = errors.New("not implemented")
)
