package document

import "errors"

// ErrMalformedDocument is returned by [Decode] for invalid JSON or a
// document of the wrong shape.
var ErrMalformedDocument = errors.New("malformed metadata document")
