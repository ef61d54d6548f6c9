package models

import "errors"

// ErrUnknownField is returned when a field name is neither headline nor
// description.
var ErrUnknownField = errors.New("unknown metadata field")
