package adapter

import "errors"

var (
	ErrCanceled        = errors.New("canceled by user")
	ErrNotDirectory    = errors.New("not a directory")
	ErrUnsupportedType = errors.New("unsupported file type")
)
