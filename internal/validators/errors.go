package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrDocumentNotObject = errors.New("document must be a JSON object")
	ErrRecordNotObject   = errors.New("record must be a JSON object")
	ErrFieldNotString    = errors.New("record field must be a string")
)
