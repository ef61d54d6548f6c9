package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidPicturesConfigs indicates an unusable picture extension
	// (empty, or not starting with a dot).
	ErrInvalidPicturesConfigs = errors.New("invalid pictures configuration")
	// ErrInvalidDocumentConfigs indicates a default document name that is
	// not a plain ".json" file name.
	ErrInvalidDocumentConfigs = errors.New("invalid document configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative backup interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
