package translator

import "errors"

// Sentinel errors for construction-time contract violations. These are
// programmer errors: they surface immediately at construction, never at
// query time.
var (
	// ErrEmptySequence indicates a sequence was built with zero children.
	ErrEmptySequence = errors.New("sequence requires at least one translator")

	// ErrNilTranslator indicates a nil translator where one is required.
	ErrNilTranslator = errors.New("translator cannot be nil")
)
