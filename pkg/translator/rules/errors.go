package rules

import (
	"errors"
	"fmt"
)

// errPatternRequired indicates a rules entry with no pattern field.
var errPatternRequired = errors.New("pattern is required")

// RuleError wraps a failure to compile one entry of the rules section.
type RuleError struct {
	// Index is the zero-based position of the rule in the document.
	Index int
	// Pattern is the offending pattern as written.
	Pattern string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %d (%q): %v", e.Index, e.Pattern, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *RuleError) Unwrap() error {
	return e.Err
}
