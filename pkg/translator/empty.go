package translator

// Empty is the translator that matches nothing. Composing any translator
// with Empty, in either direction, collapses to Empty (the absorbing law).
type Empty struct{}

// NewEmpty returns the empty translator.
func NewEmpty() Empty { return Empty{} }

// Kind implements Translator.
func (Empty) Kind() Kind { return KindEmpty }

// All always returns no results.
func (Empty) All(any, ...QueryOption) []any { return nil }

// First always reports no match.
func (Empty) First(any, ...QueryOption) (any, bool) { return nil, false }

// Keys is always empty.
func (Empty) Keys() []any { return nil }

// Values is always empty.
func (Empty) Values() []any { return nil }

// Prepend absorbs other and returns Empty.
func (e Empty) Prepend(Translator) Translator { return e }

// Append absorbs other and returns Empty.
func (e Empty) Append(Translator) Translator { return e }
