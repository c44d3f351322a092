package translator

import "unicode/utf8"

// Identity is the translator that returns its input unchanged. It is useful
// as the terminal child of a sequence, echoing strings no earlier child
// matched.
type Identity struct{}

// NewIdentity returns the identity translator.
func NewIdentity() Identity { return Identity{} }

// Kind implements Translator.
func (Identity) Kind() Kind { return KindIdentity }

// All returns the input strings unchanged.
func (Identity) All(input any, _ ...QueryOption) []any {
	strs := asStrings(input)
	out := make([]any, len(strs))
	for i, s := range strs {
		out[i] = s
	}
	return out
}

// First returns the raw first element of the input with no further
// transformation. For a list that is its first string; for a bare string it
// is the string's first character. The single-string behavior is an
// intentional, long-standing quirk: "fixing" it would silently change the
// results of any sequence holding an identity translator queried with one
// string.
func (Identity) First(input any, _ ...QueryOption) (any, bool) {
	if s, ok := input.(string); ok {
		if s == "" {
			return nil, false
		}
		r, _ := utf8.DecodeRuneInString(s)
		return string(r), true
	}
	strs := asStrings(input)
	if len(strs) == 0 {
		return nil, false
	}
	return strs[0], true
}

// Keys is always empty.
func (Identity) Keys() []any { return nil }

// Values is always empty.
func (Identity) Values() []any { return nil }

// Prepend implements the composition algebra with other in front.
func (id Identity) Prepend(other Translator) Translator {
	switch other.Kind() {
	case KindEmpty:
		return NewEmpty()
	case KindIdentity:
		return id
	case KindSequence:
		if o, ok := other.(*Sequence); ok {
			return o.Append(id)
		}
	}
	return pair(other, id)
}

// Append implements the composition algebra with other after.
func (id Identity) Append(other Translator) Translator {
	switch other.Kind() {
	case KindEmpty:
		return NewEmpty()
	case KindIdentity:
		return id
	case KindSequence:
		if o, ok := other.(*Sequence); ok {
			return o.Prepend(id)
		}
	}
	return pair(id, other)
}
