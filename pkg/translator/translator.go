package translator

import (
	"fmt"

	"github.com/randalmurphal/translator/pkg/translator/expand"
)

// Tuple is a fixed-shape group of values produced together by one match.
// See the expand package for substitution semantics.
type Tuple = expand.Tuple

// Kind discriminates the concrete translator variants. It exists solely for
// the composition algebra's dispatch; matching logic never consults it.
type Kind int

const (
	// KindDict is the exact-match variant backed by a map.
	KindDict Kind = iota
	// KindRegex is the pattern variant backed by anchored rules.
	KindRegex
	// KindSequence is an ordered composition of child translators.
	KindSequence
	// KindEmpty matches nothing and absorbs any composition.
	KindEmpty
	// KindIdentity returns its input unchanged.
	KindIdentity
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindDict:
		return "DICT"
	case KindRegex:
		return "REGEX"
	case KindSequence:
		return "SEQUENCE"
	case KindEmpty:
		return "EMPTY"
	case KindIdentity:
		return "IDENTITY"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Translator maps input strings to derived values.
//
// All returns every unique derived value in priority order; First returns
// only the highest-priority one. Both accept a single string or a list of
// strings ([]string, or []any holding strings). "No match" is signaled by an
// empty result (All) or a false second return (First), never by an error.
//
// Keys and Values expose the variant's raw configuration; their shape varies
// per variant. Prepend and Append build new composed translators without
// mutating either operand.
type Translator interface {
	// Kind reports the variant tag used by the composition algebra.
	Kind() Kind

	// All translates input, returning every unique result in priority order.
	All(input any, opts ...QueryOption) []any

	// First translates input, returning the highest-priority result.
	// The second return is false when nothing matches.
	First(input any, opts ...QueryOption) (any, bool)

	// Keys returns the variant's match keys (shape varies per variant).
	Keys() []any

	// Values returns the raw stored values, parallel to Keys.
	Values() []any

	// Prepend returns a new translator with other in front of this one.
	Prepend(other Translator) Translator

	// Append returns a new translator with other after this one.
	Append(other Translator) Translator
}

// QueryOption configures a single All or First call.
type QueryOption func(*query)

type query struct {
	stringsFirst bool
}

// StringsFirst makes the input string the outer traversal loop: every rule
// (or child translator) is tried against the first string before any rule is
// tried against the second. Without it the rule is the outer loop.
func StringsFirst() QueryOption {
	return func(q *query) {
		q.stringsFirst = true
	}
}

func newQuery(opts []QueryOption) query {
	var q query
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// Compose folds translators left to right with Append. With no arguments it
// returns the Empty translator. It is the stand-in for chaining the original
// a + b + c operator form.
func Compose(ts ...Translator) Translator {
	if len(ts) == 0 {
		return NewEmpty()
	}
	out := ts[0]
	for _, t := range ts[1:] {
		out = out.Append(t)
	}
	return out
}

// asStrings normalizes a query input to a list of strings. A bare string
// becomes a singleton list. Any other input type is a programmer error.
func asStrings(input any) []string {
	switch v := input.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				panic(fmt.Sprintf("translator: query input element %d must be a string, got %T", i, item))
			}
			out[i] = s
		}
		return out
	default:
		panic(fmt.Sprintf("translator: query input must be a string or a list of strings, got %T", input))
	}
}

// appendUnique appends v to results unless a structurally equal value is
// already present. First occurrence wins.
func appendUnique(results []any, v any) []any {
	for _, existing := range results {
		if valueEqual(existing, v) {
			return results
		}
	}
	return append(results, v)
}

// pair wraps two translators in a fresh two-child sequence, the algebra's
// fallback when no merge rule applies.
func pair(front, back Translator) *Sequence {
	return &Sequence{children: []Translator{front, back}}
}

// The closed set of variants.
var (
	_ Translator = (*Dict)(nil)
	_ Translator = (*Regex)(nil)
	_ Translator = (*Sequence)(nil)
	_ Translator = Empty{}
	_ Translator = Identity{}
)
