package cache

import (
	"fmt"
	"reflect"

	"github.com/randalmurphal/translator/pkg/translator"
)

// Memoized wraps a translator's query surface with read-through caching.
//
// Each input string resolves independently: on a cache hit the stored
// values are returned; on a miss the wrapped translator computes them and,
// when they are all strings, the result set is written through. Batch
// queries therefore always traverse string-major. Store write failures are
// treated as cache misses, never as query errors.
type Memoized struct {
	t     translator.Translator
	store Store
	set   string
}

// NewMemoized wraps t with read-through caching under the given rule-set
// name. The set name keys the cache; use a new name whenever the rule set
// changes meaning.
func NewMemoized(t translator.Translator, store Store, set string) *Memoized {
	return &Memoized{t: t, store: store, set: set}
}

// Underlying returns the wrapped translator.
func (m *Memoized) Underlying() translator.Translator { return m.t }

// All returns every unique derived value across the input strings,
// resolving each input in order through the cache.
func (m *Memoized) All(input any) []any {
	var results []any
	for _, s := range inputStrings(input) {
		for _, v := range m.translate(s) {
			results = appendUnique(results, v)
		}
	}
	return results
}

// First returns the first derived value of the first input string that
// matches anything, or false when nothing does.
func (m *Memoized) First(input any) (any, bool) {
	for _, s := range inputStrings(input) {
		if derived := m.translate(s); len(derived) > 0 {
			return derived[0], true
		}
	}
	return nil, false
}

// Invalidate drops the cache entry for one input string.
func (m *Memoized) Invalidate(input string) error {
	return m.store.Delete(m.set, input)
}

// InvalidateAll drops every cache entry of this rule set.
func (m *Memoized) InvalidateAll() error {
	return m.store.DeleteSet(m.set)
}

// translate resolves one input string, consulting the cache first.
func (m *Memoized) translate(s string) []any {
	if cached, err := m.store.Get(m.set, s); err == nil {
		out := make([]any, len(cached))
		for i, v := range cached {
			out[i] = v
		}
		return out
	}

	derived := m.t.All(s)
	if strs, ok := allStrings(derived); ok {
		// Best effort: a failed write-through degrades to recomputation.
		_ = m.store.Put(m.set, s, strs)
	}
	return derived
}

// allStrings converts derived values to strings, reporting false when any
// value is not a plain string (those result sets are never cached).
func allStrings(values []any) ([]string, bool) {
	out := make([]string, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// inputStrings normalizes a query input the way the translator core does:
// a bare string becomes a singleton list, anything that is not a list of
// strings is a programmer error.
func inputStrings(input any) []string {
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
				panic(fmt.Sprintf("cache: query input element %d must be a string, got %T", i, item))
			}
			out[i] = s
		}
		return out
	default:
		panic(fmt.Sprintf("cache: query input must be a string or a list of strings, got %T", input))
	}
}

// appendUnique mirrors the core's de-duplication: first occurrence wins,
// compared by structural equality.
func appendUnique(results []any, v any) []any {
	for _, existing := range results {
		if reflect.DeepEqual(existing, v) {
			return results
		}
	}
	return append(results, v)
}
