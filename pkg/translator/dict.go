package translator

import (
	"sort"

	"github.com/randalmurphal/translator/pkg/translator/expand"
)

// Dict is the exact-match translator: a key to value mapping. Fast but
// inflexible. Values may be strings (with optional literal \1 replaced by
// the key), tuples, lists of either, or arbitrary non-string values.
type Dict struct {
	entries       map[string]any
	keyTranslator Translator
}

// DictOption configures a Dict at construction.
type DictOption func(*Dict)

// WithKeyTranslator sets a translator that converts input strings into the
// keys used by the mapping before lookup.
//
// Example:
//
//	keys := translator.NewRegex(translator.MustRule(`input_(\w+)`, `\1`))
//	d := translator.NewDict(m, translator.WithKeyTranslator(keys))
//	d.First("input_apple") // looks up "apple"
func WithKeyTranslator(t Translator) DictOption {
	return func(d *Dict) {
		d.keyTranslator = t
	}
}

// NewDict creates an exact-match translator over entries. The mapping is
// copied, so later mutation of entries does not affect the translator.
func NewDict(entries map[string]any, opts ...DictOption) *Dict {
	copied := make(map[string]any, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	d := &Dict{entries: copied}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Kind implements Translator.
func (d *Dict) Kind() Kind { return KindDict }

// All returns every unique derived value for the matched keys, in input
// order. Traversal-order options have no effect: a dict has a single test
// per key. Non-string lookup keys produced by the key translator are
// skipped.
func (d *Dict) All(input any, _ ...QueryOption) []any {
	var results []any
	for _, key := range d.lookupKeys(input) {
		raw, ok := d.entries[key]
		if !ok {
			continue
		}
		for _, v := range expand.ExpandKey(raw, key) {
			results = appendUnique(results, v)
		}
	}
	return results
}

// First returns the first derived value for the first matched key, or false
// when no key matches. A key whose stored value expands to zero items is
// skipped.
func (d *Dict) First(input any, _ ...QueryOption) (any, bool) {
	for _, key := range d.lookupKeys(input) {
		raw, ok := d.entries[key]
		if !ok {
			continue
		}
		if expanded := expand.ExpandKey(raw, key); len(expanded) > 0 {
			return expanded[0], true
		}
	}
	return nil, false
}

// lookupKeys converts input strings to mapping keys, running the key
// translator when one is configured.
func (d *Dict) lookupKeys(input any) []string {
	strs := asStrings(input)
	if d.keyTranslator == nil {
		return strs
	}
	keys := make([]string, 0, len(strs))
	for _, v := range d.keyTranslator.All(strs) {
		if s, ok := v.(string); ok {
			keys = append(keys, s)
		}
	}
	return keys
}

// Keys returns the mapping keys in sorted order.
func (d *Dict) Keys() []any {
	keys := d.sortedKeys()
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = k
	}
	return out
}

// Values returns the raw stored values in key-sort order, parallel to Keys.
func (d *Dict) Values() []any {
	keys := d.sortedKeys()
	out := make([]any, len(keys))
	for i, k := range keys {
		out[i] = d.entries[k]
	}
	return out
}

func (d *Dict) sortedKeys() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Prepend implements the composition algebra with other in front.
func (d *Dict) Prepend(other Translator) Translator {
	switch other.Kind() {
	case KindEmpty:
		return NewEmpty()
	case KindDict:
		if o, ok := other.(*Dict); ok && o.keyTranslator == d.keyTranslator {
			return mergeDicts(o, d)
		}
	case KindSequence:
		if o, ok := other.(*Sequence); ok {
			return o.Append(d)
		}
	}
	return pair(other, d)
}

// Append implements the composition algebra with other after.
func (d *Dict) Append(other Translator) Translator {
	switch other.Kind() {
	case KindEmpty:
		return NewEmpty()
	case KindDict:
		if o, ok := other.(*Dict); ok && o.keyTranslator == d.keyTranslator {
			return mergeDicts(d, o)
		}
	case KindSequence:
		if o, ok := other.(*Sequence); ok {
			return o.Prepend(d)
		}
	}
	return pair(d, other)
}

// mergeDicts flattens two exact-match translators into one. Entries of
// front win on key conflicts, matching the lookup priority the equivalent
// two-child sequence would have. Both operands must share a key translator;
// the caller checks that.
func mergeDicts(front, back *Dict) *Dict {
	merged := make(map[string]any, len(front.entries)+len(back.entries))
	for k, v := range front.entries {
		merged[k] = v
	}
	for k, v := range back.entries {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return &Dict{entries: merged, keyTranslator: front.keyTranslator}
}
