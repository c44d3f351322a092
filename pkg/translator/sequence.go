package translator

import "fmt"

// Sequence is an ordered composition of child translators. Children keep
// their own internal ordering; results across children are de-duplicated
// with first occurrence winning.
type Sequence struct {
	children []Translator
}

// NewSequence creates a sequence over children, in priority order. A
// sequence must have at least one child; zero children or a nil child is a
// construction error.
func NewSequence(children ...Translator) (*Sequence, error) {
	if len(children) == 0 {
		return nil, ErrEmptySequence
	}
	copied := make([]Translator, len(children))
	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("child %d: %w", i, ErrNilTranslator)
		}
		copied[i] = c
	}
	return &Sequence{children: copied}, nil
}

// MustSequence is NewSequence, panicking on error.
func MustSequence(children ...Translator) *Sequence {
	s, err := NewSequence(children...)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind implements Translator.
func (t *Sequence) Kind() Kind { return KindSequence }

// Children returns the child translators in order.
func (t *Sequence) Children() []Translator {
	out := make([]Translator, len(t.children))
	copy(out, t.children)
	return out
}

// All returns every unique derived value across children. By default the
// child translator is the outer loop; with StringsFirst the input string
// is. Each child sees its inputs with its own default traversal order.
func (t *Sequence) All(input any, opts ...QueryOption) []any {
	q := newQuery(opts)
	strs := asStrings(input)

	var results []any
	if q.stringsFirst {
		for _, s := range strs {
			for _, child := range t.children {
				for _, v := range child.All(s) {
					results = appendUnique(results, v)
				}
			}
		}
	} else {
		for _, child := range t.children {
			for _, v := range child.All(strs) {
				results = appendUnique(results, v)
			}
		}
	}
	return results
}

// First returns the first child result in traversal order, or false when no
// child matches anything.
func (t *Sequence) First(input any, opts ...QueryOption) (any, bool) {
	q := newQuery(opts)
	strs := asStrings(input)

	if q.stringsFirst {
		for _, s := range strs {
			for _, child := range t.children {
				if v, ok := child.First(s); ok {
					return v, true
				}
			}
		}
	} else {
		for _, child := range t.children {
			if v, ok := child.First(strs); ok {
				return v, true
			}
		}
	}
	return nil, false
}

// Keys returns one sub-list per child, in child order: each child's own
// Keys result. The list is not flattened.
func (t *Sequence) Keys() []any {
	out := make([]any, len(t.children))
	for i, child := range t.children {
		out[i] = child.Keys()
	}
	return out
}

// Values returns one sub-list per child, parallel to Keys.
func (t *Sequence) Values() []any {
	out := make([]any, len(t.children))
	for i, child := range t.children {
		out[i] = child.Values()
	}
	return out
}

// Prepend implements the composition algebra with other in front. A
// same-kind merge with the front child takes priority over growing the
// child list.
func (t *Sequence) Prepend(other Translator) Translator {
	switch other.Kind() {
	case KindEmpty:
		return NewEmpty()
	case KindSequence:
		if o, ok := other.(*Sequence); ok {
			return &Sequence{children: concatChildren(o.children, t.children)}
		}
	default:
		front := t.children[0]
		if other.Kind() == front.Kind() {
			merged := front.Prepend(other)
			if merged.Kind() == other.Kind() {
				return t.spliced(0, merged)
			}
		}
	}
	return &Sequence{children: concatChildren([]Translator{other}, t.children)}
}

// Append implements the composition algebra with other after. A same-kind
// merge with the back child takes priority over growing the child list.
func (t *Sequence) Append(other Translator) Translator {
	switch other.Kind() {
	case KindEmpty:
		return NewEmpty()
	case KindSequence:
		if o, ok := other.(*Sequence); ok {
			return &Sequence{children: concatChildren(t.children, o.children)}
		}
	default:
		back := t.children[len(t.children)-1]
		if other.Kind() == back.Kind() {
			merged := back.Append(other)
			if merged.Kind() == other.Kind() {
				return t.spliced(len(t.children)-1, merged)
			}
		}
	}
	return &Sequence{children: concatChildren(t.children, []Translator{other})}
}

// spliced returns a copy of the sequence with the child at i replaced.
func (t *Sequence) spliced(i int, child Translator) *Sequence {
	children := make([]Translator, len(t.children))
	copy(children, t.children)
	children[i] = child
	return &Sequence{children: children}
}

// concatChildren joins two child lists into a fresh slice so composed
// sequences never alias a live backing array.
func concatChildren(front, back []Translator) []Translator {
	out := make([]Translator, 0, len(front)+len(back))
	out = append(out, front...)
	out = append(out, back...)
	return out
}
