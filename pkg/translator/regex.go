package translator

import (
	"fmt"
	"regexp"

	"github.com/randalmurphal/translator/pkg/translator/expand"
)

// Rule is one anchored pattern/replacement pair of a Regex translator.
// Rule order within a translator is significant: earlier rules have higher
// priority.
type Rule struct {
	re   *regexp.Regexp
	repl any
}

// NewRule compiles pattern into a rule. The pattern is implicitly anchored
// at both ends; partial matches never count.
func NewRule(pattern string, replacement any) (Rule, error) {
	re, err := regexp.Compile(anchored(pattern))
	if err != nil {
		return Rule{}, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return Rule{re: re, repl: replacement}, nil
}

// NewRuleWithFlags compiles pattern with regexp flags (e.g. "i" for
// case-insensitive matching), anchored like NewRule.
func NewRuleWithFlags(pattern, flags string, replacement any) (Rule, error) {
	if flags == "" {
		return NewRule(pattern, replacement)
	}
	re, err := regexp.Compile("^(?" + flags + ":" + pattern + ")$")
	if err != nil {
		return Rule{}, fmt.Errorf("compile pattern %q with flags %q: %w", pattern, flags, err)
	}
	return Rule{re: re, repl: replacement}, nil
}

// CompiledRule wraps an already-compiled pattern. The pattern is used as
// given; the caller is responsible for anchoring. The expansion engine still
// requires the match to span the whole input.
func CompiledRule(re *regexp.Regexp, replacement any) Rule {
	return Rule{re: re, repl: replacement}
}

// MustRule is NewRule, panicking on a compile error. Intended for rule
// tables built from literals.
func MustRule(pattern string, replacement any) Rule {
	r, err := NewRule(pattern, replacement)
	if err != nil {
		panic(err)
	}
	return r
}

// Pattern returns the rule's compiled pattern.
func (r Rule) Pattern() *regexp.Regexp { return r.re }

// Replacement returns the rule's raw replacement specification.
func (r Rule) Replacement() any { return r.repl }

func anchored(pattern string) string {
	return "^(?:" + pattern + ")$"
}

// Regex is the pattern translator: an ordered list of anchored
// pattern/replacement rules evaluated through the expand package.
type Regex struct {
	rules []Rule
}

// NewRegex creates a pattern translator over rules, in priority order.
func NewRegex(rules ...Rule) *Regex {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Regex{rules: copied}
}

// Kind implements Translator.
func (x *Regex) Kind() Kind { return KindRegex }

// All returns every unique derived value in priority order. By default the
// rule is the outer loop; with StringsFirst the input string is.
func (x *Regex) All(input any, opts ...QueryOption) []any {
	q := newQuery(opts)
	strs := asStrings(input)

	var results []any
	if q.stringsFirst {
		for _, s := range strs {
			for _, r := range x.rules {
				for _, v := range expand.Expand(r.re, s, r.repl) {
					results = appendUnique(results, v)
				}
			}
		}
	} else {
		for _, r := range x.rules {
			for _, s := range strs {
				for _, v := range expand.Expand(r.re, s, r.repl) {
					results = appendUnique(results, v)
				}
			}
		}
	}
	return results
}

// First returns the first value of the first non-empty expansion, in the
// same traversal order as All, or false when nothing matches.
func (x *Regex) First(input any, opts ...QueryOption) (any, bool) {
	q := newQuery(opts)
	strs := asStrings(input)

	if q.stringsFirst {
		for _, s := range strs {
			for _, r := range x.rules {
				if expanded := expand.Expand(r.re, s, r.repl); len(expanded) > 0 {
					return expanded[0], true
				}
			}
		}
	} else {
		for _, r := range x.rules {
			for _, s := range strs {
				if expanded := expand.Expand(r.re, s, r.repl); len(expanded) > 0 {
					return expanded[0], true
				}
			}
		}
	}
	return nil, false
}

// Keys returns the compiled patterns in declaration order.
func (x *Regex) Keys() []any {
	out := make([]any, len(x.rules))
	for i, r := range x.rules {
		out[i] = r.re
	}
	return out
}

// Values returns the raw (unexpanded) replacement specifications, parallel
// to Keys.
func (x *Regex) Values() []any {
	out := make([]any, len(x.rules))
	for i, r := range x.rules {
		out[i] = r.repl
	}
	return out
}

// Prepend implements the composition algebra with other in front.
func (x *Regex) Prepend(other Translator) Translator {
	switch other.Kind() {
	case KindEmpty:
		return NewEmpty()
	case KindRegex:
		if o, ok := other.(*Regex); ok {
			return mergeRegexes(o, x)
		}
	case KindSequence:
		if o, ok := other.(*Sequence); ok {
			return o.Append(x)
		}
	}
	return pair(other, x)
}

// Append implements the composition algebra with other after.
func (x *Regex) Append(other Translator) Translator {
	switch other.Kind() {
	case KindEmpty:
		return NewEmpty()
	case KindRegex:
		if o, ok := other.(*Regex); ok {
			return mergeRegexes(x, o)
		}
	case KindSequence:
		if o, ok := other.(*Sequence); ok {
			return o.Prepend(x)
		}
	}
	return pair(x, other)
}

// mergeRegexes flattens two pattern translators into one, front's rules
// first.
func mergeRegexes(front, back *Regex) *Regex {
	merged := make([]Rule, 0, len(front.rules)+len(back.rules))
	merged = append(merged, front.rules...)
	merged = append(merged, back.rules...)
	return &Regex{rules: merged}
}
