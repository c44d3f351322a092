/*
Package translator maps strings such as file paths to associated values
through a pluggable matching strategy.

# Overview

A Translator tests input strings and, for each string that passes its test,
produces one or more derived values. Callers supply the concrete mapping — a
lookup table, an ordered list of pattern/substitution rules, or a composition
of both — and query it uniformly through All and First.

Five variants cover the algebra:

  - Dict: exact-key lookup backed by a map
  - Regex: ordered, implicitly anchored pattern/replacement rules
  - Sequence: ordered composition of other translators
  - Identity: returns its input unchanged
  - Empty: matches nothing

# Basic Usage

Build a translator from raw data and query it:

	dict := translator.NewDict(map[string]any{
	    "apple":  "fruit",
	    "carrot": "vegetable",
	})

	v, ok := dict.First("apple") // "fruit", true
	_, ok = dict.First("stone")  // false: no match is a normal outcome

	rx := translator.NewRegex(
	    translator.MustRule(`data/(\w+)/(\w+)\.txt`, `processed/\1/\2.dat`),
	)
	results := rx.All([]string{"data/2024/observations.txt"})
	// ["processed/2024/observations.dat"]

All and First accept a single string or a list of strings.

# Traversal Order

For multi-rule variants queried with several strings there are two traversal
orders. By default the rule (or child translator) is the outer loop: every
match for the highest-priority rule, across all inputs, precedes any match
from the next rule. With StringsFirst the input string is the outer loop:

	rx.All(inputs)                  // rule-major
	rx.All(inputs, translator.StringsFirst()) // string-major

All never returns two structurally equal values; the first occurrence wins.

# Composition

Append and Prepend combine translators into new values without mutating
either operand. Same-kind operands merge into a single flat translator of
that kind rather than nesting; the Empty translator absorbs anything it is
composed with; everything else forms a Sequence:

	t := dict.Append(rx)             // Sequence [dict, rx]
	t = t.Append(translator.NewRegex(more...)) // rx merged into the tail

	translator.Compose(dict, rx, translator.NewIdentity())

Translators are immutable value objects once constructed, so concurrent
read-only queries against a shared translator are safe.

# Rule Loading, Caching, Observability

Subpackages:

  - expand: the substitution engine (case directives, inline lookups)
  - rules: build translators from YAML/JSON rule-set documents
  - cache: memoize derived values in memory or SQLite
  - observe: structured logging, metrics, and tracing for query traffic
*/
package translator
