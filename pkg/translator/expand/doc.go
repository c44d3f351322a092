/*
Package expand turns a matched pattern plus a replacement specification into
concrete output values.

# Overview

expand is the substitution engine behind the translator variants. Given a
compiled pattern, an input string, and a replacement specification, it
produces the ordered list of derived values. A pattern that does not match
the whole input produces no values; "no match" is never an error.

# Replacement Specifications

A replacement specification is one of:

  - a string: capture groups are substituted for \1, \2, ... tokens, case
    directives are applied, and inline literal lookups are resolved
  - a Tuple: each string element is processed as above, non-string elements
    pass through unchanged, and the result keeps the tuple's shape
  - a list ([]any or []string): each item produces one derived value
  - anything else (numbers, booleans, ...): passed through unchanged

A bare (non-list) specification produces exactly one value per match. A list
with zero items is legal and produces no values.

# Case Directives

The markers #UPPER#, #LOWER#, and #MIXED# switch the case-transform mode for
all text that follows, up to the next marker:

	Expand(re, "test", `#UPPER#\1`)          // "TEST"
	Expand(re, "test", `#UPPER#\1#LOWER#_x`) // "TEST_x"

Text starts in mixed (unchanged) mode, and the active mode carries across
the items of a list replacement: a directive in one item still applies to
the next until another marker switches it. A literal # that does not form a
recognized marker is preserved verbatim:

	Expand(re, "test", `a#\1#b`) // "a#test#b"

Case mapping uses golang.org/x/text/cases with the und language tag.

# Inline Literal Lookups

Replacement text may embed a restricted lookup expression of the form

	{"key": "value", ...}["key"]

The map and index must be string literals (single or double quoted); the
occurrence is replaced by the looked-up value. Nothing else is ever
evaluated: replacement text often comes from configuration files, and a
general expression evaluator here would be an injection hazard. Expressions
that do not parse, or whose key is absent, are left verbatim.

# Key Substitution

ExpandKey implements the exact-match variant's simpler contract: the literal
token \1 in string replacements is substituted with the matched key. No
pattern matching, case directives, or lookups are involved.
*/
package expand
