package expand

import (
	"regexp"
	"strconv"
	"strings"
)

// Tuple is a fixed-shape group of values produced together by a single
// match. Elements may be of mixed types; only string elements take part in
// substitution. Tuples compare by structural equality during
// de-duplication.
type Tuple []any

// Expand applies a replacement specification to a matched input string.
//
// The pattern must match the whole input; a partial match (or no match)
// yields no values. On a match, each item of the normalized replacement
// list produces one derived value, in specification order.
//
// Example:
//
//	re := regexp.MustCompile(`^data/(\w+)/(\w+)\.txt$`)
//	Expand(re, "data/2024/observations.txt", `processed/\1/\2.dat`)
//	// ["processed/2024/observations.dat"]
func Expand(re *regexp.Regexp, input string, replacement any) []any {
	idx := re.FindStringSubmatchIndex(input)
	if idx == nil || idx[0] != 0 || idx[1] != len(input) {
		return nil
	}
	groups := submatches(input, idx)

	var results []any
	mode := caseMixed // carries across the items of one replacement list
	for _, item := range normalize(replacement) {
		switch v := item.(type) {
		case string:
			var s string
			s, mode = expandString(v, groups, mode)
			results = append(results, s)
		case Tuple:
			out := make(Tuple, len(v))
			for i, elem := range v {
				if s, ok := elem.(string); ok {
					out[i], mode = expandString(s, groups, mode)
				} else {
					out[i] = elem
				}
			}
			results = append(results, out)
		default:
			results = append(results, item)
		}
	}
	return results
}

// ExpandKey applies the exact-match variant's substitution: every literal
// \1 token in string replacements (and in string tuple elements) is
// replaced with key. Non-string values pass through unchanged.
func ExpandKey(replacement any, key string) []any {
	var results []any
	for _, item := range normalize(replacement) {
		switch v := item.(type) {
		case string:
			results = append(results, strings.ReplaceAll(v, `\1`, key))
		case Tuple:
			out := make(Tuple, len(v))
			for i, elem := range v {
				if s, ok := elem.(string); ok {
					out[i] = strings.ReplaceAll(s, `\1`, key)
				} else {
					out[i] = elem
				}
			}
			results = append(results, out)
		default:
			results = append(results, item)
		}
	}
	return results
}

// normalize converts a replacement specification to the list of items it
// produces. A bare specification becomes a singleton list.
func normalize(replacement any) []any {
	switch v := replacement.(type) {
	case []any:
		return v
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items
	default:
		return []any{v}
	}
}

// expandString runs the full string pipeline: back-reference substitution,
// case directives (threading the active mode through), then inline literal
// lookups.
func expandString(s string, groups []string, mode caseMode) (string, caseMode) {
	s = substitute(s, groups)
	s, mode = applyCase(s, mode)
	return resolveLookups(s), mode
}

// submatches extracts the matched text for each capture group.
// Index 0 is the whole match; groups that did not participate are "".
func submatches(input string, idx []int) []string {
	out := make([]string, len(idx)/2)
	for i := range out {
		if start := idx[2*i]; start >= 0 {
			out[i] = input[start:idx[2*i+1]]
		}
	}
	return out
}

// substitute replaces \1..\99 tokens with the corresponding capture group
// and \\ with a single backslash. Tokens referencing groups the pattern
// does not have are left verbatim.
func substitute(s string, groups []string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}

		switch next := s[i+1]; {
		case next == '\\':
			b.WriteByte('\\')
			i++
		case next >= '1' && next <= '9':
			// Prefer a two-digit group when it exists.
			end := i + 2
			if end+1 <= len(s) && end < len(s) && s[end] >= '0' && s[end] <= '9' {
				if n, _ := strconv.Atoi(s[i+1 : end+1]); n < len(groups) {
					b.WriteString(groups[n])
					i = end
					continue
				}
			}
			n, _ := strconv.Atoi(s[i+1 : end])
			if n < len(groups) {
				b.WriteString(groups[n])
				i = end - 1
			} else {
				b.WriteByte(c)
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
