package expand

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExpand_Strings tests single-string replacements with back-references.
func TestExpand_Strings(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		input       string
		replacement any
		expected    []any
	}{
		{
			name:        "two capture groups",
			pattern:     `^data/(\w+)/(\w+)\.txt$`,
			input:       "data/2024/observations.txt",
			replacement: `processed/\1/\2.dat`,
			expected:    []any{"processed/2024/observations.dat"},
		},
		{
			name:        "no capture groups",
			pattern:     `^ping$`,
			input:       "ping",
			replacement: "pong",
			expected:    []any{"pong"},
		},
		{
			name:        "whole match reference",
			pattern:     `^\w+$`,
			input:       "hello",
			replacement: `got:\0`,
			expected:    []any{`got:\0`},
		},
		{
			name:        "out of range group left verbatim",
			pattern:     `^(\w+)$`,
			input:       "hello",
			replacement: `\1 and \2`,
			expected:    []any{`hello and \2`},
		},
		{
			name:        "escaped backslash",
			pattern:     `^(\w+)$`,
			input:       "x",
			replacement: `a\\b`,
			expected:    []any{`a\b`},
		},
		{
			name:        "trailing backslash kept",
			pattern:     `^(\w+)$`,
			input:       "x",
			replacement: `end\`,
			expected:    []any{`end\`},
		},
		{
			name:        "unmatched optional group is empty",
			pattern:     `^(\w+)(-(\w+))?$`,
			input:       "solo",
			replacement: `[\1][\3]`,
			expected:    []any{"[solo][]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			assert.Equal(t, tt.expected, Expand(re, tt.input, tt.replacement))
		})
	}
}

// TestExpand_FullMatchRequired verifies that a partial match yields nothing,
// even when the pattern itself is unanchored.
func TestExpand_FullMatchRequired(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
	}{
		{name: "no match at all", pattern: `^\d+$`, input: "abc"},
		{name: "prefix only", pattern: `\d+`, input: "123abc"},
		{name: "suffix only", pattern: `\d+`, input: "abc123"},
		{name: "interior only", pattern: `\d+`, input: "a123b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(tt.pattern)
			assert.Empty(t, Expand(re, tt.input, "result"))
		})
	}
}

// TestExpand_Lists tests list replacements, which produce one value per item.
func TestExpand_Lists(t *testing.T) {
	re := regexp.MustCompile(`^(\w+)\.txt$`)

	t.Run("string list", func(t *testing.T) {
		got := Expand(re, "report.txt", []string{`\1.pdf`, `\1.html`})
		assert.Equal(t, []any{"report.pdf", "report.html"}, got)
	})

	t.Run("mixed list", func(t *testing.T) {
		got := Expand(re, "report.txt", []any{`\1.pdf`, 42})
		assert.Equal(t, []any{"report.pdf", 42}, got)
	})

	t.Run("empty list yields no values", func(t *testing.T) {
		assert.Empty(t, Expand(re, "report.txt", []any{}))
	})
}

// TestExpand_Tuples tests that tuples expand element-wise and stay one value.
func TestExpand_Tuples(t *testing.T) {
	re := regexp.MustCompile(`^(\w+)/(\w+)$`)

	t.Run("string elements expand", func(t *testing.T) {
		got := Expand(re, "a/b", Tuple{`\1`, `\2`})
		assert.Equal(t, []any{Tuple{"a", "b"}}, got)
	})

	t.Run("non-string elements pass through", func(t *testing.T) {
		got := Expand(re, "a/b", Tuple{`\1`, 7, true})
		assert.Equal(t, []any{Tuple{"a", 7, true}}, got)
	})

	t.Run("list of tuples", func(t *testing.T) {
		got := Expand(re, "a/b", []any{Tuple{`\1`}, Tuple{`\2`}})
		assert.Equal(t, []any{Tuple{"a"}, Tuple{"b"}}, got)
	})
}

// TestExpand_NonStringReplacement tests scalar passthrough on a match.
func TestExpand_NonStringReplacement(t *testing.T) {
	re := regexp.MustCompile(`^answer$`)
	assert.Equal(t, []any{42}, Expand(re, "answer", 42))
	assert.Equal(t, []any{nil}, Expand(re, "answer", nil))
}

// TestExpand_TwoDigitGroups tests that \NN prefers the two-digit group when
// the pattern has that many groups.
func TestExpand_TwoDigitGroups(t *testing.T) {
	re := regexp.MustCompile(`^(a)(b)(c)(d)(e)(f)(g)(h)(i)(j)(k)$`)
	got := Expand(re, "abcdefghijk", `\11-\10-\1`)
	assert.Equal(t, []any{"k-j-a"}, got)

	// With only one group, \12 falls back to group 1 followed by literal 2.
	re = regexp.MustCompile(`^(x)yz$`)
	got = Expand(re, "xyz", `\12`)
	assert.Equal(t, []any{"x2"}, got)
}

// TestExpandKey tests the exact-match substitution of literal \1 with the key.
func TestExpandKey(t *testing.T) {
	tests := []struct {
		name        string
		replacement any
		key         string
		expected    []any
	}{
		{
			name:        "plain string untouched",
			replacement: "fruit",
			key:         "apple",
			expected:    []any{"fruit"},
		},
		{
			name:        "backref becomes key",
			replacement: `prefix_\1_suffix`,
			key:         "test",
			expected:    []any{"prefix_test_suffix"},
		},
		{
			name:        "every occurrence replaced",
			replacement: `\1/\1`,
			key:         "x",
			expected:    []any{"x/x"},
		},
		{
			name:        "list of strings",
			replacement: []string{`\1.a`, `\1.b`},
			key:         "v",
			expected:    []any{"v.a", "v.b"},
		},
		{
			name:        "tuple elements",
			replacement: Tuple{`\1`, 1},
			key:         "k",
			expected:    []any{Tuple{"k", 1}},
		},
		{
			name:        "non-string passthrough",
			replacement: 3.14,
			key:         "pi",
			expected:    []any{3.14},
		},
		{
			name:        "empty list",
			replacement: []any{},
			key:         "k",
			expected:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandKey(tt.replacement, tt.key))
		})
	}
}
