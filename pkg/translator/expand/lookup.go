package expand

import (
	"regexp"
	"strings"
)

// lookupExpr finds candidate inline lookup expressions. The non-greedy
// bodies deliberately match the narrowest {...}[...] span.
var lookupExpr = regexp.MustCompile(`\{.*?\}\[.*?\]`)

// resolveLookups replaces each {map}[key] occurrence in s with the value the
// literal map holds for the literal key. Occurrences that do not parse as a
// restricted lookup, or whose key is absent, are left verbatim.
//
// This is intentionally NOT an expression evaluator. Replacement text is
// configuration-trusted, not code-trusted, so only literal string maps
// indexed by literal string keys are accepted.
func resolveLookups(s string) string {
	if !strings.Contains(s, "{") {
		return s
	}
	return lookupExpr.ReplaceAllStringFunc(s, func(expr string) string {
		v, ok := evalLookup(expr)
		if !ok {
			return expr
		}
		return v
	})
}

// evalLookup evaluates one restricted lookup expression, e.g.
//
//	{"saturn": "6", "uranus": "7"}["saturn"]
//
// Returns false if expr is not exactly a literal map indexed by a literal
// key, or if the key is not present.
func evalLookup(expr string) (string, bool) {
	p := &lookupParser{src: expr}
	entries, ok := p.mapLiteral()
	if !ok {
		return "", false
	}
	if !p.consume('[') {
		return "", false
	}
	key, ok := p.stringLiteral()
	if !ok {
		return "", false
	}
	if !p.consume(']') {
		return "", false
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return "", false
	}
	v, ok := entries[key]
	return v, ok
}

// lookupParser is a minimal scanner over one lookup expression.
type lookupParser struct {
	src string
	pos int
}

func (p *lookupParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// consume advances past c if it is the next non-space byte.
func (p *lookupParser) consume(c byte) bool {
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// stringLiteral scans a single- or double-quoted string with \\, \', and \"
// escapes.
func (p *lookupParser) stringLiteral() (string, bool) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return "", false
	}
	quote := p.src[p.pos]
	if quote != '\'' && quote != '"' {
		return "", false
	}
	p.pos++

	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case quote:
			p.pos++
			return b.String(), true
		case '\\':
			if p.pos+1 >= len(p.src) {
				return "", false
			}
			esc := p.src[p.pos+1]
			if esc != '\\' && esc != '\'' && esc != '"' {
				return "", false
			}
			b.WriteByte(esc)
			p.pos += 2
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", false // unterminated
}

// mapLiteral scans {"k": "v", ...} into a map. Only string literals are
// accepted on either side of the colon.
func (p *lookupParser) mapLiteral() (map[string]string, bool) {
	if !p.consume('{') {
		return nil, false
	}
	entries := make(map[string]string)
	if p.consume('}') {
		return entries, true
	}
	for {
		k, ok := p.stringLiteral()
		if !ok {
			return nil, false
		}
		if !p.consume(':') {
			return nil, false
		}
		v, ok := p.stringLiteral()
		if !ok {
			return nil, false
		}
		entries[k] = v

		if p.consume(',') {
			continue
		}
		if p.consume('}') {
			return entries, true
		}
		return nil, false
	}
}
