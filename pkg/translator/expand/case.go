package expand

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case directive markers. A marker switches the transform mode for all
// text that follows, up to the next marker.
const (
	markerUpper = "UPPER"
	markerLower = "LOWER"
	markerMixed = "MIXED"
)

// caseMode is the active case-transform mode while scanning a replacement.
type caseMode int

const (
	caseMixed caseMode = iota // leave text unchanged (initial mode)
	caseUpper
	caseLower
)

// applyCase rewrites s according to its embedded case directives, starting
// in mode, and returns the mode left active at the end of the string. The
// mode carries across the items of one replacement list, so the caller
// threads it through consecutive calls.
//
// The string is scanned as #-delimited segments. A segment that spells a
// marker switches the mode and is dropped from the output; every other
// segment is emitted with the active transform applied. Hash characters
// that do not delimit a marker are preserved verbatim.
func applyCase(s string, mode caseMode) (string, caseMode) {
	if mode == caseMixed && !strings.Contains(s, "#") {
		return s, mode
	}

	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	literalHash := false
	for _, part := range strings.Split(s, "#") {
		switch part {
		case markerUpper:
			mode = caseUpper
			literalHash = false
		case markerLower:
			mode = caseLower
			literalHash = false
		case markerMixed:
			mode = caseMixed
			literalHash = false
		default:
			switch mode {
			case caseUpper:
				part = upper.String(part)
			case caseLower:
				part = lower.String(part)
			}
			if literalHash {
				b.WriteByte('#')
			}
			b.WriteString(part)
			literalHash = true
		}
	}
	return b.String(), mode
}
