// Package rewrite applies regexp-driven text replacements with submatch
// access and Unicode-aware word boundary checks.
//
// Go regular expressions have no lookaround, and \b is ASCII-only, so it
// cannot delimit Cyrillic words. Handlers receive each match with its
// surrounding offsets and decide the replacement themselves, using
// BoundaryBefore and BoundaryAfter where a boundary constraint is needed.
package rewrite

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is a single regexp match inside the scanned string.
type Match struct {
	src    string
	groups []int
}

// Text returns the full matched text.
func (m Match) Text() string {
	return m.src[m.groups[0]:m.groups[1]]
}

// Group returns capture group i, or "" when the group did not participate
// in the match. Group 0 is the full match.
func (m Match) Group(i int) string {
	lo, hi := m.groups[2*i], m.groups[2*i+1]
	if lo < 0 {
		return ""
	}
	return m.src[lo:hi]
}

// Start returns the byte offset of the match in the scanned string.
func (m Match) Start() int {
	return m.groups[0]
}

// End returns the byte offset just past the match.
func (m Match) End() int {
	return m.groups[1]
}

// AtBoundaryBefore reports whether the match starts at a word boundary.
func (m Match) AtBoundaryBefore() bool {
	return BoundaryBefore(m.src, m.groups[0])
}

// AtBoundaryAfter reports whether the match ends at a word boundary.
func (m Match) AtBoundaryAfter() bool {
	return BoundaryAfter(m.src, m.groups[1])
}

// All rewrites every match of re in s through repl. When repl returns
// ok=false the original matched text is kept unchanged, which lets handlers
// enforce constraints the pattern itself cannot express.
func All(s string, re *regexp.Regexp, repl func(Match) (string, bool)) string {
	idx := re.FindAllStringSubmatchIndex(s, -1)
	if idx == nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	last := 0
	for _, groups := range idx {
		m := Match{src: s, groups: groups}
		b.WriteString(s[last:m.Start()])
		if out, ok := repl(m); ok {
			b.WriteString(out)
		} else {
			b.WriteString(m.Text())
		}
		last = m.End()
	}
	b.WriteString(s[last:])

	return b.String()
}

// IsWordRune reports whether r is a letter, a digit or an underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// BoundaryBefore reports whether byte offset i sits at a word boundary
// looking left: the start of the string, or preceded by a non-word rune.
func BoundaryBefore(s string, i int) bool {
	if i <= 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !IsWordRune(r)
}

// BoundaryAfter reports whether byte offset i sits at a word boundary
// looking right: the end of the string, or followed by a non-word rune.
func BoundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !IsWordRune(r)
}
