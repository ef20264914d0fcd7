package rewrite

import (
	"strings"

	"writer/internal/core/phrasebook"
)

// Substitute applies t to s one rule at a time, each rule making a full pass before the next
func Substitute(s string, t phrasebook.Table) string {
	t.Each(func(r phrasebook.Rule) {
		s = replaceFold(s, r.Pattern, r.Replacement)
	})
	return s
}

// replaceFold replaces every ASCII case-insensitive occurrence of pattern, left to right.
// Scanning resumes after the matched text so a replacement is never rescanned
func replaceFold(s, pattern, repl string) string {
	n := len(pattern)
	if n == 0 || len(s) < n {
		return s
	}
	var b strings.Builder
	last := 0
	for i := 0; i+n <= len(s); {
		if !equalFoldASCII(s[i:i+n], pattern) {
			i++
			continue
		}
		if last == 0 {
			b.Grow(len(s))
		}
		b.WriteString(s[last:i])
		b.WriteString(repl)
		i += n
		last = i
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// equalFoldASCII compares byte-wise, folding only A-Z
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
