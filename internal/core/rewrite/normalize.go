package rewrite

import "strings"

// Normalize fixes line endings and spacing without touching any other character
// 1 CRLF (including stray CR runs before LF) becomes LF
// 2 runs of spaces collapse to a single space
// 3 a space directly before , . ! ? is dropped
// the result is a fixed point: Normalize(Normalize(s)) == Normalize(s)
func Normalize(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		switch c := s[i]; c {
		case '\r':
			// the whole CR run folds into the LF so a second pass finds nothing left
			j := i
			for j < len(s) && s[j] == '\r' {
				j++
			}
			if j < len(s) && s[j] == '\n' {
				b.WriteByte('\n')
				i = j + 1
				continue
			}
			b.WriteString(s[i:j])
			i = j
		case ' ':
			j := i
			for j < len(s) && s[j] == ' ' {
				j++
			}
			// the whole run goes when it hugs punctuation
			if j < len(s) && isTightPunct(s[j]) {
				i = j
				continue
			}
			b.WriteByte(' ')
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func isTightPunct(c byte) bool {
	return c == ',' || c == '.' || c == '!' || c == '?'
}
