package rewrite

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxSentence is the segment length above which the splitter looks for a comma
const DefaultMaxSentence = 160

const (
	sentenceSep = ". "
	clauseSep   = ", "
)

// SplitLongSentences breaks segments longer than maxLen characters at their middle ", ".
// A segment is split at most once; the right half is not re-checked even when still long
func SplitLongSentences(s string, maxLen int) string {
	parts := strings.Split(s, sentenceSep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if utf8.RuneCountInString(p) <= maxLen {
			out = append(out, p)
			continue
		}
		commas := clauseOffsets(p)
		if len(commas) == 0 {
			out = append(out, p)
			continue
		}
		mid := commas[len(commas)/2]
		left := strings.TrimSpace(p[:mid])
		right := strings.TrimSpace(p[mid+len(clauseSep):])
		out = append(out, left+".", right)
	}
	return strings.Join(out, sentenceSep)
}

// clauseOffsets returns the byte offsets of every ", " in s
func clauseOffsets(s string) []int {
	var idx []int
	for off := 0; ; {
		i := strings.Index(s[off:], clauseSep)
		if i < 0 {
			return idx
		}
		idx = append(idx, off+i)
		off += i + len(clauseSep)
	}
}
