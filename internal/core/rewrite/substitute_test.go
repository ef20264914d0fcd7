package rewrite

import (
	"testing"

	"writer/internal/core/phrasebook"
)

func TestReplaceFold(t *testing.T) {
	tests := []struct {
		name, in, pat, repl, out string
	}{
		{"no match", "hello", "xyz", "q", "hello"},
		{"case insensitive", "We UTILIZE and Utilize", "utilize", "use", "We use and use"},
		{"adjacent", "abab", "ab", "x", "xx"},
		{"self referential", "aaa", "a", "aa", "aaaaaa"},
		{"replacement not rescanned", "ab", "ab", "abab", "abab"},
		{"empty pattern", "abc", "", "x", "abc"},
		{"pattern longer than input", "ab", "abc", "x", "ab"},
		{"multibyte around match", "café assist naïve", "assist", "help", "café help naïve"},
		{"non ascii not folded", "ÀSSIST", "àssist", "help", "ÀSSIST"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := replaceFold(tc.in, tc.pat, tc.repl); got != tc.out {
				t.Fatalf("replaceFold(%q,%q,%q) = %q, want %q", tc.in, tc.pat, tc.repl, got, tc.out)
			}
		})
	}
}

func TestSubstitute_LongestPatternWins(t *testing.T) {
	tbl := phrasebook.NewTable("t",
		phrasebook.Rule{Pattern: "order", Replacement: "ranking"},
		phrasebook.Rule{Pattern: "in order to", Replacement: "to"},
	)
	if got := Substitute("In order to win, keep order.", tbl); got != "to win, keep ranking." {
		t.Fatalf("got %q", got)
	}
}

func TestSubstitute_FullPassPerRule(t *testing.T) {
	// the second rule sees every output of the first
	tbl := phrasebook.NewTable("t",
		phrasebook.Rule{Pattern: "abc", Replacement: "xy"},
		phrasebook.Rule{Pattern: "xy", Replacement: "z"},
	)
	if got := Substitute("abc abc xy", tbl); got != "z z z" {
		t.Fatalf("got %q", got)
	}
}

func TestSubstitute_EmptyTable(t *testing.T) {
	in := "Moreover, nothing changes."
	if got := Substitute(in, phrasebook.NewTable("neutral")); got != in {
		t.Fatalf("got %q", got)
	}
}

func TestSubstitute_Destiffen(t *testing.T) {
	b := phrasebook.Default()
	tests := []struct{ in, out string }{
		{"Furthermore, we commence.", "also, we start."},
		{"However, please assist.", "but, please help."},
		{"Therefore, purchase it in order to win.", "so, buy it to win."},
		{"Numerous individuals utilize it.", "many people use it."},
	}
	for _, tc := range tests {
		if got := Substitute(tc.in, b.Destiffen); got != tc.out {
			t.Fatalf("Substitute(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestSubstitute_Contractions(t *testing.T) {
	b := phrasebook.Default()
	in := "We are sure it is fine. You do not know. They cannot and will not. That is that."
	want := "we're sure it's fine. You don't know. They can't and won't. that's that."
	if got := Substitute(in, b.Contractions); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
