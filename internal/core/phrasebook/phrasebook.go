// Package phrasebook loads and compiles the substitution tables from the embedded tables.json.
// Tables are compiled once and are read-only afterwards so every request can share them
package phrasebook

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

//go:embed tables.json
var embedded []byte

type rawRule struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
}

type rawBook struct {
	Version      int                  `json:"version"`
	Header       string               `json:"header"`
	Destiffen    []rawRule            `json:"destiffen"`
	Tones        map[string][]rawRule `json:"tones"`
	Contractions []rawRule            `json:"contractions"`
}

// Tone selects the table layered after de-stiffening
type Tone string

const (
	// Neutral applies no tone table
	Neutral Tone = "neutral"
	// Casual loosens connectors further
	Casual Tone = "casual"
	// Formal turns plain connectors back into formal ones
	Formal Tone = "formal"
)

// Tones lists the known tones in display order
var Tones = []Tone{Neutral, Casual, Formal}

// ParseTone folds s and reports whether it names a known tone.
// Blank input is neutral; unknown input falls back to neutral with ok=false
func ParseTone(s string) (Tone, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Neutral, true
	}
	switch t := Tone(cases.Fold().String(s)); t {
	case Neutral, Casual, Formal:
		return t, true
	default:
		return Neutral, false
	}
}

// Rule is a single case-insensitive substring substitution
type Rule struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
}

// Table is an ordered rule set, longest pattern first
type Table struct {
	Name  string
	rules []Rule
}

// NewTable orders rules by pattern length descending; equal lengths keep their given order
func NewTable(name string, rules ...Rule) Table {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Pattern == "" {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Pattern) > len(out[j].Pattern)
	})
	return Table{Name: name, rules: out}
}

// Rules returns a copy of the ordered rules
func (t Table) Rules() []Rule { return append([]Rule(nil), t.rules...) }

// Len reports the number of rules
func (t Table) Len() int { return len(t.rules) }

// Each calls fn for every rule in application order
func (t Table) Each(fn func(Rule)) {
	for _, r := range t.rules {
		fn(r)
	}
}

// Book is the compiled set of tables
type Book struct {
	Version      int
	Header       string
	Destiffen    Table
	Contractions Table

	tones map[Tone]Table
}

// Tone returns the table for t; unknown tones get the empty neutral table
func (b *Book) Tone(t Tone) Table {
	if tbl, ok := b.tones[t]; ok {
		return tbl
	}
	return NewTable(string(Neutral))
}

// Load compiles the embedded tables.json
func Load() (*Book, error) {
	return Parse(embedded)
}

// Parse compiles a tables document
func Parse(raw []byte) (*Book, error) {
	var rb rawBook
	if err := json.Unmarshal(raw, &rb); err != nil {
		return nil, fmt.Errorf("phrasebook: parse tables: %w", err)
	}
	if rb.Version != 1 {
		return nil, fmt.Errorf("phrasebook: unsupported tables version %d (want 1)", rb.Version)
	}
	if len(rb.Destiffen) == 0 {
		return nil, fmt.Errorf("phrasebook: destiffen table is empty")
	}

	b := &Book{
		Version:      rb.Version,
		Header:       rb.Header,
		Destiffen:    NewTable("destiffen", toRules(rb.Destiffen)...),
		Contractions: NewTable("contractions", toRules(rb.Contractions)...),
		tones:        make(map[Tone]Table, len(Tones)),
	}
	for name, rules := range rb.Tones {
		t, ok := ParseTone(name)
		if !ok {
			return nil, fmt.Errorf("phrasebook: unknown tone %q", name)
		}
		b.tones[t] = NewTable(string(t), toRules(rules)...)
	}
	return b, nil
}

func toRules(in []rawRule) []Rule {
	out := make([]Rule, 0, len(in))
	for _, r := range in {
		out = append(out, Rule(r))
	}
	return out
}

var (
	defaultOnce sync.Once
	defaultBook *Book
)

// Default returns the process-wide compiled book, panicking if the embedded tables are broken
func Default() *Book {
	defaultOnce.Do(func() {
		b, err := Load()
		if err != nil {
			panic(err)
		}
		defaultBook = b
	})
	return defaultBook
}
