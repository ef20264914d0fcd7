// Package domain holds DTOs for the rewrite HTTP and service contracts
package domain

import (
	"writer/internal/core/phrasebook"
	"writer/internal/core/rewrite"
	pstrings "writer/internal/platform/strings"
)

// HumanizeInput is the rewrite request body
// field names match case-insensitively so PascalCase clients still bind
type HumanizeInput struct {
	Text string `json:"text" example:"In conclusion, we must utilize numerous individuals."`
	Tone string `json:"tone,omitempty" validate:"omitempty,tone" example:"casual"`

	// nil means on
	Contractions       *bool `json:"contractions,omitempty"       example:"true"`
	BreakLongSentences *bool `json:"breakLongSentences,omitempty" example:"true"`
}

// Request maps the DTO onto a pipeline request; an unknown tone becomes neutral
func (in HumanizeInput) Request() rewrite.Request {
	tone, _ := phrasebook.ParseTone(in.Tone)
	return rewrite.Request{
		Text:               in.Text,
		Tone:               tone,
		Contractions:       pstrings.Or(in.Contractions, true),
		BreakLongSentences: pstrings.Or(in.BreakLongSentences, true),
	}
}

// HumanizeResult is the rewritten text, header included
type HumanizeResult struct {
	Result string `json:"result" example:"Here’s a cleaner version:\n\nto wrap it up, we must use many people."`
}

// Rule is one substitution as shown to clients
type Rule struct {
	Pattern     string `json:"pattern"     example:"moreover,"`
	Replacement string `json:"replacement" example:"also,"`
}

// ToneInfo describes one tone and the rules layered after de-stiffening
type ToneInfo struct {
	Name  string `json:"name" example:"casual"`
	Rules []Rule `json:"rules"`
}

// TonesResp lists every known tone in display order
type TonesResp struct {
	Default string     `json:"default" example:"neutral"`
	Tones   []ToneInfo `json:"tones"`
}

// PhrasebookInfo summarizes the loaded tables
type PhrasebookInfo struct {
	Version      int            `json:"version"       example:"1"`
	Header       string         `json:"header"        example:"Here’s a cleaner version:\n\n"`
	Destiffen    int            `json:"destiffen"     example:"11"`
	Contractions int            `json:"contractions"  example:"11"`
	Tones        map[string]int `json:"tones"`
	MaxSentence  int            `json:"max_sentence"  example:"160"`
}

// RulesOf converts a compiled table into DTO rules, in application order
func RulesOf(t phrasebook.Table) []Rule {
	out := make([]Rule, 0, t.Len())
	t.Each(func(r phrasebook.Rule) {
		out = append(out, Rule{Pattern: r.Pattern, Replacement: r.Replacement})
	})
	return out
}
