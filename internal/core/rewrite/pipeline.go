// Package rewrite turns stiff text into plainer text with deterministic string stages
// Pipeline order
// 1 trim and normalize spacing and line endings
// 2 de-stiffen connectors and vocabulary
// 3 apply the tone table
// 4 optionally split long sentences at a middle comma
// 5 optionally fold contractions
// 6 prepend the header
package rewrite

import (
	"context"
	"strings"

	"writer/internal/core/phrasebook"
	perr "writer/internal/platform/errors"
	"writer/internal/platform/logger"
)

// Tone re-exports the phrasebook tone so callers only import rewrite
type Tone = phrasebook.Tone

// ErrInvalidInput is returned when the text is missing or blank
var ErrInvalidInput = perr.New(perr.ErrorCodeValidation, "Text is required.")

// Request is the immutable input to a single rewrite
type Request struct {
	Text               string
	Tone               Tone
	Contractions       bool
	BreakLongSentences bool
}

// NewRequest returns a request with the default options (neutral, contractions, splitting)
func NewRequest(text string) Request {
	return Request{
		Text:               text,
		Tone:               phrasebook.Neutral,
		Contractions:       true,
		BreakLongSentences: true,
	}
}

// Result is the rewritten text with the header prepended
type Result struct {
	Result string
}

// stage is one pure step; on decides whether it runs for a request
type stage struct {
	name string
	on   func(Request) bool
	run  func(string, Request) string
}

func always(Request) bool { return true }

// Pipeline holds the compiled tables and settings; safe for concurrent use
type Pipeline struct {
	book        *phrasebook.Book
	maxSentence int
	header      string
	headerSet   bool
	stages      []stage
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithPhrasebook swaps the compiled tables
func WithPhrasebook(b *phrasebook.Book) Option {
	return func(p *Pipeline) {
		if b != nil {
			p.book = b
		}
	}
}

// WithMaxSentence sets the splitter threshold; values below 1 keep the default
func WithMaxSentence(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.maxSentence = n
		}
	}
}

// WithHeader overrides the header prepended to every result; "" drops it
func WithHeader(h string) Option {
	return func(p *Pipeline) {
		p.header = h
		p.headerSet = true
	}
}

// New builds a Pipeline over the default phrasebook
func New(opts ...Option) *Pipeline {
	p := &Pipeline{maxSentence: DefaultMaxSentence}
	for _, o := range opts {
		o(p)
	}
	if p.book == nil {
		p.book = phrasebook.Default()
	}
	if !p.headerSet {
		p.header = p.book.Header
	}

	// order is fixed here; requests only toggle enablement
	p.stages = []stage{
		{name: "normalize", on: always, run: func(s string, _ Request) string {
			return Normalize(s)
		}},
		{name: "destiffen", on: always, run: func(s string, _ Request) string {
			return Substitute(s, p.book.Destiffen)
		}},
		{name: "tone", on: always, run: func(s string, r Request) string {
			return Substitute(s, p.book.Tone(r.Tone))
		}},
		{name: "split", on: func(r Request) bool { return r.BreakLongSentences }, run: func(s string, _ Request) string {
			return SplitLongSentences(s, p.maxSentence)
		}},
		{name: "contractions", on: func(r Request) bool { return r.Contractions }, run: func(s string, _ Request) string {
			return Substitute(s, p.book.Contractions)
		}},
	}
	return p
}

// Phrasebook returns the tables the pipeline runs with
func (p *Pipeline) Phrasebook() *phrasebook.Book { return p.book }

// MaxSentence returns the splitter threshold
func (p *Pipeline) MaxSentence() int { return p.maxSentence }

// Header returns the text prepended to every result
func (p *Pipeline) Header() string { return p.header }

// Rewrite validates req and runs every enabled stage in order
func (p *Pipeline) Rewrite(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return Result{}, ErrInvalidInput
	}

	t := strings.TrimSpace(req.Text)
	ran := make([]string, 0, len(p.stages))
	for _, st := range p.stages {
		if !st.on(req) {
			continue
		}
		t = st.run(t, req)
		ran = append(ran, st.name)
	}

	logger.C(ctx).Debug().
		Str("tone", string(req.Tone)).
		Strs("stages", ran).
		Int("in_len", len(req.Text)).
		Int("out_len", len(t)).
		Msg("rewrite done")

	return Result{Result: p.header + t}, nil
}
