// Package service implements the rewrite API facade over the core pipeline
package service

import (
	"context"
	"time"

	"writer/internal/core/phrasebook"
	"writer/internal/core/rewrite"
	perr "writer/internal/platform/errors"
	"writer/internal/platform/logger"
	"writer/internal/platform/metrics"
	pstrings "writer/internal/platform/strings"
	"writer/internal/services/api/rewrite/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Service is the concrete implementation of domain.Humanizer
type Service struct {
	p *rewrite.Pipeline

	runs    *prometheus.CounterVec
	latency *prometheus.HistogramVec
	size    *prometheus.HistogramVec
}

var _ domain.Humanizer = (*Service)(nil)

// New constructs a rewrite service; reg may be nil to skip metrics
func New(p *rewrite.Pipeline, reg *metrics.Registry) *Service {
	if p == nil {
		panic("rewrite.Service requires a non-nil Pipeline")
	}
	s := &Service{p: p}
	if reg != nil {
		s.runs = reg.Counter("rewrite_requests_total", "Rewrites by tone and outcome", "tone", "outcome")
		s.latency = reg.Histogram("rewrite_duration_seconds", "Rewrite pipeline latency",
			prometheus.ExponentialBuckets(0.00001, 4, 8), "tone")
		s.size = reg.Histogram("rewrite_input_bytes", "Size of submitted text",
			prometheus.ExponentialBuckets(16, 4, 8), "tone")
	}
	return s
}

// Humanize runs the pipeline for one request
func (s *Service) Humanize(ctx context.Context, in domain.HumanizeInput) (domain.HumanizeResult, error) {
	req := in.Request()
	tone := string(req.Tone)

	start := time.Now()
	res, err := s.p.Rewrite(ctx, req)
	s.observe(tone, err, time.Since(start), len(in.Text))
	if err != nil {
		logger.C(ctx).Debug().Err(err).Str("text", pstrings.Clip(in.Text, 40)).Msg("rewrite rejected")
		return domain.HumanizeResult{}, perr.WithOp(perr.WithField(err, "text"), "rewrite.humanize")
	}
	return domain.HumanizeResult{Result: res.Result}, nil
}

// Tones lists the tone tables in display order
func (s *Service) Tones() domain.TonesResp {
	book := s.p.Phrasebook()
	out := domain.TonesResp{
		Default: string(phrasebook.Neutral),
		Tones:   make([]domain.ToneInfo, 0, len(phrasebook.Tones)),
	}
	for _, t := range phrasebook.Tones {
		out.Tones = append(out.Tones, domain.ToneInfo{
			Name:  string(t),
			Rules: domain.RulesOf(book.Tone(t)),
		})
	}
	return out
}

// Phrasebook summarizes the tables the pipeline runs with
func (s *Service) Phrasebook() domain.PhrasebookInfo {
	book := s.p.Phrasebook()
	tones := make(map[string]int, len(phrasebook.Tones))
	for _, t := range phrasebook.Tones {
		tones[string(t)] = book.Tone(t).Len()
	}
	return domain.PhrasebookInfo{
		Version:      book.Version,
		Header:       s.p.Header(),
		Destiffen:    book.Destiffen.Len(),
		Contractions: book.Contractions.Len(),
		Tones:        tones,
		MaxSentence:  s.p.MaxSentence(),
	}
}

func (s *Service) observe(tone string, err error, took time.Duration, n int) {
	if s.runs == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "invalid"
	}
	s.runs.WithLabelValues(tone, outcome).Inc()
	s.latency.WithLabelValues(tone).Observe(took.Seconds())
	s.size.WithLabelValues(tone).Observe(float64(n))
}
