package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/prakritlab/prakrit-morph/internal/domain"
	"github.com/prakritlab/prakrit-morph/internal/registry"
)

// Scoring adjustments. The pipeline clamps the running total to [0,1] after
// every step, so compounded bonuses can never push a score out of range.
const (
	unattestedPenalty = 0.10
	sandhiBonus       = 0.20
	stemBonus         = 0.15
	feedbackBonus     = 0.10
	feedbackPenalty   = 0.15

	feedbackHighRatio = 0.8
	feedbackLowRatio  = 0.3
)

// scored carries a candidate through scoring and ranking along with the
// registry entry that produced it (nil for attested-form and bare-root
// candidates) and whether the reconstructed stem was attested.
type scored struct {
	cand         domain.Candidate
	entry        *registry.SuffixEntry
	stemAttested bool
}

// score runs the confidence pipeline for one candidate.
//
// Attested sources pin the score to 1.0 and skip every other adjustment.
// Everything else starts from the matched entry's base confidence. Sandhi
// candidates take the sandhi bonus; plain guesses either earn the attested
// stem bonus or take the unattested penalty, never both. Feedback for the
// suffix pattern adjusts last.
func (s *Service) score(ctx context.Context, sc *scored) {
	switch sc.cand.Origin() {
	case domain.SourceAttestedForm, domain.SourceAttestedRoot:
		setConfidence(sc.cand, 1.0)
		return
	}

	if sc.entry == nil {
		// Cannot happen for guess/sandhi candidates; keep the zero score
		// rather than inventing one.
		return
	}

	conf := clamp01(sc.entry.BaseConfidence)

	switch {
	case sc.cand.Origin() == domain.SourceSandhiAnalysis:
		conf = clamp01(conf + sandhiBonus)
	case sc.stemAttested:
		conf = clamp01(conf + stemBonus)
		appendNote(sc.cand, fmt.Sprintf("stem %q attested (+%.2f)", sc.cand.Base(), stemBonus))
	default:
		conf = clamp01(conf - unattestedPenalty)
	}

	conf = s.applyFeedback(ctx, sc, conf)

	setConfidence(sc.cand, conf)
}

// applyFeedback adjusts conf by the per-suffix feedback accuracy. A store
// failure degrades to "no adjustment": losing the signal beats failing the
// parse.
func (s *Service) applyFeedback(ctx context.Context, sc *scored, conf float64) float64 {
	stat, err := s.feedback.Get(ctx, sc.entry.Pattern)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "feedback store unavailable, skipping adjustment",
				"pattern", sc.entry.Pattern, "error", err)
		}
		return conf
	}
	if !stat.Significant() {
		return conf
	}

	ratio := stat.Ratio()
	switch {
	case ratio > feedbackHighRatio:
		conf = clamp01(conf + feedbackBonus)
		appendNote(sc.cand, fmt.Sprintf("feedback: %.0f%% correct over %d samples (+%.2f)",
			ratio*100, stat.Total(), feedbackBonus))
	case ratio < feedbackLowRatio:
		conf = clamp01(conf - feedbackPenalty)
		appendNote(sc.cand, fmt.Sprintf("feedback: %.0f%% correct over %d samples (-%.2f)",
			ratio*100, stat.Total(), feedbackPenalty))
	}
	return conf
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func setConfidence(c domain.Candidate, conf float64) {
	switch v := c.(type) {
	case *domain.NounCandidate:
		v.Confidence = conf
	case *domain.VerbCandidate:
		v.Confidence = conf
	}
}

func appendNote(c domain.Candidate, note string) {
	switch v := c.(type) {
	case *domain.NounCandidate:
		v.Notes = append(v.Notes, note)
	case *domain.VerbCandidate:
		v.Notes = append(v.Notes, note)
	}
}
