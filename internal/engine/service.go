// Package engine implements morphological analysis of Prakrit surface forms:
// suffix matching against the registry, stem and root reconstruction, sandhi
// reversal, confidence scoring, and ranking.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prakritlab/prakrit-morph/internal/domain"
	"github.com/prakritlab/prakrit-morph/internal/registry"
)

// attestedIndex is the dictionary lookup surface the engine consumes.
// Implementations must be safe for concurrent use.
type attestedIndex interface {
	// LookupForm finds a fully inflected form; domain.ErrNotFound on miss.
	LookupForm(ctx context.Context, form string) (*domain.AttestedForm, error)
	// LookupRoot reports whether a verb root is attested.
	LookupRoot(ctx context.Context, root string) (bool, error)
	// LookupStem reports whether a noun stem is attested.
	LookupStem(ctx context.Context, stem string) (bool, error)
}

// feedbackStore serves per-suffix correctness tallies.
type feedbackStore interface {
	// Get returns the stat for a suffix pattern; domain.ErrNotFound when the
	// pattern has no recorded feedback.
	Get(ctx context.Context, pattern string) (domain.FeedbackStat, error)
}

const (
	defaultTopK       = 15
	defaultMaxMatches = 10
)

// Config bounds the analysis output. Zero values take the defaults.
type Config struct {
	// TopK is the default number of candidates returned per analysis.
	TopK int
	// MaxMatches caps how many suffix matches per word class are expanded
	// into candidates.
	MaxMatches int
}

// Service is the analysis engine. Stateless per call and safe for concurrent
// use; all mutable state lives behind the index and store interfaces.
type Service struct {
	log        *slog.Logger
	registry   *registry.Registry
	attested   attestedIndex
	feedback   feedbackStore
	topK       int
	maxMatches int
}

func NewService(log *slog.Logger, reg *registry.Registry, attested attestedIndex, feedback feedbackStore, cfg Config) *Service {
	if cfg.TopK <= 0 {
		cfg.TopK = defaultTopK
	}
	if cfg.MaxMatches <= 0 {
		cfg.MaxMatches = defaultMaxMatches
	}
	return &Service{
		log:        log.With("service", "engine"),
		registry:   reg,
		attested:   attested,
		feedback:   feedback,
		topK:       cfg.TopK,
		maxMatches: cfg.MaxMatches,
	}
}

// AnalyzeOptions narrows one analysis call.
type AnalyzeOptions struct {
	// Class restricts the analysis to one word class; nil analyzes both.
	Class *domain.WordClass
	// TopK overrides the service default when positive.
	TopK int
}

// ---------------------------------------------------------------------------
// Analyze
// ---------------------------------------------------------------------------

// Analyze parses one surface form and returns the ranked candidate analyses.
//
// The form is validated and normalized first; a dictionary hit for the whole
// form short-circuits suffix analysis for that word class. An empty candidate
// list is a valid result, not an error.
func (s *Service) Analyze(ctx context.Context, form string, opts AnalyzeOptions) (*domain.AnalysisResult, error) {
	if err := domain.ValidateForm(form); err != nil {
		return nil, fmt.Errorf("analyze %q: %w", form, err)
	}
	normalized := domain.NormalizeForm(form)

	attested := s.lookupFormSafe(ctx, normalized)

	var scoreds []scored
	for _, class := range []domain.WordClass{domain.WordClassNoun, domain.WordClassVerb} {
		if !classAllowed(opts.Class, class) {
			continue
		}
		if attested != nil && attested.Class == class {
			scoreds = append(scoreds, scored{cand: candidateFromAttested(normalized, attested)})
			continue
		}
		switch class {
		case domain.WordClassNoun:
			scoreds = append(scoreds, s.analyzeNoun(ctx, normalized)...)
		case domain.WordClassVerb:
			scoreds = append(scoreds, s.analyzeVerb(ctx, normalized)...)
		}
	}

	for i := range scoreds {
		s.score(ctx, &scoreds[i])
	}
	rank(scoreds)

	topK := s.topK
	if opts.TopK > 0 {
		topK = opts.TopK
	}

	count := len(scoreds)
	if len(scoreds) > topK {
		scoreds = scoreds[:topK]
	}

	candidates := make([]domain.Candidate, len(scoreds))
	for i, sc := range scoreds {
		candidates[i] = sc.cand
	}

	s.log.DebugContext(ctx, "form analyzed",
		"form", form, "normalized", normalized, "candidates", count)

	return &domain.AnalysisResult{
		SurfaceForm:    form,
		NormalizedForm: normalized,
		Candidates:     candidates,
		Count:          count,
	}, nil
}

// ---------------------------------------------------------------------------
// Noun analysis
// ---------------------------------------------------------------------------

// analyzeNoun expands every surviving suffix match into one candidate per
// licensed gender, case, and number reading. Candidates sharing a match and
// gender share the reconstructed stem and its attestation check.
func (s *Service) analyzeNoun(ctx context.Context, form string) []scored {
	matches := matchSuffixes(form, s.registry.Tails(domain.WordClassNoun))
	if len(matches) > s.maxMatches {
		matches = matches[:s.maxMatches]
	}

	var out []scored
	for _, m := range matches {
		if m.Fragment == "" {
			continue
		}
		entry := m.Entry
		for _, gender := range entry.Noun.Genders {
			stem := reconstructNounStem(m.Fragment, entry.Pattern, gender)
			// A one-phoneme stem is never a real nominal base.
			if len([]rune(stem)) < 2 {
				continue
			}
			stemAttested := s.lookupStemSafe(ctx, stem)
			for _, kase := range entry.Noun.Cases {
				for _, number := range entry.Noun.Numbers {
					cand := &domain.NounCandidate{
						SurfaceForm: form,
						Stem:        stem,
						Suffix:      entry.Pattern,
						Case:        kase,
						Number:      number,
						Gender:      gender,
						Source:      domain.SourceEndingBasedGuess,
					}
					out = append(out, scored{cand: cand, entry: &entry, stemAttested: stemAttested})
				}
			}
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Verb analysis
// ---------------------------------------------------------------------------

// analyzeVerb recognizes bare attested roots first, then expands suffix
// matches. Per match the root resolution escalates: direct attestation of the
// reconstructed root or the raw fragment, then a verbal-prefix split, then
// sandhi reversal, and finally an ending-based guess.
func (s *Service) analyzeVerb(ctx context.Context, form string) []scored {
	var out []scored

	if s.lookupRootSafe(ctx, form) {
		out = append(out, scored{cand: &domain.VerbCandidate{
			SurfaceForm: form,
			Root:        form,
			Source:      domain.SourceAttestedRoot,
			Notes:       []string{"bare root attested"},
		}})
	}

	matches := matchSuffixes(form, s.registry.Tails(domain.WordClassVerb))
	if len(matches) > s.maxMatches {
		matches = matches[:s.maxMatches]
	}

	for _, m := range matches {
		if m.Fragment == "" {
			continue
		}
		entry := m.Entry
		root := reconstructVerbRoot(m.Fragment, entry.Pattern)
		source := domain.SourceEndingBasedGuess
		var notes []string

		switch {
		case s.lookupRootSafe(ctx, root):
			source = domain.SourceAttestedRoot
		case root != m.Fragment && s.lookupRootSafe(ctx, m.Fragment):
			root = m.Fragment
			source = domain.SourceAttestedRoot
		default:
			if prefix, rest, ok := splitPrefix(root); ok && s.lookupRootSafe(ctx, rest) {
				source = domain.SourceAttestedRoot
				notes = append(notes, fmt.Sprintf("prefix %s (Skt. %s) + root %s",
					prefix.Prakrit, prefix.Sanskrit, rest))
			} else if alternate, rule, ok := s.reverseSandhi(ctx, root); ok {
				notes = append(notes, fmt.Sprintf("sandhi %s < %s", rule.Surface, rule.Deep))
				root = alternate
				source = domain.SourceSandhiAnalysis
			}
		}

		out = append(out, scored{
			cand: &domain.VerbCandidate{
				SurfaceForm: form,
				Root:        root,
				Suffix:      entry.Pattern,
				Tense:       entry.Verb.Tense,
				Person:      entry.Verb.Person,
				Number:      entry.Verb.Number,
				Source:      source,
				Notes:       notes,
			},
			entry: &entry,
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// Lookup helpers
// ---------------------------------------------------------------------------

// The lookup helpers degrade on store failure: a broken index turns into a
// miss with a warning, and the analysis proceeds on suffix evidence alone.

func (s *Service) lookupFormSafe(ctx context.Context, form string) *domain.AttestedForm {
	af, err := s.attested.LookupForm(ctx, form)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "attested form lookup failed", "form", form, "error", err)
		}
		return nil
	}
	return af
}

func (s *Service) lookupRootSafe(ctx context.Context, root string) bool {
	ok, err := s.attested.LookupRoot(ctx, root)
	if err != nil {
		s.log.WarnContext(ctx, "attested root lookup failed", "root", root, "error", err)
		return false
	}
	return ok
}

func (s *Service) lookupStemSafe(ctx context.Context, stem string) bool {
	ok, err := s.attested.LookupStem(ctx, stem)
	if err != nil {
		s.log.WarnContext(ctx, "attested stem lookup failed", "stem", stem, "error", err)
		return false
	}
	return ok
}

func classAllowed(want *domain.WordClass, class domain.WordClass) bool {
	return want == nil || *want == class
}

// candidateFromAttested builds the single full-confidence candidate for a
// dictionary hit on the whole form. Missing grammatical metadata stays at the
// zero value; the hit itself is the evidence.
func candidateFromAttested(form string, af *domain.AttestedForm) domain.Candidate {
	notes := []string{"form attested in dictionary"}
	switch af.Class {
	case domain.WordClassVerb:
		cand := &domain.VerbCandidate{
			SurfaceForm: form,
			Root:        af.Base,
			Source:      domain.SourceAttestedForm,
			Notes:       notes,
		}
		if af.Tense != nil {
			cand.Tense = *af.Tense
		}
		if af.Person != nil {
			cand.Person = *af.Person
		}
		if af.Number != nil {
			cand.Number = *af.Number
		}
		return cand
	default:
		cand := &domain.NounCandidate{
			SurfaceForm: form,
			Stem:        af.Base,
			Source:      domain.SourceAttestedForm,
			Notes:       notes,
		}
		if af.Case != nil {
			cand.Case = *af.Case
		}
		if af.Number != nil {
			cand.Number = *af.Number
		}
		if af.Gender != nil {
			cand.Gender = *af.Gender
		}
		return cand
	}
}
