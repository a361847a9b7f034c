package domain

import "testing"

func TestFeedbackStat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		correct         int64
		incorrect       int64
		wantRatio       float64
		wantSignificant bool
	}{
		{name: "empty", correct: 0, incorrect: 0, wantRatio: 0, wantSignificant: false},
		{name: "below threshold", correct: 2, incorrect: 0, wantRatio: 1, wantSignificant: false},
		{name: "at threshold", correct: 3, incorrect: 0, wantRatio: 1, wantSignificant: true},
		{name: "mixed", correct: 3, incorrect: 1, wantRatio: 0.75, wantSignificant: true},
		{name: "all wrong", correct: 0, incorrect: 5, wantRatio: 0, wantSignificant: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := FeedbackStat{Pattern: "hinto", Correct: tt.correct, Incorrect: tt.incorrect}
			if got := s.Ratio(); got != tt.wantRatio {
				t.Errorf("Ratio() = %v, want %v", got, tt.wantRatio)
			}
			if got := s.Significant(); got != tt.wantSignificant {
				t.Errorf("Significant() = %v, want %v", got, tt.wantSignificant)
			}
		})
	}
}

func TestCandidateVariants(t *testing.T) {
	t.Parallel()

	var c Candidate = &NounCandidate{
		SurfaceForm: "devehinto",
		Stem:        "deva",
		Suffix:      "hinto",
		Case:        CaseAblative,
		Number:      NumberSingular,
		Gender:      GenderMasculine,
		Confidence:  0.9,
		Source:      SourceEndingBasedGuess,
	}
	if c.Class() != WordClassNoun || c.Base() != "deva" || c.Ending() != "hinto" {
		t.Errorf("noun accessors: got class=%v base=%q ending=%q", c.Class(), c.Base(), c.Ending())
	}

	c = &VerbCandidate{
		SurfaceForm: "karoti",
		Root:        "kar",
		Suffix:      "ti",
		Tense:       TensePresent,
		Person:      PersonThird,
		Number:      NumberSingular,
		Confidence:  1.0,
		Source:      SourceAttestedRoot,
	}
	if c.Class() != WordClassVerb || c.Base() != "kar" || c.Ending() != "ti" {
		t.Errorf("verb accessors: got class=%v base=%q ending=%q", c.Class(), c.Base(), c.Ending())
	}

	// Variants are resolved by type switch, not key-presence checks.
	switch v := c.(type) {
	case *VerbCandidate:
		if v.Tense != TensePresent {
			t.Errorf("tense = %v, want present", v.Tense)
		}
	default:
		t.Fatalf("expected *VerbCandidate, got %T", c)
	}
}

func TestSourcePrecedence(t *testing.T) {
	t.Parallel()

	if !(SourceAttestedForm.Precedence() < SourceSandhiAnalysis.Precedence() &&
		SourceSandhiAnalysis.Precedence() < SourceEndingBasedGuess.Precedence()) {
		t.Error("source precedence order violated")
	}
	if SourceAttestedForm.Precedence() != SourceAttestedRoot.Precedence() {
		t.Error("attested_form and attested_root must share precedence")
	}
}
