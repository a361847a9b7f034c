package domain

import (
	"github.com/google/uuid"
)

// Candidate is one possible analysis of a surface form. The two concrete
// variants are NounCandidate and VerbCandidate; consumers resolve the
// grammatical detail with a type switch rather than key-presence checks.
type Candidate interface {
	// Class reports which inflection system produced the candidate.
	Class() WordClass
	// Base is the canonical stem (nouns) or root (verbs).
	Base() string
	// Ending is the matched suffix pattern; empty for bare roots.
	Ending() string
	// Score is the confidence in [0,1].
	Score() float64
	// Origin tags how the candidate was obtained.
	Origin() Source
	// Provenance returns the ordered explanatory notes.
	Provenance() []string
}

// NounCandidate is a nominal analysis: stem plus case/number/gender.
type NounCandidate struct {
	SurfaceForm string
	Stem        string
	Suffix      string
	Case        Case
	Number      Number
	Gender      Gender
	Confidence  float64
	Source      Source
	Notes       []string
}

func (c *NounCandidate) Class() WordClass     { return WordClassNoun }
func (c *NounCandidate) Base() string         { return c.Stem }
func (c *NounCandidate) Ending() string       { return c.Suffix }
func (c *NounCandidate) Score() float64       { return c.Confidence }
func (c *NounCandidate) Origin() Source       { return c.Source }
func (c *NounCandidate) Provenance() []string { return c.Notes }

// VerbCandidate is a verbal analysis: root plus tense/person/number.
type VerbCandidate struct {
	SurfaceForm string
	Root        string
	Suffix      string
	Tense       Tense
	Person      Person
	Number      Number
	Confidence  float64
	Source      Source
	Notes       []string
}

func (c *VerbCandidate) Class() WordClass     { return WordClassVerb }
func (c *VerbCandidate) Base() string         { return c.Root }
func (c *VerbCandidate) Ending() string       { return c.Suffix }
func (c *VerbCandidate) Score() float64       { return c.Confidence }
func (c *VerbCandidate) Origin() Source       { return c.Source }
func (c *VerbCandidate) Provenance() []string { return c.Notes }

// AnalysisResult is the sole artifact handed to callers: the candidates for
// one surface form, ordered by confidence descending.
type AnalysisResult struct {
	SurfaceForm    string
	NormalizedForm string
	Candidates     []Candidate
	// Count is the total number of candidates found, before any top-K bound.
	Count int
}

// AttestedForm is a dictionary hit for a full inflected form, with whatever
// grammatical metadata the index has for it. Base is the stem for nouns and
// the root for verbs. Nil pointers mean the index has no value recorded.
type AttestedForm struct {
	ID     uuid.UUID
	Form   string
	Class  WordClass
	Base   string
	Case   *Case
	Number *Number
	Gender *Gender
	Tense  *Tense
	Person *Person
}

// FeedbackMinSamples is the sample count below which a feedback accuracy
// ratio carries no signal.
const FeedbackMinSamples = 3

// FeedbackStat is the per-suffix correctness tally read from the feedback
// store. Counts are monotonically non-decreasing; the store owns mutation.
type FeedbackStat struct {
	Pattern   string
	Correct   int64
	Incorrect int64
}

// Total is the number of feedback samples recorded for the pattern.
func (s FeedbackStat) Total() int64 { return s.Correct + s.Incorrect }

// Ratio is the fraction of correct outcomes; 0 when there are no samples.
func (s FeedbackStat) Ratio() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(total)
}

// Significant reports whether the ratio is backed by enough samples to act on.
func (s FeedbackStat) Significant() bool { return s.Total() >= FeedbackMinSamples }
