package domain

// WordClass distinguishes the two inflection systems the analyzer knows.
type WordClass string

const (
	WordClassNoun WordClass = "NOUN"
	WordClassVerb WordClass = "VERB"
)

func (c WordClass) String() string { return string(c) }

func (c WordClass) IsValid() bool {
	switch c {
	case WordClassNoun, WordClassVerb:
		return true
	}
	return false
}

// Source tags how a candidate analysis was obtained. The values double as
// the wire representation handed to callers, hence snake_case.
type Source string

const (
	SourceAttestedForm     Source = "attested_form"
	SourceAttestedRoot     Source = "attested_root"
	SourceEndingBasedGuess Source = "ending_based_guess"
	SourceSandhiAnalysis   Source = "sandhi_analysis"
)

func (s Source) String() string { return string(s) }

func (s Source) IsValid() bool {
	switch s {
	case SourceAttestedForm, SourceAttestedRoot, SourceEndingBasedGuess, SourceSandhiAnalysis:
		return true
	}
	return false
}

// Precedence orders sources for tie-breaking: attested beats sandhi beats
// guess. Lower value sorts first.
func (s Source) Precedence() int {
	switch s {
	case SourceAttestedForm, SourceAttestedRoot:
		return 0
	case SourceSandhiAnalysis:
		return 1
	default:
		return 2
	}
}

// Case is a nominal case label (lowercase, matching reference grammars).
type Case string

const (
	CaseNominative   Case = "nominative"
	CaseAccusative   Case = "accusative"
	CaseInstrumental Case = "instrumental"
	CaseDative       Case = "dative"
	CaseAblative     Case = "ablative"
	CaseGenitive     Case = "genitive"
	CaseLocative     Case = "locative"
	CaseVocative     Case = "vocative"
)

func (c Case) String() string { return string(c) }

// Number is a grammatical number label. Suffixes whose number reading depends
// on the case carry qualified values like "singular (inst)" straight from the
// suffix table.
type Number string

const (
	NumberSingular Number = "singular"
	NumberPlural   Number = "plural"
	// NumberAll marks forms identical across numbers (Prakrit past tense).
	NumberAll Number = "all"
)

func (n Number) String() string { return string(n) }

// Gender is a grammatical gender label.
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeuter    Gender = "neuter"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMasculine, GenderFeminine, GenderNeuter:
		return true
	}
	return false
}

// Tense is a verbal tense label.
type Tense string

const (
	TensePresent Tense = "present"
	TenseFuture  Tense = "future"
	TensePast    Tense = "past"
)

func (t Tense) String() string { return string(t) }

// Person is a verbal person label.
type Person string

const (
	PersonFirst  Person = "first"
	PersonSecond Person = "second"
	PersonThird  Person = "third"
	// PersonAll marks forms identical across persons (Prakrit past tense).
	PersonAll Person = "all"
)

func (p Person) String() string { return string(p) }
