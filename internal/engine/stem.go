package engine

import (
	"strings"

	"github.com/prakritlab/prakrit-morph/internal/domain"
)

// stemTransform rebuilds the canonical stem from the fragment left of a
// suffix. Transforms are pure: same input, same output.
type stemTransform func(base string, gender domain.Gender) string

// nounStemTable maps each noun suffix to its declension-class transform.
// Suffixes absent from the table leave the fragment unchanged.
var nounStemTable = buildNounStemTable()

func buildNounStemTable() map[string]stemTransform {
	table := make(map[string]stemTransform)

	// Plural oblique suffixes attach to a lengthened stem vowel or to e:
	// deve-hinto, devA-hinto (a-stems), muNI-hi (i-stems), sAhU-su (u-stems).
	// Feminine long-vowel stems keep their length; masculine/neuter shorten.
	for _, suffix := range []string{"hinto", "sunto", "hi", "hiM", "hi~", "su", "suM"} {
		table[suffix] = func(base string, gender domain.Gender) string {
			switch {
			case strings.HasSuffix(base, "e"):
				return base[:len(base)-1] + "a"
			case strings.HasSuffix(base, "A"):
				if gender == domain.GenderFeminine {
					return base
				}
				return base[:len(base)-1] + "a"
			case strings.HasSuffix(base, "I"):
				if gender == domain.GenderFeminine {
					return base
				}
				return base[:len(base)-1] + "i"
			case strings.HasSuffix(base, "U"):
				if gender == domain.GenderFeminine {
					return base
				}
				return base[:len(base)-1] + "u"
			}
			return base
		}
	}

	// ssa/mmi/No attach directly to the short stem vowel.
	for _, suffix := range []string{"ssa", "mmi", "No"} {
		table[suffix] = func(base string, _ domain.Gender) string {
			if endsWithAny(base, "a", "i", "u") {
				return base
			}
			return base + "a"
		}
	}

	// Na/NaM follow the instrumental pattern: deve-Na (a-stem) or a
	// lengthened vowel that shortens back.
	for _, suffix := range []string{"Na", "NaM"} {
		table[suffix] = func(base string, _ domain.Gender) string {
			switch {
			case strings.HasSuffix(base, "e"):
				return base[:len(base)-1] + "a"
			case strings.HasSuffix(base, "A"):
				return base[:len(base)-1] + "a"
			case strings.HasSuffix(base, "I"):
				return base[:len(base)-1] + "i"
			case strings.HasSuffix(base, "U"):
				return base[:len(base)-1] + "u"
			}
			return base
		}
	}

	// tto attaches to any stem vowel, short or long.
	table["tto"] = func(base string, _ domain.Gender) string {
		if endsWithAny(base, "a", "i", "u", "A", "I", "U") {
			return base
		}
		return base + "a"
	}

	// Nominative o and e replace the a-stem's final vowel.
	table["o"] = func(base string, _ domain.Gender) string { return base + "a" }
	table["e"] = func(base string, _ domain.Gender) string { return base + "a" }

	// Accusative M attaches to the bare stem.
	table["M"] = func(base string, _ domain.Gender) string { return base }

	return table
}

// reconstructNounStem converts the fragment left of suffix into a canonical
// stem for the given gender. Unknown suffixes pass the fragment through.
func reconstructNounStem(base, suffix string, gender domain.Gender) string {
	if base == "" {
		return ""
	}
	transform, ok := nounStemTable[suffix]
	if !ok {
		return base
	}
	return transform(base, gender)
}

// reconstructVerbRoot converts the fragment left of a verb ending into a
// candidate root by stripping the thematic (joining) vowel before a
// consonant-initial ending: karo-ti → kar, hasa-nti → has. Vowel-initial
// endings attach to the root directly, and a result shorter than two
// phonemes falls back to the fragment.
func reconstructVerbRoot(fragment, suffix string) string {
	if fragment == "" || suffix == "" {
		return fragment
	}
	if isVowel(rune(suffix[0])) {
		return fragment
	}
	if endsWithAny(fragment, "a", "e", "o", "A") {
		stripped := fragment[:len(fragment)-1]
		if len([]rune(stripped)) >= 2 {
			return stripped
		}
	}
	return fragment
}

func endsWithAny(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'I', 'U':
		return true
	}
	return false
}
