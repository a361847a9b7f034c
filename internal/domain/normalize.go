package domain

import (
	"fmt"
	"strings"
)

// MaxFormLength bounds surface form input (defense against pathological input).
const MaxFormLength = 200

// Characters that cannot occur in Prakrit: vocalic R (covers Sanskrit ṛ/ṝ/ḷ
// sequences), visarga, and the retroflex sibilant. Harvard-Kyoto notation.
var forbiddenChars = map[rune]string{
	'R': "vocalic R",
	'H': "visarga",
	'S': "retroflex S",
}

// consonant stops and approximants that force anusvara (M) to surface as n.
const anusvaraAssimilating = "kgcjTDtdnpbmyrlvszh"

// NormalizeForm prepares an already-transliterated Harvard-Kyoto form for
// analysis: trims whitespace and assimilates anusvara (M) to n before a stop.
// Full script conversion is an external collaborator's job; this is only the
// last-mile cleanup the engine does for itself.
func NormalizeForm(form string) string {
	form = strings.TrimSpace(form)
	if form == "" {
		return ""
	}

	runes := []rune(form)
	var b strings.Builder
	b.Grow(len(form))
	for i, r := range runes {
		if r == 'M' && i+1 < len(runes) && strings.ContainsRune(anusvaraAssimilating, runes[i+1]) {
			b.WriteRune('n')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidateForm checks that a surface form is analyzable at all: non-empty,
// within length bounds, and restricted to the Harvard-Kyoto alphabet minus
// the characters Prakrit lacks. Input normalization proper happens upstream;
// this boundary check is defense in depth, so a failure means the caller
// handed us something that was never normalized.
func ValidateForm(form string) error {
	form = strings.TrimSpace(form)

	if form == "" {
		return NewValidationError("form", "must not be empty")
	}
	if len([]rune(form)) > MaxFormLength {
		return NewValidationError("form", fmt.Sprintf("exceeds %d characters", MaxFormLength))
	}

	for _, r := range form {
		if desc, bad := forbiddenChars[r]; bad {
			return NewValidationError("form",
				fmt.Sprintf("character %q (%s) does not occur in Prakrit", r, desc))
		}
		if !isHKRune(r) {
			return NewValidationError("form",
				fmt.Sprintf("character %q is outside the Harvard-Kyoto alphabet", r))
		}
	}
	return nil
}

// isHKRune reports whether r belongs to the internal phonemic alphabet:
// ASCII letters, the candrabindu marker '~', and '_' (explicit hiatus).
func isHKRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r == '~' || r == '_':
		return true
	}
	return false
}
