package engine

import (
	"strings"

	"github.com/prakritlab/prakrit-morph/internal/registry"
)

// match is one accepted suffix match: the registry entry plus the stem
// fragment left of the suffix.
type match struct {
	Entry    registry.SuffixEntry
	Fragment string
}

// matchSuffixes walks the registry tails in their precomputed order (length
// desc, priority desc, insertion order) and collects every viable match.
//
// An entry is viable when its pattern is a literal suffix of the form and the
// phoneme immediately before the suffix satisfies the entry's preceding
// constraint; a failed constraint skips the entry outright. Accepting a match
// permanently blocks every not-yet-examined pattern named in its Blocks set.
// Several non-blocked matches may survive; ambiguity is expected output.
func matchSuffixes(form string, tails []registry.SuffixEntry) []match {
	blocked := make(map[string]struct{})
	var out []match

	for _, entry := range tails {
		if _, ok := blocked[entry.Pattern]; ok {
			continue
		}
		if !strings.HasSuffix(form, entry.Pattern) {
			continue
		}

		fragment := form[:len(form)-len(entry.Pattern)]

		if len(entry.Preceding) > 0 {
			if fragment == "" || !entry.PrecededBy(lastPhoneme(fragment)) {
				continue
			}
		}

		for _, b := range entry.Blocks {
			blocked[b] = struct{}{}
		}
		out = append(out, match{Entry: entry, Fragment: fragment})
	}

	return out
}

// lastPhoneme returns the final rune of s as a string. The internal alphabet
// is single-rune phonemes (Harvard-Kyoto plus the candrabindu marker).
func lastPhoneme(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[len(runes)-1])
}
