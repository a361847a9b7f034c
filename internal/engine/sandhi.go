package engine

import (
	"context"
	"strings"
)

// sandhiRule reverses one historically forward vowel fusion at the stem/suffix
// boundary: the surface vowel the fusion produced maps back to the deep vowel
// of the root (Harvard-Kyoto: I/U/A are the long vowels).
type sandhiRule struct {
	Surface string
	Deep    string
}

// sandhiRules is ordered; the first rule whose reversed root is attested wins
// and ends the attempt for that candidate. Consonant sandhi is not reversed
// in this version.
var sandhiRules = []sandhiRule{
	{Surface: "e", Deep: "I"},
	{Surface: "o", Deep: "U"},
	{Surface: "a", Deep: "A"},
}

// reverseSandhi tries each vowel-correspondence rule against the final
// phoneme of fragment and returns the first alternate root the attested-root
// index confirms. No attestation, no candidate: unattested sandhi guesses are
// suppressed rather than surfaced with low confidence.
func (s *Service) reverseSandhi(ctx context.Context, fragment string) (root string, rule sandhiRule, ok bool) {
	for _, r := range sandhiRules {
		if !strings.HasSuffix(fragment, r.Surface) {
			continue
		}
		alternate := fragment[:len(fragment)-len(r.Surface)] + r.Deep
		if s.lookupRootSafe(ctx, alternate) {
			return alternate, r, true
		}
	}
	return "", sandhiRule{}, false
}
