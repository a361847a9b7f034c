package engine

import "strings"

// verbPrefix pairs a Prakrit verbal prefix with its Sanskrit shape, used in
// provenance notes.
type verbPrefix struct {
	Prakrit  string
	Sanskrit string
}

// verbPrefixes is ordered longest first so paDi wins over pa.
var verbPrefixes = []verbPrefix{
	{Prakrit: "paDi", Sanskrit: "prati"},
	{Prakrit: "pari", Sanskrit: "pari"},
	{Prakrit: "aNu", Sanskrit: "anu"},
	{Prakrit: "saM", Sanskrit: "sam"},
	{Prakrit: "pa", Sanskrit: "pra"},
	{Prakrit: "vi", Sanskrit: "vi"},
	{Prakrit: "ni", Sanskrit: "ni"},
	{Prakrit: "A", Sanskrit: "A"},
	{Prakrit: "u", Sanskrit: "ud"},
}

// splitPrefix detaches a known verbal prefix from the fragment. The remainder
// must keep at least two phonemes, otherwise the split is rejected.
func splitPrefix(fragment string) (verbPrefix, string, bool) {
	for _, p := range verbPrefixes {
		rest, found := strings.CutPrefix(fragment, p.Prakrit)
		if found && len([]rune(rest)) >= 2 {
			return p, rest, true
		}
	}
	return verbPrefix{}, "", false
}
