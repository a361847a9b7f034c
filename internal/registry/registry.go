// Package registry holds the immutable suffix-pattern table the matcher
// consumes. A Registry is constructed once at startup, validated, and shared
// read-only across concurrent parses; reloading means building a new Registry
// and swapping the reference.
package registry

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/prakritlab/prakrit-morph/internal/domain"
)

//go:embed suffixes.json
var defaultData []byte

// NounFeatures are the grammatical readings a noun suffix licenses. A single
// suffix may be ambiguous across cases, numbers, and genders; the engine fans
// the combinations out into separate candidates.
type NounFeatures struct {
	Cases   []domain.Case
	Numbers []domain.Number
	Genders []domain.Gender
}

// VerbFeatures are the grammatical readings of a verb ending.
type VerbFeatures struct {
	Tense  domain.Tense
	Person domain.Person
	Number domain.Number
}

// SuffixEntry is one pattern in the registry. Exactly one of Noun/Verb is
// non-nil, matching Class.
type SuffixEntry struct {
	Pattern string
	Class   domain.WordClass
	Noun    *NounFeatures
	Verb    *VerbFeatures

	// Preceding, when non-empty, restricts the phoneme immediately before
	// the suffix; a form failing the constraint is skipped outright.
	Preceding []string

	// Blocks lists shorter patterns suppressed once this one matches.
	Blocks []string

	Priority       int
	BaseConfidence float64

	// order is the insertion index within the word class, the final
	// tie-break of the match ordering.
	order int
}

// Order is the entry's insertion index within its word class.
func (e SuffixEntry) Order() int { return e.order }

// PrecededBy reports whether the given phoneme satisfies the entry's
// preceding-context constraint. Entries without a constraint accept anything.
func (e SuffixEntry) PrecededBy(phoneme string) bool {
	if len(e.Preceding) == 0 {
		return true
	}
	return slices.Contains(e.Preceding, phoneme)
}

// Registry is the process-wide suffix table. Immutable after Load.
type Registry struct {
	tails map[domain.WordClass][]SuffixEntry
}

// Tails returns the entries for a word class in match order: pattern length
// descending, then priority descending, then insertion order. The order is
// computed once at load time. Callers must not mutate the returned slice.
func (r *Registry) Tails(class domain.WordClass) []SuffixEntry {
	return r.tails[class]
}

// Len returns the number of entries registered for a word class.
func (r *Registry) Len(class domain.WordClass) int {
	return len(r.tails[class])
}

// suffixFile is the on-disk shape of the registry source.
type suffixFile struct {
	Noun []suffixRecord `json:"noun"`
	Verb []suffixRecord `json:"verb"`
}

type suffixRecord struct {
	Pattern    string   `json:"pattern"`
	Cases      []string `json:"cases,omitempty"`
	Numbers    []string `json:"numbers,omitempty"`
	Genders    []string `json:"genders,omitempty"`
	Tense      string   `json:"tense,omitempty"`
	Person     string   `json:"person,omitempty"`
	Number     string   `json:"number,omitempty"`
	Preceding  []string `json:"preceding,omitempty"`
	Blocks     []string `json:"blocks,omitempty"`
	Priority   int      `json:"priority"`
	Confidence float64  `json:"confidence"`
}

// Load reads a suffix table from r and builds a validated Registry. Any
// malformed entry, or a word class with zero entries, fails the whole load:
// the engine must not serve parses from a partially loaded table.
func Load(r io.Reader) (*Registry, error) {
	var file suffixFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrRegistryLoad, err)
	}

	reg := &Registry{tails: make(map[domain.WordClass][]SuffixEntry, 2)}

	nouns, err := buildEntries(domain.WordClassNoun, file.Noun)
	if err != nil {
		return nil, err
	}
	verbs, err := buildEntries(domain.WordClassVerb, file.Verb)
	if err != nil {
		return nil, err
	}

	reg.tails[domain.WordClassNoun] = nouns
	reg.tails[domain.WordClassVerb] = verbs
	return reg, nil
}

// Default builds a Registry from the embedded suffix table.
func Default() (*Registry, error) {
	return Load(bytes.NewReader(defaultData))
}

func buildEntries(class domain.WordClass, records []suffixRecord) ([]SuffixEntry, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: word class %s has no entries", domain.ErrRegistryLoad, class)
	}

	seen := make(map[string]struct{}, len(records))
	entries := make([]SuffixEntry, 0, len(records))

	for i, rec := range records {
		if rec.Pattern == "" {
			return nil, fmt.Errorf("%w: %s entry %d: empty pattern", domain.ErrRegistryLoad, class, i)
		}
		if _, dup := seen[rec.Pattern]; dup {
			return nil, fmt.Errorf("%w: %s entry %d: duplicate pattern %q", domain.ErrRegistryLoad, class, i, rec.Pattern)
		}
		seen[rec.Pattern] = struct{}{}

		if rec.Confidence < 0 || rec.Confidence > 1 {
			return nil, fmt.Errorf("%w: %s pattern %q: confidence %v out of [0,1]",
				domain.ErrRegistryLoad, class, rec.Pattern, rec.Confidence)
		}

		entry := SuffixEntry{
			Pattern:        rec.Pattern,
			Class:          class,
			Preceding:      rec.Preceding,
			Blocks:         rec.Blocks,
			Priority:       rec.Priority,
			BaseConfidence: rec.Confidence,
			order:          i,
		}

		switch class {
		case domain.WordClassNoun:
			if len(rec.Cases) == 0 || len(rec.Numbers) == 0 || len(rec.Genders) == 0 {
				return nil, fmt.Errorf("%w: noun pattern %q: missing case/number/gender readings",
					domain.ErrRegistryLoad, rec.Pattern)
			}
			entry.Noun = &NounFeatures{
				Cases:   toEnum[domain.Case](rec.Cases),
				Numbers: toEnum[domain.Number](rec.Numbers),
				Genders: toEnum[domain.Gender](rec.Genders),
			}
		case domain.WordClassVerb:
			if rec.Tense == "" || rec.Person == "" || rec.Number == "" {
				return nil, fmt.Errorf("%w: verb pattern %q: missing tense/person/number",
					domain.ErrRegistryLoad, rec.Pattern)
			}
			entry.Verb = &VerbFeatures{
				Tense:  domain.Tense(rec.Tense),
				Person: domain.Person(rec.Person),
				Number: domain.Number(rec.Number),
			}
		}

		entries = append(entries, entry)
	}

	// Match order: length descending, priority descending, insertion order.
	// The stable sort preserves insertion order for equal (length, priority).
	slices.SortStableFunc(entries, func(a, b SuffixEntry) int {
		if d := len(b.Pattern) - len(a.Pattern); d != 0 {
			return d
		}
		return b.Priority - a.Priority
	})

	return entries, nil
}

func toEnum[T ~string](values []string) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}
