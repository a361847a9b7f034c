package attested

import "github.com/prakritlab/prakrit-morph/internal/domain"

// Filter defines parameters for searching attested forms.
type Filter struct {
	// Class restricts results to one word class; nil means both.
	Class *domain.WordClass

	// Base filters by exact stem/root.
	Base *string

	// FormPrefix performs a LIKE 'prefix%' match on the surface form.
	FormPrefix *string

	// Limit is the maximum number of forms to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of forms to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
