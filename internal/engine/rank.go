package engine

import (
	"slices"
)

// rank orders candidates best-first: higher confidence wins, then the more
// trustworthy source, then the longer suffix, then registry order. The sort
// is stable, so equally-ranked candidates keep their production order and
// repeated runs over the same input agree.
func rank(cands []scored) {
	slices.SortStableFunc(cands, func(a, b scored) int {
		switch {
		case a.cand.Score() > b.cand.Score():
			return -1
		case a.cand.Score() < b.cand.Score():
			return 1
		}

		ap, bp := a.cand.Origin().Precedence(), b.cand.Origin().Precedence()
		if ap != bp {
			return ap - bp
		}

		al, bl := len(a.cand.Ending()), len(b.cand.Ending())
		if al != bl {
			return bl - al
		}

		ao, bo := rankOrder(a), rankOrder(b)
		return ao - bo
	})
}

func rankOrder(sc scored) int {
	if sc.entry == nil {
		return -1
	}
	return sc.entry.Order()
}
