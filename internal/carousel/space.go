package carousel

// Copies is the number of times the item set is repeated in the virtual list.
const Copies = 3

// Space maps N logical items onto Copies*N virtual slots. The middle copy
// occupies [N, 2N) and the steady-state window is (N/2, 5N/2).
type Space struct {
	n int
}

// NewSpace returns the virtual index space for n items.
func NewSpace(n int) (Space, error) {
	if n < 1 {
		return Space{}, ErrNoItems
	}
	return Space{n: n}, nil
}

// N returns the logical item count.
func (s Space) N() int { return s.n }

// Len returns the number of virtual slots.
func (s Space) Len() int { return s.n * Copies }

// Logical folds a virtual index back onto [0, N).
func (s Space) Logical(v int) int {
	return wrap(v, s.n)
}

// Middle returns the middle-copy virtual index for logical index i.
func (s Space) Middle(i int) int {
	return s.n + wrap(i, s.n)
}

// Candidates returns one virtual index per copy for logical index i, ascending.
func (s Space) Candidates(i int) [Copies]int {
	r := wrap(i, s.n)
	var out [Copies]int
	for c := range out {
		out[c] = c*s.n + r
	}
	return out
}

// Nearest returns the candidate for logical index i numerically closest to
// from. Ties resolve to the lower virtual index.
func (s Space) Nearest(i, from int) int {
	cands := s.Candidates(i)
	best := cands[0]
	bestDist := abs(best - from)
	for _, c := range cands[1:] {
		if d := abs(c - from); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// LowerBound is floor(0.5N); a virtual index at or below it is rebased forward.
func (s Space) LowerBound() int { return s.n / 2 }

// UpperBound is floor(2.5N); a virtual index at or above it is rebased backward.
func (s Space) UpperBound() int { return s.n * 5 / 2 }

// NeedsRebase reports whether v has drifted out of the steady-state window.
func (s Space) NeedsRebase(v int) bool {
	return v <= s.LowerBound() || v >= s.UpperBound()
}

// Rebase moves v one copy toward the middle when it sits on a boundary.
func (s Space) Rebase(v int) int {
	switch {
	case v <= s.LowerBound():
		return v + s.n
	case v >= s.UpperBound():
		return v - s.n
	default:
		return v
	}
}

// Repeat concatenates Copies copies of items.
func Repeat[T any](items []T) []T {
	out := make([]T, 0, len(items)*Copies)
	for range Copies {
		out = append(out, items...)
	}
	return out
}

func wrap(v, n int) int {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
