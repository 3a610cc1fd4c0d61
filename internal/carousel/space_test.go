package carousel

import (
	"math"
	"testing"
)

func TestNewSpace_RejectsZero(t *testing.T) {
	if _, err := NewSpace(0); err != ErrNoItems {
		t.Fatalf("NewSpace(0) error = %v, want ErrNoItems", err)
	}
}

func TestSpace_Candidates(t *testing.T) {
	s, _ := NewSpace(4)
	got := s.Candidates(1)
	want := [Copies]int{1, 5, 9}
	if got != want {
		t.Fatalf("Candidates(1) = %v, want %v", got, want)
	}
	if got := s.Candidates(-1); got != [Copies]int{3, 7, 11} {
		t.Fatalf("Candidates(-1) = %v, want [3 7 11]", got)
	}
}

func TestSpace_Nearest(t *testing.T) {
	s, _ := NewSpace(3)
	cases := []struct {
		name    string
		i, from int
		want    int
	}{
		{"middle copy", 1, 3, 4},
		{"forward across copy edge", 0, 5, 6},
		{"backward across copy edge", 2, 3, 2},
		{"last copy", 1, 8, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Nearest(tc.i, tc.from); got != tc.want {
				t.Fatalf("Nearest(%d, %d) = %d, want %d", tc.i, tc.from, got, tc.want)
			}
		})
	}
}

func TestSpace_NearestTieTakesLowest(t *testing.T) {
	s, _ := NewSpace(2)
	if got := s.Nearest(0, 1); got != 0 {
		t.Fatalf("Nearest(0, 1) = %d, want 0", got)
	}
}

func TestSpace_Bounds(t *testing.T) {
	cases := []struct {
		n, lower, upper int
	}{
		{1, 0, 2},
		{2, 1, 5},
		{3, 1, 7},
		{10, 5, 25},
	}
	for _, tc := range cases {
		s, _ := NewSpace(tc.n)
		if s.LowerBound() != tc.lower || s.UpperBound() != tc.upper {
			t.Fatalf("N=%d bounds = (%d, %d), want (%d, %d)", tc.n, s.LowerBound(), s.UpperBound(), tc.lower, tc.upper)
		}
	}
}

func TestSpace_RebaseLandsInsideWindow(t *testing.T) {
	for n := 1; n <= 12; n++ {
		s, _ := NewSpace(n)
		for v := 0; v < s.Len(); v++ {
			r := s.Rebase(v)
			if s.Logical(r) != s.Logical(v) {
				t.Fatalf("N=%d Rebase(%d) = %d changes logical index", n, v, r)
			}
			if s.NeedsRebase(r) {
				t.Fatalf("N=%d Rebase(%d) = %d still outside window", n, v, r)
			}
		}
	}
}

func TestSpace_RebaseBoundaryValues(t *testing.T) {
	s, _ := NewSpace(10)
	if got := s.Rebase(4); got != 14 {
		t.Fatalf("Rebase(4) = %d, want 14", got)
	}
	if got := s.Rebase(26); got != 16 {
		t.Fatalf("Rebase(26) = %d, want 16", got)
	}
	if got := s.Rebase(15); got != 15 {
		t.Fatalf("Rebase(15) = %d, want 15", got)
	}
}

func TestRepeat(t *testing.T) {
	got := Repeat([]string{"A", "B"})
	want := []string{"A", "B", "A", "B", "A", "B"}
	if len(got) != len(want) {
		t.Fatalf("Repeat len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Repeat[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOffset(t *testing.T) {
	g := &stripGeometry{viewport: 100, width: 40, gap: 10, ready: true}

	if got := Offset(g, 0); got != 0 {
		t.Fatalf("Offset(0) = %v, want clamped 0", got)
	}
	// left 150, (100-40)/2 = 30
	if got := Offset(g, 3); got != 120 {
		t.Fatalf("Offset(3) = %v, want 120", got)
	}

	g.ready = false
	if got := Offset(g, 3); got != 0 {
		t.Fatalf("Offset without layout = %v, want 0", got)
	}

	g.ready = true
	g.viewport = math.NaN()
	if got := Offset(g, 3); got != 0 {
		t.Fatalf("Offset with NaN viewport = %v, want 0", got)
	}
	if got := Offset(nil, 3); got != 0 {
		t.Fatalf("Offset(nil) = %v, want 0", got)
	}
}

func TestNearestItem(t *testing.T) {
	g := &stripGeometry{viewport: 100, width: 40, gap: 10, ready: true}
	g.offset = Offset(g, 7)
	if v, ok := nearestItem(g, 9); !ok || v != 7 {
		t.Fatalf("nearestItem = (%d, %v), want (7, true)", v, ok)
	}

	// Exactly between items 2 and 3: lowest wins.
	g.offset = (Offset(g, 2) + Offset(g, 3)) / 2
	if v, _ := nearestItem(g, 9); v != 2 {
		t.Fatalf("nearestItem on tie = %d, want 2", v)
	}

	g.ready = false
	if _, ok := nearestItem(g, 9); ok {
		t.Fatalf("nearestItem without layout reported ok")
	}
}
