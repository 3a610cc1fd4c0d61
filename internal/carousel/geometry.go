package carousel

import "math"

// Geometry is sampled on demand; implementations must not cache layout on
// behalf of the engine because widths change on resize.
type Geometry interface {
	// ViewportWidth reports the visible width, or false when not laid out yet.
	ViewportWidth() (float64, bool)
	// ItemBox reports the left edge and width of virtual item v.
	ItemBox(v int) (left, width float64, ok bool)
	// ScrollOffset reports the current physical scroll position.
	ScrollOffset() float64
}

// Viewport receives scroll commands. Smooth commands animate; the rest jump.
type Viewport interface {
	ScrollTo(offset float64, smooth bool)
}

// Offset returns the scroll offset that centers virtual item v in the
// viewport. Unavailable or non-finite geometry yields 0.
func Offset(g Geometry, v int) float64 {
	if g == nil {
		return 0
	}
	vw, ok := g.ViewportWidth()
	if !ok || !finite(vw) {
		return 0
	}
	left, width, ok := g.ItemBox(v)
	if !ok || !finite(left) || !finite(width) {
		return 0
	}
	off := left - (vw-width)/2
	if !finite(off) || off < 0 {
		return 0
	}
	return off
}

// nearestItem returns the virtual index whose center is closest to the
// viewport center. Ties resolve to the lowest index.
func nearestItem(g Geometry, total int) (int, bool) {
	vw, ok := g.ViewportWidth()
	if !ok || !finite(vw) {
		return 0, false
	}
	center := g.ScrollOffset() + vw/2
	if !finite(center) {
		return 0, false
	}

	best := -1
	bestDist := math.Inf(1)
	for v := 0; v < total; v++ {
		left, width, ok := g.ItemBox(v)
		if !ok || !finite(left) || !finite(width) {
			continue
		}
		if d := math.Abs(left + width/2 - center); d < bestDist {
			best, bestDist = v, d
		}
	}
	return best, best >= 0
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
