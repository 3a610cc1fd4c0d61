package ui

import (
	"math"
	"time"
)

// Terminal width thresholds for responsive card sizing.
const (
	// LayoutCompactWidth is the threshold below which one card fills most of the strip.
	LayoutCompactWidth = 60

	// LayoutWideWidth is the threshold above which three cards share the strip.
	LayoutWideWidth = 120
)

// Strip dimensions, in cells.
const (
	cardGap       = 2
	cardMinWidth  = 16
	cardHeight    = 9
	stripPadding  = 2 // left/right margin around each carousel
	wheelStep     = 6 // columns per wheel notch or H/L press
	sectionHeight = cardHeight + 3
)

// Timing constants.
const (
	// DefaultUIInterval is how often the store is polled for catalog revisions.
	DefaultUIInterval = time.Second

	// frameInterval paces smooth-scroll animation frames.
	frameInterval = time.Second / 60
)

// layout is the cell geometry of one carousel strip. It implements
// carousel.Geometry; the animator writes offset as the strip moves.
type layout struct {
	viewport  int
	cardWidth int
	gap       int
	offset    float64
	total     int // virtual item count
}

func newLayout(width, total int) *layout {
	l := &layout{gap: cardGap, total: total}
	l.resize(width)
	return l
}

// resize recomputes the card width for a terminal width.
func (l *layout) resize(termWidth int) {
	l.viewport = max(termWidth-2*stripPadding, 0)
	switch {
	case l.viewport < LayoutCompactWidth:
		l.cardWidth = l.viewport - 6
	case l.viewport < LayoutWideWidth:
		l.cardWidth = (l.viewport - l.gap) / 2
	default:
		l.cardWidth = (l.viewport - 2*l.gap) / 3
	}
	l.cardWidth = max(l.cardWidth, cardMinWidth)
	l.offset = l.clamp(l.offset)
}

func (l *layout) ready() bool {
	return l.viewport > 0 && l.cardWidth > 0
}

// ViewportWidth implements carousel.Geometry.
func (l *layout) ViewportWidth() (float64, bool) {
	if !l.ready() {
		return 0, false
	}
	return float64(l.viewport), true
}

// ItemBox implements carousel.Geometry.
func (l *layout) ItemBox(v int) (float64, float64, bool) {
	if !l.ready() || v < 0 || v >= l.total {
		return 0, 0, false
	}
	return float64(v * l.pitch()), float64(l.cardWidth), true
}

// ScrollOffset implements carousel.Geometry.
func (l *layout) ScrollOffset() float64 {
	return l.offset
}

func (l *layout) pitch() int {
	return l.cardWidth + l.gap
}

// maxOffset is the furthest the strip can scroll, like a browser's
// scrollWidth - clientWidth.
func (l *layout) maxOffset() float64 {
	content := l.total*l.pitch() - l.gap
	return math.Max(float64(content-l.viewport), 0)
}

func (l *layout) clamp(offset float64) float64 {
	if math.IsNaN(offset) {
		return 0
	}
	return math.Min(math.Max(offset, 0), l.maxOffset())
}

// visible returns the range of virtual items overlapping the viewport.
func (l *layout) visible() (first, last int) {
	if !l.ready() || l.total == 0 {
		return 0, -1
	}
	p := l.pitch()
	left := int(math.Floor(l.offset))
	first = max(left/p, 0)
	last = min((left+l.viewport)/p, l.total-1)
	return first, last
}

// itemAt maps a column inside the viewport to a virtual index.
func (l *layout) itemAt(col int) (int, bool) {
	if !l.ready() || col < 0 || col >= l.viewport {
		return 0, false
	}
	abs := int(math.Floor(l.offset)) + col
	p := l.pitch()
	v := abs / p
	if v >= l.total || abs%p >= l.cardWidth {
		return 0, false
	}
	return v, true
}
