package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// Spring parameters for smooth scrolling. Critically damped, so the strip
// never overshoots the target card.
const (
	springFrequency = 20.0
	springDamping   = 1.0
	settleEpsilon   = 0.25
)

// frameMsg advances one strip's smooth-scroll animation.
type frameMsg struct {
	view *domainView
	gen  uint64
}

// animator implements carousel.Viewport for a terminal strip. Instant scrolls
// write the offset directly; smooth scrolls step a spring at 60fps.
type animator struct {
	view     *domainView
	geom     *layout
	out      *outbox
	spring   harmonica.Spring
	target   float64
	velocity float64
	running  bool
	gen      uint64
}

func newAnimator(view *domainView, geom *layout, out *outbox) *animator {
	return &animator{
		view:   view,
		geom:   geom,
		out:    out,
		spring: harmonica.NewSpring(harmonica.FPS(60), springFrequency, springDamping),
	}
}

// ScrollTo implements carousel.Viewport.
func (a *animator) ScrollTo(offset float64, smooth bool) {
	offset = a.geom.clamp(offset)
	if !smooth {
		a.stop()
		a.geom.offset = offset
		return
	}
	a.target = offset
	if a.running {
		return
	}
	a.running = true
	a.gen++
	a.out.push(a.frame())
}

// stop abandons any animation in flight; user input takes over the strip.
func (a *animator) stop() {
	a.running = false
	a.velocity = 0
	a.gen++
}

// step advances the spring by one frame. It reports whether the animation is
// still running.
func (a *animator) step(gen uint64) bool {
	if !a.running || gen != a.gen {
		return false
	}
	pos, vel := a.spring.Update(a.geom.offset, a.velocity, a.target)
	if math.Abs(pos-a.target) < settleEpsilon && math.Abs(vel) < settleEpsilon {
		a.geom.offset = a.target
		a.running = false
		a.velocity = 0
		return false
	}
	a.geom.offset = a.geom.clamp(pos)
	a.velocity = vel
	a.out.push(a.frame())
	return true
}

func (a *animator) frame() tea.Cmd {
	msg := frameMsg{view: a.view, gen: a.gen}
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return msg })
}
