package ui

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/carousel"
	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/state"
)

// hold is a reason auto-advance is paused. Any set bit pauses the engine.
type hold uint8

const (
	holdHover   hold = 1 << iota // mouse over the strip
	holdTouch                    // space toggled
	holdPointer                  // mouse button down on the strip
	holdPref                     // auto-advance disabled in prefs
)

// dragState tracks a mouse drag across the strip.
type dragState struct {
	active      bool
	startX      int
	startOffset float64
}

// domainView is one carousel on screen: the engine plus the terminal
// collaborators it drives.
type domainView struct {
	index   int
	domain  catalog.Domain
	engine  *carousel.Engine
	sched   *teaScheduler
	anim    *animator
	geom    *layout
	out     *outbox
	binding state.Binding
	holds   hold
	drag    dragState
}

type viewOptions struct {
	store       *state.Store
	width       int
	timings     carousel.Timings
	autoAdvance bool
	logger      zerolog.Logger
}

func newDomainView(index int, domain catalog.Domain, opts viewOptions) (*domainView, error) {
	items := domain.Items()
	v := &domainView{
		index:  index,
		domain: domain,
		out:    &outbox{},
		geom:   newLayout(opts.width, len(items)*carousel.Copies),
	}
	v.sched = newTeaScheduler(v, v.out)
	v.anim = newAnimator(v, v.geom, v.out)
	v.binding = opts.store.Binding(index, func(idx int) {
		if v.engine != nil {
			v.engine.IndexChanged(idx)
		}
	})

	logger := opts.logger.With().Str("domain", domain.Slug()).Logger()
	engine, err := carousel.New(carousel.Options{
		Items:     items,
		Index:     v.binding,
		Geometry:  v.geom,
		Viewport:  v.anim,
		Scheduler: v.sched,
		Timings:   opts.timings,
		Logger:    &logger,
	})
	if err != nil {
		return nil, fmt.Errorf("domain %q: %w", domain.Name, err)
	}
	v.engine = engine

	if !opts.autoAdvance {
		v.setHold(holdPref, true)
	}
	engine.Mount()
	return v, nil
}

// setHold turns one pause reason on or off. The engine is only told when the
// combined state flips.
func (v *domainView) setHold(h hold, on bool) {
	was := v.holds != 0
	if on {
		v.holds |= h
	} else {
		v.holds &^= h
	}
	now := v.holds != 0
	if was == now || v.engine == nil {
		return
	}
	if now {
		v.engine.Pause()
	} else {
		v.engine.Resume()
	}
}

func (v *domainView) held(h hold) bool {
	return v.holds&h != 0
}

// setDomain swaps in a refreshed domain with the same position.
func (v *domainView) setDomain(domain catalog.Domain) error {
	items := domain.Items()
	v.domain = domain
	v.geom.total = len(items) * carousel.Copies
	v.geom.offset = v.geom.clamp(v.geom.offset)
	return v.engine.SetItems(items)
}

// resize applies a new terminal width and re-centers the current card.
func (v *domainView) resize(width int) {
	v.anim.stop()
	v.geom.resize(width)
	v.engine.Realign()
}

// nudge scrolls the strip by delta cells on behalf of the user.
func (v *domainView) nudge(delta float64) {
	v.moveTo(v.geom.offset + delta)
}

// moveTo applies user motion. Motion during an engine scroll is dropped, as
// OnScroll would drop it.
func (v *domainView) moveTo(offset float64) {
	if v.engine.Programmatic() {
		return
	}
	v.anim.stop()
	next := v.geom.clamp(offset)
	if next == v.geom.offset {
		return
	}
	v.geom.offset = next
	v.engine.OnScroll()
}

func (v *domainView) beginDrag(x int) {
	v.drag = dragState{active: true, startX: x, startOffset: v.geom.offset}
	v.setHold(holdPointer, true)
}

func (v *domainView) dragTo(x int) {
	if !v.drag.active {
		return
	}
	if v.engine.Programmatic() {
		// re-anchor so the drag picks up from wherever the glide ends
		v.drag.startX, v.drag.startOffset = x, v.geom.offset
		return
	}
	v.moveTo(v.drag.startOffset - float64(x-v.drag.startX))
}

func (v *domainView) endDrag() {
	if !v.drag.active {
		return
	}
	v.drag = dragState{}
	v.setHold(holdPointer, false)
}

// current returns the logical index shown as active.
func (v *domainView) current() int {
	return v.binding.Index()
}

func (v *domainView) close() {
	v.anim.stop()
	v.engine.Close()
}

// zoneID namespaces a mouse zone to this view.
func (v *domainView) zoneID(name string) string {
	return fmt.Sprintf("d%d:%s", v.index, name)
}
