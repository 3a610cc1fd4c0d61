package carousel

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// ErrNoItems is returned when an engine is built over an empty item set.
var ErrNoItems = errors.New("carousel: item set is empty")

// Item is one card in the carousel.
type Item struct {
	Title       string
	Description string
}

// IndexSource is the parent-owned logical index. The engine proposes changes
// through SetIndex; the parent decides what Index returns afterwards.
type IndexSource interface {
	Index() int
	SetIndex(i int)
}

// Mode is the observable state of the scroll state machine.
type Mode int

const (
	ModeAuto Mode = iota
	ModeProgrammatic
	ModeManual
	ModeSettling
	ModeTeleporting
	ModeResumePending
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeProgrammatic:
		return "programmatic"
	case ModeManual:
		return "manual"
	case ModeSettling:
		return "settling"
	case ModeTeleporting:
		return "teleporting"
	case ModeResumePending:
		return "resume-pending"
	default:
		return "unknown"
	}
}

// Timings holds the engine's delays.
type Timings struct {
	Advance            time.Duration // auto-advance period
	ProgrammaticSettle time.Duration // smooth scroll guard
	Quiet              time.Duration // scroll debounce window
	Resume             time.Duration // auto-advance resume after a manual scroll
	Teleport           time.Duration // instant scroll guard
}

// DefaultTimings returns the stock delays.
func DefaultTimings() Timings {
	return Timings{
		Advance:            10 * time.Second,
		ProgrammaticSettle: 400 * time.Millisecond,
		Quiet:              140 * time.Millisecond,
		Resume:             2 * time.Second,
		Teleport:           16 * time.Millisecond,
	}
}

// WithDefaults fills every non-positive delay with its default.
func (t Timings) WithDefaults() Timings {
	d := DefaultTimings()
	if t.Advance <= 0 {
		t.Advance = d.Advance
	}
	if t.ProgrammaticSettle <= 0 {
		t.ProgrammaticSettle = d.ProgrammaticSettle
	}
	if t.Quiet <= 0 {
		t.Quiet = d.Quiet
	}
	if t.Resume <= 0 {
		t.Resume = d.Resume
	}
	if t.Teleport <= 0 {
		t.Teleport = d.Teleport
	}
	return t
}

// Options configure an Engine.
type Options struct {
	Items     []Item
	Index     IndexSource
	Geometry  Geometry
	Viewport  Viewport
	Scheduler Scheduler
	Timings   Timings

	// Logger receives transition events at debug level. Nil disables logging.
	Logger *zerolog.Logger
	// OnTransition, when set, observes every mode change.
	OnTransition func(from, to Mode)
}

// Engine drives one carousel. It is not safe for concurrent use; every call,
// including scheduled actions, must come from the same event loop.
type Engine struct {
	items       []Item
	virtualized []Item
	space       Space

	index   IndexSource
	geom    Geometry
	view    Viewport
	sched   Scheduler
	timings Timings
	log     zerolog.Logger
	observe func(from, to Mode)

	virtual       int
	mode          Mode
	programmatic  bool
	scrollTarget  int
	advancing     bool
	paused        bool
	manual        bool // user scroll awaiting settle
	resumePending bool
	fromScroll    int
	closed        bool
}

// New validates opts and anchors the virtual index on the middle copy of the
// parent's current index. Call Mount to issue the first scroll.
func New(opts Options) (*Engine, error) {
	space, err := NewSpace(len(opts.Items))
	if err != nil {
		return nil, err
	}
	switch {
	case opts.Index == nil:
		return nil, errors.New("carousel: index source is required")
	case opts.Geometry == nil:
		return nil, errors.New("carousel: geometry is required")
	case opts.Viewport == nil:
		return nil, errors.New("carousel: viewport is required")
	case opts.Scheduler == nil:
		return nil, errors.New("carousel: scheduler is required")
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	items := append([]Item(nil), opts.Items...)
	return &Engine{
		items:        items,
		virtualized:  Repeat(items),
		space:        space,
		index:        opts.Index,
		geom:         opts.Geometry,
		view:         opts.Viewport,
		sched:        opts.Scheduler,
		timings:      opts.Timings.WithDefaults(),
		log:          logger,
		observe:      opts.OnTransition,
		virtual:      space.Middle(opts.Index.Index()),
		mode:         ModeAuto,
		scrollTarget: -1,
		fromScroll:   -1,
	}, nil
}

// Mount aligns the viewport on the current item without animation and starts
// auto-advance.
func (e *Engine) Mount() {
	if e.closed {
		return
	}
	e.scroll(e.virtual, false)
	e.Start()
}

// Close cancels every timer. Afterwards all operations are no-ops and any
// callback still queued by the host is ignored.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	for _, k := range TimerKinds {
		e.sched.Cancel(k)
	}
	e.advancing = false
	e.programmatic = false
	e.manual = false
	e.resumePending = false
}

// SetItems replaces the item set. The virtual space is rebuilt and the anchor
// moved back to the middle copy only when the item count changes.
func (e *Engine) SetItems(items []Item) error {
	if e.closed {
		return nil
	}
	if len(items) == 0 {
		return ErrNoItems
	}
	e.items = append([]Item(nil), items...)
	e.virtualized = Repeat(e.items)
	if len(items) == e.space.N() {
		return nil
	}

	e.space = Space{n: len(items)}
	e.supersedeManual()
	e.fromScroll = -1
	e.virtual = e.space.Middle(e.index.Index())
	e.log.Debug().Int("items", len(items)).Int("virtual", e.virtual).Msg("carousel items replaced")
	e.scroll(e.virtual, false)
	e.Restart()
	return nil
}

// IndexChanged must be called by the host whenever the parent's index changes.
// Changes that came from a settled scroll are consumed without scrolling; any
// other change scrolls to the nearest copy of the new index.
func (e *Engine) IndexChanged(i int) {
	if e.closed {
		return
	}
	i = e.space.Logical(i)
	if marker := e.fromScroll; marker >= 0 {
		e.fromScroll = -1
		if marker == i {
			return
		}
	}
	if i == e.space.Logical(e.virtual) {
		return
	}

	target := e.space.Nearest(i, e.virtual)
	e.supersedeManual()
	e.virtual = target
	e.scroll(target, true)
	e.Restart()
}

// Mode returns the current state machine mode.
func (e *Engine) Mode() Mode { return e.mode }

// Virtual returns the private virtual index.
func (e *Engine) Virtual() int { return e.virtual }

// Len returns the logical item count.
func (e *Engine) Len() int { return e.space.N() }

// Space returns the virtual index space.
func (e *Engine) Space() Space { return e.space }

// Items returns a copy of the item set.
func (e *Engine) Items() []Item { return append([]Item(nil), e.items...) }

// Virtualized returns the repeated item list, one entry per virtual index.
func (e *Engine) Virtualized() []Item { return append([]Item(nil), e.virtualized...) }

// Programmatic reports whether engine-initiated motion is in flight.
func (e *Engine) Programmatic() bool { return e.programmatic }

// Advancing reports whether the auto-advance timer is armed.
func (e *Engine) Advancing() bool { return e.advancing }

// Paused reports whether a hover or touch hold is active.
func (e *Engine) Paused() bool { return e.paused }

// Closed reports whether Close has been called.
func (e *Engine) Closed() bool { return e.closed }

func (e *Engine) commit(i int) {
	e.index.SetIndex(i)
}

// scroll arms the programmatic guard and issues the scroll command. A later
// request replaces the guard of an earlier one.
func (e *Engine) scroll(v int, smooth bool) {
	guard := e.timings.Teleport
	if smooth {
		guard = e.timings.ProgrammaticSettle
	}
	e.programmatic = true
	e.scrollTarget = v
	e.sched.Schedule(TimerProgrammatic, guard, e.programmaticDone)
	if e.mode != ModeTeleporting {
		e.setMode(ModeProgrammatic)
	}
	e.view.ScrollTo(Offset(e.geom, v), smooth)
}

func (e *Engine) programmaticDone() {
	if e.closed {
		return
	}
	e.programmatic = false
	e.scrollTarget = -1
	if e.space.NeedsRebase(e.virtual) {
		e.teleport()
		return
	}
	e.settleMode()
}

// teleport jumps to the equivalent item one copy closer to the middle.
func (e *Engine) teleport() {
	from := e.virtual
	e.virtual = e.space.Rebase(from)
	e.setMode(ModeTeleporting)
	e.log.Debug().Int("from", from).Int("to", e.virtual).Msg("carousel teleport")
	e.scroll(e.virtual, false)
}

func (e *Engine) settleMode() {
	if e.manual {
		e.setMode(ModeManual)
		return
	}
	if e.resumePending {
		e.setMode(ModeResumePending)
		return
	}
	e.setMode(ModeAuto)
}

// supersedeManual drops any pending settle and resume so a programmatic
// request wins over an unfinished manual scroll.
func (e *Engine) supersedeManual() {
	e.sched.Cancel(TimerSettle)
	e.sched.Cancel(TimerResume)
	e.manual = false
	e.resumePending = false
}

func (e *Engine) setMode(m Mode) {
	if e.mode == m {
		return
	}
	from := e.mode
	e.mode = m
	e.log.Debug().
		Stringer("from", from).
		Stringer("to", m).
		Int("virtual", e.virtual).
		Msg("carousel transition")
	if e.observe != nil {
		e.observe(from, m)
	}
}
