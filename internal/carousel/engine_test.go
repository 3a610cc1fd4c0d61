package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripGeometry lays items out left to right with a fixed pitch.
type stripGeometry struct {
	viewport float64
	width    float64
	gap      float64
	offset   float64
	ready    bool
}

func (g *stripGeometry) ViewportWidth() (float64, bool) { return g.viewport, g.ready }

func (g *stripGeometry) ItemBox(v int) (float64, float64, bool) {
	if !g.ready {
		return 0, 0, false
	}
	return float64(v) * (g.width + g.gap), g.width, true
}

func (g *stripGeometry) ScrollOffset() float64 { return g.offset }

func (g *stripGeometry) centerOn(v int) { g.offset = Offset(g, v) }

type scrollCall struct {
	offset float64
	smooth bool
}

type recordingViewport struct {
	geom  *stripGeometry
	calls []scrollCall
}

func (r *recordingViewport) ScrollTo(offset float64, smooth bool) {
	r.calls = append(r.calls, scrollCall{offset: offset, smooth: smooth})
	r.geom.offset = offset
}

func (r *recordingViewport) last() scrollCall {
	if len(r.calls) == 0 {
		return scrollCall{offset: -1}
	}
	return r.calls[len(r.calls)-1]
}

// parentIndex plays the page: it owns the index and echoes changes back.
type parentIndex struct {
	value    int
	commits  []int
	onChange func(int)
}

func (p *parentIndex) Index() int { return p.value }

func (p *parentIndex) SetIndex(i int) {
	p.commits = append(p.commits, i)
	changed := i != p.value
	p.value = i
	if changed && p.onChange != nil {
		p.onChange(i)
	}
}

type harness struct {
	engine *Engine
	clock  *VirtualClock
	geom   *stripGeometry
	view   *recordingViewport
	parent *parentIndex
	modes  []Mode
}

func newHarness(t *testing.T, titles []string, start int, echo bool) *harness {
	t.Helper()
	items := make([]Item, len(titles))
	for i, title := range titles {
		items[i] = Item{Title: title}
	}

	h := &harness{
		clock:  NewVirtualClock(),
		geom:   &stripGeometry{viewport: 100, width: 40, gap: 10, ready: true},
		parent: &parentIndex{value: start},
	}
	h.view = &recordingViewport{geom: h.geom}

	e, err := New(Options{
		Items:        items,
		Index:        h.parent,
		Geometry:     h.geom,
		Viewport:     h.view,
		Scheduler:    h.clock,
		OnTransition: func(_, to Mode) { h.modes = append(h.modes, to) },
	})
	require.NoError(t, err)
	h.engine = e
	if echo {
		h.parent.onChange = e.IndexChanged
	}
	e.Mount()
	// let the mount guard lapse
	h.clock.Advance(DefaultTimings().Teleport)
	return h
}

func letters(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

func (h *harness) assertSettled(t *testing.T) {
	t.Helper()
	assert.Equal(t, h.parent.value, h.engine.Space().Logical(h.engine.Virtual()),
		"virtual %d does not map to logical %d", h.engine.Virtual(), h.parent.value)
}

func TestNew_RejectsEmptyItems(t *testing.T) {
	_, err := New(Options{
		Index:     &parentIndex{},
		Geometry:  &stripGeometry{},
		Viewport:  &recordingViewport{},
		Scheduler: NewVirtualClock(),
	})
	require.ErrorIs(t, err, ErrNoItems)
}

func TestNew_RequiresCollaborators(t *testing.T) {
	items := []Item{{Title: "A"}}
	geom := &stripGeometry{}
	base := Options{
		Items:     items,
		Index:     &parentIndex{},
		Geometry:  geom,
		Viewport:  &recordingViewport{geom: geom},
		Scheduler: NewVirtualClock(),
	}

	missing := map[string]func(o *Options){
		"index":     func(o *Options) { o.Index = nil },
		"geometry":  func(o *Options) { o.Geometry = nil },
		"viewport":  func(o *Options) { o.Viewport = nil },
		"scheduler": func(o *Options) { o.Scheduler = nil },
	}
	for name, strip := range missing {
		t.Run(name, func(t *testing.T) {
			opts := base
			strip(&opts)
			_, err := New(opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestMount_AlignsInstantlyOnMiddleCopy(t *testing.T) {
	h := newHarness(t, letters(3), 1, true)

	require.Len(t, h.view.calls, 1)
	assert.Equal(t, scrollCall{offset: Offset(h.geom, 4), smooth: false}, h.view.calls[0])
	assert.Equal(t, 4, h.engine.Virtual())
	assert.True(t, h.engine.Advancing())
	assert.Equal(t, ModeAuto, h.engine.Mode())
	assert.False(t, h.clock.Pending(TimerProgrammatic))
}

func TestAutoAdvance_CommitsAndScrollsOncePerFiring(t *testing.T) {
	h := newHarness(t, letters(3), 0, true)

	h.clock.Advance(10 * time.Second)

	assert.Equal(t, []int{1}, h.parent.commits)
	require.Len(t, h.view.calls, 2)
	assert.Equal(t, scrollCall{offset: Offset(h.geom, 4), smooth: true}, h.view.last())
	assert.Equal(t, "B", h.engine.Virtualized()[h.engine.Virtual()].Title)
	assert.Equal(t, ModeProgrammatic, h.engine.Mode())

	h.clock.Advance(DefaultTimings().ProgrammaticSettle)
	assert.Equal(t, ModeAuto, h.engine.Mode())
	h.assertSettled(t)
}

func TestAutoAdvance_ReadsVirtualIndexAtFireTime(t *testing.T) {
	h := newHarness(t, letters(4), 0, true)

	h.clock.Advance(5 * time.Second)
	// The page moves the index while the timer is pending.
	h.parent.SetIndex(2)
	h.clock.Advance(DefaultTimings().ProgrammaticSettle)

	// IndexChanged restarted the countdown, so fire relative to that.
	h.clock.Advance(10 * time.Second)
	assert.Equal(t, 3, h.parent.value)
	h.assertSettled(t)
}

func TestAutoAdvance_DriftIsRebasedAfterScrollCompletes(t *testing.T) {
	h := newHarness(t, letters(3), 0, true)

	// 3 -> 4 -> 5 -> 6 -> 7, and 7 sits on the upper bound.
	h.clock.Advance(40 * time.Second)
	assert.Equal(t, 7, h.engine.Virtual())

	h.clock.Advance(time.Second)
	assert.Equal(t, 4, h.engine.Virtual())
	assert.Equal(t, 1, h.parent.value)
	assert.Equal(t, scrollCall{offset: Offset(h.geom, 4), smooth: false}, h.view.last())
	assert.Contains(t, h.modes, ModeTeleporting)
	assert.Equal(t, ModeAuto, h.engine.Mode())
}

func TestNavigation_Wraparound(t *testing.T) {
	h := newHarness(t, letters(5), 0, true)

	h.engine.Previous()
	assert.Equal(t, 4, h.parent.value)
	assert.Equal(t, 9, h.engine.Virtual())

	h.engine.Next()
	assert.Equal(t, 0, h.parent.value)
	assert.Equal(t, 5, h.engine.Virtual())
}

func TestNavigation_RestartsAutoAdvanceCountdown(t *testing.T) {
	h := newHarness(t, letters(5), 0, true)

	h.clock.Advance(9 * time.Second)
	h.engine.Next()
	h.clock.Advance(9 * time.Second)
	assert.Equal(t, []int{1}, h.parent.commits, "auto-advance fired too early")

	h.clock.Advance(time.Second)
	assert.Equal(t, []int{1, 2}, h.parent.commits)
}

func TestGoTo_RoundTripThroughNearestItem(t *testing.T) {
	h := newHarness(t, letters(6), 0, true)

	for i := 0; i < 6; i++ {
		h.engine.GoTo(i)
		v, ok := nearestItem(h.geom, h.engine.Space().Len())
		require.True(t, ok)
		assert.Equal(t, i, h.engine.Space().Logical(v))
	}
}

func TestGoTo_RepeatedCallDoesNotDuplicateScroll(t *testing.T) {
	h := newHarness(t, letters(4), 0, true)
	before := len(h.view.calls)

	h.engine.GoTo(2)
	h.clock.Advance(300 * time.Millisecond)
	h.engine.GoTo(2)

	assert.Equal(t, before+1, len(h.view.calls))
	assert.Equal(t, 2, h.parent.value)
	assert.True(t, h.engine.Programmatic())

	// The guard was re-armed by the second call.
	h.clock.Advance(300 * time.Millisecond)
	assert.True(t, h.engine.Programmatic())
	h.clock.Advance(100 * time.Millisecond)
	assert.False(t, h.engine.Programmatic())
	h.assertSettled(t)
}

func TestGoTo_LaterRequestWins(t *testing.T) {
	h := newHarness(t, letters(5), 0, true)

	h.engine.GoTo(1)
	h.clock.Advance(100 * time.Millisecond)
	h.engine.GoTo(3)

	assert.Equal(t, 3, h.parent.value)
	assert.Equal(t, scrollCall{offset: Offset(h.geom, 8), smooth: true}, h.view.last())

	h.clock.Advance(350 * time.Millisecond)
	assert.True(t, h.engine.Programmatic(), "earlier guard cleared the later request")
	h.clock.Advance(50 * time.Millisecond)
	assert.False(t, h.engine.Programmatic())
}

func TestSettle_TeleportsFromBoundaries(t *testing.T) {
	cases := []struct {
		name       string
		landOn     int
		wantRebase int
	}{
		{"lower bound", 4, 14},
		{"upper bound", 26, 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, letters(10), 0, true)

			h.geom.centerOn(tc.landOn)
			h.engine.OnScroll()
			h.clock.Advance(DefaultTimings().Quiet)

			assert.Equal(t, tc.wantRebase, h.engine.Virtual())
			assert.Equal(t, tc.landOn%10, h.parent.value)
			assert.Equal(t, scrollCall{offset: Offset(h.geom, tc.wantRebase), smooth: false}, h.view.last())
			assert.Contains(t, h.modes, ModeTeleporting)
			h.assertSettled(t)

			h.clock.Advance(DefaultTimings().Teleport)
			assert.Equal(t, ModeResumePending, h.engine.Mode())
		})
	}
}

func TestSettle_InsideWindowDoesNotTeleport(t *testing.T) {
	h := newHarness(t, letters(10), 0, true)
	before := len(h.view.calls)

	h.geom.centerOn(17)
	h.engine.OnScroll()
	h.clock.Advance(DefaultTimings().Quiet)

	assert.Equal(t, 17, h.engine.Virtual())
	assert.Equal(t, 7, h.parent.value)
	assert.Equal(t, before, len(h.view.calls))
}

func TestOnScroll_IgnoredWhileProgrammatic(t *testing.T) {
	h := newHarness(t, letters(5), 0, true)

	h.engine.GoTo(1)
	h.geom.centerOn(8)
	h.engine.OnScroll()
	h.clock.Advance(DefaultTimings().Quiet)

	assert.Equal(t, 1, h.parent.value)
	assert.Equal(t, 6, h.engine.Virtual())
	assert.False(t, h.clock.Pending(TimerSettle))
	assert.Equal(t, ModeProgrammatic, h.engine.Mode())
}

func TestOnScroll_DebouncesToLastEvent(t *testing.T) {
	h := newHarness(t, letters(5), 0, true)

	h.geom.centerOn(6)
	h.engine.OnScroll()
	h.clock.Advance(100 * time.Millisecond)
	h.geom.centerOn(7)
	h.engine.OnScroll()
	h.clock.Advance(100 * time.Millisecond)

	assert.Equal(t, 0, h.parent.value, "settled before the quiet window elapsed")
	assert.Equal(t, ModeManual, h.engine.Mode())
	assert.False(t, h.engine.Advancing())

	h.clock.Advance(40 * time.Millisecond)
	assert.Equal(t, 2, h.parent.value)
	assert.Equal(t, []int{2}, h.parent.commits)
}

func TestScenario_AutoAdvanceThenManualScroll(t *testing.T) {
	h := newHarness(t, []string{"A", "B", "C"}, 0, true)

	h.clock.Advance(10 * time.Second)
	assert.Equal(t, 1, h.parent.value)
	assert.Equal(t, "B", h.engine.Virtualized()[h.engine.Virtual()].Title)
	assert.True(t, h.view.last().smooth)

	h.clock.Advance(DefaultTimings().ProgrammaticSettle)

	// The user drags until C is centered.
	h.geom.centerOn(5)
	h.engine.OnScroll()
	assert.False(t, h.engine.Advancing())
	calls := len(h.view.calls)

	h.clock.Advance(DefaultTimings().Quiet)
	assert.Equal(t, 2, h.parent.value)
	assert.Equal(t, 5, h.engine.Virtual())
	assert.Equal(t, calls, len(h.view.calls), "settle re-issued a scroll")
	assert.Equal(t, ModeResumePending, h.engine.Mode())

	h.clock.Advance(DefaultTimings().Resume - time.Millisecond)
	assert.False(t, h.engine.Advancing())
	h.clock.Advance(time.Millisecond)
	assert.True(t, h.engine.Advancing())
	assert.Equal(t, ModeAuto, h.engine.Mode())

	h.clock.Advance(10 * time.Second)
	assert.Equal(t, 0, h.parent.value)
	assert.Equal(t, []int{1, 2, 0}, h.parent.commits)
	assert.Equal(t, 6, h.engine.Virtual())
}

func TestIndexChanged_FromScrollSuppressedExactlyOnce(t *testing.T) {
	h := newHarness(t, letters(5), 0, false)

	h.geom.centerOn(7)
	h.engine.OnScroll()
	h.clock.Advance(DefaultTimings().Quiet)
	require.Equal(t, 2, h.parent.value)
	calls := len(h.view.calls)

	h.engine.IndexChanged(2)
	assert.Equal(t, calls, len(h.view.calls))

	// A later programmatic change is not swallowed by the spent marker.
	h.parent.value = 4
	h.engine.IndexChanged(4)
	assert.Equal(t, calls+1, len(h.view.calls))
	assert.Equal(t, scrollCall{offset: Offset(h.geom, 9), smooth: true}, h.view.last())
	h.assertSettled(t)
}

func TestIndexChanged_MarkerDoesNotSwallowDifferentIndex(t *testing.T) {
	h := newHarness(t, letters(5), 0, false)

	h.geom.centerOn(7)
	h.engine.OnScroll()
	h.clock.Advance(DefaultTimings().Quiet)
	calls := len(h.view.calls)

	// The page overrides the scroll-derived value before reacting to it.
	h.parent.value = 0
	h.engine.IndexChanged(0)
	assert.Equal(t, calls+1, len(h.view.calls))
	assert.Equal(t, 0, h.engine.Space().Logical(h.engine.Virtual()))
}

func TestIndexChanged_NavigationClearsMarker(t *testing.T) {
	h := newHarness(t, letters(5), 0, false)

	h.geom.centerOn(7)
	h.engine.OnScroll()
	h.clock.Advance(DefaultTimings().Quiet)
	h.engine.GoTo(4)
	h.clock.Advance(DefaultTimings().ProgrammaticSettle)
	calls := len(h.view.calls)

	h.parent.value = 2
	h.engine.IndexChanged(2)
	assert.Equal(t, calls+1, len(h.view.calls), "stale scroll marker suppressed a programmatic change")
}

func TestSingleItem_NavigationCyclesToItself(t *testing.T) {
	h := newHarness(t, []string{"Solo"}, 0, true)

	h.engine.Next()
	h.engine.Previous()
	assert.Equal(t, 0, h.parent.value)
	assert.Equal(t, 1, h.engine.Virtual())

	h.clock.Advance(10*time.Second + DefaultTimings().ProgrammaticSettle)
	assert.Equal(t, 0, h.parent.value)
	assert.Equal(t, 1, h.engine.Virtual())
	assert.Equal(t, []int{0, 0, 0}, h.parent.commits)
}

func TestGeometryUnavailable_DegradesToZero(t *testing.T) {
	h := newHarness(t, letters(3), 1, true)
	h.geom.ready = false

	h.engine.GoTo(2)
	assert.Equal(t, scrollCall{offset: 0, smooth: true}, h.view.last())

	h.clock.Advance(DefaultTimings().ProgrammaticSettle)
	h.engine.OnScroll()
	h.clock.Advance(DefaultTimings().Quiet)
	assert.Equal(t, 5, h.engine.Virtual(), "settle without layout moved the anchor")
	assert.Equal(t, 2, h.parent.value)
}

func TestPauseResume(t *testing.T) {
	h := newHarness(t, letters(3), 0, true)

	h.engine.Pause()
	h.engine.Pause()
	h.clock.Advance(30 * time.Second)
	assert.Empty(t, h.parent.commits)

	// Navigation while hovered does not start the timer behind the pause.
	h.engine.Next()
	assert.False(t, h.engine.Advancing())

	h.engine.Resume()
	assert.True(t, h.engine.Advancing())
	h.clock.Advance(10 * time.Second)
	assert.Equal(t, []int{1, 2}, h.parent.commits)
}

func TestPause_ResumeTimerRespectsHold(t *testing.T) {
	h := newHarness(t, letters(5), 0, true)

	h.geom.centerOn(6)
	h.engine.OnScroll()
	h.engine.Pause()
	h.clock.Advance(DefaultTimings().Quiet + DefaultTimings().Resume)
	assert.False(t, h.engine.Advancing())

	h.engine.Resume()
	assert.True(t, h.engine.Advancing())
}

func TestStop_Idempotent(t *testing.T) {
	h := newHarness(t, letters(3), 0, true)
	h.engine.Stop()
	h.engine.Stop()
	assert.False(t, h.engine.Advancing())
	assert.False(t, h.clock.Pending(TimerAdvance))
}

func TestTimers_OnePerKind(t *testing.T) {
	h := newHarness(t, letters(5), 0, true)

	h.geom.centerOn(7)
	for i := 0; i < 5; i++ {
		h.engine.OnScroll()
		h.clock.Advance(20 * time.Millisecond)
	}
	h.clock.Advance(DefaultTimings().Quiet)
	h.engine.GoTo(3)
	h.engine.GoTo(4)

	seen := map[TimerKind]int{}
	for _, k := range h.clock.PendingKinds() {
		seen[k]++
	}
	for k, n := range seen {
		assert.Equal(t, 1, n, "kind %s pending %d times", k, n)
	}
	assert.False(t, h.clock.Pending(TimerSettle))
	assert.False(t, h.clock.Pending(TimerResume))
}

func TestClose_ReleasesEverything(t *testing.T) {
	h := newHarness(t, letters(3), 0, true)
	h.engine.GoTo(2)
	h.engine.OnScroll()

	h.engine.Close()
	assert.Empty(t, h.clock.PendingKinds())

	calls := len(h.view.calls)
	commits := len(h.parent.commits)
	h.engine.GoTo(1)
	h.engine.OnScroll()
	h.engine.IndexChanged(0)
	h.engine.Start()
	h.clock.Advance(time.Minute)
	assert.Equal(t, calls, len(h.view.calls))
	assert.Equal(t, commits, len(h.parent.commits))
	assert.True(t, h.engine.Closed())
}

func TestSetItems(t *testing.T) {
	h := newHarness(t, letters(3), 2, true)

	require.ErrorIs(t, h.engine.SetItems(nil), ErrNoItems)

	calls := len(h.view.calls)
	require.NoError(t, h.engine.SetItems([]Item{{Title: "X"}, {Title: "Y"}, {Title: "Z"}}))
	assert.Equal(t, calls, len(h.view.calls), "same-size update should not move the viewport")
	assert.Equal(t, "X", h.engine.Virtualized()[3].Title)

	require.NoError(t, h.engine.SetItems([]Item{{Title: "1"}, {Title: "2"}, {Title: "3"}, {Title: "4"}, {Title: "5"}}))
	assert.Equal(t, 5, h.engine.Len())
	assert.Len(t, h.engine.Virtualized(), 15)
	assert.Equal(t, 7, h.engine.Virtual())
	assert.Equal(t, scrollCall{offset: Offset(h.geom, 7), smooth: false}, h.view.last())
}

func TestRealign_JumpsToCurrentItemAfterResize(t *testing.T) {
	h := newHarness(t, letters(4), 2, true)
	h.geom.width = 60
	h.geom.viewport = 140

	h.engine.Realign()
	assert.Equal(t, scrollCall{offset: Offset(h.geom, 6), smooth: false}, h.view.last())
	assert.True(t, h.engine.Programmatic())

	h.clock.Advance(DefaultTimings().Teleport)
	assert.False(t, h.engine.Programmatic())
	assert.Equal(t, ModeAuto, h.engine.Mode())
	h.assertSettled(t)
}

func TestRealign_DuringManualScrollStillSettlesAndResumes(t *testing.T) {
	h := newHarness(t, letters(5), 0, true)
	timings := DefaultTimings()
	before := len(h.parent.commits)

	h.engine.OnScroll()
	h.clock.Advance(130 * time.Millisecond)
	h.engine.Realign()
	h.clock.Advance(20 * time.Millisecond)

	assert.False(t, h.engine.Programmatic())
	assert.Equal(t, ModeManual, h.engine.Mode(), "realign must not end the manual scroll")
	assert.False(t, h.engine.Advancing())

	h.clock.Advance(timings.Quiet)
	assert.Equal(t, ModeResumePending, h.engine.Mode())

	h.clock.Advance(timings.Resume)
	assert.True(t, h.engine.Advancing())

	h.clock.Advance(timings.Advance)
	assert.Greater(t, len(h.parent.commits), before, "auto-advance resumed")
	h.assertSettled(t)
}
