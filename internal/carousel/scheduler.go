package carousel

import (
	"sort"
	"time"
)

// TimerKind names one of the engine's timer slots. At most one timer per kind
// is pending; scheduling a kind replaces whatever was pending for it.
type TimerKind int

const (
	TimerAdvance TimerKind = iota
	TimerSettle
	TimerResume
	TimerProgrammatic
)

// TimerKinds lists every slot, in declaration order.
var TimerKinds = []TimerKind{TimerAdvance, TimerSettle, TimerResume, TimerProgrammatic}

func (k TimerKind) String() string {
	switch k {
	case TimerAdvance:
		return "advance"
	case TimerSettle:
		return "settle"
	case TimerResume:
		return "resume"
	case TimerProgrammatic:
		return "programmatic"
	default:
		return "unknown"
	}
}

// Scheduler runs actions after a delay on the caller's event loop.
type Scheduler interface {
	Schedule(kind TimerKind, delay time.Duration, action func())
	Cancel(kind TimerKind)
}

// VirtualClock is a Scheduler driven by explicit Advance calls.
type VirtualClock struct {
	now    time.Duration
	seq    uint64
	timers map[TimerKind]virtualTimer
}

type virtualTimer struct {
	due    time.Duration
	seq    uint64
	action func()
}

// NewVirtualClock returns a clock at time zero with nothing pending.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{timers: make(map[TimerKind]virtualTimer)}
}

// Schedule implements Scheduler.
func (c *VirtualClock) Schedule(kind TimerKind, delay time.Duration, action func()) {
	if delay < 0 {
		delay = 0
	}
	c.seq++
	c.timers[kind] = virtualTimer{due: c.now + delay, seq: c.seq, action: action}
}

// Cancel implements Scheduler.
func (c *VirtualClock) Cancel(kind TimerKind) {
	delete(c.timers, kind)
}

// Now returns the elapsed virtual time.
func (c *VirtualClock) Now() time.Duration { return c.now }

// Pending reports whether a timer of kind is armed.
func (c *VirtualClock) Pending(kind TimerKind) bool {
	_, ok := c.timers[kind]
	return ok
}

// PendingKinds returns the armed kinds in declaration order.
func (c *VirtualClock) PendingKinds() []TimerKind {
	out := make([]TimerKind, 0, len(c.timers))
	for k := range c.timers {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Advance moves the clock forward by d, firing due timers in order. Actions
// may schedule further timers; those fire too if they fall inside d.
func (c *VirtualClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		kind, t, ok := c.next(target)
		if !ok {
			break
		}
		delete(c.timers, kind)
		c.now = t.due
		t.action()
	}
	c.now = target
}

func (c *VirtualClock) next(limit time.Duration) (TimerKind, virtualTimer, bool) {
	var (
		bestKind TimerKind
		best     virtualTimer
		found    bool
	)
	for k, t := range c.timers {
		if t.due > limit {
			continue
		}
		if !found || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			bestKind, best, found = k, t, true
		}
	}
	return bestKind, best, found
}
