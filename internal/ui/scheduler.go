package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/carousel"
)

// outbox collects commands produced while an engine runs inside Update.
type outbox struct {
	cmds []tea.Cmd
}

func (o *outbox) push(cmd tea.Cmd) {
	if cmd != nil {
		o.cmds = append(o.cmds, cmd)
	}
}

func (o *outbox) drain() tea.Cmd {
	if len(o.cmds) == 0 {
		return nil
	}
	cmd := tea.Batch(o.cmds...)
	o.cmds = nil
	return cmd
}

// timerMsg is delivered when a scheduled engine timer elapses.
type timerMsg struct {
	view *domainView
	kind carousel.TimerKind
	gen  uint64
}

// teaScheduler implements carousel.Scheduler on top of tea.Tick. Every
// Schedule or Cancel bumps the kind's generation; ticks carrying an older
// generation are dropped when they arrive.
type teaScheduler struct {
	view  *domainView
	out   *outbox
	slots map[carousel.TimerKind]*timerSlot
}

type timerSlot struct {
	gen    uint64
	armed  bool
	action func()
}

func newTeaScheduler(view *domainView, out *outbox) *teaScheduler {
	slots := make(map[carousel.TimerKind]*timerSlot, len(carousel.TimerKinds))
	for _, kind := range carousel.TimerKinds {
		slots[kind] = &timerSlot{}
	}
	return &teaScheduler{view: view, out: out, slots: slots}
}

// Schedule implements carousel.Scheduler.
func (s *teaScheduler) Schedule(kind carousel.TimerKind, delay time.Duration, action func()) {
	slot, ok := s.slots[kind]
	if !ok {
		return
	}
	slot.gen++
	slot.armed = true
	slot.action = action
	msg := timerMsg{view: s.view, kind: kind, gen: slot.gen}
	s.out.push(tea.Tick(delay, func(time.Time) tea.Msg { return msg }))
}

// Cancel implements carousel.Scheduler.
func (s *teaScheduler) Cancel(kind carousel.TimerKind) {
	if slot, ok := s.slots[kind]; ok {
		slot.gen++
		slot.armed = false
		slot.action = nil
	}
}

// fire runs the action for kind if gen is still current.
func (s *teaScheduler) fire(kind carousel.TimerKind, gen uint64) bool {
	slot, ok := s.slots[kind]
	if !ok || !slot.armed || slot.gen != gen {
		return false
	}
	action := slot.action
	slot.armed = false
	slot.action = nil
	if action != nil {
		action()
	}
	return true
}

func (s *teaScheduler) pending(kind carousel.TimerKind) bool {
	slot, ok := s.slots[kind]
	return ok && slot.armed
}
