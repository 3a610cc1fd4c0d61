package carousel

// Previous moves to the item before the parent's current index, wrapping.
func (e *Engine) Previous() {
	if e.closed {
		return
	}
	e.GoTo(e.index.Index() - 1)
}

// Next moves to the item after the parent's current index, wrapping.
func (e *Engine) Next() {
	if e.closed {
		return
	}
	e.GoTo(e.index.Index() + 1)
}

// GoTo commits logical index i, anchors the virtual index on the middle copy
// and scrolls there. A repeated call for a target already in flight re-arms
// the guard without issuing a second scroll.
func (e *Engine) GoTo(i int) {
	if e.closed {
		return
	}
	i = e.space.Logical(i)
	target := e.space.Middle(i)

	e.supersedeManual()
	e.fromScroll = -1
	e.virtual = target
	e.commit(i)

	if e.programmatic && e.scrollTarget == target {
		e.sched.Schedule(TimerProgrammatic, e.timings.ProgrammaticSettle, e.programmaticDone)
	} else {
		e.scroll(target, true)
	}
	e.Restart()
}

// Realign jumps to the current item without animation. Hosts call it after
// the viewport or item sizes change, since offsets are never cached.
func (e *Engine) Realign() {
	if e.closed {
		return
	}
	e.scroll(e.virtual, false)
}
