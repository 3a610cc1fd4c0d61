package carousel

// OnScroll reports physical scroll movement. Motion caused by the engine's own
// scroll commands is ignored; anything else is user intent and suspends
// auto-advance until the viewport settles.
func (e *Engine) OnScroll() {
	if e.closed || e.programmatic {
		return
	}
	if !e.manual {
		e.Stop()
		e.sched.Cancel(TimerResume)
		e.manual = true
		e.resumePending = false
	}
	e.setMode(ModeManual)
	e.sched.Schedule(TimerSettle, e.timings.Quiet, e.settle)
}

// settle runs once scrolling has been quiet for the debounce window. An
// engine jump in flight (a resize realign) postpones it by another window.
func (e *Engine) settle() {
	if e.closed {
		return
	}
	if e.programmatic {
		e.sched.Schedule(TimerSettle, e.timings.Quiet, e.settle)
		return
	}
	e.manual = false
	e.setMode(ModeSettling)

	v, ok := nearestItem(e.geom, e.space.Len())
	if !ok {
		v = e.virtual
	}
	e.virtual = v

	logical := e.space.Logical(v)
	if logical != e.index.Index() {
		e.fromScroll = logical
		e.commit(logical)
	}

	e.resumePending = true
	e.sched.Schedule(TimerResume, e.timings.Resume, e.resume)

	if e.space.NeedsRebase(v) {
		e.teleport()
		return
	}
	e.setMode(ModeResumePending)
}

func (e *Engine) resume() {
	if e.closed {
		return
	}
	e.resumePending = false
	if !e.programmatic {
		e.setMode(ModeAuto)
	}
	e.Start()
}
