package carousel

// Start arms the auto-advance timer. It does nothing while paused.
func (e *Engine) Start() {
	if e.closed || e.paused {
		return
	}
	e.advancing = true
	e.sched.Schedule(TimerAdvance, e.timings.Advance, e.advance)
}

// Stop cancels auto-advance. Stopping a stopped engine is a no-op.
func (e *Engine) Stop() {
	if e.closed || !e.advancing {
		return
	}
	e.advancing = false
	e.sched.Cancel(TimerAdvance)
}

// Restart resets the auto-advance countdown.
func (e *Engine) Restart() {
	e.Stop()
	e.Start()
}

// Pause holds auto-advance while the pointer is over the carousel.
func (e *Engine) Pause() {
	if e.closed {
		return
	}
	e.paused = true
	e.Stop()
}

// Resume releases a Pause. While a manual scroll is unresolved the resume
// timer stays in charge of restarting auto-advance.
func (e *Engine) Resume() {
	if e.closed || !e.paused {
		return
	}
	e.paused = false
	if e.manual || e.resumePending {
		return
	}
	e.Start()
}

// advance reads the virtual index at fire time, not at schedule time.
func (e *Engine) advance() {
	if e.closed || !e.advancing {
		return
	}
	e.sched.Schedule(TimerAdvance, e.timings.Advance, e.advance)

	from := e.virtual
	next := (e.space.Logical(from) + 1) % e.space.N()
	target := e.space.Nearest(next, from)
	e.virtual = target
	e.log.Debug().Int("next", next).Int("virtual", target).Msg("carousel auto-advance")
	e.commit(next)
	e.scroll(target, true)
}
