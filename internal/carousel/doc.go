// Package carousel implements an infinite-looping, auto-advancing carousel
// engine that is independent of any rendering toolkit.
//
// # Overview
//
// An Engine presents N logical items as a strip that never runs out in either
// direction. The strip is built from Copies (three) back-to-back repetitions of
// the item set, and the engine keeps the visible item near the middle copy by
// silently jumping one copy toward the center whenever the position drifts
// into the outer halves. The jump lands on a pixel-identical layout, so the
// user never sees it.
//
// The logical index is owned by the caller. The engine reports the index it
// wants through IndexSource.SetIndex and learns about outside changes through
// Engine.IndexChanged. The virtual index (which copy is showing) is private.
//
// # Index Space
//
//	N = 3, Copies = 3
//
//	virtual:  0  1  2 | 3  4  5 | 6  7  8
//	logical:  A  B  C | A  B  C | A  B  C
//	                  └─ middle ─┘
//
//	window:   (floor(N/2), floor(5N/2)) = (1, 7)
//	          v <= 1  → v + N
//	          v >= 7  → v - N
//
// Space holds the arithmetic: Logical, Middle, Candidates, Nearest and Rebase.
// Nearest picks the copy of a logical index closest to the current virtual
// index so programmatic moves always take the short way round.
//
// # State Machine
//
// Every operation runs on a single event loop. The engine's observable Mode
// moves between:
//
//   - auto: idle, advance timer armed
//   - programmatic: an engine-issued scroll is in flight
//   - manual: the user is scrolling; advance is suspended
//   - settling: the quiet window elapsed and the nearest item is resolved
//   - teleporting: an instant jump back into the steady-state window
//   - resume-pending: waiting to restart auto-advance after a manual scroll
//
// Scroll events that arrive while a programmatic scroll is in flight are
// ignored. A settle that changes the logical index marks the change as
// scroll-originated, and the matching IndexChanged call is consumed once
// without issuing another scroll.
//
// # Collaborators
//
// The engine never touches a clock, a screen or a layout directly:
//
//   - Geometry: viewport width, item boxes, current scroll offset
//   - Viewport: receives ScrollTo(offset, smooth) commands
//   - Scheduler: one pending timer per TimerKind, same-kind calls supersede
//   - IndexSource: the parent-owned logical index
//
// VirtualClock is a deterministic Scheduler for tests and simulations. The
// terminal UI supplies a bubbletea-backed scheduler and a spring-animated
// viewport.
//
// # Timings
//
//   - Advance: 10s between automatic moves
//   - ProgrammaticSettle: 400ms guard after a smooth scroll
//   - Quiet: 140ms without scroll events before settling
//   - Resume: 2s after a settle before auto-advance restarts
//   - Teleport: 16ms guard after an instant scroll
//
// # Usage Example
//
//	e, err := carousel.New(carousel.Options{
//		Items:     items,
//		Index:     parent,
//		Geometry:  layout,
//		Viewport:  view,
//		Scheduler: sched,
//	})
//	if err != nil {
//		return err
//	}
//	e.Mount()
//	defer e.Close()
package carousel
