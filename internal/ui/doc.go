// Package ui provides the Bubble Tea terminal interface for Marquee.
//
// # Architecture Overview
//
// The root Model renders one horizontal carousel per catalog domain. Each
// carousel is a domainView that owns a carousel.Engine and the terminal
// collaborators the engine drives:
//
//   - layout: cell geometry of the strip (carousel.Geometry)
//   - animator: harmonica spring that glides the strip offset (carousel.Viewport)
//   - teaScheduler: tea.Tick based timers (carousel.Scheduler)
//   - state.Binding: the domain's index in the shared store (carousel.IndexSource)
//
// # Event Loop
//
// Bubble Tea delivers every message on one goroutine, which is the only place
// engines are called. Engine calls may schedule timers or start animations;
// those produce tea.Cmds that are queued in the view's outbox and returned
// from Update. Timer and frame messages carry a generation number, and any
// message whose generation was superseded by a later Schedule, Cancel or
// stop is dropped on arrival.
//
// # Package Structure
//
//   - app.go: Model, Update/View, snapshot handling, and Run
//   - carousel_view.go: per-domain wiring, pause holds, drag state
//   - layout.go: responsive card sizing and hit testing
//   - animator.go: smooth scrolling
//   - scheduler.go: timer adapter and outbox
//   - input.go: mouse routing through bubblezone zones
//   - render.go, header.go, status.go: rendering
//   - keys.go, help.go: key bindings and help overlay
//   - theme.go, style_helpers.go: palettes and Lipgloss styles
//
// # Input
//
// Keyboard input goes to the focused carousel: arrows step, digits jump by
// changing the parent index, H/L scroll like a wheel, and space toggles a
// hold. Mouse hover over a strip pauses auto-advance; wheel and drag scroll
// it; clicking an arrow or dot navigates; clicking a card selects it.
//
// # Auto-Refresh
//
// The model polls the state.Store every second. A new revision with the same
// domains swaps items into the existing engines; a different domain set
// rebuilds every view.
package ui
