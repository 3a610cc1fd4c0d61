package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Zone names within a view; see domainView.zoneID.
const (
	zoneStrip = "strip"
	zonePrev  = "prev"
	zoneNext  = "next"
)

// handleMouse routes mouse input to the carousel under the pointer.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	for i, v := range m.views {
		strip := m.zones.Get(v.zoneID(zoneStrip))
		over := inZone(strip, msg)
		v.setHold(holdHover, over)

		switch msg.Action {
		case tea.MouseActionMotion:
			v.dragTo(msg.X)

		case tea.MouseActionRelease:
			if !v.drag.active {
				continue
			}
			click := msg.X == v.drag.startX
			v.endDrag()
			if click && over {
				m.clickCard(v, strip, msg)
			}

		case tea.MouseActionPress:
			if m.pressView(v, over, msg) {
				m.focus = i
			}
		}
	}
}

// pressView handles a button press for one view and reports whether the view
// took it.
func (m *Model) pressView(v *domainView, over bool, msg tea.MouseMsg) bool {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if over {
			v.nudge(-wheelStep)
		}
		return over
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if over {
			v.nudge(wheelStep)
		}
		return over
	case tea.MouseButtonLeft:
	default:
		return false
	}

	switch {
	case inZone(m.zones.Get(v.zoneID(zonePrev)), msg):
		v.engine.Previous()
		return true
	case inZone(m.zones.Get(v.zoneID(zoneNext)), msg):
		v.engine.Next()
		return true
	}
	for i := range v.engine.Len() {
		if inZone(m.zones.Get(v.zoneID(v.domain.CardID(i))), msg) {
			v.engine.GoTo(i)
			return true
		}
	}
	if over {
		v.beginDrag(msg.X)
	}
	return over
}

// clickCard selects the card under a click that did not move. The parent
// index changes, so the engine scrolls to the nearest copy.
func (m *Model) clickCard(v *domainView, strip *zone.ZoneInfo, msg tea.MouseMsg) {
	vi, ok := v.geom.itemAt(msg.X - strip.StartX)
	if !ok {
		return
	}
	v.binding.SetIndex(v.engine.Space().Logical(vi))
}

func inZone(z *zone.ZoneInfo, msg tea.MouseMsg) bool {
	return z != nil && !z.IsZero() && z.InBounds(msg)
}
