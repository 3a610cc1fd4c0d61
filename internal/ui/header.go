package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// renderHeader renders the top bar: logo and source on the left, catalog
// status on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	left := []string{bg.Render("MARQUEE", styles.Logo)}
	if m.source != "" {
		left = append(left, bg.Render(truncateMiddle(m.source, 48), styles.MutedText))
	}
	leftText := bg.Join(left, "  ")
	status := m.renderStatus(styles, bg)

	gap := max(m.width-ansi.StringWidth(leftText)-ansi.StringWidth(status)-2, 1)
	line := bg.Space() + leftText + bg.Spaces(gap) + status
	return bg.FillLine(ansi.Truncate(line, m.width, ""), m.width)
}

// renderStatus summarises the store snapshot.
func (m Model) renderStatus(styles Styles, bg BgStyle) string {
	snap := m.snapshot
	switch {
	case snap.IsOffline():
		return bg.Render(fmt.Sprintf("offline (%d failures)", snap.ConsecutiveFailures), styles.DangerText)
	case snap.LastError != nil && snap.HasCatalog():
		return bg.Render("refresh failed", styles.WarningText)
	case !snap.HasCatalog():
		return bg.Render("loading", styles.MutedText)
	}
	status := bg.Render(fmt.Sprintf("● %d carousels", len(snap.Catalog.Domains)), styles.SuccessText)
	if !snap.LastUpdated.IsZero() {
		status += bg.Spaces(2) + bg.Render("updated "+humanizeDuration(time.Since(snap.LastUpdated)), styles.FaintText)
	}
	if !m.prefs.AutoAdvance {
		status += bg.Spaces(2) + bg.Render("auto-advance off", styles.WarningText)
	}
	return status
}
