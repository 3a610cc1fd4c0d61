package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/carousel"
)

// modeIndicator returns the glyph, label and style shown next to a carousel
// title. Holds take precedence over the engine mode.
func modeIndicator(v *domainView, styles Styles) (string, string, lipgloss.Style) {
	switch {
	case v.held(holdPref):
		return "■", "stopped", styles.FaintText
	case v.holds != 0:
		return "⏸", "paused", styles.WarningText
	}

	switch v.engine.Mode() {
	case carousel.ModeManual, carousel.ModeSettling:
		return "✋", "manual", styles.WarningText
	case carousel.ModeResumePending:
		return "…", "resuming", styles.MutedText
	case carousel.ModeProgrammatic, carousel.ModeTeleporting:
		return "»", "moving", styles.AccentText
	default:
		return "▶", "auto", styles.SuccessText
	}
}
