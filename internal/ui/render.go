package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/five82/marquee/internal/carousel"
)

// renderMain renders the header, as many carousels as fit, and the footer.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if len(m.views) == 0 {
		b.WriteString(m.renderEmpty(styles))
	} else {
		start, end := m.visibleSections()
		for i := start; i < end; i++ {
			b.WriteString(m.renderSection(m.views[i], i == m.focus, styles))
		}
	}

	body := lipgloss.NewStyle().Height(max(m.height-1, 0)).Render(b.String())
	return body + "\n" + styles.Footer.Render(m.help.View(m.keys))
}

// visibleSections returns the window of carousels that fits the terminal,
// keeping the focused one on screen.
func (m Model) visibleSections() (start, end int) {
	available := m.height - 3 // header, spacer, footer
	count := max(available/sectionHeight, 1)
	if m.focus >= count {
		start = m.focus - count + 1
	}
	return start, min(start+count, len(m.views))
}

func (m Model) renderEmpty(styles Styles) string {
	msg := "Waiting for events..."
	if err := m.snapshot.LastError; err != nil {
		return styles.DangerText.Render("  Unable to load events: ") + styles.MutedText.Render(err.Error())
	}
	return styles.MutedText.Render("  " + msg)
}

// renderSection renders one carousel: title row, card strip, then the
// arrow and dot row.
func (m Model) renderSection(v *domainView, focused bool, styles Styles) string {
	margin := strings.Repeat(" ", stripPadding)

	var b strings.Builder
	b.WriteString(m.renderTitle(v, focused, styles))
	b.WriteString("\n")
	for _, line := range strings.Split(m.zones.Mark(v.zoneID(zoneStrip), m.renderStrip(v, focused, styles)), "\n") {
		b.WriteString(margin)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(margin)
	b.WriteString(m.renderDots(v, styles))
	b.WriteString("\n\n")
	return b.String()
}

func (m Model) renderTitle(v *domainView, focused bool, styles Styles) string {
	marker := "  "
	if focused {
		marker = styles.AccentText.Render("› ")
	}
	glyph, label, style := modeIndicator(v, styles)
	return marker +
		styles.Title.Render(v.domain.Name) + "  " +
		styles.FaintText.Render(fmt.Sprintf("%d/%d", v.current()+1, v.engine.Len())) + "  " +
		style.Render(glyph+" "+label)
}

// renderStrip draws the virtual cards overlapping the viewport and clips them
// to the scroll offset.
func (m Model) renderStrip(v *domainView, focused bool, styles Styles) string {
	g := v.geom
	first, last := g.visible()
	if last < first {
		return strings.Repeat("\n", cardHeight-1)
	}

	items := v.engine.Virtualized()
	space := v.engine.Space()
	current := v.current()
	gap := strings.Repeat(" ", g.gap)

	blocks := make([]string, 0, 2*(last-first+1))
	for vi := first; vi <= last; vi++ {
		style := styles.Card
		if space.Logical(vi) == current {
			style = styles.ActiveCard
			if focused {
				style = styles.FocusCard
			}
		}
		if vi > first {
			blocks = append(blocks, gap)
		}
		blocks = append(blocks, renderCard(items[vi], g.cardWidth, style, styles.CardTitle))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	left := int(math.Floor(g.offset)) - first*g.pitch()
	lines := strings.Split(row, "\n")
	for i, line := range lines {
		cut := ansi.Cut(line, left, left+g.viewport)
		lines[i] = cut + strings.Repeat(" ", max(g.viewport-ansi.StringWidth(cut), 0))
	}
	return strings.Join(lines, "\n")
}

// renderCard draws one bordered card exactly width cells wide and
// cardHeight rows tall.
func renderCard(item carousel.Item, width int, style, titleStyle lipgloss.Style) string {
	inner := max(width-4, 1) // border and padding
	bodyRows := cardHeight - 4

	lines := strings.Split(wordwrap.String(item.Description, inner), "\n")
	if len(lines) > bodyRows {
		lines = lines[:bodyRows]
		lines[bodyRows-1] += "…"
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, inner, "…")
	}

	content := titleStyle.Render(ansi.Truncate(item.Title, inner, "…")) + "\n\n" + strings.Join(lines, "\n")
	return style.
		Width(width - 2).
		Height(cardHeight - 2).
		MaxHeight(cardHeight).
		Render(content)
}

// renderDots draws the previous arrow, one dot per item, and the next arrow,
// each marked as a mouse zone.
func (m Model) renderDots(v *domainView, styles Styles) string {
	current := v.current()
	parts := []string{m.zones.Mark(v.zoneID(zonePrev), styles.Arrow.Render("‹"))}
	for i := range v.engine.Len() {
		dot := styles.Dot.Render("○")
		if i == current {
			dot = styles.ActiveDot.Render("●")
		}
		parts = append(parts, m.zones.Mark(v.zoneID(v.domain.CardID(i)), dot))
	}
	parts = append(parts, m.zones.Mark(v.zoneID(zoneNext), styles.Arrow.Render("›")))
	return lipgloss.PlaceHorizontal(v.geom.viewport, lipgloss.Center, strings.Join(parts, " "))
}
