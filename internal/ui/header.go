package ui

import (
	"github.com/five82/pacer/internal/state"
)

// renderHeader renders the top bar: logo, view tabs, page title, the page
// status and, on wide terminals, the API address.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("pacer", styles.Logo)}
	for _, route := range viewOrder {
		label := routeLabel(route)
		if route == m.router.Current() {
			parts = append(parts, bg.Render(label, styles.AccentText.Bold(true)))
			continue
		}
		parts = append(parts, bg.Render(label, styles.MutedText))
	}
	if m.router.Current() == RouteDiary {
		parts = append(parts, bg.Render(m.diary.date.Title(), styles.Text))
	}
	if chip := m.renderStatusChip(styles, bg); chip != "" {
		parts = append(parts, chip)
	}
	if m.width >= LayoutCompactWidth && m.config.APIURL != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.config.APIURL, 40), styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderStatusChip shows the visible page's status. Two failed cycles in a
// row mark the API offline until a cycle succeeds.
func (m Model) renderStatusChip(styles Styles, bg BgStyle) string {
	status := m.currentStatus()
	if status == nil {
		return bg.Render("sign in", styles.WarningText.Bold(true))
	}
	switch {
	case status.Loading():
		return bg.Render(m.spinner.View()+" loading", styles.MutedText)
	case status.IsOffline():
		return styles.StatusStyle("offline").Render("OFFLINE")
	case status.Kind() == state.Failed:
		return styles.StatusStyle("failed").Render("ERROR")
	case status.Kind() == state.Idle:
		return bg.Render("updated "+status.SettledAt().Format("15:04:05"), styles.FaintText)
	}
	return ""
}

func routeLabel(route string) string {
	switch route {
	case RouteStatistics:
		return "Statistics"
	default:
		return "Diary"
	}
}
