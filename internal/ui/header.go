package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader draws the title line and the screen tabs.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.Section.Render("orchid") + styles.MutedText.Render(" · "+m.gate.Snapshot().User.Display())

	var right string
	switch {
	case m.busy():
		right = m.spinner.View() + styles.MutedText.Render(" working")
	case m.snapshot.IsOffline():
		right = styles.DangerText.Render(fmt.Sprintf("offline (%d failed loads)", m.snapshot.ConsecutiveFailures))
	case !m.snapshot.LastUpdated.IsZero():
		right = styles.FaintText.Render("updated " + humanizeDuration(time.Since(m.snapshot.LastUpdated)))
	}
	right = styles.FaintText.Render(m.apiBase+"  ") + right

	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	title := styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)

	return lipgloss.JoinVertical(lipgloss.Left, title, m.renderTabs())
}

func (m Model) renderTabs() string {
	styles := m.theme.Styles()
	tab := func(label string, active bool) string {
		if active {
			return styles.Selected.Padding(0, 1).Render(label)
		}
		return styles.MutedText.Padding(0, 1).Render(label)
	}
	catalogLabel := fmt.Sprintf("Catalog (%d)", m.snapshot.ItemCount())
	favoritesLabel := fmt.Sprintf("Favorites (%d)", len(m.favorites))
	return tab(catalogLabel, m.screen == screenCatalog) + " " + tab(favoritesLabel, m.screen == screenFavorites)
}

// renderFooter draws the selection detail, the status line, and key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var detail string
	if m.screen == screenFavorites {
		detail = m.renderFavoriteDetail()
	} else {
		detail = m.renderCatalogDetail()
	}

	status := styles.FaintText.Render(" ")
	if m.status != "" {
		if m.statusErr {
			status = styles.DangerText.Render(m.status)
		} else {
			status = styles.SuccessText.Render(m.status)
		}
	}

	hints := make([]string, 0, 8)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+" "+strings.ToLower(h.Desc))
	}
	footer := styles.Footer.Width(m.width).Render(truncate(strings.Join(hints, " · "), max(10, m.width-2)))

	return lipgloss.JoinVertical(lipgloss.Left, detail, status, footer)
}
