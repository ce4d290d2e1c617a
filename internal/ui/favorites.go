package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/orchid/internal/catalog"
)

func (m Model) selectedFavorite() (catalog.Item, bool) {
	if m.favoritesCursor < 0 || m.favoritesCursor >= len(m.favorites) {
		return catalog.Item{}, false
	}
	return m.favorites[m.favoritesCursor], true
}

func (m Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.RemoveFavorite, m.keys.ToggleFavorite) {
		return m, nil
	}
	item, ok := m.selectedFavorite()
	if !ok {
		return m, nil
	}
	if err := m.browse.Favorites().Remove(item.ID); err != nil {
		m.setStatus("Favorite not removed: "+err.Error(), true)
		return m, nil
	}
	m.setStatus("Removed "+item.Name+" from favorites", false)
	m.refreshData()
	return m, nil
}

// renderFavoriteRows lists the saved snapshots. Items deleted from the
// catalog stay listed and are marked as such.
func (m Model) renderFavoriteRows() []string {
	styles := m.theme.Styles()
	if len(m.favorites) == 0 {
		return []string{styles.MutedText.Render("No favorites yet. Press f on a catalog item to add one.")}
	}

	width := max(m.width, LayoutMinWidth)
	live := m.liveItemIDs()
	lines := make([]string, 0, len(m.favorites))
	for i, item := range m.favorites {
		line := m.renderItemLine(item, true, i == m.favoritesCursor, width)
		if m.snapshot.HasCatalog && !live[item.ID] {
			line += " " + styles.FaintText.Render("(no longer listed)")
		}
		lines = append(lines, line)
	}
	return lines
}

func (m Model) liveItemIDs() map[string]bool {
	ids := make(map[string]bool, m.snapshot.ItemCount())
	for _, c := range m.snapshot.Categories {
		for _, item := range c.Items {
			ids[item.ID] = true
		}
	}
	return ids
}

func (m Model) renderFavoriteDetail() string {
	item, ok := m.selectedFavorite()
	if !ok {
		return ""
	}
	return m.theme.Styles().MutedText.Render(itemAttributes(item) + " · x to remove")
}
