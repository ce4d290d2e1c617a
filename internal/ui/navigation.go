package ui

import "strings"

func (m Model) rowCount() int {
	switch m.screen {
	case screenCatalog:
		return len(m.catalogRows())
	case screenFavorites:
		return len(m.favorites)
	}
	return 0
}

func (m Model) cursorPos() int {
	if m.screen == screenFavorites {
		return m.favoritesCursor
	}
	return m.catalogCursor
}

func (m *Model) setCursor(pos int) {
	if m.screen == screenFavorites {
		m.favoritesCursor = pos
	} else {
		m.catalogCursor = pos
	}
}

// moveCursor shifts the selection by delta, clamped to the list.
func (m *Model) moveCursor(delta int) {
	m.setCursor(m.cursorPos() + delta)
	m.clampCursor()
	m.layoutList()
}

func (m *Model) clampCursor() {
	clamp := func(pos, n int) int {
		if pos >= n {
			pos = n - 1
		}
		if pos < 0 {
			pos = 0
		}
		return pos
	}
	m.catalogCursor = clamp(m.catalogCursor, len(m.catalogRows()))
	m.favoritesCursor = clamp(m.favoritesCursor, len(m.favorites))
}

// layoutList sizes the list viewport, fills it with the active screen's rows
// and scrolls so the cursor stays visible.
func (m *Model) layoutList() {
	m.list.Width = m.width
	m.list.Height = max(1, m.height-chromeLines)

	var lines []string
	switch m.screen {
	case screenCatalog:
		lines = m.renderCatalogRows()
	case screenFavorites:
		lines = m.renderFavoriteRows()
	}
	m.list.SetContent(strings.Join(lines, "\n"))

	cursor := m.cursorPos()
	switch {
	case cursor < m.list.YOffset:
		m.list.SetYOffset(cursor)
	case cursor >= m.list.YOffset+m.list.Height:
		m.list.SetYOffset(cursor - m.list.Height + 1)
	}
}
