package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/orchid/internal/browse"
	"github.com/five82/orchid/internal/catalog"
)

// catalogRow is either a section header (item == nil) or an item line.
type catalogRow struct {
	category catalog.Category
	item     *catalog.Item
}

func buildCatalogRows(categories []catalog.Category) []catalogRow {
	rows := make([]catalogRow, 0, len(categories)*4)
	for _, c := range categories {
		header := catalog.Category{ID: c.ID, Name: c.Name}
		rows = append(rows, catalogRow{category: header})
		for i := range c.Items {
			rows = append(rows, catalogRow{category: header, item: &c.Items[i]})
		}
	}
	return rows
}

type mutationDoneMsg struct {
	action string // add, update, delete
	itemID string
	err    error
}

var mutationPastTense = map[string]string{
	"add":    "Added",
	"update": "Updated",
	"delete": "Deleted",
}

func (m Model) catalogRows() []catalogRow {
	return buildCatalogRows(m.snapshot.Categories)
}

func (m Model) selectedRow() (catalogRow, bool) {
	rows := m.catalogRows()
	if m.catalogCursor < 0 || m.catalogCursor >= len(rows) {
		return catalogRow{}, false
	}
	return rows[m.catalogCursor], true
}

func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m, m.focusCatalog()

	case key.Matches(msg, m.keys.ToggleFavorite):
		row, ok := m.selectedRow()
		if !ok || row.item == nil {
			return m, nil
		}
		added, err := m.browse.ToggleFavorite(*row.item)
		switch {
		case err != nil:
			m.setStatus("Favorite not saved: "+err.Error(), true)
		case added:
			m.setStatus("Added "+row.item.Name+" to favorites", false)
		default:
			m.setStatus("Removed "+row.item.Name+" from favorites", false)
		}
		m.refreshData()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		row, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		m.modal = newCreateForm(row.category)
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		row, ok := m.selectedRow()
		if !ok || row.item == nil {
			return m, nil
		}
		m.modal = newUpdateForm(*row.item)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		row, ok := m.selectedRow()
		if !ok || row.item == nil {
			return m, nil
		}
		m.modal = confirmDeleteModal{itemID: row.item.ID, name: row.item.Name}
		return m, nil
	}
	return m, nil
}

func (m Model) startSubmit(msg formSubmittedMsg) (tea.Model, tea.Cmd) {
	model := m.browse
	m.mutating++
	if msg.mode == formCreate {
		return m, m.runTask(screenCatalog, func(ctx context.Context) tea.Msg {
			item, err := model.Create(ctx, msg.categoryID, msg.draft)
			return mutationDoneMsg{action: "add", itemID: item.ID, err: err}
		})
	}
	return m, m.runTask(screenCatalog, func(ctx context.Context) tea.Msg {
		err := model.Update(ctx, msg.itemID, msg.draft)
		return mutationDoneMsg{action: "update", itemID: msg.itemID, err: err}
	})
}

func (m Model) startDelete(itemID string) (tea.Model, tea.Cmd) {
	model := m.browse
	m.mutating++
	return m, m.runTask(screenCatalog, func(ctx context.Context) tea.Msg {
		return mutationDoneMsg{action: "delete", itemID: itemID, err: model.Delete(ctx, itemID)}
	})
}

func (m Model) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	m.mutating = max(0, m.mutating-1)
	m.refreshData()
	switch {
	case errors.Is(msg.err, context.Canceled):
	case msg.err != nil:
		m.setStatus(mutationErrorText(msg), true)
	default:
		m.setStatus(fmt.Sprintf("%s %s", mutationPastTense[msg.action], msg.itemID), false)
	}
	return m, nil
}

func mutationErrorText(msg mutationDoneMsg) string {
	action := msg.action
	switch {
	case errors.Is(msg.err, browse.ErrItemNotFound), errors.Is(msg.err, browse.ErrCategoryNotFound):
		return fmt.Sprintf("Could not %s %s: no longer in the catalog", action, msg.itemID)
	case errors.Is(msg.err, catalog.ErrMalformedID):
		return "Could not add: last item id in this section has no number"
	}
	return fmt.Sprintf("Could not %s: %v", action, msg.err)
}

// renderCatalogRows renders one line per row with the cursor highlighted.
func (m Model) renderCatalogRows() []string {
	styles := m.theme.Styles()
	rows := m.catalogRows()
	if len(rows) == 0 {
		if m.snapshot.HasCatalog {
			return []string{styles.MutedText.Render("The catalog is empty.")}
		}
		if m.busy() {
			return []string{styles.MutedText.Render("Loading catalog...")}
		}
		return []string{styles.MutedText.Render("No catalog loaded. Press r to retry.")}
	}

	width := max(m.width, LayoutMinWidth)
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		selected := i == m.catalogCursor
		if row.item == nil {
			text := fmt.Sprintf("%s  %s", row.category.Name, styles.FaintText.Render("("+row.category.ID+")"))
			if selected {
				lines = append(lines, styles.Selected.Render("▸ "+row.category.Name+" ("+row.category.ID+")"))
			} else {
				lines = append(lines, styles.Section.Render(text))
			}
			continue
		}
		lines = append(lines, m.renderItemLine(*row.item, m.browse.IsFavorite(row.item.ID), selected, width))
	}
	return lines
}

// renderItemLine formats one item: favorite marker, id, name, attributes, price.
func (m Model) renderItemLine(item catalog.Item, favorite, selected bool, width int) string {
	styles := m.theme.Styles()

	marker := "  "
	if favorite {
		marker = "♥ "
	}
	name := truncate(item.Name, nameColumnWidth(width))
	plain := fmt.Sprintf("  %s%-6s %-*s %s  %s",
		marker, item.ID, nameColumnWidth(width), name, formatPrice(item.Price), formatRating(item.Rating))
	if width >= LayoutWideWidth {
		plain += "  " + itemAttributes(item)
	}

	if selected {
		line := styles.Selected.Render(plain)
		if item.IsTopOfTheWeek {
			line += " " + styles.TopOfWeek.Render("TOP")
		}
		return line
	}

	var b strings.Builder
	b.WriteString("  ")
	if favorite {
		b.WriteString(styles.Favorite.Render(marker))
	} else {
		b.WriteString(marker)
	}
	b.WriteString(styles.FaintText.Render(fmt.Sprintf("%-6s ", item.ID)))
	b.WriteString(styles.Text.Render(fmt.Sprintf("%-*s ", nameColumnWidth(width), name)))
	b.WriteString(styles.AccentText.Render(formatPrice(item.Price)))
	b.WriteString("  ")
	b.WriteString(styles.WarningText.Render(formatRating(item.Rating)))
	if width >= LayoutWideWidth {
		b.WriteString("  ")
		b.WriteString(styles.MutedText.Render(itemAttributes(item)))
	}
	if item.IsTopOfTheWeek {
		b.WriteString(" ")
		b.WriteString(styles.TopOfWeek.Render("TOP"))
	}
	return b.String()
}

// renderCatalogDetail describes the selected item under the list.
func (m Model) renderCatalogDetail() string {
	styles := m.theme.Styles()
	row, ok := m.selectedRow()
	if !ok {
		return ""
	}
	if row.item == nil {
		return styles.MutedText.Render("a: add an item to " + row.category.Name)
	}
	item := row.item
	parts := []string{itemAttributes(*item)}
	if strings.TrimSpace(item.Bonus) != "" {
		parts = append(parts, "bonus: "+item.Bonus)
	}
	if strings.TrimSpace(item.Image) != "" {
		parts = append(parts, truncateMiddle(item.Image, 48))
	}
	return styles.MutedText.Render(strings.Join(parts, " · "))
}
