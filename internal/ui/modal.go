package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width int) string
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// noticeModal blocks until acknowledged. Used for sign-in problems.
type noticeModal struct {
	title string
	body  string
}

func (n noticeModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(k, keys.Confirm, keys.Escape) {
			return n, nil, true
		}
	}
	return n, nil, false
}

func (n noticeModal) View(theme Theme, width int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.DangerText.Render(n.title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(n.body))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter to dismiss"))
	return styles.Modal.Width(min(width-4, 56)).Render(b.String())
}

type deleteConfirmedMsg struct {
	itemID string
}

// confirmDeleteModal asks before an item is removed from its category.
type confirmDeleteModal struct {
	itemID string
	name   string
}

func (c confirmDeleteModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(k, keys.Yes, keys.Confirm):
		return c, emit(deleteConfirmedMsg{itemID: c.itemID}), true
	case key.Matches(k, keys.No, keys.Escape):
		return c, nil, true
	}
	return c, nil, false
}

func (c confirmDeleteModal) View(theme Theme, width int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.WarningText.Bold(true).Render("Delete item"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("Remove " + c.name + " (" + c.itemID + ") from the catalog?"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Favorites keep their copy."))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render("y"))
	b.WriteString(styles.MutedText.Render(" delete   "))
	b.WriteString(styles.AccentText.Render("n"))
	b.WriteString(styles.MutedText.Render(" cancel"))
	return styles.Modal.Width(min(width-4, 56)).Render(b.String())
}
