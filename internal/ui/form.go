package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/orchid/internal/browse"
	"github.com/five82/orchid/internal/catalog"
)

type formMode int

const (
	formCreate formMode = iota
	formUpdate
)

var formFields = []struct {
	label       string
	placeholder string
}{
	{"Name", "Moth Orchid"},
	{"Origin", "Taiwan"},
	{"Color", "white"},
	{"Weight (g)", "0.8"},
	{"Bonus", "ceramic pot"},
	{"Price", "24.50"},
	{"Rating", "4.5"},
	{"Image URL", "https://"},
}

const (
	fieldName = iota
	fieldOrigin
	fieldColor
	fieldWeight
	fieldBonus
	fieldPrice
	fieldRating
	fieldImage
)

type formSubmittedMsg struct {
	mode       formMode
	categoryID string
	itemID     string
	draft      browse.Draft
}

// itemFormModal edits every field of an item. The row after the text
// fields is the top-of-the-week toggle.
type itemFormModal struct {
	mode       formMode
	categoryID string
	title      string
	itemID     string
	inputs     []textinput.Model
	top        bool
	focus      int
}

func newCreateForm(category catalog.Category) *itemFormModal {
	return newItemForm(formCreate, category.ID, "New item in "+category.Name, "", browse.Draft{})
}

func newUpdateForm(item catalog.Item) *itemFormModal {
	return newItemForm(formUpdate, catalog.CategoryIDOf(item.ID), "Edit "+item.ID, item.ID, browse.DraftFromItem(item))
}

func newItemForm(mode formMode, categoryID, title, itemID string, draft browse.Draft) *itemFormModal {
	values := []string{
		draft.Name, draft.Origin, draft.Color, draft.Weight,
		draft.Bonus, draft.Price, draft.Rating, draft.Image,
	}
	inputs := make([]textinput.Model, len(formFields))
	for i, field := range formFields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.CharLimit = 256
		in.Width = 32
		in.SetValue(values[i])
		inputs[i] = in
	}
	inputs[0].Focus()
	return &itemFormModal{
		mode:       mode,
		categoryID: categoryID,
		title:      title,
		itemID:     itemID,
		inputs:     inputs,
		top:        draft.TopOfTheWeek,
	}
}

func (f *itemFormModal) draft() browse.Draft {
	v := func(i int) string { return f.inputs[i].Value() }
	return browse.Draft{
		Name:         v(fieldName),
		Origin:       v(fieldOrigin),
		Color:        v(fieldColor),
		Weight:       v(fieldWeight),
		Bonus:        v(fieldBonus),
		Price:        v(fieldPrice),
		Rating:       v(fieldRating),
		Image:        v(fieldImage),
		TopOfTheWeek: f.top,
	}
}

func (f *itemFormModal) onToggle() bool {
	return f.focus == len(f.inputs)
}

func (f *itemFormModal) setFocus(i int) {
	n := len(f.inputs) + 1
	f.focus = (i%n + n) % n
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f *itemFormModal) submit() (Modal, tea.Cmd, bool) {
	return f, emit(formSubmittedMsg{
		mode:       f.mode,
		categoryID: f.categoryID,
		itemID:     f.itemID,
		draft:      f.draft(),
	}), true
}

func (f *itemFormModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		if f.onToggle() {
			return f, nil, false
		}
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd, false
	}

	switch {
	case key.Matches(k, keys.Escape):
		return f, nil, true
	case key.Matches(k, keys.Submit):
		return f.submit()
	case key.Matches(k, keys.NextField):
		f.setFocus(f.focus + 1)
		return f, nil, false
	case key.Matches(k, keys.PrevField):
		f.setFocus(f.focus - 1)
		return f, nil, false
	case key.Matches(k, keys.Confirm):
		if f.onToggle() {
			return f.submit()
		}
		f.setFocus(f.focus + 1)
		return f, nil, false
	}

	if f.onToggle() {
		if k.String() == " " || k.String() == "x" {
			f.top = !f.top
		}
		return f, nil, false
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, false
}

func (f *itemFormModal) View(theme Theme, width int) string {
	styles := theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(f.title))
	b.WriteString("\n\n")

	label := styles.MutedText.Width(12)
	focused := styles.AccentText.Width(12)
	for i, field := range formFields {
		if i == f.focus {
			b.WriteString(focused.Render(field.label))
		} else {
			b.WriteString(label.Render(field.label))
		}
		b.WriteString(f.inputs[i].View())
		if i == fieldRating && f.mode == formUpdate {
			b.WriteString(styles.FaintText.Render("  saved as " + catalog.RatingOnUpdate))
		}
		b.WriteString("\n")
	}

	box := "[ ]"
	if f.top {
		box = "[x]"
	}
	row := box + " Top of the week"
	if f.onToggle() {
		b.WriteString(styles.Selected.Render(row))
	} else {
		b.WriteString(styles.Text.Render(row))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("tab next · ctrl+s save · esc cancel"))

	return styles.Modal.Width(min(width-4, 64)).Render(b.String())
}
