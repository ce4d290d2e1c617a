package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/orchid/internal/logtail"
)

const logViewLines = 200

// logModal shows the tail of orchid's own log file.
type logModal struct {
	path   string
	lines  []string
	err    error
	offset int // lines scrolled up from the bottom
}

func newLogModal(path string) logModal {
	m := logModal{path: path}
	m.reload()
	return m
}

func (l *logModal) reload() {
	l.lines, l.err = logtail.Tail(l.path, logViewLines)
	l.offset = 0
}

func (l logModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil, false
	}
	switch {
	case key.Matches(k, keys.Escape, keys.ShowLog, keys.Confirm):
		return l, nil, true
	case key.Matches(k, keys.Refresh):
		l.reload()
	case key.Matches(k, keys.Up):
		l.offset = min(l.offset+1, max(0, len(l.lines)-1))
	case key.Matches(k, keys.Down):
		l.offset = max(0, l.offset-1)
	case key.Matches(k, keys.Bottom):
		l.offset = 0
	}
	return l, nil, false
}

func (l logModal) View(theme Theme, width int) string {
	styles := theme.Styles()
	inner := max(20, min(width-8, 100))

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Log"))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(truncateMiddle(l.path, inner-6)))
	b.WriteString("\n\n")

	switch {
	case l.err != nil:
		b.WriteString(styles.DangerText.Render(l.err.Error()))
	case len(l.lines) == 0:
		b.WriteString(styles.MutedText.Render("Nothing logged yet."))
	default:
		for _, line := range l.visible(logViewRows) {
			b.WriteString(styles.Text.Render(truncate(line, inner)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("j/k scroll · r reload · esc close"))
	return styles.Modal.Width(inner + 4).Render(b.String())
}

// visible returns up to rows lines ending offset lines above the newest.
func (l logModal) visible(rows int) []string {
	end := len(l.lines) - l.offset
	start := max(0, end-rows)
	return l.lines[start:end]
}
