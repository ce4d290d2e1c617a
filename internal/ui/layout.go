package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutMinWidth is the narrowest width the list is laid out for.
	LayoutMinWidth = 60

	// LayoutWideWidth is the minimum width to show origin, color, and weight inline.
	LayoutWideWidth = 110
)

// Chrome lines around the list: header, tabs, detail, status, footer.
const chromeLines = 5

// DefaultTick is how often the UI re-reads shared state.
const DefaultTick = 250 * time.Millisecond

// logViewRows is how many log lines the log overlay shows at once.
const logViewRows = 14

// nameColumnWidth sizes the item name column for the terminal width.
func nameColumnWidth(width int) int {
	switch {
	case width >= LayoutWideWidth:
		return 32
	case width >= 80:
		return 24
	default:
		return 16
	}
}
