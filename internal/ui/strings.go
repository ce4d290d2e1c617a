package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/orchid/internal/catalog"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle keeps both ends of a long value, e.g. an image URL.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%7.2f", v)
}

func formatRating(rating string) string {
	rating = strings.TrimSpace(rating)
	if rating == "" {
		return "★ -  "
	}
	return "★ " + rating
}

func formatWeight(v float64) string {
	if v == 0 {
		return "-"
	}
	return catalog.FormatNumber(v) + " g"
}

// itemAttributes joins origin, color, and weight, skipping blanks.
func itemAttributes(item catalog.Item) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{strings.TrimSpace(item.Origin), strings.TrimSpace(item.Color)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, formatWeight(item.Weight))
	return strings.Join(parts, " · ")
}

func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}
