// Package output provides terminal output utilities for basketlift.
//
// This package includes:
//   - Rendering for rule evaluation results (counts and metrics)
//   - Table rendering for per-item support rankings
//   - Human-readable formatting for fractions and relative times
//
// All rendering uses ASCII characters and ANSI color codes for terminal
// output; colors are suppressed when stdout is not a TTY or NO_COLOR is set.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/basketlift/internal/analyzer"
	"github.com/blackwell-systems/basketlift/internal/store"
)

// ANSI color codes for metric display
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorGray  = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderResult renders a rule evaluation result: the rule, the basket
// counts behind it, and the three derived metrics.
func RenderResult(res *analyzer.Result) string {
	var sb strings.Builder

	sb.WriteString(colorize(colorBold, fmt.Sprintf("Rule: %s", res.Rule)))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("%-24s %d\n", "Baskets", res.TotalBaskets))
	sb.WriteString(fmt.Sprintf("%-24s %d\n", "With antecedent", res.Tally.Antecedent))
	sb.WriteString(fmt.Sprintf("%-24s %d\n", "With consequent", res.Tally.Consequent))
	sb.WriteString(fmt.Sprintf("%-24s %d\n", "With both", res.Tally.Both))
	sb.WriteString(strings.Repeat("─", 36))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%-24s %s\n", "Support", formatMetric(res.Metrics.Support)))
	sb.WriteString(fmt.Sprintf("%-24s %s\n", "Confidence", formatMetric(res.Metrics.Confidence)))
	sb.WriteString(fmt.Sprintf("%-24s %s\n", "Lift", formatLift(res.Metrics.Lift)))

	return sb.String()
}

// RenderItemTable renders a table of items ranked by basket presence.
func RenderItemTable(stats []store.ItemStat) string {
	if len(stats) == 0 {
		return "No items found. Run 'basketlift import' first.\n"
	}

	var sb strings.Builder

	// Header
	sb.WriteString(fmt.Sprintf("%-24s %-10s %s\n", "Item", "Baskets", "Support"))
	sb.WriteString(strings.Repeat("─", 44))
	sb.WriteString("\n")

	// Rows
	for _, st := range stats {
		sb.WriteString(fmt.Sprintf("%-24s %-10d %s\n",
			truncate(st.Item, 24),
			st.Baskets,
			formatMetric(st.Support)))
	}

	return sb.String()
}

// RenderDatasetSummary renders a short summary of the imported dataset.
func RenderDatasetSummary(info *store.DatasetInfo, baskets, items int) string {
	var sb strings.Builder

	if info != nil {
		sb.WriteString(fmt.Sprintf("%-24s %s\n", "Source", info.Source))
		sb.WriteString(fmt.Sprintf("%-24s %s\n", "Imported", formatRelativeTime(info.ImportedAt)))
	}
	sb.WriteString(fmt.Sprintf("%-24s %d\n", "Baskets", baskets))
	sb.WriteString(fmt.Sprintf("%-24s %d\n", "Distinct items", items))

	return sb.String()
}

// formatMetric formats a metric value to four decimal places.
func formatMetric(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

// formatLift color-codes lift: green when the antecedent makes the
// consequent more likely (lift >= 1), red when it makes it less likely.
func formatLift(lift float64) string {
	text := formatMetric(lift)
	if lift >= 1 {
		return colorize(colorGreen, text)
	}
	return colorize(colorRed, text)
}

// formatRelativeTime formats a time as a human-readable relative string.
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	days := int(time.Since(t).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "1 day ago"
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	case days < 365:
		months := days / 30
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	default:
		years := days / 365
		if years == 1 {
			return "1 year ago"
		}
		return fmt.Sprintf("%d years ago", years)
	}
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
