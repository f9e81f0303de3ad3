package output

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/basketlift/internal/analyzer"
	"github.com/blackwell-systems/basketlift/internal/rule"
	"github.com/blackwell-systems/basketlift/internal/store"
)

func testResult(t *testing.T) *analyzer.Result {
	t.Helper()
	r, err := rule.Parse("A -> B")
	if err != nil {
		t.Fatalf("failed to parse rule: %v", err)
	}
	return &analyzer.Result{
		Rule:         r,
		Tally:        analyzer.Tally{Antecedent: 1, Consequent: 2, Both: 1},
		TotalBaskets: 3,
		Metrics:      analyzer.Metrics{Support: 1.0 / 3.0, Confidence: 1.0, Lift: 1.5},
	}
}

func TestRenderResult(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	out := RenderResult(testResult(t))

	for _, want := range []string{
		"Rule: A -> B",
		"Baskets",
		"With antecedent",
		"With consequent",
		"With both",
		"Support",
		"0.3333",
		"Confidence",
		"1.0000",
		"Lift",
		"1.5000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	if strings.Contains(out, "\033[") {
		t.Error("expected no ANSI codes with NO_COLOR set")
	}
}

func TestRenderItemTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	stats := []store.ItemStat{
		{Item: "B", Baskets: 2, Support: 2.0 / 3.0},
		{Item: "A", Baskets: 1, Support: 1.0 / 3.0},
	}

	out := RenderItemTable(stats)

	if !strings.Contains(out, "Item") || !strings.Contains(out, "Support") {
		t.Errorf("expected table header, got:\n%s", out)
	}
	if !strings.Contains(out, "0.6667") {
		t.Errorf("expected support 0.6667 in output, got:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 { // header, separator, two rows
		t.Errorf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
}

func TestRenderItemTable_Empty(t *testing.T) {
	out := RenderItemTable(nil)
	if !strings.Contains(out, "No items found") {
		t.Errorf("expected empty-table message, got %q", out)
	}
}

func TestRenderDatasetSummary(t *testing.T) {
	info := &store.DatasetInfo{
		Source:     "transactions.csv",
		ImportedAt: time.Now().Add(-48 * time.Hour),
	}

	out := RenderDatasetSummary(info, 120, 34)

	for _, want := range []string{"transactions.csv", "2 days ago", "120", "34"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected summary to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderDatasetSummary_NoInfo(t *testing.T) {
	out := RenderDatasetSummary(nil, 5, 3)

	if strings.Contains(out, "Source") {
		t.Errorf("expected no source line without info, got:\n%s", out)
	}
	if !strings.Contains(out, "5") || !strings.Contains(out, "3") {
		t.Errorf("expected counts in summary, got:\n%s", out)
	}
}

func TestFormatRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero time", time.Time{}, "never"},
		{"today", time.Now(), "today"},
		{"one day", time.Now().Add(-25 * time.Hour), "1 day ago"},
		{"days", time.Now().Add(-5 * 24 * time.Hour), "5 days ago"},
		{"months", time.Now().Add(-70 * 24 * time.Hour), "2 months ago"},
		{"years", time.Now().Add(-800 * 24 * time.Hour), "2 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRelativeTime(tt.t); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected 'short', got %q", got)
	}
	if got := truncate("a-very-long-item-name", 10); got != "a-very-..." {
		t.Errorf("expected 'a-very-...', got %q", got)
	}
	if len(truncate("abcdef", 3)) != 3 {
		t.Error("expected hard cut at very small widths")
	}
}
