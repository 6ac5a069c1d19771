package ui

import (
	"fmt"
	"strings"

	"github.com/copydesk/copydesk/internal/helpers"
	"github.com/copydesk/copydesk/internal/quality"
)

// ReportItem wraps a quality.Report to implement list.Item interface.
type ReportItem struct {
	Report quality.Report
}

// FilterValue returns the string used for filtering.
// Implements list.Item interface.
func (i ReportItem) FilterValue() string {
	return i.Report.File
}

// Title returns the main display text for the item.
// Implements list.DefaultItem interface.
func (i ReportItem) Title() string {
	return helpers.TruncatePath(i.Report.File, 60)
}

// Description returns secondary text for the item.
// Implements list.DefaultItem interface.
func (i ReportItem) Description() string {
	r := i.Report

	if !r.Passed {
		first := ""
		if len(r.Issues) > 0 {
			first = " | " + helpers.TruncateText(r.Issues[0], 50)
		}
		return fmt.Sprintf("%d issue(s)%s", len(r.Issues), first)
	}

	if len(r.Warnings) > 0 {
		return fmt.Sprintf("%d warning(s) | %s", len(r.Warnings), helpers.TruncateText(r.Warnings[0], 50))
	}

	return fmt.Sprintf("%d words, %d H2, %d H3", r.Stats.WordCount, r.Stats.H2Count, r.Stats.H3Count)
}

// DetailView returns an expanded detail view for the selected item.
func (i ReportItem) DetailView() string {
	r := i.Report
	var b strings.Builder

	b.WriteString("┌─ Details ─────────────────────────────────────────────────────────────\n")

	b.WriteString(fmt.Sprintf("│ %s  %s\n", DetailLabelStyle.Render("Result:"), StatusBadge(r.Passed, len(r.Warnings))))
	b.WriteString(fmt.Sprintf("│ %s  %d words, %d H2, %d H3, excerpt %d chars\n",
		DetailLabelStyle.Render("Stats:"),
		r.Stats.WordCount, r.Stats.H2Count, r.Stats.H3Count, r.Stats.ExcerptLength))

	if len(r.Issues) > 0 {
		b.WriteString("│\n")
		b.WriteString(fmt.Sprintf("│ %s\n", DetailLabelStyle.Render("Issues:")))
		for _, issue := range r.Issues {
			b.WriteString(fmt.Sprintf("│   %s %s\n", ErrorStyle.Render("✗"), issue))
		}
	}

	if len(r.Warnings) > 0 {
		b.WriteString("│\n")
		b.WriteString(fmt.Sprintf("│ %s\n", DetailLabelStyle.Render("Warnings:")))
		for _, w := range r.Warnings {
			b.WriteString(fmt.Sprintf("│   %s %s\n", WarningStyle.Render("⚠"), w))
		}
	}

	b.WriteString("│\n")
	b.WriteString(fmt.Sprintf("│ %s  %s\n", DetailLabelStyle.Render("File:"), r.File))

	b.WriteString("└────────────────────────────────────────────────────────────────────────\n")

	return b.String()
}

// ReportsToItems converts a slice of quality.Report to ReportItems.
func ReportsToItems(reports []quality.Report) []ReportItem {
	items := make([]ReportItem, len(reports))
	for i, r := range reports {
		items[i] = ReportItem{Report: r}
	}
	return items
}
