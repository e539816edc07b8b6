package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/umputun/playsort/pkg/categorizer"
	"github.com/umputun/playsort/pkg/domain"
)

const maxTitleWidth = 48

// writeReport prints categorized playlists, the per-category summary and the review list
func writeReport(w io.Writer, cat *categorizer.Categorizer, playlists []domain.Playlist) error {
	header := color.New(color.FgCyan, color.Bold)

	if _, err := header.Fprintf(w, "Playlists (%d)\n", len(playlists)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	table := newTable(w, "#", "Title", "Category", "Confidence", "Videos")
	for i, cp := range cat.CategorizeAll(playlists) {
		table.Append([]string{strconv.Itoa(i + 1), truncate(cp.Title, maxTitleWidth), cp.Category.String(),
			formatConfidence(cp.Confidence), strconv.Itoa(cp.ItemCount)})
	}
	table.Render()

	if _, err := header.Fprintln(w, "\nCategories"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	summary := cat.Summarize(playlists)
	table = newTable(w, "Category", "Playlists", "Videos")
	for _, c := range domain.Categories() {
		stats := summary[c]
		if stats.Count == 0 {
			continue
		}
		table.Append([]string{c.String(), strconv.Itoa(stats.Count), strconv.Itoa(stats.TotalItems)})
	}
	table.Render()

	review := cat.SuggestReview(playlists)
	if len(review) == 0 {
		_, err := color.New(color.FgGreen).Fprintln(w, "\nNothing to review")
		return err
	}
	if _, err := header.Fprintf(w, "\nNeeds review (%d)\n", len(review)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	table = newTable(w, "ID", "Title", "Category", "Confidence")
	for _, cp := range review {
		table.Append([]string{cp.ID, truncate(cp.Title, maxTitleWidth), cp.Category.String(),
			formatConfidence(cp.Confidence)})
	}
	table.Render()
	return nil
}

func newTable(w io.Writer, headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func formatConfidence(c float64) string {
	return strconv.FormatFloat(c, 'f', 2, 64)
}

// truncate cuts s to max runes, marking the cut with an ellipsis
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
