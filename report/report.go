// Package report renders extraction results as a table.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"splitter/internal/timeutil"
	"splitter/models"
)

var headers = table.Row{"#", "Label", "Start", "End", "Duration", "Status", "Output"}

// Render returns the results as a rounded table, one row per segment in
// emission order, followed by a footer with per-status counts. It returns
// an empty string when there are no results.
func Render(results []*models.ExtractionResult) string {
	if len(results) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(headers)

	counts := map[models.ResultStatus]int{}
	for i, r := range results {
		counts[r.Status]++
		seg := r.Segment
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			seg.Label,
			timeutil.FormatSeconds(seg.Start),
			timeutil.FormatSeconds(seg.End),
			timeutil.FormatSeconds(seg.Duration()),
			string(r.Status),
			r.OutputPath,
		})
	}

	tw.AppendFooter(table.Row{"", "", "", "", "", summary(counts), ""})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// Write renders results to w followed by a newline. Nothing is written for
// an empty result set.
func Write(w io.Writer, results []*models.ExtractionResult) error {
	out := Render(results)
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

func summary(counts map[models.ResultStatus]int) string {
	s := ""
	for _, status := range []models.ResultStatus{models.StatusExtracted, models.StatusPlanned, models.StatusSkipped} {
		if counts[status] == 0 {
			continue
		}
		if s != "" {
			s += ", "
		}
		s += fmt.Sprintf("%d %s", counts[status], status)
	}
	return s
}
