package main

import (
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"tmtidy/internal/renamer"
)

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func renderBatchSummary(result *renamer.BatchResult) string {
	rows := make([][]string, 0, len(result.Outcomes))
	for _, outcome := range result.Outcomes {
		status := "renamed"
		if outcome.Planned {
			status = "planned"
		}
		reason := ""
		if outcome.Skipped() {
			status = "skipped"
			reason = outcome.Reason()
		}
		rows = append(rows, []string{
			filepath.Base(outcome.Spreadsheet),
			outcome.Theme,
			status,
			strconv.Itoa(len(outcome.Ops)),
			reason,
		})
	}
	return renderTable([]string{"Spreadsheet", "Theme", "Status", "Files", "Reason"}, rows)
}

func renderRenamePlan(result *renamer.BatchResult) string {
	var rows [][]string
	for _, outcome := range result.Outcomes {
		if outcome.Skipped() {
			continue
		}
		for _, op := range outcome.Ops {
			rows = append(rows, []string{filepath.Base(op.Source), filepath.Base(op.Target)})
		}
	}
	if len(rows) == 0 {
		return ""
	}
	return renderTable([]string{"Current name", "New name"}, rows)
}
