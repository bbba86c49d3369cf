// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/isoscore/isolation"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(title string, headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if title != "" {
		tw.SetTitle(title)
	}

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

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderReport(name string, rep *isolation.Report) string {
	headers := []string{"#", "Label", "Class", "State", "Score", "d0", "Spikes", "Excluded"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}

	rows := make([][]string, 0, len(rep.Scores))
	for _, s := range rep.Scores {
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			s.Label,
			s.Class.String(),
			s.State.String(),
			formatScore(s.Score),
			formatD0(s.D0),
			strconv.Itoa(s.Spikes),
			strconv.Itoa(s.Excluded),
		})
	}

	title := fmt.Sprintf("%s  λ=%g  speed=%d  workers=%d  %s", name, rep.Lambda, rep.Speed, rep.Workers, rep.Status())
	return renderTable(title, headers, rows, aligns)
}

func formatScore(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatD0(v float64) string {
	if v == 0 {
		return "-"
	}
	return strconv.FormatFloat(v, 'g', 5, 64)
}
