package clicycle

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"

	"github.com/Living-Content/clicycle/pkg/theme"
)

// Field is one named cell of a Record. Records are ordered slices rather
// than maps so column order is deterministic.
type Field struct {
	Name  string
	Value any
}

// Record is one table row as ordered name/value fields.
type Record []Field

// Table renders records as a grid. Columns are the union of field names
// across all records in first-seen order; rows keep input order. A record
// missing a column renders an empty cell. Title is optional.
func (c *Clicycle) Table(rows []Record, title string) {
	c.render(theme.KindTable, func(w io.Writer) {
		columns := tableColumns(rows)
		if len(columns) == 0 {
			return
		}

		tw := table.NewWriter()
		tw.SetStyle(c.tableStyle())
		if title != "" {
			tw.SetTitle(title)
			// A title wider than the columns would wrap one rune per
			// line; widen the table to fit it instead.
			tw.Style().Size.WidthMin = runewidth.StringWidth(title) + 4
		}

		header := make(table.Row, len(columns))
		for i, col := range columns {
			header[i] = col
		}
		tw.AppendHeader(header)

		for _, rec := range rows {
			cells := make(map[string]any, len(rec))
			for _, f := range rec {
				cells[f.Name] = f.Value
			}
			row := make(table.Row, len(columns))
			for i, col := range columns {
				if v, ok := cells[col]; ok {
					row[i] = fmt.Sprint(v)
				} else {
					row[i] = ""
				}
			}
			tw.AppendRow(row)
		}

		fmt.Fprintln(w, tw.Render())
	})
}

// tableColumns returns the union of field names in first-seen order.
func tableColumns(rows []Record) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, rec := range rows {
		for _, f := range rec {
			if !seen[f.Name] {
				seen[f.Name] = true
				columns = append(columns, f.Name)
			}
		}
	}
	return columns
}

func (c *Clicycle) tableStyle() table.Style {
	var s table.Style
	switch c.theme.Layout.TableBorder {
	case "double":
		s = table.StyleDouble
	case "light":
		s = table.StyleLight
	case "ascii":
		s = table.StyleDefault
	default:
		s = table.StyleRounded
	}
	// Column names render as supplied; go-pretty uppercases headers by
	// default.
	s.Format.Header = text.FormatDefault
	if c.theme.Layout.RowBanding {
		s.Color.Row = text.Colors{}
		s.Color.RowAlternate = text.Colors{text.BgHiBlack}
	}
	return s
}
