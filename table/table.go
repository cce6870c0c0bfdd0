// Copyright 2026 UNICEF Data Contributors

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/stockparfait/errors"
)

// Row interface that a table row representation must implement.
type Row interface {
	CSV() []string // an encoding/csv compatible row representation
}

// StringRow is a Row of pre-rendered cells, for tables whose column set
// is only known at runtime, such as wide pivots.
type StringRow []string

// CSV implements Row.
func (r StringRow) CSV() []string { return r }

// Table container.
//
// A typical use:
//   type ObsRow struct {
//     ISO3 string
//     Value float64
//   }
//
//   func (r ObsRow) CSV() []string {
//     return []string{r.ISO3, fmt.Sprintf("%g", r.Value)}
//   }
//   t := NewTable("iso3", "value")
//   t.AddRow(ObsRow{"ALB", 8.6}, ObsRow{"USA", 6.3})
type Table struct {
	Header []string // optional, may be nil
	Rows   []Row
}

// NewTable creates a new Table instance with optional column headers.  It is
// expected that, when present, the number of column headers is the same as the
// number of elements in each Row.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// AddRow adds one or more rows to the table.
func (t *Table) AddRow(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Params are parameters for pretty-printing or CSV export of Table data.
type Params struct {
	Rows        int  // max. number of rows to write; 0 = unlimited (default)
	NoHeader    bool // whether to print the header, default - yes
	MaxColWidth int  // for WriteText only; 0 = unlimited, otherwise must be >= 4
}

// lines collects the header (unless suppressed) and the row cells, honoring
// the row limit. Every write path renders from this single view.
func (t *Table) lines(p Params) [][]string {
	var out [][]string
	if !p.NoHeader && len(t.Header) > 0 {
		out = append(out, t.Header)
	}
	for i, r := range t.Rows {
		if p.Rows > 0 && i >= p.Rows {
			break
		}
		out = append(out, r.CSV())
	}
	return out
}

// WriteCSV writes the entire table to w in CSV format.
func (t *Table) WriteCSV(w io.Writer, p Params) error {
	cw := csv.NewWriter(w)
	for _, line := range t.lines(p) {
		if err := cw.Write(line); err != nil {
			return errors.Annotate(err, "failed to write CSV row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Annotate(err, "failed to flush written rows")
	}
	return nil
}

// WriteText writes the table as right-aligned text columns separated by
// " | ", with a dashed separator under the header. Cells longer than
// MaxColWidth are trimmed with a ".." suffix.
func (t *Table) WriteText(w io.Writer, p Params) error {
	if p.MaxColWidth != 0 && p.MaxColWidth < 4 {
		return errors.Reason("MaxColWidth [%d] must be 0 or >= 4", p.MaxColWidth)
	}
	lines := t.lines(p)
	if len(lines) == 0 {
		return nil
	}
	widths := make([]int, len(lines[0]))
	for _, line := range lines {
		if len(line) == 0 {
			return errors.Reason("row size = 0")
		}
		if len(line) != len(widths) {
			return errors.Reason("row size [%d] != expected size [%d]",
				len(line), len(widths))
		}
		for i, cell := range line {
			if widths[i] < len(cell) {
				widths[i] = len(cell)
			}
			if p.MaxColWidth > 0 && widths[i] > p.MaxColWidth {
				widths[i] = p.MaxColWidth
			}
		}
	}

	writeLine := func(cells []string) error {
		_, err := fmt.Fprintf(w, "%s\n", strings.Join(cells, " | "))
		return err
	}
	for i, line := range lines {
		cells := make([]string, len(line))
		for j, s := range line {
			if r := []rune(s); len(r) > widths[j] {
				s = string(r[:widths[j]-2]) + ".."
			}
			cells[j] = fmt.Sprintf("%*s", widths[j], s)
		}
		if err := writeLine(cells); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
		if i == 0 && !p.NoHeader && len(t.Header) > 0 {
			sep := make([]string, len(widths))
			for j, n := range widths {
				sep[j] = strings.Repeat("-", n)
			}
			if err := writeLine(sep); err != nil {
				return errors.Annotate(err, "failed to write header separator")
			}
		}
	}
	return nil
}
