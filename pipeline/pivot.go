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

package pipeline

import (
	"context"
	"sort"
	"strconv"

	"github.com/stockparfait/logging"

	"github.com/unicef-drp/unicefdata/obs"
	"github.com/unicef-drp/unicefdata/table"
)

// FormatValue renders an optional observation value for table output.
func FormatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// periodColumn names a wide-format year column, e.g. "y2020" or "y2020-06".
func periodColumn(p float64) string {
	return "y" + obs.FormatPeriod(p)
}

// distinctIndicators returns the sorted distinct indicator codes.
func distinctIndicators(rows []obs.Row) []string {
	seen := make(map[string]bool)
	for _, r := range rows {
		seen[r.Indicator] = true
	}
	out := make([]string, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// PivotYears reshapes long rows into one row per country with one value
// column per distinct period. Multiple indicators in the input produce a
// combinatorially awkward shape, so they draw a warning.
func PivotYears(ctx context.Context, rows []obs.Row) *table.Table {
	if inds := distinctIndicators(rows); len(inds) > 1 {
		logging.Warningf(ctx,
			"pivoting years with %d indicators mixes their values in one row; consider format=wide per indicator",
			len(inds))
	}
	periodSet := make(map[float64]bool)
	for _, r := range rows {
		periodSet[r.Period] = true
	}
	periods := make([]float64, 0, len(periodSet))
	for p := range periodSet {
		periods = append(periods, p)
	}
	sort.Float64s(periods)

	header := []string{"iso3", "country"}
	for _, p := range periods {
		header = append(header, periodColumn(p))
	}

	names := make(map[string]string)
	cells := make(map[string]map[float64]*float64)
	var iso3s []string
	for _, r := range rows {
		if _, ok := cells[r.ISO3]; !ok {
			iso3s = append(iso3s, r.ISO3)
			cells[r.ISO3] = make(map[float64]*float64)
		}
		cells[r.ISO3][r.Period] = r.Value
		if r.Country != "" {
			names[r.ISO3] = r.Country
		}
	}
	sort.Strings(iso3s)

	t := table.NewTable(header...)
	for _, iso3 := range iso3s {
		row := table.StringRow{iso3, names[iso3]}
		for _, p := range periods {
			row = append(row, FormatValue(cells[iso3][p]))
		}
		t.AddRow(row)
	}
	return t
}

// PivotIndicators reshapes long rows into one row per (country, period)
// with one value column per indicator, for side-by-side comparison. A
// single-indicator input draws a warning: the long format already serves
// that case.
func PivotIndicators(ctx context.Context, rows []obs.Row) *table.Table {
	indicators := distinctIndicators(rows)
	if len(indicators) == 1 {
		logging.Warningf(ctx,
			"pivoting indicators with a single indicator %s; the long format is usually what you want",
			indicators[0])
	}

	type rowKey struct {
		iso3   string
		period float64
	}
	names := make(map[string]string)
	cells := make(map[rowKey]map[string]*float64)
	var keys []rowKey
	for _, r := range rows {
		k := rowKey{r.ISO3, r.Period}
		if _, ok := cells[k]; !ok {
			keys = append(keys, k)
			cells[k] = make(map[string]*float64)
		}
		cells[k][r.Indicator] = r.Value
		if r.Country != "" {
			names[r.ISO3] = r.Country
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].iso3 != keys[j].iso3 {
			return keys[i].iso3 < keys[j].iso3
		}
		return keys[i].period < keys[j].period
	})

	header := append([]string{"iso3", "country", "period"}, indicators...)
	t := table.NewTable(header...)
	for _, k := range keys {
		row := table.StringRow{k.iso3, names[k.iso3], obs.FormatPeriod(k.period)}
		for _, code := range indicators {
			row = append(row, FormatValue(cells[k][code]))
		}
		t.AddRow(row)
	}
	return t
}
