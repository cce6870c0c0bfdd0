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

package obs

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/stockparfait/logging"

	"github.com/unicef-drp/unicefdata/sdmx"
)

// Total codes per disaggregation dimension. Age totals vary by indicator
// family, so several codes count as a total there.
var (
	genericTotals = map[string]bool{"_T": true}
	ageTotals     = map[string]bool{"_T": true, "Y0T4": true, "Y0T14": true, "ALLAGE": true}
)

// dimension describes one collapsible disaggregation column.
type dimension struct {
	name   string
	get    func(*Row) string
	totals map[string]bool
}

var dimensions = []dimension{
	{"sex", func(r *Row) string { return r.Sex }, genericTotals},
	{"age", func(r *Row) string { return r.Age }, ageTotals},
	{"wealth_quintile", func(r *Row) string { return r.WealthQuintile }, genericTotals},
	{"residence", func(r *Row) string { return r.Residence }, genericTotals},
	{"maternal_edu_lvl", func(r *Row) string { return r.MaternalEduLvl }, genericTotals},
}

// Normalize converts raw rows to the canonical model and collapses
// disaggregated dimensions to their totals. Rows with unparseable periods
// are dropped with a warning. The collapse emits an informational note
// per dimension listing the values that existed, so disaggregations are
// discoverable without being double-counted.
func Normalize(ctx context.Context, raw []sdmx.RawRow) []Row {
	rows := make([]Row, 0, len(raw))
	dropped := 0
	for _, r := range raw {
		row, ok := fromRaw(r)
		if !ok {
			dropped++
			continue
		}
		rows = append(rows, row)
	}
	if dropped > 0 {
		logging.Warningf(ctx, "dropped %d rows with unparseable periods", dropped)
	}
	return collapse(ctx, rows)
}

// collapse retains only total-coded rows for each dimension that has more
// than one distinct value. An empty cell means the dataflow does not carry
// the dimension and is left alone.
func collapse(ctx context.Context, rows []Row) []Row {
	for _, dim := range dimensions {
		distinct := make(map[string]bool)
		for i := range rows {
			if v := dim.get(&rows[i]); v != "" {
				distinct[v] = true
			}
		}
		if len(distinct) < 2 {
			continue
		}
		values := make([]string, 0, len(distinct))
		for v := range distinct {
			values = append(values, v)
		}
		sort.Strings(values)
		logging.Infof(ctx, "collapsing %s disaggregation to totals, values: %s",
			dim.name, strings.Join(values, ", "))
		kept := rows[:0]
		for i := range rows {
			v := dim.get(&rows[i])
			if v == "" || dim.totals[v] {
				kept = append(kept, rows[i])
			}
		}
		rows = kept
	}
	return rows
}

// FilterOptions selects normalized rows client-side. Zero values disable
// the corresponding filter.
type FilterOptions struct {
	Countries []string // ISO3 codes
	Sex       string   // exact sex code; rows without a sex column pass
	StartYear int
	EndYear   int
}

// Filter applies the client-side row filters.
func Filter(rows []Row, opt FilterOptions) []Row {
	countries := make(map[string]bool, len(opt.Countries))
	for _, c := range opt.Countries {
		countries[c] = true
	}
	var out []Row
	for _, r := range rows {
		if len(countries) > 0 && !countries[r.ISO3] {
			continue
		}
		if opt.Sex != "" && r.Sex != "" && r.Sex != opt.Sex {
			continue
		}
		if opt.StartYear != 0 && r.Period < float64(opt.StartYear) {
			continue
		}
		if opt.EndYear != 0 && r.Period >= float64(opt.EndYear+1) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// DuplicateError reports exact full-row duplicates found after
// normalization.
type DuplicateError struct {
	Count int
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("detected %d duplicate rows", e.Count)
}

// rowKey serializes every field of the row, dereferencing the optional
// numbers, so duplicate detection compares full values.
func rowKey(r *Row) string {
	opt := func(v *float64) string {
		if v == nil {
			return "<nil>"
		}
		return fmt.Sprintf("%g", *v)
	}
	return strings.Join([]string{
		r.Indicator, r.IndicatorName, r.ISO3, r.Country,
		fmt.Sprintf("%g", r.Period), opt(r.Value), r.Unit, r.Sex, r.Age,
		r.WealthQuintile, r.Residence, r.MaternalEduLvl,
		opt(r.LowerBound), opt(r.UpperBound), r.ObsStatus, r.DataSource,
		r.Region, r.IncomeGroup, r.Continent, r.IndicatorCategory,
	}, "\x00")
}

// Dedupe enforces the duplicate-row policy: rows identical across all
// fields are an error by default, or silently removed with a warning when
// ignore is set. The duplicate scope is deliberately the full row, not a
// business key: a re-observation with a revised status is not a duplicate.
func Dedupe(ctx context.Context, rows []Row, ignore bool) ([]Row, error) {
	seen := make(map[string]bool, len(rows))
	var out []Row
	duplicates := 0
	for _, r := range rows {
		key := rowKey(&r)
		if seen[key] {
			duplicates++
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	if duplicates == 0 {
		return out, nil
	}
	if !ignore {
		return nil, &DuplicateError{Count: duplicates}
	}
	logging.Warningf(ctx, "removed %d duplicate rows", duplicates)
	return out, nil
}
