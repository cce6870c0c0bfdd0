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

// Package pipeline implements the post-production transforms over
// normalized observation rows: enrichment, NA removal, most-recent-value
// windowing, latest-value selection, pivoting and simplification.
//
// Each stage is a pure function over a row slice. Stages compose in a
// fixed order, but every one is optional and testable on its own.
package pipeline

import (
	"sort"

	"github.com/unicef-drp/unicefdata/countries"
	"github.com/unicef-drp/unicefdata/metadata"
	"github.com/unicef-drp/unicefdata/obs"
)

// Catalog looks up indicator catalog records for enrichment.
// *registry.Registry implements it.
type Catalog interface {
	Lookup(code string) (metadata.IndicatorRecord, bool)
}

// Enrich attaches the static country classifications and the indicator
// catalog metadata to each row. A nil catalog skips the indicator fields.
func Enrich(rows []obs.Row, catalog Catalog) []obs.Row {
	out := make([]obs.Row, len(rows))
	for i, r := range rows {
		info, _ := countries.Lookup(r.ISO3)
		r.Region = info.Region
		r.IncomeGroup = info.IncomeGroup
		r.Continent = info.Continent
		if catalog != nil {
			if ind, ok := catalog.Lookup(r.Indicator); ok {
				if r.IndicatorName == "" {
					r.IndicatorName = ind.Name
				}
				r.IndicatorCategory = ind.Category
			}
		}
		out[i] = r
	}
	return out
}

// DropNA removes rows without an observation value.
func DropNA(rows []obs.Row) []obs.Row {
	var out []obs.Row
	for _, r := range rows {
		if r.Value != nil {
			out = append(out, r)
		}
	}
	return out
}

// groupKey identifies a (country, indicator) series.
type groupKey struct {
	iso3      string
	indicator string
}

// MostRecent keeps at most n most recent observations per (country,
// indicator) series. Within a series, every retained row's period is at
// least as large as any discarded row's.
func MostRecent(rows []obs.Row, n int) []obs.Row {
	if n <= 0 {
		return rows
	}
	groups := make(map[groupKey][]obs.Row)
	var order []groupKey
	for _, r := range rows {
		k := groupKey{r.ISO3, r.Indicator}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}
	var out []obs.Row
	for _, k := range order {
		g := groups[k]
		sort.SliceStable(g, func(i, j int) bool { return g[i].Period > g[j].Period })
		if len(g) > n {
			g = g[:n]
		}
		out = append(out, g...)
	}
	return out
}

// Latest keeps exactly one row per (country, indicator) series: the
// highest-period row carrying a value. Series with no values are dropped.
// Latest is idempotent: applying it to its own output is a no-op.
func Latest(rows []obs.Row) []obs.Row {
	best := make(map[groupKey]obs.Row)
	var order []groupKey
	for _, r := range rows {
		if r.Value == nil {
			continue
		}
		k := groupKey{r.ISO3, r.Indicator}
		cur, ok := best[k]
		if !ok {
			order = append(order, k)
			best[k] = r
			continue
		}
		if r.Period > cur.Period {
			best[k] = r
		}
	}
	out := make([]obs.Row, 0, len(order))
	for _, k := range order {
		out = append(out, best[k])
	}
	return out
}

// Simplify strips each row down to the essential analyst view: country,
// indicator, period and value, plus whatever enrichment is present.
func Simplify(rows []obs.Row) []obs.Row {
	out := make([]obs.Row, len(rows))
	for i, r := range rows {
		out[i] = obs.Row{
			Indicator:         r.Indicator,
			IndicatorName:     r.IndicatorName,
			ISO3:              r.ISO3,
			Country:           r.Country,
			Period:            r.Period,
			Value:             r.Value,
			Region:            r.Region,
			IncomeGroup:       r.IncomeGroup,
			Continent:         r.Continent,
			IndicatorCategory: r.IndicatorCategory,
		}
	}
	return out
}
