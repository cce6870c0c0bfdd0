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

package unicef

import (
	"github.com/unicef-drp/unicefdata/obs"
	"github.com/unicef-drp/unicefdata/pipeline"
	"github.com/unicef-drp/unicefdata/sdmx"
	"github.com/unicef-drp/unicefdata/table"
)

// filterRaw applies the country selection to unnormalized rows. The other
// filters are normalization-side; raw output otherwise mirrors the server
// response.
func filterRaw(rows []sdmx.RawRow, countries []string) []sdmx.RawRow {
	if len(countries) == 0 {
		return rows
	}
	keep := make(map[string]bool, len(countries))
	for _, c := range countries {
		keep[c] = true
	}
	var out []sdmx.RawRow
	for _, r := range rows {
		if keep[r.RefArea] {
			out = append(out, r)
		}
	}
	return out
}

// rawTable renders unnormalized rows with the warehouse column names.
func rawTable(rows []sdmx.RawRow) *table.Table {
	t := table.NewTable(
		"DATAFLOW", "REF_AREA", "Geographic area", "INDICATOR", "Indicator",
		"TIME_PERIOD", "OBS_VALUE", "SEX", "AGE", "WEALTH_QUINTILE",
		"RESIDENCE", "MATERNAL_EDU_LVL", "UNIT_MEASURE", "LOWER_BOUND",
		"UPPER_BOUND", "OBS_STATUS", "DATA_SOURCE")
	for _, r := range rows {
		t.AddRow(table.StringRow{
			r.Dataflow, r.RefArea, r.RefAreaName, r.Indicator, r.IndicatorName,
			r.Period, r.Value, r.Sex, r.Age, r.WealthQuintile,
			r.Residence, r.MaternalEduLvl, r.Unit, r.LowerBound,
			r.UpperBound, r.ObsStatus, r.DataSource,
		})
	}
	return t
}

// column pairs a header name with its cell renderer.
type column struct {
	name string
	cell func(*obs.Row) string
}

// longTable renders normalized rows in the tidy long format. The column
// set depends on the request: country names, full disaggregation detail
// and enrichment columns are each optional.
func longTable(rows []obs.Row, p *Params) *table.Table {
	cols := []column{
		{"iso3", func(r *obs.Row) string { return r.ISO3 }},
	}
	if p.CountryNames {
		cols = append(cols, column{"country", func(r *obs.Row) string { return r.Country }})
	}
	cols = append(cols,
		column{"indicator", func(r *obs.Row) string { return r.Indicator }},
		column{"period", func(r *obs.Row) string { return obs.FormatPeriod(r.Period) }},
		column{"value", func(r *obs.Row) string { return pipeline.FormatValue(r.Value) }},
	)
	if !p.Simplify {
		cols = append(cols,
			column{"indicator_name", func(r *obs.Row) string { return r.IndicatorName }},
			column{"sex", func(r *obs.Row) string { return r.Sex }},
			column{"age", func(r *obs.Row) string { return r.Age }},
			column{"wealth_quintile", func(r *obs.Row) string { return r.WealthQuintile }},
			column{"residence", func(r *obs.Row) string { return r.Residence }},
			column{"maternal_edu_lvl", func(r *obs.Row) string { return r.MaternalEduLvl }},
			column{"unit", func(r *obs.Row) string { return r.Unit }},
			column{"lower_bound", func(r *obs.Row) string { return pipeline.FormatValue(r.LowerBound) }},
			column{"upper_bound", func(r *obs.Row) string { return pipeline.FormatValue(r.UpperBound) }},
			column{"obs_status", func(r *obs.Row) string { return r.ObsStatus }},
			column{"data_source", func(r *obs.Row) string { return r.DataSource }},
		)
	}
	if p.AddMetadata {
		cols = append(cols,
			column{"region", func(r *obs.Row) string { return r.Region }},
			column{"income_group", func(r *obs.Row) string { return r.IncomeGroup }},
			column{"continent", func(r *obs.Row) string { return r.Continent }},
		)
	}

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.name
	}
	t := table.NewTable(header...)
	for i := range rows {
		cells := make(table.StringRow, len(cols))
		for j, c := range cols {
			cells[j] = c.cell(&rows[i])
		}
		t.AddRow(cells)
	}
	return t
}
