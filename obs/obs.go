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

// Package obs normalizes raw SDMX observation rows into the canonical
// row model: fixed column names, a single numeric timeline, and totals
// retained across disaggregated dimensions.
package obs

import (
	"fmt"
	"strconv"

	"github.com/unicef-drp/unicefdata/sdmx"
)

// Row is a single normalized observation. Value and the bounds are nil
// when the warehouse reported no number. The enrichment fields (Region,
// IncomeGroup, Continent, IndicatorCategory) are empty until the
// post-production enrichment stage fills them in.
type Row struct {
	Indicator      string
	IndicatorName  string
	ISO3           string
	Country        string
	Period         float64 // year + month/12 for sub-annual periods
	Value          *float64
	Unit           string
	Sex            string
	Age            string
	WealthQuintile string
	Residence      string
	MaternalEduLvl string
	LowerBound     *float64
	UpperBound     *float64
	ObsStatus      string
	DataSource     string

	Region            string
	IncomeGroup       string
	Continent         string
	IndicatorCategory string
}

// Float is a convenience for building optional values in literals.
func Float(v float64) *float64 { return &v }

// ParsePeriod converts a warehouse period string to the numeric timeline:
// "YYYY-MM" becomes year + month/12 with month in [1,12], anything else
// must parse as a plain integer year.
func ParsePeriod(s string) (float64, error) {
	if len(s) == 7 && s[4] == '-' {
		year, err := strconv.Atoi(s[:4])
		if err == nil {
			month, err := strconv.Atoi(s[5:])
			if err == nil && month >= 1 && month <= 12 {
				return float64(year) + float64(month)/12.0, nil
			}
		}
		return 0, fmt.Errorf("invalid sub-annual period %q", s)
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid period %q", s)
	}
	return float64(year), nil
}

// FormatPeriod renders a numeric period back to the warehouse form.
func FormatPeriod(p float64) string {
	year := int(p)
	if p == float64(year) {
		return strconv.Itoa(year)
	}
	month := int((p-float64(year))*12 + 0.5)
	return fmt.Sprintf("%04d-%02d", year, month)
}

// parseValue converts an optional numeric column. Empty and non-numeric
// cells are missing values, not errors: the warehouse uses both.
func parseValue(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// fromRaw maps one raw row to the canonical column model. The second
// value is false when the period is unparseable.
func fromRaw(raw sdmx.RawRow) (Row, bool) {
	period, err := ParsePeriod(raw.Period)
	if err != nil {
		return Row{}, false
	}
	return Row{
		Indicator:      raw.Indicator,
		IndicatorName:  raw.IndicatorName,
		ISO3:           raw.RefArea,
		Country:        raw.RefAreaName,
		Period:         period,
		Value:          parseValue(raw.Value),
		Unit:           raw.Unit,
		Sex:            raw.Sex,
		Age:            raw.Age,
		WealthQuintile: raw.WealthQuintile,
		Residence:      raw.Residence,
		MaternalEduLvl: raw.MaternalEduLvl,
		LowerBound:     parseValue(raw.LowerBound),
		UpperBound:     parseValue(raw.UpperBound),
		ObsStatus:      raw.ObsStatus,
		DataSource:     raw.DataSource,
	}, true
}
