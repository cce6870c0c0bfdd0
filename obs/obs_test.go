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
	goerrors "errors"
	"testing"

	"github.com/unicef-drp/unicefdata/sdmx"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	Convey("ParsePeriod converts warehouse periods", t, func() {
		p, err := ParsePeriod("2020")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, 2020.0)

		p, err = ParsePeriod("2020-06")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, 2020.5)

		_, err = ParsePeriod("2020-13")
		So(err, ShouldNotBeNil)
		_, err = ParsePeriod("Q1 2020")
		So(err, ShouldNotBeNil)
		_, err = ParsePeriod("")
		So(err, ShouldNotBeNil)
	})

	Convey("FormatPeriod round-trips", t, func() {
		So(FormatPeriod(2020.0), ShouldEqual, "2020")
		So(FormatPeriod(2020.5), ShouldEqual, "2020-06")
	})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	Convey("Normalize maps columns and parses values", t, func() {
		raw := []sdmx.RawRow{
			{RefArea: "ALB", RefAreaName: "Albania", Indicator: "CME_MRY0T4",
				IndicatorName: "Under-5 mortality rate", Period: "2020", Value: "8.6",
				Sex: "_T", LowerBound: "7.1", UpperBound: "10.3", Unit: "D_PER_1000_B"},
			{RefArea: "USA", Indicator: "CME_MRY0T4", Period: "2020", Value: ""},
			{RefArea: "BRA", Indicator: "CME_MRY0T4", Period: "bogus", Value: "13"},
		}
		rows := Normalize(ctx, raw)
		So(len(rows), ShouldEqual, 2)
		So(rows[0].ISO3, ShouldEqual, "ALB")
		So(rows[0].Country, ShouldEqual, "Albania")
		So(rows[0].Period, ShouldEqual, 2020.0)
		So(*rows[0].Value, ShouldEqual, 8.6)
		So(*rows[0].LowerBound, ShouldEqual, 7.1)
		So(rows[1].Value, ShouldBeNil)
	})

	Convey("Normalize collapses disaggregations to totals", t, func() {
		raw := []sdmx.RawRow{
			{RefArea: "ALB", Indicator: "I", Period: "2020", Value: "10", Sex: "_T"},
			{RefArea: "ALB", Indicator: "I", Period: "2020", Value: "11", Sex: "F"},
			{RefArea: "ALB", Indicator: "I", Period: "2020", Value: "9", Sex: "M"},
		}
		rows := Normalize(ctx, raw)
		So(len(rows), ShouldEqual, 1)
		So(rows[0].Sex, ShouldEqual, "_T")
	})

	Convey("age accepts family-specific total codes", t, func() {
		raw := []sdmx.RawRow{
			{RefArea: "ALB", Indicator: "I", Period: "2020", Value: "10", Age: "Y0T4"},
			{RefArea: "ALB", Indicator: "I", Period: "2020", Value: "3", Age: "M0"},
		}
		rows := Normalize(ctx, raw)
		So(len(rows), ShouldEqual, 1)
		So(rows[0].Age, ShouldEqual, "Y0T4")
	})

	Convey("a single-valued dimension is left alone", t, func() {
		raw := []sdmx.RawRow{
			{RefArea: "ALB", Indicator: "I", Period: "2019", Value: "10", Sex: "F"},
			{RefArea: "ALB", Indicator: "I", Period: "2020", Value: "11", Sex: "F"},
		}
		rows := Normalize(ctx, raw)
		So(len(rows), ShouldEqual, 2)
	})
}

func TestFilter(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{ISO3: "ALB", Indicator: "I", Period: 2014, Sex: "_T", Value: Float(1)},
		{ISO3: "ALB", Indicator: "I", Period: 2020, Sex: "_T", Value: Float(2)},
		{ISO3: "ALB", Indicator: "I", Period: 2020, Sex: "F", Value: Float(3)},
		{ISO3: "DZA", Indicator: "I", Period: 2020, Sex: "_T", Value: Float(4)},
		{ISO3: "USA", Indicator: "I", Period: 2024, Sex: "_T", Value: Float(5)},
	}

	Convey("Filter applies country, sex and year bounds", t, func() {
		out := Filter(rows, FilterOptions{
			Countries: []string{"ALB", "USA"},
			Sex:       "_T",
			StartYear: 2015,
			EndYear:   2023,
		})
		So(len(out), ShouldEqual, 1)
		So(out[0].ISO3, ShouldEqual, "ALB")
		So(out[0].Period, ShouldEqual, 2020.0)
	})

	Convey("zero options pass everything", t, func() {
		So(len(Filter(rows, FilterOptions{})), ShouldEqual, len(rows))
	})

	Convey("rows without a sex column pass the sex filter", t, func() {
		out := Filter([]Row{{ISO3: "ALB", Period: 2020}}, FilterOptions{Sex: "_T"})
		So(len(out), ShouldEqual, 1)
	})
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	row := Row{ISO3: "ALB", Indicator: "I", Period: 2020, Value: Float(8.6), Sex: "_T"}

	Convey("exact duplicates are an error by default", t, func() {
		_, err := Dedupe(ctx, []Row{row, row}, false)
		So(err, ShouldNotBeNil)
		var dup *DuplicateError
		So(goerrors.As(err, &dup), ShouldBeTrue)
		So(dup.Count, ShouldEqual, 1)
	})

	Convey("ignore removes duplicates with a warning", t, func() {
		out, err := Dedupe(ctx, []Row{row, row, row}, true)
		So(err, ShouldBeNil)
		So(len(out), ShouldEqual, 1)
	})

	Convey("a revised observation is not a duplicate", t, func() {
		revised := row
		revised.ObsStatus = "E"
		out, err := Dedupe(ctx, []Row{row, revised}, false)
		So(err, ShouldBeNil)
		So(len(out), ShouldEqual, 2)
	})

	Convey("equal values behind distinct pointers are duplicates", t, func() {
		other := row
		other.Value = Float(8.6)
		_, err := Dedupe(ctx, []Row{row, other}, false)
		So(err, ShouldNotBeNil)
	})
}
