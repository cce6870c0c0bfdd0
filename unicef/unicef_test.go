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
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stockparfait/testutil"

	"github.com/unicef-drp/unicefdata/sdmx"
	"github.com/unicef-drp/unicefdata/table"

	. "github.com/smartystreets/goconvey/convey"
)

func csvOf(t *table.Table) string {
	var buf bytes.Buffer
	So(t.WriteCSV(&buf, table.Params{}), ShouldBeNil)
	return buf.String()
}

func TestService(t *testing.T) {
	t.Parallel()

	Convey("Service works correctly", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()

		ctx := sdmx.UseClient(context.Background(), &sdmx.Config{
			BaseURL:    server.URL(),
			HTTP:       server.Client(),
			RetryDelay: time.Millisecond,
			PageDelay:  time.Millisecond,
		})
		s := NewService(ctx, nil)

		cmePage, err := sdmx.TestPage([]sdmx.RawRow{
			{RefArea: "ALB", RefAreaName: "Albania", Indicator: "CME_MRY0T4",
				Period: "2020", Value: "8.6", Sex: "_T"},
			{RefArea: "ALB", RefAreaName: "Albania", Indicator: "CME_MRY0T4",
				Period: "2020", Value: "9.1", Sex: "F"},
			{RefArea: "ALB", RefAreaName: "Albania", Indicator: "CME_MRY0T4",
				Period: "2014", Value: "10.2", Sex: "_T"},
			{RefArea: "USA", RefAreaName: "United States", Indicator: "CME_MRY0T4",
				Period: "2020", Value: "6.3", Sex: "_T"},
			{RefArea: "DZA", RefAreaName: "Algeria", Indicator: "CME_MRY0T4",
				Period: "2020", Value: "23.3", Sex: "_T"},
		})
		So(err, ShouldBeNil)

		Convey("parameter validation fails fast", func() {
			_, err := s.FetchRows(ctx, &Params{})
			So(sdmx.IsInvalidQuery(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "indicator or a dataflow")

			_, err = s.FetchRows(ctx, &Params{Indicator: "CME_MRY0T4", StartYear: "20x5"})
			So(sdmx.IsInvalidQuery(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "20x5")

			_, err = s.FetchRows(ctx, &Params{Indicator: "CME_MRY0T4", EndYear: "5"})
			So(sdmx.IsInvalidQuery(err), ShouldBeTrue)
		})

		Convey("end-to-end long format", func() {
			server.ResponseBody = []string{cmePage}
			p := DefaultParams()
			p.Indicator = "CME_MRY0T4"
			p.Countries = []string{"ALB", "USA", "BRA"}
			p.StartYear = "2015"
			p.EndYear = "2023"
			p.Simplify = true

			tbl, err := s.GetUnicef(ctx, p)
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/data/UNICEF,CME,1.0/.CME_MRY0T4.")
			So(server.RequestQuery.Get("startPeriod"), ShouldEqual, "2015")
			So(server.RequestQuery.Get("endPeriod"), ShouldEqual, "2023")
			So(csvOf(tbl), ShouldEqual, `iso3,country,indicator,period,value
ALB,Albania,CME_MRY0T4,2020,8.6
USA,United States,CME_MRY0T4,2020,6.3
`)
		})

		Convey("fallback tries alternates in order", func() {
			edPage, err := sdmx.TestPage([]sdmx.RawRow{
				{RefArea: "ALB", Indicator: "ED_CR_L1_UIS_MOD", Period: "2020",
					Value: "97.5", Sex: "_T"},
			})
			So(err, ShouldBeNil)
			// EDUCATION_UIS_SDG comes back empty, EDUCATION has the data.
			server.ResponseBody = []string{"", edPage}

			p := DefaultParams()
			p.Indicator = "ED_CR_L1_UIS_MOD"
			rows, err := s.FetchRows(ctx, p)
			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 1)
			So(rows[0].Value, ShouldEqual, "97.5")
			So(server.RequestPath, ShouldEqual,
				"/data/UNICEF,EDUCATION,1.0/.ED_CR_L1_UIS_MOD.")
		})

		Convey("exhausted fallback is empty, not an error", func() {
			server.ResponseBody = []string{"", "", ""}
			p := DefaultParams()
			p.Indicator = "ED_CR_L1_UIS_MOD"
			rows, err := s.FetchRows(ctx, p)
			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 0)

			tbl, err := s.GetUnicef(ctx, p)
			So(err, ShouldBeNil)
			So(len(tbl.Rows), ShouldEqual, 0)
		})

		Convey("an explicit dataflow disables fallback", func() {
			server.ResponseBody = []string{""}
			p := DefaultParams()
			p.Dataflow = "NUTRITION"
			rows, err := s.FetchRows(ctx, p)
			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 0)
			So(server.RequestPath, ShouldEqual, "/data/UNICEF,NUTRITION,1.0/all")
		})

		Convey("memoized entries are scoped by agency", func() {
			server.ResponseBody = []string{cmePage}
			p := DefaultParams()
			p.Indicator = "CME_MRY0T4"
			p.Cache = true

			first, err := s.FetchRows(ctx, p)
			So(err, ShouldBeNil)
			So(len(first), ShouldEqual, 5)

			// A second client with a different agency must miss the memo and
			// fetch its own (empty) result.
			other := sdmx.UseClient(context.Background(), &sdmx.Config{
				BaseURL:    server.URL(),
				Agency:     "WHO",
				HTTP:       server.Client(),
				RetryDelay: time.Millisecond,
				PageDelay:  time.Millisecond,
			})
			server.ResponseBody = []string{"", ""}
			rows, err := s.FetchRows(other, p)
			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 0)
			So(server.RequestPath, ShouldEqual,
				"/data/WHO,GLOBAL_DATAFLOW,1.0/.CME_MRY0T4.")
		})

		Convey("memoization skips the network on repeat queries", func() {
			server.ResponseBody = []string{cmePage}
			p := DefaultParams()
			p.Indicator = "CME_MRY0T4"
			p.Cache = true

			first, err := s.FetchRows(ctx, p)
			So(err, ShouldBeNil)
			So(len(first), ShouldEqual, 5)

			// A re-fetch would now get an empty page; the memoized rows win.
			server.ResponseBody = []string{""}
			second, err := s.FetchRows(ctx, p)
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)
		})

		Convey("raw format returns warehouse columns", func() {
			server.ResponseBody = []string{cmePage}
			p := DefaultParams()
			p.Indicator = "CME_MRY0T4"
			p.Raw = true
			tbl, err := s.GetUnicef(ctx, p)
			So(err, ShouldBeNil)
			So(tbl.Header[0], ShouldEqual, "DATAFLOW")
			So(len(tbl.Rows), ShouldEqual, 5)
		})

		Convey("raw format honors the country selection", func() {
			server.ResponseBody = []string{cmePage}
			p := DefaultParams()
			p.Indicator = "CME_MRY0T4"
			p.Raw = true
			p.Countries = []string{"USA", "DZA"}
			tbl, err := s.GetUnicef(ctx, p)
			So(err, ShouldBeNil)
			So(len(tbl.Rows), ShouldEqual, 2)
			So(tbl.Rows[0].CSV()[1], ShouldEqual, "USA")
			So(tbl.Rows[1].CSV()[1], ShouldEqual, "DZA")
		})

		Convey("wide format pivots years", func() {
			server.ResponseBody = []string{cmePage}
			p := DefaultParams()
			p.Indicator = "CME_MRY0T4"
			p.Countries = []string{"ALB"}
			p.Format = FormatWide
			tbl, err := s.GetUnicef(ctx, p)
			So(err, ShouldBeNil)
			So(tbl.Header, ShouldResemble, []string{"iso3", "country", "y2014", "y2020"})
			So(len(tbl.Rows), ShouldEqual, 1)
		})

		Convey("metadata enrichment adds classification columns", func() {
			server.ResponseBody = []string{cmePage}
			p := DefaultParams()
			p.Indicator = "CME_MRY0T4"
			p.Countries = []string{"ALB"}
			p.AddMetadata = true
			p.Simplify = true
			tbl, err := s.GetUnicef(ctx, p)
			So(err, ShouldBeNil)
			So(tbl.Header, ShouldResemble, []string{
				"iso3", "country", "indicator", "period", "value",
				"region", "income_group", "continent"})
			So(csvOf(tbl), ShouldContainSubstring,
				"ALB,Albania,CME_MRY0T4,2020,8.6,Europe and Central Asia,Upper middle income,Europe")
		})

		Convey("duplicate rows fail by default and dedupe on request", func() {
			dupPage, err := sdmx.TestPage([]sdmx.RawRow{
				{RefArea: "ALB", Indicator: "CME_MRY0T4", Period: "2020", Value: "8.6"},
				{RefArea: "ALB", Indicator: "CME_MRY0T4", Period: "2020", Value: "8.6"},
			})
			So(err, ShouldBeNil)

			server.ResponseBody = []string{dupPage}
			p := DefaultParams()
			p.Indicator = "CME_MRY0T4"
			_, err = s.GetUnicef(ctx, p)
			So(err, ShouldNotBeNil)
			So(strings.Contains(err.Error(), "duplicate"), ShouldBeTrue)

			server.ResponseBody = []string{dupPage}
			p.IgnoreDuplicates = true
			tbl, err := s.GetUnicef(ctx, p)
			So(err, ShouldBeNil)
			So(len(tbl.Rows), ShouldEqual, 1)
		})

		Convey("DataflowForIndicator resolves through the registry", func() {
			So(s.DataflowForIndicator(ctx, "CME_MRY0T4"), ShouldEqual, "CME")
			So(s.DataflowForIndicator(ctx, "XYZ"), ShouldEqual, "GLOBAL_DATAFLOW")
		})

		Convey("CacheInfo without a store is unavailable", func() {
			_, ok, err := s.CacheInfo()
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("RefreshIndicatorCache requires a store", func() {
			_, err := s.RefreshIndicatorCache(ctx)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "no metadata store")
		})

		Convey("ListDataflows falls back to the curated list", func() {
			tbl, err := s.ListDataflows(context.Background())
			So(err, ShouldBeNil)
			So(tbl.Header, ShouldResemble, []string{"id", "agency", "version", "name"})
			So(len(tbl.Rows), ShouldEqual, 13)
		})
	})
}

func TestFallbackErrors(t *testing.T) {
	t.Parallel()

	Convey("Fallback decisions follow the error classification", t, func() {
		var requests int
		status := http.StatusNotFound
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				requests++
				w.WriteHeader(status)
			}))
		defer server.Close()

		ctx := sdmx.UseClient(context.Background(), &sdmx.Config{
			BaseURL:    server.URL,
			MaxRetries: 2,
			RetryDelay: time.Millisecond,
			PageDelay:  time.Millisecond,
		})
		s := NewService(ctx, nil)
		p := DefaultParams()
		p.Indicator = "ED_CR_L1_UIS_MOD" // three dataflow candidates

		Convey("404 moves on to the next candidate, exhaustion is empty", func() {
			rows, err := s.FetchRows(ctx, p)
			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 0)
			// One request per candidate, no retries.
			So(requests, ShouldEqual, 3)
		})

		Convey("5xx is retried on the primary and surfaced, alternates untried", func() {
			status = http.StatusInternalServerError
			_, err := s.FetchRows(ctx, p)
			So(err, ShouldNotBeNil)
			k, ok := sdmx.KindOf(err)
			So(ok, ShouldBeTrue)
			So(k, ShouldEqual, sdmx.KindTransient)
			// MaxRetries attempts against the primary dataflow only.
			So(requests, ShouldEqual, 2)
		})

		Convey("400 fails immediately with a typed error", func() {
			status = http.StatusBadRequest
			_, err := s.FetchRows(ctx, p)
			So(sdmx.IsInvalidQuery(err), ShouldBeTrue)
			So(requests, ShouldEqual, 1)
		})
	})
}
