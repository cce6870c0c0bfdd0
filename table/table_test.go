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
	"bytes"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type TestRow struct {
	ISO3  string
	Value float64
}

func (r TestRow) CSV() []string { return []string{r.ISO3, fmt.Sprintf("%g", r.Value)} }

func TestTable(t *testing.T) {
	t.Parallel()

	Convey("Table methods work", t, func() {
		tbl := NewTable("iso3", "value")
		headless := NewTable()

		So(tbl.Header, ShouldResemble, []string{"iso3", "value"})
		tbl.AddRow(TestRow{"ALB", 8.6}, TestRow{"USA", 6.3})
		headless.AddRow(TestRow{"ALB", 8.6}, TestRow{"USA", 6.3})

		Convey("AddRow worked", func() {
			So(len(tbl.Rows), ShouldEqual, 2)
			So(len(headless.Rows), ShouldEqual, 2)
		})

		Convey("StringRow renders as is", func() {
			dynamic := NewTable("iso3", "y2020", "y2021")
			dynamic.AddRow(StringRow{"ALB", "8.6", "8.3"})
			var buf bytes.Buffer
			So(dynamic.WriteCSV(&buf, Params{}), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
iso3,y2020,y2021
ALB,8.6,8.3
`)
		})

		Convey("WriteCSV", func() {
			Convey("Default Params", func() {
				var buf bytes.Buffer
				So(tbl.WriteCSV(&buf, Params{}), ShouldBeNil)
				So("\n"+buf.String(), ShouldEqual, `
iso3,value
ALB,8.6
USA,6.3
`)
			})

			Convey("Default Params, headless", func() {
				var buf bytes.Buffer
				So(headless.WriteCSV(&buf, Params{}), ShouldBeNil)
				So("\n"+buf.String(), ShouldEqual, `
ALB,8.6
USA,6.3
`)
			})

			Convey("Limited rows, no header", func() {
				var buf bytes.Buffer
				So(tbl.WriteCSV(&buf, Params{Rows: 1, NoHeader: true}), ShouldBeNil)
				So("\n"+buf.String(), ShouldEqual, `
ALB,8.6
`)
			})
		})

		Convey("WriteText", func() {
			Convey("Default Params", func() {
				var buf bytes.Buffer
				So(tbl.WriteText(&buf, Params{}), ShouldBeNil)
				So("\n"+buf.String(), ShouldEqual, `
iso3 | value
---- | -----
 ALB |   8.6
 USA |   6.3
`)
			})

			Convey("Limited rows and width, no header", func() {
				var buf bytes.Buffer
				So(tbl.WriteText(&buf, Params{Rows: 1, NoHeader: true, MaxColWidth: 4}), ShouldBeNil)
				So("\n"+buf.String(), ShouldResemble, `
ALB | 8.6
`)
			})
		})
	})
}
