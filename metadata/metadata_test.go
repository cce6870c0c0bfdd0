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

package metadata

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stockparfait/testutil"

	"github.com/unicef-drp/unicefdata/sdmx"

	. "github.com/smartystreets/goconvey/convey"
)

const dataflowsXML = `
<Structure>
  <Structures>
    <Dataflows>
      <Dataflow id="CME" agencyID="UNICEF" version="1.0">
        <Name>Child Mortality Estimates</Name>
      </Dataflow>
    </Dataflows>
  </Structures>
</Structure>`

func codelistXML(id string) string {
	return `
<Structure>
  <Structures>
    <Codelists>
      <Codelist id="` + id + `">
        <Code id="_T"><Name>Total</Name></Code>
        <Code id="F"><Name>Female</Name></Code>
      </Codelist>
    </Codelists>
  </Structures>
</Structure>`
}

const schemaXML = `
<Structure>
  <Structures>
    <DataStructures>
      <DataStructure id="DSD_CME" version="1.0">
        <Name>Child mortality data structure</Name>
        <DataStructureComponents>
          <DimensionList>
            <Dimension id="INDICATOR" position="2">
              <LocalRepresentation>
                <Enumeration><Ref id="CL_CME_INDICATOR"/></Enumeration>
              </LocalRepresentation>
            </Dimension>
            <Dimension id="REF_AREA" position="1">
              <LocalRepresentation>
                <Enumeration><Ref id="CL_REF_AREA"/></Enumeration>
              </LocalRepresentation>
            </Dimension>
            <Dimension id="SEX" position="3">
              <LocalRepresentation>
                <Enumeration><Ref id="CL_SEX"/></Enumeration>
              </LocalRepresentation>
            </Dimension>
          </DimensionList>
          <AttributeList>
            <Attribute id="UNIT_MEASURE">
              <LocalRepresentation>
                <Enumeration><Ref id="CL_UNIT_MEASURE"/></Enumeration>
              </LocalRepresentation>
            </Attribute>
          </AttributeList>
        </DataStructureComponents>
      </DataStructure>
    </DataStructures>
  </Structures>
</Structure>`

// syncResponses is the response sequence for one full sync of the above
// fixtures: dataflow list, 5 common codelists, countries, regions, and one
// schema per dataflow.
func syncResponses(schema string) []string {
	responses := []string{dataflowsXML}
	for _, id := range commonCodelists {
		responses = append(responses, codelistXML(id))
	}
	responses = append(responses, codelistXML(refAreaCodelist))
	responses = append(responses, codelistXML(regionCodelist))
	responses = append(responses, schema)
	return responses
}

func TestStore(t *testing.T) {
	t.Parallel()

	Convey("Store works correctly", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()

		ctx := sdmx.UseClient(context.Background(), &sdmx.Config{
			BaseURL:    server.URL(),
			HTTP:       server.Client(),
			RetryDelay: time.Millisecond,
			PageDelay:  time.Millisecond,
		})
		tmpdir := t.TempDir()
		seed := []IndicatorRecord{
			{Code: "CME_MRY0T4", Name: "Under-five mortality rate",
				Category: "Child Mortality", Dataflow: "CME"},
		}

		Convey("Sync populates the cache", func() {
			server.ResponseBody = syncResponses(schemaXML)
			store := NewStore(&StoreConfig{Dir: tmpdir, Seed: seed})
			counts, err := store.Sync(ctx, false)
			So(err, ShouldBeNil)
			So(counts, ShouldNotBeNil)
			So(counts.Dataflows, ShouldEqual, 1)
			So(counts.Codelists, ShouldEqual, 5)
			So(counts.Indicators, ShouldEqual, 1)
			So(counts.Countries, ShouldEqual, 2)
			So(counts.Regions, ShouldEqual, 2)
			So(counts.Schemas, ShouldEqual, 1)
			So(counts.Errors, ShouldEqual, 0)

			Convey("dataflow accessors read it back", func() {
				dfs, ok, err := store.ListDataflows()
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(len(dfs), ShouldEqual, 1)
				So(dfs[0].ID, ShouldEqual, "CME")
				So(dfs[0].Name, ShouldEqual, "Child Mortality Estimates")
				So(store.DataflowVersion("CME"), ShouldEqual, "1.0")
				So(store.DataflowVersion("NO_SUCH"), ShouldEqual, "1.0")
			})

			Convey("codelists, countries and regions are cached", func() {
				cls, ok, err := store.Codelists()
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(len(cls), ShouldEqual, 5)
				So(cls["CL_SEX"].Codes["_T"], ShouldEqual, "Total")

				countries, ok, err := store.Countries()
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(countries["F"], ShouldEqual, "Female")

				regions, ok, err := store.Regions()
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(len(regions), ShouldEqual, 2)
			})

			Convey("schema dimensions are ordered by position", func() {
				schema, err := store.Schema(ctx, "CME")
				So(err, ShouldBeNil)
				So(schema.TimeDimension, ShouldEqual, "TIME_PERIOD")
				So(schema.PrimaryMeasure, ShouldEqual, "OBS_VALUE")
				So(len(schema.Dimensions), ShouldEqual, 3)
				So(schema.Dimensions[0].ID, ShouldEqual, "REF_AREA")
				So(schema.Dimensions[1].ID, ShouldEqual, "INDICATOR")
				So(schema.Dimensions[2].ID, ShouldEqual, "SEX")
				So(schema.Dimensions[2].Codelist, ShouldEqual, "CL_SEX")
				So(len(schema.Attributes), ShouldEqual, 1)
			})

			Convey("a fresh store reads the schema from disk", func() {
				store2 := NewStore(&StoreConfig{Dir: tmpdir})
				schema, err := store2.Schema(context.Background(), "CME")
				So(err, ShouldBeNil)
				So(len(schema.Dimensions), ShouldEqual, 3)
			})

			Convey("a vintage snapshot and history are recorded", func() {
				vintages, err := store.Vintages()
				So(err, ShouldBeNil)
				So(len(vintages), ShouldEqual, 1)

				info, ok, err := store.Info()
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(info.Agency, ShouldEqual, "UNICEF")
				So(info.Vintages, ShouldResemble, vintages)

				history, err := store.History()
				So(err, ShouldBeNil)
				So(len(history), ShouldEqual, 1)
				So(history[0].Vintage, ShouldEqual, vintages[0])
				So(history[0].Forced, ShouldBeFalse)
				So(len(history[0].DataHash), ShouldEqual, 64)
			})

			Convey("a second sync is skipped while fresh", func() {
				counts2, err := store.Sync(ctx, false)
				So(err, ShouldBeNil)
				So(counts2, ShouldBeNil)
			})

			Convey("a forced sync runs and appends to history", func() {
				server.ResponseBody = syncResponses(schemaXML)
				counts2, err := store.Sync(ctx, true)
				So(err, ShouldBeNil)
				So(counts2, ShouldNotBeNil)
				history, err := store.History()
				So(err, ShouldBeNil)
				So(len(history), ShouldEqual, 2)
				So(history[1].Forced, ShouldBeTrue)

				// Identical content hashes identically across syncs.
				So(history[1].DataHash, ShouldEqual, history[0].DataHash)
			})
		})

		Convey("schema fetch failure is isolated", func() {
			noDSD := `<Structure><Structures></Structures></Structure>`
			server.ResponseBody = syncResponses(noDSD)
			store := NewStore(&StoreConfig{Dir: tmpdir, Seed: seed})
			counts, err := store.Sync(ctx, false)
			So(err, ShouldBeNil)
			So(counts.Dataflows, ShouldEqual, 1)
			So(counts.Schemas, ShouldEqual, 0)
			So(counts.Errors, ShouldEqual, 1)

			Convey("Schema refetches past the error marker", func() {
				server.ResponseBody = []string{schemaXML}
				store2 := NewStore(&StoreConfig{Dir: tmpdir})
				schema, err := store2.Schema(ctx, "CME")
				So(err, ShouldBeNil)
				So(len(schema.Dimensions), ShouldEqual, 3)
			})
		})

		Convey("cache without a watermark is unavailable", func() {
			So(os.MkdirAll(filepath.Join(tmpdir, "current"), 0755), ShouldBeNil)
			path := filepath.Join(tmpdir, "current", "dataflows.yaml")
			So(testutil.WriteFile(path, "dataflows:\n  CME:\n    id: CME\n"), ShouldBeNil)
			store := NewStore(&StoreConfig{Dir: tmpdir})
			_, ok, err := store.ListDataflows()
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
			_, ok, err = store.Info()
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("missing cache directory is unavailable, not an error", func() {
			store := NewStore(&StoreConfig{Dir: filepath.Join(tmpdir, "nope")})
			_, ok, err := store.ListDataflows()
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
			vintages, err := store.Vintages()
			So(err, ShouldBeNil)
			So(len(vintages), ShouldEqual, 0)
		})
	})
}
