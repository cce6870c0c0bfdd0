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

package registry

import (
	"context"
	"testing"

	"github.com/unicef-drp/unicefdata/metadata"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolveDataflow(t *testing.T) {
	t.Parallel()

	Convey("ResolveDataflow applies rules in order", t, func() {
		ctx := context.Background()
		r := NewRegistry(nil)

		Convey("override wins over everything", func() {
			So(r.ResolveDataflow(ctx, "PT_F_20-24_MRD_U18_TND"), ShouldEqual, "PT_CM")
			So(r.ResolveDataflow(ctx, "PT_F_15-49_FGM"), ShouldEqual, "PT_FGM")
		})

		Convey("catalog entry wins over prefix", func() {
			So(r.ResolveDataflow(ctx, "CME_MRY0T4"), ShouldEqual, "CME")
			So(r.ResolveDataflow(ctx, "NT_ANT_HAZ_NE2_MOD"), ShouldEqual, "NUTRITION")
		})

		Convey("prefix covers unknown indicators", func() {
			So(r.ResolveDataflow(ctx, "CME_UNKNOWN_IND"), ShouldEqual, "CME")
			So(r.ResolveDataflow(ctx, "ED_NEW_METRIC"), ShouldEqual, "EDUCATION_UIS_SDG")
			So(r.ResolveDataflow(ctx, "PV_SOMETHING"), ShouldEqual, "CHLD_PVTY")
		})

		Convey("everything else falls through to the default", func() {
			So(r.ResolveDataflow(ctx, "XYZ_MYSTERY"), ShouldEqual, "GLOBAL_DATAFLOW")
			So(r.ResolveDataflow(ctx, "NOPREFIX"), ShouldEqual, "GLOBAL_DATAFLOW")
		})

		Convey("resolution is total for arbitrary codes", func() {
			for _, code := range []string{"", "_", "A_B_C", "ED_", "zzz"} {
				So(r.ResolveDataflow(ctx, code), ShouldNotEqual, "")
			}
		})
	})

	Convey("Alternates builds a deduplicated candidate chain", t, func() {
		ctx := context.Background()
		r := NewRegistry(nil)

		So(r.Alternates(ctx, "ED_ANAR_L02"), ShouldResemble,
			[]string{"EDUCATION_UIS_SDG", "EDUCATION", "GLOBAL_DATAFLOW"})
		So(r.Alternates(ctx, "CME_MRY0T4"), ShouldResemble,
			[]string{"CME", "GLOBAL_DATAFLOW"})
		So(r.Alternates(ctx, "XYZ_MYSTERY"), ShouldResemble,
			[]string{"GLOBAL_DATAFLOW"})
	})
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	Convey("catalog queries work", t, func() {
		r := NewRegistry(nil)

		Convey("Lookup finds seeded indicators", func() {
			ind, ok := r.Lookup("CME_MRY0T4")
			So(ok, ShouldBeTrue)
			So(ind.Name, ShouldEqual, "Under-5 mortality rate")
			So(ind.SDGTarget, ShouldEqual, "3.2.1")
			_, ok = r.Lookup("NO_SUCH")
			So(ok, ShouldBeFalse)
		})

		Convey("List is sorted by code", func() {
			list := r.List()
			So(len(list), ShouldEqual, len(Indicators()))
			for i := 1; i < len(list); i++ {
				So(list[i-1].Code, ShouldBeLessThan, list[i].Code)
			}
		})

		Convey("Search matches code and name", func() {
			So(len(r.Search("mortality")), ShouldBeGreaterThanOrEqualTo, 3)
			So(r.Search("IM_DTP3")[0].Code, ShouldEqual, "IM_DTP3")
			So(len(r.Search("no such indicator")), ShouldEqual, 0)
		})

		Convey("Categories are distinct and sorted", func() {
			categories := r.Categories()
			So(categories, ShouldContain, "Child Mortality")
			So(categories, ShouldContain, "WASH")
			for i := 1; i < len(categories); i++ {
				So(categories[i-1], ShouldBeLessThan, categories[i])
			}
		})
	})

	Convey("LoadCache merges cached indicators", t, func() {
		ctx := context.Background()
		r := NewRegistry(nil)
		store := metadata.NewStore(&metadata.StoreConfig{Dir: t.TempDir()})

		Convey("an unavailable cache is ignored", func() {
			before := len(r.List())
			r.LoadCache(ctx, store)
			So(len(r.List()), ShouldEqual, before)
		})
	})
}
