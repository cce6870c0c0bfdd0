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

package countries

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCountries(t *testing.T) {
	t.Parallel()

	Convey("Lookup classifies known countries", t, func() {
		info, ok := Lookup("ALB")
		So(ok, ShouldBeTrue)
		So(info.Region, ShouldEqual, "Europe and Central Asia")
		So(info.IncomeGroup, ShouldEqual, "Upper middle income")
		So(info.Continent, ShouldEqual, "Europe")

		So(Region("USA"), ShouldEqual, "North America")
		So(IncomeGroup("BRA"), ShouldEqual, "Upper middle income")
		So(Continent("KEN"), ShouldEqual, "Africa")
	})

	Convey("unknown codes come back empty", t, func() {
		_, ok := Lookup("XXX")
		So(ok, ShouldBeFalse)
		So(Region("XXX"), ShouldEqual, "")
	})
}
