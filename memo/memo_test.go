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

package memo

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCache(t *testing.T) {
	t.Parallel()

	Convey("Cache methods work", t, func() {
		c := New[[]int]()

		_, ok := c.Get("a")
		So(ok, ShouldBeFalse)

		c.Put("a", []int{1, 2})
		v, ok := c.Get("a")
		So(ok, ShouldBeTrue)
		So(v, ShouldResemble, []int{1, 2})
		So(c.Len(), ShouldEqual, 1)

		c.Put("a", nil)
		v, ok = c.Get("a")
		So(ok, ShouldBeTrue)
		So(v, ShouldBeNil)

		c.Reset()
		So(c.Len(), ShouldEqual, 0)
	})
}
