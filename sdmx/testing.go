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

package sdmx

import (
	"github.com/jszwec/csvutil"
	"github.com/stockparfait/errors"
)

// TestPage generates a CSV page body out of rows, as the warehouse would
// return it. Used in tests of this and client packages.
func TestPage(rows []RawRow) (string, error) {
	body, err := csvutil.Marshal(rows)
	if err != nil {
		return "", errors.Annotate(err, "failed to encode test page")
	}
	return string(body), nil
}
