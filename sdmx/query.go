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
	"context"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is the number of observations requested per page.
const DefaultPageSize = 1000

// DataQuery is a builder for a data query against a single dataflow.
//
// The indicator filter is embedded in the dot-delimited SDMX key
// (e.g. ".IND1+IND2."). Country selection is deliberately NOT part of the
// key: the warehouse does not reliably support REF_AREA selection combined
// with an indicator selection, so countries are filtered client-side after
// the fetch.
type DataQuery struct {
	dataflow   string
	version    string
	indicators []string
	startYear  string
	endYear    string
	pageSize   int
}

// NewDataQuery creates a new query for the given dataflow.
func NewDataQuery(dataflow string) *DataQuery {
	return &DataQuery{
		dataflow: dataflow,
		version:  "1.0",
		pageSize: DefaultPageSize,
	}
}

// Copy creates a deep copy of the query. It is primarily used in its builder
// methods, which never modify the original.
func (q *DataQuery) Copy() *DataQuery {
	q2 := *q
	q2.indicators = make([]string, len(q.indicators))
	copy(q2.indicators, q.indicators)
	return &q2
}

// Dataflow returns the dataflow ID the query targets.
func (q *DataQuery) Dataflow() string { return q.dataflow }

// Version sets the dataflow version (default "1.0").
func (q *DataQuery) Version(version string) *DataQuery {
	q2 := q.Copy()
	if version != "" {
		q2.version = version
	}
	return q2
}

// Indicators restricts the query to the given indicator codes.
func (q *DataQuery) Indicators(codes ...string) *DataQuery {
	q2 := q.Copy()
	q2.indicators = append(q2.indicators, codes...)
	return q2
}

// Years restricts the query period. Either bound may be empty. Bounds are
// expected to be validated as 4-digit years by the caller.
func (q *DataQuery) Years(start, end string) *DataQuery {
	q2 := q.Copy()
	q2.startYear = start
	q2.endYear = end
	return q2
}

// PageSize sets the number of observations per page, [1..10000].
func (q *DataQuery) PageSize(size int) *DataQuery {
	if size < 1 {
		size = DefaultPageSize
	}
	if size > 10000 {
		size = 10000
	}
	q2 := q.Copy()
	q2.pageSize = size
	return q2
}

// Key returns the dot-delimited SDMX key segment for the query.
func (q *DataQuery) Key() string {
	if len(q.indicators) == 0 {
		return "all"
	}
	return "." + strings.Join(q.indicators, "+") + "."
}

// Path returns the URL path to add to the base URL.
func (q *DataQuery) Path(agency string) string {
	return "data/" + agency + "," + q.dataflow + "," + q.version + "/" + q.Key()
}

// Values returns the query values for the given zero-based page. Each call
// creates a new object, so the caller is free to modify it.
func (q *DataQuery) Values(page int) url.Values {
	v := make(url.Values)
	v["format"] = []string{"csv"}
	v["labels"] = []string{"both"}
	if q.startYear != "" {
		v["startPeriod"] = []string{q.startYear}
	}
	if q.endYear != "" {
		v["endPeriod"] = []string{q.endYear}
	}
	v["startPosition"] = []string{strconv.Itoa(page * q.pageSize)}
	v["pageSize"] = []string{strconv.Itoa(q.pageSize)}
	return v
}

// Read sets up the iterator over the result rows, which will execute the
// query as needed and handle paging transparently.
func (q *DataQuery) Read(ctx context.Context) *RowIterator {
	return newRowIterator(ctx, q)
}
