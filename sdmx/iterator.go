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
	"strings"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
)

// RawRow is a single observation as returned by a format=csv&labels=both
// data query. Columns absent from a particular dataflow's response decode
// to empty strings; the normalizer treats every column except REF_AREA,
// INDICATOR and TIME_PERIOD as optional.
type RawRow struct {
	Dataflow       string `csv:"DATAFLOW"`
	RefArea        string `csv:"REF_AREA"`
	RefAreaName    string `csv:"Geographic area"`
	Indicator      string `csv:"INDICATOR"`
	IndicatorName  string `csv:"Indicator"`
	Period         string `csv:"TIME_PERIOD"`
	Value          string `csv:"OBS_VALUE"`
	Sex            string `csv:"SEX"`
	Age            string `csv:"AGE"`
	WealthQuintile string `csv:"WEALTH_QUINTILE"`
	Residence      string `csv:"RESIDENCE"`
	MaternalEduLvl string `csv:"MATERNAL_EDU_LVL"`
	Unit           string `csv:"UNIT_MEASURE"`
	LowerBound     string `csv:"LOWER_BOUND"`
	UpperBound     string `csv:"UPPER_BOUND"`
	ObsStatus      string `csv:"OBS_STATUS"`
	DataSource     string `csv:"DATA_SOURCE"`
}

// decodePage decodes one CSV page body. An empty or header-only body yields
// zero rows, which the iterator treats as the end of data.
func decodePage(body []byte) ([]RawRow, error) {
	if strings.TrimSpace(string(body)) == "" {
		return nil, nil
	}
	var rows []RawRow
	if err := csvutil.Unmarshal(body, &rows); err != nil {
		return nil, errors.Annotate(err, "failed to decode CSV page")
	}
	return rows, nil
}

// RowIterator iterates over query results row by row. Paging is handled
// transparently: a page with fewer rows than the requested page size is
// assumed to be the last one.
type RowIterator struct {
	context   context.Context
	query     *DataQuery
	rows      []RawRow
	index     int  // the row for Next() to return
	pageCount int  // which page number we're on, for logging
	started   bool // if at least one page was ever fetched
	done      bool // no more pages to fetch
}

// newRowIterator creates a new iterator.
func newRowIterator(ctx context.Context, query *DataQuery) *RowIterator {
	return &RowIterator{context: ctx, query: query}
}

// nextPage fetches and populates the iterator with the next page of data.
// When there are no more pages to load, or loading a page results in an
// error, the first return value becomes false.
func (it *RowIterator) nextPage() (bool, error) {
	if it.done {
		return false, nil
	}
	client := GetClient(it.context)
	if client == nil {
		return false, errors.Reason("DataQuery.Read: no client in context")
	}
	if it.started {
		// Space out page requests to respect the warehouse rate limits.
		time.Sleep(client.pageDelay)
	}
	it.started = true
	body, err := client.Get(it.context,
		it.query.Path(client.agency), it.query.Values(it.pageCount))
	if err != nil {
		return false, err
	}
	rows, err := decodePage(body)
	if err != nil {
		return false, errors.Annotate(err, "failed to parse page %d of %s",
			it.pageCount+1, it.query.Dataflow())
	}
	it.rows = rows
	it.index = 0
	it.pageCount++
	logging.Infof(it.context, "UNICEF SDMX: fetched page %d of %s with %d rows",
		it.pageCount, it.query.Dataflow(), len(rows))
	if len(rows) < it.query.pageSize {
		it.done = true
	}
	return len(rows) > 0, nil
}

// Next loads the next row. If there are no more rows, the second value is
// false.
func (it *RowIterator) Next(row *RawRow) (bool, error) {
	if it.query == nil {
		return false, nil
	}
	if !it.started || it.index >= len(it.rows) {
		if ok, err := it.nextPage(); !ok {
			return false, err
		}
	}
	if it.index >= len(it.rows) {
		return false, nil
	}
	*row = it.rows[it.index]
	it.index++
	return true, nil
}

// All reads the remaining rows, concatenated across pages.
func (it *RowIterator) All() ([]RawRow, error) {
	var rows []RawRow
	for {
		var row RawRow
		ok, err := it.Next(&row)
		if err != nil {
			return nil, err
		}
		if !ok {
			return rows, nil
		}
		rows = append(rows, row)
	}
}
