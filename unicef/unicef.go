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

// Package unicef is the public call surface of the library: fetch UNICEF
// indicator data with dataflow fallback and reshape it into analyst
// tables. The SDMX client is carried in the context via sdmx.UseClient.
package unicef

import (
	"context"
	"regexp"
	"strconv"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"

	"github.com/unicef-drp/unicefdata/memo"
	"github.com/unicef-drp/unicefdata/metadata"
	"github.com/unicef-drp/unicefdata/obs"
	"github.com/unicef-drp/unicefdata/pipeline"
	"github.com/unicef-drp/unicefdata/registry"
	"github.com/unicef-drp/unicefdata/sdmx"
	"github.com/unicef-drp/unicefdata/table"
)

// ServiceConfig configures a Service. Nil fields select defaults; a nil
// Store disables cache-backed dataflow versions and cache info.
type ServiceConfig struct {
	Registry *registry.Registry
	Store    *metadata.Store
}

// Service implements the public operations over the fetch, normalize and
// post-production layers.
type Service struct {
	registry *registry.Registry
	store    *metadata.Store
	fetched  *memo.Cache[[]sdmx.RawRow]
}

// NewService creates a service. When a metadata store is configured, its
// indicator cache extends the curated catalog; an unavailable cache is
// not an error.
func NewService(ctx context.Context, cfg *ServiceConfig) *Service {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}
	s := &Service{
		registry: cfg.Registry,
		store:    cfg.Store,
		fetched:  memo.New[[]sdmx.RawRow](),
	}
	if s.registry == nil {
		s.registry = registry.NewRegistry(nil)
	}
	if s.store != nil {
		s.registry.LoadCache(ctx, s.store)
	}
	return s
}

// Registry returns the indicator registry in use.
func (s *Service) Registry() *registry.Registry { return s.registry }

// Format of the result table.
const (
	FormatLong       = "long"       // one row per observation (default)
	FormatWide       = "wide"       // years as columns
	FormatIndicators = "indicators" // indicators as columns
)

// Params are the request parameters of GetUnicef. Use DefaultParams and
// override fields; the zero Params is not valid.
type Params struct {
	Indicator string   // indicator code; resolved to a dataflow when Dataflow is empty
	Dataflow  string   // explicit dataflow; disables fallback
	Dataflows []string // multiple explicit dataflows, fetched sequentially
	Countries []string // ISO3 filter; empty means all
	StartYear string   // 4-digit year
	EndYear   string   // 4-digit year
	Sex       string   // sex code filter; SexAll disables

	Format           string // FormatLong, FormatWide or FormatIndicators
	CountryNames     bool   // include the country name column
	Cache            bool   // memoize fetches within the process
	Latest           bool   // keep only the latest valued row per series
	AddMetadata      bool   // attach region/income group/continent and indicator metadata
	DropNA           bool   // drop rows without values
	Simplify         bool   // essential columns only
	MRV              int    // most-recent-values window per series; 0 = off
	Raw              bool   // skip normalization and post-production
	IgnoreDuplicates bool   // remove exact duplicates instead of failing
	PageSize         int
}

// SexAll disables the default sex totals filter.
const SexAll = "ALL"

// DefaultParams returns the default request: long format, totals only,
// country names included.
func DefaultParams() *Params {
	return &Params{
		Sex:          "_T",
		Format:       FormatLong,
		CountryNames: true,
	}
}

var yearRegexp = regexp.MustCompile(`^\d{4}$`)

// validate checks the contract violations that fail fast.
func (p *Params) validate() error {
	if p.Indicator == "" && p.Dataflow == "" && len(p.Dataflows) == 0 {
		return sdmx.InvalidQuery("either an indicator or a dataflow is required")
	}
	if p.StartYear != "" && !yearRegexp.MatchString(p.StartYear) {
		return sdmx.InvalidQuery("start year %q is not a 4-digit year", p.StartYear)
	}
	if p.EndYear != "" && !yearRegexp.MatchString(p.EndYear) {
		return sdmx.InvalidQuery("end year %q is not a 4-digit year", p.EndYear)
	}
	return nil
}

// candidates returns the dataflows to try, in order. An explicit dataflow
// disables fallback; otherwise the registry resolves the indicator and
// appends its alternates.
func (s *Service) candidates(ctx context.Context, p *Params) []string {
	if len(p.Dataflows) > 0 {
		return p.Dataflows
	}
	if p.Dataflow != "" {
		return []string{p.Dataflow}
	}
	return s.registry.Alternates(ctx, p.Indicator)
}

// query builds the data query against one dataflow.
func (s *Service) query(p *Params, dataflow string) *sdmx.DataQuery {
	q := sdmx.NewDataQuery(dataflow)
	if s.store != nil {
		q = q.Version(s.store.DataflowVersion(dataflow))
	}
	if p.Indicator != "" {
		q = q.Indicators(p.Indicator)
	}
	q = q.Years(p.StartYear, p.EndYear)
	if p.PageSize > 0 {
		q = q.PageSize(p.PageSize)
	}
	return q
}

// fetchOne executes one dataflow query, memoized when requested. The memo
// key includes the agency, so reconfigured clients never share entries.
func (s *Service) fetchOne(ctx context.Context, p *Params, q *sdmx.DataQuery) ([]sdmx.RawRow, error) {
	agency := sdmx.DefaultAgency
	if c := sdmx.GetClient(ctx); c != nil {
		agency = c.Agency()
	}
	key := q.Path(agency) + "?" + q.Values(0).Encode()
	if p.Cache {
		if rows, ok := s.fetched.Get(key); ok {
			logging.Debugf(ctx, "memoized result for %s", q.Dataflow())
			return rows, nil
		}
	}
	rows, err := q.Read(ctx).All()
	if err != nil {
		return nil, err
	}
	if p.Cache {
		s.fetched.Put(key, rows)
	}
	return rows, nil
}

// FetchRows fetches raw rows, applying the dataflow fallback: candidates
// are tried in order, the first non-empty result wins, "not found" moves
// on to the next candidate, and any other error propagates immediately.
// Exhausting all candidates is an empty result, not an error.
func (s *Service) FetchRows(ctx context.Context, p *Params) ([]sdmx.RawRow, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if len(p.Dataflows) > 0 {
		var all []sdmx.RawRow
		for _, df := range p.Dataflows {
			rows, err := s.fetchOne(ctx, p, s.query(p, df))
			if err != nil {
				return nil, errors.Annotate(err, "failed to fetch dataflow %s", df)
			}
			all = append(all, rows...)
		}
		return all, nil
	}
	for _, df := range s.candidates(ctx, p) {
		rows, err := s.fetchOne(ctx, p, s.query(p, df))
		if err != nil {
			if sdmx.IsNotFound(err) {
				logging.Infof(ctx, "dataflow %s has no data for %s, falling back",
					df, p.Indicator)
				continue
			}
			return nil, errors.Annotate(err, "failed to fetch dataflow %s", df)
		}
		if len(rows) == 0 {
			logging.Infof(ctx, "dataflow %s returned no rows for %s, falling back",
				df, p.Indicator)
			continue
		}
		return rows, nil
	}
	logging.Infof(ctx, "no dataflow candidate yielded data for %s", p.Indicator)
	return nil, nil
}

// GetUnicef fetches indicator data and runs the post-production pipeline
// per the request parameters, returning the result table.
func (s *Service) GetUnicef(ctx context.Context, p *Params) (*table.Table, error) {
	if p == nil {
		p = DefaultParams()
	}
	raw, err := s.FetchRows(ctx, p)
	if err != nil {
		return nil, err
	}
	if p.Raw {
		return rawTable(filterRaw(raw, p.Countries)), nil
	}
	rows := obs.Normalize(ctx, raw)
	rows = obs.Filter(rows, obs.FilterOptions{
		Countries: p.Countries,
		Sex:       sexFilter(p.Sex),
		StartYear: atoiOrZero(p.StartYear),
		EndYear:   atoiOrZero(p.EndYear),
	})
	rows, err = obs.Dedupe(ctx, rows, p.IgnoreDuplicates)
	if err != nil {
		return nil, err
	}
	if p.AddMetadata {
		rows = pipeline.Enrich(rows, s.registry)
	}
	if p.DropNA {
		rows = pipeline.DropNA(rows)
	}
	if p.MRV > 0 {
		rows = pipeline.MostRecent(rows, p.MRV)
	}
	if p.Latest {
		rows = pipeline.Latest(rows)
	}
	if p.Simplify {
		rows = pipeline.Simplify(rows)
	}
	switch p.Format {
	case FormatWide:
		return pipeline.PivotYears(ctx, rows), nil
	case FormatIndicators:
		return pipeline.PivotIndicators(ctx, rows), nil
	}
	return longTable(rows, p), nil
}

// ListDataflows returns the available dataflows: from the metadata cache
// when synced, live from the warehouse when a client is available, or the
// curated list as a last resort.
func (s *Service) ListDataflows(ctx context.Context) (*table.Table, error) {
	var records []metadata.DataflowRecord
	if s.store != nil {
		cached, ok, err := s.store.ListDataflows()
		if err != nil {
			return nil, err
		}
		if ok {
			records = cached
		}
	}
	if records == nil && sdmx.GetClient(ctx) != nil {
		live, err := metadata.FetchDataflows(ctx)
		if err != nil {
			return nil, err
		}
		records = live
	}
	if records == nil {
		logging.Infof(ctx, "no metadata cache or client, using the curated dataflow list")
		records = registry.Dataflows()
	}
	t := table.NewTable("id", "agency", "version", "name")
	for _, r := range records {
		t.AddRow(table.StringRow{r.ID, r.Agency, r.Version, r.Name})
	}
	return t, nil
}

// DataflowForIndicator resolves the primary dataflow of an indicator.
func (s *Service) DataflowForIndicator(ctx context.Context, code string) string {
	return s.registry.ResolveDataflow(ctx, code)
}

// RefreshIndicatorCache force-syncs the metadata cache and reloads the
// indicator catalog, returning the catalog size.
func (s *Service) RefreshIndicatorCache(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, errors.Reason("no metadata store configured")
	}
	return s.registry.Refresh(ctx, s.store)
}

// CacheInfo describes the metadata cache. The second value is false when
// no store is configured or the cache has never been synced.
func (s *Service) CacheInfo() (*metadata.CacheInfo, bool, error) {
	if s.store == nil {
		return nil, false, nil
	}
	return s.store.Info()
}

func sexFilter(sex string) string {
	switch sex {
	case "":
		return "_T"
	case SexAll:
		return ""
	}
	return sex
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
