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

// Package registry maps indicator codes to the dataflows that serve them.
//
// Resolution is a total function: explicit per-indicator overrides win,
// then the indicator catalog, then inference from the code prefix, and
// finally the default dataflow. An unknown indicator therefore still
// resolves, and the fetch layer discovers whether the guess holds.
package registry

import (
	"context"
	"sort"
	"strings"

	"github.com/stockparfait/logging"

	"github.com/unicef-drp/unicefdata/metadata"
)

// Config configures a Registry. The zero value of each field selects the
// curated default.
type Config struct {
	Overrides       map[string]string   // indicator code -> dataflow, wins over the catalog
	Prefixes        map[string]string   // code prefix (before "_") -> dataflow
	Alternates      map[string][]string // code prefix -> fallback dataflows, in order
	DefaultDataflow string
	Indicators      []metadata.IndicatorRecord // catalog seed
}

// Registry resolves indicators to dataflows and serves the indicator
// catalog. The catalog starts from the curated seed and may be extended
// from a metadata cache.
type Registry struct {
	overrides  map[string]string
	prefixes   map[string]string
	alternates map[string][]string
	fallback   string
	catalog    map[string]metadata.IndicatorRecord
}

// NewRegistry creates a registry from cfg. A nil cfg selects the curated
// defaults.
func NewRegistry(cfg *Config) *Registry {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &Registry{
		overrides:  cfg.Overrides,
		prefixes:   cfg.Prefixes,
		alternates: cfg.Alternates,
		fallback:   cfg.DefaultDataflow,
		catalog:    make(map[string]metadata.IndicatorRecord, len(cfg.Indicators)),
	}
	if r.overrides == nil {
		r.overrides = defaultOverrides
	}
	if r.prefixes == nil {
		r.prefixes = defaultPrefixes
	}
	if r.alternates == nil {
		r.alternates = defaultAlternates
	}
	if r.fallback == "" {
		r.fallback = DefaultDataflow
	}
	indicators := cfg.Indicators
	if indicators == nil {
		indicators = Indicators()
	}
	for _, ind := range indicators {
		r.catalog[ind.Code] = ind
	}
	return r
}

// prefix extracts the indicator code prefix before the first underscore.
func prefix(code string) string {
	if i := strings.Index(code, "_"); i > 0 {
		return code[:i]
	}
	return code
}

// ResolveDataflow maps an indicator code to its primary dataflow.
func (r *Registry) ResolveDataflow(ctx context.Context, code string) string {
	if df, ok := r.overrides[code]; ok {
		logging.Infof(ctx, "indicator %s -> %s (override)", code, df)
		return df
	}
	if ind, ok := r.catalog[code]; ok && ind.Dataflow != "" {
		logging.Infof(ctx, "indicator %s -> %s (catalog)", code, ind.Dataflow)
		return ind.Dataflow
	}
	if df, ok := r.prefixes[prefix(code)]; ok {
		logging.Infof(ctx, "indicator %s -> %s (prefix %s)", code, df, prefix(code))
		return df
	}
	logging.Infof(ctx, "indicator %s -> %s (default)", code, r.fallback)
	return r.fallback
}

// Alternates returns the ordered dataflow candidates for an indicator:
// the primary dataflow first, then prefix-specific fallbacks, then the
// default dataflow. The list has no duplicates.
func (r *Registry) Alternates(ctx context.Context, code string) []string {
	candidates := []string{r.ResolveDataflow(ctx, code)}
	candidates = append(candidates, r.alternates[prefix(code)]...)
	candidates = append(candidates, r.fallback)
	seen := make(map[string]bool, len(candidates))
	var out []string
	for _, df := range candidates {
		if !seen[df] {
			seen[df] = true
			out = append(out, df)
		}
	}
	return out
}

// Lookup returns the catalog record for an indicator code.
func (r *Registry) Lookup(code string) (metadata.IndicatorRecord, bool) {
	ind, ok := r.catalog[code]
	return ind, ok
}

// List returns all catalog indicators sorted by code.
func (r *Registry) List() []metadata.IndicatorRecord {
	out := make([]metadata.IndicatorRecord, 0, len(r.catalog))
	for _, ind := range r.catalog {
		out = append(out, ind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Search returns catalog indicators whose code or name contains the query,
// case-insensitively, sorted by code.
func (r *Registry) Search(query string) []metadata.IndicatorRecord {
	query = strings.ToLower(query)
	var out []metadata.IndicatorRecord
	for _, ind := range r.catalog {
		if strings.Contains(strings.ToLower(ind.Code), query) ||
			strings.Contains(strings.ToLower(ind.Name), query) {
			out = append(out, ind)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Categories returns the distinct catalog categories, sorted.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	for _, ind := range r.catalog {
		if ind.Category != "" {
			seen[ind.Category] = true
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// LoadCache merges cached indicators into the catalog. An unavailable
// cache leaves the curated catalog as is.
func (r *Registry) LoadCache(ctx context.Context, store *metadata.Store) {
	cached, ok, err := store.Indicators()
	if err != nil {
		logging.Warningf(ctx, "failed to load the indicator cache: %s", err.Error())
		return
	}
	if !ok {
		logging.Debugf(ctx, "no indicator cache in '%s'", store.Dir())
		return
	}
	for code, ind := range cached {
		r.catalog[code] = ind
	}
}

// Refresh re-syncs the metadata cache and reloads the catalog from it.
// Returns the number of indicators in the refreshed catalog.
func (r *Registry) Refresh(ctx context.Context, store *metadata.Store) (int, error) {
	if _, err := store.Sync(ctx, true); err != nil {
		return 0, err
	}
	r.LoadCache(ctx, store)
	return len(r.catalog), nil
}
