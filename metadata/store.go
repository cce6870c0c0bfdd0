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
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/stockparfait/errors"
	"gopkg.in/yaml.v3"

	"github.com/unicef-drp/unicefdata/sdmx"
)

// StoreConfig configures a Store.
type StoreConfig struct {
	Dir        string            // cache directory; required
	Seed       []IndicatorRecord // indicator catalog written by Sync
	StaleAfter time.Duration     // re-sync threshold; default: 30 days
}

// Store owns the on-disk metadata cache lifecycle. The "current" directory
// is read by many operations but written only by Sync; sync is an
// operator-triggered administrative action, and concurrent multi-process
// writers are last-writer-wins by design of the flat file layout.
type Store struct {
	dir        string
	seed       []IndicatorRecord
	staleAfter time.Duration
	schemas    map[string]*DataflowSchema // lazy in-memory schema cache
	dataflows  map[string]DataflowRecord  // lazy in-memory dataflow cache
}

// NewStore creates a store over the given cache directory. The directory
// may not exist yet; it is created on first write.
func NewStore(cfg *StoreConfig) *Store {
	if cfg == nil {
		cfg = &StoreConfig{}
	}
	s := &Store{
		dir:        cfg.Dir,
		seed:       cfg.Seed,
		staleAfter: cfg.StaleAfter,
		schemas:    make(map[string]*DataflowSchema),
	}
	if s.staleAfter == 0 {
		s.staleAfter = 30 * 24 * time.Hour
	}
	return s
}

// Dir returns the cache directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) currentDir() string { return filepath.Join(s.dir, "current") }

func (s *Store) vintagesDir() string { return filepath.Join(s.dir, "vintages") }

func (s *Store) schemaPath(dir, id string) string {
	return filepath.Join(dir, "dataflows", id+".yaml")
}

// writeYAML writes v to path, creating parent directories as needed.
func writeYAML(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Annotate(err, "failed to create directory for '%s'", path)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return errors.Annotate(err, "failed to serialize '%s'", path)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return errors.Annotate(err, "failed to write '%s'", path)
	}
	return nil
}

// readYAML reads path into v. A missing file returns (false, nil): cache
// unavailable is not an error.
func readYAML(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, errors.Annotate(err, "failed to read '%s'", path)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return false, errors.Annotate(err, "failed to parse '%s'", path)
	}
	return true, nil
}

// loadDataflows populates the in-memory dataflow map from the cache file.
func (s *Store) loadDataflows() (map[string]DataflowRecord, bool, error) {
	if s.dataflows != nil {
		return s.dataflows, true, nil
	}
	var f dataflowsFile
	ok, err := readYAML(filepath.Join(s.currentDir(), "dataflows.yaml"), &f)
	if err != nil {
		return nil, false, err
	}
	if !ok || f.Watermark == nil {
		return nil, false, nil
	}
	s.dataflows = f.Dataflows
	return s.dataflows, true, nil
}

// ListDataflows returns the cached dataflow records sorted by ID. The
// second value is false when the cache is unavailable (missing file or
// watermark); callers decide whether to fall back to the network.
func (s *Store) ListDataflows() ([]DataflowRecord, bool, error) {
	m, ok, err := s.loadDataflows()
	if err != nil || !ok {
		return nil, ok, err
	}
	records := make([]DataflowRecord, 0, len(m))
	for _, r := range m {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, true, nil
}

// Dataflow looks up a single cached dataflow record.
func (s *Store) Dataflow(id string) (DataflowRecord, bool) {
	m, ok, err := s.loadDataflows()
	if err != nil || !ok {
		return DataflowRecord{}, false
	}
	r, ok := m[id]
	return r, ok
}

// DataflowVersion resolves the version of a dataflow from the cache, or
// "1.0" when the cache has no record of it.
func (s *Store) DataflowVersion(id string) string {
	if r, ok := s.Dataflow(id); ok && r.Version != "" {
		return r.Version
	}
	return "1.0"
}

// Indicators returns the cached indicator catalog keyed by code.
func (s *Store) Indicators() (map[string]IndicatorRecord, bool, error) {
	var f indicatorsFile
	ok, err := readYAML(filepath.Join(s.currentDir(), "indicators.yaml"), &f)
	if err != nil {
		return nil, false, err
	}
	if !ok || f.Watermark == nil {
		return nil, false, nil
	}
	return f.Indicators, true, nil
}

// Codelists returns the cached common codelists keyed by codelist ID.
func (s *Store) Codelists() (map[string]Codelist, bool, error) {
	var f codelistsFile
	ok, err := readYAML(filepath.Join(s.currentDir(), "codelists.yaml"), &f)
	if err != nil {
		return nil, false, err
	}
	if !ok || f.Watermark == nil {
		return nil, false, nil
	}
	return f.Codelists, true, nil
}

// Countries returns the cached REF_AREA codes (ISO3 -> name).
func (s *Store) Countries() (map[string]string, bool, error) {
	var f codesFile
	ok, err := readYAML(filepath.Join(s.currentDir(), "countries.yaml"), &f)
	if err != nil {
		return nil, false, err
	}
	if !ok || f.Watermark == nil {
		return nil, false, nil
	}
	return f.Codes, true, nil
}

// Regions returns the cached UNICEF programme region codes.
func (s *Store) Regions() (map[string]string, bool, error) {
	var f codesFile
	ok, err := readYAML(filepath.Join(s.currentDir(), "regions.yaml"), &f)
	if err != nil {
		return nil, false, err
	}
	if !ok || f.Watermark == nil {
		return nil, false, nil
	}
	return f.Codes, true, nil
}

// Schema returns the schema of one dataflow: from memory, then from the
// cache file, then fetched from the network and cached.
func (s *Store) Schema(ctx context.Context, id string) (*DataflowSchema, error) {
	if schema, ok := s.schemas[id]; ok {
		return schema, nil
	}
	var f schemaFile
	ok, err := readYAML(s.schemaPath(s.currentDir(), id), &f)
	if err != nil {
		return nil, err
	}
	if ok && f.Watermark != nil && f.Schema != nil && f.Schema.Err == "" {
		s.schemas[id] = f.Schema
		return f.Schema, nil
	}
	client := sdmx.GetClient(ctx)
	if client == nil {
		return nil, errors.Reason("schema for %s is not cached and no client in context", id)
	}
	version := s.DataflowVersion(id)
	schema, err := fetchSchema(ctx, client, id, version)
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch schema for %s", id)
	}
	if err := writeYAML(s.schemaPath(s.currentDir(), id), &schemaFile{
		Watermark: watermarkFor(client, "schema", map[string]int{"dimensions": len(schema.Dimensions)}),
		Schema:    schema,
	}); err != nil {
		return nil, err
	}
	s.schemas[id] = schema
	return schema, nil
}

// fetchSchema downloads and parses the dimension layout of one dataflow.
func fetchSchema(ctx context.Context, client *sdmx.Client, id, version string) (*DataflowSchema, error) {
	query := url.Values{"references": []string{"all"}}
	path := "dataflow/" + client.Agency() + "/" + id + "/" + version
	body, err := client.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	doc, err := parseStructure(body)
	if err != nil {
		return nil, err
	}
	return doc.schema(id, version)
}

// Vintages lists the dated vintage snapshots, oldest first.
func (s *Store) Vintages() ([]string, error) {
	entries, err := os.ReadDir(s.vintagesDir())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Annotate(err, "failed to list vintages in '%s'", s.vintagesDir())
	}
	var vintages []string
	for _, e := range entries {
		if e.IsDir() {
			vintages = append(vintages, e.Name())
		}
	}
	sort.Strings(vintages)
	return vintages, nil
}

// History returns the append-style sync history, oldest first.
func (s *Store) History() ([]SyncRecord, error) {
	var f historyFile
	if _, err := readYAML(filepath.Join(s.currentDir(), "sync_history.yaml"), &f); err != nil {
		return nil, err
	}
	return f.History, nil
}

// Info describes the current cache. The second value is false when the
// cache is unavailable.
func (s *Store) Info() (*CacheInfo, bool, error) {
	var f dataflowsFile
	ok, err := readYAML(filepath.Join(s.currentDir(), "dataflows.yaml"), &f)
	if err != nil {
		return nil, false, err
	}
	if !ok || f.Watermark == nil {
		return nil, false, nil
	}
	vintages, err := s.Vintages()
	if err != nil {
		return nil, false, err
	}
	return &CacheInfo{
		Dir:      s.dir,
		SyncedAt: f.Watermark.SyncedAt,
		Source:   f.Watermark.Source,
		Agency:   f.Watermark.Agency,
		Counts:   f.Watermark.Counts,
		Vintages: vintages,
	}, true, nil
}
