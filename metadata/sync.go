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
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"path/filepath"
	"sort"
	"time"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
	"gopkg.in/yaml.v3"

	"github.com/unicef-drp/unicefdata/sdmx"
)

// Codelists shared by most UNICEF dataflows, synced eagerly.
var commonCodelists = []string{
	"CL_SEX",
	"CL_AGE",
	"CL_WEALTH_QUINTILE",
	"CL_RESIDENCE",
	"CL_UNIT_MEASURE",
}

// Geography codelists, synced into their own cache files.
const (
	refAreaCodelist = "CL_REF_AREA"
	regionCodelist  = "CL_UNICEF_REGION"
)

func watermarkFor(client *sdmx.Client, contentType string, counts map[string]int) *Watermark {
	return &Watermark{
		Platform:    Platform,
		Version:     Version,
		SyncedAt:    time.Now().UTC(),
		Source:      client.BaseURL(),
		Agency:      client.Agency(),
		ContentType: contentType,
		Counts:      counts,
	}
}

// dataHash fingerprints the synced metadata content. YAML serialization
// sorts map keys, so the hash is deterministic for the same content.
// Schemas are excluded: a transient schema-fetch failure must not change
// the identity of otherwise identical metadata.
func dataHash(dataflows map[string]DataflowRecord, indicators map[string]IndicatorRecord,
	codelists map[string]Codelist, countries, regions map[string]string) string {
	out, err := yaml.Marshal(struct {
		Dataflows  map[string]DataflowRecord
		Indicators map[string]IndicatorRecord
		Codelists  map[string]Codelist
		Countries  map[string]string
		Regions    map[string]string
	}{dataflows, indicators, codelists, countries, regions})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(out)
	return hex.EncodeToString(sum[:])
}

// fresh checks whether the current cache is younger than the staleness
// threshold. An unavailable cache is never fresh.
func (s *Store) fresh() bool {
	info, ok, err := s.Info()
	if err != nil || !ok {
		return false
	}
	return time.Since(info.SyncedAt) < s.staleAfter
}

// FetchDataflows downloads the live dataflow list, bypassing the cache.
// Used when no synced cache is available.
func FetchDataflows(ctx context.Context) ([]DataflowRecord, error) {
	client := sdmx.GetClient(ctx)
	if client == nil {
		return nil, errors.Reason("FetchDataflows: no client in context")
	}
	body, err := client.Get(ctx, "dataflow/"+client.Agency(),
		url.Values{"references": []string{"none"}, "detail": []string{"full"}})
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch the dataflow list")
	}
	doc, err := parseStructure(body)
	if err != nil {
		return nil, errors.Annotate(err, "failed to parse the dataflow list")
	}
	records := doc.dataflowRecords(client.Agency())
	out := make([]DataflowRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// fetchCodelist downloads a single codelist by ID.
func fetchCodelist(ctx context.Context, client *sdmx.Client, id string) (Codelist, error) {
	body, err := client.Get(ctx, "codelist/"+client.Agency()+"/"+id+"/latest", nil)
	if err != nil {
		return Codelist{}, err
	}
	doc, err := parseStructure(body)
	if err != nil {
		return Codelist{}, err
	}
	cl, ok := doc.codelist()
	if !ok {
		return Codelist{}, errors.Reason("codelist document for %s has no codelist", id)
	}
	cl.ID = id
	return cl, nil
}

// Sync refreshes the metadata cache from the warehouse. A fresh cache is
// left untouched unless force is set, returning (nil, nil). Each sync
// rewrites the "current" directory and records an immutable vintage
// snapshot under vintages/<date>/.
//
// Per-dataflow schema failures do not abort the sync: the failed schema is
// cached with an error marker and counted, and the remaining dataflows are
// processed normally.
func (s *Store) Sync(ctx context.Context, force bool) (*SyncCounts, error) {
	client := sdmx.GetClient(ctx)
	if client == nil {
		return nil, errors.Reason("Sync: no client in context")
	}
	if !force && s.fresh() {
		logging.Infof(ctx, "metadata cache in '%s' is fresh, skipping sync", s.dir)
		return nil, nil
	}
	var counts SyncCounts

	body, err := client.Get(ctx, "dataflow/"+client.Agency(),
		url.Values{"references": []string{"none"}, "detail": []string{"full"}})
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch the dataflow list")
	}
	doc, err := parseStructure(body)
	if err != nil {
		return nil, errors.Annotate(err, "failed to parse the dataflow list")
	}
	dataflows := doc.dataflowRecords(client.Agency())
	counts.Dataflows = len(dataflows)

	codelists := make(map[string]Codelist)
	for _, id := range commonCodelists {
		cl, err := fetchCodelist(ctx, client, id)
		if err != nil {
			logging.Warningf(ctx, "skipping codelist %s: %s", id, err.Error())
			counts.Errors++
			continue
		}
		codelists[id] = cl
		counts.Codelists++
	}

	countries := map[string]string{}
	if cl, err := fetchCodelist(ctx, client, refAreaCodelist); err != nil {
		logging.Warningf(ctx, "skipping countries (%s): %s", refAreaCodelist, err.Error())
		counts.Errors++
	} else {
		countries = cl.Codes
		counts.Countries = len(countries)
	}

	regions := map[string]string{}
	if cl, err := fetchCodelist(ctx, client, regionCodelist); err != nil {
		logging.Warningf(ctx, "skipping regions (%s): %s", regionCodelist, err.Error())
		counts.Errors++
	} else {
		regions = cl.Codes
		counts.Regions = len(regions)
	}

	indicators := make(map[string]IndicatorRecord, len(s.seed))
	for _, r := range s.seed {
		indicators[r.Code] = r
	}
	counts.Indicators = len(indicators)

	schemas := make(map[string]*DataflowSchema, len(dataflows))
	for id, df := range dataflows {
		schema, err := fetchSchema(ctx, client, id, df.Version)
		if err != nil {
			logging.Warningf(ctx, "failed to fetch schema for %s: %s", id, err.Error())
			schema = &DataflowSchema{ID: id, Version: df.Version, Err: err.Error()}
			counts.Errors++
		} else {
			counts.Schemas++
		}
		schemas[id] = schema
	}

	hash := dataHash(dataflows, indicators, codelists, countries, regions)
	vintage := time.Now().UTC().Format("2006-01-02")
	for _, dir := range []string{s.currentDir(), filepath.Join(s.vintagesDir(), vintage)} {
		if err := s.writeSnapshot(client, dir, dataflows, indicators, codelists,
			countries, regions, schemas, &counts, hash); err != nil {
			return nil, err
		}
	}

	history, err := s.History()
	if err != nil {
		return nil, err
	}
	history = append(history, SyncRecord{
		SyncedAt: time.Now().UTC(),
		Source:   client.BaseURL(),
		Forced:   force,
		Vintage:  vintage,
		DataHash: hash,
		Counts:   counts,
	})
	if err := writeYAML(filepath.Join(s.currentDir(), "sync_history.yaml"), &historyFile{
		Watermark: watermarkFor(client, "sync_history", nil),
		History:   history,
	}); err != nil {
		return nil, err
	}

	s.dataflows = dataflows
	s.schemas = schemas
	logging.Infof(ctx,
		"synced metadata into '%s': %d dataflows, %d codelists, %d schemas, %d errors",
		s.dir, counts.Dataflows, counts.Codelists, counts.Schemas, counts.Errors)
	return &counts, nil
}

// writeSnapshot writes one full set of cache files into dir.
func (s *Store) writeSnapshot(client *sdmx.Client, dir string,
	dataflows map[string]DataflowRecord, indicators map[string]IndicatorRecord,
	codelists map[string]Codelist, countries, regions map[string]string,
	schemas map[string]*DataflowSchema, counts *SyncCounts, hash string) error {

	if err := writeYAML(filepath.Join(dir, "dataflows.yaml"), &dataflowsFile{
		Watermark: watermarkFor(client, "dataflows", map[string]int{"dataflows": len(dataflows)}),
		Dataflows: dataflows,
	}); err != nil {
		return err
	}
	if err := writeYAML(filepath.Join(dir, "indicators.yaml"), &indicatorsFile{
		Watermark:  watermarkFor(client, "indicators", map[string]int{"indicators": len(indicators)}),
		Indicators: indicators,
	}); err != nil {
		return err
	}
	if err := writeYAML(filepath.Join(dir, "codelists.yaml"), &codelistsFile{
		Watermark: watermarkFor(client, "codelists", map[string]int{"codelists": len(codelists)}),
		Codelists: codelists,
	}); err != nil {
		return err
	}
	if err := writeYAML(filepath.Join(dir, "countries.yaml"), &codesFile{
		Watermark: watermarkFor(client, "countries", map[string]int{"codes": len(countries)}),
		Codes:     countries,
	}); err != nil {
		return err
	}
	if err := writeYAML(filepath.Join(dir, "regions.yaml"), &codesFile{
		Watermark: watermarkFor(client, "regions", map[string]int{"codes": len(regions)}),
		Codes:     regions,
	}); err != nil {
		return err
	}
	for id, schema := range schemas {
		if err := writeYAML(s.schemaPath(dir, id), &schemaFile{
			Watermark: watermarkFor(client, "schema", map[string]int{"dimensions": len(schema.Dimensions)}),
			Schema:    schema,
		}); err != nil {
			return err
		}
	}
	if err := writeYAML(filepath.Join(dir, "summary.yaml"), &summaryFile{
		Watermark: watermarkFor(client, "summary", nil),
		DataHash:  hash,
		Counts:    *counts,
	}); err != nil {
		return err
	}
	return nil
}
