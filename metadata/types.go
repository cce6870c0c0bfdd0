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

// Package metadata implements the file-backed, versioned cache of UNICEF
// SDMX metadata: dataflow lists, codelists and per-dataflow schemas.
//
// The "current" cache is overwritten by every sync; each sync additionally
// writes an immutable dated vintage snapshot, so downstream consumers can
// pin to a known-good copy and operators can audit metadata drift.
package metadata

import (
	"time"
)

// Platform identifies this library in cache watermarks.
const Platform = "unicefdata-go"

// Version is the watermark format version.
const Version = "1.0"

// Watermark records the provenance of a cached metadata file. Every cache
// file carries one; a file without a watermark is treated as "cache
// unavailable", not as an error.
type Watermark struct {
	Platform    string         `yaml:"platform"`
	Version     string         `yaml:"version"`
	SyncedAt    time.Time      `yaml:"synced_at"`
	Source      string         `yaml:"source"`
	Agency      string         `yaml:"agency"`
	ContentType string         `yaml:"content_type"`
	Counts      map[string]int `yaml:"counts,omitempty"`
}

// DataflowRecord describes one dataflow of the warehouse. Records are
// created by a metadata sync and read-only until the next sync overwrites
// the cache file.
type DataflowRecord struct {
	ID      string `yaml:"id"`
	Agency  string `yaml:"agency"`
	Version string `yaml:"version"`
	Name    string `yaml:"name"`
}

// IndicatorRecord describes one indicator of the warehouse catalog.
type IndicatorRecord struct {
	Code      string `yaml:"code"`
	Name      string `yaml:"name"`
	Category  string `yaml:"category"`
	Dataflow  string `yaml:"dataflow"`
	SDGTarget string `yaml:"sdg_target,omitempty"`
	Unit      string `yaml:"unit,omitempty"`
}

// Codelist is the enumerated set of valid values for a dimension.
type Codelist struct {
	ID    string            `yaml:"id"`
	Codes map[string]string `yaml:"codes"`
}

// Dimension is a single dimension of a dataflow schema.
type Dimension struct {
	ID       string `yaml:"id"`
	Position int    `yaml:"position"`
	Codelist string `yaml:"codelist,omitempty"`
}

// Attribute is a single attribute of a dataflow schema.
type Attribute struct {
	ID       string `yaml:"id"`
	Codelist string `yaml:"codelist,omitempty"`
}

// DataflowSchema is the dimension and attribute layout of one dataflow.
// Schemas are fetched lazily and cached per dataflow. A schema whose fetch
// failed during sync is recorded with the Err marker instead of aborting
// the sync of the remaining dataflows.
type DataflowSchema struct {
	ID             string      `yaml:"id"`
	Name           string      `yaml:"name"`
	Version        string      `yaml:"version"`
	Dimensions     []Dimension `yaml:"dimensions"`
	TimeDimension  string      `yaml:"time_dimension"`
	PrimaryMeasure string      `yaml:"primary_measure"`
	Attributes     []Attribute `yaml:"attributes"`
	Err            string      `yaml:"error,omitempty"`
}

// TimeDimensionID is the time dimension of every UNICEF dataflow.
const TimeDimensionID = "TIME_PERIOD"

// PrimaryMeasureID is the primary measure of every UNICEF dataflow.
const PrimaryMeasureID = "OBS_VALUE"

// SyncCounts summarizes one sync run.
type SyncCounts struct {
	Dataflows  int `yaml:"dataflows"`
	Codelists  int `yaml:"codelists"`
	Indicators int `yaml:"indicators"`
	Countries  int `yaml:"countries"`
	Regions    int `yaml:"regions"`
	Schemas    int `yaml:"schemas"`
	Errors     int `yaml:"errors"`
}

// SyncRecord is one entry of the append-style sync history. DataHash
// fingerprints the synced content: two vintages with the same hash carry
// identical metadata.
type SyncRecord struct {
	SyncedAt time.Time  `yaml:"synced_at"`
	Source   string     `yaml:"source"`
	Forced   bool       `yaml:"forced"`
	Vintage  string     `yaml:"vintage"`
	DataHash string     `yaml:"data_hash"`
	Counts   SyncCounts `yaml:"counts"`
}

// CacheInfo describes the state of the current cache.
type CacheInfo struct {
	Dir      string         `yaml:"dir"`
	SyncedAt time.Time      `yaml:"synced_at"`
	Source   string         `yaml:"source"`
	Agency   string         `yaml:"agency"`
	Counts   map[string]int `yaml:"counts"`
	Vintages []string       `yaml:"vintages"`
}

// File payloads. Every file starts with a watermark.

type dataflowsFile struct {
	Watermark *Watermark                `yaml:"watermark"`
	Dataflows map[string]DataflowRecord `yaml:"dataflows"`
}

type indicatorsFile struct {
	Watermark  *Watermark                 `yaml:"watermark"`
	Indicators map[string]IndicatorRecord `yaml:"indicators"`
}

type codelistsFile struct {
	Watermark *Watermark          `yaml:"watermark"`
	Codelists map[string]Codelist `yaml:"codelists"`
}

type codesFile struct {
	Watermark *Watermark        `yaml:"watermark"`
	Codes     map[string]string `yaml:"codes"`
}

type schemaFile struct {
	Watermark *Watermark      `yaml:"watermark"`
	Schema    *DataflowSchema `yaml:"schema"`
}

type historyFile struct {
	Watermark *Watermark   `yaml:"watermark"`
	History   []SyncRecord `yaml:"history"`
}

type summaryFile struct {
	Watermark *Watermark `yaml:"watermark"`
	DataHash  string     `yaml:"data_hash"`
	Counts    SyncCounts `yaml:"counts"`
}
