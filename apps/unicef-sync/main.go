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

// unicef-sync maintains the on-disk UNICEF metadata cache: dataflows,
// codelists, schemas and dated vintage snapshots.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"

	"github.com/unicef-drp/unicefdata/metadata"
	"github.com/unicef-drp/unicefdata/registry"
	"github.com/unicef-drp/unicefdata/sdmx"
	"github.com/unicef-drp/unicefdata/table"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	CacheDir string // default: ~/.unicefdata
	LogLevel logging.Level
	Force    bool // sync even when the cache is fresh
	Info     bool // print cache info instead of syncing
	Vintages bool // print the vintage snapshot dates
	CSV      bool
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("unicef-sync", flag.ExitOnError)
	fs.StringVar(&flags.CacheDir, "cache",
		filepath.Join(os.Getenv("HOME"), ".unicefdata"),
		"path to the metadata cache and config")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")
	fs.BoolVar(&flags.Force, "force", false, "sync even when the cache is fresh")
	fs.BoolVar(&flags.Info, "info", false, "print cache info instead of syncing")
	fs.BoolVar(&flags.Vintages, "vintages", false, "print vintage snapshot dates")
	fs.BoolVar(&flags.CSV, "csv", false, "print tables in CSV format; default: text")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if flags.Info && flags.Vintages {
		return nil, errors.Reason("expected at most one of -info or -vintages")
	}
	return &flags, nil
}

type Config struct {
	BaseURL    string `toml:"base_url"`
	Agency     string `toml:"agency"`
	MaxRetries int    `toml:"max_retries"`
}

func parseConfig(dir string) (*Config, error) {
	var c Config
	filePath := filepath.Join(dir, "config.toml")
	f, err := os.Open(filePath)
	if err == nil {
		defer f.Close()
		if err := toml.NewDecoder(f).Decode(&c); err != nil {
			return nil, errors.Annotate(err, "failed to read config file %s", filePath)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	godotenv.Load()
	if v := os.Getenv("UNICEF_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("UNICEF_AGENCY"); v != "" {
		c.Agency = v
	}
	return &c, nil
}

func infoTable(info *metadata.CacheInfo) *table.Table {
	tbl := table.NewTable("key", "value")
	tbl.AddRow(
		table.StringRow{"dir", info.Dir},
		table.StringRow{"synced_at", info.SyncedAt.Format("2006-01-02 15:04:05 MST")},
		table.StringRow{"source", info.Source},
		table.StringRow{"agency", info.Agency},
		table.StringRow{"vintages", strings.Join(info.Vintages, ", ")},
	)
	for key, count := range info.Counts {
		tbl.AddRow(table.StringRow{key, strconv.Itoa(count)})
	}
	return tbl
}

func countsTable(counts *metadata.SyncCounts) *table.Table {
	tbl := table.NewTable("item", "count")
	add := func(name string, n int) {
		tbl.AddRow(table.StringRow{name, strconv.Itoa(n)})
	}
	add("dataflows", counts.Dataflows)
	add("codelists", counts.Codelists)
	add("indicators", counts.Indicators)
	add("countries", counts.Countries)
	add("regions", counts.Regions)
	add("schemas", counts.Schemas)
	add("errors", counts.Errors)
	return tbl
}

func run(ctx context.Context, flags *Flags, w io.Writer) error {
	config, err := parseConfig(flags.CacheDir)
	if err != nil {
		return errors.Annotate(err, "failed to parse config")
	}
	ctx = sdmx.UseClient(ctx, &sdmx.Config{
		BaseURL:    config.BaseURL,
		Agency:     config.Agency,
		MaxRetries: config.MaxRetries,
	})
	store := metadata.NewStore(&metadata.StoreConfig{
		Dir:  filepath.Join(flags.CacheDir, "metadata"),
		Seed: registry.Indicators(),
	})

	var tbl *table.Table
	switch {
	case flags.Info:
		info, ok, err := store.Info()
		if err != nil {
			return errors.Annotate(err, "failed to read cache info")
		}
		if !ok {
			return errors.Reason("no metadata cache in '%s'; run a sync first", store.Dir())
		}
		tbl = infoTable(info)
	case flags.Vintages:
		vintages, err := store.Vintages()
		if err != nil {
			return errors.Annotate(err, "failed to list vintages")
		}
		tbl = table.NewTable("vintage")
		for _, v := range vintages {
			tbl.AddRow(table.StringRow{v})
		}
	default:
		counts, err := store.Sync(ctx, flags.Force)
		if err != nil {
			return errors.Annotate(err, "sync failed")
		}
		if counts == nil {
			_, err := fmt.Fprintf(w, "cache is fresh, nothing to do (use -force to sync anyway)\n")
			return err
		}
		tbl = countsTable(counts)
	}
	if flags.CSV {
		if err := tbl.WriteCSV(w, table.Params{}); err != nil {
			return errors.Annotate(err, "failed to print CSV")
		}
		return nil
	}
	if err := tbl.WriteText(w, table.Params{}); err != nil {
		return errors.Annotate(err, "failed to print text")
	}
	return nil
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := run(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
