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

// unicef-fetch downloads UNICEF indicator data and prints it as a table.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"

	"github.com/unicef-drp/unicefdata/metadata"
	"github.com/unicef-drp/unicefdata/sdmx"
	"github.com/unicef-drp/unicefdata/table"
	"github.com/unicef-drp/unicefdata/unicef"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	CacheDir string // default: ~/.unicefdata
	LogLevel logging.Level
	// Exactly one of indicator, dataflow, dataflows or resolve must be present.
	Indicator string
	Dataflow  string
	Dataflows string // comma-separated list
	List      bool   // list available dataflows
	Resolve   string // print the dataflow for an indicator code

	Countries        string // comma-separated ISO3 codes
	StartYear        string
	EndYear          string
	Sex              string
	Format           string // long, wide or indicators
	MRV              int
	Latest           bool
	DropNA           bool
	Simplify         bool
	Metadata         bool
	Raw              bool
	IgnoreDuplicates bool
	CSV              bool // dump CSV format; default: text
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("unicef-fetch", flag.ExitOnError)
	fs.StringVar(&flags.CacheDir, "cache",
		filepath.Join(os.Getenv("HOME"), ".unicefdata"),
		"path to the metadata cache and config")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")
	fs.StringVar(&flags.Indicator, "indicator", "", "indicator code to fetch")
	fs.StringVar(&flags.Dataflow, "dataflow", "", "explicit dataflow to fetch")
	fs.StringVar(&flags.Dataflows, "dataflows", "",
		"comma-separated dataflows to fetch sequentially")
	fs.BoolVar(&flags.List, "list", false, "list available dataflows")
	fs.StringVar(&flags.Resolve, "resolve", "",
		"print the dataflow for an indicator code")
	fs.StringVar(&flags.Countries, "countries", "",
		"comma-separated ISO3 codes; default: all")
	fs.StringVar(&flags.StartYear, "start", "", "start year (YYYY)")
	fs.StringVar(&flags.EndYear, "end", "", "end year (YYYY)")
	fs.StringVar(&flags.Sex, "sex", "_T", "sex code filter; ALL disables")
	fs.StringVar(&flags.Format, "format", unicef.FormatLong,
		"output shape: long, wide or indicators")
	fs.IntVar(&flags.MRV, "mrv", 0, "keep at most N most recent values per country")
	fs.BoolVar(&flags.Latest, "latest", false, "keep only the latest value per country")
	fs.BoolVar(&flags.DropNA, "dropna", false, "drop rows without values")
	fs.BoolVar(&flags.Simplify, "simplify", false, "essential columns only")
	fs.BoolVar(&flags.Metadata, "metadata", false,
		"add region, income group and continent columns")
	fs.BoolVar(&flags.Raw, "raw", false, "print unnormalized warehouse columns")
	fs.BoolVar(&flags.IgnoreDuplicates, "ignore-duplicates", false,
		"remove exact duplicate rows instead of failing")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	kinds := 0
	if flags.Indicator != "" {
		kinds++
	}
	if flags.Dataflow != "" {
		kinds++
	}
	if flags.Dataflows != "" {
		kinds++
	}
	if flags.List {
		kinds++
	}
	if flags.Resolve != "" {
		kinds++
	}
	if kinds != 1 {
		return nil, errors.Reason(
			"expected exactly one of -indicator, -dataflow, -dataflows, -list or -resolve")
	}
	switch flags.Format {
	case unicef.FormatLong, unicef.FormatWide, unicef.FormatIndicators:
	default:
		return nil, errors.Reason("unknown -format %q", flags.Format)
	}
	return &flags, nil
}

type Config struct {
	BaseURL    string `toml:"base_url"`
	Agency     string `toml:"agency"`
	MaxRetries int    `toml:"max_retries"`
}

// parseConfig reads the optional config.toml from the cache directory.
// Environment variables (optionally from a .env file) override it.
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

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func printData(ctx context.Context, flags *Flags, w io.Writer) error {
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
		Dir: filepath.Join(flags.CacheDir, "metadata"),
	})
	service := unicef.NewService(ctx, &unicef.ServiceConfig{Store: store})

	if flags.Resolve != "" {
		_, err := io.WriteString(w, service.DataflowForIndicator(ctx, flags.Resolve)+"\n")
		return err
	}

	var tbl *table.Table
	if flags.List {
		if tbl, err = service.ListDataflows(ctx); err != nil {
			return errors.Annotate(err, "failed to list dataflows")
		}
	} else {
		p := unicef.DefaultParams()
		p.Indicator = flags.Indicator
		p.Dataflow = flags.Dataflow
		p.Dataflows = splitList(flags.Dataflows)
		p.Countries = splitList(flags.Countries)
		p.StartYear = flags.StartYear
		p.EndYear = flags.EndYear
		p.Sex = flags.Sex
		p.Format = flags.Format
		p.MRV = flags.MRV
		p.Latest = flags.Latest
		p.DropNA = flags.DropNA
		p.Simplify = flags.Simplify
		p.AddMetadata = flags.Metadata
		p.Raw = flags.Raw
		p.IgnoreDuplicates = flags.IgnoreDuplicates
		if tbl, err = service.GetUnicef(ctx, p); err != nil {
			return errors.Annotate(err, "failed to fetch data")
		}
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

	if err := printData(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
