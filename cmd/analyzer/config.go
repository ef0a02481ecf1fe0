package main

import (
	"errors"
	"flag"
	"fmt"
)

const (
	SourcePre    = "pre"
	SourceCSV    = "csv"
	SourceManual = "manual"
)

type Config struct {
	Source string
	File   string
	Column string
	Input  string
	JSON   bool
}

func (c Config) Validate() error {
	switch c.Source {
	case SourcePre:
	case SourceCSV:
		if c.File == "" {
			return errors.New("missing -file for csv source")
		}
	case SourceManual:
		if c.Input == "" {
			return errors.New("missing -input for manual source")
		}
	default:
		return fmt.Errorf("invalid -source %q: must be pre, csv or manual", c.Source)
	}
	return nil
}

func defaultConfig() Config {
	return Config{Source: SourcePre}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.StringVar(&cfg.Source, "source", cfg.Source, "data source: pre, csv or manual")
	fs.StringVar(&cfg.File, "file", cfg.File, "CSV file for the csv source")
	fs.StringVar(&cfg.Column, "column", cfg.Column, "column to analyze (default: first column)")
	fs.StringVar(&cfg.Input, "input", cfg.Input, "manual input, one entry per line; - reads stdin")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print the full result as JSON")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
