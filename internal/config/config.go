package config

import (
	"flag"
	"fmt"
	"path/filepath"
)

// Config carries the run settings. Every flag has a working default, so the
// tool runs with no arguments when the workbook sits next to the binary.
type Config struct {
	InputPath   string
	SheetName   string
	XLSXOutput  string
	OutputSheet string
	CSVOutput   string
	SampleRows  int
}

func ParseFlags() (*Config, error) {

	cfg := &Config{}

	flag.StringVar(&cfg.InputPath, "in", "pedal-pricing.xlsx", "input pricing workbook")
	flag.StringVar(&cfg.SheetName, "sheet", "Sheet1", "worksheet to scan")
	flag.StringVar(&cfg.XLSXOutput, "out", "cleaned_pedal_pricing.xlsx", "cleaned xlsx output")
	flag.StringVar(&cfg.OutputSheet, "out-sheet", "Cleaned_Data", "sheet name in the cleaned workbook")
	flag.StringVar(&cfg.CSVOutput, "csv", "cleaned_pedal_pricing.csv", "cleaned csv output")
	flag.IntVar(&cfg.SampleRows, "sample", 20, "number of head/tail entries to print")

	flag.Parse()

	if cfg.InputPath == "" {
		return nil, fmt.Errorf("input workbook must be given via -in")
	}
	if cfg.SampleRows < 0 {
		return nil, fmt.Errorf("-sample must not be negative")
	}

	cfg.InputPath = filepath.Clean(cfg.InputPath)
	cfg.XLSXOutput = filepath.Clean(cfg.XLSXOutput)
	cfg.CSVOutput = filepath.Clean(cfg.CSVOutput)

	return cfg, nil
}
