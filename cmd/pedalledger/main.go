package main

import (
	"os"
	"time"

	"pedalledger/internal/config"
	"pedalledger/internal/ledger"
	"pedalledger/internal/report"
	"pedalledger/internal/scan"
	"pedalledger/internal/xlsxio"
	"pedalledger/pkg/logger"
)

const (
	exitFailure      = 1
	exitMissingInput = 2
)

func main() {

	start := time.Now()
	log := logger.New("pedalledger")

	cfg, err := config.ParseFlags()
	if err != nil {
		log.Printf("configuration error: %v", err)
		os.Exit(exitFailure)
	}

	if _, err := os.Stat(cfg.InputPath); os.IsNotExist(err) {
		log.Printf("input workbook not found: %s", cfg.InputPath)
		os.Exit(exitMissingInput)
	}

	sheet, err := xlsxio.OpenSheet(cfg.InputPath, cfg.SheetName)
	if err != nil {
		log.Printf("load workbook: %v", err)
		os.Exit(exitFailure)
	}
	log.Printf("loaded %d rows from %s", sheet.Rows(), cfg.InputPath)

	entries := scan.Run(sheet)
	records := ledger.Assemble(entries)

	report.Print(os.Stdout, records, cfg.SampleRows)

	if err := xlsxio.WriteWorkbook(cfg.XLSXOutput, cfg.OutputSheet, records); err != nil {
		log.Printf("write workbook: %v", err)
		os.Exit(exitFailure)
	}
	log.Printf("cleaned data saved to %s", cfg.XLSXOutput)

	if err := xlsxio.WriteCSV(cfg.CSVOutput, records); err != nil {
		log.Printf("write csv: %v", err)
		os.Exit(exitFailure)
	}
	log.Printf("csv version saved to %s", cfg.CSVOutput)

	log.Printf("done in %s", time.Since(start))
}
