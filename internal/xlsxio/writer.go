package xlsxio

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"pedalledger/internal/ledger"
)

// WriteWorkbook saves the cleaned records as an xlsx file with a header row.
func WriteWorkbook(path, sheet string, records []ledger.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %v", err)
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("create stream writer: %v", err)
	}

	header := make([]interface{}, len(ledger.Columns))
	for i, col := range ledger.Columns {
		header[i] = col
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %v", err)
	}

	for i, rec := range records {
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row reference %d: %v", i+2, err)
		}
		row := []interface{}{rec.PedalName, rec.Price, rec.Date, rec.ExpirationDate}
		if err := sw.SetRow(ref, row); err != nil {
			return fmt.Errorf("write row %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush stream writer: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %v", path, err)
	}
	return nil
}

// WriteCSV saves the cleaned records as a comma-separated file with a header
// line, mirroring the xlsx column order.
func WriteCSV(path string, records []ledger.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv %s: %v", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(ledger.Columns); err != nil {
		return fmt.Errorf("write csv header: %v", err)
	}
	for _, rec := range records {
		if err := w.Write(rec.Strings()); err != nil {
			return fmt.Errorf("write csv row: %v", err)
		}
	}
	w.Flush()
	return w.Error()
}
