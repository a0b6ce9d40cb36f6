// Package xlsxio loads the pricing workbook into a typed in-memory grid and
// writes the cleaned ledger back out as xlsx and csv.
package xlsxio

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"pedalledger/internal/cell"
)

// maxColumns bounds the scan width; the ledger layout ends at column H.
const maxColumns = 8

// Sheet is a fully loaded worksheet. The whole grid is resident before
// scanning starts; absent cells read back as cell.Empty().
type Sheet struct {
	rows  int
	cells map[cellRef]cell.Value
}

type cellRef struct {
	row int
	col int
}

// Rows returns the number of rows in the sheet.
func (s *Sheet) Rows() int { return s.rows }

// Cell returns the typed value at the 1-indexed (row, col) position.
func (s *Sheet) Cell(row, col int) cell.Value {
	if v, ok := s.cells[cellRef{row: row, col: col}]; ok {
		return v
	}
	return cell.Empty()
}

// OpenSheet reads one worksheet of an xlsx workbook into a Sheet.
func OpenSheet(path, sheet string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	s := &Sheet{rows: len(rows), cells: make(map[cellRef]cell.Value)}
	for rowIdx := range rows {
		row := rowIdx + 1
		for col := 1; col <= maxColumns; col++ {
			v, err := readCell(f, sheet, row, col)
			if err != nil {
				return nil, err
			}
			if !v.IsEmpty() {
				s.cells[cellRef{row: row, col: col}] = v
			}
		}
	}
	return s, nil
}

// readCell converts one workbook cell into the closed variant type. Dates
// are stored by xlsx as styled numbers, so numeric cells get their number
// format probed before they are accepted as plain numbers.
func readCell(f *excelize.File, sheet string, row, col int) (cell.Value, error) {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return cell.Empty(), fmt.Errorf("cell reference (%d,%d): %w", row, col, err)
	}
	raw, err := f.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		return cell.Empty(), fmt.Errorf("read cell %s: %w", ref, err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return cell.Empty(), nil
	}

	cellType, err := f.GetCellType(sheet, ref)
	if err != nil {
		cellType = excelize.CellTypeInlineString
	}

	switch cellType {
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return cell.Text(raw), nil
		}
		if isDateStyled(f, sheet, ref) {
			t, err := excelize.ExcelDateToTime(n, false)
			if err != nil {
				return cell.Number(n), nil
			}
			return cell.Date(t.UTC()), nil
		}
		return cell.Number(n), nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return cell.Date(t), nil
		}
		return cell.Text(raw), nil
	default:
		return cell.Text(raw), nil
	}
}

func isDateStyled(f *excelize.File, sheet, ref string) bool {
	styleID, err := f.GetCellStyle(sheet, ref)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return false
	}
	if isDateFormat(style.NumFmt) {
		return true
	}
	if style.CustomNumFmt != nil {
		return looksLikeDateFormat(*style.CustomNumFmt)
	}
	return false
}

// isDateFormat reports whether a built-in number format id renders as a
// date or time.
func isDateFormat(fmtID int) bool {
	switch fmtID {
	case 14, 15, 16, 17, 22, 27, 30, 36, 45, 46, 47:
		return true
	}
	return false
}

func looksLikeDateFormat(numFmt string) bool {
	lower := strings.ToLower(numFmt)
	if strings.ContainsAny(lower, "#0") {
		return false
	}
	return strings.ContainsRune(lower, 'y') || strings.ContainsRune(lower, 'd')
}

var isoDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISODate(raw string) (time.Time, bool) {
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
