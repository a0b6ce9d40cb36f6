// Package scan walks the pricing workbook row by row, tracking which
// person's section the scanner is inside and which sale date applies, and
// extracts (pedal, price) pairs from the column groups the ledger uses.
package scan

import (
	"strings"
	"time"

	"pedalledger/internal/cell"
	"pedalledger/internal/classify"
)

// Grid is the scanner's view of a loaded worksheet: a rectangular block of
// typed cells addressed by 1-indexed row and column.
type Grid interface {
	Rows() int
	Cell(row, col int) cell.Value
}

// Entry is one extracted sale. Person is kept for section context only and
// does not reach the final output files.
type Entry struct {
	Person string
	Pedal  string
	Price  float64
	Date   time.Time
}

// UnknownPerson is substituted when gear rows appear before any person
// header has been seen.
const UnknownPerson = "Unknown"

// The ledger repeats its name/price layout in three column groups per row.
// Group three has no fallback price column, and its name column doubles as
// group two's fallback.
var columnGroups = []struct {
	name      int
	primary   int
	secondary int
}{
	{name: 1, primary: 2, secondary: 3},
	{name: 4, primary: 5, secondary: 6},
	{name: 6, primary: 7},
}

// strayPriceColumn holds prices with no adjacent name cell.
const strayPriceColumn = 8

type state struct {
	person    string
	date      time.Time
	hasDate   bool
	lastValid time.Time
}

// Run performs the single sequential pass over the grid. Rows must be
// visited in order: person headers set the context every following gear row
// inherits until the next header.
func Run(g Grid) []Entry {
	st := state{lastValid: classify.PriceAnchor}
	var entries []Entry
	for row := 1; row <= g.Rows(); row++ {
		entries = st.scanRow(g, row, entries)
	}
	return entries
}

func (st *state) scanRow(g Grid, row int, entries []Entry) []Entry {
	colA := g.Cell(row, 1)
	if classify.LooksLikePersonName(colA) {
		st.person = strings.TrimSpace(colA.Text())
		st.hasDate = true
		if d := g.Cell(row, 2); d.Kind() == cell.KindDate && !d.Date().Before(classify.PriceAnchor) {
			st.date = d.Date()
			st.lastValid = d.Date()
		} else {
			// Header without a usable date: carry the last one forward.
			st.date = st.lastValid
		}
		return entries
	}

	if !st.hasDate {
		st.date = st.lastValid
		st.hasDate = true
	}

	for _, grp := range columnGroups {
		nameCell := g.Cell(row, grp.name)
		if !classify.LooksLikePedalName(nameCell) {
			continue
		}
		price, ok := resolvePrice(g.Cell(row, grp.primary))
		if !ok && grp.secondary != 0 {
			price, ok = resolvePrice(g.Cell(row, grp.secondary))
		}
		if ok {
			entries = append(entries, st.entry(nameCell.Text(), price))
		}
	}

	if price, ok := resolvePrice(g.Cell(row, strayPriceColumn)); ok {
		for _, col := range []int{1, 4} {
			if nameCell := g.Cell(row, col); classify.LooksLikePedalName(nameCell) {
				entries = append(entries, st.entry(nameCell.Text(), price))
				break
			}
		}
	}

	return entries
}

func (st *state) entry(pedal string, price float64) Entry {
	person := st.person
	if person == "" {
		person = UnknownPerson
	}
	return Entry{
		Person: person,
		Pedal:  strings.TrimSpace(pedal),
		Price:  price,
		Date:   st.date,
	}
}

// resolvePrice turns a cell into a usable price, recovering miscoded dates
// on the way. A cell whose recovery still yields a date is unusable.
func resolvePrice(v cell.Value) (float64, bool) {
	if !classify.IsValidPrice(v) {
		return 0, false
	}
	recovered := classify.RecoverPrice(v)
	if recovered.Kind() != cell.KindNumber {
		return 0, false
	}
	return recovered.Number(), true
}
