// Package ledger assembles scanner entries into the final output records.
package ledger

import (
	"strconv"

	"pedalledger/internal/scan"
)

// DateLayout is the output date format.
const DateLayout = "2006-01-02"

// expirationDays is how long a quoted price stays valid.
const expirationDays = 365

// Record is one row of the cleaned ledger. The person context is dropped
// here on purpose: the output schema is the pedal's price history, not a
// per-person breakdown.
type Record struct {
	PedalName      string
	Price          float64
	Date           string
	ExpirationDate string
}

// Columns is the output header, in file column order.
var Columns = []string{"pedal_name", "price", "date", "expiration_date"}

// Assemble converts scanner entries into output records, computing the
// expiration date and formatting both dates.
func Assemble(entries []scan.Entry) []Record {
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, Record{
			PedalName:      e.Pedal,
			Price:          e.Price,
			Date:           e.Date.Format(DateLayout),
			ExpirationDate: e.Date.AddDate(0, 0, expirationDays).Format(DateLayout),
		})
	}
	return records
}

// Strings renders the record as file cells in Columns order.
func (r Record) Strings() []string {
	return []string{
		r.PedalName,
		strconv.FormatFloat(r.Price, 'f', -1, 64),
		r.Date,
		r.ExpirationDate,
	}
}
