package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pedalledger/internal/scan"
)

func TestAssemble(t *testing.T) {
	entries := []scan.Entry{
		{
			Person: "Mike Jones",
			Pedal:  "Tube Screamer",
			Price:  120,
			Date:   time.Date(2025, time.July, 25, 0, 0, 0, 0, time.UTC),
		},
	}

	records := Assemble(entries)

	require.Len(t, records, 1)
	assert.Equal(t, Record{
		PedalName:      "Tube Screamer",
		Price:          120,
		Date:           "2025-07-25",
		ExpirationDate: "2026-07-25",
	}, records[0])
}

func TestAssemble_ExpirationIsExactly365Days(t *testing.T) {
	// Across a leap day the calendar year and 365 days diverge.
	entries := []scan.Entry{
		{Pedal: "Boss Chorus", Price: 80, Date: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)},
	}

	records := Assemble(entries)

	require.Len(t, records, 1)
	assert.Equal(t, "2024-11-30", records[0].ExpirationDate)

	sale, err := time.Parse(DateLayout, records[0].Date)
	require.NoError(t, err)
	exp, err := time.Parse(DateLayout, records[0].ExpirationDate)
	require.NoError(t, err)
	assert.Equal(t, 365*24*time.Hour, exp.Sub(sale))
}

func TestAssemble_Empty(t *testing.T) {
	assert.Empty(t, Assemble(nil))
}

func TestRecordStrings(t *testing.T) {
	rec := Record{PedalName: "MXR Phase 90", Price: 99.5, Date: "2025-07-25", ExpirationDate: "2026-07-25"}
	assert.Equal(t, []string{"MXR Phase 90", "99.5", "2025-07-25", "2026-07-25"}, rec.Strings())

	rec.Price = 120
	assert.Equal(t, "120", rec.Strings()[1])
}
