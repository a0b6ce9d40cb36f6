package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"pedalledger/internal/ledger"
)

func TestPrint_EmptyResultSet(t *testing.T) {
	var buf bytes.Buffer

	assert.NotPanics(t, func() { Print(&buf, nil, 20) })

	out := buf.String()
	assert.Contains(t, out, "Extracted 0 pedal entries")
	assert.Contains(t, out, "Total pedals: 0")
	assert.Contains(t, out, "No price data.")
}

func TestPrint_Summary(t *testing.T) {
	records := []ledger.Record{
		{PedalName: "Tube Screamer", Price: 120, Date: "2025-07-25", ExpirationDate: "2026-07-25"},
		{PedalName: "Boss Chorus", Price: 80, Date: "2025-07-26", ExpirationDate: "2026-07-26"},
		{PedalName: "Tube Screamer", Price: 100, Date: "2025-08-01", ExpirationDate: "2026-08-01"},
	}
	var buf bytes.Buffer

	Print(&buf, records, 20)

	out := buf.String()
	assert.Contains(t, out, "Extracted 3 pedal entries")
	assert.Contains(t, out, "Total pedals: 3")
	assert.Contains(t, out, "Unique pedal names: 2")
	assert.Contains(t, out, "Date range: 2025-07-25 to 2025-08-01")
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "100.00") // mean of 120, 80, 100
}

func TestPrint_HeadTailSampling(t *testing.T) {
	var records []ledger.Record
	for i := 0; i < 10; i++ {
		records = append(records, ledger.Record{
			PedalName: "Boss Chorus", Price: float64(50 + i),
			Date: "2025-07-25", ExpirationDate: "2026-07-25",
		})
	}
	var buf bytes.Buffer

	Print(&buf, records, 3)

	out := buf.String()
	assert.Contains(t, out, "First 3 entries:")
	assert.Contains(t, out, "Last 3 entries:")
}
