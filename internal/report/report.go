// Package report prints the console summary of a cleaning run: entry
// counts, head/tail samples and price statistics in the shape of a
// describe() table.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/montanaflynn/stats"

	"pedalledger/internal/ledger"
)

const ruleWidth = 80

// Print writes the full summary to w. A zero-record run prints a degenerate
// summary instead of failing.
func Print(w io.Writer, records []ledger.Record, sample int) {
	fmt.Fprintf(w, "Extracted %d pedal entries\n", len(records))

	head := records
	if len(head) > sample {
		head = head[:sample]
	}
	if len(head) > 0 {
		printSample(w, fmt.Sprintf("First %d entries:", len(head)), head)
	}
	if len(records) > sample {
		tail := records[len(records)-sample:]
		printSample(w, fmt.Sprintf("Last %d entries:", len(tail)), tail)
	}

	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(w, "\n%s\nSUMMARY STATISTICS\n%s\n", rule, rule)
	fmt.Fprintf(w, "Total pedals: %d\n", len(records))
	fmt.Fprintf(w, "Unique pedal names: %d\n", uniqueNames(records))

	if len(records) == 0 {
		fmt.Fprintln(w, "No price data.")
		return
	}

	minDate, maxDate := dateRange(records)
	fmt.Fprintf(w, "Date range: %s to %s\n", minDate, maxDate)

	prices := make(stats.Float64Data, len(records))
	for i, rec := range records {
		prices[i] = rec.Price
	}

	fmt.Fprintln(w, "\nPrice statistics:")
	printStat(w, "count", float64(len(prices)), nil)
	mean, err := stats.Mean(prices)
	printStat(w, "mean", mean, err)
	std, err := stats.StandardDeviation(prices)
	printStat(w, "std", std, err)
	min, err := stats.Min(prices)
	printStat(w, "min", min, err)
	q25, err := stats.Percentile(prices, 25)
	printStat(w, "25%", q25, err)
	median, err := stats.Median(prices)
	printStat(w, "50%", median, err)
	q75, err := stats.Percentile(prices, 75)
	printStat(w, "75%", q75, err)
	max, err := stats.Max(prices)
	printStat(w, "max", max, err)
}

func printSample(w io.Writer, title string, records []ledger.Record) {
	fmt.Fprintf(w, "\n%s\n", title)
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(ledger.Columns, "\t"))
	for _, rec := range records {
		fmt.Fprintln(tw, strings.Join(rec.Strings(), "\t"))
	}
	tw.Flush()
}

func printStat(w io.Writer, label string, v float64, err error) {
	if err != nil {
		return
	}
	fmt.Fprintf(w, "  %-6s %10.2f\n", label, v)
}

func uniqueNames(records []ledger.Record) int {
	names := make(map[string]struct{}, len(records))
	for _, rec := range records {
		names[rec.PedalName] = struct{}{}
	}
	return len(names)
}

// dateRange works on the formatted dates; the YYYY-MM-DD layout orders
// lexicographically.
func dateRange(records []ledger.Record) (string, string) {
	min, max := records[0].Date, records[0].Date
	for _, rec := range records[1:] {
		if rec.Date < min {
			min = rec.Date
		}
		if rec.Date > max {
			max = rec.Date
		}
	}
	return min, max
}
