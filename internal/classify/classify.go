// Package classify holds the cell-level heuristics that decide whether a
// cell is a recoverable price, a person-name header or a pedal name. All
// predicates fail closed: an unexpected shape is never a price and never a
// name.
package classify

import (
	"strings"
	"time"
	"unicode"

	"pedalledger/internal/cell"
)

// PriceAnchor is the first real sale date in the workbook. Any date cell
// earlier than this cannot be a genuine sale date and is presumed to be a
// price the spreadsheet tool miscoded as a date.
var PriceAnchor = time.Date(2025, time.July, 24, 0, 0, 0, 0, time.UTC)

// maxPrice is the domain ceiling; nothing in this ledger sells for more.
const maxPrice = 10000

var commonFirstNames = stringSet(CommonFirstNames)

// IsValidPrice reports whether v can be read as a price, directly or via
// date recovery.
func IsValidPrice(v cell.Value) bool {
	switch v.Kind() {
	case cell.KindDate:
		return v.Date().Before(PriceAnchor)
	case cell.KindNumber:
		n := v.Number()
		return n > 0 && n < maxPrice
	default:
		return false
	}
}

// RecoverPrice converts a miscoded date back into the price it encodes.
// The spreadsheet tool reinterpreted bare integers as day numbers within an
// epoch year, so the day-of-month is the only salvageable information:
// 1900-03-20 means 20. Values that need no recovery pass through unchanged.
func RecoverPrice(v cell.Value) cell.Value {
	if v.Kind() == cell.KindDate && v.Date().Before(PriceAnchor) {
		return cell.Number(float64(v.Date().Day()))
	}
	return v
}

// LooksLikePersonName reports whether v is a person-name header row marker.
// Only a recognized common first name confirms a match; everything else can
// merely be rejected. The asymmetry is deliberate: in this ledger the true
// positives are dominated by first-name matches, and a looser rule starts
// swallowing gear names.
func LooksLikePersonName(v cell.Value) bool {
	if v.Kind() != cell.KindText {
		return false
	}
	name := strings.TrimSpace(v.Text())
	if len(name) < 5 || len(name) > 60 {
		return false
	}
	// Pedal listings end with periods and use colons ("Neunaber: Illumine").
	if strings.HasSuffix(name, ".") || strings.Contains(name, ":") {
		return false
	}
	lower := strings.ToLower(name)
	if containsAny(lower, PersonNameExclusions) {
		return false
	}
	words := strings.Fields(name)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if !unicode.IsUpper([]rune(w)[0]) {
			return false
		}
	}
	if strings.ContainsFunc(name, unicode.IsDigit) {
		return false
	}
	first := strings.ToLower(words[0])
	if _, ok := commonFirstNames[first]; ok {
		return true
	}
	if containsAny(lower, BrandModifiers) {
		return false
	}
	// Without a recognized first name the heuristic never confirms.
	return false
}

// LooksLikePedalName reports whether v names a piece of gear. Known effect
// and brand keywords match outright; beyond that, any text longer than five
// characters with at least one letter is accepted, since pedal names in this
// ledger are free-form.
func LooksLikePedalName(v cell.Value) bool {
	if v.Kind() != cell.KindText {
		return false
	}
	name := strings.TrimSpace(v.Text())
	lower := strings.ToLower(name)
	if containsAny(lower, LedgerNoise) {
		return false
	}
	if containsAny(lower, PedalKeywords) {
		return true
	}
	if len(name) > 5 && strings.ContainsFunc(name, unicode.IsLetter) {
		return true
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func stringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
