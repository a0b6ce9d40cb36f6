// Package cell models a single spreadsheet cell as a closed variant type.
// The source workbook mixes numbers, free text and miscoded dates in the
// same columns, so every consumer switches on Kind instead of probing
// runtime types.
package cell

import "time"

// Kind enumerates the shapes a cell value can take.
type Kind int

const (
	KindEmpty Kind = iota
	KindNumber
	KindText
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindDate:
		return "date"
	}
	return "unknown"
}

// Value is an immutable cell value. The zero value is an empty cell.
type Value struct {
	kind Kind
	num  float64
	text string
	date time.Time
}

// Empty returns the absent-cell value.
func Empty() Value { return Value{kind: KindEmpty} }

// Number wraps a numeric cell.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Text wraps a textual cell.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Date wraps a calendar-date or timestamp cell.
func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether the cell is absent.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Number returns the numeric payload; zero unless Kind is KindNumber.
func (v Value) Number() float64 { return v.num }

// Text returns the textual payload; empty unless Kind is KindText.
func (v Value) Text() string { return v.text }

// Date returns the date payload; the zero time unless Kind is KindDate.
func (v Value) Date() time.Time { return v.date }
