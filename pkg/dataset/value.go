// Package dataset holds the cleaned-table data model: typed cell values,
// records keyed by canonical field, tables, deduplication, and the per-year
// statistics tables derived from them.
package dataset

import "strconv"

// Kind discriminates the three states a cell value can be in.
type Kind uint8

// Value kinds. A cell is missing, text, or a number; canonicalizers only
// ever move a value between these states, never error on one.
const (
	KindMissing Kind = iota
	KindText
	KindNumber
)

// Value is one cell of the dataset. The zero value is missing.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
}

// None is the missing-marker value.
var None = Value{}

// String creates a text value. Empty or all-whitespace input is missing.
func String(s string) Value {
	if isBlank(s) {
		return None
	}
	return Value{Kind: KindText, Str: s}
}

// Number creates a numeric value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// IsMissing reports whether the value is the missing marker.
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// Float returns the numeric content. For text values it attempts a parse;
// the second return is false when no number is available.
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindText:
		f, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String renders the value for delimited-text output. Missing renders as
// the empty string; numbers use the shortest exact decimal form.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// Equal reports whether two values are identical in kind and content.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindText:
		return v.Str == other.Str
	case KindNumber:
		return v.Num == other.Num
	default:
		return true
	}
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
