package normalize

import (
	"strconv"
	"strings"

	"github.com/agentstation/permclean/pkg/dataset"
)

// Wage canonicalizes wage amounts to numbers. Values that are already
// numeric pass through; strings have comma separators stripped and are
// parsed as a decimal number. Unparsable strings become missing.
type Wage struct{}

// Normalize implements Normalizer.
func (Wage) Normalize(v dataset.Value) (dataset.Value, bool) {
	switch v.Kind {
	case dataset.KindMissing:
		return dataset.None, true
	case dataset.KindNumber:
		return v, true
	}

	s := strings.TrimSpace(strings.ReplaceAll(v.Str, ",", ""))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return dataset.None, false
	}
	return dataset.Number(f), true
}

// Numeric coerces a value to a number, used for the fixed list of numeric
// columns (fiscal year, counts, years, experience months, wages). Unlike
// Wage it does not strip separators; unparsable values become missing.
type Numeric struct{}

// Normalize implements Normalizer.
func (Numeric) Normalize(v dataset.Value) (dataset.Value, bool) {
	switch v.Kind {
	case dataset.KindMissing:
		return dataset.None, true
	case dataset.KindNumber:
		return v, true
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
	if err != nil {
		return dataset.None, false
	}
	return dataset.Number(f), true
}

// UpperText coerces a value to uppercase text, used for every column that
// is not numeric. Numbers are rendered to their text form first.
type UpperText struct{}

// Normalize implements Normalizer.
func (UpperText) Normalize(v dataset.Value) (dataset.Value, bool) {
	if v.IsMissing() {
		return dataset.None, true
	}
	return dataset.String(strings.ToUpper(v.String())), true
}
