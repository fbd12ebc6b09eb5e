// Package normalize implements the per-field value canonicalizers of the
// cleaning pipeline. Each normalizer maps a single cell value to its
// canonical form or to the missing marker; failures never raise, they are
// tallied in an explicit Report returned to the caller.
package normalize

import (
	"github.com/agentstation/permclean/pkg/dataset"
	"github.com/agentstation/permclean/pkg/schema"
)

// Normalizer canonicalizes a single cell value. The second return is false
// when the input could not be normalized; the first return is then the
// missing marker. Missing input passes through as missing and is never a
// failure. Normalizers are idempotent: applying one to its own output is
// a no-op.
type Normalizer interface {
	Normalize(v dataset.Value) (dataset.Value, bool)
}

// Report is a per-column frequency table of original values that failed
// normalization. It is diagnostic output only, never part of the dataset.
type Report map[schema.Field]map[string]int

// Add tallies one failed original value for a column.
func (r Report) Add(f schema.Field, original string) {
	freq, ok := r[f]
	if !ok {
		freq = make(map[string]int)
		r[f] = freq
	}
	freq[original]++
}

// Merge folds other into r.
func (r Report) Merge(other Report) {
	for f, freq := range other {
		for original, n := range freq {
			existing, ok := r[f]
			if !ok {
				existing = make(map[string]int)
				r[f] = existing
			}
			existing[original] += n
		}
	}
}

// Total returns the total number of failed values across all columns.
func (r Report) Total() int {
	total := 0
	for _, freq := range r {
		for _, n := range freq {
			total += n
		}
	}
	return total
}

// Apply runs a normalizer over the given columns of a table in place.
// Columns absent from the table are skipped; missing cells stay missing.
// The returned report holds the original spellings of every value the
// normalizer rejected, keyed by column.
func Apply(t *dataset.Table, fields []schema.Field, n Normalizer) Report {
	report := make(Report)
	for _, f := range fields {
		if !t.HasField(f) {
			continue
		}
		for _, row := range t.Rows {
			orig := row.Get(f)
			if orig.IsMissing() {
				continue
			}
			clean, ok := n.Normalize(orig)
			row[f] = clean
			if !ok {
				report.Add(f, orig.String())
			}
		}
	}
	return report
}

// Canonicalize runs the full value-canonicalization pass over a cleaned
// table: states, postal codes, wages, pay units, then generic numeric and
// uppercase-text coercion. The table is modified in place; the report
// covers the four field-specific passes (coercion failures degrade to
// missing silently, as the columns involved are audited via availability).
func Canonicalize(t *dataset.Table) Report {
	report := make(Report)
	report.Merge(Apply(t, schema.StateFields(), NewStateNormalizer()))
	report.Merge(Apply(t, schema.PostalFields(), Postal{}))
	report.Merge(Apply(t, schema.WageFields(), Wage{}))
	report.Merge(Apply(t, schema.PayUnitFields(), NewPayUnitNormalizer()))

	numeric := make(map[schema.Field]struct{})
	for _, f := range schema.NumericFields() {
		numeric[f] = struct{}{}
	}
	Apply(t, schema.NumericFields(), Numeric{})

	var textFields []schema.Field
	for _, f := range t.Fields {
		if _, ok := numeric[f]; !ok {
			textFields = append(textFields, f)
		}
	}
	Apply(t, textFields, UpperText{})

	return report
}
