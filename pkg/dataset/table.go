package dataset

import (
	"sort"

	"github.com/agentstation/permclean/pkg/schema"
)

// Record is one row of the dataset, keyed by canonical field. Fields absent
// from the source table are simply not present; readers treat absence the
// same as a missing value.
type Record map[schema.Field]Value

// Get returns the value for a field, or the missing marker when the field
// is absent from the record.
func (r Record) Get(f schema.Field) Value {
	if v, ok := r[f]; ok {
		return v
	}
	return None
}

// CaseNumber returns the record's case identifier as text.
func (r Record) CaseNumber() string {
	return r.Get(schema.FieldCaseNumber).String()
}

// FiscalYear returns the record's fiscal year, or 0 when missing.
func (r Record) FiscalYear() int {
	if f, ok := r.Get(schema.FieldFiscalYear).Float(); ok {
		return int(f)
	}
	return 0
}

// Clone returns a copy of the record sharing no storage with the original.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for f, v := range r {
		out[f] = v
	}
	return out
}

// Table is an ordered collection of records with an explicit column set.
// Only canonical columns that were actually found in the source appear in
// Fields; each stage of the pipeline owns its output table exclusively.
type Table struct {
	Fields []schema.Field
	Rows   []Record
}

// NewTable creates an empty table with the given columns.
func NewTable(fields ...schema.Field) *Table {
	return &Table{Fields: fields}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasField reports whether the table carries the given column.
func (t *Table) HasField(f schema.Field) bool {
	for _, have := range t.Fields {
		if have == f {
			return true
		}
	}
	return false
}

// AddField appends a column to the table if not already present.
func (t *Table) AddField(f schema.Field) {
	if !t.HasField(f) {
		t.Fields = append(t.Fields, f)
	}
}

// Append adds a row to the table.
func (t *Table) Append(r Record) {
	t.Rows = append(t.Rows, r)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := NewTable(t.Fields...)
	out.Fields = make([]schema.Field, len(t.Fields))
	copy(out.Fields, t.Fields)
	out.Rows = make([]Record, 0, len(t.Rows))
	for _, r := range t.Rows {
		out.Rows = append(out.Rows, r.Clone())
	}
	return out
}

// Concat appends all rows of other to t and unions the column sets,
// keeping canonical field order for the combined columns.
func (t *Table) Concat(other *Table) {
	present := make(map[schema.Field]struct{}, len(t.Fields)+len(other.Fields))
	for _, f := range t.Fields {
		present[f] = struct{}{}
	}
	for _, f := range other.Fields {
		present[f] = struct{}{}
	}

	merged := make([]schema.Field, 0, len(present))
	for _, f := range schema.Fields() {
		if _, ok := present[f]; ok {
			merged = append(merged, f)
		}
	}
	t.Fields = merged
	t.Rows = append(t.Rows, other.Rows...)
}

// SortByCaseYear orders rows by (case number, fiscal year) ascending.
// The sort is stable so equal keys keep their input order.
func (t *Table) SortByCaseYear() {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		ci, cj := t.Rows[i].CaseNumber(), t.Rows[j].CaseNumber()
		if ci != cj {
			return ci < cj
		}
		return t.Rows[i].FiscalYear() < t.Rows[j].FiscalYear()
	})
}

// Availability returns, per column, the fraction of rows with a non-missing
// value. An empty table yields zero ratios for every column.
func (t *Table) Availability() map[schema.Field]float64 {
	ratios := make(map[schema.Field]float64, len(t.Fields))
	for _, f := range t.Fields {
		ratios[f] = 0
	}
	if len(t.Rows) == 0 {
		return ratios
	}
	for _, r := range t.Rows {
		for _, f := range t.Fields {
			if !r.Get(f).IsMissing() {
				ratios[f]++
			}
		}
	}
	n := float64(len(t.Rows))
	for f := range ratios {
		ratios[f] /= n
	}
	return ratios
}

// AvailabilityByYear groups rows by fiscal year and returns per-year
// column availability ratios.
func (t *Table) AvailabilityByYear() AvailabilityTable {
	byYear := make(map[int]*Table)
	for _, r := range t.Rows {
		year := r.FiscalYear()
		sub, ok := byYear[year]
		if !ok {
			sub = NewTable(t.Fields...)
			byYear[year] = sub
		}
		sub.Append(r)
	}

	avail := make(AvailabilityTable, len(byYear))
	for year, sub := range byYear {
		avail[year] = sub.Availability()
	}
	return avail
}
