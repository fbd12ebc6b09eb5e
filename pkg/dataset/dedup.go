package dataset

import (
	"fmt"
	"sort"

	"github.com/agentstation/permclean/pkg/errors"
	"github.com/agentstation/permclean/pkg/schema"
)

// ValidateUniqueCaseYear checks the deduplication precondition: at most one
// record per (case number, fiscal year) pair. Violations return an
// IntegrityError listing the offending case numbers.
func (t *Table) ValidateUniqueCaseYear() error {
	seen := make(map[string]struct{}, len(t.Rows))
	var dups []string
	dupSet := make(map[string]struct{})

	for _, r := range t.Rows {
		key := fmt.Sprintf("%s\x00%d", r.CaseNumber(), r.FiscalYear())
		if _, ok := seen[key]; ok {
			if _, counted := dupSet[r.CaseNumber()]; !counted {
				dupSet[r.CaseNumber()] = struct{}{}
				dups = append(dups, r.CaseNumber())
			}
			continue
		}
		seen[key] = struct{}{}
	}

	if len(dups) > 0 {
		sort.Strings(dups)
		return errors.NewIntegrityError("unique (case_number, fiscal_year)", dups)
	}
	return nil
}

// Deduplicate keeps exactly one row per case number: the one with the
// highest fiscal year. It validates the uniqueness precondition first and
// returns a new table sorted by case number; the receiver is not modified.
func (t *Table) Deduplicate() (*Table, error) {
	if err := t.ValidateUniqueCaseYear(); err != nil {
		return nil, err
	}

	latest := make(map[string]Record, len(t.Rows))
	var order []string
	for _, r := range t.Rows {
		caseNo := r.CaseNumber()
		best, ok := latest[caseNo]
		if !ok {
			latest[caseNo] = r
			order = append(order, caseNo)
			continue
		}
		if r.FiscalYear() > best.FiscalYear() {
			latest[caseNo] = r
		}
	}
	sort.Strings(order)

	out := NewTable()
	out.Fields = make([]schema.Field, len(t.Fields))
	copy(out.Fields, t.Fields)
	out.Rows = make([]Record, 0, len(order))
	for _, caseNo := range order {
		out.Rows = append(out.Rows, latest[caseNo])
	}
	return out, nil
}
