package ingest

import (
	"github.com/agentstation/permclean/pkg/dataset"
	"github.com/agentstation/permclean/pkg/errors"
	"github.com/agentstation/permclean/pkg/schema"
)

// Subset is the result of filtering one source file: the kept rows in
// canonical columns stamped with the fiscal year, the counts of every
// observed certification status (kept or not, for audit), and the
// per-column fraction of non-missing values among the kept rows.
type Subset struct {
	Table        *dataset.Table
	StatusCounts map[string]int
	Availability map[schema.Field]float64
}

// Select filters a raw table to certified rows in canonical columns and
// stamps each kept row with the fiscal year. The raw table is read only;
// the returned subset is owned by the caller.
func Select(raw *RawTable, reg *schema.Registry, fiscalYear int) (*Subset, error) {
	statusIdx := -1
	for i, rawCol := range raw.Columns {
		if reg.ResolveStatus(rawCol) {
			statusIdx = i
			break
		}
	}
	if statusIdx < 0 {
		return nil, errors.NewValidationError(schema.FieldCaseStatus.String(), nil,
			"status column not found in source file")
	}

	counts := make(map[string]int)
	keep := make([]bool, len(raw.Rows))
	for i, rawRow := range raw.Rows {
		status := ""
		if statusIdx < len(rawRow) {
			status = schema.NormalizeStatus(rawRow[statusIdx])
		}
		counts[status]++
		keep[i] = reg.AcceptedStatus(status)
	}

	all := CanonicalColumns(raw, reg)

	present := make(map[schema.Field]struct{}, len(all.Fields)+1)
	for _, f := range all.Fields {
		present[f] = struct{}{}
	}
	present[schema.FieldFiscalYear] = struct{}{}
	var fields []schema.Field
	for _, f := range schema.Fields() {
		if _, ok := present[f]; ok {
			fields = append(fields, f)
		}
	}

	tbl := dataset.NewTable(fields...)
	for i, record := range all.Rows {
		if !keep[i] {
			continue
		}
		record[schema.FieldFiscalYear] = dataset.Number(float64(fiscalYear))
		tbl.Append(record)
	}

	return &Subset{
		Table:        tbl,
		StatusCounts: counts,
		Availability: tbl.Availability(),
	}, nil
}
