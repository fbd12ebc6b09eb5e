package ingest

import (
	"github.com/agentstation/permclean/pkg/dataset"
	"github.com/agentstation/permclean/pkg/schema"
)

// CanonicalColumns renames and selects the raw table's columns against the
// registry. Only canonical columns that were found appear in the result;
// unmapped raw columns are dropped. When two raw columns alias to the same
// canonical field, the leftmost raw column wins.
func CanonicalColumns(raw *RawTable, reg *schema.Registry) *dataset.Table {
	// Map canonical field -> raw column index, leftmost wins.
	indexOf := make(map[schema.Field]int)
	for i, rawCol := range raw.Columns {
		field, ok := reg.Resolve(rawCol)
		if !ok {
			continue
		}
		if _, taken := indexOf[field]; !taken {
			indexOf[field] = i
		}
	}

	// Keep canonical field order for the output columns.
	var fields []schema.Field
	for _, f := range schema.Fields() {
		if _, ok := indexOf[f]; ok {
			fields = append(fields, f)
		}
	}

	tbl := dataset.NewTable(fields...)
	for _, rawRow := range raw.Rows {
		record := make(dataset.Record, len(fields))
		for _, f := range fields {
			i := indexOf[f]
			if i >= len(rawRow) {
				continue
			}
			if v := dataset.String(rawRow[i]); !v.IsMissing() {
				record[f] = v
			}
		}
		tbl.Append(record)
	}
	return tbl
}
